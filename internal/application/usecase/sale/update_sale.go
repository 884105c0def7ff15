package sale

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/application/adapter"
	domainerror "github.com/shopledger/backend/internal/domain/error"
)

// UpdateSaleInput represents the input for sale update. The update is a
// full replacement of the editable fields.
type UpdateSaleInput struct {
	SaleID        uuid.UUID
	UserID        uuid.UUID
	ItemName      string
	Quantity      int
	Price         decimal.Decimal
	PaymentMethod string
	Date          time.Time
	PhotoURL      string
	Notes         string
	Discount      decimal.Decimal
	ProductID     *uuid.UUID
	CustomerID    *uuid.UUID
}

// UpdateSaleOutput represents the output of sale update.
type UpdateSaleOutput struct {
	Sale *SaleOutput
}

// UpdateSaleUseCase handles sale update logic.
type UpdateSaleUseCase struct {
	saleRepo adapter.SaleRepository
	cache    adapter.InsightsCache
}

// NewUpdateSaleUseCase creates a new UpdateSaleUseCase instance.
func NewUpdateSaleUseCase(saleRepo adapter.SaleRepository, cache adapter.InsightsCache) *UpdateSaleUseCase {
	return &UpdateSaleUseCase{
		saleRepo: saleRepo,
		cache:    cache,
	}
}

// Execute performs the sale update. The total is re-derived from the
// replacement quantity and price.
func (uc *UpdateSaleUseCase) Execute(ctx context.Context, input UpdateSaleInput) (*UpdateSaleOutput, error) {
	if err := validateSaleFields(input.ItemName, input.Quantity, input.Price); err != nil {
		return nil, err
	}
	if input.Date.IsZero() {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeInvalidSaleDate,
			"sale date is required",
			domainerror.ErrInvalidSaleDate,
		)
	}

	sale, err := uc.saleRepo.FindByID(ctx, input.SaleID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSaleNotFound) {
			return nil, domainerror.NewSaleError(
				domainerror.ErrCodeSaleNotFound,
				"sale not found",
				domainerror.ErrSaleNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find sale: %w", err)
	}

	if sale.UserID != input.UserID {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeNotAuthorizedSale,
			"not authorized to update this sale",
			domainerror.ErrNotAuthorizedToModifySale,
		)
	}

	sale.ItemName = strings.TrimSpace(input.ItemName)
	sale.Quantity = input.Quantity
	sale.Price = input.Price
	sale.PaymentMethod = input.PaymentMethod
	sale.Date = input.Date
	sale.PhotoURL = input.PhotoURL
	sale.Notes = input.Notes
	sale.Discount = input.Discount
	sale.ProductID = input.ProductID
	sale.CustomerID = input.CustomerID
	sale.UpdatedAt = time.Now().UTC()
	sale.RecomputeTotal()

	if err := uc.saleRepo.Update(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to update sale: %w", err)
	}

	invalidateInsights(ctx, uc.cache, input.UserID)

	return &UpdateSaleOutput{Sale: NewSaleOutput(sale)}, nil
}
