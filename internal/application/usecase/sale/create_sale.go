package sale

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/application/adapter"
	"github.com/shopledger/backend/internal/domain/entity"
	domainerror "github.com/shopledger/backend/internal/domain/error"
)

const (
	// MaxItemNameLength is the maximum allowed length for item names.
	MaxItemNameLength = 255
	// MaxNotesLength is the maximum allowed length for sale notes.
	MaxNotesLength = 1000
)

// CreateSaleInput represents the input for sale creation.
type CreateSaleInput struct {
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

// CreateSaleOutput represents the output of sale creation.
type CreateSaleOutput struct {
	Sale *SaleOutput
}

// CreateSaleUseCase handles sale creation logic.
type CreateSaleUseCase struct {
	saleRepo adapter.SaleRepository
	cache    adapter.InsightsCache
}

// NewCreateSaleUseCase creates a new CreateSaleUseCase instance.
func NewCreateSaleUseCase(saleRepo adapter.SaleRepository, cache adapter.InsightsCache) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		saleRepo: saleRepo,
		cache:    cache,
	}
}

// Execute performs the sale creation. The stored total is always
// derived from quantity and price, never taken from the caller.
func (uc *CreateSaleUseCase) Execute(ctx context.Context, input CreateSaleInput) (*CreateSaleOutput, error) {
	if err := validateSaleFields(input.ItemName, input.Quantity, input.Price); err != nil {
		return nil, err
	}
	if len(input.Notes) > MaxNotesLength {
		return nil, domainerror.NewSaleError(
			domainerror.ErrCodeMissingSaleFields,
			fmt.Sprintf("notes must not exceed %d characters", MaxNotesLength),
			nil,
		)
	}

	// An omitted date means the sale happened just now.
	if input.Date.IsZero() {
		input.Date = time.Now().UTC()
	}

	sale := entity.NewSale(input.UserID, strings.TrimSpace(input.ItemName), input.Quantity, input.Price, input.PaymentMethod, input.Date)
	sale.PhotoURL = input.PhotoURL
	sale.Notes = input.Notes
	sale.ProductID = input.ProductID
	sale.CustomerID = input.CustomerID
	if !input.Discount.IsZero() {
		sale.Discount = input.Discount
	}

	if err := uc.saleRepo.Create(ctx, sale); err != nil {
		return nil, fmt.Errorf("failed to create sale: %w", err)
	}

	invalidateInsights(ctx, uc.cache, input.UserID)

	return &CreateSaleOutput{Sale: NewSaleOutput(sale)}, nil
}

// validateSaleFields checks the invariants shared by creation and update.
func validateSaleFields(itemName string, quantity int, price decimal.Decimal) error {
	if strings.TrimSpace(itemName) == "" {
		return domainerror.NewSaleError(
			domainerror.ErrCodeEmptyItemName,
			"item name cannot be empty",
			domainerror.ErrEmptyItemName,
		)
	}
	if len(itemName) > MaxItemNameLength {
		return domainerror.NewSaleError(
			domainerror.ErrCodeEmptyItemName,
			fmt.Sprintf("item name must not exceed %d characters", MaxItemNameLength),
			nil,
		)
	}
	if quantity <= 0 {
		return domainerror.NewSaleError(
			domainerror.ErrCodeInvalidQuantity,
			"quantity must be a positive integer",
			domainerror.ErrInvalidQuantity,
		)
	}
	if price.IsNegative() {
		return domainerror.NewSaleError(
			domainerror.ErrCodeNegativePrice,
			"price cannot be negative",
			domainerror.ErrNegativePrice,
		)
	}
	return nil
}
