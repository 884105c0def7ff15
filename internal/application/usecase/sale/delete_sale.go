package sale

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/shopledger/backend/internal/application/adapter"
	domainerror "github.com/shopledger/backend/internal/domain/error"
)

// DeleteSaleInput represents the input for sale deletion.
type DeleteSaleInput struct {
	SaleID uuid.UUID
	UserID uuid.UUID
}

// DeleteSaleOutput represents the output of sale deletion.
type DeleteSaleOutput struct {
	Success bool
}

// DeleteSaleUseCase handles sale deletion logic.
type DeleteSaleUseCase struct {
	saleRepo adapter.SaleRepository
	cache    adapter.InsightsCache
}

// NewDeleteSaleUseCase creates a new DeleteSaleUseCase instance.
func NewDeleteSaleUseCase(saleRepo adapter.SaleRepository, cache adapter.InsightsCache) *DeleteSaleUseCase {
	return &DeleteSaleUseCase{
		saleRepo: saleRepo,
		cache:    cache,
	}
}

// Execute performs the sale deletion.
func (uc *DeleteSaleUseCase) Execute(ctx context.Context, input DeleteSaleInput) (*DeleteSaleOutput, error) {
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
			"not authorized to delete this sale",
			domainerror.ErrNotAuthorizedToModifySale,
		)
	}

	if err := uc.saleRepo.Delete(ctx, input.SaleID); err != nil {
		return nil, fmt.Errorf("failed to delete sale: %w", err)
	}

	invalidateInsights(ctx, uc.cache, input.UserID)

	return &DeleteSaleOutput{Success: true}, nil
}
