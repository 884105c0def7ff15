package sale

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/shopledger/backend/internal/application/adapter"
)

// ClearSalesInput represents the input for clearing all sales.
type ClearSalesInput struct {
	UserID uuid.UUID
}

// ClearSalesOutput represents the output of clearing all sales.
type ClearSalesOutput struct {
	Deleted int64
}

// ClearSalesUseCase removes every sale owned by a user. Used when an
// owner resets their books.
type ClearSalesUseCase struct {
	saleRepo adapter.SaleRepository
	cache    adapter.InsightsCache
}

// NewClearSalesUseCase creates a new ClearSalesUseCase instance.
func NewClearSalesUseCase(saleRepo adapter.SaleRepository, cache adapter.InsightsCache) *ClearSalesUseCase {
	return &ClearSalesUseCase{
		saleRepo: saleRepo,
		cache:    cache,
	}
}

// Execute deletes all of the owner's sales and reports the count.
func (uc *ClearSalesUseCase) Execute(ctx context.Context, input ClearSalesInput) (*ClearSalesOutput, error) {
	deleted, err := uc.saleRepo.DeleteAllByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to clear sales: %w", err)
	}

	slog.Info("Cleared all sales for user", "userID", input.UserID, "deleted", deleted)
	invalidateInsights(ctx, uc.cache, input.UserID)

	return &ClearSalesOutput{Deleted: deleted}, nil
}
