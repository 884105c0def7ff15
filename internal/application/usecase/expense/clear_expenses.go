package expense

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/shopledger/backend/internal/application/adapter"
)

// ClearExpensesInput represents the input for clearing all expenses.
type ClearExpensesInput struct {
	UserID uuid.UUID
}

// ClearExpensesOutput represents the output of clearing all expenses.
type ClearExpensesOutput struct {
	Deleted int64
}

// ClearExpensesUseCase removes every expense owned by a user.
type ClearExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
	cache       adapter.InsightsCache
}

// NewClearExpensesUseCase creates a new ClearExpensesUseCase instance.
func NewClearExpensesUseCase(expenseRepo adapter.ExpenseRepository, cache adapter.InsightsCache) *ClearExpensesUseCase {
	return &ClearExpensesUseCase{
		expenseRepo: expenseRepo,
		cache:       cache,
	}
}

// Execute deletes all of the owner's expenses and reports the count.
func (uc *ClearExpensesUseCase) Execute(ctx context.Context, input ClearExpensesInput) (*ClearExpensesOutput, error) {
	deleted, err := uc.expenseRepo.DeleteAllByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to clear expenses: %w", err)
	}

	slog.Info("Cleared all expenses for user", "userID", input.UserID, "deleted", deleted)
	invalidateInsights(ctx, uc.cache, input.UserID)

	return &ClearExpensesOutput{Deleted: deleted}, nil
}
