package expense

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/shopledger/backend/internal/application/adapter"
	domainerror "github.com/shopledger/backend/internal/domain/error"
)

// DeleteExpenseInput represents the input for expense deletion.
type DeleteExpenseInput struct {
	ExpenseID uuid.UUID
	UserID    uuid.UUID
}

// DeleteExpenseOutput represents the output of expense deletion.
type DeleteExpenseOutput struct {
	Success bool
}

// DeleteExpenseUseCase handles expense deletion logic.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	cache       adapter.InsightsCache
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository, cache adapter.InsightsCache) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
		cache:       cache,
	}
}

// Execute performs the expense deletion.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) (*DeleteExpenseOutput, error) {
	expense, err := uc.expenseRepo.FindByID(ctx, input.ExpenseID)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseNotFound,
				"expense not found",
				domainerror.ErrExpenseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}

	if expense.UserID != input.UserID {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeNotAuthorizedExpense,
			"not authorized to delete this expense",
			domainerror.ErrNotAuthorizedToModifyExpense,
		)
	}

	if err := uc.expenseRepo.Delete(ctx, input.ExpenseID); err != nil {
		return nil, fmt.Errorf("failed to delete expense: %w", err)
	}

	invalidateInsights(ctx, uc.cache, input.UserID)

	return &DeleteExpenseOutput{Success: true}, nil
}
