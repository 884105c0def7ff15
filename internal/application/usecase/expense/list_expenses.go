package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/shopledger/backend/internal/application/adapter"
)

// ListExpensesInput represents the input for expense listing.
type ListExpensesInput struct {
	UserID uuid.UUID
}

// ListExpensesOutput represents the output of expense listing.
type ListExpensesOutput struct {
	Expenses []*ExpenseOutput
}

// ListExpensesUseCase handles expense listing logic.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute returns all of the owner's expenses, newest first.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	expenses, err := uc.expenseRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	outputs := make([]*ExpenseOutput, len(expenses))
	for i, e := range expenses {
		outputs[i] = NewExpenseOutput(e)
	}

	return &ListExpensesOutput{Expenses: outputs}, nil
}
