package expense

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/application/adapter"
	"github.com/shopledger/backend/internal/domain/entity"
	domainerror "github.com/shopledger/backend/internal/domain/error"
)

// UpdateExpenseInput represents the input for expense update. The
// update is a full replacement of the editable fields.
type UpdateExpenseInput struct {
	ExpenseID  uuid.UUID
	UserID     uuid.UUID
	Name       string
	Category   entity.ExpenseCategory
	Amount     decimal.Decimal
	Date       time.Time
	Note       string
	ReceiptURL string
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense *ExpenseOutput
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	cache       adapter.InsightsCache
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository, cache adapter.InsightsCache) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo: expenseRepo,
		cache:       cache,
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	if err := validateExpenseFields(input.Name, input.Amount); err != nil {
		return nil, err
	}
	if input.Date.IsZero() {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseDate,
			"expense date is required",
			domainerror.ErrInvalidExpenseDate,
		)
	}

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
			"not authorized to update this expense",
			domainerror.ErrNotAuthorizedToModifyExpense,
		)
	}

	category := input.Category
	if category == "" {
		category = entity.ExpenseCategoryOther
	}

	expense.Name = strings.TrimSpace(input.Name)
	expense.Category = category
	expense.Amount = input.Amount
	expense.Date = input.Date
	expense.Note = input.Note
	expense.ReceiptURL = input.ReceiptURL
	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	invalidateInsights(ctx, uc.cache, input.UserID)

	return &UpdateExpenseOutput{Expense: NewExpenseOutput(expense)}, nil
}
