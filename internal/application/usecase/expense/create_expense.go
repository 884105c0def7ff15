package expense

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
	// MaxExpenseNameLength is the maximum allowed length for expense names.
	MaxExpenseNameLength = 255
	// MaxNoteLength is the maximum allowed length for expense notes.
	MaxNoteLength = 1000
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	UserID     uuid.UUID
	Name       string
	Category   entity.ExpenseCategory
	Amount     decimal.Decimal
	Date       time.Time
	Note       string
	ReceiptURL string
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *ExpenseOutput
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	cache       adapter.InsightsCache
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository, cache adapter.InsightsCache) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo: expenseRepo,
		cache:       cache,
	}
}

// Execute performs the expense creation. An empty category falls back
// to "Other" so the distribution never has an unnamed slice.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if err := validateExpenseFields(input.Name, input.Amount); err != nil {
		return nil, err
	}
	if len(input.Note) > MaxNoteLength {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeMissingExpenseFields,
			fmt.Sprintf("note must not exceed %d characters", MaxNoteLength),
			nil,
		)
	}

	if input.Date.IsZero() {
		input.Date = time.Now().UTC()
	}

	expense := entity.NewExpense(input.UserID, strings.TrimSpace(input.Name), input.Category, input.Amount, input.Date)
	expense.Note = input.Note
	expense.ReceiptURL = input.ReceiptURL

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	invalidateInsights(ctx, uc.cache, input.UserID)

	return &CreateExpenseOutput{Expense: NewExpenseOutput(expense)}, nil
}

// validateExpenseFields checks the invariants shared by creation and update.
func validateExpenseFields(name string, amount decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeEmptyExpenseName,
			"expense name cannot be empty",
			domainerror.ErrEmptyExpenseName,
		)
	}
	if len(name) > MaxExpenseNameLength {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeEmptyExpenseName,
			fmt.Sprintf("expense name must not exceed %d characters", MaxExpenseNameLength),
			nil,
		)
	}
	if amount.IsNegative() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeNegativeAmount,
			"amount cannot be negative",
			domainerror.ErrNegativeAmount,
		)
	}
	return nil
}
