// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/application/adapter"
	"github.com/shopledger/backend/internal/domain/entity"
)

// ExpenseOutput represents an expense in use case outputs.
type ExpenseOutput struct {
	ID         uuid.UUID
	Name       string
	Category   entity.ExpenseCategory
	Amount     decimal.Decimal
	Date       time.Time
	Note       string
	ReceiptURL string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewExpenseOutput converts an expense entity to its output representation.
func NewExpenseOutput(expense *entity.Expense) *ExpenseOutput {
	return &ExpenseOutput{
		ID:         expense.ID,
		Name:       expense.Name,
		Category:   expense.Category,
		Amount:     expense.Amount,
		Date:       expense.Date,
		Note:       expense.Note,
		ReceiptURL: expense.ReceiptURL,
		CreatedAt:  expense.CreatedAt,
		UpdatedAt:  expense.UpdatedAt,
	}
}

// invalidateInsights drops the owner's cached insights after a write.
// A missing or failing cache never blocks the write itself.
func invalidateInsights(ctx context.Context, cache adapter.InsightsCache, userID uuid.UUID) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, userID); err != nil {
		slog.Debug("Failed to invalidate insights cache", "userID", userID, "error", err)
	}
}
