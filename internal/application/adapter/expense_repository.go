package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/shopledger/backend/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindByUser retrieves all expenses for a given owner, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error)

	// Update replaces an existing expense in the database.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete soft-deletes an expense from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteAllByUser soft-deletes every expense owned by the given user.
	// Returns the count of deleted expenses.
	DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
