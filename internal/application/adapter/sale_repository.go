// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/shopledger/backend/internal/domain/entity"
)

// SaleRepository defines the interface for sale persistence operations.
type SaleRepository interface {
	// Create creates a new sale in the database.
	Create(ctx context.Context, sale *entity.Sale) error

	// FindByID retrieves a sale by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)

	// FindByUser retrieves all sales for a given owner, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Sale, error)

	// Update replaces an existing sale in the database.
	Update(ctx context.Context, sale *entity.Sale) error

	// Delete soft-deletes a sale from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteAllByUser soft-deletes every sale owned by the given user.
	// Returns the count of deleted sales.
	DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}
