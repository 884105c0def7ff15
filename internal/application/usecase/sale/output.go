// Package sale contains sale-related use cases.
package sale

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopledger/backend/internal/application/adapter"
	"github.com/shopledger/backend/internal/domain/entity"
)

// SaleOutput represents a sale in use case outputs.
type SaleOutput struct {
	ID            uuid.UUID
	ItemName      string
	Quantity      int
	Price         decimal.Decimal
	Total         decimal.Decimal
	PaymentMethod string
	Date          time.Time
	PhotoURL      string
	Notes         string
	Discount      decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewSaleOutput converts a sale entity to its output representation.
func NewSaleOutput(sale *entity.Sale) *SaleOutput {
	return &SaleOutput{
		ID:            sale.ID,
		ItemName:      sale.ItemName,
		Quantity:      sale.Quantity,
		Price:         sale.Price,
		Total:         sale.Total,
		PaymentMethod: sale.PaymentMethod,
		Date:          sale.Date,
		PhotoURL:      sale.PhotoURL,
		Notes:         sale.Notes,
		Discount:      sale.Discount,
		CreatedAt:     sale.CreatedAt,
		UpdatedAt:     sale.UpdatedAt,
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
