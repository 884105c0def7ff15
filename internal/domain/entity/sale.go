// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultPaymentMethod is assigned when a sale is recorded without one.
const DefaultPaymentMethod = "Cash"

// Sale represents a single sales transaction in the ShopLedger system.
// Total is always derived from Quantity and Price; it is recomputed on
// every write path and never trusted from callers.
type Sale struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	ItemName      string
	Quantity      int
	Price         decimal.Decimal
	Total         decimal.Decimal
	PaymentMethod string
	Date          time.Time
	PhotoURL      string
	Notes         string
	Discount      decimal.Decimal
	ProductID     *uuid.UUID
	CustomerID    *uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time
}

// NewSale creates a new Sale entity. The total is computed from
// quantity and price.
func NewSale(
	userID uuid.UUID,
	itemName string,
	quantity int,
	price decimal.Decimal,
	paymentMethod string,
	date time.Time,
) *Sale {
	if paymentMethod == "" {
		paymentMethod = DefaultPaymentMethod
	}
	now := time.Now().UTC()

	sale := &Sale{
		ID:            uuid.New(),
		UserID:        userID,
		ItemName:      itemName,
		Quantity:      quantity,
		Price:         price,
		PaymentMethod: paymentMethod,
		Date:          date,
		Discount:      decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	sale.RecomputeTotal()
	return sale
}

// RecomputeTotal re-derives Total from Quantity and Price. Callers must
// invoke this after changing either field; the stored total is never
// edited independently.
func (s *Sale) RecomputeTotal() {
	s.Total = s.Price.Mul(decimal.NewFromInt(int64(s.Quantity)))
}
