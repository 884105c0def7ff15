package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a shop owner account in the ShopLedger system. All
// sales and expenses are scoped to a single owner; the engine never
// merges data across owners.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	ShopName     string
	Currency     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User with default values.
func NewUser(email, name, shopName, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		ShopName:     shopName,
		Currency:     "USD",
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
