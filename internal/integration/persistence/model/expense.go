package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopledger/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name       string          `gorm:"type:varchar(255);not null"`
	Category   string          `gorm:"type:varchar(50);not null;default:'Other';index"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date       time.Time       `gorm:"type:timestamptz;not null;index"`
	Note       string          `gorm:"type:text"`
	ReceiptURL string          `gorm:"type:text"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
	DeletedAt  gorm.DeletedAt  `gorm:"index"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Expense{
		ID:         m.ID,
		UserID:     m.UserID,
		Name:       m.Name,
		Category:   entity.ExpenseCategory(m.Category),
		Amount:     m.Amount,
		Date:       m.Date,
		Note:       m.Note,
		ReceiptURL: m.ReceiptURL,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		DeletedAt:  deletedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	var deletedAt gorm.DeletedAt
	if expense.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *expense.DeletedAt, Valid: true}
	}

	return &ExpenseModel{
		ID:         expense.ID,
		UserID:     expense.UserID,
		Name:       expense.Name,
		Category:   string(expense.Category),
		Amount:     expense.Amount,
		Date:       expense.Date,
		Note:       expense.Note,
		ReceiptURL: expense.ReceiptURL,
		CreatedAt:  expense.CreatedAt,
		UpdatedAt:  expense.UpdatedAt,
		DeletedAt:  deletedAt,
	}
}
