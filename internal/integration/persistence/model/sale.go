package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopledger/backend/internal/domain/entity"
)

// SaleModel represents the sales table in the database.
type SaleModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemName      string          `gorm:"type:varchar(255);not null"`
	Quantity      int             `gorm:"not null"`
	Price         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Total         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PaymentMethod string          `gorm:"type:varchar(50);not null;default:'Cash'"`
	Date          time.Time       `gorm:"type:timestamptz;not null;index"`
	PhotoURL      string          `gorm:"type:text"`
	Notes         string          `gorm:"type:text"`
	Discount      decimal.Decimal `gorm:"type:decimal(15,2);default:0"`
	ProductID     *uuid.UUID      `gorm:"type:uuid;index"`
	CustomerID    *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
	DeletedAt     gorm.DeletedAt  `gorm:"index"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the SaleModel.
func (SaleModel) TableName() string {
	return "sales"
}

// ToEntity converts a SaleModel to a domain Sale entity.
func (m *SaleModel) ToEntity() *entity.Sale {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Sale{
		ID:            m.ID,
		UserID:        m.UserID,
		ItemName:      m.ItemName,
		Quantity:      m.Quantity,
		Price:         m.Price,
		Total:         m.Total,
		PaymentMethod: m.PaymentMethod,
		Date:          m.Date,
		PhotoURL:      m.PhotoURL,
		Notes:         m.Notes,
		Discount:      m.Discount,
		ProductID:     m.ProductID,
		CustomerID:    m.CustomerID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		DeletedAt:     deletedAt,
	}
}

// SaleFromEntity creates a SaleModel from a domain Sale entity.
func SaleFromEntity(sale *entity.Sale) *SaleModel {
	var deletedAt gorm.DeletedAt
	if sale.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *sale.DeletedAt, Valid: true}
	}

	return &SaleModel{
		ID:            sale.ID,
		UserID:        sale.UserID,
		ItemName:      sale.ItemName,
		Quantity:      sale.Quantity,
		Price:         sale.Price,
		Total:         sale.Total,
		PaymentMethod: sale.PaymentMethod,
		Date:          sale.Date,
		PhotoURL:      sale.PhotoURL,
		Notes:         sale.Notes,
		Discount:      sale.Discount,
		ProductID:     sale.ProductID,
		CustomerID:    sale.CustomerID,
		CreatedAt:     sale.CreatedAt,
		UpdatedAt:     sale.UpdatedAt,
		DeletedAt:     deletedAt,
	}
}
