package dto

import (
	"time"

	"github.com/shopledger/backend/internal/application/usecase/sale"
)

// CreateSaleRequest represents the request body for sale creation.
// Sale dates carry the time of day because peak-hour analysis needs it;
// an omitted date means "now".
type CreateSaleRequest struct {
	ItemName      string  `json:"item_name" binding:"required,min=1,max=255"`
	Quantity      int     `json:"quantity" binding:"required,gt=0"`
	Price         float64 `json:"price" binding:"gte=0"`
	PaymentMethod string  `json:"payment_method,omitempty" binding:"omitempty,max=50"`
	Date          string  `json:"date,omitempty"`
	PhotoURL      string  `json:"photo_url,omitempty"`
	Notes         string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
	Discount      float64 `json:"discount,omitempty" binding:"omitempty,gte=0"`
	ProductID     *string `json:"product_id,omitempty"`
	CustomerID    *string `json:"customer_id,omitempty"`
}

// UpdateSaleRequest represents the request body for sale update. The
// update replaces all editable fields.
type UpdateSaleRequest struct {
	ItemName      string  `json:"item_name" binding:"required,min=1,max=255"`
	Quantity      int     `json:"quantity" binding:"required,gt=0"`
	Price         float64 `json:"price" binding:"gte=0"`
	PaymentMethod string  `json:"payment_method,omitempty" binding:"omitempty,max=50"`
	Date          string  `json:"date" binding:"required"`
	PhotoURL      string  `json:"photo_url,omitempty"`
	Notes         string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
	Discount      float64 `json:"discount,omitempty" binding:"omitempty,gte=0"`
	ProductID     *string `json:"product_id,omitempty"`
	CustomerID    *string `json:"customer_id,omitempty"`
}

// SaleResponse represents a single sale in API responses.
type SaleResponse struct {
	ID            string    `json:"id"`
	ItemName      string    `json:"item_name"`
	Quantity      int       `json:"quantity"`
	Price         string    `json:"price"`
	Total         string    `json:"total"`
	PaymentMethod string    `json:"payment_method"`
	Date          string    `json:"date"`
	PhotoURL      string    `json:"photo_url,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	Discount      string    `json:"discount"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SaleListResponse represents the response for listing sales.
type SaleListResponse struct {
	Sales []SaleResponse `json:"sales"`
}

// ClearSalesResponse represents the response for clearing all sales.
type ClearSalesResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

// ToSaleResponse converts a SaleOutput to a SaleResponse DTO.
func ToSaleResponse(s *sale.SaleOutput) SaleResponse {
	return SaleResponse{
		ID:            s.ID.String(),
		ItemName:      s.ItemName,
		Quantity:      s.Quantity,
		Price:         s.Price.String(),
		Total:         s.Total.String(),
		PaymentMethod: s.PaymentMethod,
		Date:          s.Date.Format(time.RFC3339),
		PhotoURL:      s.PhotoURL,
		Notes:         s.Notes,
		Discount:      s.Discount.String(),
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// ToSaleListResponse converts a ListSalesOutput to a SaleListResponse DTO.
func ToSaleListResponse(output *sale.ListSalesOutput) SaleListResponse {
	sales := make([]SaleResponse, len(output.Sales))
	for i, s := range output.Sales {
		sales[i] = ToSaleResponse(s)
	}
	return SaleListResponse{Sales: sales}
}
