package dto

import (
	"time"

	"github.com/shopledger/backend/internal/application/usecase/expense"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	Name       string  `json:"name" binding:"required,min=1,max=255"`
	Category   string  `json:"category,omitempty" binding:"omitempty,max=50"`
	Amount     float64 `json:"amount" binding:"gte=0"`
	Date       string  `json:"date,omitempty"`
	Note       string  `json:"note,omitempty" binding:"omitempty,max=1000"`
	ReceiptURL string  `json:"receipt_url,omitempty"`
}

// UpdateExpenseRequest represents the request body for expense update.
type UpdateExpenseRequest struct {
	Name       string  `json:"name" binding:"required,min=1,max=255"`
	Category   string  `json:"category,omitempty" binding:"omitempty,max=50"`
	Amount     float64 `json:"amount" binding:"gte=0"`
	Date       string  `json:"date" binding:"required"`
	Note       string  `json:"note,omitempty" binding:"omitempty,max=1000"`
	ReceiptURL string  `json:"receipt_url,omitempty"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Amount     string    `json:"amount"`
	Date       string    `json:"date"`
	Note       string    `json:"note,omitempty"`
	ReceiptURL string    `json:"receipt_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ClearExpensesResponse represents the response for clearing all expenses.
type ClearExpensesResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

// ToExpenseResponse converts an ExpenseOutput to an ExpenseResponse DTO.
func ToExpenseResponse(e *expense.ExpenseOutput) ExpenseResponse {
	return ExpenseResponse{
		ID:         e.ID.String(),
		Name:       e.Name,
		Category:   string(e.Category),
		Amount:     e.Amount.String(),
		Date:       e.Date.Format(time.RFC3339),
		Note:       e.Note,
		ReceiptURL: e.ReceiptURL,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

// ToExpenseListResponse converts a ListExpensesOutput to an ExpenseListResponse DTO.
func ToExpenseListResponse(output *expense.ListExpensesOutput) ExpenseListResponse {
	expenses := make([]ExpenseResponse, len(output.Expenses))
	for i, e := range output.Expenses {
		expenses[i] = ToExpenseResponse(e)
	}
	return ExpenseListResponse{Expenses: expenses}
}
