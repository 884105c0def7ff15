package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseCategory classifies an expense. The set below covers the
// default categories; free-form values are accepted as well.
type ExpenseCategory string

const (
	ExpenseCategoryRent      ExpenseCategory = "Rent"
	ExpenseCategoryUtilities ExpenseCategory = "Utilities"
	ExpenseCategoryStock     ExpenseCategory = "Stock"
	ExpenseCategorySalaries  ExpenseCategory = "Salaries"
	ExpenseCategoryTransport ExpenseCategory = "Transport"
	ExpenseCategoryOther     ExpenseCategory = "Other"
)

// Expense represents a business expense in the ShopLedger system.
type Expense struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Name       string
	Category   ExpenseCategory
	Amount     decimal.Decimal
	Date       time.Time
	Note       string
	ReceiptURL string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(
	userID uuid.UUID,
	name string,
	category ExpenseCategory,
	amount decimal.Decimal,
	date time.Time,
) *Expense {
	if category == "" {
		category = ExpenseCategoryOther
	}
	now := time.Now().UTC()

	return &Expense{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Category:  category,
		Amount:    amount,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
