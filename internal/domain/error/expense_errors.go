package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the system.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrNotAuthorizedToModifyExpense is returned when the caller does not own the expense.
	ErrNotAuthorizedToModifyExpense = errors.New("not authorized to modify expense")

	// ErrEmptyExpenseName is returned when an expense is recorded without a name.
	ErrEmptyExpenseName = errors.New("expense name cannot be empty")

	// ErrEmptyExpenseCategory is returned when an expense is recorded without a category.
	ErrEmptyExpenseCategory = errors.New("expense category cannot be empty")

	// ErrNegativeAmount is returned when the expense amount is negative.
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidExpenseDate is returned when the expense date is missing or invalid.
	ErrInvalidExpenseDate = errors.New("invalid expense date")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyExpenseName     ExpenseErrorCode = "EXP-010001"
	ErrCodeEmptyExpenseCategory ExpenseErrorCode = "EXP-010002"
	ErrCodeNegativeAmount       ExpenseErrorCode = "EXP-010003"
	ErrCodeInvalidExpenseDate   ExpenseErrorCode = "EXP-010004"
	ErrCodeExpenseNotFound      ExpenseErrorCode = "EXP-010005"
	ErrCodeNotAuthorizedExpense ExpenseErrorCode = "EXP-010006"
	ErrCodeMissingExpenseFields ExpenseErrorCode = "EXP-010007"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
