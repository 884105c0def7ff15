// Package error defines domain-specific errors for the ShopLedger application.
package error

import "errors"

// Sale domain errors.
var (
	// ErrSaleNotFound is returned when a sale is not found in the system.
	ErrSaleNotFound = errors.New("sale not found")

	// ErrNotAuthorizedToModifySale is returned when the caller does not own the sale.
	ErrNotAuthorizedToModifySale = errors.New("not authorized to modify sale")

	// ErrEmptyItemName is returned when a sale is recorded without an item name.
	ErrEmptyItemName = errors.New("item name cannot be empty")

	// ErrInvalidQuantity is returned when the sale quantity is not a positive integer.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")

	// ErrNegativePrice is returned when the unit price is negative.
	ErrNegativePrice = errors.New("price cannot be negative")

	// ErrInvalidSaleDate is returned when the sale date is missing or invalid.
	ErrInvalidSaleDate = errors.New("invalid sale date")
)

// SaleErrorCode defines error codes for sale errors.
// Format: SAL-XXYYYY where XX is category and YYYY is specific error.
type SaleErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyItemName        SaleErrorCode = "SAL-010001"
	ErrCodeInvalidQuantity      SaleErrorCode = "SAL-010002"
	ErrCodeNegativePrice        SaleErrorCode = "SAL-010003"
	ErrCodeInvalidSaleDate      SaleErrorCode = "SAL-010004"
	ErrCodeSaleNotFound         SaleErrorCode = "SAL-010005"
	ErrCodeNotAuthorizedSale    SaleErrorCode = "SAL-010006"
	ErrCodeMissingSaleFields    SaleErrorCode = "SAL-010007"
)

// SaleError represents a sale error with code and message.
type SaleError struct {
	Code    SaleErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SaleError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SaleError) Unwrap() error {
	return e.Err
}

// NewSaleError creates a new SaleError with the given code and message.
func NewSaleError(code SaleErrorCode, message string, err error) *SaleError {
	return &SaleError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
