package error

import "errors"

// Email domain errors.
var (
	// ErrEmailSendFailed is returned when an email could not be delivered.
	ErrEmailSendFailed = errors.New("failed to send email")
)

// EmailErrorCode defines error codes for email errors.
// Format: EML-XXYYYY where XX is category and YYYY is specific error.
type EmailErrorCode string

const (
	// Delivery errors (01XXXX)
	ErrCodePermanentEmailFailure EmailErrorCode = "EML-010001"
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EML-010002"
)

// EmailError represents an email error with code and message.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EmailError) Unwrap() error {
	return e.Err
}

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
