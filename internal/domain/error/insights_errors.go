package error

import "errors"

// Insights domain errors. The statistics engine itself never fails;
// these cover the delivery layer around it (snapshot loading, advisor).
var (
	// ErrAdvisorUnavailable is returned when the advisor service is not configured.
	ErrAdvisorUnavailable = errors.New("advisor service is not available")
)

// InsightsErrorCode defines error codes for insights delivery errors.
// Format: INS-XXYYYY where XX is category and YYYY is specific error.
type InsightsErrorCode string

const (
	// Internal errors (99XXXX)
	ErrCodeInsightsInternalError InsightsErrorCode = "INS-990001"
	ErrCodeAdvisorUnavailable    InsightsErrorCode = "INS-990002"
	ErrCodeAdvisorFailed         InsightsErrorCode = "INS-990003"
)

// InsightsError represents an insights delivery error with code and message.
type InsightsError struct {
	Code    InsightsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *InsightsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *InsightsError) Unwrap() error {
	return e.Err
}

// NewInsightsError creates a new InsightsError with the given code and message.
func NewInsightsError(code InsightsErrorCode, message string, err error) *InsightsError {
	return &InsightsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
