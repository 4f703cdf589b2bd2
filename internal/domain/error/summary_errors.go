// Package error defines domain-specific errors for the application.
package error

import "errors"

// Summary domain errors.
var (
	// ErrInvalidDateFormat is returned when date format is invalid.
	ErrInvalidDateFormat = errors.New("invalid date format, expected YYYY-MM-DD")

	// ErrInvalidDateRange is returned when the end of a window is before its start.
	ErrInvalidDateRange = errors.New("end date must not be before start date")

	// ErrInvalidMonthCount is returned when a monthly comparison asks for no months.
	ErrInvalidMonthCount = errors.New("months must be a positive number")
)

// SummaryErrorCode defines error codes for summary errors.
// Format: SUM-XXYYYY where XX is category and YYYY is specific error.
type SummaryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDateFormat SummaryErrorCode = "SUM-010001"
	ErrCodeInvalidDateRange  SummaryErrorCode = "SUM-010002"
	ErrCodeInvalidMonthCount SummaryErrorCode = "SUM-010003"

	// Internal errors (99XXXX)
	ErrCodeSummaryInternalError SummaryErrorCode = "SUM-990001"
)

// SummaryError represents a summary error with code and message.
type SummaryError struct {
	Code    SummaryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SummaryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SummaryError) Unwrap() error {
	return e.Err
}

// NewSummaryError creates a new SummaryError with the given code and message.
func NewSummaryError(code SummaryErrorCode, message string, err error) *SummaryError {
	return &SummaryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
