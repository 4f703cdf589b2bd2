// Package error defines domain-specific errors for the application.
package error

import "errors"

// Alert domain errors.
var (
	// ErrAlertQueueFailed is returned when an alert fails to be queued.
	ErrAlertQueueFailed = errors.New("failed to queue alert")

	// ErrAlertSendFailed is returned when an alert email fails to be sent.
	ErrAlertSendFailed = errors.New("failed to send alert email")

	// ErrAlertJobNotFound is returned when an alert job is not found.
	ErrAlertJobNotFound = errors.New("alert job not found")

	// ErrTemplateRenderFailed is returned when alert template rendering fails.
	ErrTemplateRenderFailed = errors.New("failed to render alert template")

	// ErrPermanentAlertFailure is returned when an alert fails with a permanent error.
	ErrPermanentAlertFailure = errors.New("permanent alert failure")

	// ErrTemporaryAlertFailure is returned when an alert fails with a temporary error.
	ErrTemporaryAlertFailure = errors.New("temporary alert failure")
)

// AlertErrorCode defines error codes for alert errors.
// Format: ALR-XXYYYY where XX is category and YYYY is specific error.
type AlertErrorCode string

const (
	// Queue errors (01XXXX)
	ErrCodeAlertQueueFailed AlertErrorCode = "ALR-010001"
	ErrCodeAlertJobNotFound AlertErrorCode = "ALR-010002"

	// Send errors (02XXXX)
	ErrCodeAlertSendFailed       AlertErrorCode = "ALR-020001"
	ErrCodePermanentAlertFailure AlertErrorCode = "ALR-020002"
	ErrCodeTemporaryAlertFailure AlertErrorCode = "ALR-020003"

	// Template errors (03XXXX)
	ErrCodeTemplateRenderFailed AlertErrorCode = "ALR-030001"
)

// AlertError represents an alert error with code and message.
type AlertError struct {
	Code    AlertErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AlertError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AlertError) Unwrap() error {
	return e.Err
}

// NewAlertError creates a new AlertError with the given code and message.
func NewAlertError(code AlertErrorCode, message string, err error) *AlertError {
	return &AlertError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
