// Package error defines domain-specific errors for the application.
package error

import "errors"

// Tag suggestion domain errors.
var (
	// ErrSuggestionServiceError is returned when the suggestion service encounters an error.
	ErrSuggestionServiceError = errors.New("suggestion service error")

	// ErrSuggestionRateLimited is returned when the suggestion service rate limits requests.
	ErrSuggestionRateLimited = errors.New("suggestion service rate limited")

	// ErrEmptyDescriptions is returned when no descriptions are provided to suggest tags for.
	ErrEmptyDescriptions = errors.New("descriptions list cannot be empty")

	// ErrTooManyDescriptions is returned when the description list exceeds the batch limit.
	ErrTooManyDescriptions = errors.New("too many descriptions in one request")

	// ErrSuggestionUnavailable is returned when the suggestion service is not configured.
	ErrSuggestionUnavailable = errors.New("suggestion service is not configured")
)

// SuggestionErrorCode defines error codes for tag suggestion errors.
// Format: SGT-XXYYYY where XX is category and YYYY is specific error.
type SuggestionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyDescriptions   SuggestionErrorCode = "SGT-010001"
	ErrCodeTooManyDescriptions SuggestionErrorCode = "SGT-010002"

	// External service errors (02XXXX)
	ErrCodeSuggestionServiceError SuggestionErrorCode = "SGT-020001"
	ErrCodeSuggestionRateLimited  SuggestionErrorCode = "SGT-020002"
	ErrCodeSuggestionUnavailable  SuggestionErrorCode = "SGT-020003"
)

// SuggestionError represents a tag suggestion error with code and message.
type SuggestionError struct {
	Code    SuggestionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SuggestionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SuggestionError) Unwrap() error {
	return e.Err
}

// NewSuggestionError creates a new SuggestionError with the given code and message.
func NewSuggestionError(code SuggestionErrorCode, message string, err error) *SuggestionError {
	return &SuggestionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
