// Package error defines domain-specific errors for the application.
package error

import "errors"

// Settings domain errors.
var (
	// ErrEmptyTagName is returned when a tag name is empty.
	ErrEmptyTagName = errors.New("tag name cannot be empty")

	// ErrEmptyPersonName is returned when a person name is empty.
	ErrEmptyPersonName = errors.New("person name cannot be empty")

	// ErrReservedTagRemoved is returned when the settings drop an engine-reserved tag.
	ErrReservedTagRemoved = errors.New("reserved tags cannot be removed")

	// ErrSelfPersonRemoved is returned when the settings drop the self person.
	ErrSelfPersonRemoved = errors.New("the Myself person cannot be removed")

	// ErrTagMappingNotFound is returned when a tag category mapping is not found.
	ErrTagMappingNotFound = errors.New("tag category mapping not found")

	// ErrDuplicateTagMapping is returned when a tag is mapped twice.
	ErrDuplicateTagMapping = errors.New("tag is already mapped to a category")

	// ErrInvalidTagCategory is returned when a mapping uses an unknown category.
	ErrInvalidTagCategory = errors.New("invalid tag category")
)

// SettingsErrorCode defines error codes for settings errors.
// Format: STG-XXYYYY where XX is category and YYYY is specific error.
type SettingsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyTagName        SettingsErrorCode = "STG-010001"
	ErrCodeEmptyPersonName     SettingsErrorCode = "STG-010002"
	ErrCodeReservedTagRemoved  SettingsErrorCode = "STG-010003"
	ErrCodeSelfPersonRemoved   SettingsErrorCode = "STG-010004"
	ErrCodeTagMappingNotFound  SettingsErrorCode = "STG-010005"
	ErrCodeDuplicateTagMapping SettingsErrorCode = "STG-010006"
	ErrCodeInvalidTagCategory  SettingsErrorCode = "STG-010007"
)

// SettingsError represents a settings error with code and message.
type SettingsError struct {
	Code    SettingsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SettingsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SettingsError) Unwrap() error {
	return e.Err
}

// NewSettingsError creates a new SettingsError with the given code and message.
func NewSettingsError(code SettingsErrorCode, message string, err error) *SettingsError {
	return &SettingsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
