// Package error defines domain-specific errors for the application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrInvalidBudgetType is returned when the budget type is invalid.
	ErrInvalidBudgetType = errors.New("invalid budget type")

	// ErrInvalidBudgetCategory is returned when the budget category is invalid.
	ErrInvalidBudgetCategory = errors.New("invalid budget category")

	// ErrInvalidBudgetAmount is returned when the budget amount is negative.
	ErrInvalidBudgetAmount = errors.New("budget amount must be non-negative")

	// ErrEmptyBudgetName is returned when the budget name is empty.
	ErrEmptyBudgetName = errors.New("budget name cannot be empty")

	// ErrEmptyBudgetTags is returned when a budget tracks no tags.
	ErrEmptyBudgetTags = errors.New("budget must track at least one tag")

	// ErrInvalidBudgetMonth is returned when the pinned month is not YYYY-MM.
	ErrInvalidBudgetMonth = errors.New("budget month must be in YYYY-MM format")

	// ErrInvalidBudgetWindow is returned when a custom window is inverted.
	ErrInvalidBudgetWindow = errors.New("budget start date must not be after end date")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BDG-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBudgetType     BudgetErrorCode = "BDG-010001"
	ErrCodeInvalidBudgetCategory BudgetErrorCode = "BDG-010002"
	ErrCodeInvalidBudgetAmount   BudgetErrorCode = "BDG-010003"
	ErrCodeEmptyBudgetName       BudgetErrorCode = "BDG-010004"
	ErrCodeEmptyBudgetTags       BudgetErrorCode = "BDG-010005"
	ErrCodeInvalidBudgetMonth    BudgetErrorCode = "BDG-010006"
	ErrCodeInvalidBudgetWindow   BudgetErrorCode = "BDG-010007"
	ErrCodeBudgetNotFound        BudgetErrorCode = "BDG-010008"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
