// Package error defines domain-specific errors for the application.
package error

import "errors"

// Investment goal domain errors.
var (
	// ErrGoalNotFound is returned when an investment goal is not found in the system.
	ErrGoalNotFound = errors.New("investment goal not found")

	// ErrInvalidTargetAmount is returned when the target amount is zero or negative.
	ErrInvalidTargetAmount = errors.New("target amount must be positive")

	// ErrEmptyGoalName is returned when the goal name is empty.
	ErrEmptyGoalName = errors.New("goal name cannot be empty")
)

// GoalErrorCode defines error codes for investment goal errors.
// Format: GOL-XXYYYY where XX is category and YYYY is specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeGoalNotFound        GoalErrorCode = "GOL-010001"
	ErrCodeInvalidTargetAmount GoalErrorCode = "GOL-010002"
	ErrCodeEmptyGoalName       GoalErrorCode = "GOL-010003"
)

// GoalError represents an investment goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
