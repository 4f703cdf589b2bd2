// Package error defines domain-specific errors for the application.
package error

import "errors"

// Ledger domain errors.
var (
	// ErrSettleSelfPerson is returned when a settlement targets the user themselves.
	ErrSettleSelfPerson = errors.New("cannot settle a balance with yourself")

	// ErrInvalidSettlementKind is returned when the settlement kind is not recognized.
	ErrInvalidSettlementKind = errors.New("invalid settlement kind")

	// ErrNegativeSettlementAmount is returned when a settlement component amount is negative.
	ErrNegativeSettlementAmount = errors.New("settlement amounts must be non-negative")

	// ErrEmptySettlementPerson is returned when the settlement person is empty.
	ErrEmptySettlementPerson = errors.New("settlement person cannot be empty")
)

// LedgerErrorCode defines error codes for ledger errors.
// Format: LGR-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeSettleSelfPerson         LedgerErrorCode = "LGR-010001"
	ErrCodeInvalidSettlementKind    LedgerErrorCode = "LGR-010002"
	ErrCodeNegativeSettlementAmount LedgerErrorCode = "LGR-010003"
	ErrCodeEmptySettlementPerson    LedgerErrorCode = "LGR-010004"

	// Persistence errors (02XXXX)
	ErrCodeSettlementPersistFailed LedgerErrorCode = "LGR-020001"
)

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
