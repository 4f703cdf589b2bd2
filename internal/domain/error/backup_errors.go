// Package error defines domain-specific errors for the application.
package error

import "errors"

// Backup domain errors.
var (
	// ErrUnsupportedBackupVersion is returned when a backup file declares an unknown version.
	ErrUnsupportedBackupVersion = errors.New("unsupported backup version")

	// ErrInvalidBackupPayload is returned when a backup file fails structural validation.
	ErrInvalidBackupPayload = errors.New("invalid backup payload")

	// ErrInvalidRestoreMode is returned when the restore mode is not replace or merge.
	ErrInvalidRestoreMode = errors.New("restore mode must be replace or merge")
)

// BackupErrorCode defines error codes for backup errors.
// Format: BKP-XXYYYY where XX is category and YYYY is specific error.
type BackupErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeUnsupportedBackupVersion BackupErrorCode = "BKP-010001"
	ErrCodeInvalidBackupPayload     BackupErrorCode = "BKP-010002"
	ErrCodeInvalidRestoreMode       BackupErrorCode = "BKP-010003"

	// Persistence errors (02XXXX)
	ErrCodeRestoreFailed BackupErrorCode = "BKP-020001"
)

// BackupError represents a backup error with code and message.
type BackupError struct {
	Code    BackupErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BackupError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BackupError) Unwrap() error {
	return e.Err
}

// NewBackupError creates a new BackupError with the given code and message.
func NewBackupError(code BackupErrorCode, message string, err error) *BackupError {
	return &BackupError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
