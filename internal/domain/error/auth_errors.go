// Package error defines domain-specific errors for the application.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrInvalidPassphrase is returned when the unlock passphrase is wrong.
	ErrInvalidPassphrase = errors.New("invalid passphrase")

	// ErrPassphraseNotSet is returned when no passphrase has been configured.
	ErrPassphraseNotSet = errors.New("passphrase has not been configured")

	// ErrInvalidToken is returned when a token is invalid or malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token has expired.
	ErrExpiredToken = errors.New("token has expired")

	// ErrRevokedToken is returned when a refresh token has been locked out.
	ErrRevokedToken = errors.New("token has been revoked")

	// ErrEmptyPassphrase is returned when a new passphrase is empty.
	ErrEmptyPassphrase = errors.New("passphrase cannot be empty")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Unlock errors (01XXXX)
	ErrCodeInvalidPassphrase AuthErrorCode = "AUTH-010001"
	ErrCodePassphraseNotSet  AuthErrorCode = "AUTH-010002"
	ErrCodeRateLimited       AuthErrorCode = "AUTH-010003"
	ErrCodeEmptyPassphrase   AuthErrorCode = "AUTH-010004"

	// Token errors (02XXXX)
	ErrCodeInvalidToken AuthErrorCode = "AUTH-020001"
	ErrCodeExpiredToken AuthErrorCode = "AUTH-020002"
	ErrCodeMissingToken AuthErrorCode = "AUTH-020003"
	ErrCodeRevokedToken AuthErrorCode = "AUTH-020004"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
