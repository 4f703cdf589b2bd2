// Package dto defines data transfer objects for API requests and responses.
package dto

// UnlockRequest represents the request body for unlocking a session.
type UnlockRequest struct {
	Passphrase string `json:"passphrase" binding:"required"`
}

// RefreshRequest represents the request body for token refresh.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LockRequest represents the request body for locking a session.
type LockRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// TokenResponse represents a token pair in API responses.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
