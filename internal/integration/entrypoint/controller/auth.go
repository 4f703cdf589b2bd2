// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moneytrail/backend/internal/application/usecase/auth"
	domainerror "github.com/moneytrail/backend/internal/domain/error"
	"github.com/moneytrail/backend/internal/integration/entrypoint/dto"
)

// AuthController handles session endpoints.
type AuthController struct {
	unlockUseCase  *auth.UnlockSessionUseCase
	refreshUseCase *auth.RefreshSessionUseCase
	lockUseCase    *auth.LockSessionUseCase
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(
	unlockUseCase *auth.UnlockSessionUseCase,
	refreshUseCase *auth.RefreshSessionUseCase,
	lockUseCase *auth.LockSessionUseCase,
) *AuthController {
	return &AuthController{
		unlockUseCase:  unlockUseCase,
		refreshUseCase: refreshUseCase,
		lockUseCase:    lockUseCase,
	}
}

// Unlock handles POST /auth/unlock requests.
func (c *AuthController) Unlock(ctx *gin.Context) {
	var req dto.UnlockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeEmptyPassphrase),
		})
		return
	}

	input := auth.UnlockSessionInput{
		Passphrase: req.Passphrase,
	}

	output, err := c.unlockUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	})
}

// Refresh handles POST /auth/refresh requests.
func (c *AuthController) Refresh(ctx *gin.Context) {
	var req dto.RefreshRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := auth.RefreshSessionInput{
		RefreshToken: req.RefreshToken,
	}

	output, err := c.refreshUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	})
}

// Lock handles POST /auth/lock requests.
func (c *AuthController) Lock(ctx *gin.Context) {
	var req dto.LockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		// Locking never fails from the caller's point of view
		ctx.JSON(http.StatusOK, dto.MessageResponse{
			Message: "Session locked",
		})
		return
	}

	input := auth.LockSessionInput{
		RefreshToken: req.RefreshToken,
	}

	output, _ := c.lockUseCase.Execute(ctx.Request.Context(), input)

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: output.Message,
	})
}

// handleAuthError handles auth errors and returns appropriate HTTP responses.
func (c *AuthController) handleAuthError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		statusCode := c.getStatusCodeForAuthError(authErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForAuthError maps auth error codes to HTTP status codes.
func (c *AuthController) getStatusCodeForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeEmptyPassphrase:
		return http.StatusBadRequest
	case domainerror.ErrCodeInvalidPassphrase,
		domainerror.ErrCodePassphraseNotSet,
		domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeExpiredToken,
		domainerror.ErrCodeMissingToken,
		domainerror.ErrCodeRevokedToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
