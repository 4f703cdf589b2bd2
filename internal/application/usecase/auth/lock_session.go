// Package auth contains session unlock and token use cases.
package auth

import (
	"context"

	"github.com/moneytrail/backend/internal/application/adapter"
)

// LockSessionInput represents the input for locking a session.
type LockSessionInput struct {
	RefreshToken string
}

// LockSessionOutput represents the output of locking a session.
type LockSessionOutput struct {
	Message string
}

// LockSessionUseCase handles session lock logic.
type LockSessionUseCase struct {
	tokenService adapter.TokenService
}

// NewLockSessionUseCase creates a new LockSessionUseCase instance.
func NewLockSessionUseCase(tokenService adapter.TokenService) *LockSessionUseCase {
	return &LockSessionUseCase{
		tokenService: tokenService,
	}
}

// Execute locks the session by invalidating the refresh token.
func (uc *LockSessionUseCase) Execute(ctx context.Context, input LockSessionInput) (*LockSessionOutput, error) {
	// Locking an already locked session is a no-op
	_ = uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken)

	return &LockSessionOutput{
		Message: "Successfully locked",
	}, nil
}
