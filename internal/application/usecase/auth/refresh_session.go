// Package auth contains session unlock and token use cases.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/moneytrail/backend/internal/application/adapter"
	domainerror "github.com/moneytrail/backend/internal/domain/error"
)

// RefreshSessionInput represents the input for token refresh.
type RefreshSessionInput struct {
	RefreshToken string
}

// RefreshSessionOutput represents the output of token refresh.
type RefreshSessionOutput struct {
	AccessToken  string
	RefreshToken string
}

// RefreshSessionUseCase handles token refresh logic.
type RefreshSessionUseCase struct {
	tokenService adapter.TokenService
}

// NewRefreshSessionUseCase creates a new RefreshSessionUseCase instance.
func NewRefreshSessionUseCase(tokenService adapter.TokenService) *RefreshSessionUseCase {
	return &RefreshSessionUseCase{
		tokenService: tokenService,
	}
}

// Execute rotates the refresh token and returns a fresh token pair.
func (uc *RefreshSessionUseCase) Execute(ctx context.Context, input RefreshSessionInput) (*RefreshSessionOutput, error) {
	// Validate refresh token
	if _, err := uc.tokenService.ValidateRefreshToken(ctx, input.RefreshToken); err != nil {
		return nil, mapTokenError(err)
	}

	// A used refresh token never mints a second pair
	if err := uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to invalidate old token: %w", err)
	}

	// Generate new token pair
	tokenPair, err := uc.tokenService.GenerateTokenPair(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate new tokens: %w", err)
	}

	return &RefreshSessionOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
	}, nil
}

// mapTokenError translates token validation failures into coded auth errors.
func mapTokenError(err error) error {
	switch {
	case errors.Is(err, domainerror.ErrExpiredToken):
		return domainerror.NewAuthError(
			domainerror.ErrCodeExpiredToken,
			"refresh token has expired",
			domainerror.ErrExpiredToken,
		)
	case errors.Is(err, domainerror.ErrRevokedToken):
		return domainerror.NewAuthError(
			domainerror.ErrCodeRevokedToken,
			"refresh token has been revoked",
			domainerror.ErrRevokedToken,
		)
	default:
		return domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid refresh token",
			domainerror.ErrInvalidToken,
		)
	}
}
