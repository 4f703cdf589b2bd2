// Package auth contains session unlock and token use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/moneytrail/backend/internal/application/adapter"
	domainerror "github.com/moneytrail/backend/internal/domain/error"
)

// UnlockSessionInput represents the input for unlocking a session.
type UnlockSessionInput struct {
	Passphrase string
}

// UnlockSessionOutput represents the output of unlocking a session.
type UnlockSessionOutput struct {
	AccessToken  string
	RefreshToken string
}

// UnlockSessionUseCase handles the passphrase unlock logic.
type UnlockSessionUseCase struct {
	settingsRepo      adapter.SettingsRepository
	passphraseService adapter.PassphraseService
	tokenService      adapter.TokenService
}

// NewUnlockSessionUseCase creates a new UnlockSessionUseCase instance.
func NewUnlockSessionUseCase(
	settingsRepo adapter.SettingsRepository,
	passphraseService adapter.PassphraseService,
	tokenService adapter.TokenService,
) *UnlockSessionUseCase {
	return &UnlockSessionUseCase{
		settingsRepo:      settingsRepo,
		passphraseService: passphraseService,
		tokenService:      tokenService,
	}
}

// Execute verifies the passphrase against the stored hash and issues a token pair.
func (uc *UnlockSessionUseCase) Execute(ctx context.Context, input UnlockSessionInput) (*UnlockSessionOutput, error) {
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	// Without a stored hash there is nothing to verify against
	if settings.PassphraseHash == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodePassphraseNotSet,
			"no passphrase has been configured",
			domainerror.ErrPassphraseNotSet,
		)
	}

	// Verify passphrase
	if err := uc.passphraseService.VerifyPassphrase(settings.PassphraseHash, input.Passphrase); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidPassphrase,
			"invalid passphrase",
			domainerror.ErrInvalidPassphrase,
		)
	}

	// Generate tokens
	tokenPair, err := uc.tokenService.GenerateTokenPair(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &UnlockSessionOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
	}, nil
}
