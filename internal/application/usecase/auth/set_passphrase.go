// Package auth contains session unlock and token use cases.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/moneytrail/backend/internal/application/adapter"
	domainerror "github.com/moneytrail/backend/internal/domain/error"
)

// SetPassphraseInput represents the input for setting the unlock passphrase.
type SetPassphraseInput struct {
	Passphrase string
}

// SetPassphraseOutput represents the output of setting the unlock passphrase.
type SetPassphraseOutput struct {
	Updated bool
}

// SetPassphraseUseCase stores the bcrypt hash of the unlock passphrase.
// It runs at startup with the configured passphrase and keeps the stored
// hash in sync with it.
type SetPassphraseUseCase struct {
	settingsRepo      adapter.SettingsRepository
	passphraseService adapter.PassphraseService
}

// NewSetPassphraseUseCase creates a new SetPassphraseUseCase instance.
func NewSetPassphraseUseCase(
	settingsRepo adapter.SettingsRepository,
	passphraseService adapter.PassphraseService,
) *SetPassphraseUseCase {
	return &SetPassphraseUseCase{
		settingsRepo:      settingsRepo,
		passphraseService: passphraseService,
	}
}

// Execute hashes the passphrase and saves it into settings.
func (uc *SetPassphraseUseCase) Execute(ctx context.Context, input SetPassphraseInput) (*SetPassphraseOutput, error) {
	// Validate passphrase
	if input.Passphrase == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmptyPassphrase,
			"passphrase cannot be empty",
			domainerror.ErrEmptyPassphrase,
		)
	}

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	// An unchanged passphrase keeps its stored hash
	if settings.PassphraseHash != "" {
		if err := uc.passphraseService.VerifyPassphrase(settings.PassphraseHash, input.Passphrase); err == nil {
			return &SetPassphraseOutput{Updated: false}, nil
		}
	}

	// Hash new passphrase
	passphraseHash, err := uc.passphraseService.HashPassphrase(input.Passphrase)
	if err != nil {
		return nil, fmt.Errorf("failed to hash passphrase: %w", err)
	}

	settings.PassphraseHash = passphraseHash
	settings.UpdatedAt = time.Now().UTC()

	if err := uc.settingsRepo.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	return &SetPassphraseOutput{Updated: true}, nil
}
