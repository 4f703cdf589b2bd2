// Package settings contains vocabulary and preference use cases.
package settings

import (
	"context"
	"fmt"

	"github.com/moneytrail/backend/internal/application/adapter"
	"github.com/moneytrail/backend/internal/domain/entity"
)

// GetSettingsOutput represents the output of reading the settings.
type GetSettingsOutput struct {
	Settings *entity.Settings
}

// GetSettingsUseCase reads the single settings row, seeding defaults on the
// first call.
type GetSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewGetSettingsUseCase creates a new GetSettingsUseCase instance.
func NewGetSettingsUseCase(settingsRepo adapter.SettingsRepository) *GetSettingsUseCase {
	return &GetSettingsUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute reads the settings.
func (uc *GetSettingsUseCase) Execute(ctx context.Context) (*GetSettingsOutput, error) {
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	return &GetSettingsOutput{
		Settings: settings,
	}, nil
}
