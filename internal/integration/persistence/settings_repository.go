// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/moneytrail/backend/internal/application/adapter"
	"github.com/moneytrail/backend/internal/domain/entity"
	"github.com/moneytrail/backend/internal/integration/persistence/model"
)

// settingsRepository implements the adapter.SettingsRepository interface.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository instance.
func NewSettingsRepository(db *gorm.DB) adapter.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// Get retrieves the settings row, seeding the defaults on first read.
func (r *settingsRepository) Get(ctx context.Context) (*entity.Settings, error) {
	var settingsModel model.SettingsModel
	result := r.db.WithContext(ctx).Where("id = ?", model.SettingsRowID).First(&settingsModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return r.seedDefaults(ctx)
		}
		return nil, result.Error
	}
	return settingsModel.ToEntity(), nil
}

// Save overwrites the settings row.
func (r *settingsRepository) Save(ctx context.Context, settings *entity.Settings) error {
	settingsModel := model.SettingsFromEntity(settings)
	result := r.db.WithContext(ctx).Save(settingsModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// seedDefaults writes and returns the default settings.
func (r *settingsRepository) seedDefaults(ctx context.Context) (*entity.Settings, error) {
	defaults := entity.DefaultSettings()
	settingsModel := model.SettingsFromEntity(defaults)
	if err := r.db.WithContext(ctx).Create(settingsModel).Error; err != nil {
		return nil, fmt.Errorf("failed to seed default settings: %w", err)
	}
	return defaults, nil
}
