// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/moneytrail/backend/internal/domain/entity"
)

// SettingsRepository defines the interface for the single settings row.
type SettingsRepository interface {
	// Get retrieves the settings, seeding defaults when none exist yet.
	Get(ctx context.Context) (*entity.Settings, error)

	// Save overwrites the settings.
	Save(ctx context.Context, settings *entity.Settings) error
}
