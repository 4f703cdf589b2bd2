// Package settings contains vocabulary and preference use cases.
package settings

import (
	"context"
	"fmt"
	"time"

	"github.com/moneytrail/backend/internal/application/adapter"
	"github.com/moneytrail/backend/internal/domain/entity"
	domainerror "github.com/moneytrail/backend/internal/domain/error"
)

// reservedTags are the tags the engines give meaning to. The vocabulary must
// always contain them.
var reservedTags = []string{entity.TagSettlement, entity.TagInvestment}

// UpdateSettingsInput represents the replacement vocabularies.
type UpdateSettingsInput struct {
	Tags   []string
	People []string
}

// UpdateSettingsOutput represents the output of a settings update.
type UpdateSettingsOutput struct {
	Settings *entity.Settings
}

// UpdateSettingsUseCase replaces the tag and person vocabularies.
type UpdateSettingsUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewUpdateSettingsUseCase creates a new UpdateSettingsUseCase instance.
func NewUpdateSettingsUseCase(settingsRepo adapter.SettingsRepository) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute performs the settings update.
func (uc *UpdateSettingsUseCase) Execute(ctx context.Context, input UpdateSettingsInput) (*UpdateSettingsOutput, error) {
	tags := dedupe(input.Tags)
	people := dedupe(input.People)

	// Validate tags
	for _, tag := range tags {
		if tag == "" {
			return nil, domainerror.NewSettingsError(
				domainerror.ErrCodeEmptyTagName,
				"tag name cannot be empty",
				domainerror.ErrEmptyTagName,
			)
		}
	}
	for _, reserved := range reservedTags {
		if !contains(tags, reserved) {
			return nil, domainerror.NewSettingsError(
				domainerror.ErrCodeReservedTagRemoved,
				fmt.Sprintf("the %q tag cannot be removed", reserved),
				domainerror.ErrReservedTagRemoved,
			)
		}
	}

	// Validate people
	for _, person := range people {
		if person == "" {
			return nil, domainerror.NewSettingsError(
				domainerror.ErrCodeEmptyPersonName,
				"person name cannot be empty",
				domainerror.ErrEmptyPersonName,
			)
		}
	}
	if !contains(people, entity.SelfPerson) {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeSelfPersonRemoved,
			fmt.Sprintf("the %q person cannot be removed", entity.SelfPerson),
			domainerror.ErrSelfPersonRemoved,
		)
	}

	// The passphrase hash is managed by the auth use cases, never here
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}
	settings.Tags = tags
	settings.People = people
	settings.UpdatedAt = time.Now().UTC()

	if err := uc.settingsRepo.Save(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	return &UpdateSettingsOutput{
		Settings: settings,
	}, nil
}

// dedupe drops repeated entries while preserving first-seen order.
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
