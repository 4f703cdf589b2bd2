// Package model defines database models for persistence layer.
package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/moneytrail/backend/internal/domain/entity"
)

// StringListJSON stores a string slice as a JSON text column.
type StringListJSON []string

// Value implements the driver.Valuer interface.
func (l StringListJSON) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface.
func (l *StringListJSON) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("type assertion to []byte or string failed")
	}
}

// SettingsModel represents the settings table in the database. Exactly one
// row exists, keyed by SettingsRowID.
type SettingsModel struct {
	ID             int            `gorm:"primaryKey"`
	Tags           StringListJSON `gorm:"type:text;not null"`
	People         StringListJSON `gorm:"type:text;not null"`
	PassphraseHash string         `gorm:"type:varchar(255)"`
	UpdatedAt      time.Time      `gorm:"not null"`
}

// SettingsRowID is the primary key of the single settings row.
const SettingsRowID = 1

// TableName returns the table name for the SettingsModel.
func (SettingsModel) TableName() string {
	return "settings"
}

// ToEntity converts a SettingsModel to a domain Settings entity.
func (m *SettingsModel) ToEntity() *entity.Settings {
	return &entity.Settings{
		Tags:           []string(m.Tags),
		People:         []string(m.People),
		PassphraseHash: m.PassphraseHash,
		UpdatedAt:      m.UpdatedAt,
	}
}

// SettingsFromEntity creates a SettingsModel from a domain Settings entity.
func SettingsFromEntity(settings *entity.Settings) *SettingsModel {
	return &SettingsModel{
		ID:             SettingsRowID,
		Tags:           StringListJSON(settings.Tags),
		People:         StringListJSON(settings.People),
		PassphraseHash: settings.PassphraseHash,
		UpdatedAt:      settings.UpdatedAt,
	}
}
