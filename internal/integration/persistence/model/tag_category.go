// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/moneytrail/backend/internal/domain/entity"
)

// TagCategoryModel represents the tag_categories table in the database.
type TagCategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Tag       string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Category  string    `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the TagCategoryModel.
func (TagCategoryModel) TableName() string {
	return "tag_categories"
}

// ToEntity converts a TagCategoryModel to a domain TagCategoryMapping entity.
func (m *TagCategoryModel) ToEntity() *entity.TagCategoryMapping {
	return &entity.TagCategoryMapping{
		ID:        m.ID,
		Tag:       m.Tag,
		Category:  entity.BudgetCategory(m.Category),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// TagCategoryFromEntity creates a TagCategoryModel from a domain TagCategoryMapping entity.
func TagCategoryFromEntity(mapping *entity.TagCategoryMapping) *TagCategoryModel {
	return &TagCategoryModel{
		ID:        mapping.ID,
		Tag:       mapping.Tag,
		Category:  string(mapping.Category),
		CreatedAt: mapping.CreatedAt,
		UpdatedAt: mapping.UpdatedAt,
	}
}
