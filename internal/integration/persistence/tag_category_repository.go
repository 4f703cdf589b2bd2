// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/moneytrail/backend/internal/application/adapter"
	"github.com/moneytrail/backend/internal/domain/entity"
	domainerror "github.com/moneytrail/backend/internal/domain/error"
	"github.com/moneytrail/backend/internal/integration/persistence/model"
)

// tagCategoryRepository implements the adapter.TagCategoryRepository interface.
type tagCategoryRepository struct {
	db *gorm.DB
}

// NewTagCategoryRepository creates a new tag category repository instance.
func NewTagCategoryRepository(db *gorm.DB) adapter.TagCategoryRepository {
	return &tagCategoryRepository{
		db: db,
	}
}

// Upsert creates or replaces the mapping for a tag.
func (r *tagCategoryRepository) Upsert(ctx context.Context, mapping *entity.TagCategoryMapping) error {
	var existing model.TagCategoryModel
	result := r.db.WithContext(ctx).Where("tag = ?", mapping.Tag).First(&existing)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return r.db.WithContext(ctx).Create(model.TagCategoryFromEntity(mapping)).Error
		}
		return result.Error
	}

	existing.Category = string(mapping.Category)
	existing.UpdatedAt = time.Now().UTC()
	return r.db.WithContext(ctx).Save(&existing).Error
}

// FindAll retrieves every mapping ordered by tag.
func (r *tagCategoryRepository) FindAll(ctx context.Context) ([]*entity.TagCategoryMapping, error) {
	var tagCategoryModels []model.TagCategoryModel
	result := r.db.WithContext(ctx).Order("tag ASC").Find(&tagCategoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	mappings := make([]*entity.TagCategoryMapping, len(tagCategoryModels))
	for i, tm := range tagCategoryModels {
		mappings[i] = tm.ToEntity()
	}
	return mappings, nil
}

// FindByTag retrieves the mapping for a tag.
func (r *tagCategoryRepository) FindByTag(ctx context.Context, tag string) (*entity.TagCategoryMapping, error) {
	var tagCategoryModel model.TagCategoryModel
	result := r.db.WithContext(ctx).Where("tag = ?", tag).First(&tagCategoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTagMappingNotFound
		}
		return nil, result.Error
	}
	return tagCategoryModel.ToEntity(), nil
}

// ReplaceAll atomically swaps the stored mappings for the given set.
func (r *tagCategoryRepository) ReplaceAll(ctx context.Context, mappings []*entity.TagCategoryMapping) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.TagCategoryModel{}).Error; err != nil {
			return err
		}
		for _, mapping := range mappings {
			if err := tx.Create(model.TagCategoryFromEntity(mapping)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the mapping for a tag.
func (r *tagCategoryRepository) Delete(ctx context.Context, tag string) error {
	result := r.db.WithContext(ctx).Where("tag = ?", tag).Delete(&model.TagCategoryModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// DeleteAll removes every mapping.
func (r *tagCategoryRepository) DeleteAll(ctx context.Context) error {
	result := r.db.WithContext(ctx).Where("1 = 1").Delete(&model.TagCategoryModel{})
	if result.Error != nil {
		return result.Error
	}
	return nil
}
