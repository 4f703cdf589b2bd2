// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/moneytrail/backend/internal/domain/entity"
)

// TagCategoryRepository defines the interface for tag to budget category
// mapping persistence operations.
type TagCategoryRepository interface {
	// Upsert creates or replaces the mapping for a tag.
	Upsert(ctx context.Context, mapping *entity.TagCategoryMapping) error

	// FindAll retrieves every mapping ordered by tag.
	FindAll(ctx context.Context) ([]*entity.TagCategoryMapping, error)

	// FindByTag retrieves the mapping for a tag.
	FindByTag(ctx context.Context, tag string) (*entity.TagCategoryMapping, error)

	// ReplaceAll atomically swaps the stored mappings for the given set.
	ReplaceAll(ctx context.Context, mappings []*entity.TagCategoryMapping) error

	// Delete removes the mapping for a tag.
	Delete(ctx context.Context, tag string) error

	// DeleteAll removes every mapping. Used by backup restore in replace mode.
	DeleteAll(ctx context.Context) error
}
