// Package settings contains vocabulary and preference use cases.
package settings

import (
	"context"
	"fmt"

	"github.com/moneytrail/backend/internal/application/adapter"
	"github.com/moneytrail/backend/internal/domain/entity"
	domainerror "github.com/moneytrail/backend/internal/domain/error"
)

// TagCategoryInput is one tag to category assignment.
type TagCategoryInput struct {
	Tag      string
	Category entity.BudgetCategory
}

// UpdateTagCategoriesInput represents the full replacement mapping set.
type UpdateTagCategoriesInput struct {
	Mappings []TagCategoryInput
}

// UpdateTagCategoriesOutput represents the output of a mapping update.
type UpdateTagCategoriesOutput struct {
	Mappings []*entity.TagCategoryMapping
}

// UpdateTagCategoriesUseCase replaces the whole tag to category mapping set.
type UpdateTagCategoriesUseCase struct {
	tagCategoryRepo adapter.TagCategoryRepository
}

// NewUpdateTagCategoriesUseCase creates a new UpdateTagCategoriesUseCase instance.
func NewUpdateTagCategoriesUseCase(tagCategoryRepo adapter.TagCategoryRepository) *UpdateTagCategoriesUseCase {
	return &UpdateTagCategoriesUseCase{
		tagCategoryRepo: tagCategoryRepo,
	}
}

// Execute performs the mapping replacement.
func (uc *UpdateTagCategoriesUseCase) Execute(ctx context.Context, input UpdateTagCategoriesInput) (*UpdateTagCategoriesOutput, error) {
	seen := make(map[string]struct{}, len(input.Mappings))
	mappings := make([]*entity.TagCategoryMapping, 0, len(input.Mappings))

	for _, m := range input.Mappings {
		if m.Tag == "" {
			return nil, domainerror.NewSettingsError(
				domainerror.ErrCodeEmptyTagName,
				"tag name cannot be empty",
				domainerror.ErrEmptyTagName,
			)
		}
		if !entity.IsValidBudgetCategory(m.Category) {
			return nil, domainerror.NewSettingsError(
				domainerror.ErrCodeInvalidTagCategory,
				"category must be 'needs', 'wants' or 'investment'",
				domainerror.ErrInvalidTagCategory,
			)
		}
		if _, duplicate := seen[m.Tag]; duplicate {
			return nil, domainerror.NewSettingsError(
				domainerror.ErrCodeDuplicateTagMapping,
				fmt.Sprintf("tag %q is mapped more than once", m.Tag),
				domainerror.ErrDuplicateTagMapping,
			)
		}
		seen[m.Tag] = struct{}{}
		mappings = append(mappings, entity.NewTagCategoryMapping(m.Tag, m.Category))
	}

	if err := uc.tagCategoryRepo.ReplaceAll(ctx, mappings); err != nil {
		return nil, fmt.Errorf("failed to replace tag categories: %w", err)
	}

	return &UpdateTagCategoriesOutput{
		Mappings: mappings,
	}, nil
}
