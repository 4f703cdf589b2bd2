// Package settings contains vocabulary and preference use cases.
package settings

import (
	"context"
	"fmt"

	"github.com/moneytrail/backend/internal/application/adapter"
	"github.com/moneytrail/backend/internal/domain/entity"
)

// GetTagCategoriesOutput represents the stored tag to category mappings.
type GetTagCategoriesOutput struct {
	Mappings []*entity.TagCategoryMapping
}

// GetTagCategoriesUseCase lists the tag to budget category mappings.
type GetTagCategoriesUseCase struct {
	tagCategoryRepo adapter.TagCategoryRepository
}

// NewGetTagCategoriesUseCase creates a new GetTagCategoriesUseCase instance.
func NewGetTagCategoriesUseCase(tagCategoryRepo adapter.TagCategoryRepository) *GetTagCategoriesUseCase {
	return &GetTagCategoriesUseCase{
		tagCategoryRepo: tagCategoryRepo,
	}
}

// Execute lists the mappings.
func (uc *GetTagCategoriesUseCase) Execute(ctx context.Context) (*GetTagCategoriesOutput, error) {
	mappings, err := uc.tagCategoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tag categories: %w", err)
	}

	return &GetTagCategoriesOutput{
		Mappings: mappings,
	}, nil
}
