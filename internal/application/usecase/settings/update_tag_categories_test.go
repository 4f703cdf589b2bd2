// Package settings contains vocabulary and preference use cases.
package settings

import (
	"context"
	"testing"

	"github.com/moneytrail/backend/internal/domain/entity"
	domainerror "github.com/moneytrail/backend/internal/domain/error"
)

type fakeTagCategoryRepo struct {
	mappings []*entity.TagCategoryMapping
	failWith error
}

func (f *fakeTagCategoryRepo) Upsert(_ context.Context, mapping *entity.TagCategoryMapping) error {
	if f.failWith != nil {
		return f.failWith
	}
	for i, existing := range f.mappings {
		if existing.Tag == mapping.Tag {
			f.mappings[i] = mapping
			return nil
		}
	}
	f.mappings = append(f.mappings, mapping)
	return nil
}

func (f *fakeTagCategoryRepo) FindAll(context.Context) ([]*entity.TagCategoryMapping, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.mappings, nil
}

func (f *fakeTagCategoryRepo) FindByTag(_ context.Context, tag string) (*entity.TagCategoryMapping, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	for _, m := range f.mappings {
		if m.Tag == tag {
			return m, nil
		}
	}
	return nil, domainerror.ErrTagMappingNotFound
}

func (f *fakeTagCategoryRepo) ReplaceAll(_ context.Context, mappings []*entity.TagCategoryMapping) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.mappings = mappings
	return nil
}

func (f *fakeTagCategoryRepo) Delete(_ context.Context, tag string) error {
	if f.failWith != nil {
		return f.failWith
	}
	for i, m := range f.mappings {
		if m.Tag == tag {
			f.mappings = append(f.mappings[:i], f.mappings[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrTagMappingNotFound
}

func (f *fakeTagCategoryRepo) DeleteAll(context.Context) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.mappings = nil
	return nil
}

func TestUpdateTagCategoriesUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces the whole mapping set", func(t *testing.T) {
		repo := &fakeTagCategoryRepo{
			mappings: []*entity.TagCategoryMapping{
				entity.NewTagCategoryMapping("Rent", entity.BudgetCategoryNeeds),
			},
		}
		uc := NewUpdateTagCategoriesUseCase(repo)

		output, err := uc.Execute(ctx, UpdateTagCategoriesInput{
			Mappings: []TagCategoryInput{
				{Tag: "Entertainment", Category: entity.BudgetCategoryWants},
				{Tag: "Investment", Category: entity.BudgetCategoryInvestment},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Mappings) != 2 {
			t.Fatalf("expected 2 mappings, got %d", len(output.Mappings))
		}
		if len(repo.mappings) != 2 {
			t.Errorf("expected old mappings to be replaced, got %d rows", len(repo.mappings))
		}
	})

	t.Run("an empty set clears the mappings", func(t *testing.T) {
		repo := &fakeTagCategoryRepo{
			mappings: []*entity.TagCategoryMapping{
				entity.NewTagCategoryMapping("Rent", entity.BudgetCategoryNeeds),
			},
		}
		uc := NewUpdateTagCategoriesUseCase(repo)

		if _, err := uc.Execute(ctx, UpdateTagCategoriesInput{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.mappings) != 0 {
			t.Errorf("expected no mappings, got %d", len(repo.mappings))
		}
	})

	t.Run("rejects an empty tag", func(t *testing.T) {
		uc := NewUpdateTagCategoriesUseCase(&fakeTagCategoryRepo{})

		_, err := uc.Execute(ctx, UpdateTagCategoriesInput{
			Mappings: []TagCategoryInput{{Tag: "", Category: entity.BudgetCategoryNeeds}},
		})
		if code := settingsCode(t, err); code != domainerror.ErrCodeEmptyTagName {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeEmptyTagName, code)
		}
	})

	t.Run("rejects an unknown category", func(t *testing.T) {
		uc := NewUpdateTagCategoriesUseCase(&fakeTagCategoryRepo{})

		_, err := uc.Execute(ctx, UpdateTagCategoriesInput{
			Mappings: []TagCategoryInput{{Tag: "Food", Category: "luxuries"}},
		})
		if code := settingsCode(t, err); code != domainerror.ErrCodeInvalidTagCategory {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidTagCategory, code)
		}
	})

	t.Run("rejects a tag mapped twice", func(t *testing.T) {
		uc := NewUpdateTagCategoriesUseCase(&fakeTagCategoryRepo{})

		_, err := uc.Execute(ctx, UpdateTagCategoriesInput{
			Mappings: []TagCategoryInput{
				{Tag: "Food", Category: entity.BudgetCategoryNeeds},
				{Tag: "Food", Category: entity.BudgetCategoryWants},
			},
		})
		if code := settingsCode(t, err); code != domainerror.ErrCodeDuplicateTagMapping {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeDuplicateTagMapping, code)
		}
	})
}
