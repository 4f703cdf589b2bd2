// Package budget contains budget evaluation use cases.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/moneytrail/backend/internal/application/adapter"
	"github.com/moneytrail/backend/internal/domain/entity"
)

// GetCategorySummaryOutput represents the output of the category summary.
type GetCategorySummaryOutput struct {
	Lines []CategoryLine
}

// GetCategorySummaryUseCase aggregates monthly budgets into the three fixed
// categories.
type GetCategorySummaryUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
	tagCategoryRepo adapter.TagCategoryRepository
}

// NewGetCategorySummaryUseCase creates a new GetCategorySummaryUseCase instance.
func NewGetCategorySummaryUseCase(
	budgetRepo adapter.BudgetRepository,
	transactionRepo adapter.TransactionRepository,
	tagCategoryRepo adapter.TagCategoryRepository,
) *GetCategorySummaryUseCase {
	return &GetCategorySummaryUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		tagCategoryRepo: tagCategoryRepo,
	}
}

// Execute computes the category summary at the current time.
func (uc *GetCategorySummaryUseCase) Execute(ctx context.Context) (*GetCategorySummaryOutput, error) {
	budgets, err := uc.budgetRepo.FindAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	mappings, err := uc.tagCategoryRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tag category mappings: %w", err)
	}

	tagCategories := make(map[string]entity.BudgetCategory, len(mappings))
	for _, mapping := range mappings {
		tagCategories[mapping.Tag] = mapping.Category
	}

	return &GetCategorySummaryOutput{
		Lines: ComputeCategorySummary(budgets, transactions, tagCategories, time.Now().UTC()),
	}, nil
}
