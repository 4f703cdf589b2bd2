// Package budget contains budget evaluation use cases.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/moneytrail/backend/internal/application/adapter"
	"github.com/moneytrail/backend/internal/domain/entity"
	domainerror "github.com/moneytrail/backend/internal/domain/error"
)

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	Name      string
	Amount    int64
	Type      entity.BudgetType
	Category  entity.BudgetCategory
	Tags      []string
	Month     *string    // Optional, monthly budgets only
	StartDate *time.Time // Optional, custom budgets only
	EndDate   *time.Time // Optional, custom budgets only
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(budgetRepo adapter.BudgetRepository) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the budget creation.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeEmptyBudgetName,
			"budget name is required",
			domainerror.ErrEmptyBudgetName,
		)
	}

	if input.Amount <= 0 {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetAmount,
			"budget amount must be greater than zero",
			domainerror.ErrInvalidBudgetAmount,
		)
	}

	if !entity.IsValidBudgetType(input.Type) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetType,
			"budget type must be 'monthly' or 'custom'",
			domainerror.ErrInvalidBudgetType,
		)
	}

	if !entity.IsValidBudgetCategory(input.Category) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetCategory,
			"budget category must be 'needs', 'wants' or 'investment'",
			domainerror.ErrInvalidBudgetCategory,
		)
	}

	var budget *entity.Budget
	switch input.Type {
	case entity.BudgetTypeMonthly:
		if err := validateMonth(input.Month); err != nil {
			return nil, err
		}
		budget = entity.NewMonthlyBudget(input.Name, input.Amount, input.Category, input.Tags, input.Month)
	case entity.BudgetTypeCustom:
		if err := validateCustomWindow(input.StartDate, input.EndDate); err != nil {
			return nil, err
		}
		budget = entity.NewCustomBudget(input.Name, input.Amount, input.Category, input.Tags, input.StartDate, input.EndDate)
	}

	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &CreateBudgetOutput{
		Budget: budget,
	}, nil
}

// validateMonth checks the YYYY-MM format of a pinned month.
func validateMonth(month *string) error {
	if month == nil {
		return nil
	}
	if _, err := time.Parse(MonthLayout, *month); err != nil {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetMonth,
			"month must be in YYYY-MM format",
			domainerror.ErrInvalidBudgetMonth,
		)
	}
	return nil
}

// validateCustomWindow rejects inverted explicit bounds.
func validateCustomWindow(start, end *time.Time) error {
	if start != nil && end != nil && start.After(*end) {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetWindow,
			"start date must not be after end date",
			domainerror.ErrInvalidBudgetWindow,
		)
	}
	return nil
}
