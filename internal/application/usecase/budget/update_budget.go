// Package budget contains budget evaluation use cases.
package budget

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/moneytrail/backend/internal/application/adapter"
	"github.com/moneytrail/backend/internal/domain/entity"
	domainerror "github.com/moneytrail/backend/internal/domain/error"
)

// UpdateBudgetInput represents the input for budget update. Nil fields keep
// their stored value.
type UpdateBudgetInput struct {
	BudgetID  uuid.UUID
	Name      *string
	Amount    *int64
	Category  *entity.BudgetCategory
	Tags      []string // Nil keeps, empty slice clears
	Month     *string
	StartDate *time.Time
	EndDate   *time.Time
}

// UpdateBudgetOutput represents the output of budget update.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the budget update.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	budget, err := uc.budgetRepo.FindByID(ctx, input.BudgetID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetNotFound,
				"budget not found",
				domainerror.ErrBudgetNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeEmptyBudgetName,
				"budget name is required",
				domainerror.ErrEmptyBudgetName,
			)
		}
		budget.Name = *input.Name
	}

	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidBudgetAmount,
				"budget amount must be greater than zero",
				domainerror.ErrInvalidBudgetAmount,
			)
		}
		budget.Amount = *input.Amount
	}

	if input.Category != nil {
		if !entity.IsValidBudgetCategory(*input.Category) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidBudgetCategory,
				"budget category must be 'needs', 'wants' or 'investment'",
				domainerror.ErrInvalidBudgetCategory,
			)
		}
		budget.Category = *input.Category
	}

	if input.Tags != nil {
		budget.Tags = input.Tags
	}

	if budget.Type == entity.BudgetTypeMonthly && input.Month != nil {
		if err := validateMonth(input.Month); err != nil {
			return nil, err
		}
		budget.Month = input.Month
	}

	if budget.Type == entity.BudgetTypeCustom && (input.StartDate != nil || input.EndDate != nil) {
		start := budget.StartDate
		end := budget.EndDate
		if input.StartDate != nil {
			start = input.StartDate
		}
		if input.EndDate != nil {
			end = input.EndDate
		}
		if err := validateCustomWindow(start, end); err != nil {
			return nil, err
		}
		budget.StartDate = start
		budget.EndDate = end
	}

	budget.UpdatedAt = time.Now().UTC()

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	return &UpdateBudgetOutput{
		Budget: budget,
	}, nil
}
