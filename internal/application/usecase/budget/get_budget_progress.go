// Package budget contains budget evaluation use cases.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/moneytrail/backend/internal/application/adapter"
)

// GetBudgetProgressOutput represents the output of the progress evaluation.
type GetBudgetProgressOutput struct {
	Items []Progress
}

// GetBudgetProgressUseCase evaluates every budget against the stored
// transactions.
type GetBudgetProgressUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
}

// NewGetBudgetProgressUseCase creates a new GetBudgetProgressUseCase instance.
func NewGetBudgetProgressUseCase(
	budgetRepo adapter.BudgetRepository,
	transactionRepo adapter.TransactionRepository,
) *GetBudgetProgressUseCase {
	return &GetBudgetProgressUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute computes the sorted progress list for every budget.
func (uc *GetBudgetProgressUseCase) Execute(ctx context.Context) (*GetBudgetProgressOutput, error) {
	budgets, err := uc.budgetRepo.FindAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	now := time.Now().UTC()
	items := make([]Progress, 0, len(budgets))
	for _, b := range budgets {
		items = append(items, ComputeProgress(b, transactions, now))
	}
	SortProgress(items)

	return &GetBudgetProgressOutput{
		Items: items,
	}, nil
}
