// Package goal contains investment goal use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/moneytrail/backend/internal/application/adapter"
	"github.com/moneytrail/backend/internal/application/usecase/summary"
	"github.com/moneytrail/backend/internal/domain/entity"
)

// ListGoalsOutput represents the output of listing goals with progress.
type ListGoalsOutput struct {
	Goals []entity.InvestmentGoalProgress
}

// ListGoalsUseCase lists every goal with its computed progress.
type ListGoalsUseCase struct {
	goalRepo        adapter.InvestmentGoalRepository
	transactionRepo adapter.TransactionRepository
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(
	goalRepo adapter.InvestmentGoalRepository,
	transactionRepo adapter.TransactionRepository,
) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goalRepo:        goalRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute lists goals and evaluates each against the invested total.
func (uc *ListGoalsUseCase) Execute(ctx context.Context) (*ListGoalsOutput, error) {
	goals, err := uc.goalRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	invested := summary.Snapshot(transactions).Investments

	output := &ListGoalsOutput{
		Goals: make([]entity.InvestmentGoalProgress, 0, len(goals)),
	}
	for _, g := range goals {
		output.Goals = append(output.Goals, ComputeGoalProgress(g, invested))
	}

	return output, nil
}
