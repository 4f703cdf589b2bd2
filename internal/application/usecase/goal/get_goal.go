// Package goal contains investment goal use cases.
package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/moneytrail/backend/internal/application/adapter"
	"github.com/moneytrail/backend/internal/application/usecase/summary"
	"github.com/moneytrail/backend/internal/domain/entity"
	domainerror "github.com/moneytrail/backend/internal/domain/error"
)

// GetGoalInput represents the input for reading one goal.
type GetGoalInput struct {
	GoalID uuid.UUID
}

// GetGoalOutput represents the output of reading one goal.
type GetGoalOutput struct {
	Progress entity.InvestmentGoalProgress
}

// GetGoalUseCase reads a single goal with its computed progress.
type GetGoalUseCase struct {
	goalRepo        adapter.InvestmentGoalRepository
	transactionRepo adapter.TransactionRepository
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(
	goalRepo adapter.InvestmentGoalRepository,
	transactionRepo adapter.TransactionRepository,
) *GetGoalUseCase {
	return &GetGoalUseCase{
		goalRepo:        goalRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute reads the goal and evaluates its progress.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
	goal, err := uc.goalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrGoalNotFound) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeGoalNotFound,
				"investment goal not found",
				domainerror.ErrGoalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find goal: %w", err)
	}

	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	invested := summary.Snapshot(transactions).Investments

	return &GetGoalOutput{
		Progress: ComputeGoalProgress(goal, invested),
	}, nil
}
