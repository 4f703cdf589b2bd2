// Package goal contains investment goal use cases.
package goal

import (
	"context"
	"fmt"
	"time"

	"github.com/moneytrail/backend/internal/application/adapter"
	"github.com/moneytrail/backend/internal/domain/entity"
	domainerror "github.com/moneytrail/backend/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	Name         string
	TargetAmount int64
	TargetDate   *time.Time
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal *entity.InvestmentGoal
}

// CreateGoalUseCase handles investment goal creation logic.
type CreateGoalUseCase struct {
	goalRepo adapter.InvestmentGoalRepository
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(goalRepo adapter.InvestmentGoalRepository) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		goalRepo: goalRepo,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	// Validate name
	if input.Name == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeEmptyGoalName,
			"goal name cannot be empty",
			domainerror.ErrEmptyGoalName,
		)
	}

	// Validate target amount
	if input.TargetAmount <= 0 {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be greater than zero",
			domainerror.ErrInvalidTargetAmount,
		)
	}

	// Create goal entity
	goal := entity.NewInvestmentGoal(input.Name, input.TargetAmount, input.TargetDate)

	// Save goal to database
	if err := uc.goalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	return &CreateGoalOutput{
		Goal: goal,
	}, nil
}
