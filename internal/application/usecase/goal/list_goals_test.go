// Package goal contains investment goal use cases.
package goal

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/moneytrail/backend/internal/domain/entity"
	domainerror "github.com/moneytrail/backend/internal/domain/error"
)

func investmentExpense(amount int64) *entity.Transaction {
	return entity.NewTransaction(
		time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC),
		amount,
		entity.TransactionTypeExpense,
		"Broker transfer",
		entity.TagInvestment,
		entity.SelfPerson,
	)
}

func TestListGoalsUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("every goal is measured against the same invested pool", func(t *testing.T) {
		goalRepo := newFakeGoalRepo()
		small := entity.NewInvestmentGoal("Emergency fund", 10000, nil)
		large := entity.NewInvestmentGoal("House", 100000, nil)
		goalRepo.goals[small.ID] = small
		goalRepo.goals[large.ID] = large

		txRepo := &fakeTransactionLister{transactions: []*entity.Transaction{
			investmentExpense(6000),
			investmentExpense(4000),
		}}
		uc := NewListGoalsUseCase(goalRepo, txRepo)

		output, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Goals) != 2 {
			t.Fatalf("expected 2 goals, got %d", len(output.Goals))
		}
		for _, p := range output.Goals {
			if p.InvestedAmount != 10000 {
				t.Errorf("expected invested 10000 for %q, got %d", p.Goal.Name, p.InvestedAmount)
			}
		}
	})

	t.Run("non-investment expenses do not count", func(t *testing.T) {
		goalRepo := newFakeGoalRepo()
		g := entity.NewInvestmentGoal("House", 100000, nil)
		goalRepo.goals[g.ID] = g

		food := entity.NewTransaction(
			time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC),
			2500,
			entity.TransactionTypeExpense,
			"Groceries",
			"Food",
			entity.SelfPerson,
		)
		txRepo := &fakeTransactionLister{transactions: []*entity.Transaction{investmentExpense(6000), food}}
		uc := NewListGoalsUseCase(goalRepo, txRepo)

		output, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goals[0].InvestedAmount != 6000 {
			t.Errorf("expected invested 6000, got %d", output.Goals[0].InvestedAmount)
		}
	})
}

func TestGetGoalUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the goal with its progress", func(t *testing.T) {
		goalRepo := newFakeGoalRepo()
		g := entity.NewInvestmentGoal("House", 20000, nil)
		goalRepo.goals[g.ID] = g

		txRepo := &fakeTransactionLister{transactions: []*entity.Transaction{investmentExpense(5000)}}
		uc := NewGetGoalUseCase(goalRepo, txRepo)

		output, err := uc.Execute(ctx, GetGoalInput{GoalID: g.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Progress.Percentage != 25 {
			t.Errorf("expected percentage 25, got %d", output.Progress.Percentage)
		}
	})

	t.Run("missing goal yields a not found error", func(t *testing.T) {
		uc := NewGetGoalUseCase(newFakeGoalRepo(), &fakeTransactionLister{})

		_, err := uc.Execute(ctx, GetGoalInput{GoalID: uuid.New()})
		if code := goalCode(t, err); code != domainerror.ErrCodeGoalNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeGoalNotFound, code)
		}
	})
}

func TestUpdateGoalUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("updates only the provided fields", func(t *testing.T) {
		goalRepo := newFakeGoalRepo()
		targetDate := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
		g := entity.NewInvestmentGoal("House", 20000, &targetDate)
		goalRepo.goals[g.ID] = g
		uc := NewUpdateGoalUseCase(goalRepo)

		amount := int64(30000)
		output, err := uc.Execute(ctx, UpdateGoalInput{GoalID: g.ID, TargetAmount: &amount})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.TargetAmount != 30000 {
			t.Errorf("expected target 30000, got %d", output.Goal.TargetAmount)
		}
		if output.Goal.Name != "House" {
			t.Errorf("expected name to stay, got %q", output.Goal.Name)
		}
		if output.Goal.TargetDate == nil {
			t.Error("expected target date to stay")
		}
	})

	t.Run("clears the target date on request", func(t *testing.T) {
		goalRepo := newFakeGoalRepo()
		targetDate := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
		g := entity.NewInvestmentGoal("House", 20000, &targetDate)
		goalRepo.goals[g.ID] = g
		uc := NewUpdateGoalUseCase(goalRepo)

		output, err := uc.Execute(ctx, UpdateGoalInput{GoalID: g.ID, ClearTargetDate: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Goal.TargetDate != nil {
			t.Error("expected target date to be cleared")
		}
	})

	t.Run("missing goal yields a not found error", func(t *testing.T) {
		uc := NewUpdateGoalUseCase(newFakeGoalRepo())

		name := "Renamed"
		_, err := uc.Execute(ctx, UpdateGoalInput{GoalID: uuid.New(), Name: &name})
		if code := goalCode(t, err); code != domainerror.ErrCodeGoalNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeGoalNotFound, code)
		}
	})
}

func TestDeleteGoalUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an existing goal", func(t *testing.T) {
		goalRepo := newFakeGoalRepo()
		g := entity.NewInvestmentGoal("House", 20000, nil)
		goalRepo.goals[g.ID] = g
		uc := NewDeleteGoalUseCase(goalRepo)

		output, err := uc.Execute(ctx, DeleteGoalInput{GoalID: g.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Success {
			t.Error("expected success")
		}
		if len(goalRepo.goals) != 0 {
			t.Error("expected goal to be removed")
		}
	})

	t.Run("missing goal yields a not found error", func(t *testing.T) {
		uc := NewDeleteGoalUseCase(newFakeGoalRepo())

		_, err := uc.Execute(ctx, DeleteGoalInput{GoalID: uuid.New()})
		if code := goalCode(t, err); code != domainerror.ErrCodeGoalNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeGoalNotFound, code)
		}
	})
}
