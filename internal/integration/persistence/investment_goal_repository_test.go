package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/moneytrail/backend/internal/domain/entity"
	domainerror "github.com/moneytrail/backend/internal/domain/error"
)

func TestInvestmentGoalRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create and find round trips an optional target date", func(t *testing.T) {
		repo := NewInvestmentGoalRepository(newTestDB(t))

		target := day(t, "2026-12-31")
		dated := entity.NewInvestmentGoal("House deposit", 5000000, &target)
		open := entity.NewInvestmentGoal("Rainy day", 1000000, nil)
		for _, g := range []*entity.InvestmentGoal{dated, open} {
			if err := repo.Create(ctx, g); err != nil {
				t.Fatalf("create failed: %v", err)
			}
		}

		gotDated, err := repo.FindByID(ctx, dated.ID)
		if err != nil {
			t.Fatalf("find by id failed: %v", err)
		}
		if gotDated.TargetDate == nil || !gotDated.TargetDate.Equal(target) {
			t.Errorf("expected target date %v, got %v", target, gotDated.TargetDate)
		}

		gotOpen, err := repo.FindByID(ctx, open.ID)
		if err != nil {
			t.Fatalf("find by id failed: %v", err)
		}
		if gotOpen.TargetDate != nil {
			t.Errorf("expected open ended goal, got target date %v", gotOpen.TargetDate)
		}
	})

	t.Run("update replaces the stored goal", func(t *testing.T) {
		repo := NewInvestmentGoalRepository(newTestDB(t))

		goal := entity.NewInvestmentGoal("House deposit", 5000000, nil)
		if err := repo.Create(ctx, goal); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		goal.TargetAmount = 6000000
		if err := repo.Update(ctx, goal); err != nil {
			t.Fatalf("update failed: %v", err)
		}

		got, err := repo.FindByID(ctx, goal.ID)
		if err != nil {
			t.Fatalf("find by id failed: %v", err)
		}
		if got.TargetAmount != 6000000 {
			t.Errorf("expected target amount 6000000, got %d", got.TargetAmount)
		}
	})

	t.Run("delete removes the goal", func(t *testing.T) {
		repo := NewInvestmentGoalRepository(newTestDB(t))

		goal := entity.NewInvestmentGoal("House deposit", 5000000, nil)
		if err := repo.Create(ctx, goal); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		if err := repo.Delete(ctx, goal.ID); err != nil {
			t.Fatalf("delete failed: %v", err)
		}

		_, err := repo.FindByID(ctx, goal.ID)
		if !errors.Is(err, domainerror.ErrGoalNotFound) {
			t.Errorf("expected ErrGoalNotFound, got %v", err)
		}
	})

	t.Run("find by id returns not found for unknown id", func(t *testing.T) {
		repo := NewInvestmentGoalRepository(newTestDB(t))

		_, err := repo.FindByID(ctx, uuid.New())
		if !errors.Is(err, domainerror.ErrGoalNotFound) {
			t.Errorf("expected ErrGoalNotFound, got %v", err)
		}
	})
}
