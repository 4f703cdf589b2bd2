// Package budget contains budget evaluation use cases.
package budget

import (
	"testing"
	"time"

	"github.com/moneytrail/backend/internal/domain/entity"
)

func TestEffectiveCategory(t *testing.T) {
	mapping := map[string]entity.BudgetCategory{
		"Entertainment": entity.BudgetCategoryWants,
		"Investment":    entity.BudgetCategoryInvestment,
	}

	t.Run("a budget's own category wins", func(t *testing.T) {
		b := entity.NewMonthlyBudget("Food", 1000, entity.BudgetCategoryNeeds, []string{"Entertainment"}, nil)

		if got := EffectiveCategory(b, mapping); got != entity.BudgetCategoryNeeds {
			t.Errorf("expected needs, got %s", got)
		}
	})

	t.Run("missing category falls back to the first mapped tag", func(t *testing.T) {
		b := entity.NewMonthlyBudget("Fun", 1000, "", []string{"Rent", "Entertainment"}, nil)

		if got := EffectiveCategory(b, mapping); got != entity.BudgetCategoryWants {
			t.Errorf("expected wants, got %s", got)
		}
	})

	t.Run("unmapped budgets land in needs", func(t *testing.T) {
		b := entity.NewMonthlyBudget("Misc", 1000, "", []string{"Rent"}, nil)

		if got := EffectiveCategory(b, mapping); got != entity.BudgetCategoryNeeds {
			t.Errorf("expected needs, got %s", got)
		}
	})
}

func TestComputeCategorySummary(t *testing.T) {
	ref := time.Date(2025, 4, 20, 12, 0, 0, 0, time.UTC)
	inMonth := time.Date(2025, 4, 10, 9, 0, 0, 0, time.UTC)

	t.Run("empty input still yields the three fixed rows", func(t *testing.T) {
		lines := ComputeCategorySummary(nil, nil, nil, ref)

		if len(lines) != 3 {
			t.Fatalf("expected 3 rows, got %d", len(lines))
		}
		wantOrder := []entity.BudgetCategory{
			entity.BudgetCategoryNeeds,
			entity.BudgetCategoryWants,
			entity.BudgetCategoryInvestment,
		}
		for i, line := range lines {
			if line.Category != wantOrder[i] {
				t.Errorf("expected row %d to be %s, got %s", i, wantOrder[i], line.Category)
			}
			if line.Spent != 0 || line.Budget != 0 || line.Percentage != 0 {
				t.Errorf("expected zeroed row for %s, got %+v", line.Category, line)
			}
		}
	})

	t.Run("monthly budgets aggregate into their categories", func(t *testing.T) {
		budgets := []*entity.Budget{
			entity.NewMonthlyBudget("Food", 3000, entity.BudgetCategoryNeeds, []string{"Food"}, nil),
			entity.NewMonthlyBudget("Rent", 1000, entity.BudgetCategoryNeeds, []string{"Rent"}, nil),
			entity.NewMonthlyBudget("Fun", 2000, entity.BudgetCategoryWants, []string{"Entertainment"}, nil),
		}
		transactions := []*entity.Transaction{
			expenseAt(inMonth, 600, "Food"),
			expenseAt(inMonth, 400, "Rent"),
			expenseAt(inMonth, 500, "Entertainment"),
		}

		lines := ComputeCategorySummary(budgets, transactions, nil, ref)

		needs := lines[0]
		if needs.Budget != 4000 || needs.Spent != 1000 || needs.Percentage != 25 {
			t.Errorf("unexpected needs row %+v", needs)
		}
		wants := lines[1]
		if wants.Budget != 2000 || wants.Spent != 500 || wants.Percentage != 25 {
			t.Errorf("unexpected wants row %+v", wants)
		}
		investment := lines[2]
		if investment.Budget != 0 || investment.Spent != 0 {
			t.Errorf("unexpected investment row %+v", investment)
		}
	})

	t.Run("custom window budgets are excluded", func(t *testing.T) {
		start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
		budgets := []*entity.Budget{
			entity.NewCustomBudget("Trip", 20000, entity.BudgetCategoryWants, nil, &start, &end),
		}

		lines := ComputeCategorySummary(budgets, []*entity.Transaction{expenseAt(inMonth, 500, "Food")}, nil, ref)

		for _, line := range lines {
			if line.Budget != 0 || line.Spent != 0 {
				t.Errorf("expected custom budget to be ignored, got %+v", line)
			}
		}
	})

	t.Run("tag mapping routes uncategorized budgets", func(t *testing.T) {
		budgets := []*entity.Budget{
			entity.NewMonthlyBudget("Stocks", 1500, "", []string{"Investment"}, nil),
		}
		mapping := map[string]entity.BudgetCategory{"Investment": entity.BudgetCategoryInvestment}

		lines := ComputeCategorySummary(budgets, nil, mapping, ref)

		if lines[2].Budget != 1500 {
			t.Errorf("expected investment budget 1500, got %d", lines[2].Budget)
		}
	})

	t.Run("a category with zero total budget reports zero percentage", func(t *testing.T) {
		budgets := []*entity.Budget{
			entity.NewMonthlyBudget("Free", 0, entity.BudgetCategoryWants, []string{"Entertainment"}, nil),
		}
		transactions := []*entity.Transaction{expenseAt(inMonth, 500, "Entertainment")}

		lines := ComputeCategorySummary(budgets, transactions, nil, ref)

		wants := lines[1]
		if wants.Spent != 500 {
			t.Errorf("expected spent 500, got %d", wants.Spent)
		}
		if wants.Percentage != 0 {
			t.Errorf("expected percentage 0, got %d", wants.Percentage)
		}
	})

	t.Run("percentage rounds to the nearest integer", func(t *testing.T) {
		budgets := []*entity.Budget{
			entity.NewMonthlyBudget("Food", 3000, entity.BudgetCategoryNeeds, []string{"Food"}, nil),
		}
		transactions := []*entity.Transaction{expenseAt(inMonth, 1000, "Food")}

		lines := ComputeCategorySummary(budgets, transactions, nil, ref)

		// 1000 of 3000 is 33.33 percent.
		if lines[0].Percentage != 33 {
			t.Errorf("expected percentage 33, got %d", lines[0].Percentage)
		}
	})
}
