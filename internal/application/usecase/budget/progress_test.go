// Package budget contains budget evaluation use cases.
package budget

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneytrail/backend/internal/domain/entity"
)

func expenseAt(ts time.Time, amount int64, tag string) *entity.Transaction {
	return entity.NewTransaction(ts, amount, entity.TransactionTypeExpense, "test expense", tag, entity.SelfPerson)
}

func incomeAt(ts time.Time, amount int64, tag string) *entity.Transaction {
	return entity.NewTransaction(ts, amount, entity.TransactionTypeIncome, "test income", tag, entity.SelfPerson)
}

func TestSpentAmount(t *testing.T) {
	ref := time.Date(2025, 4, 20, 12, 0, 0, 0, time.UTC)
	inMonth := time.Date(2025, 4, 10, 9, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	transactions := []*entity.Transaction{
		expenseAt(inMonth, 500, "Food"),
		expenseAt(inMonth, 300, "Transport"),
		incomeAt(inMonth, 900, "Food"),
		expenseAt(lastMonth, 700, "Food"),
	}

	t.Run("counts only tracked tags inside the window", func(t *testing.T) {
		b := entity.NewMonthlyBudget("Food", 5000, entity.BudgetCategoryNeeds, []string{"Food"}, nil)

		if got := SpentAmount(b, transactions, ref); got != 500 {
			t.Errorf("expected spent 500, got %d", got)
		}
	})

	t.Run("empty tag set matches every expense", func(t *testing.T) {
		b := entity.NewMonthlyBudget("Everything", 5000, entity.BudgetCategoryNeeds, nil, nil)

		if got := SpentAmount(b, transactions, ref); got != 800 {
			t.Errorf("expected spent 800, got %d", got)
		}
	})

	t.Run("income never counts as spend", func(t *testing.T) {
		b := entity.NewMonthlyBudget("Food", 5000, entity.BudgetCategoryNeeds, []string{"Food"}, nil)

		got := SpentAmount(b, []*entity.Transaction{incomeAt(inMonth, 900, "Food")}, ref)
		if got != 0 {
			t.Errorf("expected spent 0, got %d", got)
		}
	})

	t.Run("custom window filters by its own bounds", func(t *testing.T) {
		start := time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 4, 10, 23, 59, 59, 0, time.UTC)
		b := entity.NewCustomBudget("Trip", 20000, entity.BudgetCategoryWants, nil, &start, &end)

		txs := []*entity.Transaction{
			expenseAt(time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC), 400, "Food"),
			expenseAt(time.Date(2025, 4, 15, 10, 0, 0, 0, time.UTC), 600, "Food"),
			expenseAt(time.Date(2025, 2, 20, 10, 0, 0, 0, time.UTC), 250, "Food"),
		}
		if got := SpentAmount(b, txs, ref); got != 650 {
			t.Errorf("expected spent 650, got %d", got)
		}
	})
}

func TestComputeProgress(t *testing.T) {
	// April 2025 has 30 days; the reference sits on day 20.
	ref := time.Date(2025, 4, 20, 12, 0, 0, 0, time.UTC)
	spend := func(amount int64) []*entity.Transaction {
		return []*entity.Transaction{
			expenseAt(time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC), amount, "Food"),
		}
	}
	foodBudget := func(amount int64) *entity.Budget {
		return entity.NewMonthlyBudget("Food", amount, entity.BudgetCategoryNeeds, []string{"Food"}, nil)
	}

	t.Run("ninety percent spent on day twenty", func(t *testing.T) {
		p := ComputeProgress(foodBudget(5000), spend(4500), ref)

		if p.Spent != 4500 {
			t.Errorf("expected spent 4500, got %d", p.Spent)
		}
		if p.Percentage != 90 {
			t.Errorf("expected percentage 90, got %d", p.Percentage)
		}
		if p.IsOverBudget {
			t.Error("expected budget not to be over")
		}
		if p.DaysLeft != 11 {
			t.Errorf("expected 11 days left, got %d", p.DaysLeft)
		}
		if !p.DailyBurnRate.Equal(decimal.NewFromInt(225)) {
			t.Errorf("expected burn rate 225, got %s", p.DailyBurnRate)
		}
		// 225 a day across 30 days projects 6750 against a 5000 limit.
		if !p.PaceRatio.Equal(decimal.NewFromFloat(1.35)) {
			t.Errorf("expected pace ratio 1.35, got %s", p.PaceRatio)
		}
		if p.OverspendProbability != 80 {
			t.Errorf("expected probability 80, got %d", p.OverspendProbability)
		}
	})

	t.Run("probability follows the pace ratio brackets", func(t *testing.T) {
		// Day 15 of a 30-day month, limit 3000: pace = spent/1500.
		mid := time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)
		cases := []struct {
			name  string
			spent int64
			want  int
		}{
			{"pace 1.6 lands in the 95 bracket", 2400, 95},
			{"pace 1.35 lands in the 80 bracket", 2025, 80},
			{"pace 1.07 lands in the 65 bracket", 1600, 65},
			{"pace exactly 1.0 stays in the 30 bracket", 1500, 30},
			{"pace 0.67 lands in the 10 bracket", 1000, 10},
			{"pace exactly 0.6 falls to the base 5", 900, 5},
			{"pace 0.2 falls to the base 5", 300, 5},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				p := ComputeProgress(foodBudget(3000), spend(tc.spent), mid)
				if p.OverspendProbability != tc.want {
					t.Errorf("expected probability %d for spent %d, got %d", tc.want, tc.spent, p.OverspendProbability)
				}
			})
		}
	})

	t.Run("nothing spent means zero probability", func(t *testing.T) {
		p := ComputeProgress(foodBudget(5000), nil, ref)

		if p.OverspendProbability != 0 {
			t.Errorf("expected probability 0, got %d", p.OverspendProbability)
		}
		if p.Percentage != 0 {
			t.Errorf("expected percentage 0, got %d", p.Percentage)
		}
		if !p.DailyBurnRate.IsZero() {
			t.Errorf("expected zero burn rate, got %s", p.DailyBurnRate)
		}
	})

	t.Run("an exceeded budget is a certainty", func(t *testing.T) {
		p := ComputeProgress(foodBudget(5000), spend(6000), ref)

		if !p.IsOverBudget {
			t.Error("expected budget to be over")
		}
		if p.Percentage != 120 {
			t.Errorf("expected percentage 120, got %d", p.Percentage)
		}
		if p.OverspendProbability != 100 {
			t.Errorf("expected probability 100, got %d", p.OverspendProbability)
		}
	})

	t.Run("zero limit never divides", func(t *testing.T) {
		p := ComputeProgress(foodBudget(0), spend(500), ref)

		if p.Percentage != 0 {
			t.Errorf("expected percentage 0, got %d", p.Percentage)
		}
		if !p.IsOverBudget {
			t.Error("expected any spend against a zero limit to be over")
		}
		if p.OverspendProbability != 100 {
			t.Errorf("expected probability 100, got %d", p.OverspendProbability)
		}
	})

	t.Run("zero limit with no spend stays at zero probability", func(t *testing.T) {
		p := ComputeProgress(foodBudget(0), nil, ref)

		if p.OverspendProbability != 0 {
			t.Errorf("expected probability 0, got %d", p.OverspendProbability)
		}
	})

	t.Run("days left never drops below one", func(t *testing.T) {
		lastHour := time.Date(2025, 4, 30, 23, 0, 0, 0, time.UTC)
		p := ComputeProgress(foodBudget(5000), spend(100), lastHour)

		if p.DaysLeft != 1 {
			t.Errorf("expected 1 day left, got %d", p.DaysLeft)
		}
	})

	t.Run("percentage and probability never decrease as spend grows", func(t *testing.T) {
		lastPercentage, lastProbability := -1, -1
		for spent := int64(0); spent <= 7000; spent += 250 {
			p := ComputeProgress(foodBudget(5000), spend(spent), ref)
			if p.Percentage < lastPercentage {
				t.Fatalf("percentage dropped from %d to %d at spent %d", lastPercentage, p.Percentage, spent)
			}
			if p.OverspendProbability < lastProbability {
				t.Fatalf("probability dropped from %d to %d at spent %d", lastProbability, p.OverspendProbability, spent)
			}
			lastPercentage, lastProbability = p.Percentage, p.OverspendProbability
		}
	})

	t.Run("custom window budget still projects against the calendar month", func(t *testing.T) {
		start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 5, 31, 23, 59, 59, 0, time.UTC)
		b := entity.NewCustomBudget("Quarter", 9000, entity.BudgetCategoryWants, []string{"Food"}, &start, &end)

		p := ComputeProgress(b, spend(2000), ref)
		if p.DaysLeft != 11 {
			t.Errorf("expected 11 days left, got %d", p.DaysLeft)
		}
		if !p.DailyBurnRate.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected burn rate 100, got %s", p.DailyBurnRate)
		}
	})
}

func TestSortProgress(t *testing.T) {
	namedProgress := func(name string, percentage int, over bool) Progress {
		return Progress{
			Budget:       entity.NewMonthlyBudget(name, 1000, entity.BudgetCategoryNeeds, nil, nil),
			Percentage:   percentage,
			IsOverBudget: over,
		}
	}

	t.Run("over budget entries come first then percentage descends", func(t *testing.T) {
		items := []Progress{
			namedProgress("Calm", 40, false),
			namedProgress("Blown", 130, true),
			namedProgress("Warm", 85, false),
		}

		SortProgress(items)

		got := []string{items[0].Budget.Name, items[1].Budget.Name, items[2].Budget.Name}
		want := []string{"Blown", "Warm", "Calm"}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("expected order %v, got %v", want, got)
			}
		}
	})

	t.Run("budget name breaks percentage ties", func(t *testing.T) {
		items := []Progress{
			namedProgress("Zoo", 50, false),
			namedProgress("Aquarium", 50, false),
		}

		SortProgress(items)

		if items[0].Budget.Name != "Aquarium" || items[1].Budget.Name != "Zoo" {
			t.Errorf("expected name tiebreak, got %s then %s", items[0].Budget.Name, items[1].Budget.Name)
		}
	})
}
