// Package budget contains budget evaluation use cases.
package budget

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneytrail/backend/internal/domain/entity"
)

// CategoryLine is one category row of the needs/wants/investment summary.
type CategoryLine struct {
	Category   entity.BudgetCategory
	Spent      int64
	Budget     int64
	Percentage int
}

// summaryCategories fixes the row order of the category summary.
var summaryCategories = []entity.BudgetCategory{
	entity.BudgetCategoryNeeds,
	entity.BudgetCategoryWants,
	entity.BudgetCategoryInvestment,
}

// EffectiveCategory returns the category a budget is summarized under. A
// budget with no valid category of its own falls back to the mapping of its
// first mapped tag; unmapped budgets land in needs.
func EffectiveCategory(b *entity.Budget, tagCategories map[string]entity.BudgetCategory) entity.BudgetCategory {
	if entity.IsValidBudgetCategory(b.Category) {
		return b.Category
	}
	for _, tag := range b.Tags {
		if category, ok := tagCategories[tag]; ok {
			return category
		}
	}
	return entity.BudgetCategoryNeeds
}

// ComputeCategorySummary aggregates monthly budgets into the three fixed
// categories. Every category row is always present; a category with no
// budgets carries zeroes. Custom-window budgets are excluded. Deterministic,
// no side effects.
func ComputeCategorySummary(
	budgets []*entity.Budget,
	transactions []*entity.Transaction,
	tagCategories map[string]entity.BudgetCategory,
	ref time.Time,
) []CategoryLine {
	totals := make(map[entity.BudgetCategory]*CategoryLine, len(summaryCategories))
	for _, category := range summaryCategories {
		totals[category] = &CategoryLine{Category: category}
	}

	for _, b := range budgets {
		if b.Type != entity.BudgetTypeMonthly {
			continue
		}
		line := totals[EffectiveCategory(b, tagCategories)]
		line.Budget += b.Amount
		line.Spent += SpentAmount(b, transactions, ref)
	}

	lines := make([]CategoryLine, 0, len(summaryCategories))
	for _, category := range summaryCategories {
		line := totals[category]
		if line.Budget > 0 {
			line.Percentage = int(decimal.NewFromInt(line.Spent).
				Div(decimal.NewFromInt(line.Budget)).
				Mul(decimal.NewFromInt(100)).
				Round(0).IntPart())
		}
		lines = append(lines, *line)
	}
	return lines
}
