// Package goal contains investment goal use cases.
package goal

import (
	"github.com/shopspring/decimal"

	"github.com/moneytrail/backend/internal/domain/entity"
)

// ComputeGoalProgress evaluates a goal against the accumulated investments
// total. Every goal tracks the same pool: the sum of Investment-tagged
// expenses across the whole history.
func ComputeGoalProgress(goal *entity.InvestmentGoal, investedTotal int64) entity.InvestmentGoalProgress {
	progress := entity.InvestmentGoalProgress{
		Goal:           goal,
		InvestedAmount: investedTotal,
	}

	if goal.TargetAmount > 0 {
		progress.Percentage = int(decimal.NewFromInt(investedTotal).
			Div(decimal.NewFromInt(goal.TargetAmount)).
			Mul(decimal.NewFromInt(100)).
			Round(0).IntPart())
		progress.Achieved = investedTotal >= goal.TargetAmount
	}

	return progress
}
