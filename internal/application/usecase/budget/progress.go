// Package budget contains budget evaluation use cases.
package budget

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneytrail/backend/internal/domain/entity"
)

// Overspend probability brackets over the pace ratio. The ratio projects the
// current burn rate across the full month and compares it to the limit.
var probabilityBrackets = []struct {
	above       decimal.Decimal
	probability int
}{
	{decimal.NewFromFloat(1.5), 95},
	{decimal.NewFromFloat(1.2), 80},
	{decimal.NewFromFloat(1.0), 65},
	{decimal.NewFromFloat(0.8), 30},
	{decimal.NewFromFloat(0.6), 10},
}

const baseProbability = 5

// Progress describes a budget's consumption and projected overspend risk.
type Progress struct {
	Budget               *entity.Budget
	Spent                int64
	Percentage           int
	IsOverBudget         bool
	DaysLeft             int
	DailyBurnRate        decimal.Decimal
	PaceRatio            decimal.Decimal
	OverspendProbability int
}

// SpentAmount sums expense amounts inside the budget's window whose tag the
// budget tracks. An empty tag set matches every tag. The input slice is never
// modified.
func SpentAmount(b *entity.Budget, transactions []*entity.Transaction, ref time.Time) int64 {
	start, end := ResolveWindow(b, ref)

	var spent int64
	for _, tx := range transactions {
		if tx.Type != entity.TransactionTypeExpense {
			continue
		}
		if !InsideWindow(tx.OccurredAt, start, end) {
			continue
		}
		if len(b.Tags) > 0 && !b.MatchesTag(tx.Tag) {
			continue
		}
		spent += tx.Amount
	}
	return spent
}

// ComputeProgress evaluates one budget against the transactions at the
// reference date. Deterministic, no side effects.
//
// daysLeft and the burn-rate projection always run against the calendar
// month containing ref, even for custom-window budgets. A budget amount of
// zero or less never divides; percentage collapses to 0 and the probability
// rules still apply.
func ComputeProgress(b *entity.Budget, transactions []*entity.Transaction, ref time.Time) Progress {
	spent := SpentAmount(b, transactions, ref)

	monthStart, monthEnd := monthBounds(ref)
	daysInMonth := monthStart.AddDate(0, 1, -1).Day()
	dayOfMonth := ref.Day()
	if dayOfMonth < 1 {
		dayOfMonth = 1
	}

	daysLeft := int(decimal.NewFromFloat(monthEnd.Sub(ref).Hours() / 24).Ceil().IntPart())
	if daysLeft < 1 {
		daysLeft = 1
	}

	progress := Progress{
		Budget:       b,
		Spent:        spent,
		IsOverBudget: spent > b.Amount,
		DaysLeft:     daysLeft,
	}

	spentDec := decimal.NewFromInt(spent)
	progress.DailyBurnRate = spentDec.Div(decimal.NewFromInt(int64(dayOfMonth)))

	if b.Amount > 0 {
		amountDec := decimal.NewFromInt(b.Amount)
		progress.Percentage = int(spentDec.Div(amountDec).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
		projected := progress.DailyBurnRate.Mul(decimal.NewFromInt(int64(daysInMonth)))
		progress.PaceRatio = projected.Div(amountDec)
	}

	progress.OverspendProbability = overspendProbability(progress.PaceRatio, spent, progress.IsOverBudget)

	return progress
}

// overspendProbability maps the pace ratio to a discrete risk score. Nothing
// spent means no risk; an already blown budget is a certainty.
func overspendProbability(paceRatio decimal.Decimal, spent int64, isOverBudget bool) int {
	if spent == 0 {
		return 0
	}
	if isOverBudget {
		return 100
	}
	for _, bracket := range probabilityBrackets {
		if paceRatio.GreaterThan(bracket.above) {
			return bracket.probability
		}
	}
	return baseProbability
}

// SortProgress orders budget progress entries for display: over-budget
// entries first, then by descending percentage. Budget name breaks ties so
// the order is stable across calls.
func SortProgress(items []Progress) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].IsOverBudget != items[j].IsOverBudget {
			return items[i].IsOverBudget
		}
		if items[i].Percentage != items[j].Percentage {
			return items[i].Percentage > items[j].Percentage
		}
		return items[i].Budget.Name < items[j].Budget.Name
	})
}
