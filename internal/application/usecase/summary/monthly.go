// Package summary contains financial aggregate use cases.
package summary

import (
	"time"

	"github.com/moneytrail/backend/internal/domain/entity"
)

// MonthPoint is one month of the income/expense comparison series.
type MonthPoint struct {
	Label    string
	Year     int
	Month    time.Month
	Income   int64
	Expenses int64
	Balance  int64
}

// MonthlyComparison sums income and expenses per calendar month for the last
// monthCount months, oldest first, including the current partial month. The
// input slice is never modified.
func MonthlyComparison(transactions []*entity.Transaction, monthCount int, now time.Time) []MonthPoint {
	if monthCount <= 0 {
		return []MonthPoint{}
	}

	points := make([]MonthPoint, 0, monthCount)
	currentMonthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	for i := monthCount - 1; i >= 0; i-- {
		monthStart := currentMonthStart.AddDate(0, -i, 0)
		monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

		var income, expenses int64
		for _, tx := range transactions {
			if tx.OccurredAt.Before(monthStart) || tx.OccurredAt.After(monthEnd) {
				continue
			}
			switch tx.Type {
			case entity.TransactionTypeIncome:
				income += tx.Amount
			case entity.TransactionTypeExpense:
				expenses += tx.Amount
			}
		}

		points = append(points, MonthPoint{
			Label:    monthStart.Format("Jan 2006"),
			Year:     monthStart.Year(),
			Month:    monthStart.Month(),
			Income:   income,
			Expenses: expenses,
			Balance:  income - expenses,
		})
	}

	return points
}
