// Package budget contains budget evaluation use cases.
package budget

import (
	"time"

	"github.com/moneytrail/backend/internal/domain/entity"
)

// MonthLayout is the wire format for a pinned budget month.
const MonthLayout = "2006-01"

// ResolveWindow returns the inclusive evaluation window for a budget.
// Monthly budgets cover the calendar month of the reference date, or the
// budget's pinned month when one is set. Custom budgets use their explicit
// bounds; a missing bound defaults to the corresponding edge of the current
// month.
func ResolveWindow(b *entity.Budget, ref time.Time) (start, end time.Time) {
	if b.Type == entity.BudgetTypeCustom {
		start, end = monthBounds(ref)
		if b.StartDate != nil {
			start = *b.StartDate
		}
		if b.EndDate != nil {
			end = *b.EndDate
		}
		return start, end
	}

	anchor := ref
	if b.Month != nil {
		if parsed, err := time.Parse(MonthLayout, *b.Month); err == nil {
			anchor = parsed
		}
	}
	return monthBounds(anchor)
}

// monthBounds returns the first and last instant of the month containing t.
func monthBounds(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// InsideWindow reports whether a timestamp falls inside the inclusive window.
func InsideWindow(ts, start, end time.Time) bool {
	return !ts.Before(start) && !ts.After(end)
}
