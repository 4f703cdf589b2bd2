// Package summary contains financial aggregate use cases.
package summary

import (
	"sort"
	"time"

	"github.com/moneytrail/backend/internal/domain/entity"
)

// SeriesPoint is one end-of-day data point of the net worth series.
type SeriesPoint struct {
	Date        time.Time
	Balance     int64
	Investments int64
	Settlement  int64
	NetWorth    int64
}

// TimeSeries walks the transactions in ascending occurrence order and emits
// one point per distinct calendar date holding the end-of-day running totals.
// Same-day transactions collapse into a single point. When windowDays > 0 the
// series keeps only dates from now minus the window onward, including the
// whole cutoff day; otherwise the full series is returned. Fewer than two
// points means insufficient data, which is the caller's concern, not an
// error. The input slice is never modified.
func TimeSeries(transactions []*entity.Transaction, windowDays int, now time.Time) []SeriesPoint {
	if len(transactions) == 0 {
		return []SeriesPoint{}
	}

	sorted := make([]*entity.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].OccurredAt.Before(sorted[j].OccurredAt)
	})

	var totals Totals
	points := []SeriesPoint{}
	for _, tx := range sorted {
		totals.Add(tx)
		day := dayOf(tx.OccurredAt)
		point := SeriesPoint{
			Date:        day,
			Balance:     totals.Balance(),
			Investments: totals.Investments,
			Settlement:  totals.Settlement(),
			NetWorth:    totals.NetWorth(),
		}
		if len(points) > 0 && points[len(points)-1].Date.Equal(day) {
			points[len(points)-1] = point
		} else {
			points = append(points, point)
		}
	}

	if windowDays <= 0 {
		return points
	}

	cutoff := dayOf(now.AddDate(0, 0, -windowDays))
	filtered := make([]SeriesPoint, 0, len(points))
	for _, point := range points {
		if !point.Date.Before(cutoff) {
			filtered = append(filtered, point)
		}
	}
	return filtered
}

// dayOf truncates a timestamp to its calendar date.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
