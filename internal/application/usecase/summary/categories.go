// Package summary contains financial aggregate use cases.
package summary

import (
	"sort"

	"github.com/moneytrail/backend/internal/domain/entity"
)

// TagTotal is one tag's expense total.
type TagTotal struct {
	Tag   string
	Total int64
}

// CategoryBreakdown sums expense amounts grouped by tag, sorted by descending
// total. The input slice is never modified.
func CategoryBreakdown(transactions []*entity.Transaction) []TagTotal {
	sums := make(map[string]int64)
	for _, tx := range transactions {
		if tx.Type != entity.TransactionTypeExpense {
			continue
		}
		sums[tx.Tag] += tx.Amount
	}

	totals := make([]TagTotal, 0, len(sums))
	for tag, total := range sums {
		totals = append(totals, TagTotal{Tag: tag, Total: total})
	}

	// Tag name breaks total ties so map iteration order never leaks out.
	sort.SliceStable(totals, func(i, j int) bool {
		if totals[i].Total != totals[j].Total {
			return totals[i].Total > totals[j].Total
		}
		return totals[i].Tag < totals[j].Tag
	})

	return totals
}
