// Package summary contains financial aggregate use cases.
package summary

import (
	"testing"
	"time"

	"github.com/moneytrail/backend/internal/domain/entity"
)

func TestCategoryBreakdown(t *testing.T) {
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("empty input yields empty breakdown", func(t *testing.T) {
		totals := CategoryBreakdown(nil)
		if len(totals) != 0 {
			t.Errorf("expected empty breakdown, got %d entries", len(totals))
		}
	})

	t.Run("expense amounts are grouped by tag and sorted descending", func(t *testing.T) {
		transactions := []*entity.Transaction{
			newTestTransaction(300, entity.TransactionTypeExpense, entity.SelfPerson, "Food", base),
			newTestTransaction(900, entity.TransactionTypeExpense, entity.SelfPerson, "Rent", base),
			newTestTransaction(200, entity.TransactionTypeExpense, entity.SelfPerson, "Food", base),
		}

		totals := CategoryBreakdown(transactions)
		if len(totals) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(totals))
		}
		if totals[0].Tag != "Rent" || totals[0].Total != 900 {
			t.Errorf("unexpected first entry: %+v", totals[0])
		}
		if totals[1].Tag != "Food" || totals[1].Total != 500 {
			t.Errorf("unexpected second entry: %+v", totals[1])
		}
	})

	t.Run("income transactions are ignored", func(t *testing.T) {
		transactions := []*entity.Transaction{
			newTestTransaction(5000, entity.TransactionTypeIncome, entity.SelfPerson, "Salary", base),
			newTestTransaction(300, entity.TransactionTypeExpense, entity.SelfPerson, "Food", base),
		}

		totals := CategoryBreakdown(transactions)
		if len(totals) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(totals))
		}
		if totals[0].Tag != "Food" {
			t.Errorf("expected Food, got %s", totals[0].Tag)
		}
	})

	t.Run("equal totals are ordered by tag name", func(t *testing.T) {
		transactions := []*entity.Transaction{
			newTestTransaction(100, entity.TransactionTypeExpense, entity.SelfPerson, "Zoo", base),
			newTestTransaction(100, entity.TransactionTypeExpense, entity.SelfPerson, "Aquarium", base),
		}

		totals := CategoryBreakdown(transactions)
		if len(totals) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(totals))
		}
		if totals[0].Tag != "Aquarium" || totals[1].Tag != "Zoo" {
			t.Errorf("unexpected order: %s, %s", totals[0].Tag, totals[1].Tag)
		}
	})
}

func TestSnapshotCacheKey(t *testing.T) {
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("key is independent of list order", func(t *testing.T) {
		a := newTestTransaction(100, entity.TransactionTypeExpense, entity.SelfPerson, "Food", base)
		b := newTestTransaction(200, entity.TransactionTypeExpense, entity.SelfPerson, "Rent", base)

		first := SnapshotCacheKey([]*entity.Transaction{a, b})
		second := SnapshotCacheKey([]*entity.Transaction{b, a})
		if first != second {
			t.Error("expected order-independent key")
		}
	})

	t.Run("key changes when a transaction is edited", func(t *testing.T) {
		a := newTestTransaction(100, entity.TransactionTypeExpense, entity.SelfPerson, "Food", base)
		before := SnapshotCacheKey([]*entity.Transaction{a})

		a.UpdatedAt = a.UpdatedAt.Add(time.Second)
		after := SnapshotCacheKey([]*entity.Transaction{a})

		if before == after {
			t.Error("expected key to change with updatedAt")
		}
	})

	t.Run("key changes when a transaction is added", func(t *testing.T) {
		a := newTestTransaction(100, entity.TransactionTypeExpense, entity.SelfPerson, "Food", base)
		b := newTestTransaction(200, entity.TransactionTypeExpense, entity.SelfPerson, "Rent", base)

		if SnapshotCacheKey([]*entity.Transaction{a}) == SnapshotCacheKey([]*entity.Transaction{a, b}) {
			t.Error("expected key to change with list membership")
		}
	})
}
