// Package summary contains financial aggregate use cases.
package summary

import (
	"testing"
	"time"

	"github.com/moneytrail/backend/internal/domain/entity"
)

func TestTimeSeries(t *testing.T) {
	now := time.Date(2025, 3, 20, 15, 0, 0, 0, time.UTC)

	// Test empty input.
	t.Run("empty input yields empty series", func(t *testing.T) {
		points := TimeSeries(nil, 0, now)
		if len(points) != 0 {
			t.Errorf("expected empty series, got %d points", len(points))
		}
	})

	// Test one point per distinct calendar date.
	t.Run("one point per distinct date with running totals", func(t *testing.T) {
		transactions := []*entity.Transaction{
			newTestTransaction(1000, entity.TransactionTypeIncome, entity.SelfPerson, "Salary", time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)),
			newTestTransaction(300, entity.TransactionTypeExpense, entity.SelfPerson, "Food", time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)),
			newTestTransaction(200, entity.TransactionTypeExpense, entity.SelfPerson, "Food", time.Date(2025, 3, 9, 18, 0, 0, 0, time.UTC)),
		}

		points := TimeSeries(transactions, 0, now)
		if len(points) != 3 {
			t.Fatalf("expected 3 points, got %d", len(points))
		}

		wantBalances := []int64{1000, 700, 500}
		for i, want := range wantBalances {
			if points[i].Balance != want {
				t.Errorf("point %d: expected balance %d, got %d", i, want, points[i].Balance)
			}
		}
	})

	// Test same-day transactions collapse to end-of-day totals.
	t.Run("same-day transactions collapse to one point", func(t *testing.T) {
		day := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
		transactions := []*entity.Transaction{
			newTestTransaction(1000, entity.TransactionTypeIncome, entity.SelfPerson, "Salary", day.Add(9*time.Hour)),
			newTestTransaction(300, entity.TransactionTypeExpense, entity.SelfPerson, "Food", day.Add(13*time.Hour)),
			newTestTransaction(100, entity.TransactionTypeExpense, entity.SelfPerson, "Transport", day.Add(20*time.Hour)),
		}

		points := TimeSeries(transactions, 0, now)
		if len(points) != 1 {
			t.Fatalf("expected 1 point, got %d", len(points))
		}
		if points[0].Balance != 600 {
			t.Errorf("expected end-of-day balance 600, got %d", points[0].Balance)
		}
		if !points[0].Date.Equal(day) {
			t.Errorf("expected date %v, got %v", day, points[0].Date)
		}
	})

	// Test unsorted input is walked in occurrence order.
	t.Run("input order does not matter", func(t *testing.T) {
		transactions := []*entity.Transaction{
			newTestTransaction(200, entity.TransactionTypeExpense, entity.SelfPerson, "Food", time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)),
			newTestTransaction(1000, entity.TransactionTypeIncome, entity.SelfPerson, "Salary", time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)),
		}

		points := TimeSeries(transactions, 0, now)
		if len(points) != 2 {
			t.Fatalf("expected 2 points, got %d", len(points))
		}
		if points[0].Balance != 1000 || points[1].Balance != 800 {
			t.Errorf("expected balances 1000, 800; got %d, %d", points[0].Balance, points[1].Balance)
		}
		if transactions[0].Amount != 200 {
			t.Error("expected input slice to stay untouched")
		}
	})

	// Test the trailing window filter keeps running totals from the full walk.
	t.Run("window filters points but keeps full-history totals", func(t *testing.T) {
		transactions := []*entity.Transaction{
			newTestTransaction(5000, entity.TransactionTypeIncome, entity.SelfPerson, "Salary", time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)),
			newTestTransaction(300, entity.TransactionTypeExpense, entity.SelfPerson, "Food", time.Date(2025, 3, 18, 12, 0, 0, 0, time.UTC)),
		}

		points := TimeSeries(transactions, 7, now)
		if len(points) != 1 {
			t.Fatalf("expected 1 point, got %d", len(points))
		}
		// The January income is outside the window but still inside the total.
		if points[0].Balance != 4700 {
			t.Errorf("expected balance 4700, got %d", points[0].Balance)
		}
	})

	// Test the cutoff day itself is included.
	t.Run("window includes the whole cutoff day", func(t *testing.T) {
		cutoffDay := time.Date(2025, 3, 13, 8, 0, 0, 0, time.UTC)
		transactions := []*entity.Transaction{
			newTestTransaction(100, entity.TransactionTypeExpense, entity.SelfPerson, "Food", cutoffDay),
		}

		points := TimeSeries(transactions, 7, now)
		if len(points) != 1 {
			t.Errorf("expected the cutoff-day point to survive, got %d points", len(points))
		}
	})

	// Test insufficient data comes back as a short series, not an error.
	t.Run("single point series is returned as-is", func(t *testing.T) {
		transactions := []*entity.Transaction{
			newTestTransaction(100, entity.TransactionTypeExpense, entity.SelfPerson, "Food", now),
		}

		points := TimeSeries(transactions, 0, now)
		if len(points) != 1 {
			t.Errorf("expected 1 point, got %d", len(points))
		}
	})

	// Test the settlement and investment channels move through the series.
	t.Run("series carries investments and settlement channels", func(t *testing.T) {
		transactions := []*entity.Transaction{
			newTestTransaction(2000, entity.TransactionTypeExpense, entity.SelfPerson, entity.TagInvestment, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)),
			newTestTransaction(1000, entity.TransactionTypeExpense, "John", "Food", time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)),
		}

		points := TimeSeries(transactions, 0, now)
		if len(points) != 2 {
			t.Fatalf("expected 2 points, got %d", len(points))
		}

		last := points[1]
		if last.Investments != 2000 {
			t.Errorf("expected investments 2000, got %d", last.Investments)
		}
		if last.Settlement != 1000 {
			t.Errorf("expected settlement 1000, got %d", last.Settlement)
		}
		if last.NetWorth != last.Balance+last.Investments+last.Settlement {
			t.Errorf("expected composed net worth, got %d", last.NetWorth)
		}
	})

	// Test the final series point matches the snapshot.
	t.Run("last point equals the snapshot", func(t *testing.T) {
		transactions := []*entity.Transaction{
			newTestTransaction(10000, entity.TransactionTypeIncome, entity.SelfPerson, "Salary", time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)),
			newTestTransaction(2000, entity.TransactionTypeExpense, entity.SelfPerson, entity.TagInvestment, time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)),
			newTestTransaction(1000, entity.TransactionTypeExpense, "John", "Food", time.Date(2025, 3, 7, 9, 0, 0, 0, time.UTC)),
			newTestTransaction(400, entity.TransactionTypeIncome, "John", entity.TagSettlement, time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)),
		}

		points := TimeSeries(transactions, 0, now)
		values := Snapshot(transactions).Values()

		last := points[len(points)-1]
		if last.Balance != values.Balance || last.Investments != values.Investments ||
			last.Settlement != values.Settlement || last.NetWorth != values.NetWorth {
			t.Errorf("expected last point %+v to match snapshot %+v", last, values)
		}
	})
}
