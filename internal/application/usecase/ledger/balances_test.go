// Package ledger contains counterparty balance and settlement use cases.
package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/moneytrail/backend/internal/domain/entity"
)

func newTestTransaction(amount int64, transactionType entity.TransactionType, person, tag string, occurredAt time.Time) *entity.Transaction {
	return &entity.Transaction{
		ID:         uuid.New(),
		OccurredAt: occurredAt,
		Amount:     amount,
		Type:       transactionType,
		Name:       "test",
		Tag:        tag,
		Person:     person,
	}
}

func TestComputeBalances(t *testing.T) {
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	// Test empty input yields empty output.
	t.Run("empty input yields empty list", func(t *testing.T) {
		balances := ComputeBalances(nil)
		if len(balances) != 0 {
			t.Errorf("expected empty balances, got %d", len(balances))
		}
	})

	// Test the paid-for-John scenario.
	t.Run("expense and income against one person net correctly", func(t *testing.T) {
		transactions := []*entity.Transaction{
			newTestTransaction(1000, entity.TransactionTypeExpense, "John", "Food", base),
			newTestTransaction(400, entity.TransactionTypeIncome, "John", entity.TagSettlement, base.Add(time.Hour)),
		}

		balances := ComputeBalances(transactions)
		if len(balances) != 1 {
			t.Fatalf("expected 1 balance, got %d", len(balances))
		}

		john := balances[0]
		if john.Person != "John" {
			t.Errorf("expected person John, got %s", john.Person)
		}
		if john.TotalOwed != 1000 {
			t.Errorf("expected totalOwed 1000, got %d", john.TotalOwed)
		}
		if john.TotalOwing != 400 {
			t.Errorf("expected totalOwing 400, got %d", john.TotalOwing)
		}
		if john.Net() != 600 {
			t.Errorf("expected net 600, got %d", john.Net())
		}
	})

	// Test self transactions never participate.
	t.Run("self transactions are excluded", func(t *testing.T) {
		transactions := []*entity.Transaction{
			newTestTransaction(5000, entity.TransactionTypeExpense, entity.SelfPerson, "Rent", base),
			newTestTransaction(200, entity.TransactionTypeExpense, "Alice", "Food", base),
		}

		balances := ComputeBalances(transactions)
		if len(balances) != 1 {
			t.Fatalf("expected 1 balance, got %d", len(balances))
		}
		if balances[0].Person != "Alice" {
			t.Errorf("expected person Alice, got %s", balances[0].Person)
		}
	})

	// Test a person with only income-type transactions.
	t.Run("person with only income has zero owed", func(t *testing.T) {
		transactions := []*entity.Transaction{
			newTestTransaction(300, entity.TransactionTypeIncome, "Bob", "Other", base),
		}

		balances := ComputeBalances(transactions)
		if len(balances) != 1 {
			t.Fatalf("expected 1 balance, got %d", len(balances))
		}

		bob := balances[0]
		if bob.TotalOwed != 0 {
			t.Errorf("expected totalOwed 0, got %d", bob.TotalOwed)
		}
		if bob.TotalOwing != 300 {
			t.Errorf("expected totalOwing 300, got %d", bob.TotalOwing)
		}
		if bob.Net() != -300 {
			t.Errorf("expected net -300, got %d", bob.Net())
		}
	})

	// Test sort order across persons.
	t.Run("balances sorted by descending net", func(t *testing.T) {
		transactions := []*entity.Transaction{
			newTestTransaction(100, entity.TransactionTypeExpense, "Low", "Food", base),
			newTestTransaction(900, entity.TransactionTypeExpense, "High", "Food", base),
			newTestTransaction(500, entity.TransactionTypeIncome, "Negative", "Other", base),
		}

		balances := ComputeBalances(transactions)
		if len(balances) != 3 {
			t.Fatalf("expected 3 balances, got %d", len(balances))
		}
		if balances[0].Person != "High" || balances[1].Person != "Low" || balances[2].Person != "Negative" {
			t.Errorf("unexpected order: %s, %s, %s", balances[0].Person, balances[1].Person, balances[2].Person)
		}
	})

	// Test transaction order inside a balance.
	t.Run("transactions sorted by descending occurrence time", func(t *testing.T) {
		older := newTestTransaction(100, entity.TransactionTypeExpense, "Carol", "Food", base)
		newer := newTestTransaction(200, entity.TransactionTypeExpense, "Carol", "Food", base.Add(48*time.Hour))

		balances := ComputeBalances([]*entity.Transaction{older, newer})
		if len(balances) != 1 {
			t.Fatalf("expected 1 balance, got %d", len(balances))
		}

		got := balances[0].Transactions
		if len(got) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(got))
		}
		if got[0].ID != newer.ID || got[1].ID != older.ID {
			t.Error("expected newest transaction first")
		}
	})

	// Test purity: the input order survives the call.
	t.Run("input slice is not modified", func(t *testing.T) {
		first := newTestTransaction(100, entity.TransactionTypeExpense, "Dan", "Food", base)
		second := newTestTransaction(200, entity.TransactionTypeExpense, "Dan", "Food", base.Add(time.Hour))
		transactions := []*entity.Transaction{first, second}

		ComputeBalances(transactions)

		if transactions[0].ID != first.ID || transactions[1].ID != second.ID ||
			transactions[0].Amount != 100 || transactions[1].Amount != 200 {
			t.Error("expected input slice to stay untouched")
		}
	})

	// Test determinism across calls.
	t.Run("repeated calls yield identical output", func(t *testing.T) {
		transactions := []*entity.Transaction{
			newTestTransaction(100, entity.TransactionTypeExpense, "Eve", "Food", base),
			newTestTransaction(100, entity.TransactionTypeExpense, "Frank", "Food", base),
			newTestTransaction(100, entity.TransactionTypeExpense, "Grace", "Food", base),
		}

		first := ComputeBalances(transactions)
		second := ComputeBalances(transactions)

		if len(first) != len(second) {
			t.Fatalf("expected equal lengths, got %d and %d", len(first), len(second))
		}
		for i := range first {
			if first[i].Person != second[i].Person {
				t.Errorf("position %d: expected %s, got %s", i, first[i].Person, second[i].Person)
			}
		}
	})
}

func TestOutstandingNet(t *testing.T) {
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("person with no transactions nets zero", func(t *testing.T) {
		if net := OutstandingNet(nil, "John"); net != 0 {
			t.Errorf("expected 0, got %d", net)
		}
	})

	t.Run("net matches computed balance", func(t *testing.T) {
		transactions := []*entity.Transaction{
			newTestTransaction(1000, entity.TransactionTypeExpense, "John", "Food", base),
			newTestTransaction(400, entity.TransactionTypeIncome, "John", entity.TagSettlement, base),
			newTestTransaction(950, entity.TransactionTypeExpense, "Alice", "Food", base),
		}

		if net := OutstandingNet(transactions, "John"); net != 600 {
			t.Errorf("expected 600, got %d", net)
		}
		if net := OutstandingNet(transactions, "Alice"); net != 950 {
			t.Errorf("expected 950, got %d", net)
		}
	})
}
