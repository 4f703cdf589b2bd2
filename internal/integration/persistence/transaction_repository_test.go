package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/moneytrail/backend/internal/application/adapter"
	"github.com/moneytrail/backend/internal/domain/entity"
	domainerror "github.com/moneytrail/backend/internal/domain/error"
)

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("failed to parse day %q: %v", value, err)
	}
	return parsed
}

func TestTransactionRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create and find by id round trips every field", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))

		tx := entity.NewTransaction(day(t, "2025-04-10"), 2590, entity.TransactionTypeExpense, "Groceries at market", "Food", "Anna")
		if err := repo.Create(ctx, tx); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		got, err := repo.FindByID(ctx, tx.ID)
		if err != nil {
			t.Fatalf("find by id failed: %v", err)
		}
		if got.ID != tx.ID {
			t.Errorf("expected id %s, got %s", tx.ID, got.ID)
		}
		if !got.OccurredAt.Equal(tx.OccurredAt) {
			t.Errorf("expected occurred at %v, got %v", tx.OccurredAt, got.OccurredAt)
		}
		if got.Amount != 2590 {
			t.Errorf("expected amount 2590, got %d", got.Amount)
		}
		if got.Type != entity.TransactionTypeExpense {
			t.Errorf("expected type expense, got %s", got.Type)
		}
		if got.Name != "Groceries at market" {
			t.Errorf("expected name to round trip, got %q", got.Name)
		}
		if got.Tag != "Food" {
			t.Errorf("expected tag Food, got %q", got.Tag)
		}
		if got.Person != "Anna" {
			t.Errorf("expected person Anna, got %q", got.Person)
		}
	})

	t.Run("find by id returns not found for unknown id", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))

		_, err := repo.FindByID(ctx, uuid.New())
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("find all orders newest first", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))

		older := entity.NewTransaction(day(t, "2025-04-01"), 100, entity.TransactionTypeExpense, "Old", "Food", entity.SelfPerson)
		newer := entity.NewTransaction(day(t, "2025-04-15"), 200, entity.TransactionTypeExpense, "New", "Food", entity.SelfPerson)
		for _, tx := range []*entity.Transaction{older, newer} {
			if err := repo.Create(ctx, tx); err != nil {
				t.Fatalf("create failed: %v", err)
			}
		}

		got, err := repo.FindAll(ctx)
		if err != nil {
			t.Fatalf("find all failed: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(got))
		}
		if got[0].ID != newer.ID {
			t.Errorf("expected newest transaction first, got %q", got[0].Name)
		}
	})

	t.Run("create batch persists all or nothing", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))

		first := entity.NewTransaction(day(t, "2025-04-01"), 100, entity.TransactionTypeExpense, "First", "Food", entity.SelfPerson)
		duplicate := *first

		err := repo.CreateBatch(ctx, []*entity.Transaction{first, &duplicate})
		if err == nil {
			t.Fatal("expected duplicate id to fail the batch")
		}

		got, err := repo.FindAll(ctx)
		if err != nil {
			t.Fatalf("find all failed: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected no transactions after failed batch, got %d", len(got))
		}
	})

	t.Run("filter narrows by date range type tag person and search", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))

		seed := []*entity.Transaction{
			entity.NewTransaction(day(t, "2025-03-20"), 1000, entity.TransactionTypeExpense, "March rent", "Rent", entity.SelfPerson),
			entity.NewTransaction(day(t, "2025-04-05"), 500, entity.TransactionTypeExpense, "Cinema night", "Entertainment", "Anna"),
			entity.NewTransaction(day(t, "2025-04-12"), 3000, entity.TransactionTypeIncome, "April salary", "Salary", entity.SelfPerson),
			entity.NewTransaction(day(t, "2025-04-18"), 800, entity.TransactionTypeExpense, "Dinner out", "Food", "Ben"),
		}
		if err := repo.CreateBatch(ctx, seed); err != nil {
			t.Fatalf("seed failed: %v", err)
		}

		expense := entity.TransactionTypeExpense
		start := day(t, "2025-04-01")
		end := day(t, "2025-04-30")

		cases := []struct {
			name   string
			filter adapter.TransactionFilter
			want   []string
		}{
			{
				name:   "date range keeps april only",
				filter: adapter.TransactionFilter{StartDate: &start, EndDate: &end},
				want:   []string{"Dinner out", "April salary", "Cinema night"},
			},
			{
				name:   "type keeps expenses",
				filter: adapter.TransactionFilter{Type: &expense},
				want:   []string{"Dinner out", "Cinema night", "March rent"},
			},
			{
				name:   "tag keeps matching tag",
				filter: adapter.TransactionFilter{Tag: "Food"},
				want:   []string{"Dinner out"},
			},
			{
				name:   "person keeps matching counterparty",
				filter: adapter.TransactionFilter{Person: "Anna"},
				want:   []string{"Cinema night"},
			},
			{
				name:   "search matches name case insensitively",
				filter: adapter.TransactionFilter{Search: "SALARY"},
				want:   []string{"April salary"},
			},
			{
				name:   "combined filters intersect",
				filter: adapter.TransactionFilter{StartDate: &start, Type: &expense, Person: "Ben"},
				want:   []string{"Dinner out"},
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				got, err := repo.FindByFilter(ctx, tc.filter)
				if err != nil {
					t.Fatalf("filter failed: %v", err)
				}
				if len(got) != len(tc.want) {
					t.Fatalf("expected %d transactions, got %d", len(tc.want), len(got))
				}
				for i, name := range tc.want {
					if got[i].Name != name {
						t.Errorf("expected %q at position %d, got %q", name, i, got[i].Name)
					}
				}
			})
		}
	})

	t.Run("update overwrites stored fields", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))

		tx := entity.NewTransaction(day(t, "2025-04-10"), 2000, entity.TransactionTypeExpense, "Taxi", "Transport", entity.SelfPerson)
		if err := repo.Create(ctx, tx); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		tx.Amount = 2500
		tx.Tag = "Other"
		if err := repo.Update(ctx, tx); err != nil {
			t.Fatalf("update failed: %v", err)
		}

		got, err := repo.FindByID(ctx, tx.ID)
		if err != nil {
			t.Fatalf("find by id failed: %v", err)
		}
		if got.Amount != 2500 || got.Tag != "Other" {
			t.Errorf("expected updated amount and tag, got %d %q", got.Amount, got.Tag)
		}
	})

	t.Run("update tag batch retags only the given ids", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))

		first := entity.NewTransaction(day(t, "2025-04-01"), 100, entity.TransactionTypeExpense, "First", "Other", entity.SelfPerson)
		second := entity.NewTransaction(day(t, "2025-04-02"), 200, entity.TransactionTypeExpense, "Second", "Other", entity.SelfPerson)
		third := entity.NewTransaction(day(t, "2025-04-03"), 300, entity.TransactionTypeExpense, "Third", "Other", entity.SelfPerson)
		if err := repo.CreateBatch(ctx, []*entity.Transaction{first, second, third}); err != nil {
			t.Fatalf("seed failed: %v", err)
		}

		updated, err := repo.UpdateTagBatch(ctx, []uuid.UUID{first.ID, third.ID}, "Food")
		if err != nil {
			t.Fatalf("update tag batch failed: %v", err)
		}
		if updated != 2 {
			t.Errorf("expected 2 rows updated, got %d", updated)
		}

		got, err := repo.FindByID(ctx, second.ID)
		if err != nil {
			t.Fatalf("find by id failed: %v", err)
		}
		if got.Tag != "Other" {
			t.Errorf("expected untouched transaction to keep its tag, got %q", got.Tag)
		}
	})

	t.Run("delete batch reports the number of removed rows", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))

		first := entity.NewTransaction(day(t, "2025-04-01"), 100, entity.TransactionTypeExpense, "First", "Food", entity.SelfPerson)
		second := entity.NewTransaction(day(t, "2025-04-02"), 200, entity.TransactionTypeExpense, "Second", "Food", entity.SelfPerson)
		if err := repo.CreateBatch(ctx, []*entity.Transaction{first, second}); err != nil {
			t.Fatalf("seed failed: %v", err)
		}

		deleted, err := repo.DeleteBatch(ctx, []uuid.UUID{first.ID, uuid.New()})
		if err != nil {
			t.Fatalf("delete batch failed: %v", err)
		}
		if deleted != 1 {
			t.Errorf("expected 1 row deleted, got %d", deleted)
		}

		remaining, err := repo.FindAll(ctx)
		if err != nil {
			t.Fatalf("find all failed: %v", err)
		}
		if len(remaining) != 1 || remaining[0].ID != second.ID {
			t.Errorf("expected only the second transaction to remain")
		}
	})

	t.Run("delete all empties the table", func(t *testing.T) {
		repo := NewTransactionRepository(newTestDB(t))

		tx := entity.NewTransaction(day(t, "2025-04-01"), 100, entity.TransactionTypeExpense, "First", "Food", entity.SelfPerson)
		if err := repo.Create(ctx, tx); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		if err := repo.DeleteAll(ctx); err != nil {
			t.Fatalf("delete all failed: %v", err)
		}

		remaining, err := repo.FindAll(ctx)
		if err != nil {
			t.Fatalf("find all failed: %v", err)
		}
		if len(remaining) != 0 {
			t.Errorf("expected empty table, got %d transactions", len(remaining))
		}
	})
}
