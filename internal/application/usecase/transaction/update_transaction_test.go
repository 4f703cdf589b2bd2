// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/moneytrail/backend/internal/domain/entity"
	domainerror "github.com/moneytrail/backend/internal/domain/error"
)

func seedTransaction(repo *fakeTransactionRepo) *entity.Transaction {
	tx := entity.NewTransaction(
		time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC),
		1500,
		entity.TransactionTypeExpense,
		"Groceries",
		"Food",
		entity.SelfPerson,
	)
	repo.transactions[tx.ID] = tx
	return tx
}

func TestUpdateTransactionUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("updates only the provided fields", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		seeded := seedTransaction(repo)
		uc := NewUpdateTransactionUseCase(repo)

		amount := int64(2000)
		output, err := uc.Execute(ctx, UpdateTransactionInput{
			TransactionID: seeded.ID,
			Amount:        &amount,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Transaction.Amount != 2000 {
			t.Errorf("expected amount 2000, got %d", output.Transaction.Amount)
		}
		if output.Transaction.Name != "Groceries" {
			t.Errorf("expected name to stay, got %q", output.Transaction.Name)
		}
		if !output.Transaction.UpdatedAt.After(seeded.CreatedAt) && !output.Transaction.UpdatedAt.Equal(seeded.CreatedAt) {
			t.Error("expected UpdatedAt to be refreshed")
		}
	})

	t.Run("missing transaction yields a not found error", func(t *testing.T) {
		uc := NewUpdateTransactionUseCase(newFakeTransactionRepo())

		name := "Renamed"
		_, err := uc.Execute(ctx, UpdateTransactionInput{TransactionID: uuid.New(), Name: &name})
		if code := transactionCode(t, err); code != domainerror.ErrCodeTransactionNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeTransactionNotFound, code)
		}
	})

	t.Run("rejects a negative amount update", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		seeded := seedTransaction(repo)
		uc := NewUpdateTransactionUseCase(repo)

		amount := int64(-5)
		_, err := uc.Execute(ctx, UpdateTransactionInput{TransactionID: seeded.ID, Amount: &amount})
		if code := transactionCode(t, err); code != domainerror.ErrCodeInvalidTransactionAmount {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidTransactionAmount, code)
		}
	})

	t.Run("rejects an invalid type update", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		seeded := seedTransaction(repo)
		uc := NewUpdateTransactionUseCase(repo)

		badType := entity.TransactionType("transfer")
		_, err := uc.Execute(ctx, UpdateTransactionInput{TransactionID: seeded.ID, Type: &badType})
		if code := transactionCode(t, err); code != domainerror.ErrCodeInvalidTransactionType {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidTransactionType, code)
		}
	})

	t.Run("clearing the person falls back to the self sentinel", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		seeded := seedTransaction(repo)
		seeded.Person = "John"
		uc := NewUpdateTransactionUseCase(repo)

		empty := ""
		output, err := uc.Execute(ctx, UpdateTransactionInput{TransactionID: seeded.ID, Person: &empty})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Transaction.Person != entity.SelfPerson {
			t.Errorf("expected person %q, got %q", entity.SelfPerson, output.Transaction.Person)
		}
	})
}

func TestDeleteTransactionUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an existing transaction", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		seeded := seedTransaction(repo)
		uc := NewDeleteTransactionUseCase(repo)

		output, err := uc.Execute(ctx, DeleteTransactionInput{TransactionID: seeded.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Success {
			t.Error("expected success")
		}
		if _, ok := repo.transactions[seeded.ID]; ok {
			t.Error("expected transaction to be removed")
		}
	})

	t.Run("missing transaction yields a not found error", func(t *testing.T) {
		uc := NewDeleteTransactionUseCase(newFakeTransactionRepo())

		_, err := uc.Execute(ctx, DeleteTransactionInput{TransactionID: uuid.New()})
		if code := transactionCode(t, err); code != domainerror.ErrCodeTransactionNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeTransactionNotFound, code)
		}
	})
}

func TestBulkDeleteTransactionsUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects an empty id list", func(t *testing.T) {
		uc := NewBulkDeleteTransactionsUseCase(newFakeTransactionRepo())

		_, err := uc.Execute(ctx, BulkDeleteTransactionsInput{})
		if code := transactionCode(t, err); code != domainerror.ErrCodeEmptyTransactionIDs {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeEmptyTransactionIDs, code)
		}
	})

	t.Run("deletes the batch and reports the count", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		first := seedTransaction(repo)
		second := seedTransaction(repo)
		uc := NewBulkDeleteTransactionsUseCase(repo)

		output, err := uc.Execute(ctx, BulkDeleteTransactionsInput{
			TransactionIDs: []uuid.UUID{first.ID, second.ID},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.DeletedCount != 2 {
			t.Errorf("expected 2 deleted, got %d", output.DeletedCount)
		}
		if len(repo.transactions) != 0 {
			t.Errorf("expected empty store, got %d rows", len(repo.transactions))
		}
	})
}

func TestBulkRetagTransactionsUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects an empty id list", func(t *testing.T) {
		uc := NewBulkRetagTransactionsUseCase(newFakeTransactionRepo())

		_, err := uc.Execute(ctx, BulkRetagTransactionsInput{Tag: "Food"})
		if code := transactionCode(t, err); code != domainerror.ErrCodeEmptyTransactionIDs {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeEmptyTransactionIDs, code)
		}
	})

	t.Run("rejects an empty tag", func(t *testing.T) {
		uc := NewBulkRetagTransactionsUseCase(newFakeTransactionRepo())

		_, err := uc.Execute(ctx, BulkRetagTransactionsInput{TransactionIDs: []uuid.UUID{uuid.New()}})
		if code := transactionCode(t, err); code != domainerror.ErrCodeEmptyTransactionTag {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeEmptyTransactionTag, code)
		}
	})

	t.Run("retags every transaction in the batch", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		first := seedTransaction(repo)
		second := seedTransaction(repo)
		uc := NewBulkRetagTransactionsUseCase(repo)

		output, err := uc.Execute(ctx, BulkRetagTransactionsInput{
			TransactionIDs: []uuid.UUID{first.ID, second.ID},
			Tag:            "Transport",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.UpdatedCount != 2 {
			t.Errorf("expected 2 updated, got %d", output.UpdatedCount)
		}
		if repo.transactions[first.ID].Tag != "Transport" {
			t.Errorf("expected retagged transaction, got %q", repo.transactions[first.ID].Tag)
		}
	})
}
