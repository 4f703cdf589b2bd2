// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/moneytrail/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions.
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Type      *entity.TransactionType
	Tag       string
	Person    string
	Search    string // Case-insensitive name match
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// CreateBatch creates multiple transactions atomically. Either every
	// transaction is persisted or none is.
	CreateBatch(ctx context.Context, transactions []*entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindAll retrieves every transaction ordered by occurred_at descending.
	FindAll(ctx context.Context) ([]*entity.Transaction, error)

	// FindByFilter retrieves transactions matching the filter, ordered by
	// occurred_at descending.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// UpdateTagBatch sets the tag on the given transactions atomically and
	// returns the number of rows updated.
	UpdateTagBatch(ctx context.Context, ids []uuid.UUID, tag string) (int64, error)

	// Delete removes a transaction from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteBatch removes the given transactions atomically and returns the
	// number of rows deleted.
	DeleteBatch(ctx context.Context, ids []uuid.UUID) (int64, error)

	// DeleteAll removes every transaction. Used by backup restore in replace mode.
	DeleteAll(ctx context.Context) error
}
