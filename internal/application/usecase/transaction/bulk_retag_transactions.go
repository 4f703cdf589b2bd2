// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/moneytrail/backend/internal/application/adapter"
	domainerror "github.com/moneytrail/backend/internal/domain/error"
)

// BulkRetagTransactionsInput represents the input for bulk transaction retagging.
type BulkRetagTransactionsInput struct {
	TransactionIDs []uuid.UUID
	Tag            string
}

// BulkRetagTransactionsOutput represents the output of bulk transaction retagging.
type BulkRetagTransactionsOutput struct {
	UpdatedCount int64
}

// BulkRetagTransactionsUseCase moves a set of transactions onto another tag,
// typically after the user merges or renames tags in settings.
type BulkRetagTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewBulkRetagTransactionsUseCase creates a new BulkRetagTransactionsUseCase instance.
func NewBulkRetagTransactionsUseCase(transactionRepo adapter.TransactionRepository) *BulkRetagTransactionsUseCase {
	return &BulkRetagTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the bulk transaction retagging.
func (uc *BulkRetagTransactionsUseCase) Execute(ctx context.Context, input BulkRetagTransactionsInput) (*BulkRetagTransactionsOutput, error) {
	// Validate that IDs list is not empty
	if len(input.TransactionIDs) == 0 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyTransactionIDs,
			"transaction IDs list cannot be empty",
			domainerror.ErrEmptyTransactionIDs,
		)
	}

	// Validate tag
	if input.Tag == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyTransactionTag,
			"transaction tag cannot be empty",
			domainerror.ErrEmptyTransactionTag,
		)
	}

	// Retag the whole batch or nothing
	updatedCount, err := uc.transactionRepo.UpdateTagBatch(ctx, input.TransactionIDs, input.Tag)
	if err != nil {
		return nil, fmt.Errorf("failed to bulk retag transactions: %w", err)
	}

	return &BulkRetagTransactionsOutput{
		UpdatedCount: updatedCount,
	}, nil
}
