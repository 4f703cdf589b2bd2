// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/moneytrail/backend/internal/application/adapter"
	"github.com/moneytrail/backend/internal/domain/entity"
	domainerror "github.com/moneytrail/backend/internal/domain/error"
)

// UpdateTransactionInput represents the input for transaction update.
// Nil fields are left unchanged.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	OccurredAt    *time.Time
	Amount        *int64
	Type          *entity.TransactionType
	Name          *string
	Tag           *string
	Person        *string
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	// Find the existing transaction
	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	// Update fields if provided
	if input.OccurredAt != nil {
		if input.OccurredAt.IsZero() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionDate,
				"transaction date is required",
				domainerror.ErrInvalidTransactionDate,
			)
		}
		transaction.OccurredAt = *input.OccurredAt
	}

	if input.Amount != nil {
		if *input.Amount < 0 {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionAmount,
				"transaction amount must be non-negative",
				domainerror.ErrInvalidTransactionAmount,
			)
		}
		transaction.Amount = *input.Amount
	}

	if input.Type != nil {
		if !entity.IsValidTransactionType(*input.Type) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionType,
				"transaction type must be 'expense' or 'income'",
				domainerror.ErrInvalidTransactionType,
			)
		}
		transaction.Type = *input.Type
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeEmptyTransactionName,
				"transaction name cannot be empty",
				domainerror.ErrEmptyTransactionName,
			)
		}
		if len(*input.Name) > MaxNameLength {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNameTooLong,
				fmt.Sprintf("transaction name must not exceed %d characters", MaxNameLength),
				domainerror.ErrTransactionNameTooLong,
			)
		}
		transaction.Name = *input.Name
	}

	if input.Tag != nil {
		if *input.Tag == "" {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeEmptyTransactionTag,
				"transaction tag cannot be empty",
				domainerror.ErrEmptyTransactionTag,
			)
		}
		transaction.Tag = *input.Tag
	}

	if input.Person != nil {
		person := *input.Person
		if person == "" {
			person = entity.SelfPerson
		}
		transaction.Person = person
	}

	// Update timestamp
	transaction.UpdatedAt = time.Now().UTC()

	// Save changes
	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{
		Transaction: transaction,
	}, nil
}
