// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/moneytrail/backend/internal/application/adapter"
	"github.com/moneytrail/backend/internal/domain/entity"
	domainerror "github.com/moneytrail/backend/internal/domain/error"
)

// MaxNameLength is the maximum allowed length for transaction names.
const MaxNameLength = 255

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	OccurredAt time.Time
	Amount     int64
	Type       entity.TransactionType
	Name       string
	Tag        string
	Person     string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	// Validate transaction type
	if !entity.IsValidTransactionType(input.Type) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	// Direction lives on the type; a negative amount is always malformed
	if input.Amount < 0 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"transaction amount must be non-negative",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	// Validate date
	if input.OccurredAt.IsZero() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"transaction date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	// Validate name
	if input.Name == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyTransactionName,
			"transaction name cannot be empty",
			domainerror.ErrEmptyTransactionName,
		)
	}
	if len(input.Name) > MaxNameLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNameTooLong,
			fmt.Sprintf("transaction name must not exceed %d characters", MaxNameLength),
			domainerror.ErrTransactionNameTooLong,
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

	// An absent counterparty means the transaction is the user's own
	person := input.Person
	if person == "" {
		person = entity.SelfPerson
	}

	// Create transaction entity
	transaction := entity.NewTransaction(
		input.OccurredAt,
		input.Amount,
		input.Type,
		input.Name,
		input.Tag,
		person,
	)

	// Save transaction to database
	if err := uc.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{
		Transaction: transaction,
	}, nil
}
