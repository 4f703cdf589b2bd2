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

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	StartDate *time.Time
	EndDate   *time.Time
	Type      *entity.TransactionType
	Tag       string
	Person    string
	Search    string
}

// TotalsOutput represents aggregated totals over the filtered transactions.
type TotalsOutput struct {
	IncomeTotal  int64
	ExpenseTotal int64
	NetTotal     int64
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
	Totals       TotalsOutput
}

// ListTransactionsUseCase handles listing transactions logic.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	// Validate date range
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"end date must not precede start date",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	if input.Type != nil && !entity.IsValidTransactionType(*input.Type) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	// Build filter
	filter := adapter.TransactionFilter{
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Type:      input.Type,
		Tag:       input.Tag,
		Person:    input.Person,
		Search:    input.Search,
	}

	// Fetch transactions
	transactions, err := uc.transactionRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	// Aggregate totals over the filtered set
	output := &ListTransactionsOutput{
		Transactions: transactions,
	}
	for _, tx := range transactions {
		switch tx.Type {
		case entity.TransactionTypeIncome:
			output.Totals.IncomeTotal += tx.Amount
		case entity.TransactionTypeExpense:
			output.Totals.ExpenseTotal += tx.Amount
		}
	}
	output.Totals.NetTotal = output.Totals.IncomeTotal - output.Totals.ExpenseTotal

	return output, nil
}
