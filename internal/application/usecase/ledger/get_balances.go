// Package ledger contains counterparty balance and settlement use cases.
package ledger

import (
	"context"
	"fmt"

	"github.com/moneytrail/backend/internal/application/adapter"
	"github.com/moneytrail/backend/internal/domain/entity"
)

// GetBalancesOutput represents the output of the balance computation.
type GetBalancesOutput struct {
	Balances []*entity.PersonBalance
}

// GetBalancesUseCase derives per-counterparty balances from the stored
// transaction list.
type GetBalancesUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetBalancesUseCase creates a new GetBalancesUseCase instance.
func NewGetBalancesUseCase(transactionRepo adapter.TransactionRepository) *GetBalancesUseCase {
	return &GetBalancesUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes the balances from the full transaction list.
func (uc *GetBalancesUseCase) Execute(ctx context.Context) (*GetBalancesOutput, error) {
	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &GetBalancesOutput{
		Balances: ComputeBalances(transactions),
	}, nil
}
