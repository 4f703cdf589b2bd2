// Package ledger contains counterparty balance and settlement use cases.
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/moneytrail/backend/internal/application/adapter"
	"github.com/moneytrail/backend/internal/domain/entity"
	domainerror "github.com/moneytrail/backend/internal/domain/error"
)

// SettleBalanceInput represents the input for settling a counterparty balance.
type SettleBalanceInput struct {
	Person           string
	CashAmount       int64
	SpentForMeAmount int64
	OtherAmount      int64
	Description      string
}

// SettleBalanceOutput represents the output of a settlement action.
type SettleBalanceOutput struct {
	Created []*entity.Transaction
}

// SettleBalanceUseCase handles the settlement of a counterparty balance.
type SettleBalanceUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewSettleBalanceUseCase creates a new SettleBalanceUseCase instance.
func NewSettleBalanceUseCase(transactionRepo adapter.TransactionRepository) *SettleBalanceUseCase {
	return &SettleBalanceUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute validates the settlement request, derives the outstanding balance
// from the stored transactions and persists the generated settlement batch
// atomically. All three amounts zero is a no-op.
func (uc *SettleBalanceUseCase) Execute(ctx context.Context, input SettleBalanceInput) (*SettleBalanceOutput, error) {
	if input.Person == "" {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeEmptySettlementPerson,
			"person is required",
			domainerror.ErrEmptySettlementPerson,
		)
	}

	if input.Person == entity.SelfPerson {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeSettleSelfPerson,
			"cannot settle a balance with yourself",
			domainerror.ErrSettleSelfPerson,
		)
	}

	if input.CashAmount < 0 || input.SpentForMeAmount < 0 || input.OtherAmount < 0 {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeNegativeSettlementAmount,
			"settlement amounts must be non-negative",
			domainerror.ErrNegativeSettlementAmount,
		)
	}

	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	created := BuildSettlement(SettlementInput{
		Person:             input.Person,
		OutstandingBalance: OutstandingNet(transactions, input.Person),
		CashAmount:         input.CashAmount,
		SpentForMeAmount:   input.SpentForMeAmount,
		OtherAmount:        input.OtherAmount,
		Description:        input.Description,
	}, time.Now().UTC())

	if len(created) == 0 {
		return &SettleBalanceOutput{Created: created}, nil
	}

	if err := uc.transactionRepo.CreateBatch(ctx, created); err != nil {
		return nil, fmt.Errorf("failed to persist settlement: %w", err)
	}

	slog.Info("Settled counterparty balance",
		"person", input.Person,
		"transactions", len(created),
	)

	return &SettleBalanceOutput{Created: created}, nil
}
