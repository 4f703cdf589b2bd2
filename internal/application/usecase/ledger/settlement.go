// Package ledger contains counterparty balance and settlement use cases.
package ledger

import (
	"time"

	"github.com/google/uuid"

	"github.com/moneytrail/backend/internal/domain/entity"
)

// SettlementInput describes one settlement action against a counterparty.
// The three amounts are independently triggerable components; zero amounts
// produce nothing.
type SettlementInput struct {
	Person             string
	OutstandingBalance int64
	CashAmount         int64
	SpentForMeAmount   int64
	OtherAmount        int64
	Description        string
}

// Default names used when the settlement carries no description.
const (
	defaultCashName       = "Cash settlement"
	defaultSpentForMeName = "Spent on my behalf"
	defaultAdjustmentName = "Balance adjustment"
)

// BuildSettlement generates the transaction set representing a settlement
// action. Every produced transaction is tagged Settlement, stamped with now
// and given a fresh id. The function knows nothing about persistence; the
// caller appends the returned batch atomically.
//
// Components:
//   - CashAmount > 0: one income transaction against the counterparty.
//   - SpentForMeAmount > 0: an income transaction against the counterparty
//     plus an expense against the self person for the same amount, so the
//     ledger clears while the real personal expense is still recorded.
//   - OtherAmount > 0: one transaction against the counterparty, income when
//     the outstanding balance is positive (they owed the user), expense
//     otherwise.
func BuildSettlement(input SettlementInput, now time.Time) []*entity.Transaction {
	transactions := []*entity.Transaction{}

	if input.CashAmount > 0 {
		transactions = append(transactions, newSettlementTransaction(
			now,
			input.CashAmount,
			entity.TransactionTypeIncome,
			settlementName(input.Description, defaultCashName),
			input.Person,
		))
	}

	if input.SpentForMeAmount > 0 {
		transactions = append(transactions,
			newSettlementTransaction(
				now,
				input.SpentForMeAmount,
				entity.TransactionTypeIncome,
				settlementName(input.Description, defaultSpentForMeName),
				input.Person,
			),
			newSettlementTransaction(
				now,
				input.SpentForMeAmount,
				entity.TransactionTypeExpense,
				settlementName(input.Description, defaultSpentForMeName),
				entity.SelfPerson,
			),
		)
	}

	if input.OtherAmount > 0 {
		transactionType := entity.TransactionTypeIncome
		if input.OutstandingBalance <= 0 {
			transactionType = entity.TransactionTypeExpense
		}
		transactions = append(transactions, newSettlementTransaction(
			now,
			input.OtherAmount,
			transactionType,
			settlementName(input.Description, defaultAdjustmentName),
			input.Person,
		))
	}

	return transactions
}

// newSettlementTransaction builds a settlement transaction. Everything except
// the id is deterministic given the inputs.
func newSettlementTransaction(now time.Time, amount int64, transactionType entity.TransactionType, name, person string) *entity.Transaction {
	return &entity.Transaction{
		ID:         uuid.New(),
		OccurredAt: now,
		Amount:     amount,
		Type:       transactionType,
		Name:       name,
		Tag:        entity.TagSettlement,
		Person:     person,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func settlementName(description, fallback string) string {
	if description != "" {
		return description
	}
	return fallback
}
