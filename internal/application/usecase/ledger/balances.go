// Package ledger contains counterparty balance and settlement use cases.
package ledger

import (
	"sort"

	"github.com/moneytrail/backend/internal/domain/entity"
)

// ComputeBalances derives per-counterparty balances from a flat transaction
// list. Transactions against the self person are excluded. Balances are
// sorted by descending net (largest amount owed to the user first) and each
// balance carries its transactions sorted by descending occurrence time.
// Deterministic, no side effects; the input slice is never modified.
func ComputeBalances(transactions []*entity.Transaction) []*entity.PersonBalance {
	grouped := make(map[string]*entity.PersonBalance)

	for _, tx := range transactions {
		if tx.IsSelf() {
			continue
		}

		balance, ok := grouped[tx.Person]
		if !ok {
			balance = &entity.PersonBalance{Person: tx.Person}
			grouped[tx.Person] = balance
		}

		switch tx.Type {
		case entity.TransactionTypeExpense:
			balance.TotalOwed += tx.Amount
		case entity.TransactionTypeIncome:
			balance.TotalOwing += tx.Amount
		}

		balance.Transactions = append(balance.Transactions, tx)
	}

	balances := make([]*entity.PersonBalance, 0, len(grouped))
	for _, balance := range grouped {
		sort.SliceStable(balance.Transactions, func(i, j int) bool {
			return balance.Transactions[i].OccurredAt.After(balance.Transactions[j].OccurredAt)
		})
		balances = append(balances, balance)
	}

	// Person name breaks net ties so map iteration order never leaks out.
	sort.SliceStable(balances, func(i, j int) bool {
		if balances[i].Net() != balances[j].Net() {
			return balances[i].Net() > balances[j].Net()
		}
		return balances[i].Person < balances[j].Person
	})

	return balances
}

// OutstandingNet returns the net balance for one counterparty: positive means
// the person owes the user. A person with no transactions nets zero.
func OutstandingNet(transactions []*entity.Transaction, person string) int64 {
	var owed, owing int64
	for _, tx := range transactions {
		if tx.Person != person || tx.IsSelf() {
			continue
		}
		switch tx.Type {
		case entity.TransactionTypeExpense:
			owed += tx.Amount
		case entity.TransactionTypeIncome:
			owing += tx.Amount
		}
	}
	return owed - owing
}
