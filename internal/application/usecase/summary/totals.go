// Package summary contains financial aggregate use cases.
package summary

import (
	"github.com/moneytrail/backend/internal/domain/entity"
)

// Totals holds the running aggregates shared by the snapshot and the time
// series walk. All values are integer smallest currency units.
type Totals struct {
	Income             int64
	Expenses           int64
	Investments        int64
	SettlementIncome   int64
	SettlementExpenses int64
}

// Add folds one transaction into the running totals. Expenses include
// Investment-tagged transactions; the investments aggregate counts only
// Investment-tagged expenses; the settlement split counts only counterparty
// transactions.
func (t *Totals) Add(tx *entity.Transaction) {
	switch tx.Type {
	case entity.TransactionTypeIncome:
		t.Income += tx.Amount
		if tx.IsShared() {
			t.SettlementIncome += tx.Amount
		}
	case entity.TransactionTypeExpense:
		t.Expenses += tx.Amount
		if tx.IsShared() {
			t.SettlementExpenses += tx.Amount
		}
		if tx.IsInvestment() {
			t.Investments += tx.Amount
		}
	}
}

// Balance returns income minus expenses over all transactions.
func (t *Totals) Balance() int64 {
	return t.Income - t.Expenses
}

// Settlement returns the net amount counterparties owe the user. Positive
// means the user is owed.
func (t *Totals) Settlement() int64 {
	return t.SettlementExpenses - t.SettlementIncome
}

// NetWorth returns balance plus investments plus settlement.
func (t *Totals) NetWorth() int64 {
	return t.Balance() + t.Investments + t.Settlement()
}

// SnapshotValues is the point-in-time aggregate exposed to callers.
type SnapshotValues struct {
	Balance     int64
	Investments int64
	Settlement  int64
	NetWorth    int64
}

// Values derives the aggregate from the totals.
func (t *Totals) Values() SnapshotValues {
	return SnapshotValues{
		Balance:     t.Balance(),
		Investments: t.Investments,
		Settlement:  t.Settlement(),
		NetWorth:    t.NetWorth(),
	}
}

// ValuesWithSettlement derives the aggregate with an injected settlement
// figure, e.g. one pre-aggregated by the ledger engine. Net worth follows the
// injected figure.
func (t *Totals) ValuesWithSettlement(settlement int64) SnapshotValues {
	return SnapshotValues{
		Balance:     t.Balance(),
		Investments: t.Investments,
		Settlement:  settlement,
		NetWorth:    t.Balance() + t.Investments + settlement,
	}
}

// Snapshot computes the totals over the full transaction list. Deterministic,
// no side effects; the input slice is never modified.
func Snapshot(transactions []*entity.Transaction) Totals {
	var totals Totals
	for _, tx := range transactions {
		totals.Add(tx)
	}
	return totals
}
