// Package entity defines the core business entities for the domain layer.
package entity

// PersonBalance aggregates the shared transactions of a single counterparty.
// TotalOwed is the sum of expense amounts paid on their behalf; TotalOwing is
// the sum of income amounts received from them.
type PersonBalance struct {
	Person       string
	TotalOwed    int64
	TotalOwing   int64
	Transactions []*Transaction
}

// Net returns the outstanding amount. Positive means the person owes the
// user; negative means the user owes the person.
func (p *PersonBalance) Net() int64 {
	return p.TotalOwed - p.TotalOwing
}

// IsSettled reports whether nothing is outstanding either way.
func (p *PersonBalance) IsSettled() bool {
	return p.Net() == 0
}
