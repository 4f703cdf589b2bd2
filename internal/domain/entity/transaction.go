// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType represents the direction of a money movement.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// SelfPerson is the sentinel counterparty name for transactions that have no
// counterparty. Transactions against SelfPerson never participate in ledger
// balance computation.
const SelfPerson = "Myself"

// Well-known tags with engine-level meaning. Every other tag is plain
// vocabulary managed through settings.
const (
	// TagSettlement marks transactions generated by a settlement action.
	TagSettlement = "Settlement"
	// TagInvestment marks transactions counted into the investments aggregate.
	TagInvestment = "Investment"
)

// Transaction represents a single money movement. Amounts are non-negative
// integers in the smallest currency unit; direction is carried by Type, never
// by a negative amount.
type Transaction struct {
	ID         uuid.UUID
	OccurredAt time.Time
	Amount     int64
	Type       TransactionType
	Name       string
	Tag        string
	Person     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewTransaction creates a new Transaction entity with a fresh id.
func NewTransaction(
	occurredAt time.Time,
	amount int64,
	transactionType TransactionType,
	name string,
	tag string,
	person string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:         uuid.New(),
		OccurredAt: occurredAt,
		Amount:     amount,
		Type:       transactionType,
		Name:       name,
		Tag:        tag,
		Person:     person,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// IsSelf reports whether the transaction has no counterparty.
func (t *Transaction) IsSelf() bool {
	return t.Person == SelfPerson
}

// IsShared reports whether the transaction involves a counterparty and so
// participates in ledger balance math.
func (t *Transaction) IsShared() bool {
	return t.Person != SelfPerson
}

// IsIncome reports whether the transaction adds to the balance.
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// IsExpense reports whether the transaction subtracts from the balance.
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// IsInvestment reports whether the transaction carries the Investment tag.
func (t *Transaction) IsInvestment() bool {
	return t.Tag == TagInvestment
}

// IsValidTransactionType validates a transaction type value.
func IsValidTransactionType(t TransactionType) bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}
