// Package backup contains export and restore use cases.
package backup

import (
	"time"

	"github.com/google/uuid"

	"github.com/moneytrail/backend/internal/domain/entity"
)

// Version is the interchange format version this build reads and writes.
const Version = 1

// Document is the backup interchange format. Field names are part of the
// format and must not change.
type Document struct {
	Version         int                 `json:"version"`
	ExportedAt      time.Time           `json:"exportedAt"`
	Transactions    []TransactionRecord `json:"transactions"`
	Settings        SettingsRecord      `json:"settings"`
	Budgets         []BudgetRecord      `json:"budgets"`
	InvestmentGoals []GoalRecord        `json:"investmentGoals"`
}

// TransactionRecord is one transaction in the interchange format.
type TransactionRecord struct {
	ID         uuid.UUID `json:"id"`
	OccurredAt time.Time `json:"occurredAt"`
	Amount     int64     `json:"amount"`
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Tag        string    `json:"tag"`
	Person     string    `json:"person"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// SettingsRecord holds the exported vocabularies. The passphrase hash never
// leaves the database.
type SettingsRecord struct {
	Tags  []string `json:"tags"`
	Names []string `json:"names"`
}

// BudgetRecord is one budget in the interchange format.
type BudgetRecord struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Amount    int64      `json:"amount"`
	Type      string     `json:"type"`
	Category  string     `json:"category"`
	Tags      []string   `json:"tags"`
	Month     *string    `json:"month,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// GoalRecord is one investment goal in the interchange format.
type GoalRecord struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	TargetAmount int64      `json:"targetAmount"`
	TargetDate   *time.Time `json:"targetDate,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func newTransactionRecord(tx *entity.Transaction) TransactionRecord {
	return TransactionRecord{
		ID:         tx.ID,
		OccurredAt: tx.OccurredAt,
		Amount:     tx.Amount,
		Type:       string(tx.Type),
		Name:       tx.Name,
		Tag:        tx.Tag,
		Person:     tx.Person,
		CreatedAt:  tx.CreatedAt,
		UpdatedAt:  tx.UpdatedAt,
	}
}

func (r TransactionRecord) toEntity(now time.Time) *entity.Transaction {
	tx := &entity.Transaction{
		ID:         r.ID,
		OccurredAt: r.OccurredAt,
		Amount:     r.Amount,
		Type:       entity.TransactionType(r.Type),
		Name:       r.Name,
		Tag:        r.Tag,
		Person:     r.Person,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	if tx.Person == "" {
		tx.Person = entity.SelfPerson
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = now
	}
	if tx.UpdatedAt.IsZero() {
		tx.UpdatedAt = now
	}
	return tx
}

func newBudgetRecord(b *entity.Budget) BudgetRecord {
	return BudgetRecord{
		ID:        b.ID,
		Name:      b.Name,
		Amount:    b.Amount,
		Type:      string(b.Type),
		Category:  string(b.Category),
		Tags:      b.Tags,
		Month:     b.Month,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (r BudgetRecord) toEntity(now time.Time) *entity.Budget {
	b := &entity.Budget{
		ID:        r.ID,
		Name:      r.Name,
		Amount:    r.Amount,
		Type:      entity.BudgetType(r.Type),
		Category:  entity.BudgetCategory(r.Category),
		Tags:      r.Tags,
		Month:     r.Month,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	if b.UpdatedAt.IsZero() {
		b.UpdatedAt = now
	}
	return b
}

func newGoalRecord(g *entity.InvestmentGoal) GoalRecord {
	return GoalRecord{
		ID:           g.ID,
		Name:         g.Name,
		TargetAmount: g.TargetAmount,
		TargetDate:   g.TargetDate,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}

func (r GoalRecord) toEntity(now time.Time) *entity.InvestmentGoal {
	g := &entity.InvestmentGoal{
		ID:           r.ID,
		Name:         r.Name,
		TargetAmount: r.TargetAmount,
		TargetDate:   r.TargetDate,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now
	}
	if g.UpdatedAt.IsZero() {
		g.UpdatedAt = now
	}
	return g
}
