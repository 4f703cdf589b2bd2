// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// BudgetType represents the windowing mode of a budget.
type BudgetType string

const (
	BudgetTypeMonthly BudgetType = "monthly"
	BudgetTypeCustom  BudgetType = "custom"
)

// BudgetCategory classifies a budget for the needs/wants/investment summary.
type BudgetCategory string

const (
	BudgetCategoryNeeds      BudgetCategory = "needs"
	BudgetCategoryWants      BudgetCategory = "wants"
	BudgetCategoryInvestment BudgetCategory = "investment"
)

// Budget represents a spending limit over a set of tags. Monthly budgets may
// pin a specific month ("YYYY-MM"); custom budgets carry explicit start and
// end dates. Amount is in the smallest currency unit.
type Budget struct {
	ID        uuid.UUID
	Name      string
	Amount    int64
	Type      BudgetType
	Category  BudgetCategory
	Tags      []string
	Month     *string
	StartDate *time.Time
	EndDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewMonthlyBudget creates a monthly Budget entity. A nil month means the
// budget tracks whichever month is being evaluated.
func NewMonthlyBudget(name string, amount int64, category BudgetCategory, tags []string, month *string) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:        uuid.New(),
		Name:      name,
		Amount:    amount,
		Type:      BudgetTypeMonthly,
		Category:  category,
		Tags:      tags,
		Month:     month,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewCustomBudget creates a custom-window Budget entity.
func NewCustomBudget(name string, amount int64, category BudgetCategory, tags []string, start, end *time.Time) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:        uuid.New(),
		Name:      name,
		Amount:    amount,
		Type:      BudgetTypeCustom,
		Category:  category,
		Tags:      tags,
		StartDate: start,
		EndDate:   end,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// MatchesTag reports whether the budget tracks the given tag.
func (b *Budget) MatchesTag(tag string) bool {
	for _, t := range b.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// IsValidBudgetType validates a budget type value.
func IsValidBudgetType(t BudgetType) bool {
	return t == BudgetTypeMonthly || t == BudgetTypeCustom
}

// IsValidBudgetCategory validates a budget category value.
func IsValidBudgetCategory(c BudgetCategory) bool {
	return c == BudgetCategoryNeeds || c == BudgetCategoryWants || c == BudgetCategoryInvestment
}
