// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// InvestmentGoal represents a savings target tracked against the accumulated
// investments total. TargetAmount is in the smallest currency unit.
type InvestmentGoal struct {
	ID           uuid.UUID
	Name         string
	TargetAmount int64
	TargetDate   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewInvestmentGoal creates a new InvestmentGoal entity.
func NewInvestmentGoal(name string, targetAmount int64, targetDate *time.Time) *InvestmentGoal {
	now := time.Now().UTC()

	return &InvestmentGoal{
		ID:           uuid.New(),
		Name:         name,
		TargetAmount: targetAmount,
		TargetDate:   targetDate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// InvestmentGoalProgress pairs a goal with the invested total at evaluation
// time.
type InvestmentGoalProgress struct {
	Goal           *InvestmentGoal
	InvestedAmount int64
	Percentage     int
	Achieved       bool
}
