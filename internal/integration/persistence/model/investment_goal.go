// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/moneytrail/backend/internal/domain/entity"
)

// InvestmentGoalModel represents the investment_goals table in the database.
type InvestmentGoalModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	TargetAmount int64     `gorm:"not null"`
	TargetDate   *time.Time
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the InvestmentGoalModel.
func (InvestmentGoalModel) TableName() string {
	return "investment_goals"
}

// ToEntity converts an InvestmentGoalModel to a domain InvestmentGoal entity.
func (m *InvestmentGoalModel) ToEntity() *entity.InvestmentGoal {
	return &entity.InvestmentGoal{
		ID:           m.ID,
		Name:         m.Name,
		TargetAmount: m.TargetAmount,
		TargetDate:   m.TargetDate,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// InvestmentGoalFromEntity creates an InvestmentGoalModel from a domain InvestmentGoal entity.
func InvestmentGoalFromEntity(goal *entity.InvestmentGoal) *InvestmentGoalModel {
	return &InvestmentGoalModel{
		ID:           goal.ID,
		Name:         goal.Name,
		TargetAmount: goal.TargetAmount,
		TargetDate:   goal.TargetDate,
		CreatedAt:    goal.CreatedAt,
		UpdatedAt:    goal.UpdatedAt,
	}
}
