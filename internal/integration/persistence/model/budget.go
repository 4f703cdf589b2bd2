// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/moneytrail/backend/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database. Tags are stored
// as a Postgres array literal in a text column so the same model scans under
// both sqlite and postgres.
type BudgetModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name      string         `gorm:"type:varchar(255);not null"`
	Amount    int64          `gorm:"not null"`
	Type      string         `gorm:"type:varchar(10);not null;index"`
	Category  string         `gorm:"type:varchar(20);not null"`
	Tags      pq.StringArray `gorm:"type:text"`
	Month     *string        `gorm:"type:varchar(7);index"`
	StartDate *time.Time
	EndDate   *time.Time
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:        m.ID,
		Name:      m.Name,
		Amount:    m.Amount,
		Type:      entity.BudgetType(m.Type),
		Category:  entity.BudgetCategory(m.Category),
		Tags:      []string(m.Tags),
		Month:     m.Month,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	return &BudgetModel{
		ID:        budget.ID,
		Name:      budget.Name,
		Amount:    budget.Amount,
		Type:      string(budget.Type),
		Category:  string(budget.Category),
		Tags:      pq.StringArray(budget.Tags),
		Month:     budget.Month,
		StartDate: budget.StartDate,
		EndDate:   budget.EndDate,
		CreatedAt: budget.CreatedAt,
		UpdatedAt: budget.UpdatedAt,
	}
}
