// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/moneytrail/backend/internal/domain/entity"
)

// AlertJobModel represents the alert_queue table in the database.
type AlertJobModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	BudgetID       uuid.UUID `gorm:"type:uuid;not null;index:idx_alert_budget_period"`
	BudgetName     string    `gorm:"type:varchar(255);not null"`
	Period         string    `gorm:"type:varchar(10);not null;index:idx_alert_budget_period"`
	Spent          int64     `gorm:"not null"`
	BudgetLimit    int64     `gorm:"column:budget_limit;not null"`
	Probability    int       `gorm:"not null"`
	RecipientEmail string    `gorm:"type:varchar(255);not null"`
	Status         string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	Attempts       int       `gorm:"not null;default:0"`
	MaxAttempts    int       `gorm:"not null;default:3"`
	LastError      string    `gorm:"type:text"`
	ResendID       string    `gorm:"type:varchar(255)"`
	CreatedAt      time.Time `gorm:"not null"`
	ScheduledAt    time.Time `gorm:"not null;index"`
	ProcessedAt    *time.Time
}

// TableName returns the table name for the AlertJobModel.
func (AlertJobModel) TableName() string {
	return "alert_queue"
}

// ToEntity converts an AlertJobModel to a domain AlertJob entity.
func (m *AlertJobModel) ToEntity() *entity.AlertJob {
	return &entity.AlertJob{
		ID:             m.ID,
		BudgetID:       m.BudgetID,
		BudgetName:     m.BudgetName,
		Period:         m.Period,
		Spent:          m.Spent,
		Limit:          m.BudgetLimit,
		Probability:    m.Probability,
		RecipientEmail: m.RecipientEmail,
		Status:         entity.AlertStatus(m.Status),
		Attempts:       m.Attempts,
		MaxAttempts:    m.MaxAttempts,
		LastError:      m.LastError,
		ResendID:       m.ResendID,
		CreatedAt:      m.CreatedAt,
		ScheduledAt:    m.ScheduledAt,
		ProcessedAt:    m.ProcessedAt,
	}
}

// AlertJobFromEntity creates an AlertJobModel from a domain AlertJob entity.
func AlertJobFromEntity(job *entity.AlertJob) *AlertJobModel {
	return &AlertJobModel{
		ID:             job.ID,
		BudgetID:       job.BudgetID,
		BudgetName:     job.BudgetName,
		Period:         job.Period,
		Spent:          job.Spent,
		BudgetLimit:    job.Limit,
		Probability:    job.Probability,
		RecipientEmail: job.RecipientEmail,
		Status:         string(job.Status),
		Attempts:       job.Attempts,
		MaxAttempts:    job.MaxAttempts,
		LastError:      job.LastError,
		ResendID:       job.ResendID,
		CreatedAt:      job.CreatedAt,
		ScheduledAt:    job.ScheduledAt,
		ProcessedAt:    job.ProcessedAt,
	}
}
