// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AlertStatus represents the status of an alert job in the queue.
type AlertStatus string

const (
	AlertStatusPending    AlertStatus = "pending"
	AlertStatusProcessing AlertStatus = "processing"
	AlertStatusSent       AlertStatus = "sent"
	AlertStatusFailed     AlertStatus = "failed"
)

// AlertJob represents an overspend notification waiting to be delivered. At
// most one job exists per budget and period.
type AlertJob struct {
	ID             uuid.UUID
	BudgetID       uuid.UUID
	BudgetName     string
	Period         string
	Spent          int64
	Limit          int64
	Probability    int
	RecipientEmail string
	Status         AlertStatus
	Attempts       int
	MaxAttempts    int
	LastError      string
	ResendID       string
	CreatedAt      time.Time
	ScheduledAt    time.Time
	ProcessedAt    *time.Time
}

// NewAlertJob creates a new AlertJob with default values.
func NewAlertJob(budgetID uuid.UUID, budgetName, period string, spent, limit int64, probability int, recipientEmail string) *AlertJob {
	now := time.Now().UTC()
	return &AlertJob{
		ID:             uuid.New(),
		BudgetID:       budgetID,
		BudgetName:     budgetName,
		Period:         period,
		Spent:          spent,
		Limit:          limit,
		Probability:    probability,
		RecipientEmail: recipientEmail,
		Status:         AlertStatusPending,
		Attempts:       0,
		MaxAttempts:    3,
		CreatedAt:      now,
		ScheduledAt:    now,
	}
}

// MarkProcessing marks the alert job as currently being processed.
func (a *AlertJob) MarkProcessing() {
	a.Status = AlertStatusProcessing
}

// MarkSent marks the alert job as successfully delivered.
func (a *AlertJob) MarkSent(resendID string) {
	a.Status = AlertStatusSent
	a.ResendID = resendID
	now := time.Now().UTC()
	a.ProcessedAt = &now
}

// MarkFailed marks the alert job as failed and schedules a retry if attempts remain.
func (a *AlertJob) MarkFailed(err error, permanent bool) {
	a.Attempts++
	a.LastError = err.Error()

	if permanent || a.Attempts >= a.MaxAttempts {
		a.Status = AlertStatusFailed
		now := time.Now().UTC()
		a.ProcessedAt = &now
	} else {
		a.Status = AlertStatusPending
		a.ScheduledAt = a.calculateNextRetry()
	}
}

// calculateNextRetry calculates the next retry time using exponential backoff.
// Retry delays: 0s (immediate), 1min, 5min
func (a *AlertJob) calculateNextRetry() time.Time {
	delays := []time.Duration{0, 1 * time.Minute, 5 * time.Minute}
	if a.Attempts < len(delays) {
		return time.Now().UTC().Add(delays[a.Attempts])
	}
	return time.Now().UTC().Add(5 * time.Minute)
}

// CanRetry returns true if the alert job can be retried.
func (a *AlertJob) CanRetry() bool {
	return a.Attempts < a.MaxAttempts
}

// IsReadyToProcess returns true if the alert job is ready to be processed.
func (a *AlertJob) IsReadyToProcess() bool {
	return a.Status == AlertStatusPending && time.Now().UTC().After(a.ScheduledAt)
}
