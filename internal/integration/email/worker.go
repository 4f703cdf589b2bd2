// Package email delivers overspend alert emails via Resend.
package email

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneytrail/backend/internal/application/adapter"
	"github.com/moneytrail/backend/internal/domain/entity"
	domainerror "github.com/moneytrail/backend/internal/domain/error"
	"github.com/moneytrail/backend/internal/integration/email/templates"
)

// alertRetentionDays bounds how long delivered alert jobs stay queryable
// before the purge removes them.
const alertRetentionDays = 30

// purgeInterval is how often delivered alerts past retention are purged.
const purgeInterval = 24 * time.Hour

// Worker processes the alert queue and sends overspend emails.
type Worker struct {
	queue        adapter.AlertQueueRepository
	sender       adapter.EmailSender
	renderer     *templates.Renderer
	pollInterval time.Duration
	batchSize    int
}

// WorkerConfig holds configuration for the alert worker.
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 5 * time.Second,
		BatchSize:    10,
	}
}

// NewWorker creates a new alert worker.
func NewWorker(queue adapter.AlertQueueRepository, sender adapter.EmailSender, renderer *templates.Renderer, config WorkerConfig) *Worker {
	return &Worker{
		queue:        queue,
		sender:       sender,
		renderer:     renderer,
		pollInterval: config.PollInterval,
		batchSize:    config.BatchSize,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Alert worker started",
		"poll_interval", w.pollInterval,
		"batch_size", w.batchSize,
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	purgeTicker := time.NewTicker(purgeInterval)
	defer purgeTicker.Stop()

	// Process immediately on start, then on ticker
	w.processBatch(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Alert worker shutting down")
			return
		case <-ticker.C:
			w.processBatch(ctx)
		case <-purgeTicker.C:
			w.purgeOldJobs(ctx)
		}
	}
}

// processBatch fetches and processes a batch of pending alerts.
func (w *Worker) processBatch(ctx context.Context) {
	jobs, err := w.queue.GetPendingJobs(ctx, w.batchSize)
	if err != nil {
		slog.Error("Failed to get pending alert jobs", "error", err)
		return
	}

	if len(jobs) == 0 {
		return
	}

	slog.Debug("Processing alert batch", "count", len(jobs))

	for _, job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
			w.processJob(ctx, job)
		}
	}
}

// processJob processes a single alert job.
func (w *Worker) processJob(ctx context.Context, job *entity.AlertJob) {
	logger := slog.With(
		"job_id", job.ID,
		"budget", job.BudgetName,
		"recipient", job.RecipientEmail,
	)

	// Mark as processing
	job.MarkProcessing()
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as processing", "error", err)
		return
	}

	// Render template
	html, text, err := w.renderer.Render(templates.TemplateBudgetAlert, budgetAlertData(job))
	if err != nil {
		logger.Error("Failed to render alert template", "error", err)
		w.handleFailure(ctx, job, err, true) // Template errors are permanent
		return
	}

	// Send email
	result, err := w.sender.Send(ctx, adapter.SendEmailInput{
		To:      job.RecipientEmail,
		Subject: fmt.Sprintf("Budget alert: %s", job.BudgetName),
		HTML:    html,
		Text:    text,
	})

	if err != nil {
		logger.Error("Failed to send alert email", "error", err)

		// Check if it's a permanent error
		var alertErr *domainerror.AlertError
		isPermanent := errors.As(err, &alertErr) && alertErr.Code == domainerror.ErrCodePermanentAlertFailure

		w.handleFailure(ctx, job, err, isPermanent)
		return
	}

	// Mark as sent
	job.MarkSent(result.ResendID)
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as sent", "error", err)
		return
	}

	logger.Info("Alert email sent successfully", "resend_id", result.ResendID)
}

// budgetAlertData prepares the template data for an alert job. Amounts are
// stored in the smallest currency unit and rendered with two decimals.
func budgetAlertData(job *entity.AlertJob) templates.BudgetAlertData {
	percentage := 0
	if job.Limit > 0 {
		percentage = int(decimal.NewFromInt(job.Spent).
			Div(decimal.NewFromInt(job.Limit)).
			Mul(decimal.NewFromInt(100)).
			IntPart())
	}

	return templates.BudgetAlertData{
		BudgetName:  job.BudgetName,
		Period:      job.Period,
		Spent:       formatAmount(job.Spent),
		Limit:       formatAmount(job.Limit),
		Percentage:  percentage,
		Probability: job.Probability,
	}
}

// formatAmount renders a smallest-unit amount with two decimals.
func formatAmount(amount int64) string {
	return decimal.NewFromInt(amount).Div(decimal.NewFromInt(100)).StringFixed(2)
}

// handleFailure handles a failed alert job.
func (w *Worker) handleFailure(ctx context.Context, job *entity.AlertJob, err error, permanent bool) {
	job.MarkFailed(err, permanent)

	if updateErr := w.queue.Update(ctx, job); updateErr != nil {
		slog.Error("Failed to update job after failure",
			"job_id", job.ID,
			"error", updateErr,
		)
	}

	if job.Status == entity.AlertStatusFailed {
		slog.Warn("Alert job permanently failed",
			"job_id", job.ID,
			"attempts", job.Attempts,
			"last_error", job.LastError,
		)
	} else {
		slog.Info("Alert job scheduled for retry",
			"job_id", job.ID,
			"attempts", job.Attempts,
			"scheduled_at", job.ScheduledAt,
		)
	}
}

// purgeOldJobs removes delivered alerts past the retention window.
func (w *Worker) purgeOldJobs(ctx context.Context) {
	deleted, err := w.queue.DeleteOldSentJobs(ctx, alertRetentionDays)
	if err != nil {
		slog.Error("Failed to purge old alert jobs", "error", err)
		return
	}
	if deleted > 0 {
		slog.Info("Purged old alert jobs", "count", deleted)
	}
}

// ProcessNow processes all pending alerts immediately (useful for testing).
func (w *Worker) ProcessNow(ctx context.Context) {
	w.processBatch(ctx)
}
