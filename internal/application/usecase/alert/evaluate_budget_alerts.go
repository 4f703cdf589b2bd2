// Package alert contains the overspend alert evaluation use case.
package alert

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/moneytrail/backend/internal/application/adapter"
	"github.com/moneytrail/backend/internal/application/usecase/budget"
	"github.com/moneytrail/backend/internal/domain/entity"
	domainerror "github.com/moneytrail/backend/internal/domain/error"
)

// DefaultProbabilityThreshold is the overspend probability at which an alert
// is queued when no threshold is configured.
const DefaultProbabilityThreshold = 80

// EvaluateBudgetAlertsInput represents the input for an alert evaluation run.
type EvaluateBudgetAlertsInput struct {
	// Reference is the evaluation date. Zero means now.
	Reference time.Time
}

// EvaluateBudgetAlertsOutput represents the output of an alert evaluation run.
type EvaluateBudgetAlertsOutput struct {
	Evaluated int
	Enqueued  int
}

// EvaluateBudgetAlertsUseCase inspects every budget's overspend probability
// and queues an alert email for the ones at risk. It runs after transaction
// and budget writes.
type EvaluateBudgetAlertsUseCase struct {
	budgetRepo      adapter.BudgetRepository
	transactionRepo adapter.TransactionRepository
	alertQueue      adapter.AlertQueueRepository
	recipientEmail  string
	threshold       int
}

// NewEvaluateBudgetAlertsUseCase creates a new EvaluateBudgetAlertsUseCase
// instance. A threshold of zero or less falls back to the default.
func NewEvaluateBudgetAlertsUseCase(
	budgetRepo adapter.BudgetRepository,
	transactionRepo adapter.TransactionRepository,
	alertQueue adapter.AlertQueueRepository,
	recipientEmail string,
	threshold int,
) *EvaluateBudgetAlertsUseCase {
	if threshold <= 0 {
		threshold = DefaultProbabilityThreshold
	}
	return &EvaluateBudgetAlertsUseCase{
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
		alertQueue:      alertQueue,
		recipientEmail:  recipientEmail,
		threshold:       threshold,
	}
}

// Execute evaluates all budgets and queues alerts for those whose overspend
// probability has reached the threshold. At most one alert exists per budget
// and evaluation window.
func (uc *EvaluateBudgetAlertsUseCase) Execute(ctx context.Context, input EvaluateBudgetAlertsInput) (*EvaluateBudgetAlertsOutput, error) {
	output := &EvaluateBudgetAlertsOutput{}

	// Alerting is off without a recipient
	if uc.recipientEmail == "" {
		return output, nil
	}

	budgets, err := uc.budgetRepo.FindAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	if len(budgets) == 0 {
		return output, nil
	}

	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	ref := input.Reference
	if ref.IsZero() {
		ref = time.Now().UTC()
	}

	for _, b := range budgets {
		progress := budget.ComputeProgress(b, transactions, ref)
		output.Evaluated++

		if progress.OverspendProbability < uc.threshold {
			continue
		}

		period := alertPeriod(b, ref)

		exists, err := uc.alertQueue.ExistsForBudgetPeriod(ctx, b.ID, period)
		if err != nil {
			return nil, fmt.Errorf("failed to check alert queue: %w", err)
		}
		if exists {
			continue
		}

		job := entity.NewAlertJob(
			b.ID,
			b.Name,
			period,
			progress.Spent,
			b.Amount,
			progress.OverspendProbability,
			uc.recipientEmail,
		)
		if err := uc.alertQueue.Create(ctx, job); err != nil {
			return nil, domainerror.NewAlertError(
				domainerror.ErrCodeAlertQueueFailed,
				"failed to queue overspend alert",
				err,
			)
		}
		output.Enqueued++

		slog.Info("Queued overspend alert",
			"budget", b.Name,
			"period", period,
			"probability", progress.OverspendProbability,
		)
	}

	return output, nil
}

// alertPeriod keys a budget's evaluation window by its start day. The key
// pins the one-alert-per-window guarantee.
func alertPeriod(b *entity.Budget, ref time.Time) string {
	start, _ := budget.ResolveWindow(b, ref)
	return start.Format("2006-01-02")
}
