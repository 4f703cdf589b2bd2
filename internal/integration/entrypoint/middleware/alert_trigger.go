// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moneytrail/backend/internal/application/usecase/alert"
)

// evaluationTimeout bounds a single alert evaluation run.
const evaluationTimeout = 30 * time.Second

// AlertTrigger kicks off budget alert evaluation after successful writes.
// Kicks are coalesced through a one-slot channel; a burst of writes produces
// a single evaluation run.
type AlertTrigger struct {
	evaluator *alert.EvaluateBudgetAlertsUseCase
	kick      chan struct{}
}

// NewAlertTrigger creates a new alert trigger instance.
func NewAlertTrigger(evaluator *alert.EvaluateBudgetAlertsUseCase) *AlertTrigger {
	return &AlertTrigger{
		evaluator: evaluator,
		kick:      make(chan struct{}, 1),
	}
}

// Start runs the evaluation loop. It blocks until the context is cancelled.
func (t *AlertTrigger) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.kick:
			t.evaluate(ctx)
		}
	}
}

// Kick requests an evaluation run. It never blocks; a pending kick absorbs
// further ones.
func (t *AlertTrigger) Kick() {
	select {
	case t.kick <- struct{}{}:
	default:
	}
}

// Middleware returns a Gin middleware handler that kicks the evaluator after
// a successful mutating request.
func (t *AlertTrigger) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		switch c.Request.Method {
		case http.MethodPost, http.MethodPatch, http.MethodPut, http.MethodDelete:
		default:
			return
		}
		if c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		t.Kick()
	}
}

func (t *AlertTrigger) evaluate(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, evaluationTimeout)
	defer cancel()

	output, err := t.evaluator.Execute(runCtx, alert.EvaluateBudgetAlertsInput{})
	if err != nil {
		slog.Warn("Budget alert evaluation failed", "error", err)
		return
	}

	if output.Enqueued > 0 {
		slog.Info("Budget alerts enqueued",
			"evaluated", output.Evaluated,
			"enqueued", output.Enqueued,
		)
	}
}
