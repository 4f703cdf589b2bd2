// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/moneytrail/backend/internal/integration/entrypoint/controller"
	"github.com/moneytrail/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	transactionController *controller.TransactionController
	ledgerController      *controller.LedgerController
	summaryController     *controller.SummaryController
	budgetController      *controller.BudgetController
	goalController        *controller.GoalController
	settingsController    *controller.SettingsController
	backupController      *controller.BackupController
	suggestionController  *controller.SuggestionController
	unlockRateLimiter     *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
	alertTrigger          *middleware.AlertTrigger
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	transactionController *controller.TransactionController,
	ledgerController *controller.LedgerController,
	summaryController *controller.SummaryController,
	budgetController *controller.BudgetController,
	goalController *controller.GoalController,
	settingsController *controller.SettingsController,
	backupController *controller.BackupController,
	suggestionController *controller.SuggestionController,
	unlockRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	alertTrigger *middleware.AlertTrigger,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		transactionController: transactionController,
		ledgerController:      ledgerController,
		summaryController:     summaryController,
		budgetController:      budgetController,
		goalController:        goalController,
		settingsController:    settingsController,
		backupController:      backupController,
		suggestionController:  suggestionController,
		unlockRateLimiter:     unlockRateLimiter,
		authMiddleware:        authMiddleware,
		alertTrigger:          alertTrigger,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Everything except /health
// and /auth/unlock sits behind the auth middleware.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/unlock", r.unlockRateLimiter.Middleware(), r.authController.Unlock)
		auth.POST("/refresh", r.authController.Refresh)
		auth.POST("/lock", r.authController.Lock)
	}

	protected := v1.Group("")
	protected.Use(r.authMiddleware.Authenticate())
	{
		// Writes under these groups change budget spend, so they re-run
		// the overspend alert evaluation.
		transactions := protected.Group("/transactions")
		transactions.Use(r.alertTrigger.Middleware())
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.transactionController.Create)
			transactions.PATCH("/:id", r.transactionController.Update)
			transactions.DELETE("/:id", r.transactionController.Delete)
			transactions.POST("/bulk-delete", r.transactionController.BulkDelete)
			transactions.POST("/bulk-retag", r.transactionController.BulkRetag)
		}

		ledger := protected.Group("/ledger")
		ledger.Use(r.alertTrigger.Middleware())
		{
			ledger.GET("/balances", r.ledgerController.Balances)
			ledger.POST("/settle", r.ledgerController.Settle)
		}

		summary := protected.Group("/summary")
		{
			summary.GET("/snapshot", r.summaryController.Snapshot)
			summary.GET("/series", r.summaryController.Series)
			summary.GET("/monthly", r.summaryController.Monthly)
			summary.GET("/categories", r.summaryController.Categories)
		}

		budgets := protected.Group("/budgets")
		budgets.Use(r.alertTrigger.Middleware())
		{
			budgets.GET("", r.budgetController.List)
			budgets.POST("", r.budgetController.Create)
			budgets.GET("/progress", r.budgetController.Progress)
			budgets.GET("/category-summary", r.budgetController.CategorySummary)
			budgets.PATCH("/:id", r.budgetController.Update)
			budgets.DELETE("/:id", r.budgetController.Delete)
		}

		goals := protected.Group("/goals")
		{
			goals.GET("", r.goalController.List)
			goals.POST("", r.goalController.Create)
			goals.GET("/:id", r.goalController.Get)
			goals.PATCH("/:id", r.goalController.Update)
			goals.DELETE("/:id", r.goalController.Delete)
		}

		settings := protected.Group("/settings")
		{
			settings.GET("", r.settingsController.Get)
			settings.PUT("", r.settingsController.Update)
			settings.GET("/tag-categories", r.settingsController.GetTagCategories)
			settings.PUT("/tag-categories", r.settingsController.UpdateTagCategories)
		}

		backup := protected.Group("/backup")
		backup.Use(r.alertTrigger.Middleware())
		{
			backup.GET("", r.backupController.Export)
			backup.POST("/restore", r.backupController.Restore)
		}

		suggestions := protected.Group("/suggestions")
		{
			suggestions.POST("/tags", r.suggestionController.SuggestTags)
		}
	}
}
