// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/moneytrail/backend/config"
	"github.com/moneytrail/backend/internal/application/usecase/alert"
	"github.com/moneytrail/backend/internal/application/usecase/auth"
	"github.com/moneytrail/backend/internal/application/usecase/backup"
	"github.com/moneytrail/backend/internal/application/usecase/budget"
	"github.com/moneytrail/backend/internal/application/usecase/goal"
	"github.com/moneytrail/backend/internal/application/usecase/ledger"
	"github.com/moneytrail/backend/internal/application/usecase/settings"
	"github.com/moneytrail/backend/internal/application/usecase/suggestion"
	"github.com/moneytrail/backend/internal/application/usecase/summary"
	"github.com/moneytrail/backend/internal/application/usecase/transaction"
	"github.com/moneytrail/backend/internal/infra/server/router"
	"github.com/moneytrail/backend/internal/integration/adapters"
	"github.com/moneytrail/backend/internal/integration/email"
	"github.com/moneytrail/backend/internal/integration/email/templates"
	"github.com/moneytrail/backend/internal/integration/entrypoint/controller"
	"github.com/moneytrail/backend/internal/integration/entrypoint/middleware"
	"github.com/moneytrail/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Router *router.Router

	// AlertWorker drains the alert queue; AlertTrigger re-evaluates budgets
	// after writes. Both run as goroutines owned by the caller.
	AlertWorker  *email.Worker
	AlertTrigger *middleware.AlertTrigger

	// SetPassphraseUseCase is exposed for the startup passphrase bootstrap.
	SetPassphraseUseCase *auth.SetPassphraseUseCase
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	// Create repositories
	transactionRepo := persistence.NewTransactionRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	settingsRepo := persistence.NewSettingsRepository(db)
	tagCategoryRepo := persistence.NewTagCategoryRepository(db)
	goalRepo := persistence.NewInvestmentGoalRepository(db)
	alertQueueRepo := persistence.NewAlertQueueRepository(db)
	restoreRepo := persistence.NewRestoreRepository(db)

	// Create adapters/services
	passphraseService := adapters.NewPassphraseService()
	revocationStore := adapters.NewRedisRevocationStore(redisClient)
	tokenService := adapters.NewTokenService(
		cfg.Auth.JWTSecret,
		cfg.Auth.AccessTokenExpiry,
		cfg.Auth.RefreshTokenExpiry,
		revocationStore,
	)
	snapshotCache := adapters.NewRedisSnapshotCache(redisClient)
	suggestionService := adapters.NewGeminiService(cfg.AI.GeminiAPIKey)

	// Create auth use cases
	unlockUseCase := auth.NewUnlockSessionUseCase(settingsRepo, passphraseService, tokenService)
	refreshUseCase := auth.NewRefreshSessionUseCase(tokenService)
	lockUseCase := auth.NewLockSessionUseCase(tokenService)
	setPassphraseUseCase := auth.NewSetPassphraseUseCase(settingsRepo, passphraseService)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)
	bulkDeleteTransactionsUseCase := transaction.NewBulkDeleteTransactionsUseCase(transactionRepo)
	bulkRetagTransactionsUseCase := transaction.NewBulkRetagTransactionsUseCase(transactionRepo)

	// Create ledger use cases
	getBalancesUseCase := ledger.NewGetBalancesUseCase(transactionRepo)
	settleBalanceUseCase := ledger.NewSettleBalanceUseCase(transactionRepo)

	// Create summary use cases
	getSnapshotUseCase := summary.NewGetSnapshotUseCase(transactionRepo, snapshotCache, cfg.Redis.SnapshotTTL)
	getTimeSeriesUseCase := summary.NewGetTimeSeriesUseCase(transactionRepo)
	getMonthlyComparisonUseCase := summary.NewGetMonthlyComparisonUseCase(transactionRepo)
	getCategoryBreakdownUseCase := summary.NewGetCategoryBreakdownUseCase(transactionRepo)

	// Create budget use cases
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)
	getBudgetProgressUseCase := budget.NewGetBudgetProgressUseCase(budgetRepo, transactionRepo)
	getCategorySummaryUseCase := budget.NewGetCategorySummaryUseCase(budgetRepo, transactionRepo, tagCategoryRepo)

	// Create goal use cases
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo, transactionRepo)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo, transactionRepo)
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	updateGoalUseCase := goal.NewUpdateGoalUseCase(goalRepo)
	deleteGoalUseCase := goal.NewDeleteGoalUseCase(goalRepo)

	// Create settings use cases
	getSettingsUseCase := settings.NewGetSettingsUseCase(settingsRepo)
	updateSettingsUseCase := settings.NewUpdateSettingsUseCase(settingsRepo)
	getTagCategoriesUseCase := settings.NewGetTagCategoriesUseCase(tagCategoryRepo)
	updateTagCategoriesUseCase := settings.NewUpdateTagCategoriesUseCase(tagCategoryRepo)

	// Create backup use cases
	createBackupUseCase := backup.NewCreateBackupUseCase(transactionRepo, budgetRepo, goalRepo, settingsRepo)
	restoreBackupUseCase := backup.NewRestoreBackupUseCase(restoreRepo, settingsRepo, snapshotCache)

	// Create suggestion use case
	suggestTagsUseCase := suggestion.NewSuggestTagsUseCase(settingsRepo, suggestionService)

	// Create the alert pipeline. The evaluator stays idle without a
	// configured recipient; the worker delivers whatever the evaluator
	// queues.
	evaluateAlertsUseCase := alert.NewEvaluateBudgetAlertsUseCase(
		budgetRepo,
		transactionRepo,
		alertQueueRepo,
		cfg.Email.AlertRecipient,
		cfg.Email.AlertThreshold,
	)
	alertTrigger := middleware.NewAlertTrigger(evaluateAlertsUseCase)

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}
	emailSender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	alertWorker := email.NewWorker(alertQueueRepo, emailSender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(pingCtx).Err() == nil
		},
	)

	authController := controller.NewAuthController(
		unlockUseCase,
		refreshUseCase,
		lockUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		bulkDeleteTransactionsUseCase,
		bulkRetagTransactionsUseCase,
	)

	ledgerController := controller.NewLedgerController(
		getBalancesUseCase,
		settleBalanceUseCase,
	)

	summaryController := controller.NewSummaryController(
		getSnapshotUseCase,
		getTimeSeriesUseCase,
		getMonthlyComparisonUseCase,
		getCategoryBreakdownUseCase,
	)

	budgetController := controller.NewBudgetController(
		listBudgetsUseCase,
		createBudgetUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
		getBudgetProgressUseCase,
		getCategorySummaryUseCase,
	)

	goalController := controller.NewGoalController(
		listGoalsUseCase,
		getGoalUseCase,
		createGoalUseCase,
		updateGoalUseCase,
		deleteGoalUseCase,
	)

	settingsController := controller.NewSettingsController(
		getSettingsUseCase,
		updateSettingsUseCase,
		getTagCategoriesUseCase,
		updateTagCategoriesUseCase,
	)

	backupController := controller.NewBackupController(
		createBackupUseCase,
		restoreBackupUseCase,
	)

	suggestionController := controller.NewSuggestionController(suggestTagsUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var unlockRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		unlockRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		unlockRateLimiter = middleware.NewRateLimiterWithConfig(cfg.Auth.UnlockMaxAttempts, cfg.Auth.UnlockWindow)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		transactionController,
		ledgerController,
		summaryController,
		budgetController,
		goalController,
		settingsController,
		backupController,
		suggestionController,
		unlockRateLimiter,
		authMiddleware,
		alertTrigger,
	)

	return &Injector{
		Config:               cfg,
		DB:                   db,
		Redis:                redisClient,
		Router:               r,
		AlertWorker:          alertWorker,
		AlertTrigger:         alertTrigger,
		SetPassphraseUseCase: setPassphraseUseCase,
	}, nil
}
