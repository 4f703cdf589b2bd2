// Package backup contains export and restore use cases.
package backup

import (
	"context"
	"fmt"
	"time"

	"github.com/moneytrail/backend/internal/application/adapter"
)

// CreateBackupOutput carries the assembled interchange document.
type CreateBackupOutput struct {
	Document *Document
}

// CreateBackupUseCase exports the full dataset as one document.
type CreateBackupUseCase struct {
	transactionRepo adapter.TransactionRepository
	budgetRepo      adapter.BudgetRepository
	goalRepo        adapter.InvestmentGoalRepository
	settingsRepo    adapter.SettingsRepository
}

// NewCreateBackupUseCase creates a new CreateBackupUseCase instance.
func NewCreateBackupUseCase(
	transactionRepo adapter.TransactionRepository,
	budgetRepo adapter.BudgetRepository,
	goalRepo adapter.InvestmentGoalRepository,
	settingsRepo adapter.SettingsRepository,
) *CreateBackupUseCase {
	return &CreateBackupUseCase{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		goalRepo:        goalRepo,
		settingsRepo:    settingsRepo,
	}
}

// Execute assembles the backup document from storage.
func (uc *CreateBackupUseCase) Execute(ctx context.Context) (*CreateBackupOutput, error) {
	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	budgets, err := uc.budgetRepo.FindAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	goals, err := uc.goalRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	doc := &Document{
		Version:    Version,
		ExportedAt: time.Now().UTC(),
		Settings: SettingsRecord{
			Tags:  settings.Tags,
			Names: settings.People,
		},
		Transactions:    make([]TransactionRecord, 0, len(transactions)),
		Budgets:         make([]BudgetRecord, 0, len(budgets)),
		InvestmentGoals: make([]GoalRecord, 0, len(goals)),
	}
	for _, tx := range transactions {
		doc.Transactions = append(doc.Transactions, newTransactionRecord(tx))
	}
	for _, b := range budgets {
		doc.Budgets = append(doc.Budgets, newBudgetRecord(b))
	}
	for _, g := range goals {
		doc.InvestmentGoals = append(doc.InvestmentGoals, newGoalRecord(g))
	}

	return &CreateBackupOutput{
		Document: doc,
	}, nil
}
