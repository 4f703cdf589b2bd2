// Package backup contains export and restore use cases.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/moneytrail/backend/internal/application/adapter"
	"github.com/moneytrail/backend/internal/domain/entity"
	domainerror "github.com/moneytrail/backend/internal/domain/error"
)

// RestoreBackupInput represents a restore request. Mode defaults to replace.
type RestoreBackupInput struct {
	Payload []byte
	Mode    string
}

// RestoreBackupOutput summarizes what the restore loaded.
type RestoreBackupOutput struct {
	Transactions    int
	Budgets         int
	InvestmentGoals int
	Mode            adapter.RestoreMode
}

// RestoreBackupUseCase parses, validates and applies a backup document.
type RestoreBackupUseCase struct {
	restoreRepo  adapter.RestoreRepository
	settingsRepo adapter.SettingsRepository
	cache        adapter.SnapshotCache
}

// NewRestoreBackupUseCase creates a new RestoreBackupUseCase instance. The
// cache may be nil.
func NewRestoreBackupUseCase(
	restoreRepo adapter.RestoreRepository,
	settingsRepo adapter.SettingsRepository,
	cache adapter.SnapshotCache,
) *RestoreBackupUseCase {
	return &RestoreBackupUseCase{
		restoreRepo:  restoreRepo,
		settingsRepo: settingsRepo,
		cache:        cache,
	}
}

// Execute performs the restore. The whole document is validated before any
// write; the write itself is atomic.
func (uc *RestoreBackupUseCase) Execute(ctx context.Context, input RestoreBackupInput) (*RestoreBackupOutput, error) {
	mode, err := parseMode(input.Mode)
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(input.Payload, &doc); err != nil {
		return nil, domainerror.NewBackupError(
			domainerror.ErrCodeInvalidBackupPayload,
			"backup document is not valid JSON",
			domainerror.ErrInvalidBackupPayload,
		)
	}

	if doc.Version != Version {
		return nil, domainerror.NewBackupError(
			domainerror.ErrCodeUnsupportedBackupVersion,
			fmt.Sprintf("backup version %d is not supported", doc.Version),
			domainerror.ErrUnsupportedBackupVersion,
		)
	}

	if err := validateDocument(&doc); err != nil {
		return nil, err
	}

	// The passphrase hash is not part of the document and must survive
	current, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	now := time.Now().UTC()
	data := adapter.RestoreData{
		Transactions:    make([]*entity.Transaction, 0, len(doc.Transactions)),
		Budgets:         make([]*entity.Budget, 0, len(doc.Budgets)),
		InvestmentGoals: make([]*entity.InvestmentGoal, 0, len(doc.InvestmentGoals)),
		Settings: &entity.Settings{
			Tags:           doc.Settings.Tags,
			People:         doc.Settings.Names,
			PassphraseHash: current.PassphraseHash,
			UpdatedAt:      now,
		},
	}
	for _, r := range doc.Transactions {
		data.Transactions = append(data.Transactions, r.toEntity(now))
	}
	for _, r := range doc.Budgets {
		data.Budgets = append(data.Budgets, r.toEntity(now))
	}
	for _, r := range doc.InvestmentGoals {
		data.InvestmentGoals = append(data.InvestmentGoals, r.toEntity(now))
	}

	if err := uc.restoreRepo.ApplyBackup(ctx, data, mode); err != nil {
		return nil, domainerror.NewBackupError(
			domainerror.ErrCodeRestoreFailed,
			"failed to apply backup",
			err,
		)
	}

	// Snapshots cached before the restore describe the replaced dataset
	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx); err != nil {
			slog.Debug("Snapshot cache invalidation failed", "error", err)
		}
	}

	slog.Info("Restored backup",
		"mode", mode,
		"transactions", len(data.Transactions),
		"budgets", len(data.Budgets),
		"goals", len(data.InvestmentGoals),
	)

	return &RestoreBackupOutput{
		Transactions:    len(data.Transactions),
		Budgets:         len(data.Budgets),
		InvestmentGoals: len(data.InvestmentGoals),
		Mode:            mode,
	}, nil
}

func parseMode(mode string) (adapter.RestoreMode, error) {
	switch mode {
	case "", string(adapter.RestoreModeReplace):
		return adapter.RestoreModeReplace, nil
	case string(adapter.RestoreModeMerge):
		return adapter.RestoreModeMerge, nil
	default:
		return "", domainerror.NewBackupError(
			domainerror.ErrCodeInvalidRestoreMode,
			fmt.Sprintf("unknown restore mode %q", mode),
			domainerror.ErrInvalidRestoreMode,
		)
	}
}

// validateDocument checks every record before anything is written. Malformed
// rows in a backup must never reach storage.
func validateDocument(doc *Document) error {
	for i, r := range doc.Transactions {
		if r.Amount < 0 {
			return invalidPayload(fmt.Sprintf("transaction %d has a negative amount", i))
		}
		if !entity.IsValidTransactionType(entity.TransactionType(r.Type)) {
			return invalidPayload(fmt.Sprintf("transaction %d has unknown type %q", i, r.Type))
		}
	}
	for i, r := range doc.Budgets {
		if r.Amount <= 0 {
			return invalidPayload(fmt.Sprintf("budget %d has a non-positive amount", i))
		}
		if !entity.IsValidBudgetType(entity.BudgetType(r.Type)) {
			return invalidPayload(fmt.Sprintf("budget %d has unknown type %q", i, r.Type))
		}
	}
	for i, r := range doc.InvestmentGoals {
		if r.TargetAmount <= 0 {
			return invalidPayload(fmt.Sprintf("investment goal %d has a non-positive target", i))
		}
	}
	return nil
}

func invalidPayload(message string) error {
	return domainerror.NewBackupError(
		domainerror.ErrCodeInvalidBackupPayload,
		message,
		domainerror.ErrInvalidBackupPayload,
	)
}
