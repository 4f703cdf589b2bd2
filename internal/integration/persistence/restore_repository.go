// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/moneytrail/backend/internal/application/adapter"
	"github.com/moneytrail/backend/internal/integration/persistence/model"
)

// restoreRepository implements the adapter.RestoreRepository interface.
type restoreRepository struct {
	db *gorm.DB
}

// NewRestoreRepository creates a new restore repository instance.
func NewRestoreRepository(db *gorm.DB) adapter.RestoreRepository {
	return &restoreRepository{
		db: db,
	}
}

// ApplyBackup writes the restore data inside a single transaction. Replace
// mode wipes transactions, budgets and goals before loading; merge mode
// skips rows whose id is already stored. Settings are overwritten in both
// modes and tag category mappings are never touched.
func (r *restoreRepository) ApplyBackup(ctx context.Context, data adapter.RestoreData, mode adapter.RestoreMode) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if mode == adapter.RestoreModeReplace {
			if err := wipeRestoredTables(tx); err != nil {
				return err
			}
		}

		existingTransactions, err := existingIDs(tx, &model.TransactionModel{})
		if err != nil {
			return fmt.Errorf("failed to read stored transaction ids: %w", err)
		}
		for _, t := range data.Transactions {
			if _, ok := existingTransactions[t.ID]; ok {
				continue
			}
			if err := tx.Create(model.TransactionFromEntity(t)).Error; err != nil {
				return fmt.Errorf("failed to restore transaction: %w", err)
			}
		}

		existingBudgets, err := existingIDs(tx, &model.BudgetModel{})
		if err != nil {
			return fmt.Errorf("failed to read stored budget ids: %w", err)
		}
		for _, b := range data.Budgets {
			if _, ok := existingBudgets[b.ID]; ok {
				continue
			}
			if err := tx.Create(model.BudgetFromEntity(b)).Error; err != nil {
				return fmt.Errorf("failed to restore budget: %w", err)
			}
		}

		existingGoals, err := existingIDs(tx, &model.InvestmentGoalModel{})
		if err != nil {
			return fmt.Errorf("failed to read stored goal ids: %w", err)
		}
		for _, g := range data.InvestmentGoals {
			if _, ok := existingGoals[g.ID]; ok {
				continue
			}
			if err := tx.Create(model.InvestmentGoalFromEntity(g)).Error; err != nil {
				return fmt.Errorf("failed to restore investment goal: %w", err)
			}
		}

		if data.Settings != nil {
			settings := *data.Settings
			settings.UpdatedAt = time.Now().UTC()
			if err := tx.Save(model.SettingsFromEntity(&settings)).Error; err != nil {
				return fmt.Errorf("failed to restore settings: %w", err)
			}
		}

		return nil
	})
}

func wipeRestoredTables(tx *gorm.DB) error {
	if err := tx.Where("1 = 1").Delete(&model.TransactionModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear transactions: %w", err)
	}
	if err := tx.Where("1 = 1").Delete(&model.BudgetModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear budgets: %w", err)
	}
	if err := tx.Where("1 = 1").Delete(&model.InvestmentGoalModel{}).Error; err != nil {
		return fmt.Errorf("failed to clear investment goals: %w", err)
	}
	return nil
}

// existingIDs loads the stored primary keys for a model into a set so merge
// mode can skip duplicates without a query per row.
func existingIDs(tx *gorm.DB, m interface{}) (map[uuid.UUID]struct{}, error) {
	var ids []uuid.UUID
	if err := tx.Model(m).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}
