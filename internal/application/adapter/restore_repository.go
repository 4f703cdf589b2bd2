// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/moneytrail/backend/internal/domain/entity"
)

// RestoreMode selects how a restore treats already stored rows.
type RestoreMode string

const (
	// RestoreModeReplace wipes the stored data before loading the backup.
	RestoreModeReplace RestoreMode = "replace"

	// RestoreModeMerge keeps stored rows and skips backup rows whose id
	// already exists. Settings are still overwritten.
	RestoreModeMerge RestoreMode = "merge"
)

// RestoreData carries the entity sets a restore writes. Tag category
// mappings are not part of the interchange format and stay untouched.
type RestoreData struct {
	Transactions    []*entity.Transaction
	Budgets         []*entity.Budget
	InvestmentGoals []*entity.InvestmentGoal
	Settings        *entity.Settings
}

// RestoreRepository applies a whole backup against storage.
type RestoreRepository interface {
	// ApplyBackup writes the restore data in a single storage transaction.
	// Either the whole backup lands or the stored state stays untouched.
	ApplyBackup(ctx context.Context, data RestoreData, mode RestoreMode) error
}
