// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/moneytrail/backend/internal/application/usecase/backup"
)

// RestoreBackupResponse summarizes what a restore loaded.
type RestoreBackupResponse struct {
	Mode            string `json:"mode"`
	Transactions    int    `json:"transactions"`
	Budgets         int    `json:"budgets"`
	InvestmentGoals int    `json:"investment_goals"`
}

// ToRestoreBackupResponse converts a RestoreBackupOutput to its DTO.
func ToRestoreBackupResponse(output *backup.RestoreBackupOutput) RestoreBackupResponse {
	return RestoreBackupResponse{
		Mode:            string(output.Mode),
		Transactions:    output.Transactions,
		Budgets:         output.Budgets,
		InvestmentGoals: output.InvestmentGoals,
	}
}
