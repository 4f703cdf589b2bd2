// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/moneytrail/backend/internal/application/usecase/ledger"
	"github.com/moneytrail/backend/internal/domain/entity"
)

// SettleBalanceRequest represents the request body for settling a person's balance.
type SettleBalanceRequest struct {
	Person           string `json:"person" binding:"required"`
	CashAmount       int64  `json:"cash_amount" binding:"min=0"`
	SpentForMeAmount int64  `json:"spent_for_me_amount" binding:"min=0"`
	OtherAmount      int64  `json:"other_amount" binding:"min=0"`
	Description      string `json:"description,omitempty" binding:"omitempty,max=255"`
}

// PersonBalanceResponse represents one person's open ledger position.
type PersonBalanceResponse struct {
	Person       string                `json:"person"`
	TotalOwed    int64                 `json:"total_owed"`
	TotalOwing   int64                 `json:"total_owing"`
	Net          int64                 `json:"net"`
	Transactions []TransactionResponse `json:"transactions"`
}

// BalancesResponse represents the response for listing ledger balances.
type BalancesResponse struct {
	Balances []PersonBalanceResponse `json:"balances"`
}

// SettleBalanceResponse represents the response for a settlement.
type SettleBalanceResponse struct {
	Created []TransactionResponse `json:"created"`
}

// ToPersonBalanceResponse converts a PersonBalance entity to its DTO.
func ToPersonBalanceResponse(balance *entity.PersonBalance) PersonBalanceResponse {
	transactions := make([]TransactionResponse, 0, len(balance.Transactions))
	for _, txn := range balance.Transactions {
		transactions = append(transactions, ToTransactionResponse(txn))
	}

	return PersonBalanceResponse{
		Person:       balance.Person,
		TotalOwed:    balance.TotalOwed,
		TotalOwing:   balance.TotalOwing,
		Net:          balance.Net(),
		Transactions: transactions,
	}
}

// ToBalancesResponse converts a GetBalancesOutput to a BalancesResponse DTO.
func ToBalancesResponse(output *ledger.GetBalancesOutput) BalancesResponse {
	balances := make([]PersonBalanceResponse, 0, len(output.Balances))
	for _, balance := range output.Balances {
		balances = append(balances, ToPersonBalanceResponse(balance))
	}
	return BalancesResponse{Balances: balances}
}

// ToSettleBalanceResponse converts a SettleBalanceOutput to a SettleBalanceResponse DTO.
func ToSettleBalanceResponse(output *ledger.SettleBalanceOutput) SettleBalanceResponse {
	created := make([]TransactionResponse, 0, len(output.Created))
	for _, txn := range output.Created {
		created = append(created, ToTransactionResponse(txn))
	}
	return SettleBalanceResponse{Created: created}
}
