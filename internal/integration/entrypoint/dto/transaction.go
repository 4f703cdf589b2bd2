// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/moneytrail/backend/internal/application/usecase/transaction"
	"github.com/moneytrail/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Date   string `json:"date" binding:"required"`
	Amount int64  `json:"amount" binding:"min=0"`
	Type   string `json:"type" binding:"required,oneof=expense income"`
	Name   string `json:"name" binding:"required,min=1,max=255"`
	Tag    string `json:"tag" binding:"required"`
	Person string `json:"person" binding:"required"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Date   *string `json:"date,omitempty"`
	Amount *int64  `json:"amount,omitempty" binding:"omitempty,min=0"`
	Type   *string `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	Name   *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Tag    *string `json:"tag,omitempty"`
	Person *string `json:"person,omitempty"`
}

// BulkDeleteTransactionsRequest represents the request body for bulk transaction deletion.
type BulkDeleteTransactionsRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

// BulkRetagTransactionsRequest represents the request body for bulk transaction retagging.
type BulkRetagTransactionsRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
	Tag string   `json:"tag" binding:"required"`
}

// TransactionResponse represents a single transaction in API responses.
// Amounts are integers in the smallest currency unit.
type TransactionResponse struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Amount    int64     `json:"amount"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	Tag       string    `json:"tag"`
	Person    string    `json:"person"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TransactionTotalsResponse represents aggregated totals in API responses.
type TransactionTotalsResponse struct {
	IncomeTotal  int64 `json:"income_total"`
	ExpenseTotal int64 `json:"expense_total"`
	NetTotal     int64 `json:"net_total"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse     `json:"transactions"`
	Totals       TransactionTotalsResponse `json:"totals"`
}

// BulkDeleteTransactionsResponse represents the response for bulk transaction deletion.
type BulkDeleteTransactionsResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

// BulkRetagTransactionsResponse represents the response for bulk transaction retagging.
type BulkRetagTransactionsResponse struct {
	UpdatedCount int64 `json:"updated_count"`
}

// ToTransactionResponse converts a transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        txn.ID.String(),
		Date:      txn.OccurredAt.Format("2006-01-02"),
		Amount:    txn.Amount,
		Type:      string(txn.Type),
		Name:      txn.Name,
		Tag:       txn.Tag,
		Person:    txn.Person,
		CreatedAt: txn.CreatedAt,
		UpdatedAt: txn.UpdatedAt,
	}
}

// ToTransactionListResponse converts a ListTransactionsOutput to a TransactionListResponse DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, 0, len(output.Transactions))
	for _, txn := range output.Transactions {
		transactions = append(transactions, ToTransactionResponse(txn))
	}

	return TransactionListResponse{
		Transactions: transactions,
		Totals: TransactionTotalsResponse{
			IncomeTotal:  output.Totals.IncomeTotal,
			ExpenseTotal: output.Totals.ExpenseTotal,
			NetTotal:     output.Totals.NetTotal,
		},
	}
}
