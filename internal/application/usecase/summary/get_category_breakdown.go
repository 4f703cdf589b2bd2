// Package summary contains financial aggregate use cases.
package summary

import (
	"context"
	"fmt"

	"github.com/moneytrail/backend/internal/application/adapter"
)

// GetCategoryBreakdownOutput represents the output of the tag breakdown.
type GetCategoryBreakdownOutput struct {
	Totals []TagTotal
}

// GetCategoryBreakdownUseCase computes expense totals grouped by tag.
type GetCategoryBreakdownUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(transactionRepo adapter.TransactionRepository) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes the breakdown from the full transaction list.
func (uc *GetCategoryBreakdownUseCase) Execute(ctx context.Context) (*GetCategoryBreakdownOutput, error) {
	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &GetCategoryBreakdownOutput{
		Totals: CategoryBreakdown(transactions),
	}, nil
}
