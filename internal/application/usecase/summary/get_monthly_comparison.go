// Package summary contains financial aggregate use cases.
package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/moneytrail/backend/internal/application/adapter"
	domainerror "github.com/moneytrail/backend/internal/domain/error"
)

// DefaultComparisonMonths is the month count used when none is requested.
const DefaultComparisonMonths = 6

// GetMonthlyComparisonInput represents the input for the monthly comparison.
type GetMonthlyComparisonInput struct {
	// Months is the number of trailing calendar months; zero selects the
	// default.
	Months int
}

// GetMonthlyComparisonOutput represents the output of the monthly comparison.
type GetMonthlyComparisonOutput struct {
	Points []MonthPoint
}

// GetMonthlyComparisonUseCase computes per-month income/expense totals.
type GetMonthlyComparisonUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetMonthlyComparisonUseCase creates a new GetMonthlyComparisonUseCase instance.
func NewGetMonthlyComparisonUseCase(transactionRepo adapter.TransactionRepository) *GetMonthlyComparisonUseCase {
	return &GetMonthlyComparisonUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes the comparison over the trailing months.
func (uc *GetMonthlyComparisonUseCase) Execute(ctx context.Context, input GetMonthlyComparisonInput) (*GetMonthlyComparisonOutput, error) {
	months := input.Months
	if months == 0 {
		months = DefaultComparisonMonths
	}
	if months < 0 {
		return nil, domainerror.NewSummaryError(
			domainerror.ErrCodeInvalidMonthCount,
			"months must be a positive number",
			domainerror.ErrInvalidMonthCount,
		)
	}

	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &GetMonthlyComparisonOutput{
		Points: MonthlyComparison(transactions, months, time.Now().UTC()),
	}, nil
}
