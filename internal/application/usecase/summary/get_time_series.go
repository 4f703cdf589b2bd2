// Package summary contains financial aggregate use cases.
package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/moneytrail/backend/internal/application/adapter"
)

// GetTimeSeriesInput represents the input for the series computation.
type GetTimeSeriesInput struct {
	// WindowDays limits the series to the trailing window; zero or negative
	// means all time.
	WindowDays int
}

// GetTimeSeriesOutput represents the output of the series computation.
type GetTimeSeriesOutput struct {
	Points []SeriesPoint
}

// GetTimeSeriesUseCase computes the end-of-day net worth series.
type GetTimeSeriesUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetTimeSeriesUseCase creates a new GetTimeSeriesUseCase instance.
func NewGetTimeSeriesUseCase(transactionRepo adapter.TransactionRepository) *GetTimeSeriesUseCase {
	return &GetTimeSeriesUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes the series from the full transaction list.
func (uc *GetTimeSeriesUseCase) Execute(ctx context.Context, input GetTimeSeriesInput) (*GetTimeSeriesOutput, error) {
	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &GetTimeSeriesOutput{
		Points: TimeSeries(transactions, input.WindowDays, time.Now().UTC()),
	}, nil
}
