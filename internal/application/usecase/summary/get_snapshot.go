// Package summary contains financial aggregate use cases.
package summary

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/moneytrail/backend/internal/application/adapter"
	"github.com/moneytrail/backend/internal/application/usecase/ledger"
)

// DefaultSnapshotTTL bounds how long a memoized snapshot may serve reads
// when no TTL is configured.
const DefaultSnapshotTTL = 5 * time.Minute

// GetSnapshotInput represents the input for the snapshot computation.
type GetSnapshotInput struct {
	// SettlementFromLedger injects the ledger engine's per-person net total
	// instead of recomputing settlement from the raw split.
	SettlementFromLedger bool
}

// GetSnapshotOutput represents the output of the snapshot computation.
type GetSnapshotOutput struct {
	Snapshot SnapshotValues
}

// GetSnapshotUseCase computes the point-in-time financial aggregate. A
// snapshot cache, when configured, memoizes results keyed by the transaction
// list content; the cache is never authoritative.
type GetSnapshotUseCase struct {
	transactionRepo adapter.TransactionRepository
	cache           adapter.SnapshotCache
	ttl             time.Duration
}

// NewGetSnapshotUseCase creates a new GetSnapshotUseCase instance. The cache
// may be nil; a non-positive ttl falls back to DefaultSnapshotTTL.
func NewGetSnapshotUseCase(transactionRepo adapter.TransactionRepository, cache adapter.SnapshotCache, ttl time.Duration) *GetSnapshotUseCase {
	if ttl <= 0 {
		ttl = DefaultSnapshotTTL
	}
	return &GetSnapshotUseCase{
		transactionRepo: transactionRepo,
		cache:           cache,
		ttl:             ttl,
	}
}

// Execute computes the snapshot from the full transaction list.
func (uc *GetSnapshotUseCase) Execute(ctx context.Context, input GetSnapshotInput) (*GetSnapshotOutput, error) {
	transactions, err := uc.transactionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	var key string
	if uc.cache != nil {
		key = SnapshotCacheKey(transactions)
		if input.SettlementFromLedger {
			key += ":ledger"
		}

		if payload, ok, cacheErr := uc.cache.Get(ctx, key); cacheErr == nil && ok {
			var cached SnapshotValues
			if unmarshalErr := json.Unmarshal(payload, &cached); unmarshalErr == nil {
				return &GetSnapshotOutput{Snapshot: cached}, nil
			}
		} else if cacheErr != nil {
			slog.Debug("Snapshot cache read failed", "error", cacheErr)
		}
	}

	totals := Snapshot(transactions)

	var values SnapshotValues
	if input.SettlementFromLedger {
		var net int64
		for _, balance := range ledger.ComputeBalances(transactions) {
			net += balance.Net()
		}
		values = totals.ValuesWithSettlement(net)
	} else {
		values = totals.Values()
	}

	if uc.cache != nil {
		if payload, marshalErr := json.Marshal(values); marshalErr == nil {
			if cacheErr := uc.cache.Set(ctx, key, payload, uc.ttl); cacheErr != nil {
				slog.Debug("Snapshot cache write failed", "error", cacheErr)
			}
		}
	}

	return &GetSnapshotOutput{Snapshot: values}, nil
}
