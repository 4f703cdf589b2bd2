// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// SnapshotCache defines the interface for memoizing computed summary
// snapshots. The cache is never authoritative; a miss or an error means the
// snapshot is recomputed from the transaction list.
type SnapshotCache interface {
	// Get retrieves a cached payload by key. The second return value is
	// false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a payload under key with the given TTL.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error

	// Invalidate removes every cached snapshot.
	Invalidate(ctx context.Context) error
}
