// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/moneytrail/backend/internal/application/adapter"
)

const snapshotKeyPrefix = "moneytrail:snapshot:"

// redisSnapshotCache memoizes computed summary snapshots in redis. The cache
// is read-through only; stored payloads are opaque to it.
type redisSnapshotCache struct {
	client *redis.Client
}

// NewRedisSnapshotCache creates a new redis backed snapshot cache.
func NewRedisSnapshotCache(client *redis.Client) adapter.SnapshotCache {
	return &redisSnapshotCache{
		client: client,
	}
}

// Get retrieves a cached payload by key.
func (c *redisSnapshotCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	payload, err := c.client.Get(ctx, snapshotKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read snapshot cache: %w", err)
	}
	return payload, true, nil
}

// Set stores a payload under key with the given TTL.
func (c *redisSnapshotCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, snapshotKeyPrefix+key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write snapshot cache: %w", err)
	}
	return nil
}

// Invalidate removes every cached snapshot.
func (c *redisSnapshotCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, snapshotKeyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan snapshot keys: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete snapshot keys: %w", err)
	}
	return nil
}
