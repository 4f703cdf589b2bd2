// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const revocationKeyPrefix = "moneytrail:revoked:"

// redisRevocationStore tracks revoked refresh token ids in redis. Entries
// expire together with the token they block, so the store never grows past
// the set of live refresh tokens.
type redisRevocationStore struct {
	client *redis.Client
}

// NewRedisRevocationStore creates a new redis backed revocation store.
func NewRedisRevocationStore(client *redis.Client) RevocationStore {
	return &redisRevocationStore{
		client: client,
	}
}

// Revoke marks a token id as revoked until its expiry.
func (s *redisRevocationStore) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		// An already expired token needs no denylist entry.
		return nil
	}

	if err := s.client.Set(ctx, revocationKeyPrefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to store revocation: %w", err)
	}
	return nil
}

// IsRevoked reports whether a token id has been revoked.
func (s *redisRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := s.client.Get(ctx, revocationKeyPrefix+tokenID).Err()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check revocation: %w", err)
	}
	return true, nil
}
