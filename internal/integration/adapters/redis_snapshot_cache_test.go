package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/moneytrail/backend/internal/application/adapter"
)

func newTestSnapshotCache(t *testing.T) (adapter.SnapshotCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})
	return NewRedisSnapshotCache(client), mr
}

func TestRedisSnapshotCache(t *testing.T) {
	ctx := context.Background()

	t.Run("set then get round trips the payload", func(t *testing.T) {
		cache, _ := newTestSnapshotCache(t)

		if err := cache.Set(ctx, "abc", []byte(`{"balance":100}`), time.Minute); err != nil {
			t.Fatalf("set failed: %v", err)
		}

		payload, ok, err := cache.Get(ctx, "abc")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if !ok {
			t.Fatal("expected a cache hit")
		}
		if string(payload) != `{"balance":100}` {
			t.Errorf("expected payload to round trip, got %s", payload)
		}
	})

	t.Run("get reports a miss for an unknown key", func(t *testing.T) {
		cache, _ := newTestSnapshotCache(t)

		_, ok, err := cache.Get(ctx, "missing")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if ok {
			t.Error("expected a cache miss")
		}
	})

	t.Run("entries expire after their ttl", func(t *testing.T) {
		cache, mr := newTestSnapshotCache(t)

		if err := cache.Set(ctx, "abc", []byte("payload"), time.Minute); err != nil {
			t.Fatalf("set failed: %v", err)
		}

		mr.FastForward(2 * time.Minute)

		_, ok, err := cache.Get(ctx, "abc")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if ok {
			t.Error("expected the entry to have expired")
		}
	})

	t.Run("invalidate removes every snapshot entry", func(t *testing.T) {
		cache, _ := newTestSnapshotCache(t)

		for _, key := range []string{"one", "two", "three"} {
			if err := cache.Set(ctx, key, []byte("payload"), time.Minute); err != nil {
				t.Fatalf("set failed: %v", err)
			}
		}

		if err := cache.Invalidate(ctx); err != nil {
			t.Fatalf("invalidate failed: %v", err)
		}

		for _, key := range []string{"one", "two", "three"} {
			_, ok, err := cache.Get(ctx, key)
			if err != nil {
				t.Fatalf("get failed: %v", err)
			}
			if ok {
				t.Errorf("expected key %q to be gone", key)
			}
		}
	})

	t.Run("invalidate on an empty cache succeeds", func(t *testing.T) {
		cache, _ := newTestSnapshotCache(t)

		if err := cache.Invalidate(ctx); err != nil {
			t.Errorf("expected invalidate to succeed, got %v", err)
		}
	})
}
