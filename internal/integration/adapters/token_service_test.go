package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/moneytrail/backend/internal/application/adapter"
	domainerror "github.com/moneytrail/backend/internal/domain/error"
)

func newTestRevocationStore(t *testing.T) RevocationStore {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})
	return NewRedisRevocationStore(client)
}

func newTestTokenService(t *testing.T, accessDuration time.Duration) adapter.TokenService {
	t.Helper()
	return NewTokenService("test-secret", accessDuration, time.Hour, newTestRevocationStore(t))
}

func TestTokenService(t *testing.T) {
	ctx := context.Background()

	t.Run("generated pair validates on both sides", func(t *testing.T) {
		service := newTestTokenService(t, time.Minute)

		pair, err := service.GenerateTokenPair(ctx)
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		if pair.AccessToken == "" || pair.RefreshToken == "" {
			t.Fatal("expected both tokens to be issued")
		}

		accessClaims, err := service.ValidateAccessToken(ctx, pair.AccessToken)
		if err != nil {
			t.Fatalf("access validation failed: %v", err)
		}
		refreshClaims, err := service.ValidateRefreshToken(ctx, pair.RefreshToken)
		if err != nil {
			t.Fatalf("refresh validation failed: %v", err)
		}
		if accessClaims.SessionID != refreshClaims.SessionID {
			t.Error("expected both tokens to carry the same session id")
		}
	})

	t.Run("a refresh token is rejected as access token", func(t *testing.T) {
		service := newTestTokenService(t, time.Minute)

		pair, err := service.GenerateTokenPair(ctx)
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}

		_, err = service.ValidateAccessToken(ctx, pair.RefreshToken)
		if !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("an expired access token maps to the expired sentinel", func(t *testing.T) {
		service := newTestTokenService(t, time.Millisecond)

		pair, err := service.GenerateTokenPair(ctx)
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}

		time.Sleep(10 * time.Millisecond)

		_, err = service.ValidateAccessToken(ctx, pair.AccessToken)
		if !errors.Is(err, domainerror.ErrExpiredToken) {
			t.Errorf("expected ErrExpiredToken, got %v", err)
		}
	})

	t.Run("an invalidated refresh token fails validation", func(t *testing.T) {
		service := newTestTokenService(t, time.Minute)

		pair, err := service.GenerateTokenPair(ctx)
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}

		if err := service.InvalidateRefreshToken(ctx, pair.RefreshToken); err != nil {
			t.Fatalf("invalidate failed: %v", err)
		}

		_, err = service.ValidateRefreshToken(ctx, pair.RefreshToken)
		if !errors.Is(err, domainerror.ErrRevokedToken) {
			t.Errorf("expected ErrRevokedToken, got %v", err)
		}
	})

	t.Run("revocation only affects the invalidated token", func(t *testing.T) {
		service := newTestTokenService(t, time.Minute)

		first, err := service.GenerateTokenPair(ctx)
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}
		second, err := service.GenerateTokenPair(ctx)
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}

		if err := service.InvalidateRefreshToken(ctx, first.RefreshToken); err != nil {
			t.Fatalf("invalidate failed: %v", err)
		}

		if _, err := service.ValidateRefreshToken(ctx, second.RefreshToken); err != nil {
			t.Errorf("expected the second refresh token to stay valid, got %v", err)
		}
	})

	t.Run("a tampered token is invalid", func(t *testing.T) {
		service := newTestTokenService(t, time.Minute)

		pair, err := service.GenerateTokenPair(ctx)
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}

		tampered := pair.AccessToken + "x"
		_, err = service.ValidateAccessToken(ctx, tampered)
		if !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("a token signed with another secret is invalid", func(t *testing.T) {
		service := newTestTokenService(t, time.Minute)
		other := NewTokenService("other-secret", time.Minute, time.Hour, newTestRevocationStore(t))

		pair, err := other.GenerateTokenPair(ctx)
		if err != nil {
			t.Fatalf("generate failed: %v", err)
		}

		_, err = service.ValidateAccessToken(ctx, pair.AccessToken)
		if !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})
}
