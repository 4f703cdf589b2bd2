package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/moneytrail/backend/internal/application/adapter"
	"github.com/moneytrail/backend/internal/domain/entity"
	domainerror "github.com/moneytrail/backend/internal/domain/error"
)

type fakeSettingsRepo struct {
	settings *entity.Settings
	failWith error
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (*entity.Settings, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	if f.settings == nil {
		f.settings = entity.DefaultSettings()
	}
	return f.settings, nil
}

func (f *fakeSettingsRepo) Save(ctx context.Context, settings *entity.Settings) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.settings = settings
	return nil
}

type fakePassphraseService struct {
	hashErr error
}

func (f *fakePassphraseService) HashPassphrase(passphrase string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}
	return "hashed:" + passphrase, nil
}

func (f *fakePassphraseService) VerifyPassphrase(hashedPassphrase, passphrase string) error {
	if hashedPassphrase == "hashed:"+passphrase {
		return nil
	}
	return errors.New("hash mismatch")
}

type fakeTokenService struct {
	issued      int
	revoked     []string
	validateErr error
	generateErr error
	revokeErr   error
}

func (f *fakeTokenService) GenerateTokenPair(ctx context.Context) (*adapter.TokenPair, error) {
	if f.generateErr != nil {
		return nil, f.generateErr
	}
	f.issued++
	return &adapter.TokenPair{
		AccessToken:  fmt.Sprintf("access-%d", f.issued),
		RefreshToken: fmt.Sprintf("refresh-%d", f.issued),
	}, nil
}

func (f *fakeTokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	if f.validateErr != nil {
		return nil, f.validateErr
	}
	return &adapter.TokenClaims{}, nil
}

func (f *fakeTokenService) ValidateRefreshToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	if f.validateErr != nil {
		return nil, f.validateErr
	}
	for _, revoked := range f.revoked {
		if revoked == token {
			return nil, domainerror.ErrRevokedToken
		}
	}
	return &adapter.TokenClaims{}, nil
}

func (f *fakeTokenService) InvalidateRefreshToken(ctx context.Context, token string) error {
	if f.revokeErr != nil {
		return f.revokeErr
	}
	f.revoked = append(f.revoked, token)
	return nil
}

func authCode(t *testing.T, err error) domainerror.AuthErrorCode {
	t.Helper()
	var authErr *domainerror.AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected an AuthError, got %v", err)
	}
	return authErr.Code
}

func settingsWithHash(hash string) *entity.Settings {
	settings := entity.DefaultSettings()
	settings.PassphraseHash = hash
	return settings
}

func TestUnlockSessionUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a token pair for the right passphrase", func(t *testing.T) {
		tokens := &fakeTokenService{}
		useCase := NewUnlockSessionUseCase(
			&fakeSettingsRepo{settings: settingsWithHash("hashed:open sesame")},
			&fakePassphraseService{},
			tokens,
		)

		output, err := useCase.Execute(ctx, UnlockSessionInput{Passphrase: "open sesame"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AccessToken != "access-1" {
			t.Errorf("expected access token access-1, got %s", output.AccessToken)
		}
		if output.RefreshToken != "refresh-1" {
			t.Errorf("expected refresh token refresh-1, got %s", output.RefreshToken)
		}
	})

	t.Run("rejects a wrong passphrase", func(t *testing.T) {
		useCase := NewUnlockSessionUseCase(
			&fakeSettingsRepo{settings: settingsWithHash("hashed:open sesame")},
			&fakePassphraseService{},
			&fakeTokenService{},
		)

		_, err := useCase.Execute(ctx, UnlockSessionInput{Passphrase: "guess"})
		if code := authCode(t, err); code != domainerror.ErrCodeInvalidPassphrase {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidPassphrase, code)
		}
	})

	t.Run("fails when no passphrase has been configured", func(t *testing.T) {
		useCase := NewUnlockSessionUseCase(
			&fakeSettingsRepo{settings: settingsWithHash("")},
			&fakePassphraseService{},
			&fakeTokenService{},
		)

		_, err := useCase.Execute(ctx, UnlockSessionInput{Passphrase: "anything"})
		if code := authCode(t, err); code != domainerror.ErrCodePassphraseNotSet {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodePassphraseNotSet, code)
		}
		if !errors.Is(err, domainerror.ErrPassphraseNotSet) {
			t.Errorf("expected the error to wrap ErrPassphraseNotSet")
		}
	})

	t.Run("wraps token generation failures", func(t *testing.T) {
		useCase := NewUnlockSessionUseCase(
			&fakeSettingsRepo{settings: settingsWithHash("hashed:open sesame")},
			&fakePassphraseService{},
			&fakeTokenService{generateErr: errors.New("signing key missing")},
		)

		_, err := useCase.Execute(ctx, UnlockSessionInput{Passphrase: "open sesame"})
		if err == nil {
			t.Fatal("expected an error")
		}
		if !strings.Contains(err.Error(), "signing key missing") {
			t.Errorf("expected the cause to be preserved, got %v", err)
		}
	})
}

func TestRefreshSessionUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("rotates the refresh token", func(t *testing.T) {
		tokens := &fakeTokenService{}
		useCase := NewRefreshSessionUseCase(tokens)

		output, err := useCase.Execute(ctx, RefreshSessionInput{RefreshToken: "refresh-0"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.AccessToken != "access-1" || output.RefreshToken != "refresh-1" {
			t.Errorf("expected a fresh pair, got %s/%s", output.AccessToken, output.RefreshToken)
		}
		if len(tokens.revoked) != 1 || tokens.revoked[0] != "refresh-0" {
			t.Errorf("expected the old token to be revoked, got %v", tokens.revoked)
		}
	})

	t.Run("rejects a revoked refresh token", func(t *testing.T) {
		tokens := &fakeTokenService{revoked: []string{"refresh-0"}}
		useCase := NewRefreshSessionUseCase(tokens)

		_, err := useCase.Execute(ctx, RefreshSessionInput{RefreshToken: "refresh-0"})
		if code := authCode(t, err); code != domainerror.ErrCodeRevokedToken {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeRevokedToken, code)
		}
	})

	t.Run("rejects an expired refresh token", func(t *testing.T) {
		tokens := &fakeTokenService{validateErr: domainerror.ErrExpiredToken}
		useCase := NewRefreshSessionUseCase(tokens)

		_, err := useCase.Execute(ctx, RefreshSessionInput{RefreshToken: "refresh-0"})
		if code := authCode(t, err); code != domainerror.ErrCodeExpiredToken {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeExpiredToken, code)
		}
	})

	t.Run("rejects a malformed refresh token", func(t *testing.T) {
		tokens := &fakeTokenService{validateErr: domainerror.ErrInvalidToken}
		useCase := NewRefreshSessionUseCase(tokens)

		_, err := useCase.Execute(ctx, RefreshSessionInput{RefreshToken: "not-a-token"})
		if code := authCode(t, err); code != domainerror.ErrCodeInvalidToken {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidToken, code)
		}
	})
}

func TestLockSessionUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("revokes the refresh token", func(t *testing.T) {
		tokens := &fakeTokenService{}
		useCase := NewLockSessionUseCase(tokens)

		output, err := useCase.Execute(ctx, LockSessionInput{RefreshToken: "refresh-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Message == "" {
			t.Error("expected a confirmation message")
		}
		if len(tokens.revoked) != 1 || tokens.revoked[0] != "refresh-1" {
			t.Errorf("expected the token to be revoked, got %v", tokens.revoked)
		}
	})

	t.Run("succeeds even when the token is already invalid", func(t *testing.T) {
		tokens := &fakeTokenService{revokeErr: errors.New("unknown token")}
		useCase := NewLockSessionUseCase(tokens)

		if _, err := useCase.Execute(ctx, LockSessionInput{RefreshToken: "stale"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
