package service

import (
	"context"
	"encoding/hex"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snesterov/ciphervault/internal/config"
	"github.com/snesterov/ciphervault/internal/crypto"
	"github.com/snesterov/ciphervault/internal/logger"
	"github.com/snesterov/ciphervault/internal/store"
	"github.com/snesterov/ciphervault/internal/utils"
	"github.com/snesterov/ciphervault/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByLoginFn func(ctx context.Context, login string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	if m.findUserByLoginFn != nil {
		return m.findUserByLoginFn(ctx, login)
	}
	return models.User{}, store.ErrUserNotFound
}

func testAppConfig() config.AppConfig {
	return config.AppConfig{
		HashKey:       "test-hash-key",
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "ciphervault-test",
		TokenDuration: time.Hour,
	}
}

func testSaltHex(t *testing.T) string {
	t.Helper()
	return hex.EncodeToString(make([]byte, crypto.SaltSize))
}

// ─────────────────────────────────────────────
// Register
// ─────────────────────────────────────────────

func TestAuthService_Register_StoresVerifierNotRawHash(t *testing.T) {
	cfg := testAppConfig()
	var stored models.User

	users := &mockUserRepository{
		createUserFn: func(_ context.Context, user models.User) (models.User, error) {
			stored = user
			user.ID = 7
			return user, nil
		},
	}
	svc := NewAuthService(users, cfg, logger.Nop())

	req := models.RegisterRequest{Login: "alice", AuthHash: "deadbeef", KDFSalt: testSaltHex(t)}
	created, err := svc.Register(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, "alice", stored.Login)
	assert.NotEqual(t, req.AuthHash, stored.AuthVerifier)
	assert.Equal(t, utils.HashString(req.AuthHash, cfg.HashKey), stored.AuthVerifier)
	assert.Equal(t, req.KDFSalt, stored.KDFSalt)
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := NewAuthService(&mockUserRepository{}, testAppConfig(), logger.Nop())
	salt := testSaltHex(t)

	tests := []struct {
		name string
		req  models.RegisterRequest
	}{
		{"empty login", models.RegisterRequest{AuthHash: "deadbeef", KDFSalt: salt}},
		{"empty auth hash", models.RegisterRequest{Login: "alice", KDFSalt: salt}},
		{"salt not hex", models.RegisterRequest{Login: "alice", AuthHash: "deadbeef", KDFSalt: "zzzz"}},
		{"salt too short", models.RegisterRequest{Login: "alice", AuthHash: "deadbeef", KDFSalt: "cafe"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_Register_DuplicateLogin(t *testing.T) {
	users := &mockUserRepository{
		createUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrLoginAlreadyExists
		},
	}
	svc := NewAuthService(users, testAppConfig(), logger.Nop())

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Login: "alice", AuthHash: "deadbeef", KDFSalt: testSaltHex(t),
	})

	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

// ─────────────────────────────────────────────
// Salt
// ─────────────────────────────────────────────

func TestAuthService_Salt(t *testing.T) {
	salt := testSaltHex(t)
	users := &mockUserRepository{
		findUserByLoginFn: func(_ context.Context, login string) (models.User, error) {
			assert.Equal(t, "alice", login)
			return models.User{ID: 1, Login: "alice", KDFSalt: salt}, nil
		},
	}
	svc := NewAuthService(users, testAppConfig(), logger.Nop())

	got, err := svc.Salt(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, salt, got)
}

func TestAuthService_Salt_UnknownLogin(t *testing.T) {
	svc := NewAuthService(&mockUserRepository{}, testAppConfig(), logger.Nop())

	_, err := svc.Salt(context.Background(), "nobody")

	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

// ─────────────────────────────────────────────
// Login / ParseToken
// ─────────────────────────────────────────────

func TestAuthService_Login_IssuesParseableToken(t *testing.T) {
	cfg := testAppConfig()
	authHash := "deadbeef"
	users := &mockUserRepository{
		findUserByLoginFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{
				ID:           42,
				Login:        "alice",
				AuthVerifier: utils.HashString(authHash, cfg.HashKey),
			}, nil
		},
	}
	svc := NewAuthService(users, cfg, logger.Nop())

	token, err := svc.Login(context.Background(), models.LoginRequest{Login: "alice", AuthHash: authHash})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(42), token.UserID)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestAuthService_Login_WrongHash(t *testing.T) {
	cfg := testAppConfig()
	users := &mockUserRepository{
		findUserByLoginFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{ID: 1, AuthVerifier: utils.HashString("right", cfg.HashKey)}, nil
		},
	}
	svc := NewAuthService(users, cfg, logger.Nop())

	_, err := svc.Login(context.Background(), models.LoginRequest{Login: "alice", AuthHash: "wrong"})

	assert.ErrorIs(t, err, ErrWrongCredentials)
}

// An unknown login and a wrong hash must be indistinguishable to the caller.
func TestAuthService_Login_UnknownLoginSameError(t *testing.T) {
	svc := NewAuthService(&mockUserRepository{}, testAppConfig(), logger.Nop())

	_, err := svc.Login(context.Background(), models.LoginRequest{Login: "nobody", AuthHash: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWrongCredentials)
	assert.NotContains(t, err.Error(), "not found")
}

func TestAuthService_Login_RepositoryFailure(t *testing.T) {
	boom := errors.New("connection reset")
	users := &mockUserRepository{
		findUserByLoginFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, boom
		},
	}
	svc := NewAuthService(users, testAppConfig(), logger.Nop())

	_, err := svc.Login(context.Background(), models.LoginRequest{Login: "alice", AuthHash: "x"})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrWrongCredentials)
}

func TestAuthService_ParseToken_Expired(t *testing.T) {
	cfg := testAppConfig()
	svc := NewAuthService(&mockUserRepository{}, cfg, logger.Nop())

	// GenerateJWTToken refuses non-positive durations, so mint the expired
	// token from raw claims.
	claims := &jwt.RegisteredClaims{
		Issuer:    cfg.TokenIssuer,
		Subject:   "1",
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.TokenSignKey))
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), expired)

	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestAuthService_ParseToken_WrongSignKey(t *testing.T) {
	cfg := testAppConfig()
	svc := NewAuthService(&mockUserRepository{}, cfg, logger.Nop())

	foreign, err := utils.GenerateJWTToken(cfg.TokenIssuer, 1, time.Hour, "some-other-key")
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), foreign.SignedString)

	require.Error(t, err)
}
