package service

import (
	"context"

	"github.com/snesterov/ciphervault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService implements the server side of the zero-knowledge login flow.
// It never sees a master secret: the client sends a derived auth hash, the
// service HMACs it and compares against the stored verifier.
type AuthService interface {
	// Register creates an account from the client-supplied auth hash and
	// public KDF salt.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Salt returns the account's public KDF salt so the client can derive
	// its auth hash before logging in.
	Salt(ctx context.Context, login string) (string, error)

	// Login verifies the auth hash and issues a signed JWT.
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)

	// ParseToken validates a bearer token and returns its claims.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// VaultService is the server-side application service for vault items. It
// validates requests and delegates to the repository; it cannot decrypt
// anything it stores.
type VaultService interface {
	SaveItem(ctx context.Context, userID int64, item models.VaultItem) (models.VaultItem, error)
	GetItem(ctx context.Context, userID int64, clientSideID string) (models.VaultItem, error)
	ListItems(ctx context.Context, userID int64, filters models.ListFilters) ([]models.VaultItem, error)
	UpdateItem(ctx context.Context, userID int64, item models.VaultItem) (models.VaultItem, error)
	DeleteItem(ctx context.Context, userID int64, clientSideID string) error
}
