// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergei Nesterov

// Package adapter provides the transport layer between the client and the
// vault server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/snesterov/ciphervault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the vault
// server. Implementations manage serialisation and the bearer token; they
// never see a master secret or a derived key, only envelope blobs and auth
// hashes.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests. Called after a successful Login.
	SetToken(token string)

	// Token returns the currently stored bearer token, or "" before login.
	Token() string

	// Register creates an account on the server from the client-computed
	// auth hash and public KDF salt.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Salt fetches the account KDF salt stored for login during
	// registration. The client needs it to derive its auth hash.
	Salt(ctx context.Context, login string) (string, error)

	// Login authenticates with the pre-computed auth hash. On success the
	// returned token is stored via SetToken and also returned to the caller.
	Login(ctx context.Context, req models.LoginRequest) (string, error)

	// SaveItem uploads a newly encrypted vault item and returns it with
	// server-assigned fields populated.
	SaveItem(ctx context.Context, item models.VaultItem) (models.VaultItem, error)

	// GetItem fetches one vault item by its client-side id.
	GetItem(ctx context.Context, clientSideID string) (models.VaultItem, error)

	// ListItems fetches the user's vault items, narrowed by filters.
	ListItems(ctx context.Context, filters models.ListFilters) ([]models.VaultItem, error)

	// UpdateItem replaces an item's envelopes on the server and returns the
	// record with its bumped version.
	UpdateItem(ctx context.Context, item models.VaultItem) (models.VaultItem, error)

	// DeleteItem removes one vault item by its client-side id.
	DeleteItem(ctx context.Context, clientSideID string) error
}
