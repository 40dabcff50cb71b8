package store

import (
	"context"

	"github.com/snesterov/ciphervault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// VaultRepository is the server-side persistence contract for vault items.
// Every blob it stores is an opaque envelope; the repository never inspects
// or transforms ciphertext.
type VaultRepository interface {
	// Save inserts a new item owned by userID and returns it with
	// server-assigned fields populated.
	Save(ctx context.Context, userID int64, item models.VaultItem) (models.VaultItem, error)

	// Get returns one item by client-side id, scoped to userID.
	Get(ctx context.Context, userID int64, clientSideID string) (models.VaultItem, error)

	// List returns the user's items, optionally narrowed by filters.
	List(ctx context.Context, userID int64, filters models.ListFilters) ([]models.VaultItem, error)

	// Update replaces the item's envelopes with freshly encrypted ones and
	// bumps the version. Ciphertext is never patched in place.
	Update(ctx context.Context, userID int64, item models.VaultItem) (models.VaultItem, error)

	// Delete removes the item.
	Delete(ctx context.Context, userID int64, clientSideID string) error
}

// UserRepository handles account records.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// LocalVaultStorage is the client-side offline cache. Same opacity rule as
// [VaultRepository]: envelope blobs in, envelope blobs out.
type LocalVaultStorage interface {
	Put(ctx context.Context, item models.VaultItem) error
	Get(ctx context.Context, clientSideID string) (models.VaultItem, error)
	List(ctx context.Context) ([]models.VaultItem, error)
	Delete(ctx context.Context, clientSideID string) error
	Close() error
}
