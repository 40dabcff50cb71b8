package service

import (
	"context"

	"github.com/snesterov/ciphervault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientCryptoService runs the envelope cipher over vault item fields on the
// client. The master secret must be set via SetMasterSecret before any
// Encrypt/Decrypt call; it is held only in memory and wiped by Clear.
type ClientCryptoService interface {
	// SetMasterSecret stores the secret used for all subsequent
	// encrypt/decrypt operations. Called once after a successful login.
	SetMasterSecret(masterSecret string)

	// Clear drops the stored master secret. Encrypt/Decrypt fail afterwards
	// until SetMasterSecret is called again.
	Clear()

	// EncryptItem seals the plain item's secret and notes, each into its own
	// fresh envelope, and returns the ciphered item ready for upload or
	// local storage.
	EncryptItem(plain models.PlainItem) (models.VaultItem, error)

	// DecryptItem opens the item's envelopes and returns the plaintext view.
	DecryptItem(item models.VaultItem) (models.PlainItem, error)
}

// ClientAuthService drives registration and the zero-knowledge login flow
// against the server adapter. The master secret never leaves the client:
// the server only ever receives the derived auth hash.
type ClientAuthService interface {
	// Register generates the account KDF salt, derives the auth hash from
	// the master secret, and creates the account on the server.
	Register(ctx context.Context, login, masterSecret string) error

	// Login fetches the account salt, recomputes the auth hash, and
	// authenticates. On success the crypto service is primed with the
	// master secret and the bearer token is stored in the adapter.
	Login(ctx context.Context, login, masterSecret string) error

	// Logout drops the bearer token and wipes the master secret from the
	// crypto service.
	Logout()
}

// ClientVaultService is the client-side application service for vault items.
// Writes go to the server and are mirrored into the local cache; reads try
// the server first and fall back to the cache when it is unreachable.
type ClientVaultService interface {
	// AddItem assigns a client-side id, encrypts plain, uploads it, and
	// caches the stored record.
	AddItem(ctx context.Context, plain models.PlainItem) (models.PlainItem, error)

	// GetItem fetches one item and decrypts it.
	GetItem(ctx context.Context, clientSideID string) (models.PlainItem, error)

	// ListItems returns the ciphered item records (names and types are
	// plaintext). Decryption is deliberately per-item via GetItem: every
	// envelope carries its own KDF salt, so opening a whole listing would
	// cost one full key derivation per item.
	ListItems(ctx context.Context, filters models.ListFilters) ([]models.VaultItem, error)

	// UpdateItem re-encrypts the item into brand-new envelopes and replaces
	// the stored record. Ciphertext is never patched in place.
	UpdateItem(ctx context.Context, plain models.PlainItem) (models.PlainItem, error)

	// DeleteItem removes the item from the server and the local cache.
	DeleteItem(ctx context.Context, clientSideID string) error
}
