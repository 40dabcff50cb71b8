package models

import "time"

// VaultItem is the persisted unit of the vault. All confidential content
// lives inside envelope blobs; the database never sees plaintext secrets.
type VaultItem struct {
	// ID is the server-side identifier of the record.
	ID int64 `json:"id"`

	// ClientSideID is the UUID assigned by the client when the item is
	// created. It identifies the item across devices independently of the
	// server-side sequence.
	ClientSideID string `json:"client_side_id"`

	// UserID is the owner of the item.
	UserID int64 `json:"user_id"`

	// Name is the human-readable display name. Kept in plaintext so items
	// can be listed and filtered without the master secret.
	Name string `json:"name"`

	// Type is the semantic type of the stored secret.
	Type ItemType `json:"type"`

	// Secret is the envelope blob holding the encrypted secret value
	// (password, note body). Opaque to the server.
	Secret CipheredSecret `json:"secret"`

	// Notes optionally holds a second envelope blob with encrypted
	// free-form notes.
	Notes *CipheredNotes `json:"notes,omitempty"`

	// Version counts re-encryptions of the item. Every update produces a
	// brand-new envelope (fresh salt and nonce) and increments Version;
	// ciphertext is never mutated in place.
	Version int64 `json:"version"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt *time.Time `json:"created_at,omitempty"`

	// UpdatedAt is the timestamp of the last re-encryption.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
