package models

import "time"

// User is an account record. The server never stores the master secret or
// anything derived from it directly: AuthVerifier is an HMAC of the
// client-computed auth hash, and KDFSalt is the public per-account salt the
// client uses to derive that hash.
type User struct {
	ID int64 `json:"id"`

	// Login is the unique account name.
	Login string `json:"login"`

	// AuthVerifier is HMAC-SHA256(clientAuthHash, serverHashKey), hex-encoded.
	// Sufficient to verify a login attempt, useless for deriving vault keys.
	AuthVerifier string `json:"-"`

	// KDFSalt is the per-account salt (hex-encoded, 16 bytes) handed to the
	// client so it can recompute its auth hash. Not a secret.
	KDFSalt string `json:"kdf_salt"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
}
