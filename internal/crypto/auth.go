package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
)

// authHashLabel domain-separates the login verifier from the encryption key.
// Changing it invalidates every stored verifier, so it is versioned.
const authHashLabel = "ciphervault/auth/v1"

// NewSalt draws a fresh account KDF salt from crypto/rand.
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRandomSourceUnavailable, err)
	}
	return salt, nil
}

// AuthHash computes the hex-encoded login verifier from a derived key. The
// server only ever sees this hash, never the key it was computed from, and
// the label keeps it unusable as decryption material.
func AuthHash(key []byte) string {
	h := sha256.New()
	h.Write(key)
	h.Write([]byte(authHashLabel))
	return hex.EncodeToString(h.Sum(nil))
}
