// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergei Nesterov

package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltSize is the length in bytes of the per-envelope KDF salt.
	SaltSize = 16

	// KeySize is the length in bytes of a derived AES-256 key.
	KeySize = 32

	// DefaultKDFIterations is the PBKDF2-HMAC-SHA256 iteration count used in
	// production, per the OWASP password-storage recommendation for SHA-256.
	// All call sites take the count from here or from the cipher they were
	// handed; it is never spelled out inline.
	DefaultKDFIterations = 310_000
)

// DeriveKey stretches masterSecret and salt into a 32-byte AES-256 key using
// PBKDF2-HMAC-SHA256 with the given iteration count. Deterministic: the same
// (masterSecret, salt, iterations) always yields the same key. The result
// lives only as long as the caller keeps it; it is never stored or logged.
func DeriveKey(masterSecret string, salt []byte, iterations int) []byte {
	return pbkdf2.Key([]byte(masterSecret), salt, iterations, KeySize, sha256.New)
}
