// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergei Nesterov

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

// envelopeCipher is the private implementation of [EnvelopeCipher].
type envelopeCipher struct {
	// random supplies salt and nonce bytes. Production wires crypto/rand;
	// tests may substitute a seeded reader to make round-trips reproducible.
	random io.Reader

	// iterations is the PBKDF2 cost. Stored in the struct so deployment
	// targets with different CPU budgets can tune it; within one cipher it is
	// fixed, so every envelope it writes can be opened with the same cost.
	iterations int
}

// NewEnvelopeCipher constructs an [EnvelopeCipher] wired to the operating
// system CSPRNG and [DefaultKDFIterations]. This is the production
// constructor; there is no configuration that weakens it.
func NewEnvelopeCipher() EnvelopeCipher {
	return &envelopeCipher{
		random:     rand.Reader,
		iterations: DefaultKDFIterations,
	}
}

// NewEnvelopeCipherWithRandom constructs an [EnvelopeCipher] with an
// explicit random source and PBKDF2 iteration count. Intended for tests
// that need a seeded source or a cheaper KDF; production code should use
// [NewEnvelopeCipher].
func NewEnvelopeCipherWithRandom(random io.Reader, iterations int) EnvelopeCipher {
	if iterations <= 0 {
		iterations = DefaultKDFIterations
	}
	return &envelopeCipher{
		random:     random,
		iterations: iterations,
	}
}

// Encrypt implements [EnvelopeCipher]. The plaintext is sealed with
// AES-256-GCM under a key derived from masterSecret and a fresh 16-byte
// salt; the fresh 12-byte nonce is never reused with the same key because
// both are drawn per call.
func (c *envelopeCipher) Encrypt(plaintext string, masterSecret string) (string, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(c.random, salt); err != nil {
		return "", fmt.Errorf("%w: read salt: %w", ErrRandomSourceUnavailable, err)
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(c.random, nonce); err != nil {
		return "", fmt.Errorf("%w: read nonce: %w", ErrRandomSourceUnavailable, err)
	}

	key := DeriveKey(masterSecret, salt, c.iterations)
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	// Seal appends the 16-byte tag to the ciphertext.
	sealed := gcm.Seal(nil, nonce, []byte(plaintext), nil)

	env := Envelope{
		Version:    FormatV1,
		Salt:       salt,
		Nonce:      nonce,
		Ciphertext: sealed[:len(sealed)-TagSize],
		Tag:        sealed[len(sealed)-TagSize:],
	}

	return env.Marshal(), nil
}

// Decrypt implements [EnvelopeCipher].
func (c *envelopeCipher) Decrypt(blob string, masterSecret string) (string, error) {
	env, err := ParseEnvelope(blob)
	if err != nil {
		return "", err
	}

	key := DeriveKey(masterSecret, env.Salt, c.iterations)
	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	sealed := make([]byte, 0, len(env.Ciphertext)+TagSize)
	sealed = append(sealed, env.Ciphertext...)
	sealed = append(sealed, env.Tag...)

	// An Open error here means the wrong master secret or a modified blob.
	// Either way the tag check failed and no plaintext exists to return.
	plaintext, err := gcm.Open(nil, env.Nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	return string(plaintext), nil
}

// newGCM builds the AES-256-GCM AEAD for a derived key. A failure is an
// environment problem (the key length is fixed by DeriveKey), reported as
// the fatal ErrKeyDerivation.
func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: create cipher: %w", ErrKeyDerivation, err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: create gcm: %w", ErrKeyDerivation, err)
	}

	return gcm, nil
}
