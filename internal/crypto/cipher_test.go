// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergei Nesterov

package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

// testIterations keeps PBKDF2 cheap in tests that encrypt many times.
// Correctness does not depend on the cost parameter.
const testIterations = 1_000

func newTestCipher() EnvelopeCipher {
	return NewEnvelopeCipherWithRandom(rand.Reader, testIterations)
}

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	cipher := newTestCipher()

	plaintexts := []string{
		"hunter2",
		"",
		"a",
		"пароль от банка",
		"🔐 multi-byte ünïcode — 秘密",
		strings.Repeat("long plaintext block ", 100),
	}

	for _, plaintext := range plaintexts {
		blob, err := cipher.Encrypt(plaintext, "master-secret")
		if err != nil {
			t.Fatalf("Encrypt(%q) error: %v", plaintext, err)
		}

		got, err := cipher.Decrypt(blob, "master-secret")
		if err != nil {
			t.Fatalf("Decrypt after Encrypt(%q) error: %v", plaintext, err)
		}
		if got != plaintext {
			t.Fatalf("round-trip mismatch: got %q, want %q", got, plaintext)
		}
	}
}

func TestDecrypt_WrongMasterSecret(t *testing.T) {
	cipher := newTestCipher()

	blob, err := cipher.Encrypt("hunter2", "correct-horse-battery-staple")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	_, err = cipher.Decrypt(blob, "wrong-secret")
	if !errors.Is(err, ErrDecryption) {
		t.Fatalf("Decrypt with wrong secret: got %v, want ErrDecryption", err)
	}
}

// Production-parameter scenario: the one flow every client runs.
func TestEncryptDecrypt_ProductionParameters(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full-cost KDF in -short mode")
	}

	cipher := NewEnvelopeCipher()

	blob, err := cipher.Encrypt("hunter2", "correct-horse-battery-staple")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	got, err := cipher.Decrypt(blob, "correct-horse-battery-staple")
	if err != nil {
		t.Fatalf("Decrypt error: %v", err)
	}
	if got != "hunter2" {
		t.Fatalf("plaintext mismatch: got %q, want %q", got, "hunter2")
	}

	if _, err = cipher.Decrypt(blob, "wrong-secret"); !errors.Is(err, ErrDecryption) {
		t.Fatalf("Decrypt with wrong secret: got %v, want ErrDecryption", err)
	}
}

func TestEncrypt_FreshSaltAndNoncePerCall(t *testing.T) {
	cipher := newTestCipher()

	seenSalts := make(map[string]bool)
	seenNonces := make(map[string]bool)
	seenBlobs := make(map[string]bool)

	for i := 0; i < 32; i++ {
		blob, err := cipher.Encrypt("same plaintext", "same secret")
		if err != nil {
			t.Fatalf("Encrypt error: %v", err)
		}
		if seenBlobs[blob] {
			t.Fatalf("identical blob produced twice")
		}
		seenBlobs[blob] = true

		env, err := ParseEnvelope(blob)
		if err != nil {
			t.Fatalf("ParseEnvelope error: %v", err)
		}
		if seenSalts[string(env.Salt)] {
			t.Fatalf("salt reused across encryptions")
		}
		if seenNonces[string(env.Nonce)] {
			t.Fatalf("nonce reused across encryptions")
		}
		seenSalts[string(env.Salt)] = true
		seenNonces[string(env.Nonce)] = true
	}
}

// Flipping any single bit of the salt, nonce, ciphertext or tag must fail
// authentication, never produce altered plaintext.
func TestDecrypt_TamperDetection(t *testing.T) {
	cipher := newTestCipher()

	blob, err := cipher.Encrypt("attack at dawn", "master-secret")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		t.Fatalf("decode blob: %v", err)
	}

	// Skip byte 0: flipping the version byte is a structural error covered
	// by TestParseEnvelope_UnknownVersion.
	for i := 1; i < len(raw); i++ {
		for bit := 0; bit < 8; bit++ {
			tampered := make([]byte, len(raw))
			copy(tampered, raw)
			tampered[i] ^= 1 << bit

			_, err := cipher.Decrypt(base64.StdEncoding.EncodeToString(tampered), "master-secret")
			if !errors.Is(err, ErrDecryption) {
				t.Fatalf("bit flip at byte %d bit %d: got %v, want ErrDecryption", i, bit, err)
			}
		}
	}
}

func TestDecrypt_Idempotent(t *testing.T) {
	cipher := newTestCipher()

	blob, err := cipher.Encrypt("stable value", "master-secret")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	first, err := cipher.Decrypt(blob, "master-secret")
	if err != nil {
		t.Fatalf("first Decrypt error: %v", err)
	}
	second, err := cipher.Decrypt(blob, "master-secret")
	if err != nil {
		t.Fatalf("second Decrypt error: %v", err)
	}
	if first != second {
		t.Fatalf("Decrypt not idempotent: %q vs %q", first, second)
	}
}

// failingReader simulates a broken platform CSPRNG.
type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy pool exhausted")
}

func TestEncrypt_RandomSourceFailureAborts(t *testing.T) {
	cipher := NewEnvelopeCipherWithRandom(failingReader{}, testIterations)

	_, err := cipher.Encrypt("plaintext", "secret")
	if !errors.Is(err, ErrRandomSourceUnavailable) {
		t.Fatalf("got %v, want ErrRandomSourceUnavailable", err)
	}
}

// seqReader emits a deterministic byte sequence so two ciphers can be driven
// identically. Test-only: never a substitute for a CSPRNG.
type seqReader struct{ next byte }

func (r *seqReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.next
		r.next++
	}
	return len(p), nil
}

func TestEncrypt_DeterministicWithSeededSource(t *testing.T) {
	a := NewEnvelopeCipherWithRandom(&seqReader{}, testIterations)
	b := NewEnvelopeCipherWithRandom(&seqReader{}, testIterations)

	blobA, err := a.Encrypt("plaintext", "secret")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}
	blobB, err := b.Encrypt("plaintext", "secret")
	if err != nil {
		t.Fatalf("Encrypt error: %v", err)
	}

	if blobA != blobB {
		t.Fatalf("same seeded source must produce identical blobs")
	}
}
