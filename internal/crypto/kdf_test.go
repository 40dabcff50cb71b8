package crypto

import (
	"bytes"
	"testing"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	salt := bytes.Repeat([]byte{0xAB}, SaltSize)

	k1 := DeriveKey("correct horse battery staple", salt, testIterations)
	k2 := DeriveKey("correct horse battery staple", salt, testIterations)

	if len(k1) != KeySize {
		t.Fatalf("key length = %d, want %d", len(k1), KeySize)
	}
	if !bytes.Equal(k1, k2) {
		t.Fatalf("expected identical keys for identical inputs")
	}
}

func TestDeriveKey_DifferentSaltDifferentKey(t *testing.T) {
	salt1 := bytes.Repeat([]byte{0x01}, SaltSize)
	salt2 := bytes.Repeat([]byte{0x02}, SaltSize)

	k1 := DeriveKey("same secret", salt1, testIterations)
	k2 := DeriveKey("same secret", salt2, testIterations)

	if bytes.Equal(k1, k2) {
		t.Fatalf("expected different keys for different salts")
	}
}

func TestDeriveKey_DifferentSecretDifferentKey(t *testing.T) {
	salt := bytes.Repeat([]byte{0x7F}, SaltSize)

	k1 := DeriveKey("secret one", salt, testIterations)
	k2 := DeriveKey("secret two", salt, testIterations)

	if bytes.Equal(k1, k2) {
		t.Fatalf("expected different keys for different master secrets")
	}
}

func TestDeriveKey_IterationCountMatters(t *testing.T) {
	salt := bytes.Repeat([]byte{0x33}, SaltSize)

	k1 := DeriveKey("secret", salt, testIterations)
	k2 := DeriveKey("secret", salt, testIterations+1)

	if bytes.Equal(k1, k2) {
		t.Fatalf("expected different keys for different iteration counts")
	}
}

func TestDefaultKDFIterations_MeetsFloor(t *testing.T) {
	if DefaultKDFIterations < 100_000 {
		t.Fatalf("DefaultKDFIterations = %d, must be at least 100000", DefaultKDFIterations)
	}
}
