package crypto

import (
	"encoding/hex"
	"testing"
)

func TestNewSalt(t *testing.T) {
	a, err := NewSalt()
	if err != nil {
		t.Fatalf("NewSalt: %v", err)
	}
	if len(a) != SaltSize {
		t.Fatalf("salt length = %d, want %d", len(a), SaltSize)
	}

	b, err := NewSalt()
	if err != nil {
		t.Fatalf("NewSalt: %v", err)
	}
	if string(a) == string(b) {
		t.Fatal("two salts are identical")
	}
}

func TestAuthHash(t *testing.T) {
	salt := make([]byte, SaltSize)
	key := DeriveKey("hunter2", salt, 1_000)

	h1 := AuthHash(key)
	h2 := AuthHash(key)
	if h1 != h2 {
		t.Fatalf("AuthHash is not deterministic: %q vs %q", h1, h2)
	}

	raw, err := hex.DecodeString(h1)
	if err != nil {
		t.Fatalf("AuthHash is not hex: %v", err)
	}
	if len(raw) != 32 {
		t.Fatalf("AuthHash length = %d bytes, want 32", len(raw))
	}

	other := AuthHash(DeriveKey("hunter3", salt, 1_000))
	if other == h1 {
		t.Fatal("different keys produced the same auth hash")
	}
}

// The verifier must not equal any obvious hash of the key alone; the label
// has to enter the digest.
func TestAuthHashUsesLabel(t *testing.T) {
	key := make([]byte, KeySize)
	if AuthHash(key) == AuthHash(key[:KeySize-1]) {
		t.Fatal("truncated key produced the same auth hash")
	}
}
