package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashString_DeterministicAndKeyed(t *testing.T) {
	a := HashString("auth-hash-hex", "server-key")
	b := HashString("auth-hash-hex", "server-key")
	assert.Equal(t, a, b)

	c := HashString("auth-hash-hex", "other-key")
	assert.NotEqual(t, a, c)

	d := HashString("different-data", "server-key")
	assert.NotEqual(t, a, d)
}

func TestEqualHashes(t *testing.T) {
	h := HashString("data", "key")
	assert.True(t, EqualHashes(h, h))
	assert.False(t, EqualHashes(h, HashString("data2", "key")))
}

func TestNewClientSideID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewClientSideID()
		assert.NotEmpty(t, id)
		assert.False(t, seen[id])
		seen[id] = true
	}
}
