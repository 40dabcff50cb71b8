package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashString computes HMAC-SHA256 over data with hashKey and returns the
// hex-encoded digest. The server uses it to turn the client's auth hash into
// the stored verifier, so a database dump alone cannot be replayed as a
// login without the server's key.
func HashString(data string, hashKey string) string {
	h := hmac.New(sha256.New, []byte(hashKey))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

// EqualHashes compares two hex digests in constant time.
func EqualHashes(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}
