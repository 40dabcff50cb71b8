package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/envelope_cipher_mock.go -package=mock

// EnvelopeCipher seals vault secrets on the client and opens them again.
// It is the only encryption path in the application: one algorithm
// (AES-256-GCM over a PBKDF2-derived key), one wire format, no fallbacks.
//
// Every Encrypt call draws a fresh salt and nonce from the cipher's secure
// random source, so encrypting the same plaintext twice never yields the
// same blob. Implementations are stateless and safe for concurrent use.
type EnvelopeCipher interface {
	// Encrypt seals plaintext under masterSecret and returns the canonical
	// v1 envelope blob. Fails with ErrRandomSourceUnavailable if the random
	// source cannot supply salt or nonce bytes, or ErrKeyDerivation if the
	// AEAD cannot be constructed. Nothing is persisted.
	Encrypt(plaintext string, masterSecret string) (string, error)

	// Decrypt parses blob, re-derives the key from the stored salt and
	// masterSecret, and opens the ciphertext. Returns the original plaintext
	// byte for byte, ErrInvalidEnvelope for structurally broken blobs, or
	// ErrDecryption when authentication fails (wrong secret or tampering).
	// It never returns garbage plaintext.
	Decrypt(blob string, masterSecret string) (string, error)
}
