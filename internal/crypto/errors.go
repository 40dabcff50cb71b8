package crypto

import "errors"

// Sentinel errors returned by the crypto core. Callers match them with
// [errors.Is]; the presentation layer decides user-facing wording.
var (
	// ErrKeyDerivation is returned when the key-derivation primitive cannot
	// produce a key. Fatal, non-retryable: it indicates a broken environment,
	// not bad user input.
	ErrKeyDerivation = errors.New("key derivation failed")

	// ErrDecryption is returned when authenticated decryption fails: wrong
	// master secret, flipped bits in ciphertext or nonce, or a forged tag.
	// The plaintext is never returned in this case. Expected and recoverable
	// at the UI layer; must not be retried automatically.
	ErrDecryption = errors.New("cannot decrypt: wrong master secret or tampered data")

	// ErrInvalidEnvelope is returned when a stored blob is structurally
	// broken before any cryptography runs: corrupt base64, truncated fields,
	// or an unknown format version. Treated as data corruption and surfaced,
	// never silently repaired.
	ErrInvalidEnvelope = errors.New("invalid envelope blob")

	// ErrRandomSourceUnavailable is returned when the secure random source
	// cannot supply salt or nonce bytes. The encrypt operation aborts; there
	// is no fallback to a non-cryptographic generator.
	ErrRandomSourceUnavailable = errors.New("secure random source unavailable")
)
