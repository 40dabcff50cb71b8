// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Sergei Nesterov

package crypto

import (
	"encoding/base64"
	"fmt"
)

const (
	// NonceSize is the length in bytes of the AES-GCM nonce.
	NonceSize = 12

	// TagSize is the length in bytes of the GCM authentication tag.
	TagSize = 16

	// FormatV1 is the only envelope wire format this code reads or writes:
	//
	//	base64( version[1] ‖ salt[16] ‖ nonce[12] ‖ ciphertext[*] ‖ tag[16] )
	//
	// The leading version byte exists so the layout can evolve without
	// guessing games over stored blobs.
	FormatV1 = 0x01
)

// envelopeOverhead is the byte length of everything in a v1 blob except the
// ciphertext itself. An empty plaintext still produces a blob this long.
const envelopeOverhead = 1 + SaltSize + NonceSize + TagSize

// Envelope is one sealed secret: every field the cipher needs to re-derive
// the key and authenticate the ciphertext, and nothing else. Envelopes are
// immutable; re-encrypting a value produces a new Envelope with a fresh salt
// and nonce.
type Envelope struct {
	Version    byte
	Salt       []byte
	Nonce      []byte
	Ciphertext []byte
	Tag        []byte
}

// Marshal serializes the envelope into the canonical v1 blob: a single
// base64 string safe for a text column.
func (e Envelope) Marshal() string {
	raw := make([]byte, 0, envelopeOverhead+len(e.Ciphertext))
	raw = append(raw, e.Version)
	raw = append(raw, e.Salt...)
	raw = append(raw, e.Nonce...)
	raw = append(raw, e.Ciphertext...)
	raw = append(raw, e.Tag...)
	return base64.StdEncoding.EncodeToString(raw)
}

// ParseEnvelope decodes a stored blob back into an Envelope by fixed-offset
// slicing. It returns [ErrInvalidEnvelope] (wrapped with the concrete cause)
// for corrupt base64, a blob too short to hold all fixed-length fields, or a
// version byte this code does not understand. Parsing performs no
// cryptography: a blob that parses cleanly can still fail authentication.
func ParseEnvelope(blob string) (Envelope, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return Envelope{}, fmt.Errorf("%w: decode base64: %w", ErrInvalidEnvelope, err)
	}

	if len(raw) < envelopeOverhead {
		return Envelope{}, fmt.Errorf("%w: blob is %d bytes, need at least %d", ErrInvalidEnvelope, len(raw), envelopeOverhead)
	}

	if raw[0] != FormatV1 {
		return Envelope{}, fmt.Errorf("%w: unknown format version 0x%02x", ErrInvalidEnvelope, raw[0])
	}

	e := Envelope{
		Version:    raw[0],
		Salt:       raw[1 : 1+SaltSize],
		Nonce:      raw[1+SaltSize : 1+SaltSize+NonceSize],
		Ciphertext: raw[1+SaltSize+NonceSize : len(raw)-TagSize],
		Tag:        raw[len(raw)-TagSize:],
	}

	return e, nil
}
