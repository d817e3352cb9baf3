// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

// KeySize is the AES-256 key length in bytes.
const KeySize = 32

// Key is a 256-bit AES key.
type Key [KeySize]byte

// ParseKey decodes a key supplied as 64 hexadecimal characters.
// Anything else fails with [ErrInvalidKeyMaterial].
func ParseKey(s string) (Key, error) {
	var k Key
	if len(s) != hex.EncodedLen(KeySize) {
		return k, fmt.Errorf("%w: expected %d hex characters, got %d", ErrInvalidKeyMaterial, hex.EncodedLen(KeySize), len(s))
	}

	if _, err := hex.Decode(k[:], []byte(s)); err != nil {
		return Key{}, fmt.Errorf("%w: key is not hexadecimal", ErrInvalidKeyMaterial)
	}

	return k, nil
}

// GenerateKey reads a fresh key from r, or from crypto/rand when r is nil.
func GenerateKey(r io.Reader) (Key, error) {
	if r == nil {
		r = rand.Reader
	}

	var k Key
	if _, err := io.ReadFull(r, k[:]); err != nil {
		return Key{}, fmt.Errorf("error generating key: %w", err)
	}

	return k, nil
}

// Hex returns the key as 64 lowercase hexadecimal characters.
func (k Key) Hex() string {
	return hex.EncodeToString(k[:])
}

// String hides the key material so that keys never end up in logs.
func (k Key) String() string {
	return "crypto.Key(REDACTED)"
}
