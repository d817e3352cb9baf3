// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

// Codec seals and opens single string values with AES-256-GCM under one
// process-wide key. It holds no mutable state after construction and is
// safe for concurrent use.
type Codec struct {
	aead   cipher.AEAD
	random io.Reader
}

// NewCodec builds a codec for key. The GCM nonce is 16 bytes long to match
// the stored envelope format.
func NewCodec(key Key) (*Codec, error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKeyMaterial, err)
	}

	aead, err := cipher.NewGCMWithNonceSize(block, IVSize)
	if err != nil {
		return nil, fmt.Errorf("error creating GCM: %w", err)
	}

	return &Codec{aead: aead, random: rand.Reader}, nil
}

// NewCodecFromHex parses a 64-character hex key and builds a codec for it.
func NewCodecFromHex(hexKey string) (*Codec, error) {
	key, err := ParseKey(hexKey)
	if err != nil {
		return nil, err
	}

	return NewCodec(key)
}

// Encrypt seals plaintext under a fresh random IV and returns the serialized
// envelope. Two calls with the same plaintext return different envelopes.
func (c *Codec) Encrypt(plaintext string) (string, error) {
	env, err := c.Seal([]byte(plaintext))
	if err != nil {
		return "", err
	}

	return env.String(), nil
}

// Seal encrypts plaintext and returns the envelope components.
func (c *Codec) Seal(plaintext []byte) (Envelope, error) {
	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(c.random, iv); err != nil {
		return Envelope{}, fmt.Errorf("%w: %w", ErrRandomSource, err)
	}

	// Seal appends the tag to the ciphertext.
	sealed := c.aead.Seal(nil, iv, plaintext, nil)
	split := len(sealed) - TagSize

	return Envelope{
		IV:         iv,
		Tag:        sealed[split:],
		Ciphertext: sealed[:split],
	}, nil
}

// Decrypt parses a serialized envelope and returns the plaintext.
// It fails with [ErrMalformedEnvelope] on a bad shape and with
// [ErrAuthenticationFailed] when the tag does not verify.
func (c *Codec) Decrypt(envelope string) (string, error) {
	env, err := ParseEnvelope(envelope)
	if err != nil {
		return "", err
	}

	plaintext, err := c.Open(env)
	if err != nil {
		return "", err
	}

	return string(plaintext), nil
}

// Open verifies and decrypts an envelope.
func (c *Codec) Open(env Envelope) ([]byte, error) {
	if len(env.IV) != IVSize || len(env.Tag) != TagSize {
		return nil, ErrMalformedEnvelope
	}

	sealed := make([]byte, 0, len(env.Ciphertext)+TagSize)
	sealed = append(sealed, env.Ciphertext...)
	sealed = append(sealed, env.Tag...)

	plaintext, err := c.aead.Open(nil, env.IV, sealed, nil)
	if err != nil {
		// tag mismatch
		return nil, ErrAuthenticationFailed
	}

	return plaintext, nil
}
