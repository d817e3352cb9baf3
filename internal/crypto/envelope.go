// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/hex"
	"strings"
)

const (
	// IVSize is the length of the random initialization vector in bytes.
	IVSize = 16
	// TagSize is the length of the GCM authentication tag in bytes.
	TagSize = 16

	envelopeSeparator = ":"
	envelopeParts     = 3
)

// Envelope is the decoded form of a stored ciphertext: IV, authentication
// tag and ciphertext bytes.
type Envelope struct {
	IV         []byte
	Tag        []byte
	Ciphertext []byte
}

// String serializes the envelope as hex(iv):hex(tag):hex(ciphertext) in
// lowercase hex.
func (e Envelope) String() string {
	var b strings.Builder
	b.Grow(hex.EncodedLen(len(e.IV)+len(e.Tag)+len(e.Ciphertext)) + 2)
	b.WriteString(hex.EncodeToString(e.IV))
	b.WriteString(envelopeSeparator)
	b.WriteString(hex.EncodeToString(e.Tag))
	b.WriteString(envelopeSeparator)
	b.WriteString(hex.EncodeToString(e.Ciphertext))

	return b.String()
}

// ParseEnvelope decodes a serialized envelope. It fails with
// [ErrMalformedEnvelope] unless the value has exactly three lowercase hex
// segments with a 16-byte IV and a 16-byte tag.
func ParseEnvelope(s string) (Envelope, error) {
	parts := strings.Split(s, envelopeSeparator)
	if len(parts) != envelopeParts {
		return Envelope{}, ErrMalformedEnvelope
	}

	iv, err := decodeSegment(parts[0])
	if err != nil || len(iv) != IVSize {
		return Envelope{}, ErrMalformedEnvelope
	}
	tag, err := decodeSegment(parts[1])
	if err != nil || len(tag) != TagSize {
		return Envelope{}, ErrMalformedEnvelope
	}
	ct, err := decodeSegment(parts[2])
	if err != nil {
		return Envelope{}, ErrMalformedEnvelope
	}

	return Envelope{IV: iv, Tag: tag, Ciphertext: ct}, nil
}

// decodeSegment accepts only the lowercase form String produces.
func decodeSegment(seg string) ([]byte, error) {
	for i := 0; i < len(seg); i++ {
		if c := seg[i]; c >= 'A' && c <= 'F' {
			return nil, ErrMalformedEnvelope
		}
	}
	return hex.DecodeString(seg)
}

// IsEnvelope reports whether value splits into exactly three components on
// ":". The check is syntactic only; authenticity is verified on decrypt.
func IsEnvelope(value string) bool {
	return strings.Count(value, envelopeSeparator) == envelopeParts-1
}

// IsWellFormedEnvelope reports whether value is an envelope whose segments
// are hex of the expected lengths. Plaintext that merely contains two
// colons ("10:30:00") is not well formed.
func IsWellFormedEnvelope(value string) bool {
	if !IsEnvelope(value) {
		return false
	}
	_, err := ParseEnvelope(value)
	return err == nil
}
