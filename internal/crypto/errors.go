// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Sentinel errors of the cipher codec. Messages never carry key, plaintext
// or ciphertext material; match them with [errors.Is].
var (
	// ErrMalformedEnvelope is returned when a value does not have the
	// iv:tag:ciphertext shape or one of its segments is not valid hex of the
	// expected length.
	ErrMalformedEnvelope = errors.New("malformed ciphertext envelope")

	// ErrAuthenticationFailed is returned when the GCM tag does not verify:
	// the envelope was tampered with, corrupted, or sealed under another key.
	ErrAuthenticationFailed = errors.New("ciphertext authentication failed")

	// ErrInvalidKeyMaterial is returned when the configured key is not a
	// 64-character hexadecimal string.
	ErrInvalidKeyMaterial = errors.New("invalid encryption key material")

	// ErrRandomSource is returned when the IV cannot be read from the random
	// source.
	ErrRandomSource = errors.New("failed to read random initialization vector")
)
