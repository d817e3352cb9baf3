// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_mock.go -package=mock

// Cipher encrypts and decrypts single string values into and out of the
// serialized envelope form. [*Codec] is the production implementation.
type Cipher interface {
	// Encrypt returns a fresh envelope for plaintext.
	Encrypt(plaintext string) (string, error)

	// Decrypt returns the plaintext sealed in envelope, or
	// [ErrMalformedEnvelope] / [ErrAuthenticationFailed].
	Decrypt(envelope string) (string, error)
}

var _ Cipher = (*Codec)(nil)
