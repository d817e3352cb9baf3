// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package guard

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-med-keeper/internal/crypto"
	"github.com/MKhiriev/go-med-keeper/internal/logger"
	"github.com/MKhiriev/go-med-keeper/models"
)

// DecryptionErrorMarker replaces a designated value that failed to decrypt
// on a best-effort read path.
const DecryptionErrorMarker = "[DECRYPTION ERROR]"

// Guard applies a [crypto.Cipher] to the designated fields of records.
// It is stateless apart from the cipher and safe for concurrent use.
type Guard struct {
	cipher crypto.Cipher
	logger *logger.Logger
}

// New returns a guard using cipher.
func New(cipher crypto.Cipher, logger *logger.Logger) *Guard {
	return &Guard{
		cipher: cipher,
		logger: logger,
	}
}

// Protect encrypts, in place, every designated value of rec that is
// non-empty and not already a well-formed envelope. It returns the number of
// values it encrypted. On error rec may be partially encrypted and must not
// be persisted.
func (g *Guard) Protect(ctx context.Context, rec models.Record) (int, error) {
	log := logger.FromContext(ctx)

	encrypted := 0
	for _, field := range rec.SensitiveFields() {
		if field.IsList() {
			items := *field.Items
			for i, item := range items {
				sealed, changed, err := g.seal(item)
				if err != nil {
					log.Err(err).
						Str("func", "Guard.Protect").
						Str("entity_type", string(rec.EntityType())).
						Str("field", field.Path).
						Int("item", i).
						Msg("failed to encrypt designated list item")
					return encrypted, fmt.Errorf("%w: %s[%d]: %w", ErrProtectFailed, field.Path, i, err)
				}
				if changed {
					items[i] = sealed
					encrypted++
				}
			}
			continue
		}

		sealed, changed, err := g.seal(*field.Value)
		if err != nil {
			log.Err(err).
				Str("func", "Guard.Protect").
				Str("entity_type", string(rec.EntityType())).
				Str("field", field.Path).
				Msg("failed to encrypt designated field")
			return encrypted, fmt.Errorf("%w: %s: %w", ErrProtectFailed, field.Path, err)
		}
		if changed {
			*field.Value = sealed
			encrypted++
		}
	}

	emitProtected(ctx, rec, encrypted)

	return encrypted, nil
}

// seal encrypts value unless it is empty or already an envelope.
func (g *Guard) seal(value string) (string, bool, error) {
	if value == "" || crypto.IsWellFormedEnvelope(value) {
		return value, false, nil
	}

	sealed, err := g.cipher.Encrypt(value)
	if err != nil {
		return "", false, err
	}

	return sealed, true, nil
}

// Reveal decrypts one designated value of rec. Empty values stay empty.
// When decryption fails the failure is logged and signalled and
// [DecryptionErrorMarker] is returned instead.
func (g *Guard) Reveal(ctx context.Context, rec models.Record, path, value string) string {
	plain, err := g.Open(ctx, rec, path, value)
	if err != nil {
		logger.FromContext(ctx).Warn().
			Str("func", "Guard.Reveal").
			Str("entity_type", string(rec.EntityType())).
			Str("entity_id", rec.EntityID()).
			Str("field", path).
			Str("error_class", errorClass(err)).
			Msg("designated field could not be decrypted")
		emitDecryptFailed(ctx, rec, path, err)

		return DecryptionErrorMarker
	}

	return plain
}

// Open strictly decrypts one designated value of rec.
func (g *Guard) Open(ctx context.Context, rec models.Record, path, value string) (string, error) {
	if value == "" {
		return "", nil
	}

	plain, err := g.cipher.Decrypt(value)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrOpenFailed, path, err)
	}

	return plain, nil
}

// DecryptField returns the decrypted value of the scalar designated field at
// path, or the decryption error marker. Unknown or list paths return
// [ErrUnknownField].
func (g *Guard) DecryptField(ctx context.Context, rec models.Record, path string) (string, error) {
	for _, field := range rec.SensitiveFields() {
		if field.Path == path && !field.IsList() {
			return g.Reveal(ctx, rec, path, *field.Value), nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrUnknownField, path)
}

// DecryptItems is DecryptField for list-valued designated fields. Each item
// degrades to the marker independently.
func (g *Guard) DecryptItems(ctx context.Context, rec models.Record, path string) ([]string, error) {
	for _, field := range rec.SensitiveFields() {
		if field.Path == path && field.IsList() {
			out := make([]string, len(*field.Items))
			for i, item := range *field.Items {
				out[i] = g.Reveal(ctx, rec, fmt.Sprintf("%s[%d]", path, i), item)
			}
			return out, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownField, path)
}

// RevealInPlace decrypts every designated value of rec in place, degrading
// failures to the marker.
func (g *Guard) RevealInPlace(ctx context.Context, rec models.Record) {
	for _, field := range rec.SensitiveFields() {
		if field.IsList() {
			items := *field.Items
			for i, item := range items {
				items[i] = g.Reveal(ctx, rec, fmt.Sprintf("%s[%d]", field.Path, i), item)
			}
			continue
		}
		*field.Value = g.Reveal(ctx, rec, field.Path, *field.Value)
	}
}

// OpenInPlace strictly decrypts every designated value of rec in place and
// stops at the first failure.
func (g *Guard) OpenInPlace(ctx context.Context, rec models.Record) error {
	for _, field := range rec.SensitiveFields() {
		if field.IsList() {
			items := *field.Items
			for i, item := range items {
				plain, err := g.Open(ctx, rec, fmt.Sprintf("%s[%d]", field.Path, i), item)
				if err != nil {
					return err
				}
				items[i] = plain
			}
			continue
		}

		plain, err := g.Open(ctx, rec, field.Path, *field.Value)
		if err != nil {
			return err
		}
		*field.Value = plain
	}

	return nil
}
