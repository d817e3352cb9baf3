// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package guard

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-med-keeper/internal/crypto"
	"github.com/MKhiriev/go-med-keeper/models"
	"github.com/zoobzio/capitan"
)

// Signals emitted by the guard. Listeners attach through capitan; alerting
// integrations hook SignalDecryptFailed.
var (
	SignalProtected     = capitan.NewSignal("phi.protect.complete", "Designated fields encrypted before write")
	SignalDecryptFailed = capitan.NewSignal("phi.decrypt.failed", "Designated field could not be decrypted")
)

// Field keys.
var (
	KeyEntityType     = capitan.NewStringKey("entity_type")
	KeyEntityID       = capitan.NewStringKey("entity_id")
	KeyFieldPath      = capitan.NewStringKey("field_path")
	KeyErrorClass     = capitan.NewStringKey("error_class")
	KeyEncryptedCount = capitan.NewIntKey("encrypted_count")
	KeyError          = capitan.NewErrorKey("error")
)

func emitProtected(ctx context.Context, rec models.Record, encrypted int) {
	capitan.Emit(ctx, SignalProtected,
		KeyEntityType.Field(string(rec.EntityType())),
		KeyEntityID.Field(rec.EntityID()),
		KeyEncryptedCount.Field(encrypted),
	)
}

func emitDecryptFailed(ctx context.Context, rec models.Record, path string, err error) {
	capitan.Error(ctx, SignalDecryptFailed,
		KeyEntityType.Field(string(rec.EntityType())),
		KeyEntityID.Field(rec.EntityID()),
		KeyFieldPath.Field(path),
		KeyErrorClass.Field(errorClass(err)),
		KeyError.Field(err),
	)
}

// errorClass maps codec errors to a stable label.
func errorClass(err error) string {
	switch {
	case errors.Is(err, crypto.ErrAuthenticationFailed):
		return "authentication_failed"
	case errors.Is(err, crypto.ErrMalformedEnvelope):
		return "malformed_envelope"
	default:
		return "unknown"
	}
}
