// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package projector builds the outward representation of protected records
// for a given viewer.
//
// Viewers in an authorized tier get designated fields decrypted; everyone
// else gets [EncryptedMarker] in place of every designated value, list items
// included, so field presence and list length survive but content does not.
// Non-designated fields pass through unchanged. Projection works on a deep
// copy and never modifies the stored record, so it is safe to call
// concurrently on the same record.
package projector

import (
	"context"

	"github.com/MKhiriev/go-med-keeper/models"
)

// EncryptedMarker replaces designated content in views for unauthorized
// tiers.
const EncryptedMarker = "[ENCRYPTED]"

// Revealer decrypts the designated fields of a record in place, degrading
// individual failures to a marker. [*guard.Guard] implements it.
type Revealer interface {
	RevealInPlace(ctx context.Context, rec models.Record)
}

// Project returns the view of rec for a viewer at tier. rec must be non-nil.
func Project[T models.Cloner[T]](ctx context.Context, r Revealer, rec T, tier models.AccessTier) T {
	view := rec.Clone()

	if tier.Authorized() {
		r.RevealInPlace(ctx, view)
		return view
	}

	Redact(view)
	return view
}

// ProjectFor resolves the viewer's tier against rec and projects it.
func ProjectFor[T models.Cloner[T]](ctx context.Context, r Revealer, rec T, viewer models.Viewer) T {
	return Project(ctx, r, rec, rec.TierFor(viewer))
}

// ProjectAll projects every record for viewer, resolving the tier per record.
func ProjectAll[T models.Cloner[T]](ctx context.Context, r Revealer, recs []T, viewer models.Viewer) []T {
	out := make([]T, len(recs))
	for i, rec := range recs {
		out[i] = ProjectFor(ctx, r, rec, viewer)
	}
	return out
}

// Redact overwrites, in place, every designated value of rec and every
// designated list item with [EncryptedMarker]. Empty scalars are marked too,
// so a view never shows which protected fields are unset.
func Redact(rec models.Record) {
	for _, field := range rec.SensitiveFields() {
		if field.IsList() {
			items := *field.Items
			for i := range items {
				items[i] = EncryptedMarker
			}
			continue
		}
		*field.Value = EncryptedMarker
	}
}
