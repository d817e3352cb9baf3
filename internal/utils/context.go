// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, request origin extraction, JWT token generation
// and validation, and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-med-keeper/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ViewerCtxKey is the key used to store the authenticated viewer in the
// context. Used together with GetViewerFromContext.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.ViewerCtxKey, models.Viewer{UserID: "u-1", Role: models.RoleDoctor})
var ViewerCtxKey = contextKey("viewer")

// RequestContextCtxKey is the key of the request origin (client IP and user
// agent) that ends up in audit entries.
var RequestContextCtxKey = contextKey("requestContext")

// GetViewerFromContext retrieves the authenticated viewer from the context.
//
// Returns the viewer and an ok flag:
//   - ok == true: value is found and has the models.Viewer type
//   - ok == false: value is missing or has an unexpected type
func GetViewerFromContext(ctx context.Context) (models.Viewer, bool) {
	viewer, ok := ctx.Value(ViewerCtxKey).(models.Viewer)
	return viewer, ok
}

// WithViewer returns a copy of ctx carrying viewer.
func WithViewer(ctx context.Context, viewer models.Viewer) context.Context {
	return context.WithValue(ctx, ViewerCtxKey, viewer)
}

// GetRequestContext returns the request origin stored in ctx, or the zero
// value when there is none.
func GetRequestContext(ctx context.Context) models.RequestContext {
	rc, _ := ctx.Value(RequestContextCtxKey).(models.RequestContext)
	return rc
}

// WithRequestContext returns a copy of ctx carrying rc.
func WithRequestContext(ctx context.Context, rc models.RequestContext) context.Context {
	return context.WithValue(ctx, RequestContextCtxKey, rc)
}
