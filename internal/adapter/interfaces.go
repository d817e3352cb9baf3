// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the HTTP client of the go-med-keeper record API.
//
// [ServerAdapter] hides the transport from operator tooling. Record views
// come back already projected for the token's viewer: fields the viewer may
// not read carry the encrypted marker instead of a value.
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel errors in
// errors.go so that callers can use [errors.Is] (e.g. [ErrForbidden] for
// 403, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-med-keeper/models"
)

// ServerAdapter defines the read and token operations of the record API.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every authenticated
	// request.
	SetToken(token string)

	// Token returns the bearer token currently held, or "".
	Token() string

	// Version returns the plain-text version of the server.
	Version(ctx context.Context) (string, error)

	// BuildInfo returns the server's build metadata.
	BuildInfo(ctx context.Context) (models.BuildInfo, error)

	// Patient fetches one patient profile by id.
	Patient(ctx context.Context, id string) (models.Patient, error)

	// PatientByUserID fetches the profile owned by userID.
	PatientByUserID(ctx context.Context, userID string) (models.Patient, error)

	// MedicalSummary fetches one medical summary by id.
	MedicalSummary(ctx context.Context, id string) (models.MedicalSummary, error)

	// MedicalSummaryByAppointmentID fetches the summary of an appointment.
	MedicalSummaryByAppointmentID(ctx context.Context, appointmentID string) (models.MedicalSummary, error)

	// AuditHistory returns the audit entries of one entity, newest first.
	// Administrators only.
	AuditHistory(ctx context.Context, entityType models.EntityType, entityID string) ([]models.AuditEntry, error)

	// IssueToken asks the server to mint a token for viewer.
	// Administrators only.
	IssueToken(ctx context.Context, viewer models.Viewer) (string, error)
}
