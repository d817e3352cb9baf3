// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-med-keeper/internal/audit"
	"github.com/MKhiriev/go-med-keeper/models"
)

// PHIService is the caller-facing surface of the protection subsystem.
type PHIService interface {
	// Protect encrypts the designated fields of rec in place. It is called
	// before every persistence write.
	Protect(ctx context.Context, rec models.Record) error

	// Open strictly decrypts the designated fields of rec in place. Any
	// failure is returned; used where a corrupted value must fail the call.
	Open(ctx context.Context, rec models.Record) error

	// Reveal returns the view of rec for a viewer at tier. rec is left
	// untouched.
	Reveal(ctx context.Context, rec models.Record, tier models.AccessTier) (models.Record, error)

	// RevealPatients and RevealMedicalSummaries project a page of records
	// for viewer, resolving the tier of every record separately.
	RevealPatients(ctx context.Context, recs []*models.Patient, viewer models.Viewer) []*models.Patient
	RevealMedicalSummaries(ctx context.Context, recs []*models.MedicalSummary, viewer models.Viewer) []*models.MedicalSummary

	// Audit appends the entry describing m through w, which must be bound
	// to the transaction of the write being audited.
	Audit(ctx context.Context, w audit.Appender, m models.Mutation) (*models.AuditEntry, error)

	// History returns the audit entries of one entity, newest first.
	History(ctx context.Context, entityType models.EntityType, entityID string) ([]models.AuditEntry, error)
}

type PatientService interface {
	Create(ctx context.Context, viewer models.Viewer, patient models.Patient) (*models.Patient, error)
	Update(ctx context.Context, viewer models.Viewer, id string, patch models.PatientPatch) (*models.Patient, error)
	Delete(ctx context.Context, viewer models.Viewer, id string) error
	Get(ctx context.Context, viewer models.Viewer, id string) (*models.Patient, error)
	GetByUserID(ctx context.Context, viewer models.Viewer, userID string) (*models.Patient, error)
	List(ctx context.Context, viewer models.Viewer, q models.ListQuery) (models.Page[*models.Patient], error)
	History(ctx context.Context, viewer models.Viewer, id string) ([]models.AuditEntry, error)
}

type MedicalSummaryService interface {
	Create(ctx context.Context, viewer models.Viewer, summary models.MedicalSummary) (*models.MedicalSummary, error)
	Update(ctx context.Context, viewer models.Viewer, id string, patch models.MedicalSummaryPatch) (*models.MedicalSummary, error)
	Delete(ctx context.Context, viewer models.Viewer, id string) error
	Get(ctx context.Context, viewer models.Viewer, id string) (*models.MedicalSummary, error)
	GetByAppointmentID(ctx context.Context, viewer models.Viewer, appointmentID string) (*models.MedicalSummary, error)
	List(ctx context.Context, viewer models.Viewer, q models.ListQuery) (models.Page[*models.MedicalSummary], error)
	ListByPatient(ctx context.Context, viewer models.Viewer, patientUserID string, q models.ListQuery) (models.Page[*models.MedicalSummary], error)
	ListByDoctor(ctx context.Context, viewer models.Viewer, doctorUserID string, q models.ListQuery) (models.Page[*models.MedicalSummary], error)
	History(ctx context.Context, viewer models.Viewer, id string) ([]models.AuditEntry, error)
}

type AuthService interface {
	CreateToken(ctx context.Context, viewer models.Viewer) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.BuildInfo
}

// PatientServiceWrapper defines middleware composition for PatientService.
// Implementations wrap an existing PatientService to add behavior such as
// validation.
type PatientServiceWrapper interface {
	Wrap(PatientService) PatientService
}

// MedicalSummaryServiceWrapper is PatientServiceWrapper for
// MedicalSummaryService.
type MedicalSummaryServiceWrapper interface {
	Wrap(MedicalSummaryService) MedicalSummaryService
}
