// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-med-keeper/internal/audit"
	"github.com/MKhiriev/go-med-keeper/models"
)

// DBTX is the part of *sql.DB and *sql.Tx the repositories use, so the same
// repository code runs inside and outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ErrorClassificator maps driver errors to store semantics.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}

// PatientRepository persists patient profiles. Designated fields must
// already be sealed; writes of plaintext fail with
// [ErrPlaintextDesignatedField].
type PatientRepository interface {
	InsertPatient(ctx context.Context, patient *models.Patient) error
	SavePatient(ctx context.Context, patient *models.Patient) error
	FindPatientByID(ctx context.Context, id string) (*models.Patient, error)
	FindPatientByUserID(ctx context.Context, userID string) (*models.Patient, error)
	ListPatients(ctx context.Context, q models.ListQuery) ([]*models.Patient, uint64, error)
	DeletePatient(ctx context.Context, id string) error
}

// MedicalSummaryRepository persists medical summaries under the same rules
// as [PatientRepository].
type MedicalSummaryRepository interface {
	InsertMedicalSummary(ctx context.Context, summary *models.MedicalSummary) error
	SaveMedicalSummary(ctx context.Context, summary *models.MedicalSummary) error
	FindMedicalSummaryByID(ctx context.Context, id string) (*models.MedicalSummary, error)
	FindMedicalSummaryByAppointmentID(ctx context.Context, appointmentID string) (*models.MedicalSummary, error)
	ListMedicalSummaries(ctx context.Context, filter models.MedicalSummaryFilter, q models.ListQuery) ([]*models.MedicalSummary, uint64, error)
	DeleteMedicalSummary(ctx context.Context, id string) error
}

// AuditRepository is the append-only audit log table.
type AuditRepository interface {
	audit.Appender
	audit.Reader
}

// TxFunc is the body of a transaction. The repositories it receives are bound
// to the transaction.
type TxFunc func(ctx context.Context, repos *Repositories) error

// Transactor runs a TxFunc inside one database transaction.
type Transactor interface {
	InTx(ctx context.Context, fn TxFunc) error
}
