// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-med-keeper/models"
)

// medicalSummaryRepository stores summaries in "medical_summaries". Each
// appointment has at most one summary.
type medicalSummaryRepository struct {
	documents documentStore
}

func newMedicalSummaryRepository(q DBTX, builder sq.StatementBuilderType, classifier ErrorClassificator) MedicalSummaryRepository {
	return &medicalSummaryRepository{
		documents: documentStore{
			q:          q,
			builder:    builder,
			classifier: classifier,
			table:      (*models.MedicalSummary)(nil).TableName(),
		},
	}
}

func (r *medicalSummaryRepository) row(m *models.MedicalSummary) map[string]any {
	return map[string]any{
		"id":              m.ID,
		"appointment_id":  m.AppointmentID,
		"patient_user_id": m.PatientUserID,
		"doctor_user_id":  m.DoctorUserID,
		"created_at":      m.CreatedAt,
		"updated_at":      m.UpdatedAt,
	}
}

func (r *medicalSummaryRepository) InsertMedicalSummary(ctx context.Context, m *models.MedicalSummary) error {
	return r.documents.insert(ctx, m, r.row(m))
}

func (r *medicalSummaryRepository) SaveMedicalSummary(ctx context.Context, m *models.MedicalSummary) error {
	return r.documents.upsert(ctx, m, r.row(m))
}

func (r *medicalSummaryRepository) FindMedicalSummaryByID(ctx context.Context, id string) (*models.MedicalSummary, error) {
	return r.findOne(ctx, sq.Eq{"id": id})
}

func (r *medicalSummaryRepository) FindMedicalSummaryByAppointmentID(ctx context.Context, appointmentID string) (*models.MedicalSummary, error) {
	return r.findOne(ctx, sq.Eq{"appointment_id": appointmentID})
}

func (r *medicalSummaryRepository) findOne(ctx context.Context, where sq.Eq) (*models.MedicalSummary, error) {
	m := new(models.MedicalSummary)
	if err := r.documents.findOne(ctx, where, m); err != nil {
		return nil, err
	}

	return m, nil
}

// ListMedicalSummaries returns one page of the summaries matching filter and
// the number of summaries that match.
func (r *medicalSummaryRepository) ListMedicalSummaries(ctx context.Context, filter models.MedicalSummaryFilter, q models.ListQuery) ([]*models.MedicalSummary, uint64, error) {
	where := sq.Eq{}
	if filter.PatientUserID != "" {
		where["patient_user_id"] = filter.PatientUserID
	}
	if filter.DoctorUserID != "" {
		where["doctor_user_id"] = filter.DoctorUserID
	}

	return listDocuments[models.MedicalSummary](ctx, r.documents, where, q.WithDefaults())
}

func (r *medicalSummaryRepository) DeleteMedicalSummary(ctx context.Context, id string) error {
	return r.documents.delete(ctx, id)
}
