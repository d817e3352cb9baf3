// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-med-keeper/models"
)

// patientRepository stores patient profiles in "patient_profiles". The
// user_id column carries the one-profile-per-user constraint.
type patientRepository struct {
	documents documentStore
}

func newPatientRepository(q DBTX, builder sq.StatementBuilderType, classifier ErrorClassificator) PatientRepository {
	return &patientRepository{
		documents: documentStore{
			q:          q,
			builder:    builder,
			classifier: classifier,
			table:      (*models.Patient)(nil).TableName(),
		},
	}
}

func (r *patientRepository) row(p *models.Patient) map[string]any {
	return map[string]any{
		"id":         p.ID,
		"user_id":    p.UserID,
		"created_at": p.CreatedAt,
		"updated_at": p.UpdatedAt,
	}
}

// InsertPatient fails with [ErrRecordAlreadyExists] when the id or the user
// already has a profile.
func (r *patientRepository) InsertPatient(ctx context.Context, p *models.Patient) error {
	return r.documents.insert(ctx, p, r.row(p))
}

// SavePatient inserts the profile or replaces the stored document.
func (r *patientRepository) SavePatient(ctx context.Context, p *models.Patient) error {
	return r.documents.upsert(ctx, p, r.row(p))
}

func (r *patientRepository) FindPatientByID(ctx context.Context, id string) (*models.Patient, error) {
	return r.findOne(ctx, sq.Eq{"id": id})
}

func (r *patientRepository) FindPatientByUserID(ctx context.Context, userID string) (*models.Patient, error) {
	return r.findOne(ctx, sq.Eq{"user_id": userID})
}

func (r *patientRepository) findOne(ctx context.Context, where sq.Eq) (*models.Patient, error) {
	p := new(models.Patient)
	if err := r.documents.findOne(ctx, where, p); err != nil {
		return nil, err
	}

	return p, nil
}

// ListPatients returns one page of profiles and the total profile count.
func (r *patientRepository) ListPatients(ctx context.Context, q models.ListQuery) ([]*models.Patient, uint64, error) {
	return listDocuments[models.Patient](ctx, r.documents, nil, q.WithDefaults())
}

func (r *patientRepository) DeletePatient(ctx context.Context, id string) error {
	return r.documents.delete(ctx, id)
}
