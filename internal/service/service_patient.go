// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-med-keeper/internal/logger"
	"github.com/MKhiriev/go-med-keeper/internal/store"
	"github.com/MKhiriev/go-med-keeper/internal/utils"
	"github.com/MKhiriev/go-med-keeper/models"
)

// patientService runs the patient profile data flow: designated fields are
// encrypted before every write, every write is audited in the same
// transaction and every read is projected for the viewer.
type patientService struct {
	transactor store.Transactor

	// patients is bound to the connection pool and serves plain reads.
	patients store.PatientRepository

	phi PHIService
	ids utils.IDGenerator
	now func() time.Time

	logger *logger.Logger
}

func NewPatientService(storages *store.Storages, phi PHIService, ids utils.IDGenerator, logger *logger.Logger) PatientService {
	return &patientService{
		transactor: storages.Transactor,
		patients:   storages.Repositories.Patients,
		phi:        phi,
		ids:        ids,
		now:        time.Now,
		logger:     logger,
	}
}

// Create stores a new patient profile. Patients create their own profile;
// administrators create one for any user. Each user owns at most one
// profile.
func (s *patientService) Create(ctx context.Context, viewer models.Viewer, patient models.Patient) (*models.Patient, error) {
	log := logger.FromContext(ctx)

	switch viewer.Role {
	case models.RolePatient:
		if patient.UserID == "" {
			patient.UserID = viewer.UserID
		}
		if patient.UserID != viewer.UserID {
			return nil, ErrForbidden
		}
	case models.RoleAdmin:
		if patient.UserID == "" {
			return nil, fmt.Errorf("%w: user id is required", ErrInvalidDataProvided)
		}
	default:
		return nil, ErrForbidden
	}

	now := s.now().UTC()
	rec := patient.Clone()
	rec.ID = s.ids.Generate()
	rec.CreatedAt, rec.UpdatedAt = now, now
	if rec.MedicalHistory == nil {
		rec.MedicalHistory = []string{}
	}

	changes := patientCreateChanges(rec)

	saved, err := store.WithMutation(ctx, s.transactor, func(ctx context.Context, repos *store.Repositories) (*models.Patient, error) {
		_, err := repos.Patients.FindPatientByUserID(ctx, rec.UserID)
		switch {
		case err == nil:
			return nil, ErrPatientProfileExists
		case !errors.Is(err, store.ErrRecordNotFound):
			return nil, err
		}

		if err = s.phi.Protect(ctx, rec); err != nil {
			return nil, err
		}
		if err = repos.Patients.InsertPatient(ctx, rec); err != nil {
			if errors.Is(err, store.ErrRecordAlreadyExists) {
				return nil, ErrPatientProfileExists
			}
			return nil, err
		}

		if _, err = s.phi.Audit(ctx, repos.Audit, models.Mutation{
			EntityType: models.EntityPatient,
			EntityID:   rec.ID,
			Action:     models.ActionCreate,
			ActorID:    viewer.UserID,
			Changes:    changes,
			Context:    utils.GetRequestContext(ctx),
		}); err != nil {
			return nil, err
		}

		return rec, nil
	})
	if err != nil {
		log.Err(err).Str("func", "patientService.Create").Str("user_id", patient.UserID).Msg("patient profile creation failed")
		return nil, err
	}

	return reveal(ctx, s.phi, saved, viewer)
}

// Update applies patch to the profile. Only members that actually change
// are written and audited; a patch changing nothing writes nothing.
func (s *patientService) Update(ctx context.Context, viewer models.Viewer, id string, patch models.PatientPatch) (*models.Patient, error) {
	log := logger.FromContext(ctx)

	saved, err := store.WithMutation(ctx, s.transactor, func(ctx context.Context, repos *store.Repositories) (*models.Patient, error) {
		stored, err := repos.Patients.FindPatientByID(ctx, id)
		if err != nil {
			return nil, mapPatientError(err)
		}
		if !canEditPatient(viewer, stored) {
			return nil, ErrForbidden
		}

		old := stored.Clone()
		if err = s.phi.Open(ctx, old); err != nil {
			return nil, err
		}

		updated := stored.Clone()
		changes := applyPatientPatch(old, updated, patch)
		if len(changes) == 0 {
			return stored, nil
		}
		updated.UpdatedAt = s.now().UTC()

		if err = s.phi.Protect(ctx, updated); err != nil {
			return nil, err
		}
		if err = repos.Patients.SavePatient(ctx, updated); err != nil {
			return nil, err
		}

		if _, err = s.phi.Audit(ctx, repos.Audit, models.Mutation{
			EntityType: models.EntityPatient,
			EntityID:   updated.ID,
			Action:     models.ActionUpdate,
			ActorID:    viewer.UserID,
			Changes:    changes,
			Context:    utils.GetRequestContext(ctx),
		}); err != nil {
			return nil, err
		}

		return updated, nil
	})
	if err != nil {
		log.Err(err).Str("func", "patientService.Update").Str("patient_id", id).Msg("patient profile update failed")
		return nil, err
	}

	return reveal(ctx, s.phi, saved, viewer)
}

// Delete removes the profile. Only administrators may delete profiles. The
// audit entry is written before the record is removed.
func (s *patientService) Delete(ctx context.Context, viewer models.Viewer, id string) error {
	if !viewer.IsAdmin() {
		return ErrForbidden
	}

	err := s.transactor.InTx(ctx, func(ctx context.Context, repos *store.Repositories) error {
		stored, err := repos.Patients.FindPatientByID(ctx, id)
		if err != nil {
			return mapPatientError(err)
		}

		if _, err = s.phi.Audit(ctx, repos.Audit, models.Mutation{
			EntityType: models.EntityPatient,
			EntityID:   stored.ID,
			Action:     models.ActionDelete,
			ActorID:    viewer.UserID,
			Changes: []models.Change{
				{Field: "userId", OldValue: stored.UserID},
				{Field: "age", OldValue: stored.Age},
				{Field: "bloodGroup", OldValue: stored.BloodGroup},
			},
			Context: utils.GetRequestContext(ctx),
		}); err != nil {
			return err
		}

		return mapPatientError(repos.Patients.DeletePatient(ctx, stored.ID))
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "patientService.Delete").Str("patient_id", id).Msg("patient profile deletion failed")
		return err
	}

	return nil
}

func (s *patientService) Get(ctx context.Context, viewer models.Viewer, id string) (*models.Patient, error) {
	stored, err := s.patients.FindPatientByID(ctx, id)
	if err != nil {
		return nil, mapPatientError(err)
	}

	return reveal(ctx, s.phi, stored, viewer)
}

func (s *patientService) GetByUserID(ctx context.Context, viewer models.Viewer, userID string) (*models.Patient, error) {
	stored, err := s.patients.FindPatientByUserID(ctx, userID)
	if err != nil {
		return nil, mapPatientError(err)
	}

	return reveal(ctx, s.phi, stored, viewer)
}

// List returns one page of profiles. Only administrators may list every
// profile.
func (s *patientService) List(ctx context.Context, viewer models.Viewer, q models.ListQuery) (models.Page[*models.Patient], error) {
	if !viewer.IsAdmin() {
		return models.Page[*models.Patient]{}, ErrForbidden
	}

	q = q.WithDefaults()
	stored, total, err := s.patients.ListPatients(ctx, q)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "patientService.List").Msg("failed to list patient profiles")
		return models.Page[*models.Patient]{}, err
	}

	return models.NewPage(s.phi.RevealPatients(ctx, stored, viewer), q, total), nil
}

// History is available to administrators only. Entries outlive the profile,
// so the profile does not need to exist.
func (s *patientService) History(ctx context.Context, viewer models.Viewer, id string) ([]models.AuditEntry, error) {
	if !viewer.IsAdmin() {
		return nil, ErrForbidden
	}

	return s.phi.History(ctx, models.EntityPatient, id)
}

func canEditPatient(viewer models.Viewer, p *models.Patient) bool {
	return viewer.IsAdmin() || (viewer.Role == models.RolePatient && viewer.UserID == p.UserID)
}

func mapPatientError(err error) error {
	if errors.Is(err, store.ErrRecordNotFound) {
		return ErrPatientNotFound
	}
	return err
}
