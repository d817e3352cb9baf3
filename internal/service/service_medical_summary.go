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

type medicalSummaryService struct {
	transactor store.Transactor
	summaries  store.MedicalSummaryRepository

	phi PHIService
	ids utils.IDGenerator
	now func() time.Time

	logger *logger.Logger
}

func NewMedicalSummaryService(storages *store.Storages, phi PHIService, ids utils.IDGenerator, logger *logger.Logger) MedicalSummaryService {
	return &medicalSummaryService{
		transactor: storages.Transactor,
		summaries:  storages.Repositories.Summaries,
		phi:        phi,
		ids:        ids,
		now:        time.Now,
		logger:     logger,
	}
}

// Create stores the summary of one appointment. Doctors write summaries as
// themselves; administrators must name the doctor.
func (s *medicalSummaryService) Create(ctx context.Context, viewer models.Viewer, summary models.MedicalSummary) (*models.MedicalSummary, error) {
	log := logger.FromContext(ctx)

	switch viewer.Role {
	case models.RoleDoctor:
		if summary.DoctorUserID == "" {
			summary.DoctorUserID = viewer.UserID
		}
		if summary.DoctorUserID != viewer.UserID {
			return nil, ErrForbidden
		}
	case models.RoleAdmin:
		if summary.DoctorUserID == "" {
			return nil, fmt.Errorf("%w: doctor user id is required", ErrInvalidDataProvided)
		}
	default:
		return nil, ErrForbidden
	}

	now := s.now().UTC()
	rec := summary.Clone()
	rec.ID = s.ids.Generate()
	rec.CreatedBy = viewer.UserID
	rec.UpdatedBy = ""
	rec.CreatedAt, rec.UpdatedAt = now, now
	rec.Diagnoses = nonNil(rec.Diagnoses)
	rec.Prescriptions = nonNil(rec.Prescriptions)

	changes := summaryCreateChanges(rec)

	saved, err := store.WithMutation(ctx, s.transactor, func(ctx context.Context, repos *store.Repositories) (*models.MedicalSummary, error) {
		_, err := repos.Summaries.FindMedicalSummaryByAppointmentID(ctx, rec.AppointmentID)
		switch {
		case err == nil:
			return nil, ErrMedicalSummaryExists
		case !errors.Is(err, store.ErrRecordNotFound):
			return nil, err
		}

		if err = s.phi.Protect(ctx, rec); err != nil {
			return nil, err
		}
		if err = repos.Summaries.InsertMedicalSummary(ctx, rec); err != nil {
			if errors.Is(err, store.ErrRecordAlreadyExists) {
				return nil, ErrMedicalSummaryExists
			}
			return nil, err
		}

		if _, err = s.phi.Audit(ctx, repos.Audit, models.Mutation{
			EntityType: models.EntityMedicalSummary,
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
		log.Err(err).
			Str("func", "medicalSummaryService.Create").
			Str("appointment_id", summary.AppointmentID).
			Msg("medical summary creation failed")
		return nil, err
	}

	return reveal(ctx, s.phi, saved, viewer)
}

// Update is allowed to the authoring doctor and to administrators.
func (s *medicalSummaryService) Update(ctx context.Context, viewer models.Viewer, id string, patch models.MedicalSummaryPatch) (*models.MedicalSummary, error) {
	saved, err := store.WithMutation(ctx, s.transactor, func(ctx context.Context, repos *store.Repositories) (*models.MedicalSummary, error) {
		stored, err := repos.Summaries.FindMedicalSummaryByID(ctx, id)
		if err != nil {
			return nil, mapSummaryError(err)
		}
		if !canEditSummary(viewer, stored) {
			return nil, ErrForbidden
		}

		old := stored.Clone()
		if err = s.phi.Open(ctx, old); err != nil {
			return nil, err
		}

		updated := stored.Clone()
		changes := applySummaryPatch(old, updated, patch)
		if len(changes) == 0 {
			return stored, nil
		}
		updated.UpdatedBy = viewer.UserID
		updated.UpdatedAt = s.now().UTC()

		if err = s.phi.Protect(ctx, updated); err != nil {
			return nil, err
		}
		if err = repos.Summaries.SaveMedicalSummary(ctx, updated); err != nil {
			return nil, err
		}

		if _, err = s.phi.Audit(ctx, repos.Audit, models.Mutation{
			EntityType: models.EntityMedicalSummary,
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
		logger.FromContext(ctx).Err(err).
			Str("func", "medicalSummaryService.Update").
			Str("summary_id", id).
			Msg("medical summary update failed")
		return nil, err
	}

	return reveal(ctx, s.phi, saved, viewer)
}

// Delete is allowed to the authoring doctor and to administrators.
func (s *medicalSummaryService) Delete(ctx context.Context, viewer models.Viewer, id string) error {
	err := s.transactor.InTx(ctx, func(ctx context.Context, repos *store.Repositories) error {
		stored, err := repos.Summaries.FindMedicalSummaryByID(ctx, id)
		if err != nil {
			return mapSummaryError(err)
		}
		if !canEditSummary(viewer, stored) {
			return ErrForbidden
		}

		if _, err = s.phi.Audit(ctx, repos.Audit, models.Mutation{
			EntityType: models.EntityMedicalSummary,
			EntityID:   stored.ID,
			Action:     models.ActionDelete,
			ActorID:    viewer.UserID,
			Changes: []models.Change{
				{Field: "appointmentId", OldValue: stored.AppointmentID},
				{Field: "diagnoses", OldValue: nonNil(stored.Diagnoses)},
				{Field: "prescriptions", OldValue: nonNil(stored.Prescriptions)},
			},
			Context: utils.GetRequestContext(ctx),
		}); err != nil {
			return err
		}

		return mapSummaryError(repos.Summaries.DeleteMedicalSummary(ctx, stored.ID))
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "medicalSummaryService.Delete").
			Str("summary_id", id).
			Msg("medical summary deletion failed")
		return err
	}

	return nil
}

func (s *medicalSummaryService) Get(ctx context.Context, viewer models.Viewer, id string) (*models.MedicalSummary, error) {
	stored, err := s.summaries.FindMedicalSummaryByID(ctx, id)
	if err != nil {
		return nil, mapSummaryError(err)
	}

	return reveal(ctx, s.phi, stored, viewer)
}

func (s *medicalSummaryService) GetByAppointmentID(ctx context.Context, viewer models.Viewer, appointmentID string) (*models.MedicalSummary, error) {
	stored, err := s.summaries.FindMedicalSummaryByAppointmentID(ctx, appointmentID)
	if err != nil {
		return nil, mapSummaryError(err)
	}

	return reveal(ctx, s.phi, stored, viewer)
}

// List returns one page of all summaries. Administrators only.
func (s *medicalSummaryService) List(ctx context.Context, viewer models.Viewer, q models.ListQuery) (models.Page[*models.MedicalSummary], error) {
	if !viewer.IsAdmin() {
		return models.Page[*models.MedicalSummary]{}, ErrForbidden
	}

	return s.list(ctx, viewer, models.MedicalSummaryFilter{}, q)
}

// ListByPatient returns the summaries written about one patient. Patients
// list their own summaries; administrators list anyone's.
func (s *medicalSummaryService) ListByPatient(ctx context.Context, viewer models.Viewer, patientUserID string, q models.ListQuery) (models.Page[*models.MedicalSummary], error) {
	if !viewer.IsAdmin() && (viewer.Role != models.RolePatient || viewer.UserID != patientUserID) {
		return models.Page[*models.MedicalSummary]{}, ErrForbidden
	}

	return s.list(ctx, viewer, models.MedicalSummaryFilter{PatientUserID: patientUserID}, q)
}

// ListByDoctor returns the summaries one doctor wrote. Doctors list their
// own summaries; administrators list anyone's.
func (s *medicalSummaryService) ListByDoctor(ctx context.Context, viewer models.Viewer, doctorUserID string, q models.ListQuery) (models.Page[*models.MedicalSummary], error) {
	if !viewer.IsAdmin() && (viewer.Role != models.RoleDoctor || viewer.UserID != doctorUserID) {
		return models.Page[*models.MedicalSummary]{}, ErrForbidden
	}

	return s.list(ctx, viewer, models.MedicalSummaryFilter{DoctorUserID: doctorUserID}, q)
}

func (s *medicalSummaryService) list(ctx context.Context, viewer models.Viewer, filter models.MedicalSummaryFilter, q models.ListQuery) (models.Page[*models.MedicalSummary], error) {
	q = q.WithDefaults()
	stored, total, err := s.summaries.ListMedicalSummaries(ctx, filter, q)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "medicalSummaryService.list").
			Str("patient_user_id", filter.PatientUserID).
			Str("doctor_user_id", filter.DoctorUserID).
			Msg("failed to list medical summaries")
		return models.Page[*models.MedicalSummary]{}, err
	}

	return models.NewPage(s.phi.RevealMedicalSummaries(ctx, stored, viewer), q, total), nil
}

func (s *medicalSummaryService) History(ctx context.Context, viewer models.Viewer, id string) ([]models.AuditEntry, error) {
	if !viewer.IsAdmin() {
		return nil, ErrForbidden
	}

	return s.phi.History(ctx, models.EntityMedicalSummary, id)
}

func canEditSummary(viewer models.Viewer, m *models.MedicalSummary) bool {
	return viewer.IsAdmin() || (viewer.Role == models.RoleDoctor && viewer.UserID == m.DoctorUserID)
}

func mapSummaryError(err error) error {
	if errors.Is(err, store.ErrRecordNotFound) {
		return ErrMedicalSummaryNotFound
	}
	return err
}
