// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-med-keeper/internal/validators"
	"github.com/MKhiriev/go-med-keeper/models"
)

// PatientValidationService normalizes and validates input before handing it
// to the wrapped PatientService. Validation failures wrap
// ErrInvalidDataProvided.
type PatientValidationService struct {
	inner     PatientService
	validator validators.Validator
}

func NewPatientValidationService() PatientServiceWrapper {
	return &PatientValidationService{
		validator: validators.NewRecordValidator(),
	}
}

func (v *PatientValidationService) Wrap(inner PatientService) PatientService {
	v.inner = inner
	return v
}

func (v *PatientValidationService) Create(ctx context.Context, viewer models.Viewer, patient models.Patient) (*models.Patient, error) {
	patient.BloodGroup = strings.ToUpper(strings.TrimSpace(patient.BloodGroup))
	patient.Gender = strings.ToLower(strings.TrimSpace(patient.Gender))

	// the owner may be filled in from the viewer, so it is checked later
	if err := v.validator.Validate(ctx, patient,
		validators.FieldAge, validators.FieldHeight, validators.FieldWeight, validators.FieldBloodGroup,
		validators.FieldGender, validators.FieldEmergencyContact, validators.FieldMedicalHistory,
	); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Create(ctx, viewer, patient)
}

func (v *PatientValidationService) Update(ctx context.Context, viewer models.Viewer, id string, patch models.PatientPatch) (*models.Patient, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: patient id is required", ErrInvalidDataProvided)
	}
	if patch.BloodGroup != nil {
		bg := strings.ToUpper(strings.TrimSpace(*patch.BloodGroup))
		patch.BloodGroup = &bg
	}
	if patch.Gender != nil {
		g := strings.ToLower(strings.TrimSpace(*patch.Gender))
		patch.Gender = &g
	}

	if err := v.validator.Validate(ctx, patch); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Update(ctx, viewer, id, patch)
}

func (v *PatientValidationService) Delete(ctx context.Context, viewer models.Viewer, id string) error {
	if id == "" {
		return fmt.Errorf("%w: patient id is required", ErrInvalidDataProvided)
	}
	return v.inner.Delete(ctx, viewer, id)
}

func (v *PatientValidationService) Get(ctx context.Context, viewer models.Viewer, id string) (*models.Patient, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: patient id is required", ErrInvalidDataProvided)
	}
	return v.inner.Get(ctx, viewer, id)
}

func (v *PatientValidationService) GetByUserID(ctx context.Context, viewer models.Viewer, userID string) (*models.Patient, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidDataProvided)
	}
	return v.inner.GetByUserID(ctx, viewer, userID)
}

func (v *PatientValidationService) List(ctx context.Context, viewer models.Viewer, q models.ListQuery) (models.Page[*models.Patient], error) {
	q.SortOrder = strings.ToLower(strings.TrimSpace(q.SortOrder))
	if err := v.validator.Validate(ctx, q); err != nil {
		return models.Page[*models.Patient]{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.List(ctx, viewer, q)
}

func (v *PatientValidationService) History(ctx context.Context, viewer models.Viewer, id string) ([]models.AuditEntry, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: patient id is required", ErrInvalidDataProvided)
	}
	return v.inner.History(ctx, viewer, id)
}

// MedicalSummaryValidationService is PatientValidationService for
// medical summaries.
type MedicalSummaryValidationService struct {
	inner     MedicalSummaryService
	validator validators.Validator
}

func NewMedicalSummaryValidationService() MedicalSummaryServiceWrapper {
	return &MedicalSummaryValidationService{
		validator: validators.NewRecordValidator(),
	}
}

func (v *MedicalSummaryValidationService) Wrap(inner MedicalSummaryService) MedicalSummaryService {
	v.inner = inner
	return v
}

func (v *MedicalSummaryValidationService) Create(ctx context.Context, viewer models.Viewer, summary models.MedicalSummary) (*models.MedicalSummary, error) {
	// the doctor may be filled in from the viewer, so it is checked later
	if err := v.validator.Validate(ctx, summary,
		validators.FieldAppointmentID, validators.FieldPatientUserID, validators.FieldDiagnoses, validators.FieldPrescriptions,
	); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Create(ctx, viewer, summary)
}

func (v *MedicalSummaryValidationService) Update(ctx context.Context, viewer models.Viewer, id string, patch models.MedicalSummaryPatch) (*models.MedicalSummary, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: medical summary id is required", ErrInvalidDataProvided)
	}
	if err := v.validator.Validate(ctx, patch); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Update(ctx, viewer, id, patch)
}

func (v *MedicalSummaryValidationService) Delete(ctx context.Context, viewer models.Viewer, id string) error {
	if id == "" {
		return fmt.Errorf("%w: medical summary id is required", ErrInvalidDataProvided)
	}
	return v.inner.Delete(ctx, viewer, id)
}

func (v *MedicalSummaryValidationService) Get(ctx context.Context, viewer models.Viewer, id string) (*models.MedicalSummary, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: medical summary id is required", ErrInvalidDataProvided)
	}
	return v.inner.Get(ctx, viewer, id)
}

func (v *MedicalSummaryValidationService) GetByAppointmentID(ctx context.Context, viewer models.Viewer, appointmentID string) (*models.MedicalSummary, error) {
	if appointmentID == "" {
		return nil, fmt.Errorf("%w: appointment id is required", ErrInvalidDataProvided)
	}
	return v.inner.GetByAppointmentID(ctx, viewer, appointmentID)
}

func (v *MedicalSummaryValidationService) List(ctx context.Context, viewer models.Viewer, q models.ListQuery) (models.Page[*models.MedicalSummary], error) {
	q, err := v.listQuery(ctx, q)
	if err != nil {
		return models.Page[*models.MedicalSummary]{}, err
	}
	return v.inner.List(ctx, viewer, q)
}

func (v *MedicalSummaryValidationService) ListByPatient(ctx context.Context, viewer models.Viewer, patientUserID string, q models.ListQuery) (models.Page[*models.MedicalSummary], error) {
	if patientUserID == "" {
		return models.Page[*models.MedicalSummary]{}, fmt.Errorf("%w: patient user id is required", ErrInvalidDataProvided)
	}
	q, err := v.listQuery(ctx, q)
	if err != nil {
		return models.Page[*models.MedicalSummary]{}, err
	}
	return v.inner.ListByPatient(ctx, viewer, patientUserID, q)
}

func (v *MedicalSummaryValidationService) ListByDoctor(ctx context.Context, viewer models.Viewer, doctorUserID string, q models.ListQuery) (models.Page[*models.MedicalSummary], error) {
	if doctorUserID == "" {
		return models.Page[*models.MedicalSummary]{}, fmt.Errorf("%w: doctor user id is required", ErrInvalidDataProvided)
	}
	q, err := v.listQuery(ctx, q)
	if err != nil {
		return models.Page[*models.MedicalSummary]{}, err
	}
	return v.inner.ListByDoctor(ctx, viewer, doctorUserID, q)
}

func (v *MedicalSummaryValidationService) listQuery(ctx context.Context, q models.ListQuery) (models.ListQuery, error) {
	q.SortOrder = strings.ToLower(strings.TrimSpace(q.SortOrder))
	if err := v.validator.Validate(ctx, q); err != nil {
		return q, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return q, nil
}

func (v *MedicalSummaryValidationService) History(ctx context.Context, viewer models.Viewer, id string) ([]models.AuditEntry, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: medical summary id is required", ErrInvalidDataProvided)
	}
	return v.inner.History(ctx, viewer, id)
}
