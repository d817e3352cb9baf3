// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-med-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldUserID targets the owning user of a patient profile.
	FieldUserID = "user_id"

	FieldAge              = "age"
	FieldHeight           = "height"
	FieldWeight           = "weight"
	FieldBloodGroup       = "blood_group"
	FieldGender           = "gender"
	FieldEmergencyContact = "emergency_contact"
	FieldMedicalHistory   = "medical_history"

	FieldAppointmentID = "appointment_id"
	FieldPatientUserID = "patient_user_id"
	FieldDoctorUserID  = "doctor_user_id"
	FieldDiagnoses     = "diagnoses"
	FieldPrescriptions = "prescriptions"
)

var (
	patientFields = []string{
		FieldUserID, FieldAge, FieldHeight, FieldWeight, FieldBloodGroup,
		FieldGender, FieldEmergencyContact, FieldMedicalHistory,
	}
	summaryFields = []string{
		FieldAppointmentID, FieldPatientUserID, FieldDoctorUserID, FieldDiagnoses, FieldPrescriptions,
	}
)

// RecordValidator checks patient profiles, medical summaries and their
// patches before they reach the field guard. It reports the first rule a
// value breaks. Error messages name the rule, never the value.
type RecordValidator struct{}

func NewRecordValidator() Validator {
	return &RecordValidator{}
}

func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Patient:
		return v.validatePatient(ctx, value, fields...)
	case *models.Patient:
		return v.validatePatient(ctx, *value, fields...)

	case models.PatientPatch:
		return v.validatePatientPatch(ctx, value)
	case *models.PatientPatch:
		return v.validatePatientPatch(ctx, *value)

	case models.MedicalSummary:
		return v.validateMedicalSummary(ctx, value, fields...)
	case *models.MedicalSummary:
		return v.validateMedicalSummary(ctx, *value, fields...)

	case models.MedicalSummaryPatch:
		return v.validateMedicalSummaryPatch(ctx, value)
	case *models.MedicalSummaryPatch:
		return v.validateMedicalSummaryPatch(ctx, *value)

	case models.ListQuery:
		return validateListQuery(value)
	case *models.ListQuery:
		return validateListQuery(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validatePatient(_ context.Context, p models.Patient, fields ...string) error {
	if len(fields) == 0 {
		fields = patientFields
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if p.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldAge:
			if p.Age < 0 || p.Age > 150 {
				return ErrInvalidAge
			}
		case FieldHeight:
			if p.Height < 0 || p.Height > 300 {
				return ErrInvalidHeight
			}
		case FieldWeight:
			if p.Weight < 0 || p.Weight > 500 {
				return ErrInvalidWeight
			}
		case FieldBloodGroup:
			if !slices.Contains(models.BloodGroups, p.BloodGroup) {
				return ErrInvalidBloodGroup
			}
		case FieldGender:
			if p.Gender != "" && !slices.Contains(models.Genders, p.Gender) {
				return ErrInvalidGender
			}
		case FieldEmergencyContact:
			if c := p.EmergencyContact; c != nil && (c.Name == "" || c.Phone == "") {
				return ErrInvalidContact
			}
		case FieldMedicalHistory:
			if err := validateItems(p.MedicalHistory); err != nil {
				return fmt.Errorf("medical history: %w", err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePatientPatch applies the patient rules to the members the patch
// sets.
func (v *RecordValidator) validatePatientPatch(ctx context.Context, patch models.PatientPatch) error {
	if patch.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	var (
		candidate models.Patient
		fields    []string
	)
	if patch.Age != nil {
		candidate.Age, fields = *patch.Age, append(fields, FieldAge)
	}
	if patch.Height != nil {
		candidate.Height, fields = *patch.Height, append(fields, FieldHeight)
	}
	if patch.Weight != nil {
		candidate.Weight, fields = *patch.Weight, append(fields, FieldWeight)
	}
	if patch.BloodGroup != nil {
		candidate.BloodGroup, fields = *patch.BloodGroup, append(fields, FieldBloodGroup)
	}
	if patch.Gender != nil {
		candidate.Gender, fields = *patch.Gender, append(fields, FieldGender)
	}
	if patch.EmergencyContact != nil {
		candidate.EmergencyContact, fields = patch.EmergencyContact, append(fields, FieldEmergencyContact)
	}
	if patch.MedicalHistory != nil {
		candidate.MedicalHistory, fields = *patch.MedicalHistory, append(fields, FieldMedicalHistory)
	}
	if len(fields) == 0 {
		// only the address is patched
		return nil
	}

	return v.validatePatient(ctx, candidate, fields...)
}

func (v *RecordValidator) validateMedicalSummary(_ context.Context, m models.MedicalSummary, fields ...string) error {
	if len(fields) == 0 {
		fields = summaryFields
	}

	for _, f := range fields {
		switch f {
		case FieldAppointmentID:
			if m.AppointmentID == "" {
				return ErrInvalidAppointmentID
			}
		case FieldPatientUserID:
			if m.PatientUserID == "" {
				return ErrInvalidPatientUserID
			}
		case FieldDoctorUserID:
			if m.DoctorUserID == "" {
				return ErrInvalidDoctorUserID
			}
		case FieldDiagnoses:
			if err := validateItems(m.Diagnoses); err != nil {
				return fmt.Errorf("diagnoses: %w", err)
			}
		case FieldPrescriptions:
			if err := validateItems(m.Prescriptions); err != nil {
				return fmt.Errorf("prescriptions: %w", err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateMedicalSummaryPatch(ctx context.Context, patch models.MedicalSummaryPatch) error {
	if patch.IsEmpty() {
		return ErrNoFieldsToUpdate
	}

	var (
		candidate models.MedicalSummary
		fields    []string
	)
	if patch.Diagnoses != nil {
		candidate.Diagnoses, fields = *patch.Diagnoses, append(fields, FieldDiagnoses)
	}
	if patch.Prescriptions != nil {
		candidate.Prescriptions, fields = *patch.Prescriptions, append(fields, FieldPrescriptions)
	}
	if len(fields) == 0 {
		return nil
	}

	return v.validateMedicalSummary(ctx, candidate, fields...)
}

// validateListQuery accepts zero members, which select the defaults.
func validateListQuery(q models.ListQuery) error {
	if q.Limit > models.MaxListLimit {
		return ErrInvalidListLimit
	}
	switch q.SortBy {
	case "", models.SortByCreatedAt, models.SortByUpdatedAt:
	default:
		return ErrInvalidSortBy
	}
	switch q.SortOrder {
	case "", models.SortAsc, models.SortDesc:
	default:
		return ErrInvalidSortOrder
	}

	return nil
}

func validateItems(items []string) error {
	for i, item := range items {
		if item == "" {
			return fmt.Errorf("item %d: %w", i, ErrEmptyListItem)
		}
	}
	return nil
}
