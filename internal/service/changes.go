// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"slices"

	"github.com/MKhiriev/go-med-keeper/models"
)

// patientCreateChanges lists the new values of a freshly created profile.
// Designated values are passed as they are; the ledger redacts them.
func patientCreateChanges(p *models.Patient) []models.Change {
	changes := []models.Change{
		{Field: "userId", NewValue: p.UserID},
		{Field: "age", NewValue: p.Age},
		{Field: "height", NewValue: p.Height},
		{Field: "weight", NewValue: p.Weight},
		{Field: "bloodGroup", NewValue: p.BloodGroup},
	}
	if p.Gender != "" {
		changes = append(changes, models.Change{Field: "gender", NewValue: p.Gender})
	}
	if p.Address != "" {
		changes = append(changes, models.Change{Field: "address", NewValue: p.Address})
	}
	if p.EmergencyContact != nil {
		changes = append(changes, models.Change{Field: "emergencyContact", NewValue: *p.EmergencyContact})
	}
	changes = append(changes, models.Change{Field: "medicalHistory", NewValue: slices.Clone(p.MedicalHistory)})

	return changes
}

// applyPatientPatch writes the members of patch that differ from old into
// updated and returns one change per written member. old holds plaintext;
// updated starts as the stored (sealed) record, so untouched designated
// values keep their envelopes.
func applyPatientPatch(old, updated *models.Patient, patch models.PatientPatch) []models.Change {
	var changes []models.Change

	if patch.Age != nil && *patch.Age != old.Age {
		changes = append(changes, models.Change{Field: "age", OldValue: old.Age, NewValue: *patch.Age})
		updated.Age = *patch.Age
	}
	if patch.Height != nil && *patch.Height != old.Height {
		changes = append(changes, models.Change{Field: "height", OldValue: old.Height, NewValue: *patch.Height})
		updated.Height = *patch.Height
	}
	if patch.Weight != nil && *patch.Weight != old.Weight {
		changes = append(changes, models.Change{Field: "weight", OldValue: old.Weight, NewValue: *patch.Weight})
		updated.Weight = *patch.Weight
	}
	if patch.BloodGroup != nil && *patch.BloodGroup != old.BloodGroup {
		changes = append(changes, models.Change{Field: "bloodGroup", OldValue: old.BloodGroup, NewValue: *patch.BloodGroup})
		updated.BloodGroup = *patch.BloodGroup
	}
	if patch.Gender != nil && *patch.Gender != old.Gender {
		changes = append(changes, models.Change{Field: "gender", OldValue: nilIfEmpty(old.Gender), NewValue: nilIfEmpty(*patch.Gender)})
		updated.Gender = *patch.Gender
	}
	if patch.Address != nil && *patch.Address != old.Address {
		changes = append(changes, models.Change{Field: "address", OldValue: nilIfEmpty(old.Address), NewValue: nilIfEmpty(*patch.Address)})
		updated.Address = *patch.Address
	}
	if patch.EmergencyContact != nil && (old.EmergencyContact == nil || *patch.EmergencyContact != *old.EmergencyContact) {
		var before any
		if old.EmergencyContact != nil {
			before = *old.EmergencyContact
		}
		changes = append(changes, models.Change{Field: "emergencyContact", OldValue: before, NewValue: *patch.EmergencyContact})
		contact := *patch.EmergencyContact
		updated.EmergencyContact = &contact
	}
	if patch.MedicalHistory != nil && !slices.Equal(*patch.MedicalHistory, old.MedicalHistory) {
		next := slices.Clone(*patch.MedicalHistory)
		if next == nil {
			next = []string{}
		}
		changes = append(changes, models.Change{Field: "medicalHistory", OldValue: slices.Clone(old.MedicalHistory), NewValue: next})
		updated.MedicalHistory = slices.Clone(next)
	}

	return changes
}

// summaryCreateChanges lists the new values of a freshly created summary.
func summaryCreateChanges(m *models.MedicalSummary) []models.Change {
	changes := []models.Change{
		{Field: "appointmentId", NewValue: m.AppointmentID},
		{Field: "patientUserId", NewValue: m.PatientUserID},
		{Field: "doctorUserId", NewValue: m.DoctorUserID},
		{Field: "notes", NewValue: m.Notes},
	}
	changes = append(changes,
		models.Change{Field: "diagnoses", NewValue: slices.Clone(m.Diagnoses)},
		models.Change{Field: "prescriptions", NewValue: slices.Clone(m.Prescriptions)},
	)
	if m.Vitals != (models.Vitals{}) {
		changes = append(changes, models.Change{Field: "vitals", NewValue: m.Vitals})
	}

	return changes
}

// applySummaryPatch is applyPatientPatch for medical summaries. Vitals are
// merged member by member: empty members of the patch leave the stored
// value alone, and each changed member is its own "vitals.<name>" change.
func applySummaryPatch(old, updated *models.MedicalSummary, patch models.MedicalSummaryPatch) []models.Change {
	var changes []models.Change

	if patch.Notes != nil && *patch.Notes != old.Notes {
		changes = append(changes, models.Change{Field: "notes", OldValue: nilIfEmpty(old.Notes), NewValue: nilIfEmpty(*patch.Notes)})
		updated.Notes = *patch.Notes
	}
	if patch.Diagnoses != nil && !slices.Equal(*patch.Diagnoses, old.Diagnoses) {
		next := nonNil(*patch.Diagnoses)
		changes = append(changes, models.Change{Field: "diagnoses", OldValue: slices.Clone(old.Diagnoses), NewValue: next})
		updated.Diagnoses = slices.Clone(next)
	}
	if patch.Prescriptions != nil && !slices.Equal(*patch.Prescriptions, old.Prescriptions) {
		next := nonNil(*patch.Prescriptions)
		changes = append(changes, models.Change{Field: "prescriptions", OldValue: slices.Clone(old.Prescriptions), NewValue: next})
		updated.Prescriptions = slices.Clone(next)
	}
	if patch.Vitals != nil {
		merged := mergeVitals(old.Vitals, *patch.Vitals)
		before, after := old.Vitals.Fields(), merged.Fields()
		for i := range before {
			if before[i][1] != after[i][1] {
				changes = append(changes, models.Change{
					Field:    "vitals." + before[i][0],
					OldValue: nilIfEmpty(before[i][1]),
					NewValue: nilIfEmpty(after[i][1]),
				})
			}
		}
		updated.Vitals = merged
	}

	return changes
}

func mergeVitals(base, patch models.Vitals) models.Vitals {
	pick := func(old, next string) string {
		if next != "" {
			return next
		}
		return old
	}

	return models.Vitals{
		BP:     pick(base.BP, patch.BP),
		HR:     pick(base.HR, patch.HR),
		Temp:   pick(base.Temp, patch.Temp),
		SpO2:   pick(base.SpO2, patch.SpO2),
		Weight: pick(base.Weight, patch.Weight),
		Height: pick(base.Height, patch.Height),
	}
}

func nilIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return slices.Clone(items)
}
