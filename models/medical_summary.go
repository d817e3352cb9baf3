// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// Vitals are the vital signs taken during an appointment. They are not
// designated and are stored as entered.
type Vitals struct {
	BP     string `json:"bp,omitempty"`
	HR     string `json:"hr,omitempty"`
	Temp   string `json:"temp,omitempty"`
	SpO2   string `json:"spo2,omitempty"`
	Weight string `json:"weight,omitempty"`
	Height string `json:"height,omitempty"`
}

// Fields returns the vitals as (name, value) pairs in a fixed order.
func (v Vitals) Fields() [][2]string {
	return [][2]string{
		{"bp", v.BP},
		{"hr", v.HR},
		{"temp", v.Temp},
		{"spo2", v.SpO2},
		{"weight", v.Weight},
		{"height", v.Height},
	}
}

// MedicalSummary is the clinical summary a doctor writes for an appointment.
//
// Notes and every diagnosis and prescription item are designated.
type MedicalSummary struct {
	ID            string `json:"id"`
	AppointmentID string `json:"appointmentId"`

	// PatientUserID and DoctorUserID tie the summary to the patient it
	// describes and the doctor who wrote it.
	PatientUserID string `json:"patientUserId"`
	DoctorUserID  string `json:"doctorUserId"`

	Notes         string   `json:"notes"`
	Diagnoses     []string `json:"diagnoses"`
	Prescriptions []string `json:"prescriptions"`
	Vitals        Vitals   `json:"vitals"`

	CreatedBy string    `json:"createdBy"`
	UpdatedBy string    `json:"updatedBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MedicalSummaryPatch is a partial update of a medical summary.
type MedicalSummaryPatch struct {
	Notes         *string   `json:"notes,omitempty"`
	Diagnoses     *[]string `json:"diagnoses,omitempty"`
	Prescriptions *[]string `json:"prescriptions,omitempty"`
	Vitals        *Vitals   `json:"vitals,omitempty"`
}

// IsEmpty reports whether the patch carries no member at all.
func (p MedicalSummaryPatch) IsEmpty() bool {
	return p.Notes == nil && p.Diagnoses == nil && p.Prescriptions == nil && p.Vitals == nil
}

// TableName returns the medical summary table name.
func (*MedicalSummary) TableName() string {
	return "medical_summaries"
}

func (m *MedicalSummary) EntityType() EntityType { return EntityMedicalSummary }

func (m *MedicalSummary) EntityID() string { return m.ID }

func (m *MedicalSummary) SensitiveFields() []SensitiveField {
	return []SensitiveField{
		{Path: "notes", Value: &m.Notes},
		{Path: "diagnoses", Items: &m.Diagnoses},
		{Path: "prescriptions", Items: &m.Prescriptions},
	}
}

// TierFor grants the owner tier to the summary's patient and the assigned
// staff tier to the doctor who wrote it.
func (m *MedicalSummary) TierFor(v Viewer) AccessTier {
	switch {
	case v.Role == RoleAdmin:
		return TierAdmin
	case v.Role == RolePatient && v.UserID != "" && v.UserID == m.PatientUserID:
		return TierOwner
	case v.Role == RoleDoctor && v.UserID != "" && v.UserID == m.DoctorUserID:
		return TierAssignedStaff
	default:
		return TierOther
	}
}

// Clone returns a deep copy of the summary.
func (m *MedicalSummary) Clone() *MedicalSummary {
	if m == nil {
		return nil
	}
	c := *m
	c.Diagnoses = slices.Clone(m.Diagnoses)
	c.Prescriptions = slices.Clone(m.Prescriptions)

	return &c
}
