// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// BloodGroups lists the accepted ABO/Rh blood group codes.
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// Genders lists the accepted gender values.
var Genders = []string{"male", "female", "other"}

// Patient is the profile of a patient user.
//
// Address, the emergency contact's name and phone, and every medical history
// item are designated fields: once persisted they hold ciphertext envelopes.
type Patient struct {
	// ID is the profile identifier (UUID).
	ID string `json:"id"`

	// UserID is the identifier of the user the profile belongs to. Each user
	// owns at most one profile.
	UserID string `json:"userId"`

	Age        int     `json:"age"`
	Height     float64 `json:"height"`
	Weight     float64 `json:"weight"`
	BloodGroup string  `json:"bloodGroup"`
	Gender     string  `json:"gender,omitempty"`

	// Address is designated.
	Address string `json:"address"`

	// EmergencyContact is optional; its Name and Phone are designated.
	EmergencyContact *EmergencyContact `json:"emergencyContact,omitempty"`

	// MedicalHistory items are designated and protected one by one.
	MedicalHistory []string `json:"medicalHistory"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EmergencyContact is the person to call on behalf of a patient.
type EmergencyContact struct {
	Name     string `json:"name"`
	Relation string `json:"relation,omitempty"`
	Phone    string `json:"phone"`
}

// PatientPatch is a partial update of a patient profile. Nil members are
// left untouched.
type PatientPatch struct {
	Age              *int              `json:"age,omitempty"`
	Height           *float64          `json:"height,omitempty"`
	Weight           *float64          `json:"weight,omitempty"`
	BloodGroup       *string           `json:"bloodGroup,omitempty"`
	Gender           *string           `json:"gender,omitempty"`
	Address          *string           `json:"address,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergencyContact,omitempty"`
	MedicalHistory   *[]string         `json:"medicalHistory,omitempty"`
}

// IsEmpty reports whether the patch carries no member at all.
func (p PatientPatch) IsEmpty() bool {
	return p.Age == nil && p.Height == nil && p.Weight == nil && p.BloodGroup == nil &&
		p.Gender == nil && p.Address == nil && p.EmergencyContact == nil && p.MedicalHistory == nil
}

// TableName returns the patient profile table name.
func (*Patient) TableName() string {
	return "patient_profiles"
}

func (p *Patient) EntityType() EntityType { return EntityPatient }

func (p *Patient) EntityID() string { return p.ID }

func (p *Patient) SensitiveFields() []SensitiveField {
	fields := []SensitiveField{
		{Path: "address", Value: &p.Address},
	}
	if p.EmergencyContact != nil {
		fields = append(fields,
			SensitiveField{Path: "emergencyContact.name", Value: &p.EmergencyContact.Name},
			SensitiveField{Path: "emergencyContact.phone", Value: &p.EmergencyContact.Phone},
		)
	}
	fields = append(fields, SensitiveField{Path: "medicalHistory", Items: &p.MedicalHistory})

	return fields
}

// TierFor grants the owner tier to the patient the profile belongs to and
// the assigned staff tier to doctors.
func (p *Patient) TierFor(v Viewer) AccessTier {
	switch {
	case v.Role == RoleAdmin:
		return TierAdmin
	case v.Role == RolePatient && v.UserID != "" && v.UserID == p.UserID:
		return TierOwner
	case v.Role == RoleDoctor:
		return TierAssignedStaff
	default:
		return TierOther
	}
}

// Clone returns a deep copy of the profile.
func (p *Patient) Clone() *Patient {
	if p == nil {
		return nil
	}
	c := *p
	if p.EmergencyContact != nil {
		ec := *p.EmergencyContact
		c.EmergencyContact = &ec
	}
	c.MedicalHistory = slices.Clone(p.MedicalHistory)

	return &c
}
