// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Role is the coarse authorization role carried by an authenticated actor.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RolePatient, RoleDoctor, RoleAdmin:
		return true
	}
	return false
}

// AccessTier decides whether a viewer sees plaintext or redaction markers
// for the designated fields of a record.
type AccessTier int

const (
	// TierOther is any viewer without a relationship to the record.
	TierOther AccessTier = iota
	// TierOwner is the subject the record describes.
	TierOwner
	// TierAssignedStaff is clinical staff attached to the record.
	TierAssignedStaff
	// TierAdmin is an administrator.
	TierAdmin
)

// Authorized reports whether the tier may see decrypted designated fields.
func (t AccessTier) Authorized() bool {
	return t == TierOwner || t == TierAssignedStaff || t == TierAdmin
}

func (t AccessTier) String() string {
	switch t {
	case TierOwner:
		return "owner"
	case TierAssignedStaff:
		return "assigned_staff"
	case TierAdmin:
		return "admin"
	default:
		return "other"
	}
}

// Viewer identifies the actor a record is being read or mutated by.
type Viewer struct {
	UserID string `json:"userId"`
	Role   Role   `json:"role"`
}

// IsAdmin reports whether the viewer carries the admin role.
func (v Viewer) IsAdmin() bool {
	return v.Role == RoleAdmin
}
