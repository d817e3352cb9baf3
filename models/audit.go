// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EntityType is the closed set of entity kinds that produce audit entries.
type EntityType string

const (
	EntityAppointment    EntityType = "appointment"
	EntityMedicalSummary EntityType = "medicalSummary"
	EntityPatient        EntityType = "patient"
)

// Valid reports whether t is a known entity type.
func (t EntityType) Valid() bool {
	switch t {
	case EntityAppointment, EntityMedicalSummary, EntityPatient:
		return true
	}
	return false
}

// AuditAction is the kind of mutation an audit entry describes.
type AuditAction string

const (
	ActionCreate AuditAction = "create"
	ActionUpdate AuditAction = "update"
	ActionDelete AuditAction = "delete"
)

// Valid reports whether a is a known action.
func (a AuditAction) Valid() bool {
	switch a {
	case ActionCreate, ActionUpdate, ActionDelete:
		return true
	}
	return false
}

// Change is one field-level difference inside an audit entry.
// A nil OldValue or NewValue means the side is absent.
type Change struct {
	Field    string `json:"field"`
	OldValue any    `json:"oldValue,omitempty"`
	NewValue any    `json:"newValue,omitempty"`
}

// RequestContext carries optional origin information of a mutation.
type RequestContext struct {
	IPAddress string `json:"ipAddress,omitempty"`
	UserAgent string `json:"userAgent,omitempty"`
}

// Mutation is the input of an audit ledger append.
type Mutation struct {
	EntityType EntityType
	EntityID   string
	Action     AuditAction
	ActorID    string
	Changes    []Change
	Context    RequestContext
}

// AuditEntry is an immutable record of a single mutation event.
type AuditEntry struct {
	ID          int64       `json:"id"`
	EntityType  EntityType  `json:"entityType"`
	EntityID    string      `json:"entityId"`
	Action      AuditAction `json:"action"`
	Timestamp   time.Time   `json:"timestamp"`
	PerformedBy string      `json:"performedBy"`
	Changes     []Change    `json:"changes"`
	IPAddress   string      `json:"ipAddress,omitempty"`
	UserAgent   string      `json:"userAgent,omitempty"`
}

// TableName returns the audit log table name.
func (AuditEntry) TableName() string {
	return "audit_logs"
}
