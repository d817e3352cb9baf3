// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SensitiveField is a handle on one designated field of a record.
//
// Exactly one of Value and Items is set: Value for scalar fields, Items for
// list-valued fields whose elements are protected independently. Both point
// into the record, so writes through the handle modify the record itself.
type SensitiveField struct {
	Path  string
	Value *string
	Items *[]string
}

// IsList reports whether the field is list-valued.
func (f SensitiveField) IsList() bool {
	return f.Items != nil
}

// Record is a protected record: an entity with a fixed set of designated
// fields that are stored only in ciphertext form.
type Record interface {
	EntityType() EntityType
	EntityID() string
	// SensitiveFields returns handles on the designated fields that are
	// present on the record. Absent optional groups are skipped.
	SensitiveFields() []SensitiveField
	// TierFor resolves the access tier of v for this record.
	TierFor(v Viewer) AccessTier
}

// Cloner is a Record that can produce a deep copy of itself.
type Cloner[T any] interface {
	Record
	Clone() T
}

// DesignatedField describes a designated field path of an entity type.
type DesignatedField struct {
	Path string
	List bool
}

var designatedFields = map[EntityType][]DesignatedField{
	EntityPatient: {
		{Path: "address"},
		{Path: "emergencyContact.name"},
		{Path: "emergencyContact.phone"},
		{Path: "medicalHistory", List: true},
	},
	EntityMedicalSummary: {
		{Path: "notes"},
		{Path: "diagnoses", List: true},
		{Path: "prescriptions", List: true},
	},
}

// DesignatedFields returns the designated field paths of the entity type.
// Entity types without protected content return nil.
func DesignatedFields(t EntityType) []DesignatedField {
	fields := designatedFields[t]
	out := make([]DesignatedField, len(fields))
	copy(out, fields)
	return out
}
