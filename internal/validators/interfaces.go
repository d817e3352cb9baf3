// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks patient and medical-summary input before it
// reaches the services.
//
// [RecordValidator] understands models.Patient, models.PatientPatch,
// models.MedicalSummary and models.MedicalSummaryPatch. Whole records are
// checked field by field: age, height and weight ranges, blood group and
// gender enums, a complete emergency contact and non-blank list items.
// Patches are checked only for the fields they carry and must carry at
// least one. A models.ListQuery is checked for its limit and sort options.
//
// Callers may restrict a record check to named fields (FieldAge,
// FieldDiagnoses and so on). An unknown name yields [ErrUnknownField].
package validators

import "context"

// Validator validates a record or patch, optionally limited to the named
// fields. It returns one of the package's sentinel errors on failure.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
