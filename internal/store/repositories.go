// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

// Repositories groups every repository bound to one query target, either the
// connection pool or an open transaction.
type Repositories struct {
	Patients  PatientRepository
	Summaries MedicalSummaryRepository
	Audit     AuditRepository
}

func newRepositories(q DBTX, builder sq.StatementBuilderType, classifier ErrorClassificator) *Repositories {
	return &Repositories{
		Patients:  newPatientRepository(q, builder, classifier),
		Summaries: newMedicalSummaryRepository(q, builder, classifier),
		Audit:     newAuditRepository(q, builder),
	}
}
