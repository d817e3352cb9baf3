// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package audit

import (
	"context"

	"github.com/MKhiriev/go-med-keeper/models"
)

// Appender persists one audit entry and returns it with its storage id.
type Appender interface {
	AppendAuditEntry(ctx context.Context, entry models.AuditEntry) (models.AuditEntry, error)
}

// Reader lists the audit entries of one entity, newest first, returning at
// most limit entries.
type Reader interface {
	ListAuditEntries(ctx context.Context, entityType models.EntityType, entityID string, limit uint64) ([]models.AuditEntry, error)
}
