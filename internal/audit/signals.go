// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package audit

import (
	"context"

	"github.com/MKhiriev/go-med-keeper/models"
	"github.com/zoobzio/capitan"
)

var (
	SignalEntryAppended     = capitan.NewSignal("audit.entry.appended", "Audit entry appended")
	SignalContractViolation = capitan.NewSignal("audit.contract.violated", "Audit mutation rejected")

	KeyEntityType  = capitan.NewStringKey("entity_type")
	KeyEntityID    = capitan.NewStringKey("entity_id")
	KeyAction      = capitan.NewStringKey("action")
	KeyChangeCount = capitan.NewIntKey("change_count")
	KeyError       = capitan.NewErrorKey("error")
)

func emitAppended(ctx context.Context, e models.AuditEntry) {
	capitan.Emit(ctx, SignalEntryAppended,
		KeyEntityType.Field(string(e.EntityType)),
		KeyEntityID.Field(e.EntityID),
		KeyAction.Field(string(e.Action)),
		KeyChangeCount.Field(len(e.Changes)),
	)
}

func emitViolation(ctx context.Context, m models.Mutation, err error) {
	capitan.Error(ctx, SignalContractViolation,
		KeyEntityType.Field(string(m.EntityType)),
		KeyEntityID.Field(m.EntityID),
		KeyAction.Field(string(m.Action)),
		KeyError.Field(err),
	)
}
