// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package audit

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/MKhiriev/go-med-keeper/internal/logger"
	"github.com/MKhiriev/go-med-keeper/models"
	"github.com/hengadev/errsx"
)

// MaxHistoryLimit caps the number of entries History returns.
const MaxHistoryLimit = 100

// Ledger validates, redacts and appends audit entries. It holds no storage
// of its own; callers pass the Appender or Reader to use.
type Ledger struct {
	now          func() time.Time
	historyLimit int
	logger       *logger.Logger
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock replaces the server clock used to stamp entries.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// WithHistoryLimit lowers the history cap. Values outside (0, MaxHistoryLimit]
// are ignored.
func WithHistoryLimit(n int) Option {
	return func(l *Ledger) {
		if n > 0 && n <= MaxHistoryLimit {
			l.historyLimit = n
		}
	}
}

// NewLedger returns a ledger stamping entries with time.Now.
func NewLedger(logger *logger.Logger, opts ...Option) *Ledger {
	l := &Ledger{
		now:          time.Now,
		historyLimit: MaxHistoryLimit,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// RecordMutation appends the audit entry describing m through w.
//
// A mutation with zero changes is a no-op and returns (nil, nil). A mutation
// breaking the contract returns [ErrAuditContractViolation] and appends
// nothing: create changes carry only new values, delete changes only old
// values, update changes at least one side. Designated values are redacted
// before the entry is handed to w.
func (l *Ledger) RecordMutation(ctx context.Context, w Appender, m models.Mutation) (*models.AuditEntry, error) {
	log := logger.FromContext(ctx)

	if err := validateMutation(m); err != nil {
		log.Err(err).
			Str("func", "Ledger.RecordMutation").
			Str("entity_type", string(m.EntityType)).
			Str("entity_id", m.EntityID).
			Str("action", string(m.Action)).
			Msg("audit mutation rejected")
		emitViolation(ctx, m, err)
		return nil, err
	}

	if len(m.Changes) == 0 {
		log.Warn().
			Str("func", "Ledger.RecordMutation").
			Str("entity_type", string(m.EntityType)).
			Str("entity_id", m.EntityID).
			Msg("mutation without changes, nothing to audit")
		return nil, nil
	}

	entry := models.AuditEntry{
		EntityType:  m.EntityType,
		EntityID:    m.EntityID,
		Action:      m.Action,
		Timestamp:   l.now().UTC(),
		PerformedBy: m.ActorID,
		Changes:     Redact(m.EntityType, m.Changes),
		IPAddress:   m.Context.IPAddress,
		UserAgent:   m.Context.UserAgent,
	}

	saved, err := w.AppendAuditEntry(ctx, entry)
	if err != nil {
		log.Err(err).
			Str("func", "Ledger.RecordMutation").
			Str("entity_type", string(m.EntityType)).
			Str("entity_id", m.EntityID).
			Msg("failed to append audit entry")
		return nil, fmt.Errorf("%w: %w", ErrAppendingEntry, err)
	}

	emitAppended(ctx, saved)

	return &saved, nil
}

// History returns the entries of one entity, newest first, at most the
// configured limit.
func (l *Ledger) History(ctx context.Context, r Reader, entityType models.EntityType, entityID string) ([]models.AuditEntry, error) {
	log := logger.FromContext(ctx)

	entries, err := r.ListAuditEntries(ctx, entityType, entityID, uint64(l.historyLimit))
	if err != nil {
		log.Err(err).
			Str("func", "Ledger.History").
			Str("entity_type", string(entityType)).
			Str("entity_id", entityID).
			Msg("failed to read audit history")
		return nil, fmt.Errorf("%w: %w", ErrReadingHistory, err)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Timestamp.Equal(entries[j].Timestamp) {
			return entries[i].Timestamp.After(entries[j].Timestamp)
		}
		return entries[i].ID > entries[j].ID
	})
	if len(entries) > l.historyLimit {
		entries = entries[:l.historyLimit]
	}

	return entries, nil
}

func validateMutation(m models.Mutation) error {
	var violations errsx.Map

	if !m.EntityType.Valid() {
		violations.Set("entityType", fmt.Errorf("unknown entity type %q", m.EntityType))
	}
	if m.EntityID == "" {
		violations.Set("entityId", fmt.Errorf("entity id is required"))
	}
	if !m.Action.Valid() {
		violations.Set("action", fmt.Errorf("unknown action %q", m.Action))
	}
	if m.ActorID == "" {
		violations.Set("performedBy", fmt.Errorf("actor id is required"))
	}

	for i, c := range m.Changes {
		key := fmt.Sprintf("changes[%d]", i)
		if c.Field == "" {
			violations.Set(key+".field", fmt.Errorf("field name is required"))
		}

		switch m.Action {
		case models.ActionCreate:
			if c.OldValue != nil {
				violations.Set(key+".oldValue", fmt.Errorf("create change %q must not carry an old value", c.Field))
			}
			if c.NewValue == nil {
				violations.Set(key+".newValue", fmt.Errorf("create change %q must carry a new value", c.Field))
			}
		case models.ActionDelete:
			if c.NewValue != nil {
				violations.Set(key+".newValue", fmt.Errorf("delete change %q must not carry a new value", c.Field))
			}
			if c.OldValue == nil {
				violations.Set(key+".oldValue", fmt.Errorf("delete change %q must carry an old value", c.Field))
			}
		case models.ActionUpdate:
			if c.OldValue == nil && c.NewValue == nil {
				violations.Set(key, fmt.Errorf("update change %q carries neither value", c.Field))
			}
		}
	}

	if !violations.IsEmpty() {
		return fmt.Errorf("%w: %w", ErrAuditContractViolation, violations.AsError())
	}

	return nil
}
