// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-med-keeper/internal/logger"
	"github.com/MKhiriev/go-med-keeper/models"
)

var auditColumns = []string{
	"id", "entity_type", "entity_id", "action", "performed_at",
	"performed_by", "changes", "ip_address", "user_agent",
}

// auditRepository appends to and reads from "audit_logs". It has no update
// or delete path; the schema rejects both as well.
type auditRepository struct {
	q       DBTX
	builder sq.StatementBuilderType
	table   string
}

func newAuditRepository(q DBTX, builder sq.StatementBuilderType) AuditRepository {
	return &auditRepository{
		q:       q,
		builder: builder,
		table:   models.AuditEntry{}.TableName(),
	}
}

// AppendAuditEntry inserts entry and returns it with the id assigned by the
// database.
func (r *auditRepository) AppendAuditEntry(ctx context.Context, entry models.AuditEntry) (models.AuditEntry, error) {
	log := logger.FromContext(ctx)

	changes := entry.Changes
	if changes == nil {
		changes = []models.Change{}
	}
	encoded, err := json.Marshal(changes)
	if err != nil {
		return models.AuditEntry{}, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	query, args, err := r.builder.Insert(r.table).
		Columns(auditColumns[1:]...).
		Values(
			string(entry.EntityType),
			entry.EntityID,
			string(entry.Action),
			entry.Timestamp,
			entry.PerformedBy,
			string(encoded),
			entry.IPAddress,
			entry.UserAgent,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.AuditEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.q.QueryRowContext(ctx, query, args...).Scan(&entry.ID); err != nil {
		log.Err(err).
			Str("func", "auditRepository.AppendAuditEntry").
			Str("entity_type", string(entry.EntityType)).
			Str("entity_id", entry.EntityID).
			Msg("failed to insert audit entry")
		return models.AuditEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	entry.Changes = changes

	return entry, nil
}

// ListAuditEntries returns at most limit entries of one entity, newest first.
func (r *auditRepository) ListAuditEntries(ctx context.Context, entityType models.EntityType, entityID string, limit uint64) ([]models.AuditEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.Select(auditColumns...).
		From(r.table).
		Where(sq.Eq{"entity_type": string(entityType), "entity_id": entityID}).
		OrderBy("performed_at DESC", "id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "auditRepository.ListAuditEntries").
			Str("entity_type", string(entityType)).
			Str("entity_id", entityID).
			Msg("failed to execute query for audit history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.AuditEntry, 0, limit)
	for rows.Next() {
		var (
			entry   models.AuditEntry
			changes []byte
		)
		scanErr := rows.Scan(
			&entry.ID,
			&entry.EntityType,
			&entry.EntityID,
			&entry.Action,
			&entry.Timestamp,
			&entry.PerformedBy,
			&changes,
			&entry.IPAddress,
			&entry.UserAgent,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "auditRepository.ListAuditEntries").
				Str("entity_id", entityID).
				Msg("failed to scan audit row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		if err := json.Unmarshal(changes, &entry.Changes); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
		}
		entry.Timestamp = entry.Timestamp.UTC()

		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "auditRepository.ListAuditEntries").
			Str("entity_id", entityID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return entries, nil
}
