// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-med-keeper/internal/crypto"
	"github.com/MKhiriev/go-med-keeper/internal/logger"
	"github.com/MKhiriev/go-med-keeper/models"
)

// documentStore is the shared plumbing of the record tables: one row per
// record with the whole record encoded as JSON in the "document" column and a
// few key columns next to it for lookups and constraints.
type documentStore struct {
	q          DBTX
	builder    sq.StatementBuilderType
	classifier ErrorClassificator
	table      string
}

const upsertDocumentSuffix = "ON CONFLICT (id) DO UPDATE SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at"

// ensureSealed rejects records whose designated values are not envelopes.
// Empty values carry no content and are accepted.
func ensureSealed(rec models.Record) error {
	for _, field := range rec.SensitiveFields() {
		if field.IsList() {
			for i, item := range *field.Items {
				if item != "" && !crypto.IsWellFormedEnvelope(item) {
					return fmt.Errorf("%w: %s[%d]", ErrPlaintextDesignatedField, field.Path, i)
				}
			}
			continue
		}

		if v := *field.Value; v != "" && !crypto.IsWellFormedEnvelope(v) {
			return fmt.Errorf("%w: %s", ErrPlaintextDesignatedField, field.Path)
		}
	}

	return nil
}

func encodeDocument(rec models.Record) (string, error) {
	if err := ensureSealed(rec); err != nil {
		return "", err
	}

	doc, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	return string(doc), nil
}

func (s documentStore) insert(ctx context.Context, rec models.Record, row map[string]any) error {
	return s.write(ctx, "insert", rec, row, "")
}

func (s documentStore) upsert(ctx context.Context, rec models.Record, row map[string]any) error {
	return s.write(ctx, "upsert", rec, row, upsertDocumentSuffix)
}

func (s documentStore) write(ctx context.Context, op string, rec models.Record, row map[string]any, suffix string) error {
	log := logger.FromContext(ctx)

	doc, err := encodeDocument(rec)
	if err != nil {
		log.Err(err).
			Str("func", "documentStore."+op).
			Str("table", s.table).
			Str("entity_id", rec.EntityID()).
			Msg("record rejected at storage boundary")
		return err
	}
	row["document"] = doc

	insert := s.builder.Insert(s.table).SetMap(row)
	if suffix != "" {
		insert = insert.Suffix(suffix)
	}
	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.q.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "documentStore."+op).
			Str("table", s.table).
			Str("entity_id", rec.EntityID()).
			Msg("failed to write record")
		if s.classifier.IsUniqueViolation(err) {
			return ErrRecordAlreadyExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// findOne decodes the document of the single row matching where into dst.
func (s documentStore) findOne(ctx context.Context, where sq.Eq, dst any) error {
	log := logger.FromContext(ctx)

	query, args, err := s.builder.Select("document").From(s.table).Where(where).Limit(1).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var doc []byte
	if err = s.q.QueryRowContext(ctx, query, args...).Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrRecordNotFound
		}
		log.Err(err).
			Str("func", "documentStore.findOne").
			Str("table", s.table).
			Msg("failed to read record")
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = json.Unmarshal(doc, dst); err != nil {
		log.Err(err).
			Str("func", "documentStore.findOne").
			Str("table", s.table).
			Msg("stored document is not valid json")
		return fmt.Errorf("%w: %w", ErrEncodingDocument, err)
	}

	return nil
}

// sortColumns maps the sortable record attributes to their key columns.
var sortColumns = map[string]string{
	models.SortByCreatedAt: "created_at",
	models.SortByUpdatedAt: "updated_at",
}

func orderBy(q models.ListQuery) []string {
	column, ok := sortColumns[q.SortBy]
	if !ok {
		column = sortColumns[models.SortByCreatedAt]
	}
	direction := "DESC"
	if q.SortOrder == models.SortAsc {
		direction = "ASC"
	}

	return []string{column + " " + direction, "id " + direction}
}

// count returns the number of rows matching where.
func (s documentStore) count(ctx context.Context, where sq.Eq) (uint64, error) {
	sel := s.builder.Select("COUNT(*)").From(s.table)
	if len(where) > 0 {
		sel = sel.Where(where)
	}
	query, args, err := sel.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total uint64
	if err = s.q.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "documentStore.count").
			Str("table", s.table).
			Msg("failed to count records")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}

// listDocuments decodes one page of the rows matching where, ordered as q
// asks, and reports how many rows match in total.
func listDocuments[T any](ctx context.Context, s documentStore, where sq.Eq, q models.ListQuery) ([]*T, uint64, error) {
	log := logger.FromContext(ctx)

	total, err := s.count(ctx, where)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []*T{}, 0, nil
	}

	sel := s.builder.Select("document").From(s.table)
	if len(where) > 0 {
		sel = sel.Where(where)
	}
	query, args, err := sel.OrderBy(orderBy(q)...).Limit(q.Limit).Offset(q.Offset()).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "documentStore.list").
			Str("table", s.table).
			Msg("failed to execute list query")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]*T, 0, q.Limit)
	for rows.Next() {
		var doc []byte
		if err = rows.Scan(&doc); err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		rec := new(T)
		if err = json.Unmarshal(doc, rec); err != nil {
			log.Err(err).
				Str("func", "documentStore.list").
				Str("table", s.table).
				Msg("stored document is not valid json")
			return nil, 0, fmt.Errorf("%w: %w", ErrEncodingDocument, err)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, total, nil
}

func (s documentStore) delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := s.builder.Delete(s.table).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := s.q.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "documentStore.delete").
			Str("table", s.table).
			Str("entity_id", id).
			Msg("failed to delete record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}
