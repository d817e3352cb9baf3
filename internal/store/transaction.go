// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-med-keeper/internal/logger"
)

// InTx runs fn inside one transaction. The transaction commits when fn
// returns nil and rolls back when fn returns an error or panics; the error
// of fn is returned unchanged. A record write and its audit entry issued
// through the repositories fn receives are therefore durable together or not
// at all.
func (db *DB) InTx(ctx context.Context, fn TxFunc) error {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "DB.InTx").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err = fn(ctx, newRepositories(tx, db.builder, db.errorClassificator)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Err(rbErr).Str("func", "DB.InTx").Msg("failed to roll back transaction")
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "DB.InTx").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// WithMutation runs fn through t and returns its result. Either every write
// fn made is committed, or none is and the zero T is returned with the
// error.
func WithMutation[T any](ctx context.Context, t Transactor, fn func(ctx context.Context, repos *Repositories) (T, error)) (T, error) {
	var result T

	err := t.InTx(ctx, func(ctx context.Context, repos *Repositories) error {
		out, err := fn(ctx, repos)
		if err != nil {
			return err
		}
		result = out
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}

	return result, nil
}
