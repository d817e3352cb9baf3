// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-med-keeper/internal/config"
	"github.com/MKhiriev/go-med-keeper/internal/logger"
)

// Storages is what the service layer consumes: a Transactor for mutations and
// pool-bound repositories for plain reads.
type Storages struct {
	Transactor   Transactor
	Repositories *Repositories

	db *DB
}

// NewStorages connects to the configured database and migrates it.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("failed to migrate database")
		_ = db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return NewStoragesFromDB(db), nil
}

// NewStoragesFromDB wraps an already connected and migrated database.
func NewStoragesFromDB(db *DB) *Storages {
	return &Storages{
		Transactor:   db,
		Repositories: db.Repositories(),
		db:           db,
	}
}

// DB returns the underlying connection.
func (s *Storages) DB() *DB {
	return s.db
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
