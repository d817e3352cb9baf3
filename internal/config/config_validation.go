// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-med-keeper/internal/crypto"
	"github.com/hengadev/errsx"
)

const maxHistoryLimit = 100

// validate checks that the merged [StructuredConfig] satisfies the invariants
// every binary relies on. Every violation is reported, not only the first.
func (cfg *StructuredConfig) validate() error {
	var (
		violations errsx.Map
		causes     []error
	)
	fail := func(key string, err error, sentinels ...error) {
		violations.Set(key, err)
		causes = append(causes, sentinels...)
	}

	if _, err := crypto.ParseKey(cfg.App.EncryptionKey); err != nil {
		fail("app.encryption_key", err, ErrInvalidAppConfigs, crypto.ErrInvalidKeyMaterial)
	}

	if cfg.Storage.DB.DSN == "" {
		fail("storage.db.dsn", errors.New("database dsn is required"), ErrInvalidStorageConfigs)
	}
	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		fail("storage.db.driver", fmt.Errorf("unsupported driver %q", cfg.Storage.DB.Driver), ErrInvalidStorageConfigs)
	}

	if cfg.Audit.HistoryLimit < 1 || cfg.Audit.HistoryLimit > maxHistoryLimit {
		fail("audit.history_limit", fmt.Errorf("history limit must be within 1..%d", maxHistoryLimit), ErrInvalidAuditConfigs)
	}

	if violations.IsEmpty() {
		return nil
	}

	return fmt.Errorf("%w: %w", errors.Join(causes...), violations.AsError())
}

// validateServer adds the checks only the HTTP server needs.
func (cfg *StructuredConfig) validateServer() error {
	var violations errsx.Map

	if cfg.App.TokenSignKey == "" {
		violations.Set("app.token_sign_key", errors.New("token sign key is required"))
	}
	if cfg.Server.HTTPAddress == "" {
		violations.Set("server.address", errors.New("http address is required"))
	}

	if !violations.IsEmpty() {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, violations.AsError())
	}

	return nil
}
