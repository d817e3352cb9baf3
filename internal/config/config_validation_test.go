// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-med-keeper/internal/crypto"
	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr []error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{
			name:    "missing key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.EncryptionKey = "" },
			wantErr: []error{ErrInvalidAppConfigs, crypto.ErrInvalidKeyMaterial},
		},
		{
			name:    "short key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.EncryptionKey = testEncryptionKey[:62] },
			wantErr: []error{ErrInvalidAppConfigs, crypto.ErrInvalidKeyMaterial},
		},
		{
			name:    "non hex key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.EncryptionKey = strings.Repeat("zz", 32) },
			wantErr: []error{ErrInvalidAppConfigs, crypto.ErrInvalidKeyMaterial},
		},
		{
			name:    "missing dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: []error{ErrInvalidStorageConfigs},
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "mysql" },
			wantErr: []error{ErrInvalidStorageConfigs},
		},
		{
			name:    "history limit above cap",
			mutate:  func(cfg *StructuredConfig) { cfg.Audit.HistoryLimit = 101 },
			wantErr: []error{ErrInvalidAuditConfigs},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			for _, want := range tt.wantErr {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestValidateServer(t *testing.T) {
	cfg := validConfig()
	assert.ErrorIs(t, cfg.validateServer(), ErrInvalidServerConfigs)

	cfg.App.TokenSignKey = "secret"
	cfg.Server.HTTPAddress = "localhost:8080"
	assert.NoError(t, cfg.validateServer())
}
