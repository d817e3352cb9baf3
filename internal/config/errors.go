// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when the merged configuration is incomplete or
// invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing or malformed encryption key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates settings the HTTP server cannot
	// start without (for example, a missing token sign key).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAuditConfigs indicates an audit history limit outside
	// the supported range.
	ErrInvalidAuditConfigs = errors.New("invalid audit configuration")
)
