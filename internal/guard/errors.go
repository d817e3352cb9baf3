// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package guard

import "errors"

var (
	// ErrProtectFailed wraps an encryption failure of a designated field.
	ErrProtectFailed = errors.New("failed to protect designated field")

	// ErrOpenFailed wraps a strict decryption failure of a designated field.
	ErrOpenFailed = errors.New("failed to open designated field")

	// ErrUnknownField is returned when a field path is not designated on the
	// record or is absent.
	ErrUnknownField = errors.New("unknown designated field")
)
