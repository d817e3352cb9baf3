// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package audit

import "errors"

var (
	// ErrAuditContractViolation is returned when a mutation does not satisfy
	// the action/field-presence contract. Nothing is appended and the
	// enclosing transaction is expected to abort.
	ErrAuditContractViolation = errors.New("audit contract violation")

	// ErrAppendingEntry wraps a failure of the underlying append.
	ErrAppendingEntry = errors.New("failed to append audit entry")

	// ErrReadingHistory wraps a failure of the underlying history read.
	ErrReadingHistory = errors.New("failed to read audit history")
)
