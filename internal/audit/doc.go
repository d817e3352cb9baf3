// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package audit implements the append-only audit ledger of protected
// record mutations.
//
// [Ledger.RecordMutation] enforces the action/field-presence contract,
// strips designated content from every change by field name (it does not
// trust the caller's redaction), stamps the entry with the server clock and
// appends it through an [Appender] that the caller binds to the same
// transaction as the record write. [Ledger.History] reads entries of one
// entity newest first, capped at [MaxHistoryLimit].
package audit
