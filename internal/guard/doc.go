// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package guard applies the cipher codec to the designated fields of
// protected records.
//
// Write paths call [Guard.Protect] before a record reaches storage: every
// non-empty designated value that is not already a well-formed envelope is
// encrypted, list items one by one. Protect is idempotent, so re-saving an
// unmodified record leaves its stored bytes untouched.
//
// Read paths have two flavours. [Guard.Reveal] and [Guard.RevealInPlace] are
// best effort: a value that fails to decrypt is replaced by
// [DecryptionErrorMarker], logged, and signalled on
// [SignalDecryptFailed], so one corrupted field never fails a whole read.
// [Guard.Open] and [Guard.OpenInPlace] are strict and return the error.
package guard
