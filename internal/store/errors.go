// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrRecordNotFound is returned when a lookup, update or delete targets
	// a record that does not exist.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrRecordAlreadyExists is returned when an insert collides with a
	// unique constraint (record id, profile owner, appointment).
	ErrRecordAlreadyExists = errors.New("record already exists")

	// ErrPlaintextDesignatedField is returned when a record reaches the
	// storage boundary with a designated field that is not a ciphertext
	// envelope. Nothing is written.
	ErrPlaintextDesignatedField = errors.New("designated field is not encrypted")

	// ErrUnknownDriver is returned by [NewConnect] for unsupported drivers.
	ErrUnknownDriver = errors.New("unknown database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingDocument is returned when a record or change list cannot
	// be encoded to, or decoded from, its JSON column.
	ErrEncodingDocument = errors.New("failed to encode document")
)
