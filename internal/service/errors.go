// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrForbidden           = errors.New("action is not permitted for this viewer")

	ErrPatientNotFound        = errors.New("patient profile not found")
	ErrPatientProfileExists   = errors.New("patient profile already exists for this user")
	ErrMedicalSummaryNotFound = errors.New("medical summary not found")
	ErrMedicalSummaryExists   = errors.New("medical summary already exists for this appointment")

	ErrUnsupportedRecord = errors.New("unsupported record type")
	ErrInvalidEntityType = errors.New("invalid entity type")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
