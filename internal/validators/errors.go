// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID        = errors.New("invalid user ID")
	ErrInvalidAge           = errors.New("age must be between 0 and 150")
	ErrInvalidHeight        = errors.New("height must be between 0 and 300")
	ErrInvalidWeight        = errors.New("weight must be between 0 and 500")
	ErrInvalidBloodGroup    = errors.New("invalid blood group")
	ErrInvalidGender        = errors.New("invalid gender")
	ErrInvalidContact       = errors.New("emergency contact requires name and phone")
	ErrEmptyListItem        = errors.New("list items cannot be empty")
	ErrInvalidAppointmentID = errors.New("invalid appointment ID")
	ErrInvalidPatientUserID = errors.New("invalid patient user ID")
	ErrInvalidDoctorUserID  = errors.New("invalid doctor user ID")
	ErrNoFieldsToUpdate     = errors.New("at least one field must be provided for update")

	ErrInvalidListLimit = errors.New("limit must be between 1 and 100")
	ErrInvalidSortBy    = errors.New("sortBy must be createdAt or updatedAt")
	ErrInvalidSortOrder = errors.New("sortOrder must be asc or desc")
)
