// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

const (
	DefaultListPage  uint64 = 1
	DefaultListLimit uint64 = 10
	MaxListLimit     uint64 = 100

	SortByCreatedAt = "createdAt"
	SortByUpdatedAt = "updatedAt"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// ListQuery selects one page of records. Zero values mean the defaults:
// first page, ten records, newest created first.
type ListQuery struct {
	Page      uint64 `json:"page,omitempty"`
	Limit     uint64 `json:"limit,omitempty"`
	SortBy    string `json:"sortBy,omitempty"`
	SortOrder string `json:"sortOrder,omitempty"`
}

// WithDefaults fills the unset members of q.
func (q ListQuery) WithDefaults() ListQuery {
	if q.Page == 0 {
		q.Page = DefaultListPage
	}
	if q.Limit == 0 {
		q.Limit = DefaultListLimit
	}
	if q.SortBy == "" {
		q.SortBy = SortByCreatedAt
	}
	if q.SortOrder == "" {
		q.SortOrder = SortDesc
	}
	return q
}

// Offset is the number of records before the requested page.
func (q ListQuery) Offset() uint64 {
	if q.Page <= 1 {
		return 0
	}
	return (q.Page - 1) * q.Limit
}

// MedicalSummaryFilter narrows a summary listing. Empty members match
// every summary.
type MedicalSummaryFilter struct {
	PatientUserID string `json:"patientUserId,omitempty"`
	DoctorUserID  string `json:"doctorUserId,omitempty"`
}

type PageMeta struct {
	Page       uint64 `json:"page"`
	Limit      uint64 `json:"limit"`
	Total      uint64 `json:"total"`
	TotalPages uint64 `json:"totalPages"`
}

// Page is one page of projected records together with its position in the
// full result.
type Page[T any] struct {
	Data []T      `json:"data"`
	Meta PageMeta `json:"meta"`
}

// NewPage wraps data fetched for q out of total matching records.
func NewPage[T any](data []T, q ListQuery, total uint64) Page[T] {
	if data == nil {
		data = []T{}
	}

	var pages uint64
	if q.Limit > 0 {
		pages = (total + q.Limit - 1) / q.Limit
	}

	return Page[T]{
		Data: data,
		Meta: PageMeta{Page: q.Page, Limit: q.Limit, Total: total, TotalPages: pages},
	}
}
