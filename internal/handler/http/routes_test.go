// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-med-keeper/internal/guard"
	"github.com/MKhiriev/go-med-keeper/internal/service"
	"github.com/MKhiriev/go-med-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, body []byte) string {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Error
}

// ─────────────────────────────────────────────
// Patients
// ─────────────────────────────────────────────

func TestRoutes_CreatePatient(t *testing.T) {
	s := newTestServices()
	s.patients.createFn = func(_ context.Context, viewer models.Viewer, p models.Patient) (*models.Patient, error) {
		assert.Equal(t, patientViewer, viewer)
		p.ID = "p-1"
		p.UserID = viewer.UserID
		return &p, nil
	}
	router := s.handler().Init()

	rec := do(router, http.MethodPost, "/api/patients/", "patient-token",
		`{"age":41,"bloodGroup":"O+","address":"123 Main St","medicalHistory":["asthma"]}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got models.Patient
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "p-1", got.ID)
	assert.Equal(t, "u-1", got.UserID)
	assert.Equal(t, "123 Main St", got.Address)
	assert.Equal(t, []string{"asthma"}, got.MedicalHistory)
}

func TestRoutes_CreatePatient_InvalidJSON(t *testing.T) {
	router := newTestServices().handler().Init()

	rec := do(router, http.MethodPost, "/api/patients/", "patient-token", `{"age":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec.Body.Bytes()), ErrInvalidJSON.Error())
}

func TestRoutes_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "forbidden",
			err:        service.ErrForbidden,
			wantStatus: http.StatusForbidden,
			wantBody:   service.ErrForbidden.Error(),
		},
		{
			name:       "not found",
			err:        service.ErrPatientNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   service.ErrPatientNotFound.Error(),
		},
		{
			name:       "server error hides details",
			err:        fmt.Errorf("%w: address: %w", guard.ErrOpenFailed, errors.New("cipher: message authentication failed")),
			wantStatus: http.StatusInternalServerError,
			wantBody:   http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServices()
			s.patients.getFn = func(context.Context, models.Viewer, string) (*models.Patient, error) {
				return nil, tt.err
			}
			router := s.handler().Init()

			rec := do(router, http.MethodGet, "/api/patients/p-1", "doctor-token", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, decodeError(t, rec.Body.Bytes()))
		})
	}
}

func TestRoutes_UpdatePatient_PassesPatch(t *testing.T) {
	s := newTestServices()
	s.patients.updateFn = func(_ context.Context, _ models.Viewer, id string, patch models.PatientPatch) (*models.Patient, error) {
		assert.Equal(t, "p-1", id)
		require.NotNil(t, patch.Address)
		assert.Equal(t, "456 Oak Ave", *patch.Address)
		assert.Nil(t, patch.Age)
		return &models.Patient{ID: id, Address: *patch.Address}, nil
	}
	router := s.handler().Init()

	rec := do(router, http.MethodPatch, "/api/patients/p-1", "patient-token", `{"address":"456 Oak Ave"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_DeletePatient(t *testing.T) {
	s := newTestServices()
	var deleted string
	s.patients.deleteFn = func(_ context.Context, _ models.Viewer, id string) error {
		deleted = id
		return nil
	}
	router := s.handler().Init()

	rec := do(router, http.MethodDelete, "/api/patients/p-1", "admin-token", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "p-1", deleted)
	assert.Empty(t, rec.Body.String())
}

func TestRoutes_PatientByUser(t *testing.T) {
	router := newTestServices().handler().Init()

	rec := do(router, http.MethodGet, "/api/patients/by-user/u-1", "doctor-token", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.Patient
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "u-1", got.UserID)
}

// ─────────────────────────────────────────────
// Medical summaries
// ─────────────────────────────────────────────

func TestRoutes_CreateMedicalSummary(t *testing.T) {
	s := newTestServices()
	s.summaries.createFn = func(_ context.Context, viewer models.Viewer, m models.MedicalSummary) (*models.MedicalSummary, error) {
		assert.Equal(t, doctorViewer, viewer)
		m.ID = "s-1"
		return &m, nil
	}
	router := s.handler().Init()

	rec := do(router, http.MethodPost, "/api/medical-summaries/", "doctor-token",
		`{"appointmentId":"a-1","patientUserId":"u-1","notes":"rest"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got models.MedicalSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "s-1", got.ID)
	assert.Equal(t, "a-1", got.AppointmentID)
}

func TestRoutes_MedicalSummaryByAppointment(t *testing.T) {
	router := newTestServices().handler().Init()

	rec := do(router, http.MethodGet, "/api/medical-summaries/by-appointment/a-7", "patient-token", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.MedicalSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "a-7", got.AppointmentID)
}

// ─────────────────────────────────────────────
// Audit
// ─────────────────────────────────────────────

func TestRoutes_AuditHistory_AdminOnly(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		wantStatus int
	}{
		{"patient", "patient-token", http.StatusForbidden},
		{"doctor", "doctor-token", http.StatusForbidden},
		{"admin", "admin-token", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestServices().handler().Init()

			rec := do(router, http.MethodGet, "/api/audit/patient/p-1", tt.token, "")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRoutes_AuditHistory_PassesEntity(t *testing.T) {
	s := newTestServices()
	s.phi.historyFn = func(_ context.Context, entityType models.EntityType, entityID string) ([]models.AuditEntry, error) {
		assert.Equal(t, models.EntityMedicalSummary, entityType)
		assert.Equal(t, "s-1", entityID)
		return []models.AuditEntry{{ID: 7, EntityType: entityType, EntityID: entityID, Action: models.ActionCreate}}, nil
	}
	router := s.handler().Init()

	rec := do(router, http.MethodGet, "/api/audit/"+string(models.EntityMedicalSummary)+"/s-1", "admin-token", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var entries []models.AuditEntry
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, int64(7), entries[0].ID)
}

func TestRoutes_AuditHistory_InvalidEntityType(t *testing.T) {
	s := newTestServices()
	s.phi.historyFn = func(_ context.Context, entityType models.EntityType, _ string) ([]models.AuditEntry, error) {
		return nil, fmt.Errorf("%w: %q", service.ErrInvalidEntityType, entityType)
	}
	router := s.handler().Init()

	rec := do(router, http.MethodGet, "/api/audit/invoice/i-1", "admin-token", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// Tokens
// ─────────────────────────────────────────────

func TestRoutes_IssueToken(t *testing.T) {
	s := newTestServices()
	router := s.handler().Init()

	rec := do(router, http.MethodPost, "/api/auth/token", "admin-token", `{"userId":"d-9","role":"doctor"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed-d-9", rec.Header().Get("Authorization"))

	var resp tokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "signed-d-9", resp.Token)
	assert.Equal(t, []models.Viewer{{UserID: "d-9", Role: models.RoleDoctor}}, s.auth.issued)
}

func TestRoutes_IssueToken_Rejects(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		body       string
		wantStatus int
	}{
		{"doctor cannot mint", "doctor-token", `{"userId":"d-9","role":"doctor"}`, http.StatusForbidden},
		{"unknown role", "admin-token", `{"userId":"d-9","role":"nurse"}`, http.StatusBadRequest},
		{"missing user", "admin-token", `{"role":"doctor"}`, http.StatusBadRequest},
		{"broken body", "admin-token", `{`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServices()
			router := s.handler().Init()

			rec := do(router, http.MethodPost, "/api/auth/token", tt.token, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Empty(t, s.auth.issued)
		})
	}
}

func TestRoutes_UnknownToken(t *testing.T) {
	router := newTestServices().handler().Init()

	rec := do(router, http.MethodGet, "/api/patients/p-1", "stolen-token", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ─────────────────────────────────────────────
// Listings
// ─────────────────────────────────────────────

func TestRoutes_ListPatients(t *testing.T) {
	s := newTestServices()
	s.patients.listFn = func(_ context.Context, viewer models.Viewer, q models.ListQuery) (models.Page[*models.Patient], error) {
		assert.Equal(t, adminViewer, viewer)
		assert.Equal(t, models.ListQuery{Page: 2, Limit: 5, SortBy: "updatedAt", SortOrder: "asc"}, q)
		return models.NewPage([]*models.Patient{{ID: "p-6", Address: "123 Main St"}}, models.ListQuery{Page: 2, Limit: 5}, 6), nil
	}
	router := s.handler().Init()

	rec := do(router, http.MethodGet, "/api/patients/?page=2&limit=5&sortBy=updatedAt&sortOrder=asc", "admin-token", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.Page[models.Patient]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Data, 1)
	assert.Equal(t, "p-6", got.Data[0].ID)
	assert.Equal(t, models.PageMeta{Page: 2, Limit: 5, Total: 6, TotalPages: 2}, got.Meta)
}

func TestRoutes_ListPatients_InvalidQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"page not a number", "?page=two"},
		{"zero page", "?page=0"},
		{"negative limit", "?limit=-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServices()
			s.patients.listFn = func(context.Context, models.Viewer, models.ListQuery) (models.Page[*models.Patient], error) {
				t.Error("service must not be called")
				return models.Page[*models.Patient]{}, nil
			}
			router := s.handler().Init()

			rec := do(router, http.MethodGet, "/api/patients/"+tt.query, "admin-token", "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decodeError(t, rec.Body.Bytes()), ErrInvalidQuery.Error())
		})
	}
}

func TestRoutes_ListPatients_Forbidden(t *testing.T) {
	s := newTestServices()
	s.patients.listFn = func(context.Context, models.Viewer, models.ListQuery) (models.Page[*models.Patient], error) {
		return models.Page[*models.Patient]{}, service.ErrForbidden
	}
	router := s.handler().Init()

	rec := do(router, http.MethodGet, "/api/patients/", "doctor-token", "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRoutes_ListMedicalSummaries(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		token      string
		wantViewer models.Viewer
		wantFilter models.MedicalSummaryFilter
	}{
		{
			name:       "all",
			path:       "/api/medical-summaries/",
			token:      "admin-token",
			wantViewer: adminViewer,
			wantFilter: models.MedicalSummaryFilter{},
		},
		{
			name:       "by patient",
			path:       "/api/medical-summaries/by-patient/u-1",
			token:      "patient-token",
			wantViewer: patientViewer,
			wantFilter: models.MedicalSummaryFilter{PatientUserID: "u-1"},
		},
		{
			name:       "by doctor",
			path:       "/api/medical-summaries/by-doctor/d-1?limit=3",
			token:      "doctor-token",
			wantViewer: doctorViewer,
			wantFilter: models.MedicalSummaryFilter{DoctorUserID: "d-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServices()
			s.summaries.listFn = func(_ context.Context, viewer models.Viewer, filter models.MedicalSummaryFilter, q models.ListQuery) (models.Page[*models.MedicalSummary], error) {
				assert.Equal(t, tt.wantViewer, viewer)
				assert.Equal(t, tt.wantFilter, filter)
				return models.NewPage([]*models.MedicalSummary{{ID: "s-1", Notes: "[ENCRYPTED]"}}, q.WithDefaults(), 1), nil
			}
			router := s.handler().Init()

			rec := do(router, http.MethodGet, tt.path, tt.token, "")

			require.Equal(t, http.StatusOK, rec.Code)
			var got models.Page[models.MedicalSummary]
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			require.Len(t, got.Data, 1)
			assert.Equal(t, "s-1", got.Data[0].ID)
			assert.Equal(t, uint64(1), got.Meta.Total)
		})
	}
}

func TestRoutes_ListMedicalSummaries_ServiceError(t *testing.T) {
	s := newTestServices()
	s.summaries.listFn = func(context.Context, models.Viewer, models.MedicalSummaryFilter, models.ListQuery) (models.Page[*models.MedicalSummary], error) {
		return models.Page[*models.MedicalSummary]{}, fmt.Errorf("%w: limit", service.ErrInvalidDataProvided)
	}
	router := s.handler().Init()

	rec := do(router, http.MethodGet, "/api/medical-summaries/by-doctor/d-1?limit=500", "doctor-token", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
