// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/MKhiriev/go-med-keeper/internal/logger"
	"github.com/MKhiriev/go-med-keeper/internal/service"
	"github.com/MKhiriev/go-med-keeper/models"
)

// ─────────────────────────────────────────────
// Fakes
// ─────────────────────────────────────────────

var (
	patientViewer = models.Viewer{UserID: "u-1", Role: models.RolePatient}
	doctorViewer  = models.Viewer{UserID: "d-1", Role: models.RoleDoctor}
	adminViewer   = models.Viewer{UserID: "admin-1", Role: models.RoleAdmin}
)

// fakeAuthService accepts the tokens listed in viewers.
type fakeAuthService struct {
	viewers map[string]models.Viewer
	issued  []models.Viewer
}

func (f *fakeAuthService) CreateToken(_ context.Context, viewer models.Viewer) (models.Token, error) {
	f.issued = append(f.issued, viewer)
	return models.Token{SignedString: "signed-" + viewer.UserID, Viewer: viewer}, nil
}

func (f *fakeAuthService) ParseToken(_ context.Context, tokenString string) (models.Token, error) {
	viewer, ok := f.viewers[tokenString]
	if !ok {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return models.Token{SignedString: tokenString, Viewer: viewer}, nil
}

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(context.Context) string { return f.version }

func (f *fakeAppInfoService) GetBuildInfo(context.Context) models.BuildInfo {
	return models.BuildInfo{Version: f.version, Date: "2026-01-02", Commit: "abc123"}
}

type fakePatientService struct {
	createFn  func(ctx context.Context, viewer models.Viewer, p models.Patient) (*models.Patient, error)
	getFn     func(ctx context.Context, viewer models.Viewer, id string) (*models.Patient, error)
	updateFn  func(ctx context.Context, viewer models.Viewer, id string, patch models.PatientPatch) (*models.Patient, error)
	deleteFn  func(ctx context.Context, viewer models.Viewer, id string) error
	historyFn func(ctx context.Context, viewer models.Viewer, id string) ([]models.AuditEntry, error)
	listFn    func(ctx context.Context, viewer models.Viewer, q models.ListQuery) (models.Page[*models.Patient], error)
}

func (f *fakePatientService) Create(ctx context.Context, viewer models.Viewer, p models.Patient) (*models.Patient, error) {
	if f.createFn != nil {
		return f.createFn(ctx, viewer, p)
	}
	return &p, nil
}

func (f *fakePatientService) Update(ctx context.Context, viewer models.Viewer, id string, patch models.PatientPatch) (*models.Patient, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, viewer, id, patch)
	}
	return &models.Patient{ID: id}, nil
}

func (f *fakePatientService) Delete(ctx context.Context, viewer models.Viewer, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, viewer, id)
	}
	return nil
}

func (f *fakePatientService) Get(ctx context.Context, viewer models.Viewer, id string) (*models.Patient, error) {
	if f.getFn != nil {
		return f.getFn(ctx, viewer, id)
	}
	return &models.Patient{ID: id}, nil
}

func (f *fakePatientService) GetByUserID(_ context.Context, _ models.Viewer, userID string) (*models.Patient, error) {
	return &models.Patient{UserID: userID}, nil
}

func (f *fakePatientService) List(ctx context.Context, viewer models.Viewer, q models.ListQuery) (models.Page[*models.Patient], error) {
	if f.listFn != nil {
		return f.listFn(ctx, viewer, q)
	}
	return models.NewPage[*models.Patient](nil, q, 0), nil
}

func (f *fakePatientService) History(ctx context.Context, viewer models.Viewer, id string) ([]models.AuditEntry, error) {
	if f.historyFn != nil {
		return f.historyFn(ctx, viewer, id)
	}
	return []models.AuditEntry{}, nil
}

type fakeSummaryService struct {
	createFn func(ctx context.Context, viewer models.Viewer, m models.MedicalSummary) (*models.MedicalSummary, error)
	// listFn serves every listing; filter names the scope the route asked for
	listFn func(ctx context.Context, viewer models.Viewer, filter models.MedicalSummaryFilter, q models.ListQuery) (models.Page[*models.MedicalSummary], error)
}

func (f *fakeSummaryService) Create(ctx context.Context, viewer models.Viewer, m models.MedicalSummary) (*models.MedicalSummary, error) {
	if f.createFn != nil {
		return f.createFn(ctx, viewer, m)
	}
	return &m, nil
}

func (f *fakeSummaryService) Update(_ context.Context, _ models.Viewer, id string, _ models.MedicalSummaryPatch) (*models.MedicalSummary, error) {
	return &models.MedicalSummary{ID: id}, nil
}

func (f *fakeSummaryService) Delete(context.Context, models.Viewer, string) error { return nil }

func (f *fakeSummaryService) Get(_ context.Context, _ models.Viewer, id string) (*models.MedicalSummary, error) {
	return &models.MedicalSummary{ID: id}, nil
}

func (f *fakeSummaryService) GetByAppointmentID(_ context.Context, _ models.Viewer, appointmentID string) (*models.MedicalSummary, error) {
	return &models.MedicalSummary{AppointmentID: appointmentID}, nil
}

func (f *fakeSummaryService) List(ctx context.Context, viewer models.Viewer, q models.ListQuery) (models.Page[*models.MedicalSummary], error) {
	return f.list(ctx, viewer, models.MedicalSummaryFilter{}, q)
}

func (f *fakeSummaryService) ListByPatient(ctx context.Context, viewer models.Viewer, patientUserID string, q models.ListQuery) (models.Page[*models.MedicalSummary], error) {
	return f.list(ctx, viewer, models.MedicalSummaryFilter{PatientUserID: patientUserID}, q)
}

func (f *fakeSummaryService) ListByDoctor(ctx context.Context, viewer models.Viewer, doctorUserID string, q models.ListQuery) (models.Page[*models.MedicalSummary], error) {
	return f.list(ctx, viewer, models.MedicalSummaryFilter{DoctorUserID: doctorUserID}, q)
}

func (f *fakeSummaryService) list(ctx context.Context, viewer models.Viewer, filter models.MedicalSummaryFilter, q models.ListQuery) (models.Page[*models.MedicalSummary], error) {
	if f.listFn != nil {
		return f.listFn(ctx, viewer, filter, q)
	}
	return models.NewPage[*models.MedicalSummary](nil, q, 0), nil
}

func (f *fakeSummaryService) History(context.Context, models.Viewer, string) ([]models.AuditEntry, error) {
	return []models.AuditEntry{}, nil
}

// fakePHIService serves only History; the handlers never call the rest.
type fakePHIService struct {
	service.PHIService
	historyFn func(ctx context.Context, entityType models.EntityType, entityID string) ([]models.AuditEntry, error)
}

func (f *fakePHIService) History(ctx context.Context, entityType models.EntityType, entityID string) ([]models.AuditEntry, error) {
	return f.historyFn(ctx, entityType, entityID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type testServices struct {
	auth      *fakeAuthService
	patients  *fakePatientService
	summaries *fakeSummaryService
	phi       *fakePHIService
}

func newTestServices() *testServices {
	return &testServices{
		auth: &fakeAuthService{viewers: map[string]models.Viewer{
			"patient-token": patientViewer,
			"doctor-token":  doctorViewer,
			"admin-token":   adminViewer,
		}},
		patients:  &fakePatientService{},
		summaries: &fakeSummaryService{},
		phi: &fakePHIService{historyFn: func(context.Context, models.EntityType, string) ([]models.AuditEntry, error) {
			return []models.AuditEntry{}, nil
		}},
	}
}

func (s *testServices) handler() *Handler {
	return NewHandler(&service.Services{
		PHIService:            s.phi,
		PatientService:        s.patients,
		MedicalSummaryService: s.summaries,
		AuthService:           s.auth,
		AppInfoService:        &fakeAppInfoService{version: "1.2.3"},
	}, logger.Nop())
}

// do sends a request through the full router.
func do(h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
