// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a minimal chi.Mux with a set of routes for tests.
// It intentionally does not use Handler.Init() to avoid service/logger setup.
func buildRouter() *chi.Mux {
	router := chi.NewRouter()
	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

	router.Get("/api/items", ok)
	router.Post("/api/items", ok)
	router.Route("/api/records", func(r chi.Router) {
		r.Get("/{id}", ok)
		r.Delete("/{id}", ok)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name        string
		method      string
		path        string
		wantStatus  int
		wantAllowed string
	}{
		{
			name:       "registered method passes through",
			method:     http.MethodGet,
			path:       "/api/items",
			wantStatus: http.StatusOK,
		},
		{
			name:        "unregistered method on flat route",
			method:      http.MethodDelete,
			path:        "/api/items",
			wantStatus:  http.StatusMethodNotAllowed,
			wantAllowed: "GET, POST",
		},
		{
			name:        "unregistered method on mounted parameterised route",
			method:      http.MethodPatch,
			path:        "/api/records/r-1",
			wantStatus:  http.StatusMethodNotAllowed,
			wantAllowed: "GET, DELETE",
		},
		{
			name:       "registered method on mounted route",
			method:     http.MethodDelete,
			path:       "/api/records/r-1",
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			path:       "/api/nonexistent",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantAllowed, rr.Header().Get("Allow"))
		})
	}
}
