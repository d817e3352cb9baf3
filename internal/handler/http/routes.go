// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-med-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version/", h.getServerVersion)
		r.Get("/api/version/build", h.getBuildInfo)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/patients", func(r chi.Router) {
			r.Get("/", h.listPatients)
			r.Post("/", h.createPatient)
			r.Get("/by-user/{userID}", h.getPatientByUserID)
			r.Get("/{id}", h.getPatient)
			r.Patch("/{id}", h.updatePatient)
			r.Delete("/{id}", h.deletePatient)
			r.Get("/{id}/history", h.getPatientHistory)
		})

		r.Route("/api/medical-summaries", func(r chi.Router) {
			r.Get("/", h.listMedicalSummaries)
			r.Post("/", h.createMedicalSummary)
			r.Get("/by-patient/{userID}", h.listMedicalSummariesByPatient)
			r.Get("/by-doctor/{userID}", h.listMedicalSummariesByDoctor)
			r.Get("/by-appointment/{appointmentID}", h.getMedicalSummaryByAppointmentID)
			r.Get("/{id}", h.getMedicalSummary)
			r.Patch("/{id}", h.updateMedicalSummary)
			r.Delete("/{id}", h.deleteMedicalSummary)
			r.Get("/{id}/history", h.getMedicalSummaryHistory)
		})

		// administrators only
		r.Group(func(r chi.Router) {
			r.Use(h.requireRole(models.RoleAdmin))
			r.Get("/api/audit/{entityType}/{entityID}", h.getAuditHistory)
			r.Post("/api/auth/token", h.issueToken)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
