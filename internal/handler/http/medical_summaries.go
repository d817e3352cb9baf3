// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-med-keeper/internal/utils"
	"github.com/MKhiriev/go-med-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createMedicalSummary(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.createMedicalSummary"

	viewer, err := viewerFrom(r)
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	var summary models.MedicalSummary
	if err = json.NewDecoder(r.Body).Decode(&summary); err != nil {
		writeError(w, r, fn, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	created, err := h.services.MedicalSummaryService.Create(r.Context(), viewer, summary)
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getMedicalSummary(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.getMedicalSummary"

	viewer, err := viewerFrom(r)
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	summary, err := h.services.MedicalSummaryService.Get(r.Context(), viewer, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	_, _ = utils.WriteJSON(w, summary, http.StatusOK)
}

func (h *Handler) getMedicalSummaryByAppointmentID(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.getMedicalSummaryByAppointmentID"

	viewer, err := viewerFrom(r)
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	summary, err := h.services.MedicalSummaryService.GetByAppointmentID(r.Context(), viewer, chi.URLParam(r, "appointmentID"))
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	_, _ = utils.WriteJSON(w, summary, http.StatusOK)
}

func (h *Handler) updateMedicalSummary(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.updateMedicalSummary"

	viewer, err := viewerFrom(r)
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	var patch models.MedicalSummaryPatch
	if err = json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, r, fn, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	updated, err := h.services.MedicalSummaryService.Update(r.Context(), viewer, chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteMedicalSummary(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.deleteMedicalSummary"

	viewer, err := viewerFrom(r)
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	if err = h.services.MedicalSummaryService.Delete(r.Context(), viewer, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, fn, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getMedicalSummaryHistory(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.getMedicalSummaryHistory"

	viewer, err := viewerFrom(r)
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	entries, err := h.services.MedicalSummaryService.History(r.Context(), viewer, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	_, _ = utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) listMedicalSummaries(w http.ResponseWriter, r *http.Request) {
	h.serveSummaryList(w, r, "*Handler.listMedicalSummaries", func(r *http.Request, viewer models.Viewer, q models.ListQuery) (models.Page[*models.MedicalSummary], error) {
		return h.services.MedicalSummaryService.List(r.Context(), viewer, q)
	})
}

func (h *Handler) listMedicalSummariesByPatient(w http.ResponseWriter, r *http.Request) {
	h.serveSummaryList(w, r, "*Handler.listMedicalSummariesByPatient", func(r *http.Request, viewer models.Viewer, q models.ListQuery) (models.Page[*models.MedicalSummary], error) {
		return h.services.MedicalSummaryService.ListByPatient(r.Context(), viewer, chi.URLParam(r, "userID"), q)
	})
}

func (h *Handler) listMedicalSummariesByDoctor(w http.ResponseWriter, r *http.Request) {
	h.serveSummaryList(w, r, "*Handler.listMedicalSummariesByDoctor", func(r *http.Request, viewer models.Viewer, q models.ListQuery) (models.Page[*models.MedicalSummary], error) {
		return h.services.MedicalSummaryService.ListByDoctor(r.Context(), viewer, chi.URLParam(r, "userID"), q)
	})
}

type summaryLister func(r *http.Request, viewer models.Viewer, q models.ListQuery) (models.Page[*models.MedicalSummary], error)

func (h *Handler) serveSummaryList(w http.ResponseWriter, r *http.Request, fn string, list summaryLister) {
	viewer, err := viewerFrom(r)
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	q, err := listQueryFrom(r)
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	page, err := list(r, viewer, q)
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	_, _ = utils.WriteJSON(w, page, http.StatusOK)
}
