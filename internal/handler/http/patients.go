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

func (h *Handler) createPatient(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.createPatient"

	viewer, err := viewerFrom(r)
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	var patient models.Patient
	if err = json.NewDecoder(r.Body).Decode(&patient); err != nil {
		writeError(w, r, fn, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	created, err := h.services.PatientService.Create(r.Context(), viewer, patient)
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getPatient(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.getPatient"

	viewer, err := viewerFrom(r)
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	patient, err := h.services.PatientService.Get(r.Context(), viewer, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	_, _ = utils.WriteJSON(w, patient, http.StatusOK)
}

func (h *Handler) getPatientByUserID(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.getPatientByUserID"

	viewer, err := viewerFrom(r)
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	patient, err := h.services.PatientService.GetByUserID(r.Context(), viewer, chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	_, _ = utils.WriteJSON(w, patient, http.StatusOK)
}

func (h *Handler) updatePatient(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.updatePatient"

	viewer, err := viewerFrom(r)
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	var patch models.PatientPatch
	if err = json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, r, fn, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	updated, err := h.services.PatientService.Update(r.Context(), viewer, chi.URLParam(r, "id"), patch)
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deletePatient(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.deletePatient"

	viewer, err := viewerFrom(r)
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	if err = h.services.PatientService.Delete(r.Context(), viewer, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, fn, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getPatientHistory(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.getPatientHistory"

	viewer, err := viewerFrom(r)
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	entries, err := h.services.PatientService.History(r.Context(), viewer, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	_, _ = utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) listPatients(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.listPatients"

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

	page, err := h.services.PatientService.List(r.Context(), viewer, q)
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	_, _ = utils.WriteJSON(w, page, http.StatusOK)
}
