// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-med-keeper/internal/utils"
	"github.com/MKhiriev/go-med-keeper/models"
	"github.com/go-chi/chi/v5"
)

// getAuditHistory returns the audit entries of any entity, newest first.
// The route is mounted behind requireRole(admin).
func (h *Handler) getAuditHistory(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.getAuditHistory"

	entityType := models.EntityType(chi.URLParam(r, "entityType"))
	entityID := chi.URLParam(r, "entityID")

	entries, err := h.services.PHIService.History(r.Context(), entityType, entityID)
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	_, _ = utils.WriteJSON(w, entries, http.StatusOK)
}
