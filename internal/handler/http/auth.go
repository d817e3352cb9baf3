// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-med-keeper/internal/logger"
	"github.com/MKhiriev/go-med-keeper/internal/service"
	"github.com/MKhiriev/go-med-keeper/internal/utils"
	"github.com/MKhiriev/go-med-keeper/models"
)

type tokenResponse struct {
	Token  string        `json:"token"`
	Viewer models.Viewer `json:"viewer"`
}

// issueToken mints a bearer token for the viewer in the request body.
// Users are managed by an external identity provider; administrators use
// this route to hand out tokens for service accounts and local testing.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.issueToken"
	log := logger.FromRequest(r)

	var viewer models.Viewer
	if err := json.NewDecoder(r.Body).Decode(&viewer); err != nil {
		writeError(w, r, fn, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}
	if viewer.UserID == "" || !viewer.Role.Valid() {
		writeError(w, r, fn, fmt.Errorf("%w: user id and a known role are required", service.ErrInvalidDataProvided))
		return
	}

	token, err := h.services.AuthService.CreateToken(r.Context(), viewer)
	if err != nil {
		writeError(w, r, fn, err)
		return
	}

	log.Info().Str("func", fn).Str("subject", viewer.UserID).Str("subject_role", string(viewer.Role)).Msg("token issued")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	_, _ = utils.WriteJSON(w, tokenResponse{Token: token.SignedString, Viewer: viewer}, http.StatusOK)
}
