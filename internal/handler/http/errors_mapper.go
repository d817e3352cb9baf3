// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-med-keeper/internal/audit"
	"github.com/MKhiriev/go-med-keeper/internal/guard"
	"github.com/MKhiriev/go-med-keeper/internal/logger"
	"github.com/MKhiriev/go-med-keeper/internal/service"
	"github.com/MKhiriev/go-med-keeper/internal/store"
	"github.com/MKhiriev/go-med-keeper/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:       http.StatusBadRequest,
	ErrInvalidQuery:      http.StatusBadRequest,
	ErrNoViewerInContext: http.StatusUnauthorized,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidEntityType:       http.StatusBadRequest,
	service.ErrForbidden:               http.StatusForbidden,
	service.ErrPatientNotFound:         http.StatusNotFound,
	service.ErrMedicalSummaryNotFound:  http.StatusNotFound,
	service.ErrPatientProfileExists:    http.StatusConflict,
	service.ErrMedicalSummaryExists:    http.StatusConflict,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusBadRequest,

	store.ErrRecordNotFound:           http.StatusNotFound,
	store.ErrRecordAlreadyExists:      http.StatusConflict,
	store.ErrPlaintextDesignatedField: http.StatusInternalServerError,

	guard.ErrProtectFailed:          http.StatusInternalServerError,
	guard.ErrOpenFailed:             http.StatusInternalServerError,
	audit.ErrAuditContractViolation: http.StatusInternalServerError,
	audit.ErrAppendingEntry:         http.StatusInternalServerError,
	audit.ErrReadingHistory:         http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
	store.ErrEncodingDocument:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError logs err and answers with the mapped status. Server errors are
// reported with the status text only.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Msg("request failed")

	message := http.StatusText(status)
	if status < http.StatusInternalServerError {
		message = err.Error()
	}
	_, _ = utils.WriteJSON(w, errorResponse{Error: message}, status)
}
