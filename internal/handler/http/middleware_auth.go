// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-med-keeper/internal/logger"
	"github.com/MKhiriev/go-med-keeper/internal/utils"
	"github.com/MKhiriev/go-med-keeper/models"
	"github.com/rs/zerolog"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and, on success, stores the viewer
// and the audit request context (client IP and user agent) in the request
// context before delegating to the next handler. The request-scoped logger
// is enriched with the viewer id and role.
//
// The middleware rejects requests with HTTP 401 Unauthorized when the header
// is absent, is not of the "Bearer <token>" form, or carries a token that is
// expired or otherwise invalid.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		l := log.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("viewer_id", token.Viewer.UserID).Str("viewer_role", string(token.Viewer.Role))
		})

		ctx = utils.WithViewer(ctx, token.Viewer)
		ctx = utils.WithRequestContext(ctx, utils.RequestContextFrom(r))
		ctx = l.WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole lets the request through only when the authenticated viewer
// carries one of roles. It must run after auth.
func (h *Handler) requireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			viewer, ok := utils.GetViewerFromContext(r.Context())
			if !ok {
				writeError(w, r, "*Handler.requireRole", ErrNoViewerInContext)
				return
			}

			for _, role := range roles {
				if viewer.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			logger.FromRequest(r).Warn().
				Str("func", "*Handler.requireRole").
				Str("path", r.URL.Path).
				Msg("viewer role is not allowed on this route")
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		})
	}
}

// viewerFrom returns the viewer stored by auth.
func viewerFrom(r *http.Request) (models.Viewer, error) {
	viewer, ok := utils.GetViewerFromContext(r.Context())
	if !ok {
		return models.Viewer{}, ErrNoViewerInContext
	}
	return viewer, nil
}
