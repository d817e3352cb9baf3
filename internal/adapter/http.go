// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-med-keeper/internal/logger"
	"github.com/MKhiriev/go-med-keeper/models"
	"github.com/go-resty/resty/v2"
)

const defaultRequestTimeout = 15 * time.Second

// Config points the adapter at a server.
type Config struct {
	// HTTPAddress is the server address, with or without scheme.
	HTTPAddress string
	// Token is an optional bearer token to start with.
	Token string
	// RequestTimeout bounds every request. Zero selects 15s.
	RequestTimeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// Returns an error if cfg.HTTPAddress is empty or not a valid URL.
func NewHTTPServerAdapter(cfg Config, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	a := &httpServerAdapter{client: client, logger: logger}
	a.SetToken(cfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) BuildInfo(ctx context.Context) (models.BuildInfo, error) {
	var info models.BuildInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/api/version/build")
	if err != nil {
		return models.BuildInfo{}, fmt.Errorf("build info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BuildInfo{}, err
	}

	return info, nil
}

func (h *httpServerAdapter) Patient(ctx context.Context, id string) (models.Patient, error) {
	var p models.Patient
	err := h.getJSON(ctx, "patient", "/api/patients/{id}", map[string]string{"id": id}, &p)
	return p, err
}

func (h *httpServerAdapter) PatientByUserID(ctx context.Context, userID string) (models.Patient, error) {
	var p models.Patient
	err := h.getJSON(ctx, "patient by user", "/api/patients/by-user/{userID}", map[string]string{"userID": userID}, &p)
	return p, err
}

func (h *httpServerAdapter) MedicalSummary(ctx context.Context, id string) (models.MedicalSummary, error) {
	var m models.MedicalSummary
	err := h.getJSON(ctx, "medical summary", "/api/medical-summaries/{id}", map[string]string{"id": id}, &m)
	return m, err
}

func (h *httpServerAdapter) MedicalSummaryByAppointmentID(ctx context.Context, appointmentID string) (models.MedicalSummary, error) {
	var m models.MedicalSummary
	err := h.getJSON(ctx, "medical summary by appointment", "/api/medical-summaries/by-appointment/{appointmentID}",
		map[string]string{"appointmentID": appointmentID}, &m)
	return m, err
}

func (h *httpServerAdapter) AuditHistory(ctx context.Context, entityType models.EntityType, entityID string) ([]models.AuditEntry, error) {
	entries := make([]models.AuditEntry, 0)
	err := h.getJSON(ctx, "audit history", "/api/audit/{entityType}/{entityID}",
		map[string]string{"entityType": string(entityType), "entityID": entityID}, &entries)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (h *httpServerAdapter) IssueToken(ctx context.Context, viewer models.Viewer) (string, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return "", err
	}

	var out tokenResponse
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(viewer).
		SetResult(&out).
		Post("/api/auth/token")
	if err != nil {
		return "", fmt.Errorf("issue token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return out.Token, nil
}

func (h *httpServerAdapter) getJSON(ctx context.Context, what, path string, params map[string]string, dst any) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParams(params).
		SetResult(dst).
		Get(path)
	if err != nil {
		return fmt.Errorf("%s request: %w", what, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Str("func", "httpServerAdapter.getJSON").Str("path", path).Int("status", resp.StatusCode()).Msg("request failed")
		return err
	}

	return nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}
