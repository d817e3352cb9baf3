// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-med-keeper/internal/audit"
	"github.com/MKhiriev/go-med-keeper/internal/guard"
	"github.com/MKhiriev/go-med-keeper/internal/logger"
	"github.com/MKhiriev/go-med-keeper/internal/projector"
	"github.com/MKhiriev/go-med-keeper/models"
)

// phiService composes the field guard, the view projector and the audit
// ledger behind PHIService.
type phiService struct {
	guard  *guard.Guard
	ledger *audit.Ledger

	// history reads the audit log outside any transaction.
	history audit.Reader

	logger *logger.Logger
}

func NewPHIService(g *guard.Guard, ledger *audit.Ledger, history audit.Reader, logger *logger.Logger) PHIService {
	return &phiService{
		guard:   g,
		ledger:  ledger,
		history: history,
		logger:  logger,
	}
}

func (s *phiService) Protect(ctx context.Context, rec models.Record) error {
	if _, err := s.guard.Protect(ctx, rec); err != nil {
		return err
	}
	return nil
}

func (s *phiService) Open(ctx context.Context, rec models.Record) error {
	if err := s.guard.OpenInPlace(ctx, rec); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "phiService.Open").
			Str("entity_type", string(rec.EntityType())).
			Str("entity_id", rec.EntityID()).
			Msg("failed to open designated fields")
		return err
	}
	return nil
}

func (s *phiService) Reveal(ctx context.Context, rec models.Record, tier models.AccessTier) (models.Record, error) {
	switch r := rec.(type) {
	case *models.Patient:
		if r == nil {
			return nil, ErrInvalidDataProvided
		}
		return projector.Project(ctx, s.guard, r, tier), nil
	case *models.MedicalSummary:
		if r == nil {
			return nil, ErrInvalidDataProvided
		}
		return projector.Project(ctx, s.guard, r, tier), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedRecord, rec)
	}
}

func (s *phiService) RevealPatients(ctx context.Context, recs []*models.Patient, viewer models.Viewer) []*models.Patient {
	return projector.ProjectAll(ctx, s.guard, recs, viewer)
}

func (s *phiService) RevealMedicalSummaries(ctx context.Context, recs []*models.MedicalSummary, viewer models.Viewer) []*models.MedicalSummary {
	return projector.ProjectAll(ctx, s.guard, recs, viewer)
}

func (s *phiService) Audit(ctx context.Context, w audit.Appender, m models.Mutation) (*models.AuditEntry, error) {
	return s.ledger.RecordMutation(ctx, w, m)
}

func (s *phiService) History(ctx context.Context, entityType models.EntityType, entityID string) ([]models.AuditEntry, error) {
	if !entityType.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEntityType, entityType)
	}
	if entityID == "" {
		return nil, ErrInvalidDataProvided
	}

	return s.ledger.History(ctx, s.history, entityType, entityID)
}

// reveal projects rec for viewer and restores its concrete type.
func reveal[T models.Cloner[T]](ctx context.Context, phi PHIService, rec T, viewer models.Viewer) (T, error) {
	var zero T

	view, err := phi.Reveal(ctx, rec, rec.TierFor(viewer))
	if err != nil {
		return zero, err
	}
	typed, ok := view.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %T", ErrUnsupportedRecord, view)
	}

	return typed, nil
}
