// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-med-keeper/internal/audit"
	"github.com/MKhiriev/go-med-keeper/internal/crypto"
	"github.com/MKhiriev/go-med-keeper/internal/guard"
	"github.com/MKhiriev/go-med-keeper/internal/logger"
	"github.com/MKhiriev/go-med-keeper/internal/mock"
	"github.com/MKhiriev/go-med-keeper/internal/projector"
	"github.com/MKhiriev/go-med-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// newTestPHI builds a PHIService on a real codec. history may be nil when
// the test does not read the audit log.
func newTestPHI(t *testing.T, history audit.Reader) (PHIService, *crypto.Codec) {
	t.Helper()

	codec, err := crypto.NewCodecFromHex(testKeyHex)
	require.NoError(t, err)

	ledger := audit.NewLedger(logger.Nop(), audit.WithClock(func() time.Time { return fixedNow }))
	return NewPHIService(guard.New(codec, logger.Nop()), ledger, history, logger.Nop()), codec
}

func plainPatient() *models.Patient {
	return &models.Patient{
		ID:               "p-1",
		UserID:           "u-1",
		Age:              41,
		BloodGroup:       "O+",
		Address:          "123 Main St",
		EmergencyContact: &models.EmergencyContact{Name: "Jane Roe", Relation: "sister", Phone: "555-0100"},
		MedicalHistory:   []string{"asthma", "hypertension"},
	}
}

func TestPHIService_ProtectThenReveal(t *testing.T) {
	phi, _ := newTestPHI(t, nil)
	ctx := context.Background()

	rec := plainPatient()
	require.NoError(t, phi.Protect(ctx, rec))
	assert.True(t, crypto.IsWellFormedEnvelope(rec.Address))
	assert.True(t, crypto.IsWellFormedEnvelope(rec.MedicalHistory[1]))
	assert.Equal(t, "sister", rec.EmergencyContact.Relation, "relation is not designated")

	owner, err := phi.Reveal(ctx, rec, models.TierOwner)
	require.NoError(t, err)
	assert.Equal(t, "123 Main St", owner.(*models.Patient).Address)
	assert.Equal(t, []string{"asthma", "hypertension"}, owner.(*models.Patient).MedicalHistory)

	other, err := phi.Reveal(ctx, rec, models.TierOther)
	require.NoError(t, err)
	view := other.(*models.Patient)
	assert.Equal(t, projector.EncryptedMarker, view.Address)
	assert.Equal(t, projector.EncryptedMarker, view.EmergencyContact.Phone)
	assert.Equal(t, []string{projector.EncryptedMarker, projector.EncryptedMarker}, view.MedicalHistory)
	assert.Equal(t, 41, view.Age)

	assert.True(t, crypto.IsWellFormedEnvelope(rec.Address), "stored record is untouched")
}

func TestPHIService_RevealUnsupported(t *testing.T) {
	phi, _ := newTestPHI(t, nil)

	_, err := phi.Reveal(context.Background(), nil, models.TierAdmin)
	assert.ErrorIs(t, err, ErrUnsupportedRecord)

	_, err = phi.Reveal(context.Background(), (*models.Patient)(nil), models.TierAdmin)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestPHIService_OpenIsStrict(t *testing.T) {
	phi, _ := newTestPHI(t, nil)
	ctx := context.Background()

	rec := plainPatient()
	require.NoError(t, phi.Protect(ctx, rec))

	opened := rec.Clone()
	require.NoError(t, phi.Open(ctx, opened))
	assert.Equal(t, "Jane Roe", opened.EmergencyContact.Name)

	corrupt := rec.Clone()
	corrupt.MedicalHistory[0] = strings.Repeat("0", 32) + ":" + strings.Repeat("0", 32) + ":abcd"
	err := phi.Open(ctx, corrupt)
	assert.ErrorIs(t, err, guard.ErrOpenFailed)
	assert.ErrorIs(t, err, crypto.ErrAuthenticationFailed)
}

func TestPHIService_Audit(t *testing.T) {
	ctrl := gomock.NewController(t)
	auditRepo := mock.NewMockAuditRepository(ctrl)
	phi, _ := newTestPHI(t, nil)

	auditRepo.EXPECT().AppendAuditEntry(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e models.AuditEntry) (models.AuditEntry, error) {
			assert.Equal(t, fixedNow, e.Timestamp)
			require.Len(t, e.Changes, 1)
			assert.Equal(t, audit.RedactedMarker, e.Changes[0].OldValue)
			assert.Equal(t, audit.RedactedMarker, e.Changes[0].NewValue)
			e.ID = 7
			return e, nil
		},
	)

	entry, err := phi.Audit(context.Background(), auditRepo, models.Mutation{
		EntityType: models.EntityPatient,
		EntityID:   "p-1",
		Action:     models.ActionUpdate,
		ActorID:    "u-1",
		Changes:    []models.Change{{Field: "address", OldValue: "123 Main St", NewValue: "456 Oak Ave"}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), entry.ID)
}

func TestPHIService_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	auditRepo := mock.NewMockAuditRepository(ctrl)
	phi, _ := newTestPHI(t, auditRepo)
	ctx := context.Background()

	t.Run("invalid entity type", func(t *testing.T) {
		_, err := phi.History(ctx, "invoice", "x")
		assert.ErrorIs(t, err, ErrInvalidEntityType)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := phi.History(ctx, models.EntityPatient, "")
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("reads through the ledger", func(t *testing.T) {
		older := models.AuditEntry{ID: 1, Timestamp: fixedNow.Add(-time.Hour)}
		newer := models.AuditEntry{ID: 2, Timestamp: fixedNow}
		auditRepo.EXPECT().
			ListAuditEntries(ctx, models.EntityPatient, "p-1", uint64(audit.MaxHistoryLimit)).
			Return([]models.AuditEntry{older, newer}, nil)

		entries, err := phi.History(ctx, models.EntityPatient, "p-1")
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, int64(2), entries[0].ID)
	})

	t.Run("read failure", func(t *testing.T) {
		auditRepo.EXPECT().ListAuditEntries(ctx, models.EntityPatient, "p-2", gomock.Any()).Return(nil, errors.New("db down"))

		_, err := phi.History(ctx, models.EntityPatient, "p-2")
		assert.ErrorIs(t, err, audit.ErrReadingHistory)
	})
}
