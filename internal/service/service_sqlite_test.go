// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-med-keeper/internal/audit"
	"github.com/MKhiriev/go-med-keeper/internal/config"
	"github.com/MKhiriev/go-med-keeper/internal/crypto"
	"github.com/MKhiriev/go-med-keeper/internal/logger"
	"github.com/MKhiriev/go-med-keeper/internal/projector"
	"github.com/MKhiriev/go-med-keeper/internal/store"
	"github.com/MKhiriev/go-med-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLiteServices wires the full service layer on a migrated in-memory
// database.
func newSQLiteServices(t *testing.T) (*Services, *store.Storages) {
	t.Helper()
	ctx := context.Background()

	db, err := store.NewConnectSQLite(ctx, config.DB{DSN: ":memory:", Driver: config.DriverSQLite}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate(ctx))

	storages := store.NewStoragesFromDB(db)
	t.Cleanup(func() { storages.Close() })

	codec, err := crypto.NewCodecFromHex(testKeyHex)
	require.NoError(t, err)

	cfg := config.StructuredConfig{
		App:   config.App{Version: "test", TokenSignKey: "k", TokenIssuer: "test", TokenDuration: 1},
		Audit: config.Audit{HistoryLimit: 10},
	}
	services, err := NewServices(storages, codec, cfg, models.NewBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)

	return services, storages
}

func TestServices_SQLite_PatientLifecycle(t *testing.T) {
	services, storages := newSQLiteServices(t)
	ctx := context.Background()

	created, err := services.PatientService.Create(ctx, patientViewer, models.Patient{
		Age:            41,
		BloodGroup:     "o+",
		Address:        "123 Main St",
		MedicalHistory: []string{"asthma"},
	})
	require.NoError(t, err)
	assert.Equal(t, "O+", created.BloodGroup)
	assert.Equal(t, "123 Main St", created.Address)

	stored, err := storages.Repositories.Patients.FindPatientByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, crypto.IsWellFormedEnvelope(stored.Address), "only ciphertext reaches the database")
	assert.True(t, crypto.IsWellFormedEnvelope(stored.MedicalHistory[0]))

	address := "456 Oak Ave"
	_, err = services.PatientService.Update(ctx, patientViewer, created.ID, models.PatientPatch{Address: &address})
	require.NoError(t, err)

	view, err := services.PatientService.Get(ctx, models.Viewer{UserID: "u-2", Role: models.RolePatient}, created.ID)
	require.NoError(t, err)
	assert.Equal(t, projector.EncryptedMarker, view.Address)
	assert.Equal(t, 41, view.Age)

	require.NoError(t, services.PatientService.Delete(ctx, adminViewer, created.ID))

	_, err = services.PatientService.Get(ctx, adminViewer, created.ID)
	assert.ErrorIs(t, err, ErrPatientNotFound)

	history, err := services.PatientService.History(ctx, adminViewer, created.ID)
	require.NoError(t, err)
	require.Len(t, history, 3, "entries outlive the profile")

	actions := []models.AuditAction{history[0].Action, history[1].Action, history[2].Action}
	assert.ElementsMatch(t, []models.AuditAction{models.ActionCreate, models.ActionUpdate, models.ActionDelete}, actions)
	for _, e := range history {
		for _, c := range e.Changes {
			assert.NotEqual(t, "123 Main St", c.OldValue)
			assert.NotEqual(t, "456 Oak Ave", c.NewValue)
		}
	}
}

func TestServices_SQLite_RejectedAuditRollsBackWrite(t *testing.T) {
	services, storages := newSQLiteServices(t)
	ctx := context.Background()

	// an actor without an id breaks the audit contract after the insert
	anonymousAdmin := models.Viewer{Role: models.RoleAdmin}
	_, err := services.PatientService.Create(ctx, anonymousAdmin, models.Patient{
		UserID:     "u-7",
		Age:        20,
		BloodGroup: "A+",
		Address:    "1 Elm St",
	})
	require.ErrorIs(t, err, audit.ErrAuditContractViolation)

	_, err = storages.Repositories.Patients.FindPatientByUserID(ctx, "u-7")
	assert.ErrorIs(t, err, store.ErrRecordNotFound, "the profile write was rolled back")
}

func TestServices_SQLite_MedicalSummary(t *testing.T) {
	services, _ := newSQLiteServices(t)
	ctx := context.Background()

	created, err := services.MedicalSummaryService.Create(ctx, doctorViewer, models.MedicalSummary{
		AppointmentID: "a-1",
		PatientUserID: "u-1",
		Notes:         "rest",
		Diagnoses:     []string{"influenza"},
	})
	require.NoError(t, err)

	_, err = services.MedicalSummaryService.Create(ctx, doctorViewer, models.MedicalSummary{
		AppointmentID: "a-1",
		PatientUserID: "u-1",
	})
	assert.ErrorIs(t, err, ErrMedicalSummaryExists)

	view, err := services.MedicalSummaryService.GetByAppointmentID(ctx, patientViewer, "a-1")
	require.NoError(t, err)
	assert.Equal(t, "rest", view.Notes)
	assert.Equal(t, []string{"influenza"}, view.Diagnoses)
	assert.Empty(t, view.Prescriptions)

	history, err := services.MedicalSummaryService.History(ctx, adminViewer, created.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "d-1", history[0].PerformedBy)
}

func TestServices_SQLite_MedicalSummaryLists(t *testing.T) {
	services, _ := newSQLiteServices(t)
	ctx := context.Background()
	otherDoctor := models.Viewer{UserID: "d-2", Role: models.RoleDoctor}

	for _, in := range []struct {
		viewer      models.Viewer
		appointment string
		patient     string
	}{
		{doctorViewer, "a-1", "u-1"},
		{doctorViewer, "a-2", "u-2"},
		{otherDoctor, "a-3", "u-1"},
	} {
		_, err := services.MedicalSummaryService.Create(ctx, in.viewer, models.MedicalSummary{
			AppointmentID: in.appointment,
			PatientUserID: in.patient,
			Notes:         "notes for " + in.appointment,
			Diagnoses:     []string{"influenza"},
		})
		require.NoError(t, err)
	}

	byDoctor, err := services.MedicalSummaryService.ListByDoctor(ctx, doctorViewer, "d-1", models.ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), byDoctor.Meta.Total)
	for _, view := range byDoctor.Data {
		assert.Equal(t, "d-1", view.DoctorUserID)
		assert.Equal(t, "notes for "+view.AppointmentID, view.Notes)
	}

	byPatient, err := services.MedicalSummaryService.ListByPatient(ctx, patientViewer, "u-1", models.ListQuery{SortOrder: "ASC"})
	require.NoError(t, err)
	require.Len(t, byPatient.Data, 2)
	for _, view := range byPatient.Data {
		assert.Equal(t, "u-1", view.PatientUserID)
		assert.Equal(t, []string{"influenza"}, view.Diagnoses)
	}

	all, err := services.MedicalSummaryService.List(ctx, adminViewer, models.ListQuery{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, all.Data, 2)
	assert.Equal(t, models.PageMeta{Page: 1, Limit: 2, Total: 3, TotalPages: 2}, all.Meta)

	_, err = services.MedicalSummaryService.List(ctx, doctorViewer, models.ListQuery{})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestServices_SQLite_PatientList(t *testing.T) {
	services, _ := newSQLiteServices(t)
	ctx := context.Background()

	for _, userID := range []string{"u-1", "u-2", "u-3"} {
		_, err := services.PatientService.Create(ctx, adminViewer, models.Patient{
			UserID:     userID,
			Age:        30,
			BloodGroup: "A+",
			Address:    "address of " + userID,
		})
		require.NoError(t, err)
	}

	first, err := services.PatientService.List(ctx, adminViewer, models.ListQuery{Limit: 2})
	require.NoError(t, err)
	second, err := services.PatientService.List(ctx, adminViewer, models.ListQuery{Page: 2, Limit: 2})
	require.NoError(t, err)

	assert.Len(t, first.Data, 2)
	assert.Len(t, second.Data, 1)
	assert.Equal(t, uint64(2), second.Meta.TotalPages)

	seen := map[string]bool{}
	for _, view := range append(first.Data, second.Data...) {
		assert.Equal(t, "address of "+view.UserID, view.Address)
		seen[view.UserID] = true
	}
	assert.Len(t, seen, 3, "pages do not overlap")

	_, err = services.PatientService.List(ctx, patientViewer, models.ListQuery{})
	assert.ErrorIs(t, err, ErrForbidden)
}
