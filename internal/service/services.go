// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-med-keeper/internal/audit"
	"github.com/MKhiriev/go-med-keeper/internal/config"
	"github.com/MKhiriev/go-med-keeper/internal/crypto"
	"github.com/MKhiriev/go-med-keeper/internal/guard"
	"github.com/MKhiriev/go-med-keeper/internal/logger"
	"github.com/MKhiriev/go-med-keeper/internal/store"
	"github.com/MKhiriev/go-med-keeper/internal/utils"
	"github.com/MKhiriev/go-med-keeper/models"
)

type Services struct {
	PHIService            PHIService
	PatientService        PatientService
	MedicalSummaryService MedicalSummaryService
	AuthService           AuthService
	AppInfoService        AppInfoService
}

// NewServices wires the service layer around one cipher. The cipher holds
// the process's only copy of the encryption key.
func NewServices(storages *store.Storages, cipher crypto.Cipher, cfg config.StructuredConfig, build models.BuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	ledger := audit.NewLedger(logger, audit.WithHistoryLimit(cfg.Audit.HistoryLimit))
	phi := NewPHIService(guard.New(cipher, logger), ledger, storages.Repositories.Audit, logger)
	ids := utils.NewUUIDGenerator()

	return &Services{
		PHIService:            phi,
		PatientService:        NewPatientValidationService().Wrap(NewPatientService(storages, phi, ids, logger)),
		MedicalSummaryService: NewMedicalSummaryValidationService().Wrap(NewMedicalSummaryService(storages, phi, ids, logger)),
		AuthService:           NewAuthService(cfg.App, logger),
		AppInfoService:        appInfo,
	}, nil
}
