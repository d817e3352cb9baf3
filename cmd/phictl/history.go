// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/MKhiriev/go-med-keeper/internal/audit"
	"github.com/MKhiriev/go-med-keeper/internal/store"
	"github.com/MKhiriev/go-med-keeper/models"
	"github.com/spf13/cobra"
)

func historyCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "history <entityType> <entityID>",
		Short: "Print the audit entries of one entity, newest first",
		Long: "Print the audit entries of one entity as JSON, newest first.\n" +
			"entityType is one of: patient, medicalSummary, appointment.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			entityType := models.EntityType(args[0])
			if !entityType.Valid() {
				return fmt.Errorf("unknown entity type %q", args[0])
			}

			cfg, err := load()
			if err != nil {
				return fmt.Errorf("error getting configs: %w", err)
			}
			log, err := commandLogger(cfg)
			if err != nil {
				return err
			}

			storages, err := store.NewStorages(cmd.Context(), cfg.Storage, log)
			if err != nil {
				return err
			}
			defer storages.Close()

			ledger := audit.NewLedger(log, audit.WithHistoryLimit(cfg.Audit.HistoryLimit))
			entries, err := ledger.History(cmd.Context(), storages.Repositories.Audit, entityType, args[1])
			if err != nil {
				return err
			}

			return printJSON(cmd, entries)
		},
	}
}
