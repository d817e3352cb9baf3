// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/MKhiriev/go-med-keeper/internal/store"
	"github.com/MKhiriev/go-med-keeper/migrations"
	"github.com/spf13/cobra"
)

func migrateCmd(load configLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := connect(cmd, load)
			if err != nil {
				return err
			}
			defer db.Close()

			if err = db.Migrate(cmd.Context()); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "migrations applied (%s)\n", db.Dialect())
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show which migrations have been applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := connect(cmd, load)
			if err != nil {
				return err
			}
			defer db.Close()

			statuses, err := migrations.Status(cmd.Context(), db.DB, db.Dialect())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "VERSION\tSTATE\tFILE")
			for _, s := range statuses {
				state := "pending"
				if s.Applied {
					state = "applied"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\n", s.Version, state, s.Path)
			}
			return w.Flush()
		},
	})

	return cmd
}

func connect(cmd *cobra.Command, load configLoader) (*store.DB, error) {
	cfg, err := load()
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	log, err := commandLogger(cfg)
	if err != nil {
		return nil, err
	}

	return store.NewConnect(cmd.Context(), cfg.Storage.DB, log)
}
