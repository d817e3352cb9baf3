// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-med-keeper/internal/adapter"
	"github.com/MKhiriev/go-med-keeper/internal/logger"
	"github.com/MKhiriev/go-med-keeper/models"
	"github.com/spf13/cobra"
)

type remoteOptions struct {
	server  string
	token   string
	timeout time.Duration
}

// remoteCmd groups commands that talk to a running server instead of the
// database. Record views are projected for the token's viewer.
func remoteCmd() *cobra.Command {
	opts := &remoteOptions{}

	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Query a running server over its HTTP API",
	}
	cmd.PersistentFlags().StringVar(&opts.server, "server", "localhost:8080", "Server address")
	cmd.PersistentFlags().StringVar(&opts.token, "token", os.Getenv("PHICTL_TOKEN"), "Bearer token (default $PHICTL_TOKEN)")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 15*time.Second, "Request timeout")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the server build info",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			info, err := client.BuildInfo(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, info)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "audit <entityType> <entityID>",
		Short: "Print the audit entries of one entity (admin token)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			entries, err := client.AuditHistory(cmd.Context(), models.EntityType(args[0]), args[1])
			if err != nil {
				return err
			}
			return printJSON(cmd, entries)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "patient <id>",
		Short: "Print a patient profile as the token's viewer sees it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			p, err := client.Patient(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, p)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "summary <id>",
		Short: "Print a medical summary as the token's viewer sees it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := opts.client()
			if err != nil {
				return err
			}
			m, err := client.MedicalSummary(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, m)
		},
	})

	return cmd
}

func (o *remoteOptions) client() (adapter.ServerAdapter, error) {
	return adapter.NewHTTPServerAdapter(adapter.Config{
		HTTPAddress:    o.server,
		Token:          o.token,
		RequestTimeout: o.timeout,
	}, logger.New(os.Stderr, "phictl"))
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	return nil
}
