// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command phictl is the operator tool for go-med-keeper: it generates field
// encryption keys, applies schema migrations, reads the audit ledger and
// mints bearer tokens. The remote commands query a running server instead.
//
// Every command except keygen and remote reads the same environment (and .env file) as
// the server.
package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-med-keeper/internal/config"
	"github.com/MKhiriev/go-med-keeper/internal/logger"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "phictl",
		Short:         "Operator tool for the go-med-keeper record service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(keygenCmd())
	rootCmd.AddCommand(migrateCmd(config.LoadConfig))
	rootCmd.AddCommand(historyCmd(config.LoadConfig))
	rootCmd.AddCommand(tokenCmd(config.LoadConfig))
	rootCmd.AddCommand(remoteCmd())

	return rootCmd
}

// configLoader is swapped out in tests.
type configLoader func() (*config.StructuredConfig, error)

// commandLogger writes to stderr so stdout stays machine readable.
func commandLogger(cfg *config.StructuredConfig) (*logger.Logger, error) {
	if err := logger.SetLevel(cfg.App.LogLevel); err != nil {
		return nil, err
	}
	return logger.New(os.Stderr, "phictl"), nil
}
