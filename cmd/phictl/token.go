// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-med-keeper/internal/service"
	"github.com/MKhiriev/go-med-keeper/models"
	"github.com/spf13/cobra"
)

func tokenCmd(load configLoader) *cobra.Command {
	var userID, role string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for a user and role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return fmt.Errorf("error getting configs: %w", err)
			}
			if cfg.App.TokenSignKey == "" {
				return errors.New("APP_TOKEN_SIGN_KEY is not set")
			}
			log, err := commandLogger(cfg)
			if err != nil {
				return err
			}

			viewer := models.Viewer{UserID: userID, Role: models.Role(role)}
			token, err := service.NewAuthService(cfg.App, log).CreateToken(cmd.Context(), viewer)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token.SignedString)
			return err
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User id placed in the subject claim")
	cmd.Flags().StringVar(&role, "role", "", "Role claim: patient, doctor or admin")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("role")

	return cmd
}
