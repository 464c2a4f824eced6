package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/heartmarshall/notetree/internal/auth"
	"github.com/heartmarshall/notetree/internal/config"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
)

func NewTokenCmd() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an API access token",
		Long: `Mint a bearer token signed with the configured AUTH_JWT_SECRET.

Examples:
  notetree token --subject alice
  notetree token --subject ci --ttl 1h`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cfg.Auth.Enabled() {
				return errors.New("auth is disabled: set AUTH_JWT_SECRET to mint tokens")
			}
			if ttl == 0 {
				ttl = cfg.Auth.AccessTokenTTL
			}

			jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, ttl, clockwork.NewRealClock())
			token, err := jwt.GenerateAccessToken(subject)
			if err != nil {
				return fmt.Errorf("generate token: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, token.Value)
			fmt.Fprintf(out, "expires: %s\n", token.ExpiresAt.UTC().Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().StringVarP(&subject, "subject", "s", "", "Token subject (required)")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "Token lifetime (defaults to AUTH_ACCESS_TOKEN_TTL)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
