package main

import (
	"os/signal"
	"syscall"

	"github.com/heartmarshall/notetree/internal/app"
	"github.com/spf13/cobra"
)

func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and change feed",
		Long: `Run the HTTP API and websocket change feed until SIGINT or SIGTERM.

Configuration is read from .env, CONFIG_PATH (or ./config.yaml) and the environment.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return app.Run(ctx)
		},
	}
}
