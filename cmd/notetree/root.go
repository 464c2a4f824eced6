package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "notetree",
		Short:         "Hierarchical notes served over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewServeCmd(), NewTokenCmd(), NewVersionCmd())
	return cmd
}
