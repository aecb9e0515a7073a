package main

import (
	"github.com/spf13/cobra"

	"github.com/FACorreiaa/rachaai/cmd/api"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long:  `Serve the expense engine over HTTP with metrics and the scheduled accuracy canary.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := loadDependencies(cmd, true)
			if err != nil {
				return err
			}
			defer deps.Cleanup()

			return api.Run(cmd.Context(), deps)
		},
	}
}
