package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func analyzeCmd() *cobra.Command {
	var region string

	cmd := &cobra.Command{
		Use:   "analyze [text...]",
		Short: "Show the cultural context of a message",
		Long:  `Label a message with scenario, region, formality, time of day, payment hint and splitting convention.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			deps, err := loadDependencies(cmd, false)
			if err != nil {
				return err
			}

			result, err := deps.ExpenseService.AnalyzeCulturalContext(cmd.Context(), text, region)
			if err != nil {
				return fmt.Errorf("analyze failed: %w", err)
			}
			return writeJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVarP(&region, "region", "r", "", "declared region (sp, rj, mg, rs, ba, ne, n, co, outros)")

	return cmd
}
