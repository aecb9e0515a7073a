package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/FACorreiaa/rachaai/internal/domain/evaluation"
)

func evalCmd() *cobra.Command {
	var (
		corpusPath  string
		xlsxPath    string
		minAccuracy float64
	)

	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Score the engine against a labelled corpus",
		Long: `Run every corpus case through the engine and report the share whose scenario,
method and total match. Uses the built-in corpus unless --corpus is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := loadDependencies(cmd, false)
			if err != nil {
				return err
			}

			cases := deps.Corpus
			if corpusPath != "" {
				f, err := os.Open(corpusPath)
				if err != nil {
					return fmt.Errorf("failed to open corpus: %w", err)
				}
				defer f.Close()
				if cases, err = evaluation.ReadCorpus(f); err != nil {
					return err
				}
			}

			report, err := deps.Runner.Run(cmd.Context(), cases)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, f := range report.Failures() {
				fmt.Fprintf(out, "FALHOU  %q\n        cenário %s/%s  método %s/%s  total %s/%s %s\n",
					f.Case.Text, f.Case.Scenario, f.GotScenario, f.Case.Method, f.GotMethod,
					f.Case.Total, f.GotTotal.String(), f.Err)
			}
			fmt.Fprintf(out, "run %s: %d/%d casos (%.1f%%)\n",
				report.RunID, report.Passed(), len(report.Results), report.Accuracy()*100)

			if xlsxPath != "" {
				f, err := os.Create(xlsxPath)
				if err != nil {
					return fmt.Errorf("failed to create report: %w", err)
				}
				if err := report.WriteXLSX(f); err != nil {
					f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return fmt.Errorf("failed to close report: %w", err)
				}
				fmt.Fprintf(out, "relatório salvo em %s\n", xlsxPath)
			}

			if report.Accuracy() < minAccuracy {
				return fmt.Errorf("accuracy %.3f below minimum %.3f", report.Accuracy(), minAccuracy)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&corpusPath, "corpus", "", "CSV corpus with a text,region,scenario,method,total header")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "write a spreadsheet report to this path")
	cmd.Flags().Float64Var(&minAccuracy, "min-accuracy", 1.0, "fail when accuracy is below this value")

	return cmd
}
