package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FACorreiaa/rachaai/internal/domain/expense"
	"github.com/FACorreiaa/rachaai/pkg/money"
)

func processCmd() *cobra.Command {
	var (
		region string
		format string
	)

	cmd := &cobra.Command{
		Use:   "process [text...]",
		Short: "Interpret a shared-expense message",
		Long:  `Extract participants, amounts and splitting method from a message.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "json" && format != "text" {
				return fmt.Errorf("invalid --format %q: use json or text", format)
			}
			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			deps, err := loadDependencies(cmd, false)
			if err != nil {
				return err
			}

			result, err := deps.ExpenseService.ProcessExpenseText(cmd.Context(), text, region)
			if err != nil {
				return fmt.Errorf("process failed: %w", err)
			}

			if format == "text" {
				return printInterpretation(cmd.OutOrStdout(), result)
			}
			return writeJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVarP(&region, "region", "r", "", "declared region (sp, rj, mg, rs, ba, ne, n, co, outros)")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format (json, text)")

	return cmd
}

func printInterpretation(w io.Writer, e *expense.ExpenseInterpretation) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Cenário:    %s\n", e.CulturalContext.Scenario)
	fmt.Fprintf(&b, "Região:     %s\n", e.CulturalContext.Region)
	fmt.Fprintf(&b, "Método:     %s\n", e.SplittingMethod)
	fmt.Fprintf(&b, "Total:      %s\n", money.NewFromDecimal(e.TotalAmount, money.BRL).Display())
	fmt.Fprintf(&b, "Confiança:  %.2f\n", e.Confidence)

	if len(e.Participants) > 0 {
		b.WriteString("Participantes:\n")
		for _, p := range e.Participants {
			fmt.Fprintf(&b, "  - %s (%s, %d)\n", p.Name, p.Type, p.Count)
		}
	}
	if len(e.Amounts) > 0 {
		b.WriteString("Valores:\n")
		for _, a := range e.Amounts {
			fmt.Fprintf(&b, "  - %s %s (%s)\n", a.Value.StringFixed(2), a.Currency, a.Type)
		}
	}
	if len(e.Suggestions) > 0 {
		b.WriteString("Sugestões:\n")
		for _, s := range e.Suggestions {
			fmt.Fprintf(&b, "  * %s\n", s)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
