package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FACorreiaa/rachaai/internal/domain/cultural"
)

func patternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns [text...]",
		Short: "List the cultural patterns, or the ones a message matches",
		Long: `Without arguments, print every entry of the cultural pattern database with its
base confidence and keywords. With a message, print the patterns it matches,
strongest first, with the number of keywords hit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				for _, p := range cultural.Patterns() {
					fmt.Fprintf(out, "%-12s %.2f  %s\n", p.Name, p.BaseConfidence, strings.Join(p.Keywords, ", "))
				}
				return nil
			}

			evidence := cultural.NewAnalyzer().Evidence(strings.Join(args, " "))
			if len(evidence) == 0 {
				fmt.Fprintln(out, "nenhum padrão encontrado")
				return nil
			}
			for _, e := range evidence {
				fmt.Fprintf(out, "%-12s %d/%d  %.3f\n", e.Pattern.Name, e.Matched, len(e.Pattern.Keywords), e.Confidence)
			}
			return nil
		},
	}
}
