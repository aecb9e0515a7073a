package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/FACorreiaa/rachaai/cmd/api"
	"github.com/FACorreiaa/rachaai/pkg/config"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "racha",
		Short: "Interpret shared expenses written in Brazilian Portuguese",
		Long: `racha reads free-form messages such as "Rodízio de pizza, R$120 para 4 pessoas"
and works out who splits, how much, by which method and under which cultural convention.`,
		SilenceUsage: true,
		Version:      version,
	}

	root.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error); overrides LOG_LEVEL")

	root.AddCommand(analyzeCmd())
	root.AddCommand(processCmd())
	root.AddCommand(evalCmd())
	root.AddCommand(patternsCmd())
	root.AddCommand(serveCmd())

	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadDependencies reads configuration and builds the application graph.
// CLI commands never run the canary on a schedule.
func loadDependencies(cmd *cobra.Command, withCanary bool) (*api.Dependencies, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if !withCanary {
		cfg.Canary.Enabled = false
	}

	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(lvl)); err != nil {
			return nil, fmt.Errorf("invalid --log-level %q: %w", lvl, err)
		}
		cfg.Observability.LogLevel = level
	}

	logger := api.NewLogger(cfg.Observability)
	if !withCanary {
		// keep stdout clean for command output
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.Observability.LogLevel}))
	}

	return api.InitDependencies(cfg, logger)
}
