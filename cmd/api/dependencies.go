package api

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/FACorreiaa/rachaai/internal/domain/cultural"
	"github.com/FACorreiaa/rachaai/internal/domain/evaluation"
	"github.com/FACorreiaa/rachaai/internal/domain/expense"
	"github.com/FACorreiaa/rachaai/internal/domain/expense/handler"
	"github.com/FACorreiaa/rachaai/internal/domain/regional"
	"github.com/FACorreiaa/rachaai/pkg/config"
	"github.com/FACorreiaa/rachaai/pkg/cron"
	"github.com/FACorreiaa/rachaai/pkg/storage"
)

// Dependencies holds all application dependencies
type Dependencies struct {
	Config   *config.Config
	Logger   *slog.Logger
	Registry *prometheus.Registry

	// Engine
	Analyzer  *cultural.Analyzer
	Regional  *regional.Processor
	Processor *expense.Processor

	// Services
	ExpenseService *expense.Service
	Runner         *evaluation.Runner
	Corpus         []evaluation.Case
	Scheduler      *cron.Scheduler
	ReportStore    storage.Storage

	// Handlers
	ExpenseHandler *handler.ExpenseHandler
}

// NewLogger builds the process logger from the observability settings.
func NewLogger(cfg config.ObservabilityConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

// InitDependencies initializes all application dependencies
func InitDependencies(cfg *config.Config, logger *slog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	deps.initMetrics()

	if err := deps.initServices(); err != nil {
		return nil, fmt.Errorf("failed to init services: %w", err)
	}

	deps.initHandlers()

	logger.Info("all dependencies initialized successfully")

	return deps, nil
}

// initMetrics creates the registry served on /metrics
func (d *Dependencies) initMetrics() {
	d.Registry = prometheus.NewRegistry()
	d.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// initServices initializes the engine, the request layer and the canary
func (d *Dependencies) initServices() error {
	d.Analyzer = cultural.NewAnalyzer()
	d.Regional = regional.NewProcessor()
	d.Processor = expense.NewProcessor(d.Analyzer, d.Regional)

	d.ExpenseService = expense.NewService(
		d.Processor,
		d.Analyzer,
		expense.NewMetrics(d.Registry),
		d.Logger,
		d.Config.Engine.MaxTextLength,
	)

	corpus, err := evaluation.LoadCorpus()
	if err != nil {
		return fmt.Errorf("failed to load evaluation corpus: %w", err)
	}
	d.Corpus = corpus
	d.Runner = evaluation.NewRunner(d.ExpenseService, d.Logger)

	if d.Config.Canary.Enabled {
		d.Scheduler = cron.NewScheduler(
			d.Runner,
			d.Corpus,
			d.Config.Canary.Schedule,
			d.Config.Canary.MinAccuracy,
			cron.NewCanaryMetrics(d.Registry),
			d.Logger,
		)

		if dir := d.Config.Canary.ReportDir; dir != "" {
			store, err := storage.NewLocalStorage(dir)
			if err != nil {
				return fmt.Errorf("failed to init report storage: %w", err)
			}
			d.ReportStore = store
			d.Scheduler.WithReportStore(store, d.Config.Canary.ReportRetention)
		}
	}

	d.Logger.Info("services initialized",
		slog.Int("corpus_cases", len(d.Corpus)),
		slog.Bool("canary_enabled", d.Scheduler != nil),
	)
	return nil
}

// initHandlers initializes all handler dependencies
func (d *Dependencies) initHandlers() {
	d.ExpenseHandler = handler.NewExpenseHandler(d.ExpenseService, d.Logger)

	d.Logger.Info("handlers initialized")
}

// Cleanup stops background jobs
func (d *Dependencies) Cleanup() {
	if d.Scheduler != nil {
		<-d.Scheduler.Stop().Done()
	}
	d.Logger.Info("cleanup completed")
}
