// Package cron provides scheduled background jobs using robfig/cron.
package cron

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"

	"github.com/FACorreiaa/rachaai/internal/domain/evaluation"
	"github.com/FACorreiaa/rachaai/pkg/storage"
)

const (
	canaryTimeout    = 5 * time.Minute
	reportCollection = "canary"
	xlsxContentType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Evaluator runs a corpus evaluation.
type Evaluator interface {
	Run(ctx context.Context, cases []evaluation.Case) (*evaluation.Report, error)
}

// CanaryMetrics exports the outcome of the last accuracy canary.
type CanaryMetrics struct {
	Accuracy *prometheus.GaugeVec
	LastRun  prometheus.Gauge
	Runs     *prometheus.CounterVec
}

// NewCanaryMetrics creates the canary collectors and registers them with reg
// when it is not nil.
func NewCanaryMetrics(reg prometheus.Registerer) *CanaryMetrics {
	m := &CanaryMetrics{
		Accuracy: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "rachaai",
			Subsystem: "canary",
			Name:      "accuracy_ratio",
			Help:      "Share of corpus cases passing in the last canary run.",
		}, []string{"corpus"}),
		LastRun: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "rachaai",
			Subsystem: "canary",
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time of the last finished canary run.",
		}),
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rachaai",
			Subsystem: "canary",
			Name:      "runs_total",
			Help:      "Canary runs by outcome.",
		}, []string{"outcome"}),
	}
	if reg != nil {
		reg.MustRegister(m.Accuracy, m.LastRun, m.Runs)
	}
	return m
}

// Scheduler manages background scheduled jobs using robfig/cron.
type Scheduler struct {
	cron        *cron.Cron
	evaluator   Evaluator
	cases       []evaluation.Case
	schedule    string
	minAccuracy float64
	metrics     *CanaryMetrics
	logger      *slog.Logger

	reports         storage.Storage
	reportRetention int
}

// NewScheduler creates a new job scheduler that re-runs cases on schedule
// (standard 5-field cron format).
func NewScheduler(evaluator Evaluator, cases []evaluation.Case, schedule string, minAccuracy float64, metrics *CanaryMetrics, logger *slog.Logger) *Scheduler {
	if metrics == nil {
		metrics = NewCanaryMetrics(nil)
	}
	c := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelDebug))))

	return &Scheduler{
		cron:        c,
		evaluator:   evaluator,
		cases:       cases,
		schedule:    schedule,
		minAccuracy: minAccuracy,
		metrics:     metrics,
		logger:      logger,
	}
}

// WithReportStore archives the spreadsheet of every run in store, keeping
// the newest retention reports.
func (s *Scheduler) WithReportStore(store storage.Storage, retention int) *Scheduler {
	s.reports = store
	s.reportRetention = retention
	return s
}

// Start begins scheduled jobs.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.runCanary); err != nil {
		return fmt.Errorf("invalid canary schedule %q: %w", s.schedule, err)
	}

	s.cron.Start()
	s.logger.Info("cron scheduler started",
		slog.Int("jobs", len(s.cron.Entries())),
		slog.String("canary_schedule", s.schedule),
	)
	return nil
}

// Stop gracefully stops all scheduled jobs.
func (s *Scheduler) Stop() context.Context {
	s.logger.Info("cron scheduler stopping")
	return s.cron.Stop()
}

// RunNow runs the canary synchronously and records its metrics.
func (s *Scheduler) RunNow(ctx context.Context) (*evaluation.Report, error) {
	report, err := s.evaluator.Run(ctx, s.cases)
	if err != nil {
		s.metrics.Runs.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("canary run failed: %w", err)
	}

	if s.reports != nil {
		s.archive(ctx, report)
	}

	accuracy := report.Accuracy()
	s.metrics.Accuracy.WithLabelValues("builtin").Set(accuracy)
	s.metrics.LastRun.Set(float64(report.FinishedAt.Unix()))

	if accuracy < s.minAccuracy {
		s.metrics.Runs.WithLabelValues("degraded").Inc()
		s.logger.Error("accuracy canary below threshold",
			slog.String("run_id", report.RunID.String()),
			slog.Float64("accuracy", accuracy),
			slog.Float64("min_accuracy", s.minAccuracy),
			slog.Int("failures", len(report.Failures())),
		)
		return report, nil
	}

	s.metrics.Runs.WithLabelValues("pass").Inc()
	s.logger.Debug("accuracy canary passed",
		slog.String("run_id", report.RunID.String()),
		slog.Float64("accuracy", accuracy),
	)
	return report, nil
}

func (s *Scheduler) runCanary() {
	ctx, cancel := context.WithTimeout(context.Background(), canaryTimeout)
	defer cancel()

	if _, err := s.RunNow(ctx); err != nil {
		s.logger.Warn("accuracy canary aborted", slog.Any("error", err))
	}
}

// archive stores the run spreadsheet. Failures are logged, never fatal.
func (s *Scheduler) archive(ctx context.Context, report *evaluation.Report) {
	var buf bytes.Buffer
	if err := report.WriteXLSX(&buf); err != nil {
		s.logger.Warn("failed to render canary report", slog.Any("error", err))
		return
	}

	name := fmt.Sprintf("canary_%s_%s.xlsx", report.StartedAt.UTC().Format("20060102T150405"), report.RunID.String()[:8])
	info, err := s.reports.Put(ctx, reportCollection, name, xlsxContentType, &buf)
	if err != nil {
		s.logger.Warn("failed to archive canary report", slog.Any("error", err))
		return
	}

	removed, err := storage.Prune(ctx, s.reports, reportCollection, s.reportRetention)
	if err != nil {
		s.logger.Warn("failed to prune canary reports", slog.Any("error", err))
	}
	s.logger.Debug("canary report archived",
		slog.String("file_id", info.ID.String()),
		slog.Int64("size", info.Size),
		slog.Int("pruned", removed),
	)
}
