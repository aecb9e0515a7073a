package cron

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/rachaai/internal/domain/evaluation"
	"github.com/FACorreiaa/rachaai/pkg/storage"
)

type stubEvaluator struct {
	report *evaluation.Report
	err    error
}

func (s stubEvaluator) Run(context.Context, []evaluation.Case) (*evaluation.Report, error) {
	return s.report, s.err
}

func reportWith(passed, failed int) *evaluation.Report {
	r := &evaluation.Report{RunID: uuid.New(), FinishedAt: time.Unix(1700000000, 0)}
	for i := 0; i < passed; i++ {
		r.Results = append(r.Results, evaluation.Result{ScenarioMatch: true, MethodMatch: true, TotalMatch: true})
	}
	for i := 0; i < failed; i++ {
		r.Results = append(r.Results, evaluation.Result{ScenarioMatch: false})
	}
	return r
}

func newTestScheduler(t *testing.T, ev Evaluator, schedule string) (*Scheduler, *CanaryMetrics) {
	t.Helper()
	metrics := NewCanaryMetrics(prometheus.NewRegistry())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewScheduler(ev, nil, schedule, 1.0, metrics, logger), metrics
}

func TestScheduler_RunNow(t *testing.T) {
	tests := []struct {
		name     string
		eval     stubEvaluator
		accuracy float64
		outcome  string
		wantErr  bool
	}{
		{"pass", stubEvaluator{report: reportWith(4, 0)}, 1.0, "pass", false},
		{"degraded", stubEvaluator{report: reportWith(3, 1)}, 0.75, "degraded", false},
		{"error", stubEvaluator{err: errors.New("canceled")}, 0, "error", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, metrics := newTestScheduler(t, tt.eval, "@every 1h")

			_, err := s.RunNow(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.accuracy, testutil.ToFloat64(metrics.Accuracy.WithLabelValues("builtin")))
				assert.Equal(t, 1700000000.0, testutil.ToFloat64(metrics.LastRun))
			}
			assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Runs.WithLabelValues(tt.outcome)))
		})
	}
}

func TestScheduler_Start(t *testing.T) {
	s, _ := newTestScheduler(t, stubEvaluator{report: reportWith(1, 0)}, "*/30 * * * *")
	require.NoError(t, s.Start())
	assert.Len(t, s.cron.Entries(), 1)
	<-s.Stop().Done()

	bad, _ := newTestScheduler(t, stubEvaluator{}, "every tuesday")
	assert.Error(t, bad.Start())
}

func TestScheduler_ArchivesReports(t *testing.T) {
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	s, _ := newTestScheduler(t, stubEvaluator{report: reportWith(2, 0)}, "@every 1h")
	s.WithReportStore(store, 2)

	for i := 0; i < 3; i++ {
		_, err := s.RunNow(context.Background())
		require.NoError(t, err)
	}

	files, err := store.List(context.Background(), reportCollection)
	require.NoError(t, err)
	assert.Len(t, files, 2)
	assert.Equal(t, xlsxContentType, files[0].ContentType)
	assert.Positive(t, files[0].Size)
}
