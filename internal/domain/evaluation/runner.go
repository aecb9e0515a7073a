package evaluation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/FACorreiaa/rachaai/internal/domain/expense"
)

// Interpreter is the part of the expense service the runner needs.
type Interpreter interface {
	ProcessExpenseText(ctx context.Context, text, region string) (*expense.ExpenseInterpretation, error)
}

// Result is the outcome of one corpus case.
type Result struct {
	Case          Case
	GotScenario   string
	GotMethod     string
	GotTotal      decimal.Decimal
	Confidence    float64
	ScenarioMatch bool
	MethodMatch   bool
	TotalMatch    bool
	Err           string
}

// Passed reports whether scenario, method and total all match.
func (r Result) Passed() bool {
	return r.Err == "" && r.ScenarioMatch && r.MethodMatch && r.TotalMatch
}

// Report is a full corpus run.
type Report struct {
	RunID      uuid.UUID
	StartedAt  time.Time
	FinishedAt time.Time
	Results    []Result
}

// Passed counts the passing cases.
func (r *Report) Passed() int {
	n := 0
	for _, res := range r.Results {
		if res.Passed() {
			n++
		}
	}
	return n
}

// Accuracy is the share of passing cases, 0 for an empty run.
func (r *Report) Accuracy() float64 {
	if len(r.Results) == 0 {
		return 0
	}
	return float64(r.Passed()) / float64(len(r.Results))
}

// Failures returns the failing results in corpus order.
func (r *Report) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Passed() {
			out = append(out, res)
		}
	}
	return out
}

// Runner evaluates an Interpreter against a corpus.
type Runner struct {
	interpreter Interpreter
	logger      *slog.Logger
}

// NewRunner creates a new evaluation runner
func NewRunner(interpreter Interpreter, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		interpreter: interpreter,
		logger:      logger,
	}
}

// Run evaluates every case. A case whose interpretation fails is recorded as
// failed; only context cancellation aborts the run.
func (r *Runner) Run(ctx context.Context, cases []Case) (*Report, error) {
	report := &Report{
		RunID:     uuid.New(),
		StartedAt: time.Now(),
		Results:   make([]Result, 0, len(cases)),
	}

	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("evaluation run %s canceled: %w", report.RunID, err)
		}
		report.Results = append(report.Results, r.evaluate(ctx, c))
	}
	report.FinishedAt = time.Now()

	r.logger.Info("evaluation finished",
		slog.String("run_id", report.RunID.String()),
		slog.Int("cases", len(report.Results)),
		slog.Int("passed", report.Passed()),
		slog.Float64("accuracy", report.Accuracy()),
	)
	for _, f := range report.Failures() {
		r.logger.Warn("evaluation case failed",
			slog.String("run_id", report.RunID.String()),
			slog.String("text", f.Case.Text),
			slog.String("want_scenario", f.Case.Scenario),
			slog.String("got_scenario", f.GotScenario),
			slog.String("want_method", f.Case.Method),
			slog.String("got_method", f.GotMethod),
			slog.String("error", f.Err),
		)
	}

	return report, nil
}

func (r *Runner) evaluate(ctx context.Context, c Case) Result {
	res := Result{Case: c}

	want, err := c.ExpectedTotal()
	if err != nil {
		res.Err = err.Error()
		return res
	}

	got, err := r.interpreter.ProcessExpenseText(ctx, c.Text, c.Region)
	if err != nil {
		res.Err = err.Error()
		return res
	}

	res.GotScenario = string(got.CulturalContext.Scenario)
	res.GotMethod = string(got.SplittingMethod)
	res.GotTotal = got.TotalAmount
	res.Confidence = got.Confidence
	res.ScenarioMatch = res.GotScenario == c.Scenario
	res.MethodMatch = res.GotMethod == c.Method
	res.TotalMatch = want.Equal(got.TotalAmount)
	return res
}
