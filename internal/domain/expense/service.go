package expense

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/rachaai/internal/domain/cultural"
	"github.com/FACorreiaa/rachaai/internal/domain/regional"
)

// Validation errors returned by the Service. Callers map them to client errors.
var (
	ErrEmptyText     = errors.New("expense text is empty")
	ErrTextTooLong   = errors.New("expense text is too long")
	ErrUnknownRegion = errors.New("unknown region")
)

const (
	operationInterpret = "interpret"
	operationCulture   = "cultural_context"
)

// IsValidationError reports whether err comes from input validation.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyText) || errors.Is(err, ErrTextTooLong) || errors.Is(err, ErrUnknownRegion)
}

// Service is the request layer around the engine: it validates input, logs,
// traces and records metrics. The engine itself never fails.
type Service struct {
	processor     *Processor
	analyzer      *cultural.Analyzer
	logger        *slog.Logger
	metrics       *Metrics
	tracer        trace.Tracer
	maxTextLength int
}

// NewService creates the request layer. maxTextLength counts characters.
func NewService(processor *Processor, analyzer *cultural.Analyzer, metrics *Metrics, logger *slog.Logger, maxTextLength int) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	return &Service{
		processor:     processor,
		analyzer:      analyzer,
		logger:        logger,
		metrics:       metrics,
		tracer:        otel.Tracer("github.com/FACorreiaa/rachaai/internal/domain/expense"),
		maxTextLength: maxTextLength,
	}
}

// ProcessExpenseText interprets a shared-expense message.
func (s *Service) ProcessExpenseText(ctx context.Context, text, region string) (*ExpenseInterpretation, error) {
	ctx, span := s.tracer.Start(ctx, "expense.ProcessExpenseText",
		trace.WithAttributes(attribute.Int("text.length", len(text)), attribute.String("region", region)))
	defer span.End()
	start := time.Now()

	r, err := s.validate(ctx, text, region)
	if err != nil {
		s.fail(span, operationInterpret, err)
		return nil, fmt.Errorf("process expense text: %w", err)
	}

	result := s.processor.Process(text, r)

	s.metrics.Requests.WithLabelValues(operationInterpret, "ok").Inc()
	s.metrics.Duration.WithLabelValues(operationInterpret).Observe(time.Since(start).Seconds())
	s.metrics.Confidence.Observe(result.Confidence)
	s.metrics.Scenarios.WithLabelValues(string(result.CulturalContext.Scenario)).Inc()
	s.metrics.Methods.WithLabelValues(string(result.SplittingMethod)).Inc()

	span.SetAttributes(
		attribute.String("expense.scenario", string(result.CulturalContext.Scenario)),
		attribute.String("expense.method", string(result.SplittingMethod)),
		attribute.Float64("expense.confidence", result.Confidence),
	)

	s.logger.InfoContext(ctx, "expense interpreted",
		"scenario", result.CulturalContext.Scenario,
		"method", result.SplittingMethod,
		"participants", len(result.Participants),
		"amounts", len(result.Amounts),
		"total", result.TotalAmount.String(),
		"confidence", result.Confidence,
		"processing_ms", result.ProcessingTimeMs,
	)

	return &result, nil
}

// AnalyzeCulturalContext returns only the cultural reading of a message.
func (s *Service) AnalyzeCulturalContext(ctx context.Context, text, region string) (cultural.CulturalContext, error) {
	ctx, span := s.tracer.Start(ctx, "expense.AnalyzeCulturalContext",
		trace.WithAttributes(attribute.Int("text.length", len(text)), attribute.String("region", region)))
	defer span.End()
	start := time.Now()

	r, err := s.validate(ctx, text, region)
	if err != nil {
		s.fail(span, operationCulture, err)
		return cultural.CulturalContext{}, fmt.Errorf("analyze cultural context: %w", err)
	}

	result := s.analyzer.Analyze(text, r)

	s.metrics.Requests.WithLabelValues(operationCulture, "ok").Inc()
	s.metrics.Duration.WithLabelValues(operationCulture).Observe(time.Since(start).Seconds())
	s.metrics.Scenarios.WithLabelValues(string(result.Scenario)).Inc()

	s.logger.DebugContext(ctx, "cultural context analyzed",
		"scenario", result.Scenario,
		"region", result.Region,
		"confidence", result.Confidence,
	)

	return result, nil
}

func (s *Service) validate(ctx context.Context, text, region string) (regional.Region, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyText
	}
	if s.maxTextLength > 0 {
		if n := utf8.RuneCountInString(text); n > s.maxTextLength {
			return "", fmt.Errorf("%w: %d characters, max %d", ErrTextTooLong, n, s.maxTextLength)
		}
	}
	r, ok := regional.ParseRegion(region)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRegion, region)
	}
	return r, nil
}

func (s *Service) fail(span trace.Span, operation string, err error) {
	outcome := "error"
	if IsValidationError(err) {
		outcome = "invalid"
	}
	s.metrics.Requests.WithLabelValues(operation, outcome).Inc()

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	s.logger.Warn("engine request rejected", "operation", operation, "error", err)
}
