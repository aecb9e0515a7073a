package expense

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/rachaai/internal/domain/cultural"
	"github.com/FACorreiaa/rachaai/internal/domain/regional"
)

func newTestService(t *testing.T, maxLen int) (*Service, *Metrics) {
	t.Helper()
	analyzer := cultural.NewAnalyzer()
	metrics := NewMetrics(prometheus.NewRegistry())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(NewProcessor(analyzer, regional.NewProcessor()), analyzer, metrics, logger, maxLen), metrics
}

func TestService_ProcessExpenseText(t *testing.T) {
	svc, metrics := newTestService(t, 100)

	got, err := svc.ProcessExpenseText(context.Background(), "Rodízio de pizza. R$ 120,00 para 4 pessoas. Cada um paga igual.", "sp")
	require.NoError(t, err)
	assert.Equal(t, cultural.ScenarioRodizio, got.CulturalContext.Scenario)
	assert.Equal(t, regional.SaoPaulo, got.CulturalContext.Region)
	assert.Equal(t, MethodEqual, got.SplittingMethod)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Requests.WithLabelValues(operationInterpret, "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Scenarios.WithLabelValues(string(cultural.ScenarioRodizio))))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Methods.WithLabelValues(string(MethodEqual))))
}

func TestService_Validation(t *testing.T) {
	svc, metrics := newTestService(t, 20)

	tests := []struct {
		name   string
		text   string
		region string
		err    error
	}{
		{"empty", "", "", ErrEmptyText},
		{"blank", "   \n\t", "", ErrEmptyText},
		{"too long", strings.Repeat("á", 21), "", ErrTextTooLong},
		{"unknown region", "Pizza R$ 50", "atlantida", ErrUnknownRegion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ProcessExpenseText(context.Background(), tt.text, tt.region)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.err))
			assert.True(t, IsValidationError(err))

			_, err = svc.AnalyzeCulturalContext(context.Background(), tt.text, tt.region)
			assert.True(t, errors.Is(err, tt.err))
		})
	}

	assert.Equal(t, 4.0, testutil.ToFloat64(metrics.Requests.WithLabelValues(operationInterpret, "invalid")))
	assert.Equal(t, 4.0, testutil.ToFloat64(metrics.Requests.WithLabelValues(operationCulture, "invalid")))
}

func TestService_LengthCountsCharacters(t *testing.T) {
	svc, _ := newTestService(t, 20)

	// 20 accented characters are 40 bytes
	_, err := svc.ProcessExpenseText(context.Background(), strings.Repeat("á", 20), "")
	assert.NoError(t, err)
}

func TestService_CanceledContext(t *testing.T) {
	svc, metrics := newTestService(t, 100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.ProcessExpenseText(ctx, "Pizza R$ 50", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, IsValidationError(err))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Requests.WithLabelValues(operationInterpret, "error")))
}

func TestService_AnalyzeCulturalContext(t *testing.T) {
	svc, _ := newTestService(t, 0)

	got, err := svc.AnalyzeCulturalContext(context.Background(), "Churrasco no sábado com a família", "Minas Gerais")
	require.NoError(t, err)
	assert.Equal(t, cultural.ScenarioChurrasco, got.Scenario)
	assert.Equal(t, regional.MinasGerais, got.Region)
}

func TestNewService_Defaults(t *testing.T) {
	analyzer := cultural.NewAnalyzer()
	svc := NewService(NewProcessor(analyzer, regional.NewProcessor()), analyzer, nil, nil, 0)

	_, err := svc.ProcessExpenseText(context.Background(), strings.Repeat("pizza ", 1000), "")
	assert.NoError(t, err)
}
