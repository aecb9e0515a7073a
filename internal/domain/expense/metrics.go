package expense

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Prometheus collectors of the request layer.
type Metrics struct {
	Requests   *prometheus.CounterVec
	Duration   *prometheus.HistogramVec
	Confidence prometheus.Histogram
	Scenarios  *prometheus.CounterVec
	Methods    *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered, which is what tests usually want.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rachaai",
			Name:      "requests_total",
			Help:      "Engine requests by operation and outcome.",
		}, []string{"operation", "outcome"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "rachaai",
			Name:      "request_duration_seconds",
			Help:      "Engine request latency by operation.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
		}, []string{"operation"}),
		Confidence: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "rachaai",
			Name:      "interpretation_confidence",
			Help:      "Confidence of returned expense interpretations.",
			Buckets:   prometheus.LinearBuckets(0.1, 0.1, 10),
		}),
		Scenarios: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rachaai",
			Name:      "scenarios_total",
			Help:      "Detected cultural scenarios.",
		}, []string{"scenario"}),
		Methods: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rachaai",
			Name:      "splitting_methods_total",
			Help:      "Decided splitting methods.",
		}, []string{"method"}),
	}

	if reg != nil {
		reg.MustRegister(m.Requests, m.Duration, m.Confidence, m.Scenarios, m.Methods)
	}
	return m
}
