package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics manages the Prometheus metrics for the predictor service.
type Metrics struct {
	EvaluationsTotal    *prometheus.CounterVec
	EvaluationDuration  prometheus.Histogram
	DropoutProbability  prometheus.Histogram
	GuardRejections     prometheus.Counter
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// NewMetrics creates and registers the Prometheus metrics on the given
// registerer. Pass prometheus.DefaultRegisterer to expose them on /metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		EvaluationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "predictor_evaluations_total",
				Help: "Total number of completed dropout evaluations.",
			},
			[]string{"outcome", "risk_tier"},
		),
		EvaluationDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "predictor_evaluation_duration_seconds",
				Help:    "Duration of dropout evaluations.",
				Buckets: prometheus.DefBuckets,
			},
		),
		DropoutProbability: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "predictor_dropout_probability",
				Help:    "Distribution of predicted dropout probabilities.",
				Buckets: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 0.95},
			},
		),
		GuardRejections: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "predictor_guard_rejections_total",
				Help: "Total number of evaluations rejected for a missing beneficiary ID.",
			},
		),
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "predictor_http_requests_total",
				Help: "Total number of HTTP requests.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "predictor_http_request_duration_seconds",
				Help:    "Latency of HTTP requests.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
}

// RecordEvaluation records metrics for one completed evaluation.
func (m *Metrics) RecordEvaluation(outcome, riskTier string, probability float64, duration time.Duration) {
	m.EvaluationsTotal.WithLabelValues(outcome, riskTier).Inc()
	m.EvaluationDuration.Observe(duration.Seconds())
	m.DropoutProbability.Observe(probability)
}

// RecordGuardRejection records an evaluation rejected by the ID guard.
func (m *Metrics) RecordGuardRejection() {
	m.GuardRejections.Inc()
}

// RecordHTTPRequest records metrics for one handled HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}
