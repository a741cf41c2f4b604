package monitoring_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chynaenye/microinsurance-predictor/internal/infrastructure/monitoring"
)

func TestMetrics_RecordEvaluation(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := monitoring.NewMetrics(reg)

	m.RecordEvaluation("WILL_DROPOUT", "HIGH", 0.78, 5*time.Millisecond)
	m.RecordEvaluation("WILL_NOT_DROPOUT", "LOW", 0.04, 3*time.Millisecond)
	m.RecordEvaluation("WILL_DROPOUT", "HIGH", 0.95, 4*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.EvaluationsTotal.WithLabelValues("WILL_DROPOUT", "HIGH")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EvaluationsTotal.WithLabelValues("WILL_NOT_DROPOUT", "LOW")))
}

func TestMetrics_RecordGuardRejection(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := monitoring.NewMetrics(reg)

	m.RecordGuardRejection()
	m.RecordGuardRejection()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.GuardRejections))
}

func TestMetrics_RecordHTTPRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := monitoring.NewMetrics(reg)

	m.RecordHTTPRequest("POST", "/assess", "200", 10*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/assess", "200")))

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "predictor_http_requests_total")
	assert.Contains(t, names, "predictor_http_request_duration_seconds")
}
