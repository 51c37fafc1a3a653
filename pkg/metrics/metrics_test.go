package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// value читает текущее значение счетчика или gauge
func value(t *testing.T, c prometheus.Metric) float64 {
	t.Helper()
	var out dto.Metric
	require.NoError(t, c.Write(&out))
	if out.Counter != nil {
		return out.GetCounter().GetValue()
	}
	return out.GetGauge().GetValue()
}

func TestMetrics_ObserveHTTPRequest(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())

	m.ObserveHTTPRequest("GET", "/api/v1/availability", 200, 15*time.Millisecond)
	m.ObserveHTTPRequest("GET", "/api/v1/availability", 200, 5*time.Millisecond)

	assert.Equal(t, 2.0, value(t, m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/availability", "200")))
}

func TestMetrics_ObserveDBQuery(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())

	m.ObserveDBQuery("select", time.Millisecond, nil)
	m.ObserveDBQuery("select", time.Millisecond, errors.New("boom"))

	assert.Equal(t, 1.0, value(t, m.DBQueryErrors.WithLabelValues("select")))
}

func TestMetrics_SetDBConnections(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())

	m.SetDBConnections(10, 3, 7)

	assert.Equal(t, 10.0, value(t, m.DBConnections.WithLabelValues("open")))
	assert.Equal(t, 3.0, value(t, m.DBConnections.WithLabelValues("in_use")))
	assert.Equal(t, 7.0, value(t, m.DBConnections.WithLabelValues("idle")))
}
