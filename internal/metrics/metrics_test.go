package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/pkordes/trip-registry/internal/metrics"
)

func TestObserveRegistration(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	m.ObserveRegistration(metrics.ResultOK)
	m.ObserveRegistration(metrics.ResultOK)
	m.ObserveRegistration(metrics.ResultTripFull)

	assert.InDelta(t, 2, testutil.ToFloat64(m.Registrations.WithLabelValues(metrics.ResultOK)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Registrations.WithLabelValues(metrics.ResultTripFull)), 0)
}

func TestIncClientsCreated(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	m.IncClientsCreated()

	assert.InDelta(t, 1, testutil.ToFloat64(m.ClientsCreated), 0)
}

func TestNilMetrics_isNoop(t *testing.T) {
	var m *metrics.Metrics

	assert.NotPanics(t, func() {
		m.ObserveRegistration(metrics.ResultOK)
		m.IncClientsCreated()
	})
}
