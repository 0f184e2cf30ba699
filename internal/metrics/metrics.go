// Package metrics holds the Prometheus collectors for the trip registration API.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Registration outcome labels.
const (
	ResultOK        = "ok"
	ResultNotFound  = "not_found"
	ResultTripFull  = "trip_full"
	ResultDuplicate = "duplicate"
	ResultError     = "error"
)

// Metrics groups every collector the API records to.
// A nil *Metrics is valid and records nothing, which keeps tests free of registries.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	Registrations   *prometheus.CounterVec
	ClientsCreated  prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "trips",
				Name:      "http_requests_total",
				Help:      "Total HTTP requests processed.",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "trips",
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency distributions.",
				Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
			},
			[]string{"method", "route"},
		),
		Registrations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "trips",
				Name:      "registrations_total",
				Help:      "Registration attempts by outcome.",
			},
			[]string{"result"},
		),
		ClientsCreated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "trips",
				Name:      "clients_created_total",
				Help:      "Total number of clients created.",
			},
		),
	}
	reg.MustRegister(m.RequestsTotal, m.RequestDuration, m.Registrations, m.ClientsCreated)
	return m
}

// ObserveRegistration counts one registration attempt with the given result label.
func (m *Metrics) ObserveRegistration(result string) {
	if m == nil {
		return
	}
	m.Registrations.WithLabelValues(result).Inc()
}

// IncClientsCreated counts one created client.
func (m *Metrics) IncClientsCreated() {
	if m == nil {
		return
	}
	m.ClientsCreated.Inc()
}
