package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "precipitation_api"

// Metrics holds the Prometheus collectors for the API.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec   // labels: endpoint, status
	RequestDuration *prometheus.HistogramVec // labels: endpoint

	// Dataset metrics, set once after the load.
	DatasetRecords  prometheus.Gauge
	DatasetFallback prometheus.Gauge
}

// New creates the collectors and registers them with the default
// Prometheus registry.
func New() *Metrics {
	m := build()
	prometheus.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.DatasetRecords,
		m.DatasetFallback,
	)
	return m
}

// NewForTesting creates unregistered collectors so repeated test setups
// do not panic with "already registered".
func NewForTesting() *Metrics {
	return build()
}

func build() *Metrics {
	return &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by endpoint and status code.",
		}, []string{"endpoint", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds by endpoint.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"endpoint"}),
		DatasetRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_records",
			Help:      "Number of records in the loaded dataset.",
		}),
		DatasetFallback: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_fallback_active",
			Help:      "1 when the synthetic sample dataset is being served.",
		}),
	}
}
