package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds an isolated Prometheus registry, the codec metrics and the
// HTTP server exposing them.
type Metrics struct {
	// Server serves /metrics. It is nil when Config.Address is empty.
	Server *http.Server

	// Registry is the Prometheus registry all metrics are registered on.
	Registry *prometheus.Registry

	registerer prometheus.Registerer

	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	messageBytes      *prometheus.HistogramVec
	unresolvedNested  *prometheus.CounterVec
}

// NewMetrics creates the registry, registers the codec metrics (and the
// default collectors when enabled) and prepares the HTTP server.
//
// Every metric carries a constant service="<cfg.ServiceName>" label.
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{Address: ":9090", ServiceName: "gateway"})
//	enc = enc.WithObserver(m)
//	go m.Server.ListenAndServe()
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()
	wrapped := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry:   registry,
		registerer: wrapped,
	}

	m.operationsTotal = createCounterVec(
		"msgcodec_operations_total",
		"Total number of encode and decode operations",
		[]string{"component", "operation", "route", "status"},
	)
	m.operationDuration = createHistogramVec(
		"msgcodec_operation_duration_seconds",
		"Duration of encode and decode operations in seconds",
		[]string{"component", "operation"},
		[]float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1},
	)
	m.messageBytes = createHistogramVec(
		"msgcodec_message_bytes",
		"Size of encoded messages in bytes",
		[]string{"component", "operation", "route"},
		prometheus.ExponentialBuckets(8, 4, 8),
	)
	m.unresolvedNested = createCounterVec(
		"msgcodec_unresolved_nested_total",
		"Fields skipped because their message type could not be resolved",
		[]string{"route"},
	)

	wrapped.MustRegister(
		m.operationsTotal,
		m.operationDuration,
		m.messageBytes,
		m.unresolvedNested,
	)

	if cfg.EnableDefaultCollectors {
		wrapped.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	if cfg.Address != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		m.Server = &http.Server{
			Addr:    cfg.Address,
			Handler: mux,
		}
	}

	return m
}
