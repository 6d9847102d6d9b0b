package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Aleph-Alpha/msgcodec/v1/observability"
)

// ObserveOperation turns an encoder or decoder notification into metrics,
// which makes *Metrics usable directly as an observability.Observer.
func (m *Metrics) ObserveOperation(ctx observability.OperationContext) {
	m.RecordOperation(ctx.Component, ctx.Operation, ctx.Resource, ctx.Error, ctx.Size, ctx.Duration)

	if n, ok := ctx.Metadata["unresolved_nested"].(int); ok && n > 0 {
		m.unresolvedNested.WithLabelValues(ctx.Resource).Add(float64(n))
	}
}

// RecordOperation records one operation. Sizes are only observed for
// successful operations.
// Example: m.RecordOperation("encoder", "encode", "area.move", nil, 12, time.Millisecond)
func (m *Metrics) RecordOperation(component, operation, route string, err error, size int64, duration time.Duration) {
	status := "success"
	if err != nil {
		status = "error"
	}
	m.operationsTotal.WithLabelValues(component, operation, route, status).Inc()
	m.operationDuration.WithLabelValues(component, operation).Observe(duration.Seconds())
	if err == nil {
		m.messageBytes.WithLabelValues(component, operation, route).Observe(float64(size))
	}
}

// CreateCounter creates a new CounterVec metric and registers it.
func (m *Metrics) CreateCounter(name, help string, labels []string) *prometheus.CounterVec {
	counter := createCounterVec(name, help, labels)
	m.registerer.MustRegister(counter)
	return counter
}

// CreateHistogram creates a new HistogramVec metric and registers it.
func (m *Metrics) CreateHistogram(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	hist := createHistogramVec(name, help, labels, buckets)
	m.registerer.MustRegister(hist)
	return hist
}

// CreateGauge creates a new GaugeVec metric and registers it.
func (m *Metrics) CreateGauge(name, help string, labels []string) *prometheus.GaugeVec {
	gauge := createGaugeVec(name, help, labels)
	m.registerer.MustRegister(gauge)
	return gauge
}

func createCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
}

func createHistogramVec(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    name,
			Help:    help,
			Buckets: buckets,
		},
		labels,
	)
}

func createGaugeVec(name, help string, labels []string) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
}
