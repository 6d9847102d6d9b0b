// Package metrics exposes msgcodec operations as Prometheus metrics.
//
// *Metrics keeps its own registry, labels every metric with the service name
// and implements observability.Observer. Attach it to an encoder or decoder
// with WithObserver, or include FXModule and let fx inject it:
//
//	m := metrics.NewMetrics(metrics.Config{Address: ":9090", ServiceName: "gateway"})
//	enc = enc.WithObserver(m)
//
// Recorded series:
//
//	msgcodec_operations_total{component,operation,route,status}
//	msgcodec_operation_duration_seconds{component,operation}
//	msgcodec_message_bytes{component,operation,route}
//	msgcodec_unresolved_nested_total{route}
//
// CreateCounter, CreateHistogram and CreateGauge register application metrics
// on the same registry.
package metrics
