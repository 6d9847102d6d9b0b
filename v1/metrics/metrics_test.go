package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/Aleph-Alpha/msgcodec/v1/encoder"
	"github.com/Aleph-Alpha/msgcodec/v1/logger"
	"github.com/Aleph-Alpha/msgcodec/v1/observability"
	"github.com/Aleph-Alpha/msgcodec/v1/record"
	"github.com/Aleph-Alpha/msgcodec/v1/schema"
	"github.com/Aleph-Alpha/msgcodec/v1/wire"
)

func TestObserveOperation(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "test"})

	m.ObserveOperation(observability.OperationContext{
		Component: "encoder",
		Operation: "encode",
		Resource:  "area.move",
		Duration:  time.Millisecond,
		Size:      12,
		Metadata:  map[string]interface{}{"unresolved_nested": 2},
	})
	m.ObserveOperation(observability.OperationContext{
		Component: "encoder",
		Operation: "encode",
		Resource:  "area.move",
		Error:     errors.New("boom"),
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.operationsTotal.WithLabelValues("encoder", "encode", "area.move", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operationsTotal.WithLabelValues("encoder", "encode", "area.move", "error")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.unresolvedNested.WithLabelValues("area.move")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.messageBytes))
	assert.Equal(t, 1, testutil.CollectAndCount(m.operationDuration))
}

func TestEncoderReportsIntoMetrics(t *testing.T) {
	reg := schema.NewRegistry()
	require.NoError(t, reg.Register("user.login", schema.NewMessageDescriptor("user.login").
		MustAddField("id", schema.Required, wire.TypeUInt32, 1)))

	m := NewMetrics(Config{ServiceName: "test"})
	enc, err := encoder.NewClient(encoder.Config{}, reg)
	require.NoError(t, err)
	enc = enc.WithObserver(m)

	_, err = enc.Encode("user.login", record.NewRecord("id", 1))
	require.NoError(t, err)
	_, err = enc.Encode("user.login", record.NewRecord())
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.operationsTotal.WithLabelValues("encoder", "encode", "user.login", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.operationsTotal.WithLabelValues("encoder", "encode", "user.login", "error")))
}

func TestMetricsEndpoint(t *testing.T) {
	m := NewMetrics(Config{Address: ":0", ServiceName: "svc"})
	require.NotNil(t, m.Server)

	m.RecordOperation("decoder", "decode", "user.login", nil, 4, time.Microsecond)

	srv := httptest.NewServer(m.Server.Handler)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Contains(t, string(body), `msgcodec_operations_total{component="decoder",operation="decode",route="user.login",service="svc",status="success"} 1`)
}

func TestNoServerWithoutAddress(t *testing.T) {
	m := NewMetrics(Config{})
	assert.Nil(t, m.Server)
}

func TestCustomMetrics(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "svc", EnableDefaultCollectors: true})

	counter := m.CreateCounter("schema_reloads_total", "Schema reloads", []string{"source"})
	counter.WithLabelValues("file").Inc()
	gauge := m.CreateGauge("routes", "Registered routes", nil)
	gauge.WithLabelValues().Set(3)
	hist := m.CreateHistogram("batch_size", "Batch sizes", nil, []float64{1, 10, 100})
	hist.WithLabelValues().Observe(5)

	assert.Equal(t, 1.0, testutil.ToFloat64(counter.WithLabelValues("file")))
	assert.Equal(t, 3.0, testutil.ToFloat64(gauge.WithLabelValues()))

	n, err := testutil.GatherAndCount(m.Registry, "schema_reloads_total", "routes", "batch_size")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestFXModule(t *testing.T) {
	var collector MetricsCollector
	var observer observability.Observer

	app := fxtest.New(t,
		FXModule,
		fx.Supply(Config{ServiceName: "svc"}),
		fx.Provide(func() logger.Logger { return logger.NewNop() }),
		fx.Populate(&collector, &observer),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, collector)
	assert.Same(t, collector.(*Metrics), observer.(*Metrics))
}
