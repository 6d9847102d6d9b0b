package decoder

import (
	"time"

	"github.com/Aleph-Alpha/msgcodec/v1/observability"
)

func (d *DecoderClient) observeOperation(operation, route string, duration time.Duration, err error, size int64) {
	if d.observer != nil {
		d.observer.ObserveOperation(observability.OperationContext{
			Component: "decoder",
			Operation: operation,
			Resource:  route,
			Duration:  duration,
			Error:     err,
			Size:      size,
		})
	}
}
