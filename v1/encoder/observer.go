package encoder

import (
	"time"

	"github.com/Aleph-Alpha/msgcodec/v1/observability"
)

// observeOperation notifies the observer about an operation if one is configured.
func (e *EncoderClient) observeOperation(operation, route string, duration time.Duration, err error, size int64, skipped []string) {
	if e.observer == nil {
		return
	}
	var metadata map[string]interface{}
	if len(skipped) > 0 {
		metadata = map[string]interface{}{
			"unresolved_nested": len(skipped),
			"skipped_fields":    skipped,
		}
	}
	e.observer.ObserveOperation(observability.OperationContext{
		Component: "encoder",
		Operation: operation,
		Resource:  route,
		Duration:  duration,
		Error:     err,
		Size:      size,
		Metadata:  metadata,
	})
}
