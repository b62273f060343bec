package observe

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/metric/noop"
)

func TestNewMetrics(t *testing.T) {
	m, err := NewMetrics(noop.NewMeterProvider())
	if err != nil {
		t.Fatal(err)
	}
	if m.Actions == nil || m.EventTicks == nil || m.ActivePlayers == nil ||
		m.ActionDuration == nil || m.PersistenceErrors == nil || m.OutboundMessages == nil {
		t.Error("instrument left uninitialized")
	}

	// Recording helpers must accept the standard attribute shapes.
	m.RecordAction(context.Background(), "attack", "user")
	m.RecordEventTick(context.Background(), "dispatched")
}

func TestDefaultMetricsIsSingleton(t *testing.T) {
	if DefaultMetrics() != DefaultMetrics() {
		t.Error("DefaultMetrics must return the same instance")
	}
}
