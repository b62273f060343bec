// Package observe provides the application's observability primitives:
// OpenTelemetry metrics with a Prometheus exporter bridge so the standard
// /metrics endpoint keeps working.
//
// A package-level default [Metrics] instance ([DefaultMetrics]) is provided
// for convenience; tests should use [NewMetrics] with a custom
// [metric.MeterProvider] to avoid cross-test pollution.
package observe

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope name used for all bot metrics.
const meterName = "github.com/askorupa/adbot"

// Metrics holds all OpenTelemetry metric instruments for the application.
// All fields are safe for concurrent use — the underlying OTel types handle
// their own synchronisation.
type Metrics struct {
	// Actions counts dispatched game actions. Use with attributes:
	//   attribute.String("command", ...), attribute.String("origin", ...)
	Actions metric.Int64Counter

	// EventTicks counts event timer expirations by outcome
	// ("dispatched" or "idle").
	EventTicks metric.Int64Counter

	// ActivePlayers tracks the number of players in the active set.
	ActivePlayers metric.Int64UpDownCounter

	// ActionDuration tracks game action dispatch latency.
	ActionDuration metric.Float64Histogram

	// PersistenceErrors counts failed state snapshot writes.
	PersistenceErrors metric.Int64Counter

	// OutboundMessages counts chat messages sent to players.
	OutboundMessages metric.Int64Counter
}

// latencyBuckets defines histogram bucket boundaries (in seconds) sized for
// in-memory state machine dispatch.
var latencyBuckets = []float64{
	0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1,
}

// NewMetrics creates a fully initialised [Metrics] struct using the given
// [metric.MeterProvider]. Returns an error if any instrument creation fails.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.Actions, err = m.Int64Counter("adbot.actions",
		metric.WithDescription("Total dispatched game actions by command and origin."),
	); err != nil {
		return nil, err
	}
	if met.EventTicks, err = m.Int64Counter("adbot.event.ticks",
		metric.WithDescription("Total event timer expirations by outcome."),
	); err != nil {
		return nil, err
	}
	if met.ActivePlayers, err = m.Int64UpDownCounter("adbot.active_players",
		metric.WithDescription("Number of players currently in the active set."),
	); err != nil {
		return nil, err
	}
	if met.ActionDuration, err = m.Float64Histogram("adbot.action.duration",
		metric.WithDescription("Latency of game action dispatch."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.PersistenceErrors, err = m.Int64Counter("adbot.persistence.errors",
		metric.WithDescription("Total failed state snapshot writes."),
	); err != nil {
		return nil, err
	}
	if met.OutboundMessages, err = m.Int64Counter("adbot.outbound.messages",
		metric.WithDescription("Total chat messages sent to players."),
	); err != nil {
		return nil, err
	}

	return met, nil
}

// defaultMetrics is the lazily-initialised package-level Metrics instance.
var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the package-level [Metrics] instance, creating it on
// first call using [otel.GetMeterProvider]. Subsequent calls return the same
// pointer. Panics if instrument creation fails (should not happen with the
// global provider).
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}

// RecordAction records one dispatched action with the standard attribute set.
func (m *Metrics) RecordAction(ctx context.Context, command, origin string) {
	m.Actions.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("command", command),
			attribute.String("origin", origin),
		),
	)
}

// RecordEventTick records one event timer expiration.
func (m *Metrics) RecordEventTick(ctx context.Context, outcome string) {
	m.EventTicks.Add(ctx, 1,
		metric.WithAttributes(attribute.String("outcome", outcome)),
	)
}
