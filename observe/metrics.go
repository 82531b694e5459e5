package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records store operation metrics.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordOp records one store operation with its duration and, for
	// lookups, whether it missed.
	RecordOp(ctx context.Context, meta StoreMeta, duration time.Duration, miss bool)
}

// metricsImpl is the concrete implementation of Metrics.
type metricsImpl struct {
	meter        metric.Meter
	opCount      metric.Int64Counter
	missCount    metric.Int64Counter
	durationHist metric.Float64Histogram
}

// NewMetrics creates a Metrics instance with the given meter.
func NewMetrics(meter metric.Meter) (Metrics, error) {
	opCount, err := meter.Int64Counter(
		"cache.op.total",
		metric.WithDescription("Total number of store operations"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	missCount, err := meter.Int64Counter(
		"cache.op.misses",
		metric.WithDescription("Total number of lookup misses"),
		metric.WithUnit("{miss}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"cache.op.duration_us",
		metric.WithDescription("Store operation duration in microseconds"),
		metric.WithUnit("us"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		meter:        meter,
		opCount:      opCount,
		missCount:    missCount,
		durationHist: durationHist,
	}, nil
}

// RecordOp records metrics for one store operation.
func (m *metricsImpl) RecordOp(ctx context.Context, meta StoreMeta, duration time.Duration, miss bool) {
	opt := metric.WithAttributes(
		attribute.String("cache.store", meta.Store),
		attribute.String("cache.op", meta.Op),
	)

	m.opCount.Add(ctx, 1, opt)
	if miss {
		m.missCount.Add(ctx, 1, opt)
	}
	// Store operations are sub-millisecond; record in microseconds.
	m.durationHist.Record(ctx, float64(duration.Microseconds()), opt)
}

// noopMetrics is a metrics implementation that does nothing.
type noopMetrics struct{}

// NoopMetrics returns a Metrics that discards everything.
func NoopMetrics() Metrics { return &noopMetrics{} }

func (m *noopMetrics) RecordOp(ctx context.Context, meta StoreMeta, duration time.Duration, miss bool) {
}
