package observe

import (
	"context"
	"time"
)

// OpFunc is the signature for a single store operation. It reports
// whether the operation was a lookup miss.
type OpFunc func(ctx context.Context) (miss bool)

// Middleware wraps store operations with tracing, metrics and logging.
//
// Contract:
//   - Concurrency: Do is safe for concurrent use when the wrapped
//     operation is.
//   - Ownership: operation inputs and outputs pass through unmodified.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewMiddleware creates a new Middleware with the given telemetry
// components.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger) *Middleware {
	return &Middleware{
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// MiddlewareFromObserver creates a Middleware from an Observer.
func MiddlewareFromObserver(obs Observer) (*Middleware, error) {
	if obs == nil {
		return nil, ErrNilObserver
	}

	metrics, err := NewMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}

	return NewMiddleware(NewTracer(obs.Tracer()), metrics, obs.Logger()), nil
}

// Do runs op inside a span, records metrics, and emits a debug log line.
func (m *Middleware) Do(ctx context.Context, meta StoreMeta, op OpFunc) {
	ctx, span := m.tracer.StartSpan(ctx, meta)
	start := time.Now()

	miss := op(ctx)

	duration := time.Since(start)
	m.tracer.EndSpan(span, nil)
	m.metrics.RecordOp(ctx, meta, duration, miss)

	fields := []Field{
		{Key: "duration_us", Value: duration.Microseconds()},
	}
	if miss {
		fields = append(fields, Field{Key: "miss", Value: true})
	}
	m.logger.WithStore(meta).Debug(ctx, "cache op", fields...)
}
