// Package observe provides structured logging, metrics and tracing for
// cache store operations.
//
// It wires OpenTelemetry tracing and metrics behind small interfaces and
// ships a JSON structured logger, so embedders can watch hit rates and
// operation latency without the store itself knowing about telemetry.
package observe
