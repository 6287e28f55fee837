// Package tracing wires OpenTelemetry spans into the HTTP surface. Incoming
// W3C trace context is honored and the trace ID is echoed back to clients.
package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("newsdesk")

// GetTracer returns the service tracer for creating spans.
func GetTracer() trace.Tracer {
	return tracer
}
