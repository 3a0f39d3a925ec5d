package session

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracerName is looked up per span so a provider installed later is honoured.
const tracerName = "pathstep.session"

// startSpan opens a span for a session operation.
func startSpan(ctx context.Context, op string, s *Session, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	attrs = append(attrs, attribute.String("session.id", s.id.String()))

	return otel.Tracer(tracerName).Start(ctx, "Session."+op, trace.WithAttributes(attrs...))
}

// endSpan records the snapshot outcome and err, then ends span.
func endSpan(span trace.Span, snap *Snapshot, err error) {
	if snap != nil {
		span.SetAttributes(
			attribute.Int("session.steps", snap.Steps),
			attribute.Bool("session.done", snap.Done),
		)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
