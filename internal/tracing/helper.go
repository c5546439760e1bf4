package tracing

import (
	"context"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/rampp2p/escrow"

// StartTracing opens a span when tracing is enabled. The returned span is nil otherwise.
func StartTracing(ctx context.Context, spanName string, tracingEnabled bool, attributes ...attribute.KeyValue) (context.Context, trace.Span) {
	if !tracingEnabled {
		return ctx, nil
	}

	tracer := otel.Tracer(tracerName)
	if len(attributes) > 0 {
		return tracer.Start(ctx, spanName, trace.WithAttributes(attributes...))
	}

	return tracer.Start(ctx, spanName)
}

func EndTracing(span trace.Span, err error) {
	if span == nil {
		return
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// CallerAttributes appends the file of the caller's caller, which is the component that enabled tracing.
func CallerAttributes(attr ...attribute.KeyValue) []attribute.KeyValue {
	attributes := append([]attribute.KeyValue{}, attr...)
	_, file, _, ok := runtime.Caller(2)
	if ok {
		attributes = append(attributes, attribute.String("file", file))
	}

	return attributes
}
