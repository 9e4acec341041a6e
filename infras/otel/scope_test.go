package otel_test

import (
	"appointly/infras/otel"
	"appointly/shared/failure"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func record(t *testing.T, fn func(scope otel.Scope)) trace.ReadOnlySpan {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "span")
	scope := otel.NewScope(span)

	fn(scope)
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	return spans[0]
}

func TestScope_TraceError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status codes.Code
	}{
		{name: "slot taken is not a span failure", err: failure.Conflict("time slot is already booked"), status: codes.Unset},
		{name: "outside working hours", err: failure.Unprocessable("outside working hours"), status: codes.Unset},
		{name: "infrastructure error", err: errors.New("connection reset"), status: codes.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span := record(t, func(scope otel.Scope) { scope.TraceError(tt.err) })

			assert.Equal(t, tt.status, span.Status().Code)
			assert.Len(t, span.Events(), 1)
		})
	}
}

func TestScope_TraceIfError(t *testing.T) {
	span := record(t, func(scope otel.Scope) { scope.TraceIfError(nil) })

	assert.Empty(t, span.Events())
	assert.Equal(t, codes.Unset, span.Status().Code)
}

func TestScope_TraceIfErrorSeesReturnedError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tracer := otel.WithProvider(trace.NewTracerProvider(trace.WithSpanProcessor(recorder)))

	dial := func() (err error) {
		_, scope := tracer.NewScope(context.Background(), "test", "test.dial")
		defer scope.End()
		defer func() { scope.TraceIfError(err) }()

		return errors.New("connection reset")
	}

	require.Error(t, dial())

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Len(t, spans[0].Events(), 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
}

func TestScope_SetAttributes(t *testing.T) {
	span := record(t, func(scope otel.Scope) {
		scope.SetAttributes(map[string]any{
			"slots":    12,
			"public":   true,
			"owner":    "owner-1",
			"duration": int64(45),
			"ratio":    0.5,
		})
	})

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range span.Attributes() {
		attrs[kv.Key] = kv.Value
	}

	assert.Equal(t, int64(12), attrs["slots"].AsInt64())
	assert.True(t, attrs["public"].AsBool())
	assert.Equal(t, "owner-1", attrs["owner"].AsString())
	assert.Equal(t, int64(45), attrs["duration"].AsInt64())
	assert.InDelta(t, 0.5, attrs["ratio"].AsFloat64(), 0.0001)
}
