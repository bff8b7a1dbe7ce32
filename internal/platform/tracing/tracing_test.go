package tracing_test

import (
	"context"
	"testing"

	"github.com/phrazzld/excuse-api/internal/config"
	"github.com/phrazzld/excuse-api/internal/platform/tracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
)

func TestInit_Disabled(t *testing.T) {
	shutdown, err := tracing.Init(context.Background(), config.TracingConfig{Enabled: false})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestNewProvider_TagsServiceName(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := tracing.NewProvider("excuse-api-test", sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := tp.Tracer("test").Start(context.Background(), "generate")
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "generate", spans[0].Name())

	var found bool
	for _, kv := range spans[0].Resource().Attributes() {
		if kv.Key == semconv.ServiceNameKey {
			found = true
			assert.Equal(t, "excuse-api-test", kv.Value.AsString())
		}
	}
	assert.True(t, found, "service.name resource attribute")
}
