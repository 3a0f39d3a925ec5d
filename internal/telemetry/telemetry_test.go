package telemetry_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/katalvlaran/pathstep/internal/telemetry"
)

func TestInit_ExportsSpansOnShutdown(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer

	shutdown, err := telemetry.Init(ctx, &buf, "test")
	require.NoError(t, err)

	_, span := otel.Tracer("telemetry_test").Start(ctx, "Session.Advance")
	span.End()

	require.NoError(t, shutdown(ctx))
	assert.Contains(t, buf.String(), "Session.Advance")
	assert.Contains(t, buf.String(), telemetry.ServiceName)
}

func TestInit_NilWriter(t *testing.T) {
	_, err := telemetry.Init(context.Background(), nil, "test")
	assert.ErrorIs(t, err, telemetry.ErrNilWriter)
}
