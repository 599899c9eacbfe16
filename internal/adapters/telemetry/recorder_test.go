package telemetry_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/telemetry"
	"go.trai.ch/forge/internal/core/ports"
)

func TestRecorder_CloseRendersTape(t *testing.T) {
	var out bytes.Buffer
	rec := telemetry.NewWithOutput(&out)

	_, vtx := rec.Record(context.Background(), "build node")
	fmt.Fprintln(vtx.Stdout(), "compiling")
	vtx.Complete(nil)

	require.NoError(t, rec.Close())
	assert.Contains(t, out.String(), "build node")
}

func TestRecorder_VertexInContext(t *testing.T) {
	var out bytes.Buffer
	rec := telemetry.NewWithOutput(&out)

	ctx, vtx := rec.Record(context.Background(), "build browser")
	assert.Equal(t, vtx, ports.VertexFromContext(ctx))

	vtx.Complete(nil)
	require.NoError(t, rec.Close())
}

func TestNoOp(t *testing.T) {
	rec := telemetry.NewNoOp()

	_, vtx := rec.Record(context.Background(), "build node")
	fmt.Fprintln(vtx.Stdout(), "discarded")
	vtx.Complete(nil)

	assert.NoError(t, rec.Close())
}
