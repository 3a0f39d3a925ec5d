package stepper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathstep/core"
	"github.com/katalvlaran/pathstep/stepper"
)

// diamond builds A–B(1), A–C(4), B–C(2), B–D(5).
func diamond(t *testing.T) (*core.Graph, []*core.Vertex) {
	t.Helper()

	g := core.NewGraph()
	vs := make([]*core.Vertex, 0, 4)
	for range 4 {
		v, err := g.NewVertex("")
		require.NoError(t, err)
		vs = append(vs, v)
	}
	a, b, c, d := vs[0], vs[1], vs[2], vs[3]
	require.NoError(t, g.Connect(a, b, 1))
	require.NoError(t, g.Connect(a, c, 4))
	require.NoError(t, g.Connect(b, c, 2))
	require.NoError(t, g.Connect(b, d, 5))

	return g, vs
}

// started returns an engine initialized on g from src to dst.
func started(t *testing.T, g *core.Graph, src, dst *core.Vertex, opts ...stepper.Option) *stepper.Engine {
	t.Helper()

	e := stepper.New(g, opts...)
	require.NoError(t, e.Init(src, dst))

	return e
}

func frontierLabels(fs []stepper.FrontierEntry) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.Vertex.Label()
	}

	return out
}

func labelsOf(vs []*core.Vertex) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Label()
	}

	return out
}

func label(v *core.Vertex) string {
	if v == nil {
		return ""
	}

	return v.Label()
}
