// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for pathstep/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep label and weight constants out of test bodies.

package core_test

import (
	"testing"

	"github.com/katalvlaran/pathstep/core"
	"github.com/stretchr/testify/require"
)

// Common vertex labels used across core tests.
const (
	LabelA = "A"
	LabelB = "B"
	LabelC = "C"
	LabelD = "D"

	LabelCity = "Harbor"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight0 = 0
	Weight1 = 1
	Weight2 = 2
	Weight4 = 4
	Weight5 = 5
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentVertices = 20
	NReaders            = 50
)

// newDiamond builds the four-vertex fixture A–B(1), A–C(4), B–C(2), B–D(5)
// and returns the graph together with its vertices in label order.
func newDiamond(t *testing.T, opts ...core.GraphOption) (*core.Graph, []*core.Vertex) {
	t.Helper()

	g := core.NewGraph(opts...)
	vs := make([]*core.Vertex, 0, 4)
	for range 4 {
		v, err := g.NewVertex("")
		require.NoError(t, err)
		vs = append(vs, v)
	}
	a, b, c, d := vs[0], vs[1], vs[2], vs[3]
	require.NoError(t, g.Connect(a, b, Weight1))
	require.NoError(t, g.Connect(a, c, Weight4))
	require.NoError(t, g.Connect(b, c, Weight2))
	require.NoError(t, g.Connect(b, d, Weight5))

	return g, vs
}

// labels maps vertices to their labels, preserving order.
func labels(vs []*core.Vertex) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Label()
	}

	return out
}

// neighborLabels maps adjacency entries to neighbor labels, preserving order.
func neighborLabels(ns []core.Neighbor) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = n.Vertex.Label()
	}

	return out
}
