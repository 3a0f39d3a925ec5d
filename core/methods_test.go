// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in ordering guarantees (vertex insertion order, adjacency insertion order).
//   - Validate membership, weight, loop and duplicate-edge rules.
//   - Pin both Connect policies for non-member endpoints (lenient default, strict option).

package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pathstep/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_AppendKeepsInsertionOrder(t *testing.T) {
	g := core.NewGraph()
	for _, name := range []string{LabelCity, "", LabelD, ""} {
		_, err := g.NewVertex(name)
		require.NoError(t, err)
	}

	// auto labels come from the pool in order; explicit ones stay where appended
	assert.Equal(t, []string{LabelCity, LabelA, LabelD, LabelB}, labels(g.Vertices()))
	assert.Equal(t, 4, g.Len())

	v, ok := g.Lookup(LabelD)
	require.True(t, ok)
	assert.Equal(t, 2, g.IndexOf(v))
}

func TestGraph_AppendRejectsDuplicates(t *testing.T) {
	g := core.NewGraph()

	v, err := core.NewVertex(nil, LabelA)
	require.NoError(t, err)
	require.NoError(t, g.Append(v))

	// same identity
	assert.ErrorIs(t, g.Append(v), core.ErrDuplicateVertex)

	// different identity, same label
	twin, err := core.NewVertex(nil, LabelA)
	require.NoError(t, err)
	assert.ErrorIs(t, g.Append(twin), core.ErrDuplicateVertex)

	assert.ErrorIs(t, g.Append(nil), core.ErrNilVertex)
	assert.Equal(t, 1, g.Len())
}

func TestGraph_AppendRetiresExplicitLabelFromPool(t *testing.T) {
	g := core.NewGraph()

	// a vertex built without the pool still retires its label on Append
	v, err := core.NewVertex(nil, LabelA)
	require.NoError(t, err)
	require.NoError(t, g.Append(v))

	next, err := g.NewVertex("")
	require.NoError(t, err)
	assert.Equal(t, LabelB, next.Label())
}

func TestGraph_ConnectIsUndirectedAndOrdered(t *testing.T) {
	g, vs := newDiamond(t)
	a, b, c, d := vs[0], vs[1], vs[2], vs[3]

	assert.Equal(t, []string{LabelB, LabelC}, neighborLabels(a.Neighbors()))
	assert.Equal(t, []string{LabelA, LabelC, LabelD}, neighborLabels(b.Neighbors()))
	assert.Equal(t, []string{LabelA, LabelB}, neighborLabels(c.Neighbors()))
	assert.Equal(t, []string{LabelB}, neighborLabels(d.Neighbors()))

	w, ok := c.WeightTo(b)
	require.True(t, ok)
	assert.Equal(t, float64(Weight2), w)

	_, ok = a.WeightTo(d)
	assert.False(t, ok)

	assert.Equal(t, 4, g.EdgeCount())
	edges := g.Edges()
	require.Len(t, edges, 4)
	assert.Same(t, b, edges[3].A)
	assert.Same(t, d, edges[3].B)
}

func TestGraph_NeighborsIsACopy(t *testing.T) {
	g, vs := newDiamond(t)
	a := vs[0]

	ns := a.Neighbors()
	ns[0].Weight = 100

	fresh, err := g.Neighbors(a)
	require.NoError(t, err)
	assert.Equal(t, float64(Weight1), fresh[0].Weight)
}

func TestGraph_ConnectRejectsInvalidWeight(t *testing.T) {
	g, vs := newDiamond(t)
	a, d := vs[0], vs[3]

	assert.ErrorIs(t, g.Connect(a, d, -1), core.ErrInvalidWeight)
	assert.ErrorIs(t, g.Connect(a, d, math.NaN()), core.ErrInvalidWeight)
	assert.Equal(t, 4, g.EdgeCount())

	// zero is a valid weight
	require.NoError(t, g.Connect(a, d, Weight0))
	assert.Equal(t, 5, g.EdgeCount())
}

func TestGraph_ConnectRejectsLoopsAndParallelEdges(t *testing.T) {
	g, vs := newDiamond(t)
	a, b := vs[0], vs[1]

	assert.ErrorIs(t, g.Connect(a, a, Weight1), core.ErrLoopNotAllowed)
	assert.ErrorIs(t, g.Connect(a, b, Weight5), core.ErrDuplicateEdge)
	assert.ErrorIs(t, g.Connect(b, a, Weight5), core.ErrDuplicateEdge)
	assert.Equal(t, 4, g.EdgeCount())
}

func TestGraph_ConnectNonMemberIsSilentNoOp(t *testing.T) {
	g, vs := newDiamond(t)
	a := vs[0]

	stranger, err := core.NewVertex(nil, LabelCity)
	require.NoError(t, err)

	require.NoError(t, g.Connect(a, stranger, Weight1))
	require.NoError(t, g.Connect(nil, a, Weight1))
	require.NoError(t, g.ConnectLabels(LabelA, "missing", Weight1))

	assert.Equal(t, 4, g.EdgeCount())
	assert.Len(t, a.Neighbors(), 2)
	assert.Empty(t, stranger.Neighbors())
}

func TestGraph_StrictConnectRejectsNonMember(t *testing.T) {
	g, vs := newDiamond(t, core.WithStrictConnect())
	a := vs[0]

	stranger, err := core.NewVertex(nil, LabelCity)
	require.NoError(t, err)

	assert.True(t, g.Strict())
	assert.ErrorIs(t, g.Connect(a, stranger, Weight1), core.ErrUnknownVertex)
	assert.ErrorIs(t, g.ConnectLabels(LabelA, "missing", Weight1), core.ErrUnknownVertex)
	assert.Equal(t, 4, g.EdgeCount())

	// weight validation still comes first
	assert.ErrorIs(t, g.Connect(a, stranger, -2), core.ErrInvalidWeight)
}

func TestGraph_NeighborsOfNonMember(t *testing.T) {
	g := core.NewGraph()
	stranger, err := core.NewVertex(nil, LabelCity)
	require.NoError(t, err)

	_, err = g.Neighbors(stranger)
	assert.ErrorIs(t, err, core.ErrUnknownVertex)
	assert.False(t, g.Has(stranger))
	assert.False(t, g.Has(nil))
	assert.Equal(t, -1, g.IndexOf(stranger))
}

func TestGraph_Stats(t *testing.T) {
	g, _ := newDiamond(t)
	_, err := g.NewVertex("")
	require.NoError(t, err)

	s := g.Stats()
	assert.Equal(t, 5, s.VertexCount)
	assert.Equal(t, 4, s.EdgeCount)
	assert.Equal(t, float64(12), s.TotalWeight)
	assert.Equal(t, 1, s.Isolated)
	assert.Equal(t, 26-5, s.FreeLabels)
	assert.False(t, s.StrictConnect)
}

func TestVertex_StringOnNil(t *testing.T) {
	var v *core.Vertex
	assert.Equal(t, "<nil>", v.String())
}
