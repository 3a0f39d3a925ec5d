package stepper_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathstep/core"
	"github.com/katalvlaran/pathstep/stepper"
)

func TestEngine_DiamondConverges(t *testing.T) {
	g, vs := diamond(t)
	e := started(t, g, vs[0], vs[3])

	units := e.RunToCompletion()

	assert.Equal(t, 12, units)
	assert.True(t, e.IsDone())
	assert.Nil(t, e.CurrentVertex())
	assert.Empty(t, e.Frontier())
	assert.Equal(t, map[string]float64{"A": 0, "B": 1, "C": 3, "D": 6}, e.Distances().Labels())
	assert.Equal(t, []string{"A", "B", "C", "D"}, labelsOf(e.Finalized()))

	path, ok := e.Path()
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B", "D"}, labelsOf(path))
}

func TestEngine_UnitSequence(t *testing.T) {
	g, vs := diamond(t)
	e := started(t, g, vs[0], vs[3])

	type unit struct {
		kind     stepper.Unit
		dequeued string
		cursor   string
		neighbor string
	}
	want := []unit{
		{stepper.UnitRelaxed, "A", "A", "B"},
		{stepper.UnitRelaxed, "", "A", "C"},
		{stepper.UnitScanComplete, "", "A", ""},
		{stepper.UnitKept, "B", "B", "A"},
		{stepper.UnitRelaxed, "", "B", "C"},
		{stepper.UnitRelaxed, "", "B", "D"},
		{stepper.UnitScanComplete, "", "B", ""},
		{stepper.UnitKept, "C", "C", "A"},
		{stepper.UnitKept, "", "C", "B"},
		{stepper.UnitScanComplete, "", "C", ""},
		{stepper.UnitKept, "D", "D", "B"},
		{stepper.UnitScanComplete, "", "D", ""},
	}

	for i, w := range want {
		ev := e.Step()
		got := unit{ev.Kind, label(ev.Dequeued), label(ev.Cursor), label(ev.Neighbor)}
		assert.Equal(t, w, got, "unit %d", i+1)
		assert.Equal(t, i+1, ev.Index)
	}

	idle := e.Step()
	assert.Equal(t, stepper.UnitIdle, idle.Kind)
	assert.Zero(t, idle.Index)
	assert.Equal(t, 12, e.Units())
}

func TestEngine_FirstUnitDequeuesSourceAndRelaxes(t *testing.T) {
	g, vs := diamond(t)
	e := started(t, g, vs[0], vs[3])

	assert.Nil(t, e.CurrentVertex())
	assert.Equal(t, []string{"A", "B", "C", "D"}, frontierLabels(e.Frontier()))

	ev := e.Step()
	assert.Equal(t, vs[0], ev.Dequeued)
	assert.Equal(t, 1.0, ev.Candidate)
	assert.True(t, math.IsInf(ev.Previous, 1))
	assert.Equal(t, vs[0], e.CurrentVertex())
	assert.Equal(t, []string{"B", "C", "D"}, frontierLabels(e.Frontier()))

	next, total := e.Position()
	assert.Equal(t, 1, next)
	assert.Equal(t, 2, total)
}

func TestEngine_StableTieBreak(t *testing.T) {
	// A—C(2) is inspected before A—B(2): on the tie, C keeps its earlier place.
	g := core.NewGraph()
	a, b, c := g.MustVertex(""), g.MustVertex(""), g.MustVertex("")
	require.NoError(t, g.Connect(a, c, 2))
	require.NoError(t, g.Connect(a, b, 2))
	e := started(t, g, a, b)

	e.Advance(2)
	assert.Equal(t, []string{"C", "B"}, frontierLabels(e.Frontier()))
}

func TestEngine_UnreachableStaysInfinite(t *testing.T) {
	g, vs := diamond(t)
	island := g.MustVertex("")
	e := started(t, g, vs[0], island)

	assert.Equal(t, 13, e.RunToCompletion())
	assert.True(t, math.IsInf(e.Distance(island), 1))
	assert.True(t, e.IsFinalized(island))

	_, ok := e.Path()
	assert.False(t, ok)
}

func TestEngine_IsolatedVertexTakesOneUnit(t *testing.T) {
	g := core.NewGraph()
	a := g.MustVertex("")
	e := started(t, g, a, a)

	ev := e.Step()
	assert.Equal(t, stepper.UnitScanComplete, ev.Kind)
	assert.Equal(t, a, ev.Dequeued)
	assert.True(t, e.IsDone())
	assert.Equal(t, 0.0, e.Distance(a))
}

func TestEngine_AdvanceZeroAndNegativeAreNoOps(t *testing.T) {
	g, vs := diamond(t)
	e := started(t, g, vs[0], vs[3])

	e.Advance(0)
	e.Advance(-3)
	assert.Zero(t, e.Units())
	assert.Len(t, e.Frontier(), 4)
}

func TestEngine_IdempotentPastTerminal(t *testing.T) {
	g, vs := diamond(t)
	e := started(t, g, vs[0], vs[3])
	e.RunToCompletion()

	before := e.Distances()
	e.Advance(50)
	assert.Equal(t, before, e.Distances())
	assert.Equal(t, 12, e.Units())
	assert.Zero(t, e.RunToCompletion())
}

func TestEngine_BatchEquivalence(t *testing.T) {
	g, vs := diamond(t)

	for split := 0; split <= 14; split++ {
		one := started(t, g, vs[0], vs[3])
		two := started(t, g, vs[0], vs[3])

		one.Advance(split)
		one.Advance(14 - split)
		two.Advance(14)

		assert.Equal(t, two.Distances(), one.Distances(), "split %d", split)
		assert.Equal(t, two.Frontier(), one.Frontier(), "split %d", split)
		assert.Equal(t, two.CurrentVertex(), one.CurrentVertex(), "split %d", split)
		assert.Equal(t, two.Units(), one.Units(), "split %d", split)
	}
}

func TestEngine_MonotoneAndSourceFixed(t *testing.T) {
	g, vs := diamond(t)
	e := started(t, g, vs[0], vs[3])

	prev := e.Distances()
	for !e.IsDone() {
		e.Step()
		cur := e.Distances()
		for v, d := range cur {
			assert.LessOrEqual(t, d, prev[v], "vertex %s", v)
		}
		assert.Zero(t, cur.Of(vs[0]))
		prev = cur
	}
}

func TestEngine_InitErrorsKeepState(t *testing.T) {
	g, vs := diamond(t)
	foreign := core.NewGraph().MustVertex("")
	e := started(t, g, vs[0], vs[3])
	e.Advance(5)

	dist, frontier, units := e.Distances(), e.Frontier(), e.Units()

	err := e.Init(foreign, vs[3])
	assert.ErrorIs(t, err, core.ErrUnknownVertex)
	err = e.Init(vs[0], nil)
	assert.ErrorIs(t, err, core.ErrUnknownVertex)

	assert.Equal(t, dist, e.Distances())
	assert.Equal(t, frontier, e.Frontier())
	assert.Equal(t, units, e.Units())
	assert.Equal(t, vs[0], e.Source())
}

func TestEngine_ReinitDiscardsRun(t *testing.T) {
	g, vs := diamond(t)
	e := started(t, g, vs[0], vs[3])
	e.RunToCompletion()

	require.NoError(t, e.Init(vs[3], vs[0]))
	assert.Zero(t, e.Units())
	assert.Empty(t, e.Finalized())
	assert.Equal(t, vs[3], e.Source())
	assert.False(t, e.IsDone())

	e.RunToCompletion()
	assert.Equal(t, map[string]float64{"A": 6, "B": 5, "C": 7, "D": 0}, e.Distances().Labels())
}

func TestEngine_UninitializedIsDone(t *testing.T) {
	g, _ := diamond(t)
	e := stepper.New(g)

	assert.True(t, e.IsDone())
	assert.False(t, e.Initialized())
	assert.Equal(t, stepper.UnitIdle, e.Step().Kind)
	assert.Nil(t, e.CurrentVertex())
	assert.Empty(t, e.Distances())
}

func TestEngine_VerticesAppendedAfterInitAreIgnored(t *testing.T) {
	g, vs := diamond(t)
	e := started(t, g, vs[0], vs[3])

	late := g.MustVertex("")
	require.NoError(t, g.Connect(vs[1], late, 1))

	e.RunToCompletion()
	_, tracked := e.Distances()[late]
	assert.False(t, tracked)
	assert.Equal(t, 6.0, e.Distance(vs[3]))
}

func TestEngine_OnUnitHook(t *testing.T) {
	g, vs := diamond(t)
	var kinds []stepper.Unit
	e := started(t, g, vs[0], vs[3], stepper.WithOnUnit(func(ev stepper.Event) {
		kinds = append(kinds, ev.Kind)
	}), stepper.WithOnUnit(nil))

	n := e.RunToCompletion()
	e.Advance(3)

	require.Len(t, kinds, n)
	assert.Equal(t, stepper.UnitScanComplete, kinds[len(kinds)-1])
}

func TestEngine_SetContext(t *testing.T) {
	type key struct{}
	g, _ := diamond(t)
	assert.NotNil(t, stepper.New(g).Context())

	e := stepper.New(g, stepper.WithContext(context.WithValue(context.Background(), key{}, 1)))
	assert.Equal(t, 1, e.Context().Value(key{}))

	e.SetContext(context.WithValue(context.Background(), key{}, 2))
	assert.Equal(t, 2, e.Context().Value(key{}))

	var none context.Context
	e.SetContext(none)
	assert.Equal(t, 2, e.Context().Value(key{}))
}

func TestUnit_String(t *testing.T) {
	assert.Equal(t, "idle", stepper.UnitIdle.String())
	assert.Equal(t, "relaxed", stepper.UnitRelaxed.String())
	assert.Equal(t, "kept", stepper.UnitKept.String())
	assert.Equal(t, "scan_complete", stepper.UnitScanComplete.String())
	assert.Equal(t, "unknown", stepper.Unit(42).String())
}
