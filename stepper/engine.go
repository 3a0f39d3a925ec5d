package stepper

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/katalvlaran/pathstep/core"
)

// Engine runs Dijkstra's algorithm over one graph, one work unit at a time.
//
// The state built by Init (distances, frontier, cursor) survives between
// calls; pausing is simply not calling Advance again. An Engine is not safe
// for concurrent use: one engine belongs to one session (see package session).
type Engine struct {
	g    *core.Graph
	opts options

	initialized bool
	source      *core.Vertex
	destination *core.Vertex

	dist      map[*core.Vertex]float64
	prev      map[*core.Vertex]*core.Vertex
	frontier  frontier
	finalized []*core.Vertex

	// cursor is the most recently dequeued vertex; adj is its adjacency as
	// of the dequeue and pos the next entry to inspect.
	cursor       *core.Vertex
	adj          []core.Neighbor
	pos          int
	scanComplete bool

	units int
}

// New returns an engine bound to g. Call Init before Advance.
func New(g *core.Graph, opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Engine{g: g, opts: o, scanComplete: true}
}

// SetContext replaces the context metric recordings are attributed to,
// typically once per caller request. A nil ctx is ignored.
func (e *Engine) SetContext(ctx context.Context) {
	if ctx != nil {
		e.opts.ctx = ctx
	}
}

// Context returns the context metric recordings are attributed to.
func (e *Engine) Context() context.Context { return e.opts.ctx }

// Graph returns the graph the engine runs on.
func (e *Engine) Graph() *core.Graph { return e.g }

// Init discards any previous state and prepares a fresh run from source.
//
// Every vertex currently in the graph starts in the frontier at +Inf except
// source at 0. Vertices appended after Init are not part of the run.
//
// Errors:
//   - core.ErrUnknownVertex: source or destination is nil or not a member.
//     The previous state is left untouched.
func (e *Engine) Init(source, destination *core.Vertex) error {
	if e.g == nil || !e.g.Has(source) {
		return fmt.Errorf("stepper: init source %s: %w", source, core.ErrUnknownVertex)
	}
	if !e.g.Has(destination) {
		return fmt.Errorf("stepper: init destination %s: %w", destination, core.ErrUnknownVertex)
	}

	vertices := e.g.Vertices()
	dist := make(map[*core.Vertex]float64, len(vertices))
	for _, v := range vertices {
		dist[v] = Infinity
	}
	dist[source] = 0

	e.initialized = true
	e.source, e.destination = source, destination
	e.dist = dist
	e.prev = make(map[*core.Vertex]*core.Vertex)
	e.frontier = newFrontier(vertices, dist)
	e.finalized = e.finalized[:0]
	e.cursor, e.adj, e.pos = nil, nil, 0
	e.scanComplete = true
	e.units = 0

	recordInit(e.opts.ctx, len(vertices))
	e.opts.logger.Debug("stepper initialized",
		slog.String("source", source.Label()),
		slog.String("destination", destination.Label()),
		slog.Int("vertices", len(vertices)),
	)

	return nil
}

// Advance performs exactly n work units; it is n sequential Step calls.
// n ≤ 0 is a no-op, and units past the terminal state are idle.
func (e *Engine) Advance(n int) {
	for i := 0; i < n; i++ {
		e.Step()
	}
}

// RunToCompletion steps until IsDone and returns the number of units performed.
func (e *Engine) RunToCompletion() int {
	n := 0
	for !e.IsDone() {
		e.Step()
		n++
	}

	return n
}

// Step performs one work unit and reports it.
//
// A unit first dequeues the closest frontier vertex when the previous scan
// is complete, then inspects one adjacency entry of the cursor: it relaxes
// the edge, or, when the adjacency is exhausted, finalizes the cursor.
func (e *Engine) Step() Event {
	if e.IsDone() {
		return Event{Kind: UnitIdle}
	}

	var ev Event
	if e.scanComplete {
		ev.Dequeued = e.dequeue()
	}
	ev.Cursor = e.cursor

	if e.pos < len(e.adj) {
		n := e.adj[e.pos]
		e.pos++
		e.relax(n, &ev)
	} else {
		e.scanComplete = true
		e.finalized = append(e.finalized, e.cursor)
		ev.Kind = UnitScanComplete
		e.opts.logger.Debug("vertex finalized",
			slog.String("vertex", e.cursor.Label()),
			slog.Float64("distance", e.dist[e.cursor]),
		)
	}

	e.units++
	ev.Index = e.units
	recordUnit(e.opts.ctx, ev, e.frontier.Len())
	e.opts.onUnit(ev)

	if e.IsDone() {
		e.opts.logger.Debug("stepper converged",
			slog.Int("units", e.units),
			slog.Float64("destination_distance", e.dist[e.destination]),
		)
	}

	return ev
}

// dequeue moves the closest frontier vertex to the cursor and snapshots its adjacency.
func (e *Engine) dequeue() *core.Vertex {
	v := e.frontier.popMin()
	all, _ := e.g.Neighbors(v)

	// vertices appended after Init are not part of the run
	adj := all[:0]
	for _, n := range all {
		if _, ok := e.dist[n.Vertex]; ok {
			adj = append(adj, n)
		}
	}

	e.cursor, e.adj, e.pos = v, adj, 0
	e.scanComplete = false

	return v
}

// relax applies candidate = d[cursor] + w to neighbor n, strictly.
func (e *Engine) relax(n core.Neighbor, ev *Event) {
	candidate := e.dist[e.cursor] + n.Weight
	previous := e.dist[n.Vertex]

	ev.Neighbor = n.Vertex
	ev.Weight = n.Weight
	ev.Candidate = candidate
	ev.Previous = previous

	if candidate >= previous {
		ev.Kind = UnitKept
		return
	}

	e.dist[n.Vertex] = candidate
	e.prev[n.Vertex] = e.cursor
	e.frontier.update(n.Vertex, candidate)
	ev.Kind = UnitRelaxed
}

// IsDone reports whether the frontier is empty and no scan is pending.
// An engine that was never initialized has nothing to do and reports true.
func (e *Engine) IsDone() bool {
	return e.frontier.Len() == 0 && e.scanComplete
}

// Initialized reports whether Init has succeeded at least once.
func (e *Engine) Initialized() bool { return e.initialized }

// Distances returns a snapshot of the current estimates.
func (e *Engine) Distances() Distances {
	out := make(Distances, len(e.dist))
	for v, d := range e.dist {
		out[v] = d
	}

	return out
}

// Distance returns the current estimate for v (Infinity if unknown).
func (e *Engine) Distance(v *core.Vertex) float64 {
	if d, ok := e.dist[v]; ok {
		return d
	}

	return Infinity
}

// CurrentVertex returns the cursor: nil before the first dequeue and once
// the state is terminal. Between two scans it is the vertex just finalized.
func (e *Engine) CurrentVertex() *core.Vertex {
	if e.IsDone() {
		return nil
	}

	return e.cursor
}

// Position returns the cursor's next adjacency index and its adjacency length.
func (e *Engine) Position() (next, total int) { return e.pos, len(e.adj) }

// Frontier returns the frontier in dequeue order.
func (e *Engine) Frontier() []FrontierEntry { return e.frontier.snapshot() }

// Finalized returns finalized vertices in the order they were finalized.
func (e *Engine) Finalized() []*core.Vertex { return slices.Clone(e.finalized) }

// IsFinalized reports whether v's distance is final.
func (e *Engine) IsFinalized(v *core.Vertex) bool { return slices.Contains(e.finalized, v) }

// Source returns the source of the current run (nil before Init).
func (e *Engine) Source() *core.Vertex { return e.source }

// Destination returns the destination of the current run (nil before Init).
func (e *Engine) Destination() *core.Vertex { return e.destination }

// Units returns the number of non-idle units performed since Init.
func (e *Engine) Units() int { return e.units }

// Predecessors returns a snapshot of the predecessor of every reached vertex.
func (e *Engine) Predecessors() map[*core.Vertex]*core.Vertex {
	out := make(map[*core.Vertex]*core.Vertex, len(e.prev))
	for v, p := range e.prev {
		out[v] = p
	}

	return out
}

// Path returns the best path known so far from source to destination and
// false when the destination has not been reached yet.
func (e *Engine) Path() ([]*core.Vertex, bool) {
	if !e.initialized || math.IsInf(e.Distance(e.destination), 1) {
		return nil, false
	}

	var path []*core.Vertex
	for cur := e.destination; cur != nil; cur = e.prev[cur] {
		path = append(path, cur)
		if cur == e.source {
			break
		}
	}
	slices.Reverse(path)

	return path, true
}
