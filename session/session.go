package session

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/pathstep/core"
	"github.com/katalvlaran/pathstep/dijkstra"
	"github.com/katalvlaran/pathstep/stepper"
)

// Session owns one graph, its name pool and one stepping engine.
// Every method takes the session lock, so a Session may be shared by
// the goroutines of one visualization.
type Session struct {
	id      uuid.UUID
	created time.Time
	logger  *slog.Logger
	onUnit  func(stepper.Event)

	mu       sync.Mutex
	g        *core.Graph
	engine   *stepper.Engine
	selected bool
	last     *stepper.Event
	pending  []stepper.Event
}

// New creates a session with a fresh ID and an empty graph (or the graph
// given with WithGraph).
func New(opts ...Option) *Session {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := o.graph
	if g == nil {
		g = core.NewGraph(o.graphOpts...)
	}

	s := &Session{
		id:      uuid.New(),
		created: time.Now(),
		onUnit:  o.onUnit,
		g:       g,
	}
	s.logger = o.logger.With(slog.String("session", s.id.String()))
	s.engine = s.newEngine()

	return s
}

// newEngine returns an engine whose units are queued in s.pending; the
// queue is handed to the OnUnit hook once the session lock is released.
func (s *Session) newEngine() *stepper.Engine {
	return stepper.New(s.g,
		stepper.WithLogger(s.logger),
		stepper.WithOnUnit(func(ev stepper.Event) {
			s.last = &ev
			if s.onUnit != nil {
				s.pending = append(s.pending, ev)
			}
		}),
	)
}

// bind attributes the engine's metrics to ctx for one call; the returned
// func restores the background context. Callers hold s.mu.
func (s *Session) bind(ctx context.Context) func() {
	s.engine.SetContext(ctx)
	return func() { s.engine.SetContext(context.Background()) }
}

// deliver runs the OnUnit hook for the units queued by one call. Callers
// must not hold s.mu, so the hook may call back into the session.
func (s *Session) deliver(events []stepper.Event) {
	if s.onUnit == nil {
		return
	}
	for _, ev := range events {
		s.onUnit(ev)
	}
}

// takePending empties the hook queue. Callers hold s.mu.
func (s *Session) takePending() []stepper.Event {
	events := s.pending
	s.pending = nil

	return events
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Created returns the creation time.
func (s *Session) Created() time.Time { return s.created }

// AddVertex appends a vertex and returns its label. An empty name takes the
// next free pool label.
func (s *Session) AddVertex(name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := s.g.NewVertex(name)
	if err != nil {
		return "", fmt.Errorf("session: add vertex %q: %w", name, err)
	}

	return v.Label(), nil
}

// Connect links the vertices labelled a and b. Unknown labels follow the
// graph's connect policy: a silent no-op unless the graph is strict.
func (s *Session) Connect(a, b string, weight float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.g.ConnectLabels(a, b, weight); err != nil {
		return fmt.Errorf("session: %w", err)
	}

	return nil
}

// Labels returns the vertex labels in insertion order.
func (s *Session) Labels() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	vs := s.g.Vertices()
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Label()
	}

	return out
}

// Stats returns the graph summary.
func (s *Session) Stats() *core.GraphStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g.Stats()
}

// Select chooses the endpoints and starts a fresh run. On error the
// previous selection and run are kept.
func (s *Session) Select(ctx context.Context, source, destination string) (err error) {
	ctx, span := startSpan(ctx, "Select", s,
		attribute.String("session.source", source),
		attribute.String("session.destination", destination),
	)
	defer func() { endSpan(span, nil, err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	src, ok := s.g.Lookup(source)
	if !ok {
		return fmt.Errorf("session: source %q: %w", source, core.ErrUnknownVertex)
	}
	dst, ok := s.g.Lookup(destination)
	if !ok {
		return fmt.Errorf("session: destination %q: %w", destination, core.ErrUnknownVertex)
	}

	engine := s.newEngine()
	engine.SetContext(ctx)
	if err = engine.Init(src, dst); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	engine.SetContext(context.Background())
	s.engine, s.selected, s.last = engine, true, nil

	s.logger.Info("endpoints selected",
		slog.String("source", source),
		slog.String("destination", destination),
	)

	return nil
}

// Advance performs n work units and returns the resulting snapshot.
// n ≤ 0 returns the current snapshot unchanged.
//
// The OnUnit hook sees the units of this call after the session lock is
// released, so it may read Snapshot, which then reflects the whole call.
func (s *Session) Advance(ctx context.Context, n int) (snap Snapshot, err error) {
	ctx, span := startSpan(ctx, "Advance", s, attribute.Int("session.units", n))
	defer func() { endSpan(span, &snap, err) }()

	snap, events, err := s.advance(ctx, func(e *stepper.Engine) { e.Advance(n) })
	s.deliver(events)

	return snap, err
}

// RunToCompletion advances until the run is terminal. The OnUnit hook is
// called as for Advance.
func (s *Session) RunToCompletion(ctx context.Context) (snap Snapshot, err error) {
	ctx, span := startSpan(ctx, "RunToCompletion", s)
	defer func() { endSpan(span, &snap, err) }()

	snap, events, err := s.advance(ctx, func(e *stepper.Engine) {
		n := e.RunToCompletion()
		s.logger.Debug("run completed", slog.Int("units", n))
	})
	s.deliver(events)

	return snap, err
}

// advance runs step under the lock and returns the snapshot and the units
// to hand to the hook.
func (s *Session) advance(ctx context.Context, step func(*stepper.Engine)) (Snapshot, []stepper.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.selected {
		return s.snapshot(), nil, ErrNotSelected
	}
	defer s.bind(ctx)()
	step(s.engine)

	return s.snapshot(), s.takePending(), nil
}

// Reset restarts the run over the same endpoints: every distance goes
// back to +Inf except the source, and the step count to zero.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.selected {
		return ErrNotSelected
	}
	if err := s.engine.Init(s.engine.Source(), s.engine.Destination()); err != nil {
		return fmt.Errorf("session: reset: %w", err)
	}
	s.last = nil
	s.logger.Debug("run reset")

	return nil
}

// Snapshot returns the current state as plain data.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot()
}

func (s *Session) snapshot() Snapshot {
	e := s.engine
	snap := Snapshot{
		ID:                  s.id,
		Selected:            s.selected,
		Steps:               e.Units(),
		Done:                s.selected && e.IsDone(),
		DestinationDistance: stepper.Infinity,
	}
	if s.last != nil {
		ev := *s.last
		snap.Last = &ev
	}

	dist := e.Distances()
	cursor := e.CurrentVertex()
	for _, v := range s.g.Vertices() {
		vs := VertexState{Label: v.Label(), Distance: stepper.Infinity, State: StateIdle}
		if d, ok := dist[v]; ok {
			vs.Distance = d
			switch {
			case v == cursor:
				vs.State = StateCurrent
			case e.IsFinalized(v):
				vs.State = StateFinalized
			default:
				vs.State = StateFrontier
			}
		}
		snap.Vertices = append(snap.Vertices, vs)
	}

	for _, f := range e.Frontier() {
		snap.Frontier = append(snap.Frontier, f.Vertex.Label())
	}
	if !s.selected {
		return snap
	}

	snap.Source = e.Source().Label()
	snap.Destination = e.Destination().Label()
	if cursor != nil {
		snap.Current = cursor.Label()
	}
	snap.DestinationDistance = e.Distance(e.Destination())
	if path, ok := e.Path(); ok {
		for _, v := range path {
			snap.Path = append(snap.Path, v.Label())
		}
	}

	return snap
}

// ShortestPath runs the eager reference between the selected endpoints and
// returns the distance and one shortest path. An unreachable destination
// yields +Inf and a nil path.
func (s *Session) ShortestPath() (float64, []string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.selected {
		return 0, nil, ErrNotSelected
	}
	src, dst := s.engine.Source(), s.engine.Destination()
	res, err := dijkstra.Run(s.g, src, dijkstra.WithReturnPath())
	if err != nil {
		return 0, nil, fmt.Errorf("session: %w", err)
	}

	d := res.Distance(dst)
	if math.IsInf(d, 1) {
		return d, nil, nil
	}
	path, err := res.PathTo(dst)
	if err != nil {
		return 0, nil, fmt.Errorf("session: %w", err)
	}
	labels := make([]string, len(path))
	for i, v := range path {
		labels[i] = v.Label()
	}

	return d, labels, nil
}
