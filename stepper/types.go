package stepper

import (
	"context"
	"log/slog"
	"math"

	"github.com/katalvlaran/pathstep/core"
)

// Infinity is the distance of a vertex no relaxation has reached yet.
var Infinity = math.Inf(1)

// Unit describes what a single work unit did.
type Unit int

const (
	// UnitIdle means nothing was left to do; the state is terminal (or was never initialized).
	UnitIdle Unit = iota

	// UnitRelaxed means an edge was inspected and improved the neighbor's distance.
	UnitRelaxed

	// UnitKept means an edge was inspected and the neighbor's distance stayed.
	UnitKept

	// UnitScanComplete means the cursor's adjacency was exhausted and the cursor finalized.
	UnitScanComplete
)

// String returns the lower-case unit name used in logs and metric attributes.
func (u Unit) String() string {
	switch u {
	case UnitIdle:
		return "idle"
	case UnitRelaxed:
		return "relaxed"
	case UnitKept:
		return "kept"
	case UnitScanComplete:
		return "scan_complete"
	default:
		return "unknown"
	}
}

// Event reports one work unit. Dequeued is non-nil when the unit began by
// taking a new cursor off the frontier.
type Event struct {
	// Index is the 1-based number of the unit among non-idle units; 0 for idle units.
	Index int

	Kind     Unit
	Dequeued *core.Vertex
	Cursor   *core.Vertex

	// Neighbor, Weight, Candidate and Previous are set for UnitRelaxed and UnitKept.
	Neighbor  *core.Vertex
	Weight    float64
	Candidate float64
	Previous  float64
}

// Distances is a snapshot of the distance estimates, one entry per vertex
// the engine was initialized over.
type Distances map[*core.Vertex]float64

// Of returns the estimate for v, or Infinity when v is not in the snapshot.
func (d Distances) Of(v *core.Vertex) float64 {
	if x, ok := d[v]; ok {
		return x
	}

	return Infinity
}

// Labels re-keys the snapshot by vertex label.
func (d Distances) Labels() map[string]float64 {
	out := make(map[string]float64, len(d))
	for v, x := range d {
		out[v.Label()] = x
	}

	return out
}

// FrontierEntry is one frontier position: a vertex and its tentative distance.
type FrontierEntry struct {
	Vertex   *core.Vertex
	Distance float64
}

// Option configures an Engine via functional arguments.
type Option func(*options)

type options struct {
	ctx    context.Context
	logger *slog.Logger
	onUnit func(Event)
}

func defaultOptions() options {
	return options{
		ctx:    context.Background(),
		logger: slog.Default(),
		onUnit: func(Event) {},
	}
}

// WithContext sets the context metric recordings are attributed to.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithLogger sets the structured logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithOnUnit registers a callback run after every non-idle work unit.
func WithOnUnit(fn func(Event)) Option {
	return func(o *options) {
		if fn != nil {
			o.onUnit = fn
		}
	}
}
