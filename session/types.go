package session

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/pathstep/core"
	"github.com/katalvlaran/pathstep/stepper"
)

// Sentinel errors returned by Session and Registry.
var (
	// ErrNotSelected indicates a stepping call before Select chose the endpoints.
	ErrNotSelected = errors.New("session: source and destination not selected")

	// ErrNotFound indicates an unknown session ID.
	ErrNotFound = errors.New("session: not found")
)

// State is the role a vertex plays in the current run.
type State string

const (
	// StateIdle marks a vertex outside any run: nothing selected, or appended after Select.
	StateIdle State = "idle"

	// StateFrontier marks a vertex whose distance is still tentative.
	StateFrontier State = "frontier"

	// StateCurrent marks the cursor vertex.
	StateCurrent State = "current"

	// StateFinalized marks a vertex whose distance is final.
	StateFinalized State = "finalized"
)

// VertexState is one vertex as a visualization would draw it.
type VertexState struct {
	Label    string
	Distance float64
	State    State
}

// Snapshot is a plain-data copy of a session after some number of units.
// It holds no references into the session and is safe to keep or send.
type Snapshot struct {
	ID          uuid.UUID
	Selected    bool
	Source      string
	Destination string

	// Steps counts the non-idle work units since Select or Reset.
	Steps   int
	Current string
	Done    bool

	// Vertices follows graph insertion order.
	Vertices []VertexState

	// Frontier lists labels in dequeue order.
	Frontier []string

	DestinationDistance float64
	Path                []string

	// Last is the most recent non-idle unit, if any.
	Last *stepper.Event
}

// Distance returns the distance shown for label, or +Inf when label is absent.
func (s Snapshot) Distance(label string) float64 {
	for _, v := range s.Vertices {
		if v.Label == label {
			return v.Distance
		}
	}

	return stepper.Infinity
}

// Option configures a Session via functional arguments.
type Option func(*options)

type options struct {
	logger    *slog.Logger
	graph     *core.Graph
	graphOpts []core.GraphOption
	onUnit    func(stepper.Event)
}

func defaultOptions() options {
	return options{
		logger: slog.Default(),
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

// WithGraph adopts an existing graph instead of creating an empty one.
// The session becomes its owner; callers must not mutate g afterwards.
func WithGraph(g *core.Graph) Option {
	return func(o *options) {
		if g != nil {
			o.graph = g
		}
	}
}

// WithGraphOptions passes options to the graph a session creates.
// Ignored together with WithGraph.
func WithGraphOptions(opts ...core.GraphOption) Option {
	return func(o *options) {
		o.graphOpts = append(o.graphOpts, opts...)
	}
}

// WithOnUnit observes every non-idle work unit. The hook runs after
// Advance or RunToCompletion has released the session lock, in unit
// order, and may call back into the session.
func WithOnUnit(fn func(stepper.Event)) Option {
	return func(o *options) {
		if fn != nil {
			o.onUnit = fn
		}
	}
}
