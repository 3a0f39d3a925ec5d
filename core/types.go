// Package core defines the Vertex and Graph types the shortest-path engine
// runs on, together with the label pool vertices draw their names from.
//
// This file declares Vertex, Neighbor, Edge, Graph, GraphOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrNilVertex         - vertex pointer is nil.
//	ErrEmptyLabel        - an explicit vertex label is the empty string after trimming.
//	ErrDuplicateVertex   - vertex (or its label) is already a member of the graph.
//	ErrUnknownVertex     - operation referenced a vertex that is not a member.
//	ErrInvalidWeight     - edge weight is negative or NaN.
//	ErrLoopNotAllowed    - connect(v, v).
//	ErrDuplicateEdge     - the pair is already connected (no multi-graphs).
//	ErrNamePoolExhausted - no auto-assignable label is left in the pool.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilVertex indicates that a nil *Vertex was passed where a vertex is required.
	ErrNilVertex = errors.New("core: vertex is nil")

	// ErrEmptyLabel indicates that an explicit label consisted only of whitespace.
	ErrEmptyLabel = errors.New("core: vertex label is empty")

	// ErrDuplicateVertex indicates an Append of a vertex that is already present,
	// either by identity or by label.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrUnknownVertex indicates an operation referenced a vertex absent from the graph.
	ErrUnknownVertex = errors.New("core: unknown vertex")

	// ErrInvalidWeight indicates a negative (or NaN) edge weight.
	ErrInvalidWeight = errors.New("core: invalid edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates a second edge between an already connected pair.
	ErrDuplicateEdge = errors.New("core: vertices already connected")

	// ErrNamePoolExhausted indicates that every pool label has been handed out.
	ErrNamePoolExhausted = errors.New("core: name pool exhausted")
)

// Neighbor is one adjacency entry: a non-owning reference to the vertex on
// the other side of an edge and the weight of that edge.
type Neighbor struct {
	// Vertex is the adjacent vertex. It is owned by the Graph, not by the entry.
	Vertex *Vertex

	// Weight is the non-negative edge weight.
	Weight float64
}

// Vertex is a node with a stable identity (its pointer) and a label.
//
// adj keeps insertion order; the stepping engine scans edges in exactly this
// order, so it determines the visible progress of a visualization.
type Vertex struct {
	label string
	adj   []Neighbor
}

// Edge is one undirected edge as recorded by the Graph, in creation order.
type Edge struct {
	// A is the first endpoint passed to Connect.
	A *Vertex

	// B is the second endpoint passed to Connect.
	B *Vertex

	// Weight is the non-negative edge weight.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithNamePool makes the graph draw auto-assigned labels from pool instead
// of a private pool. Sharing one pool between graphs keeps labels unique
// across all of them.
func WithNamePool(pool *NamePool) GraphOption {
	return func(g *Graph) {
		if pool != nil {
			g.pool = pool
		}
	}
}

// WithStrictConnect makes Connect return ErrUnknownVertex when an endpoint
// is not a member. Without it such calls are silent no-ops.
func WithStrictConnect() GraphOption {
	return func(g *Graph) { g.strict = true }
}

// Graph is an ordered, append-only collection of vertices joined by
// undirected, non-negatively weighted edges.
//
// mu guards every field below it and the adjacency of member vertices.
type Graph struct {
	mu sync.RWMutex

	strict bool      // Connect on a non-member returns ErrUnknownVertex
	pool   *NamePool // label source for NewVertex("")

	vertices []*Vertex          // insertion order
	members  map[*Vertex]int    // vertex → index in vertices
	labels   map[string]*Vertex // label → vertex
	edges    []Edge             // creation order
}

// NewGraph creates an empty Graph with the given options.
// By default the graph owns a fresh NamePool and Connect is lenient.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		members: make(map[*Vertex]int),
		labels:  make(map[string]*Vertex),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.pool == nil {
		g.pool = NewNamePool()
	}

	return g
}
