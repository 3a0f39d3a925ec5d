// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns vertices in insertion order.
//
// Concurrency:
//   - Vertex catalog protected by mu.

package core

import "slices"

// Label returns the vertex label.
func (v *Vertex) Label() string { return v.label }

// String implements fmt.Stringer; a nil vertex prints as "<nil>".
func (v *Vertex) String() string {
	if v == nil {
		return "<nil>"
	}

	return v.label
}

// Neighbors returns a copy of the adjacency sequence in insertion order.
//
// Notes:
//   - Reads are not synchronized with Graph.Connect. Use Graph.Neighbors
//     when the graph may be mutated concurrently.
func (v *Vertex) Neighbors() []Neighbor { return slices.Clone(v.adj) }

// Degree returns the number of adjacency entries.
func (v *Vertex) Degree() int { return len(v.adj) }

// WeightTo returns the weight of the edge to u, if any.
// Complexity: O(deg(v)).
func (v *Vertex) WeightTo(u *Vertex) (float64, bool) {
	for _, n := range v.adj {
		if n.Vertex == u {
			return n.Weight, true
		}
	}

	return 0, false
}

// Append adds v at the end of the vertex sequence.
//
// Errors:
//   - ErrNilVertex: v == nil.
//   - ErrDuplicateVertex: v is already a member, or another member carries the same label.
//
// Complexity: O(1) amortized.
func (g *Graph) Append(v *Vertex) error {
	if v == nil {
		return ErrNilVertex
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.members[v]; ok {
		return ErrDuplicateVertex
	}
	if _, ok := g.labels[v.label]; ok {
		return ErrDuplicateVertex
	}

	// explicit labels are retired from the pool so NewVertex("") never reuses them
	g.pool.Claim(v.label)

	g.members[v] = len(g.vertices)
	g.labels[v.label] = v
	g.vertices = append(g.vertices, v)

	return nil
}

// NewVertex creates a vertex labelled from the graph's pool (empty name) or
// with the explicit name, and appends it.
func (g *Graph) NewVertex(name string) (*Vertex, error) {
	v, err := NewVertex(g.pool, name)
	if err != nil {
		return nil, err
	}
	if err = g.Append(v); err != nil {
		return nil, err
	}

	return v, nil
}

// MustVertex is NewVertex for fixtures and examples; it panics on error.
func (g *Graph) MustVertex(name string) *Vertex {
	v, err := g.NewVertex(name)
	if err != nil {
		panic(err)
	}

	return v
}

// Has reports whether v is a member of the graph (nil ⇒ false).
func (g *Graph) Has(v *Vertex) bool {
	if v == nil {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.members[v]

	return ok
}

// Lookup returns the member carrying label.
func (g *Graph) Lookup(label string) (*Vertex, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.labels[label]

	return v, ok
}

// IndexOf returns the insertion index of v, or -1 when v is not a member.
func (g *Graph) IndexOf(v *Vertex) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if i, ok := g.members[v]; ok {
		return i
	}

	return -1
}

// Vertices returns a copy of the vertex sequence in insertion order.
func (g *Graph) Vertices() []*Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Clone(g.vertices)
}

// Len returns the number of vertices.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Pool returns the label pool the graph draws from.
func (g *Graph) Pool() *NamePool { return g.pool }
