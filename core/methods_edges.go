// File: methods_edges.go
// Role: Edge creation & queries: Connect/Neighbors/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges in creation order.
//   - Each vertex's adjacency keeps insertion order.
// Concurrency:
//   - Connect under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"math"
	"slices"
)

// Connect adds an undirected edge a—b with the given weight by appending
// (b, weight) to a's adjacency and (a, weight) to b's.
//
// Steps:
//  1. Validate weight (negative or NaN ⇒ ErrInvalidWeight).
//  2. Nil or non-member endpoint ⇒ silent no-op, or ErrUnknownVertex in strict mode.
//  3. a == b ⇒ ErrLoopNotAllowed; already connected ⇒ ErrDuplicateEdge.
//  4. Append to both adjacency sequences and to the edge catalog.
//
// Complexity: O(deg(a)) for the duplicate check.
func (g *Graph) Connect(a, b *Vertex, weight float64) error {
	if weight < 0 || math.IsNaN(weight) {
		return fmt.Errorf("connect %s—%s weight=%g: %w", a, b, weight, ErrInvalidWeight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	_, okA := g.members[a]
	_, okB := g.members[b]
	if a == nil || b == nil || !okA || !okB {
		if g.strict {
			return fmt.Errorf("connect %s—%s: %w", a, b, ErrUnknownVertex)
		}

		return nil
	}

	if a == b {
		return fmt.Errorf("connect %s—%s: %w", a, b, ErrLoopNotAllowed)
	}
	if _, ok := a.WeightTo(b); ok {
		return fmt.Errorf("connect %s—%s: %w", a, b, ErrDuplicateEdge)
	}

	a.adj = append(a.adj, Neighbor{Vertex: b, Weight: weight})
	b.adj = append(b.adj, Neighbor{Vertex: a, Weight: weight})
	g.edges = append(g.edges, Edge{A: a, B: b, Weight: weight})

	return nil
}

// ConnectLabels resolves both labels and delegates to Connect.
// An unknown label behaves like a non-member vertex.
func (g *Graph) ConnectLabels(a, b string, weight float64) error {
	va, _ := g.Lookup(a)
	vb, _ := g.Lookup(b)
	if (va == nil || vb == nil) && g.strict {
		return fmt.Errorf("connect %q—%q: %w", a, b, ErrUnknownVertex)
	}

	return g.Connect(va, vb, weight)
}

// Neighbors returns a copy of v's adjacency sequence under the graph lock.
func (g *Graph) Neighbors(v *Vertex) ([]Neighbor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.members[v]; !ok {
		return nil, ErrUnknownVertex
	}

	return slices.Clone(v.adj), nil
}

// Edges returns every edge once, in creation order.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Clone(g.edges)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
