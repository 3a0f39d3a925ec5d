// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters and diagnostics snapshot.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// GraphStats is an immutable-by-convention snapshot of a graph's policy
// flags and catalog sizes.
type GraphStats struct {
	StrictConnect bool
	VertexCount   int
	EdgeCount     int
	// TotalWeight is the sum of all edge weights (each undirected edge once).
	TotalWeight float64
	// Isolated counts vertices with no adjacency entries.
	Isolated int
	// FreeLabels is the number of labels still available in the pool.
	FreeLabels int
}

// Strict reports whether Connect rejects non-member endpoints with ErrUnknownVertex.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Strict() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.strict
}

// Stats produces a read-only snapshot of flags and counts.
//
// Implementation:
//   - Stage 1: Acquire mu.RLock, scan vertices and edges once, release.
//   - Stage 2: Query the pool (own lock) outside mu.
//
// Complexity:
//   - Time O(V+E), Space O(1) plus the returned struct.
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	stats := GraphStats{
		StrictConnect: g.strict,
		VertexCount:   len(g.vertices),
		EdgeCount:     len(g.edges),
	}
	for _, v := range g.vertices {
		if len(v.adj) == 0 {
			stats.Isolated++
		}
	}
	for _, e := range g.edges {
		stats.TotalWeight += e.Weight
	}
	g.mu.RUnlock()

	stats.FreeLabels = len(g.pool.Remaining())

	return &stats
}
