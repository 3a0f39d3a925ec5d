// Package dijkstra implements the eager reference version of Dijkstra's
// shortest-path algorithm on a core.Graph.
//
// It processes vertices in order of increasing distance using a binary
// min-heap, relaxing edges and updating distances accordingly. The stepping
// engine in package stepper must always converge to the distances computed
// here.
//
// Notes on implementation choices:
//
//   - Weights are validated by core.Graph.Connect, so no pre-scan is needed.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries.
//   - Heap entries carry an insertion sequence so equal distances pop in the
//     order they were pushed.
package dijkstra

import (
	"fmt"

	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/katalvlaran/pathstep/core"
)

// ShortestPath returns the shortest distance from source to destination,
// or Infinity when destination is unreachable (not an error).
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source and destination must be members of g (core.ErrUnknownVertex).
func ShortestPath(g *core.Graph, source, destination *core.Vertex) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	if !g.Has(destination) {
		return 0, fmt.Errorf("dijkstra: destination %s: %w", destination, core.ErrUnknownVertex)
	}

	res, err := Run(g, source)
	if err != nil {
		return 0, err
	}

	return res.Distance(destination), nil
}

// Run computes shortest distances from source to every vertex of g.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Run(g *core.Graph, source *core.Vertex, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Has(source) {
		return nil, fmt.Errorf("dijkstra: source %s: %w", source, core.ErrUnknownVertex)
	}

	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		source:  source,
		dist:    make(map[*core.Vertex]float64, len(vertices)),
		visited: make(map[*core.Vertex]bool, len(vertices)),
		pq:      binaryheap.NewWith(byDistance),
	}
	if cfg.ReturnPath {
		r.prev = make(map[*core.Vertex]*core.Vertex, len(vertices))
	}

	r.init(vertices)
	if err := r.process(); err != nil {
		return nil, err
	}

	return &Result{Source: source, Dist: r.dist, Prev: r.prev}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	source  *core.Vertex
	dist    map[*core.Vertex]float64
	prev    map[*core.Vertex]*core.Vertex
	visited map[*core.Vertex]bool
	pq      *binaryheap.Heap
	seq     uint64 // next heap insertion sequence
}

// init sets dist[v] = +∞ for every vertex and pushes source with distance 0.
func (r *runner) init(vertices []*core.Vertex) {
	for _, v := range vertices {
		r.dist[v] = Infinity
	}
	r.dist[r.source] = 0
	r.push(r.source, 0)
}

// process repeatedly extracts the closest unvisited vertex and relaxes its edges
// until the heap is empty.
func (r *runner) process() error {
	for !r.pq.Empty() {
		top, _ := r.pq.Pop()
		item := top.(*nodeItem)

		// stale entry of an already finalized vertex
		if r.visited[item.v] {
			continue
		}
		r.visited[item.v] = true

		if err := r.relax(item.v); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge of u and improves neighbor distances strictly.
// Assumes r.dist[u] is final.
func (r *runner) relax(u *core.Vertex) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %s: %w", u, err)
	}

	for _, n := range neighbors {
		candidate := r.dist[u] + n.Weight
		if candidate >= r.dist[n.Vertex] {
			continue
		}

		r.dist[n.Vertex] = candidate
		if r.prev != nil {
			r.prev[n.Vertex] = u
		}
		r.push(n.Vertex, candidate)
	}

	return nil
}

func (r *runner) push(v *core.Vertex, d float64) {
	r.pq.Push(&nodeItem{v: v, dist: d, seq: r.seq})
	r.seq++
}

// nodeItem is one heap entry: a vertex and the distance it was pushed with.
type nodeItem struct {
	v    *core.Vertex
	dist float64
	seq  uint64
}

// byDistance orders heap entries by distance, then by insertion sequence.
func byDistance(a, b interface{}) int {
	x, y := a.(*nodeItem), b.(*nodeItem)
	switch {
	case x.dist < y.dist:
		return -1
	case x.dist > y.dist:
		return 1
	case x.seq < y.seq:
		return -1
	case x.seq > y.seq:
		return 1
	default:
		return 0
	}
}
