package stepper

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/pathstep/core"
)

// frontier is the ordered set of vertices not yet dequeued, ascending by
// tentative distance. Equal distances keep their previous relative order:
// every reorder is a stable sort of the current sequence.
type frontier struct {
	entries []FrontierEntry
}

func newFrontier(vertices []*core.Vertex, dist map[*core.Vertex]float64) frontier {
	f := frontier{entries: make([]FrontierEntry, 0, len(vertices))}
	for _, v := range vertices {
		f.entries = append(f.entries, FrontierEntry{Vertex: v, Distance: dist[v]})
	}
	f.restabilize()

	return f
}

func (f *frontier) Len() int { return len(f.entries) }

// popMin removes and returns the first (closest) vertex.
func (f *frontier) popMin() *core.Vertex {
	v := f.entries[0].Vertex
	f.entries = slices.Delete(f.entries, 0, 1)

	return v
}

// update sets v's tentative distance and restores the order.
// It reports false when v is not in the frontier.
func (f *frontier) update(v *core.Vertex, d float64) bool {
	i := slices.IndexFunc(f.entries, func(e FrontierEntry) bool { return e.Vertex == v })
	if i < 0 {
		return false
	}
	f.entries[i].Distance = d
	f.restabilize()

	return true
}

func (f *frontier) restabilize() {
	slices.SortStableFunc(f.entries, func(a, b FrontierEntry) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
}

func (f *frontier) snapshot() []FrontierEntry { return slices.Clone(f.entries) }
