// Package dijkstra provides the eager reference implementation of Dijkstra's
// shortest-path algorithm on a core.Graph with non-negative edge weights.
//
// Overview:
//
//   - Run computes the minimum-cost distance from a single source vertex to
//     every vertex of the graph in O((V + E) log V) time.
//   - ShortestPath returns the distance to one destination; an unreachable
//     destination yields +Inf, which is a valid result and not an error.
//   - It relies on a min-heap (github.com/emirpasic/gods binaryheap) to always
//     expand the next-closest vertex.
//
// When to use:
//
//   - To validate the end state of the resumable engine in package stepper.
//   - Whenever the answer is needed at once and no intermediate state is
//     observed.
//
// API reference:
//
//	func ShortestPath(g *core.Graph, source, destination *core.Vertex) (float64, error)
//	func Run(g *core.Graph, source *core.Vertex, opts ...Option) (*Result, error)
//
//	  - opts:    WithReturnPath() records predecessors; Result.PathTo rebuilds a path.
//
// Thread safety:
//
//   - Neighbor lists are read under the graph lock, but a run is not isolated
//     from concurrent Connect calls. Finish building the graph first.
package dijkstra
