// Package core provides the graph data model for the pathstep engine: an
// ordered, append-only Graph of labelled vertices joined by undirected,
// non-negatively weighted edges.
//
// The Graph G = (V,E) keeps two kinds of order that matter to callers:
//
//   - Vertices() returns vertices in the order they were appended.
//   - Each Vertex keeps its adjacency in the order edges were created, and
//     the stepping engine scans edges in exactly that order.
//
// Vertex identity is the *Vertex pointer. Labels are unique within a graph:
// auto-assigned labels come from an explicit NamePool (A, B, C, ... in a
// fixed order), and an explicit name that matches a pool entry retires it.
// Share one pool between graphs (WithNamePool) to keep labels unique across
// all of them.
//
// Configuration Options (GraphOption):
//
//	– WithNamePool(pool)
//	    Draw auto-assigned labels from pool instead of a private one.
//
//	– WithStrictConnect()
//	    Connect on a non-member vertex returns ErrUnknownVertex instead of
//	    being a silent no-op.
//
// Core Methods:
//
//	// Vertex lifecycle
//	NewVertex(name string) (*Vertex, error)  // O(1), "" ⇒ next pool label
//	Append(v *Vertex) error                  // O(1)
//	Has(v *Vertex) bool                      // O(1)
//	Lookup(label string) (*Vertex, bool)     // O(1)
//
//	// Edge lifecycle
//	Connect(a, b *Vertex, weight float64) error // O(deg(a))
//	ConnectLabels(a, b string, weight float64) error
//
//	// Query
//	Vertices() []*Vertex                // O(V), insertion order
//	Neighbors(v *Vertex) ([]Neighbor, error) // O(deg(v)), insertion order
//	Edges() []Edge                      // O(E), creation order
//	Len(), EdgeCount(), Stats()
//
// Errors:
//
//	ErrNilVertex, ErrEmptyLabel, ErrDuplicateVertex, ErrUnknownVertex,
//	ErrInvalidWeight, ErrLoopNotAllowed, ErrDuplicateEdge, ErrNamePoolExhausted
//
// There is no vertex or edge removal: a graph only grows.
package core
