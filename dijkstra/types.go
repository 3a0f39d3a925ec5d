// Package dijkstra defines core types and configuration options
// for the eager (non-interruptible) Dijkstra reference implementation.
//
// Options:
//
//	– ReturnPath: if true, the Result carries a predecessor map for path reconstruction.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– core.ErrUnknownVertex if the source or destination is not a member of the graph.
//	– ErrNoPath          if PathTo is asked for an unreachable vertex.
//	– ErrPathNotTracked  if PathTo is called on a Result built without WithReturnPath.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/pathstep/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNoPath indicates that the requested vertex is unreachable from the source.
	ErrNoPath = errors.New("dijkstra: no path to vertex")

	// ErrPathNotTracked indicates PathTo on a Result computed without WithReturnPath.
	ErrPathNotTracked = errors.New("dijkstra: predecessors were not recorded")
)

// Infinity is the distance reported for unreachable vertices.
var Infinity = math.Inf(1)

// Options configures the behavior of the Dijkstra algorithm.
//
// ReturnPath – if true, record predecessors; otherwise Result.Prev is nil.
type Options struct {
	ReturnPath bool // Whether to record the predecessor map
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithReturnPath enables generation of the predecessor map in the result.
// If not set, Result.Prev is nil and PathTo returns ErrPathNotTracked.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
// no predecessor map.
func DefaultOptions() Options {
	return Options{ReturnPath: false}
}

// Result holds the output of one eager run from Source.
type Result struct {
	// Source is the vertex the distances are measured from.
	Source *core.Vertex

	// Dist maps every graph vertex to its shortest distance (Infinity if unreachable).
	Dist map[*core.Vertex]float64

	// Prev maps a reached vertex to its predecessor on one shortest path.
	// Nil unless WithReturnPath was given; the source and unreachable vertices are absent.
	Prev map[*core.Vertex]*core.Vertex
}

// Distance returns the distance to v, or Infinity when v was not part of the run.
func (r *Result) Distance(v *core.Vertex) float64 {
	if d, ok := r.Dist[v]; ok {
		return d
	}

	return Infinity
}

// PathTo rebuilds one shortest path Source → … → v from the predecessor map.
func (r *Result) PathTo(v *core.Vertex) ([]*core.Vertex, error) {
	if r.Prev == nil {
		return nil, ErrPathNotTracked
	}
	if math.IsInf(r.Distance(v), 1) {
		return nil, ErrNoPath
	}

	var path []*core.Vertex
	for cur := v; cur != nil; cur = r.Prev[cur] {
		path = append(path, cur)
		if cur == r.Source {
			break
		}
	}
	// reverse into source-first order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
