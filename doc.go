// Package pathstep is an interruptible Dijkstra shortest-path engine for
// teaching and visualization: the algorithm advances one work unit per
// call, and its full state can be inspected between calls.
//
// What's inside:
//
//	core/       — undirected weighted graph, vertices with ordered adjacency, A..Z name pool
//	stepper/    — the resumable engine: Init, Step, Advance(n), distances, frontier, cursor
//	dijkstra/   — eager heap-based reference used to cross-check the engine
//	session/    — one graph + pool + engine behind one lock, with snapshots and a registry
//	builder/    — deterministic fixture graphs (path, cycle, star, wheel, complete, grid, random)
//	cmd/pathstep — command-line and interactive step-button front end
//
// Quick start:
//
//	g := core.NewGraph()
//	a, b, c := g.MustVertex(""), g.MustVertex(""), g.MustVertex("")
//	_ = g.Connect(a, b, 1)
//	_ = g.Connect(b, c, 2)
//	_ = g.Connect(a, c, 5)
//
//	e := stepper.New(g)
//	_ = e.Init(a, c)
//	e.Advance(3)          // three button presses
//	d := e.Distance(c)    // 5 so far; 3 once the run is done
//
// Unreachable vertices keep distance +Inf; that is a result, not an error.
package pathstep
