// Package stepper implements a resumable Dijkstra engine: the algorithm runs
// one work unit per Step, and its whole state (distance estimates, ordered
// frontier, cursor vertex and adjacency position) is kept between calls so
// a caller can pause after any unit and render what the algorithm knows.
//
// A work unit is:
//
//  1. a dequeue, when the previous cursor's scan is complete and the frontier
//     is not empty: the closest vertex becomes the cursor;
//  2. followed, in the same unit, by one adjacency inspection of the cursor:
//     relax the next edge (strict improvement only, then restabilize the
//     frontier), or mark the scan complete when the adjacency is exhausted.
//
// Once the frontier is empty and no scan is pending, every further unit is
// idle. Advance(a) followed by Advance(b) is the same as Advance(a+b).
//
// Quick start:
//
//	e := stepper.New(g)
//	if err := e.Init(src, dst); err != nil {
//	    return err
//	}
//	for !e.IsDone() {
//	    e.Advance(1)
//	    render(e.Distances(), e.CurrentVertex())
//	}
//
// Hooks and ambient concerns are options: WithOnUnit observes every unit,
// WithLogger takes a *slog.Logger, WithContext attributes the otel metrics
// (stepper_units_total, stepper_inits_total, stepper_frontier_length).
//
// Thread safety: an Engine is single-owner. Wrap it (package session does)
// when several goroutines drive the same visualization.
package stepper
