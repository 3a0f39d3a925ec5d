// Package session binds one graph, its vertex name pool and one stepping
// engine into an explicitly owned unit, so a host can run any number of
// independent visualizations side by side.
//
// A typical interactive loop:
//
//	s := session.New()
//	for _, name := range []string{"", "", "", ""} { // A, B, C, D
//	    _, _ = s.AddVertex(name)
//	}
//	_ = s.Connect("A", "B", 1)
//	_ = s.Select(ctx, "A", "D")
//	snap, _ := s.Advance(ctx, 1) // one button press
//
// Snapshots are plain data. Select, Advance and RunToCompletion open
// OpenTelemetry spans named "Session.<op>"; the engine underneath records
// the stepper metrics.
package session
