// Package render turns session snapshots into terminal text.
package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/pathstep/session"
)

// Inf is how an unreached distance is shown.
const Inf = "∞"

// Distance formats d without trailing zeros; +Inf prints as Inf.
func Distance(d float64) string {
	if math.IsInf(d, 1) {
		return Inf
	}

	return strconv.FormatFloat(d, 'f', -1, 64)
}

// Renderer holds the styles for one output stream.
type Renderer struct {
	header    lipgloss.Style
	current   lipgloss.Style
	finalized lipgloss.Style
	frontier  lipgloss.Style
	idle      lipgloss.Style
	muted     lipgloss.Style
}

// New returns a renderer; color=false renders plain text.
func New(color bool) *Renderer {
	if !color {
		plain := lipgloss.NewStyle()
		return &Renderer{plain, plain, plain, plain, plain, plain}
	}

	return &Renderer{
		header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		current:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		finalized: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		frontier:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		idle:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

func (r *Renderer) style(s session.State) lipgloss.Style {
	switch s {
	case session.StateCurrent:
		return r.current
	case session.StateFinalized:
		return r.finalized
	case session.StateFrontier:
		return r.frontier
	default:
		return r.idle
	}
}

// Snapshot renders a header line, one row per vertex and a frontier line.
// Before selection each vertex shows its own label instead of a distance.
func (r *Renderer) Snapshot(snap session.Snapshot) string {
	var b strings.Builder

	b.WriteString(r.header.Render(r.title(snap)))
	b.WriteByte('\n')

	width := 1
	for _, v := range snap.Vertices {
		width = max(width, len([]rune(v.Label)))
	}
	for _, v := range snap.Vertices {
		value := Distance(v.Distance)
		if !snap.Selected {
			value = v.Label
		}
		row := fmt.Sprintf("  %-*s  %6s  %s", width, v.Label, value, v.State)
		b.WriteString(r.style(v.State).Render(row))
		b.WriteByte('\n')
	}

	if snap.Selected {
		b.WriteString(r.muted.Render("  frontier: [" + strings.Join(snap.Frontier, " ") + "]"))
		b.WriteByte('\n')
	}
	if snap.Done {
		b.WriteString(r.Path(snap.Source, snap.Destination, snap.DestinationDistance, snap.Path))
	}

	return b.String()
}

func (r *Renderer) title(snap session.Snapshot) string {
	if !snap.Selected {
		return "no endpoints selected"
	}
	parts := []string{
		fmt.Sprintf("%s → %s", snap.Source, snap.Destination),
		fmt.Sprintf("step %d", snap.Steps),
	}
	switch {
	case snap.Done:
		parts = append(parts, "done")
	case snap.Current != "":
		parts = append(parts, "at "+snap.Current)
	}

	return strings.Join(parts, " · ")
}

// Path renders the result line for src → dst.
func (r *Renderer) Path(src, dst string, d float64, path []string) string {
	if math.IsInf(d, 1) {
		return r.muted.Render(fmt.Sprintf("%s is unreachable from %s", dst, src)) + "\n"
	}

	return r.finalized.Render(fmt.Sprintf("dist(%s, %s) = %s  via %s",
		src, dst, Distance(d), strings.Join(path, " → "))) + "\n"
}
