// Package tui provides the interactive step-button UI.
//
// Each key press drives the session by a fixed number of work units and
// redraws the rendered snapshot. The model runs inside the bubbletea event
// loop; the session it holds may still be read from other goroutines.
package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/pathstep/internal/render"
	"github.com/katalvlaran/pathstep/session"
)

// Model is the bubbletea model over one selected session.
type Model struct {
	ctx   context.Context
	s     *session.Session
	r     *render.Renderer
	batch int

	keys keyMap
	help help.Model

	snap     session.Snapshot
	err      error
	quitting bool
}

// New returns a model showing the session's current snapshot.
// batch < 1 is treated as 1.
func New(ctx context.Context, s *session.Session, r *render.Renderer, batch int) Model {
	return Model{
		ctx:   ctx,
		s:     s,
		r:     r,
		batch: max(batch, 1),
		keys:  defaultKeyMap(),
		help:  help.New(),
		snap:  s.Snapshot(),
	}
}

// Snapshot returns the last snapshot the model rendered.
func (m Model) Snapshot() session.Snapshot { return m.snap }

// Err returns the error of the last action, if any.
func (m Model) Err() error { return m.err }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Step):
			m.snap, m.err = m.s.Advance(m.ctx, 1)
		case key.Matches(msg, m.keys.Batch):
			m.snap, m.err = m.s.Advance(m.ctx, m.batch)
		case key.Matches(msg, m.keys.Run):
			m.snap, m.err = m.s.RunToCompletion(m.ctx)
		case key.Matches(msg, m.keys.Reset):
			m.err = m.s.Reset()
			m.snap = m.s.Snapshot()
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	out := m.r.Snapshot(m.snap)
	if m.err != nil {
		out += fmt.Sprintf("error: %v\n", m.err)
	}
	out += fmt.Sprintf("batch %d\n", m.batch)

	return out + "\n" + m.help.View(m.keys) + "\n"
}

// Run drives the model until the user quits.
func Run(ctx context.Context, m Model, in io.Reader, out io.Writer) (Model, error) {
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return m, fmt.Errorf("tui: %w", err)
	}

	return final.(Model), nil
}
