package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Message types for Bubbletea update loop
type readyMsg struct{}
type frameMsg time.Time

// frameCmd waits one refresh interval and reports a frame.
func frameCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Update handles all Bubbletea update logic for the clock model.
func Update(m model, msg tea.Msg) (model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return handleKeyMsg(m, msg)
	case tea.WindowSizeMsg:
		return handleWindowResize(m, msg)
	case readyMsg:
		return handleReady(m)
	case frameMsg:
		return handleFrame(m)
	}
	return m, nil
}

// handleReady starts the animation once the program is up.
func handleReady(m model) (model, tea.Cmd) {
	if err := m.animator.Start(m.frames); err != nil {
		m.logger.Warningf("tui: %v", err)
		return m, nil
	}
	return m, frameCmd(m.frames.interval)
}

// handleFrame runs the queued tick and schedules the next refresh.
func handleFrame(m model) (model, tea.Cmd) {
	fn := m.frames.pending
	if fn == nil {
		return m, nil
	}
	m.frames.pending = nil
	fn()
	return m, frameCmd(m.frames.interval)
}

func handleKeyMsg(m model, msg tea.KeyMsg) (model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Infof("tui: quit after %d frames", m.animator.Frames())
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		m.showPanel = !m.showPanel
		m.resize()
		return m, nil
	}
	if !m.showPanel {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Up):
		m.panel.Prev()
	case key.Matches(msg, m.keys.Down):
		m.panel.Next()
	case key.Matches(msg, m.keys.Left):
		m.panel.Selected().Nudge(-1)
		m.logSlider()
	case key.Matches(msg, m.keys.Right):
		m.panel.Selected().Nudge(1)
		m.logSlider()
	}
	return m, nil
}

func (m model) logSlider() {
	s := m.panel.Selected()
	m.logger.Debugf("tui: %s = %.2f", s.Label, s.Value())
}

func handleWindowResize(m model, msg tea.WindowSizeMsg) (model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.resize()
	return m, nil
}

// resize gives the surface the cells left for the clock and lets the
// animator recompute its layout.
func (m model) resize() {
	cols, rows := m.canvasSize()
	m.raster.Resize(float64(cols*cellWidth), float64(rows*cellHeight), 1.0/cellWidth)
	m.animator.OnResize()
}
