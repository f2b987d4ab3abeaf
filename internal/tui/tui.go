// Package tui hosts the clock in a terminal: it owns the drawing
// surface, feeds frames and resizes to the animator and draws the
// debug panel.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"gravclock/internal/animator"
	"gravclock/internal/config"
	"gravclock/internal/logging"
	"gravclock/internal/panel"
	"gravclock/internal/scene"
	"gravclock/internal/surface"
)

// Init starts the animation once the program is running.
func (m model) Init() tea.Cmd {
	return func() tea.Msg { return readyMsg{} }
}

// New registers a terminal-backed surface under cfg.SurfaceID, binds an
// animator and the debug panel to state and returns the program model.
func New(cfg config.Config, state *scene.State, logger logging.Logger, opts ...animator.Option) (tea.Model, error) {
	m, err := newModel(cfg, state, logger, opts...)
	if err != nil {
		return nil, err
	}
	return &teaModelAdapter{m}, nil
}

func newModel(cfg config.Config, state *scene.State, logger logging.Logger, opts ...animator.Option) (model, error) {
	reg := surface.NewRegistry()
	r := surface.NewRaster(cfg.SurfaceID, 1, 1, 1.0/cellWidth)
	reg.Register(r)

	opts = append([]animator.Option{animator.WithLogger(logger)}, opts...)
	a, err := animator.New(cfg.SurfaceID, reg, state, opts...)
	if err != nil {
		return model{}, fmt.Errorf("bind animator: %w", err)
	}
	m := initialModel(a, r, panel.Bind(state), cfg.FPS, logger)
	m.resize()
	return m, nil
}

// Run launches the clock TUI and blocks until the user quits.
func Run(cfg config.Config, state *scene.State, logger logging.Logger, opts ...animator.Option) error {
	m, err := New(cfg, state, logger, opts...)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// teaModelAdapter adapts our model to the tea.Model interface using Update and ModelView.
type teaModelAdapter struct {
	m model
}

func (a *teaModelAdapter) Init() tea.Cmd {
	return a.m.Init()
}

func (a *teaModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m2, cmd := Update(a.m, msg)
	a.m = m2
	return a, cmd
}

func (a *teaModelAdapter) View() string {
	return ModelView(a.m)
}
