package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"

	"gravclock/internal/animator"
	"gravclock/internal/logging"
	"gravclock/internal/panel"
	"gravclock/internal/surface"
)

// A terminal cell stands for cellWidth×cellHeight logical pixels. The
// surface's device pixel ratio is 1/cellWidth, so every physical pixel
// is half a cell and is drawn as one half block.
const (
	cellWidth  = 8
	cellHeight = 16

	// panelWidth is the number of columns the debug panel takes.
	panelWidth = 46
	barWidth   = 18
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Up, k.Down, k.Left, k.Right, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultKeys() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev slider")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next slider")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "decrease")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "increase")),
		Toggle: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "debug panel")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// frameScheduler is the terminal host's frame primitive: the animator
// queues its next tick here and Update fires it on the next frameMsg.
type frameScheduler struct {
	interval time.Duration
	pending  func()
}

func (s *frameScheduler) RequestFrame(fn func()) { s.pending = fn }

// model is the Bubbletea model for the clock.
type model struct {
	animator *animator.Animator
	raster   *surface.Raster
	panel    *panel.Panel
	frames   *frameScheduler
	logger   logging.Logger

	keys      keyMap
	help      help.Model
	bar       progress.Model
	showPanel bool
	quitting  bool
	width     int // terminal columns
	height    int // terminal rows
}

// initialModel wires the model around an animator bound to r.
func initialModel(a *animator.Animator, r *surface.Raster, p *panel.Panel, fps float64, logger logging.Logger) model {
	if fps <= 0 {
		fps = 60
	}
	return model{
		animator:  a,
		raster:    r,
		panel:     p,
		frames:    &frameScheduler{interval: time.Duration(float64(time.Second) / fps)},
		logger:    logger,
		keys:      defaultKeys(),
		help:      help.New(),
		bar:       progress.New(progress.WithDefaultGradient(), progress.WithWidth(barWidth), progress.WithoutPercentage()),
		showPanel: true,
		width:     80,
		height:    24,
	}
}

// canvasSize returns the cells given to the clock.
func (m model) canvasSize() (cols, rows int) {
	cols = m.width
	if m.showPanel {
		cols -= panelWidth
	}
	rows = m.height - 1 // help line
	return max(cols, 1), max(rows, 1)
}
