package tui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// alphaCutoff is the alpha below which a pixel shows the terminal background.
const alphaCutoff = 16

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FFFF"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFF00"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	panelStyle    = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#555555")).
			Padding(0, 1)
)

// ModelView renders the TUI model's view as a string.
func ModelView(m model) string {
	if m.quitting {
		return ""
	}
	body := canvasView(m.raster.Image())
	if m.showPanel {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, panelView(m))
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, m.help.View(m.keys))
}

// canvasView draws img with one half block per pair of vertically
// adjacent pixels: the upper pixel is the foreground of "▀" and the
// lower one its background.
func canvasView(img *image.RGBA) string {
	b := img.Bounds()
	cache := make(map[[2]color.RGBA]string)
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			top := img.RGBAAt(x, y)
			var bottom color.RGBA
			if y+1 < b.Max.Y {
				bottom = img.RGBAAt(x, y+1)
			}
			pair := [2]color.RGBA{top, bottom}
			cell, ok := cache[pair]
			if !ok {
				cell = halfBlock(top, bottom)
				cache[pair] = cell
			}
			sb.WriteString(cell)
		}
	}
	return sb.String()
}

func halfBlock(top, bottom color.RGBA) string {
	topOn := top.A >= alphaCutoff
	bottomOn := bottom.A >= alphaCutoff
	switch {
	case topOn && bottomOn:
		return lipgloss.NewStyle().Foreground(hex(top)).Background(hex(bottom)).Render("▀")
	case topOn:
		return lipgloss.NewStyle().Foreground(hex(top)).Render("▀")
	case bottomOn:
		return lipgloss.NewStyle().Foreground(hex(bottom)).Render("▄")
	default:
		return " "
	}
}

// hex formats a premultiplied pixel, which amounts to compositing it
// over black.
func hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

func panelView(m model) string {
	labelWidth := 0
	for _, s := range m.panel.Sliders {
		labelWidth = max(labelWidth, runewidth.StringWidth(s.Label))
	}

	rows := []string{titleStyle.Render("Debug"), ""}
	for i, s := range m.panel.Sliders {
		label := runewidth.FillRight(s.Label, labelWidth)
		if i == m.panel.Cursor() {
			label = selectedStyle.Render(label)
		} else {
			label = labelStyle.Render(label)
		}
		rows = append(rows, fmt.Sprintf("%s %s %6.1f", label, m.bar.ViewAs(s.Fraction()), s.Value()))
	}
	rows = append(rows, "", labelStyle.Render(fmt.Sprintf("frame %d", m.animator.Frames())))
	return panelStyle.Render(strings.Join(rows, "\n"))
}
