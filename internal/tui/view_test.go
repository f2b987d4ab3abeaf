package tui

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestCanvasView_HalfBlocks(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	blue := color.RGBA{0, 0, 255, 255}
	// column 0: both pixels, 1: top only, 2: bottom only, 3: neither
	img.SetRGBA(0, 0, blue)
	img.SetRGBA(0, 1, blue)
	img.SetRGBA(1, 0, blue)
	img.SetRGBA(2, 1, blue)
	// odd last row: only the top pixel exists
	img.SetRGBA(0, 2, blue)
	// faint pixels are background
	img.SetRGBA(3, 0, color.RGBA{0, 0, 4, 4})

	got := ansi.Strip(canvasView(img))
	want := "▀▀▄ \n▀   "
	if got != want {
		t.Errorf("canvasView = %q, want %q", got, want)
	}
}

func TestHex(t *testing.T) {
	if got := hex(color.RGBA{0x12, 0xab, 0x00, 0xff}); got != "#12ab00" {
		t.Errorf("hex = %q", got)
	}
}

func TestModelView_ShowsPanel(t *testing.T) {
	m, _ := newTestModel(t)
	out := ansi.Strip(ModelView(m))

	for _, want := range []string{"Heures", "Minutes", "Secondes", "Vitesse du temps", "100.0", "1.0"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m = press(m, "d")
	out = ansi.Strip(ModelView(m))
	if strings.Contains(out, "Heures") {
		t.Errorf("panel rendered while hidden")
	}
}

func TestModelView_CanvasRows(t *testing.T) {
	m, _ := newTestModel(t)
	m = press(m, "d")
	lines := strings.Split(ansi.Strip(ModelView(m)), "\n")
	// 23 canvas rows plus the help line.
	if len(lines) != 24 {
		t.Errorf("got %d lines, want 24", len(lines))
	}
}
