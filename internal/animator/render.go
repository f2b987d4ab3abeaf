package animator

import (
	"gravclock/internal/scene"
	"gravclock/internal/surface"
)

// Drawing constants.
const (
	handWidth = 30
	faceWidth = 2
	faceColor = "blue"
	edgeColor = "black"
	// bridgeColor fills the circle spanning two consecutive hand tips.
	bridgeColor = "purple"
)

// Render clears the surface and draws one frame: the face, then each
// hand followed by the circle bridging it to the next hand. After the
// first bridge the context switches to multiply and stays there, so
// every later shape, in this frame and the following ones, is
// multiplied onto what is below it.
func (a *Animator) Render() {
	l := a.layout
	ctx := a.ctx

	ctx.ClearRect(0, 0, l.Width, l.Height)

	ctx.FillCircle(l.CenterX, l.CenterY, l.Radius, scene.Color(faceColor))
	ctx.StrokeCircle(l.CenterX, l.CenterY, l.Radius, surface.Paint{
		Color: scene.Color(edgeColor),
		Width: faceWidth,
	})

	angles := ComputeAngles(a.clock.Now(), a.state.Config.TimeSpeed)
	hands := &a.state.Hands
	for i := range hands {
		hands[i].Angle = angles[i]
	}

	for i, h := range hands {
		a.drawHand(h)
		if i < len(hands)-1 {
			a.drawBridge(h, hands[i+1])
		}
	}
	a.logger.Tracef("animator: frame %d angles %.4f %.4f %.4f", a.frames, angles[0], angles[1], angles[2])
}

func (a *Animator) drawHand(h scene.Hand) {
	l := a.layout
	x, y := h.Tip(l.CenterX, l.CenterY)
	a.ctx.StrokeLine(l.CenterX, l.CenterY, x, y, surface.Paint{
		Color: h.RGBA(),
		Width: handWidth,
		Cap:   surface.RoundCap,
	})
}

func (a *Animator) drawBridge(from, to scene.Hand) {
	l := a.layout
	x, y, r := scene.Bridge(l.CenterX, l.CenterY, from, to)
	a.ctx.FillCircle(x, y, r, scene.Color(bridgeColor))
	a.ctx.SetCompositeOp(surface.Multiply)
}
