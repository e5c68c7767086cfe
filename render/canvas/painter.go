// Package canvas replays render draw-lists onto an ebiten image.
package canvas

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/olivierh59500/quantum-field-go/render"
)

// Discs stacked per radial glow
const glowSteps = 6

// Painter is the only writer to the surface it is given.
type Painter struct {
	face      font.Face
	antialias bool
}

// NewPainter creates a painter using the 7x13 bitmap face.
func NewPainter(antialias bool) *Painter {
	return &Painter{face: basicfont.Face7x13, antialias: antialias}
}

// Paint draws cmds onto dst in order. A nil surface is a silent no-op.
func (p *Painter) Paint(dst *ebiten.Image, cmds []render.Command) {
	if dst == nil {
		return
	}
	for i := range cmds {
		p.paint(dst, &cmds[i])
	}
}

func (p *Painter) paint(dst *ebiten.Image, c *render.Command) {
	switch c.Op {
	case render.OpClear:
		dst.Fill(c.Color)
	case render.OpGlow:
		for _, step := range render.GlowSteps(c.Radius, c.Color.A, glowSteps) {
			clr := color.NRGBA{R: c.Color.R, G: c.Color.G, B: c.Color.B, A: step.Alpha}
			vector.DrawFilledCircle(dst, float32(c.X), float32(c.Y), float32(step.Radius), clr, p.antialias)
		}
	case render.OpPolyline:
		for i := 1; i < len(c.Points); i++ {
			a, b := c.Points[i-1], c.Points[i]
			vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(c.Width), c.Color, p.antialias)
		}
	case render.OpDashed:
		for _, s := range render.Dashes(c.Points, c.Dash, c.Gap, c.DashOffset) {
			vector.StrokeLine(dst, float32(s.From.X), float32(s.From.Y), float32(s.To.X), float32(s.To.Y), float32(c.Width), c.Color, p.antialias)
		}
	case render.OpCircle:
		vector.DrawFilledCircle(dst, float32(c.X), float32(c.Y), float32(c.Radius), c.Color, p.antialias)
	case render.OpRing:
		vector.StrokeCircle(dst, float32(c.X), float32(c.Y), float32(c.Radius), float32(c.Width), c.Color, p.antialias)
	case render.OpRect:
		if c.W <= 0 || c.H <= 0 {
			return
		}
		vector.DrawFilledRect(dst, float32(c.X), float32(c.Y), float32(c.W), float32(c.H), c.Color, p.antialias)
	case render.OpText:
		text.Draw(dst, c.Text, p.face, int(c.X), int(c.Y), c.Color)
	}
}
