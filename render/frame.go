package render

import (
	"math"

	"github.com/olivierh59500/quantum-field-go/sim"
)

// Frame geometry
const (
	nodeGlowRadius  = 20.0
	particleRadius  = 2.0
	glyphStep       = 2.0
	coreGlowRadius  = 15.0
	teleportOpacity = 0.45
	linkSamples     = 48
	linkWobble      = 20.0 // Peak sideways offset of an entanglement link
	linkDash        = 8.0
	linkGap         = 6.0
)

// builder accumulates the draw-list of one frame
type builder struct {
	cmds  []Command
	layer Layer
}

func (b *builder) add(c Command) {
	c.Layer = b.layer
	b.cmds = append(b.cmds, c)
}

// Frame builds the complete draw-list for scene, back to front: background,
// field, particles, the active mode's overlay, entanglement links, object
// glyphs and the HUD. Identical scenes give identical lists.
func Frame(scene sim.Scene) []Command {
	b := &builder{cmds: make([]Command, 0, 512)}

	b.layer = LayerBackground
	b.add(Command{Op: OpClear, Color: Background})

	b.layer = LayerField
	drawField(b, scene)

	b.layer = LayerParticles
	drawParticles(b, scene)

	b.layer = LayerOverlay
	if scene.Mode.Valid() {
		overlays[scene.Mode](b, scene)
	}

	b.layer = LayerLinks
	for _, link := range sim.MutualLinks(scene.Objects) {
		drawLink(b, link, scene.Time)
	}

	b.layer = LayerObjects
	for _, o := range scene.Objects {
		drawGlyph(b, o, scene.Time, o.ID == scene.Selected)
	}

	b.layer = LayerHUD
	drawHUD(b, scene)

	return b.cmds
}

func drawField(b *builder, scene sim.Scene) {
	if scene.Field == nil {
		return
	}
	for _, node := range scene.Field.Nodes() {
		v := sim.Sample(node, scene.Time, scene.Settings.FieldIntensity)
		b.add(Command{Op: OpGlow, X: node.X, Y: node.Y, Radius: nodeGlowRadius, Color: nrgba(fieldColor, v)})
	}
}

func drawParticles(b *builder, scene sim.Scene) {
	if !scene.Particles || scene.Field == nil {
		return
	}
	n := scene.Settings.ParticleCount
	for i := 0; i < n; i++ {
		x, y := scene.Field.ParticlePosition(scene.Time, i)
		b.add(Command{Op: OpCircle, X: x, Y: y, Radius: particleRadius, Color: hueColor(i, n, 0.8)})
	}
}

// LinkPath samples the entanglement curve from a to b. The curve bows
// sideways by a sine of path progress that drifts with time and is pinned
// to both objects at its ends.
func LinkPath(a, b sim.QuantumObject, t float64) []Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	var nx, ny float64
	if length > 0 {
		nx, ny = -dy/length, dx/length
	}

	pts := make([]Point, linkSamples+1)
	for i := range pts {
		s := float64(i) / linkSamples
		// Tapered so both ends stay on their objects
		off := linkWobble * math.Sin(math.Pi*s) * math.Sin(s*2*math.Pi+0.05*t)
		pts[i] = Point{
			X: a.X + dx*s + nx*off,
			Y: a.Y + dy*s + ny*off,
		}
	}
	return pts
}

func drawLink(b *builder, link sim.Link, t float64) {
	b.add(Command{
		Op:         OpDashed,
		Points:     LinkPath(link.A, link.B, t),
		Width:      2,
		Dash:       linkDash,
		Gap:        linkGap,
		DashOffset: math.Mod(t*2, linkDash+linkGap),
		Color:      nrgba(linkColor, 0.7),
	})
}

// GlyphCurves returns the two orthogonal standing-wave curves of o at time
// t: a horizontal one displaced vertically and a vertical one displaced
// horizontally a quarter period later.
func GlyphCurves(o sim.QuantumObject, t float64) (horizontal, vertical []Point) {
	s1 := math.Sin(o.Frequency*t + o.Phase)
	s2 := math.Sin(o.Frequency*t + o.Phase + math.Pi/2)
	amp := glyphAmplitude(o.Amplitude)
	n := int(2*amp/glyphStep) + 1
	horizontal = make([]Point, 0, n)
	vertical = make([]Point, 0, n)
	for k := 0; k < n; k++ {
		i := -amp + float64(k)*glyphStep
		env := math.Cos(0.1 * i)
		horizontal = append(horizontal, Point{X: o.X + i, Y: o.Y + i*s1*env})
		vertical = append(vertical, Point{X: o.X + i*s2*env, Y: o.Y + i})
	}
	return horizontal, vertical
}

// glyphAmplitude bounds the curve half-length to [0, sim.MaxAmplitude]
func glyphAmplitude(a float64) float64 {
	if math.IsNaN(a) || a < 0 {
		return 0
	}
	return math.Min(a, sim.MaxAmplitude)
}

func drawGlyph(b *builder, o sim.QuantumObject, t float64, selected bool) {
	opacity := 1.0
	if o.Teleporting {
		opacity = teleportOpacity
	}
	base := freeColor
	if o.Entangled {
		base = entangledColor
	}

	h, v := GlyphCurves(o, t)
	b.add(Command{Op: OpPolyline, Points: h, Width: 2, Color: nrgba(base, 0.8*opacity)})
	b.add(Command{Op: OpPolyline, Points: v, Width: 2, Color: nrgba(base, 0.8*opacity)})
	b.add(Command{Op: OpGlow, X: o.X, Y: o.Y, Radius: coreGlowRadius, Color: nrgba(base, opacity)})

	if selected {
		b.add(Command{Op: OpRing, X: o.X, Y: o.Y, Radius: o.Amplitude + 8, Width: 1, Color: nrgba(colorWhite, 0.3*opacity)})
	}
}
