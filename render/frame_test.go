package render

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olivierh59500/quantum-field-go/sim"
)

func newScene(t *testing.T, mutate func(*sim.Config), steps int) (*sim.Simulation, sim.Scene) {
	t.Helper()
	cfg := sim.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := sim.New(cfg, sim.WithClock(func() time.Time { return fixed }))
	for i := 0; i < steps; i++ {
		s.Tick()
	}
	return s, s.Scene()
}

func byLayer(cmds []Command, layer Layer) []Command {
	var out []Command
	for _, c := range cmds {
		if c.Layer == layer {
			out = append(out, c)
		}
	}
	return out
}

func countOp(cmds []Command, op Op) int {
	n := 0
	for _, c := range cmds {
		if c.Op == op {
			n++
		}
	}
	return n
}

func TestFrame_IdenticalScenesGiveIdenticalFrames(t *testing.T) {
	_, scene := newScene(t, func(c *sim.Config) { c.Particles = true; c.Measurement = true }, 250)
	for _, m := range sim.Modes() {
		scene.Mode = m
		assert.Equal(t, Frame(scene), Frame(scene), m.String())
	}
}

func TestFrame_StartsWithClear(t *testing.T) {
	_, scene := newScene(t, nil, 0)
	cmds := Frame(scene)
	require.NotEmpty(t, cmds)
	assert.Equal(t, OpClear, cmds[0].Op)
	assert.Equal(t, Background, cmds[0].Color)
	assert.Equal(t, 1, countOp(cmds, OpClear))
}

func TestFrame_LayersInPaintOrder(t *testing.T) {
	_, scene := newScene(t, func(c *sim.Config) { c.Particles = true }, 10)
	cmds := Frame(scene)
	for i := 1; i < len(cmds); i++ {
		assert.LessOrEqual(t, cmds[i-1].Layer, cmds[i].Layer, "command %d", i)
	}
}

func TestFrame_FieldHasOneGlowPerNode(t *testing.T) {
	_, scene := newScene(t, nil, 3)
	field := byLayer(Frame(scene), LayerField)
	require.Len(t, field, 300)

	node := scene.Field.Nodes()[17]
	want := alpha(sim.Sample(node, scene.Time, scene.Settings.FieldIntensity))
	assert.Equal(t, OpGlow, field[17].Op)
	assert.Equal(t, want, field[17].Color.A)
	assert.Equal(t, node.X, field[17].X)
}

func TestFrame_ParticlesFollowToggleAndCount(t *testing.T) {
	_, scene := newScene(t, nil, 1)
	assert.Empty(t, byLayer(Frame(scene), LayerParticles))

	scene.Particles = true
	scene.Settings.ParticleCount = 35
	parts := byLayer(Frame(scene), LayerParticles)
	require.Len(t, parts, 35)

	x, y := scene.Field.ParticlePosition(scene.Time, 4)
	assert.Equal(t, x, parts[4].X)
	assert.Equal(t, y, parts[4].Y)
}

func TestFrame_LinkDrawnOnlyForMutualPairs(t *testing.T) {
	s, scene := newScene(t, nil, 5)
	links := byLayer(Frame(scene), LayerLinks)
	require.Len(t, links, 1)
	assert.Equal(t, OpDashed, links[0].Op)
	assert.Len(t, links[0].Points, linkSamples+1)

	// One side toggled: reference is one-directional, no link
	s.ToggleSelectedEntangled()
	assert.Empty(t, byLayer(Frame(s.Scene()), LayerLinks))
}

func TestFrame_LinkToMissingPartnerNotDrawn(t *testing.T) {
	_, scene := newScene(t, nil, 0)
	scene.Objects = scene.Objects[:1]
	assert.Empty(t, byLayer(Frame(scene), LayerLinks))
}

func TestLinkPath_EndpointsAndWobble(t *testing.T) {
	a := sim.QuantumObject{X: 100, Y: 100}
	b := sim.QuantumObject{X: 500, Y: 100}
	pts := LinkPath(a, b, 0)

	// Bow peaks at 2·sin²(πs)·cos(πs) ≈ 0.77 of the wobble
	maxOff := 0.0
	for _, p := range pts {
		maxOff = math.Max(maxOff, math.Abs(p.Y-100))
	}
	assert.InDelta(t, 0.77*linkWobble, maxOff, 0.5)

	moved := LinkPath(a, b, 10)
	assert.NotEqual(t, pts[10], moved[10], "curve drifts with time")
}

func TestLinkPath_EndsStayOnObjectsAtAnyTime(t *testing.T) {
	a := sim.QuantumObject{X: 100, Y: 100}
	b := sim.QuantumObject{X: 500, Y: 260}
	for _, tm := range []float64{0, 10, 31.4, 977.3} {
		pts := LinkPath(a, b, tm)
		first, last := pts[0], pts[len(pts)-1]
		assert.InDelta(t, a.X, first.X, 1e-9, "t=%v", tm)
		assert.InDelta(t, a.Y, first.Y, 1e-9, "t=%v", tm)
		assert.InDelta(t, b.X, last.X, 1e-9, "t=%v", tm)
		assert.InDelta(t, b.Y, last.Y, 1e-9, "t=%v", tm)
	}
}

func TestFrame_ObjectGlyphs(t *testing.T) {
	_, scene := newScene(t, nil, 7)
	objs := byLayer(Frame(scene), LayerObjects)

	// Two curves and a core glow per object, plus the selection ring
	assert.Equal(t, 2*len(scene.Objects), countOp(objs, OpPolyline))
	assert.Equal(t, len(scene.Objects), countOp(objs, OpGlow))
	assert.Equal(t, 1, countOp(objs, OpRing))
}

func TestGlyphCurves_PointFormula(t *testing.T) {
	o := sim.QuantumObject{X: 200, Y: 150, Frequency: 2, Phase: 0.3, Amplitude: 40}
	tm := 1.7
	h, v := GlyphCurves(o, tm)
	require.Len(t, h, 41)
	require.Len(t, v, 41)

	// First sample sits at i = -amplitude
	i := -40.0
	wantH := o.Y + i*math.Sin(2*tm+0.3)*math.Cos(0.1*i)
	wantV := o.X + i*math.Sin(2*tm+0.3+math.Pi/2)*math.Cos(0.1*i)
	assert.InDelta(t, 160, h[0].X, 1e-9)
	assert.InDelta(t, wantH, h[0].Y, 1e-9)
	assert.InDelta(t, wantV, v[0].X, 1e-9)
	assert.InDelta(t, 110, v[0].Y, 1e-9)

	// Center sample is undisplaced
	assert.InDelta(t, o.Y, h[20].Y, 1e-9)
}

func TestGlyphCurves_AmplitudeBounded(t *testing.T) {
	for _, amp := range []float64{1e300, math.Inf(1), math.NaN(), -5} {
		o := sim.QuantumObject{X: 200, Y: 150, Frequency: 1, Amplitude: amp}
		var h, v []Point
		require.NotPanics(t, func() { h, v = GlyphCurves(o, 1) }, "amplitude %v", amp)
		assert.LessOrEqual(t, len(h), int(2*sim.MaxAmplitude/glyphStep)+1)
		assert.Equal(t, len(h), len(v))
	}
}

func TestFrame_TeleportingObjectsDimmed(t *testing.T) {
	_, scene := newScene(t, nil, 0)
	normal := byLayer(Frame(scene), LayerObjects)

	scene.Objects[0].Teleporting = true
	dimmed := byLayer(Frame(scene), LayerObjects)

	assert.Less(t, dimmed[0].Color.A, normal[0].Color.A)
	assert.Less(t, dimmed[2].Color.A, normal[2].Color.A)
}

func TestFrame_EntanglementColorsCore(t *testing.T) {
	_, scene := newScene(t, nil, 0)
	scene.Objects[1].Entangled = false
	objs := byLayer(Frame(scene), LayerObjects)

	var glows []Command
	for _, c := range objs {
		if c.Op == OpGlow {
			glows = append(glows, c)
		}
	}
	require.Len(t, glows, 2)
	assert.Equal(t, nrgba(entangledColor, 1), glows[0].Color)
	assert.Equal(t, nrgba(freeColor, 1), glows[1].Color)
}

func TestFrame_HUDShowsPausedAndMessage(t *testing.T) {
	s, _ := newScene(t, func(c *sim.Config) { c.Mode = sim.ModeSuperposition }, 0)
	s.Pause()
	s.RunExperiment()

	texts := hudTexts(Frame(s.Scene()))
	assert.True(t, containsText(texts, "[paused]"))
	assert.True(t, containsText(texts, "Superposition"))
}

func TestFrame_MeasurementPanelOnlyWhenMeasuring(t *testing.T) {
	_, scene := newScene(t, nil, 300)
	assert.False(t, containsText(hudTexts(Frame(scene)), "measurements"))

	_, scene = newScene(t, func(c *sim.Config) { c.Measurement = true }, 300)
	require.NotEmpty(t, scene.Measurements)
	assert.True(t, containsText(hudTexts(Frame(scene)), "measurements"))
}

func TestSparkline(t *testing.T) {
	assert.Nil(t, Sparkline(nil, 0, 0, 100, 10))

	pts := Sparkline([]sim.Measurement{{Value: 0}, {Value: 0.5}, {Value: 1}}, 10, 20, 100, 10)
	require.Len(t, pts, 3)
	assert.Equal(t, Point{10, 30}, pts[0])
	assert.Equal(t, Point{60, 25}, pts[1])
	assert.Equal(t, Point{110, 20}, pts[2])
}

func hudTexts(cmds []Command) []string {
	var out []string
	for _, c := range byLayer(cmds, LayerHUD) {
		if c.Op == OpText {
			out = append(out, c.Text)
		}
	}
	return out
}

func containsText(texts []string, sub string) bool {
	for _, s := range texts {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
