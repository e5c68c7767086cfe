package render

import (
	"fmt"
	"math"

	"github.com/olivierh59500/quantum-field-go/sim"
)

// Double-slit geometry
const (
	SlitBarrierX    = 400.0
	SlitBarrierW    = 8.0
	SlitWidth       = 20.0
	SlitSeparation  = 120.0
	SlitScreenX     = 700.0
	slitWavelength  = 24.0
	slitSampleStep  = 4.0
	slitMaxBarWidth = 60.0
)

// Tunneling geometry
const (
	tunnelBarrierScale = 0.5 // Pixels of barrier width per unit of height
	tunnelBarrierH     = 240.0
	tunnelWaveAmp      = 40.0
)

// Superposition geometry
const (
	ghostCount  = 3
	ghostOrbit  = 110.0
	ghostRadius = 28.0
)

// overlayFunc draws a mode's overlay into the frame
type overlayFunc func(b *builder, scene sim.Scene)

// Exactly one overlay runs per frame, selected by the active mode
var overlays = [sim.ModeCount]overlayFunc{
	sim.ModeTeleportation: drawTeleportation,
	sim.ModeInterference:  drawInterference,
	sim.ModeTunneling:     drawTunneling,
	sim.ModeSuperposition: drawSuperposition,
}

// drawTeleportation marks the two objects a teleport would swap
func drawTeleportation(b *builder, scene sim.Scene) {
	if len(scene.Objects) < 2 {
		return
	}
	pulse := 6 * math.Sin(0.1*scene.Time)
	for _, o := range scene.Objects[:2] {
		a := 0.25
		if o.Teleporting {
			a = 0.6
		}
		b.add(Command{Op: OpRing, X: o.X, Y: o.Y, Radius: o.Amplitude + 16 + pulse, Width: 1.5, Color: nrgba(freeColor, a)})
	}
	b.add(Command{Op: OpText, X: 12, Y: scene.Height - 28, Text: "tap the canvas to create objects", Color: dimTextColor})
}

// SlitCenters returns the vertical centers of the two slits
func SlitCenters(height float64) (upper, lower float64) {
	return height/2 - SlitSeparation/2, height/2 + SlitSeparation/2
}

// InterferenceIntensity is the classical two-slit intensity at screen height
// y: cos^2 of the path phase difference plus a time drift.
func InterferenceIntensity(y, height, t float64) float64 {
	upper, lower := SlitCenters(height)
	dx := SlitScreenX - SlitBarrierX
	d1 := math.Hypot(dx, y-upper)
	d2 := math.Hypot(dx, y-lower)
	phase := math.Pi * (d1 - d2) / slitWavelength
	c := math.Cos(phase + 0.02*t)
	return c * c
}

func drawInterference(b *builder, scene sim.Scene) {
	h := scene.Height
	upper, lower := SlitCenters(h)
	half := SlitWidth / 2
	barrier := nrgba(barrierColor, 0.9)

	// Barrier with two gaps
	b.add(Command{Op: OpRect, X: SlitBarrierX - SlitBarrierW/2, Y: 0, W: SlitBarrierW, H: upper - half, Color: barrier})
	b.add(Command{Op: OpRect, X: SlitBarrierX - SlitBarrierW/2, Y: upper + half, W: SlitBarrierW, H: lower - upper - SlitWidth, Color: barrier})
	b.add(Command{Op: OpRect, X: SlitBarrierX - SlitBarrierW/2, Y: lower + half, W: SlitBarrierW, H: h - lower - half, Color: barrier})

	// Incoming plane wavefronts
	shift := math.Mod(scene.Time*2, slitWavelength)
	for x := 40 + shift; x < SlitBarrierX-SlitBarrierW; x += slitWavelength {
		b.add(Command{Op: OpPolyline, Points: []Point{{x, 40}, {x, h - 40}}, Width: 1, Color: nrgba(fieldColor, 0.25)})
	}

	// Screen and fringe pattern
	b.add(Command{Op: OpPolyline, Points: []Point{{SlitScreenX, 0}, {SlitScreenX, h}}, Width: 1, Color: nrgba(colorWhite, 0.4)})
	for y := 0.0; y < h; y += slitSampleStep {
		in := InterferenceIntensity(y+slitSampleStep/2, h, scene.Time)
		b.add(Command{
			Op:    OpRect,
			X:     SlitScreenX,
			Y:     y,
			W:     in * slitMaxBarWidth,
			H:     slitSampleStep,
			Color: nrgba(entangledColor, 0.2+0.6*in),
		})
	}
}

// BarrierWidth is the drawn width of the tunneling barrier
func BarrierWidth(barrierHeight float64) float64 {
	return barrierHeight * tunnelBarrierScale
}

func drawTunneling(b *builder, scene sim.Scene) {
	w, h := scene.Width, scene.Height
	cy := h / 2
	bw := BarrierWidth(scene.Settings.BarrierHeight)
	left, right := w/2-bw/2, w/2+bw/2
	p := sim.TunnelingProbability(scene.Settings.BarrierHeight)

	b.add(Command{
		Op: OpRect, X: left, Y: cy - tunnelBarrierH/2, W: bw, H: tunnelBarrierH,
		Color: nrgba(barrierColor, 0.3+0.6*scene.Settings.BarrierHeight/sim.BarrierHeightRange.Max),
	})

	// Transmitted amplitude scales with sqrt(p) so the intensity ratio is p
	incident := wave(60, left, cy, tunnelWaveAmp, scene.Time)
	transmitted := wave(right, w-60, cy, tunnelWaveAmp*math.Sqrt(p), scene.Time)
	b.add(Command{Op: OpPolyline, Points: incident, Width: 2, Color: nrgba(freeColor, 0.8)})
	b.add(Command{Op: OpPolyline, Points: transmitted, Width: 2, Color: nrgba(freeColor, 0.8)})

	readout := ProbabilityColor(p)
	b.add(Command{Op: OpRect, X: w/2 - 100, Y: cy + tunnelBarrierH/2 + 20, W: 200 * math.Sqrt(p), H: 8, Color: readout})
	b.add(Command{
		Op: OpText, X: w/2 - 100, Y: cy + tunnelBarrierH/2 + 46,
		Text:  fmt.Sprintf("Transmission: %.2f%%", p*100),
		Color: readout,
	})
}

func wave(x0, x1, cy, amp, t float64) []Point {
	if x1 <= x0 {
		return nil
	}
	pts := make([]Point, 0, int((x1-x0)/4)+2)
	for x := x0; x < x1; x += 4 {
		pts = append(pts, Point{x, cy + amp*math.Sin(0.05*x-0.2*t)})
	}
	return append(pts, Point{x1, cy + amp*math.Sin(0.05*x1-0.2*t)})
}

// GhostPositions returns the ghost state centers around (cx, cy), 120
// degrees apart and rotating with time.
func GhostPositions(cx, cy, t float64) [ghostCount]Point {
	var out [ghostCount]Point
	for k := range out {
		angle := 0.02*t + float64(k)*2*math.Pi/ghostCount
		out[k] = Point{cx + ghostOrbit*math.Cos(angle), cy + ghostOrbit*math.Sin(angle)}
	}
	return out
}

func drawSuperposition(b *builder, scene sim.Scene) {
	cx, cy := scene.Width/2, scene.Height/2
	ghosts := GhostPositions(cx, cy, scene.Time)

	for k, g := range ghosts {
		c := ghostBase.BlendHcl(entangledColor, float64(k)/ghostCount)
		b.add(Command{Op: OpPolyline, Points: []Point{{cx, cy}, g}, Width: 1, Color: nrgba(c, 0.2)})
		b.add(Command{Op: OpGlow, X: g.X, Y: g.Y, Radius: ghostRadius, Color: nrgba(c, 0.35)})
		b.add(Command{Op: OpRing, X: g.X, Y: g.Y, Radius: ghostRadius * 0.6, Width: 1, Color: nrgba(c, 0.5)})
	}

	coherence := 0.35 + 0.1*math.Sin(0.05*scene.Time)
	b.add(Command{Op: OpGlow, X: cx, Y: cy, Radius: 50, Color: nrgba(ghostBase, coherence)})
}
