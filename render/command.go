package render

import (
	"image/color"
	"math"
)

// Op is the kind of a draw command
type Op int

const (
	OpClear    Op = iota // Fill the whole surface with Color
	OpGlow               // Radial gradient: Color at (X,Y) fading to clear at Radius
	OpPolyline           // Stroke Points with Width
	OpDashed             // Stroke Points with a Dash/Gap pattern shifted by DashOffset
	OpCircle             // Filled circle
	OpRing               // Stroked circle
	OpRect               // Filled rectangle X,Y,W,H
	OpText               // Text with its baseline origin at X,Y
)

func (o Op) String() string {
	switch o {
	case OpClear:
		return "clear"
	case OpGlow:
		return "glow"
	case OpPolyline:
		return "polyline"
	case OpDashed:
		return "dashed"
	case OpCircle:
		return "circle"
	case OpRing:
		return "ring"
	case OpRect:
		return "rect"
	case OpText:
		return "text"
	}
	return "unknown"
}

// Layer groups commands by the part of the frame that emitted them
type Layer int

const (
	LayerBackground Layer = iota
	LayerField
	LayerParticles
	LayerOverlay
	LayerLinks
	LayerObjects
	LayerHUD
)

// Point is a canvas coordinate
type Point struct {
	X, Y float64
}

// Command is one entry of a draw-list. Only the fields relevant to Op are set.
type Command struct {
	Op    Op
	Layer Layer
	Color color.NRGBA

	Points []Point

	X, Y   float64
	W, H   float64
	Radius float64
	Width  float64

	Dash, Gap, DashOffset float64

	Text string
}

// Segment is a straight piece of a dashed stroke
type Segment struct {
	From, To Point
}

// Dashes splits a polyline into the visible dash segments of a dash/gap
// pattern. offset shifts the pattern along the path; increasing it moves
// dashes toward the end. A non-positive gap yields the plain polyline.
func Dashes(points []Point, dash, gap, offset float64) []Segment {
	if len(points) < 2 || dash <= 0 {
		return nil
	}
	if gap <= 0 {
		out := make([]Segment, 0, len(points)-1)
		for i := 1; i < len(points); i++ {
			out = append(out, Segment{points[i-1], points[i]})
		}
		return out
	}

	period := dash + gap
	phase := math.Mod(-offset, period)
	if phase < 0 {
		phase += period
	}

	var out []Segment
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		length := math.Hypot(b.X-a.X, b.Y-a.Y)
		if length == 0 {
			continue
		}
		for pos := 0.0; pos < length; {
			var step float64
			if phase < dash {
				step = math.Min(dash-phase, length-pos)
				out = append(out, Segment{lerp(a, b, pos/length), lerp(a, b, (pos+step)/length)})
			} else {
				step = math.Min(period-phase, length-pos)
			}
			pos += step
			phase += step
			if phase >= period {
				phase -= period
			}
		}
	}
	return out
}

// GlowStep is one filled disc of a radial glow approximation
type GlowStep struct {
	Radius float64
	Alpha  uint8
}

// GlowSteps approximates a radial gradient of peak alpha a with n stacked
// discs, outermost first. Overlap makes the center reach roughly a.
func GlowSteps(radius float64, a uint8, n int) []GlowStep {
	if n <= 0 || radius <= 0 || a == 0 {
		return nil
	}
	per := float64(a) / float64(n)
	steps := make([]GlowStep, n)
	for i := range steps {
		steps[i] = GlowStep{
			Radius: radius * float64(n-i) / float64(n),
			Alpha:  uint8(math.Max(1, math.Round(per))),
		}
	}
	return steps
}

func lerp(a, b Point, t float64) Point {
	return Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}
