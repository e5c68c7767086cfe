package sim

import (
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"
)

// Perlin parameters for particle drift
const (
	perlinAlpha  = 2.0
	perlinBeta   = 2.0
	perlinOctave = 3
	driftScale   = 18.0 // Pixels of noise displacement
	driftRadius  = 0.5  // Noise-space radius of the drift loop
	driftYOffset = 17.3 // Decorrelates the y drift from x
)

// ResonanceNode is a fixed point of the background lattice. Only its
// rendered intensity varies over time.
type ResonanceNode struct {
	X, Y      float64
	Intensity float64 // Baseline in [0.2, 0.5)
	Phase     float64
}

// Field owns the resonance lattice and the particle overlay paths. The
// lattice is generated once by NewField and never mutated.
type Field struct {
	width, height float64
	spacing       float64
	nodes         []ResonanceNode
	noise         *perlin.Perlin
}

// NewField generates the lattice over width x height at the given spacing.
// Columns and rows are floor(width/spacing) and floor(height/spacing).
func NewField(width, height, spacing float64, rng *rand.Rand) *Field {
	if spacing <= 0 {
		spacing = NodeSpacing
	}
	cols := int(width / spacing)
	rows := int(height / spacing)

	f := &Field{
		width:   width,
		height:  height,
		spacing: spacing,
		nodes:   make([]ResonanceNode, 0, cols*rows),
		noise:   perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctave, rng.Int63()),
	}
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			f.nodes = append(f.nodes, ResonanceNode{
				X:         float64(c) * spacing,
				Y:         float64(r) * spacing,
				Intensity: MinNodeIntensity + rng.Float64()*NodeIntensitySpan,
				Phase:     rng.Float64() * 2 * math.Pi,
			})
		}
	}
	return f
}

// Nodes returns the lattice. Callers must treat it as read-only.
func (f *Field) Nodes() []ResonanceNode { return f.nodes }

// Sample returns the rendered intensity of node at time t scaled by the
// field intensity slider.
func Sample(node ResonanceNode, t, fieldIntensity float64) float64 {
	return node.Intensity * fieldIntensity * (1 + FieldPulseDepth*math.Sin(FieldPulseRate*t+node.Phase))
}

// ParticlePosition returns where overlay particle index sits at time t.
// Paths are closed Lissajous curves around the canvas center with a small
// Perlin drift; the result depends only on (t, index) and repeats every
// particlePeriod(index).
func (f *Field) ParticlePosition(t float64, index int) (x, y float64) {
	k := float64(index)
	cx, cy := f.width/2, f.height/2
	ax := f.width * (0.2 + 0.25*math.Mod(k*0.37, 1))
	ay := f.height * (0.2 + 0.25*math.Mod(k*0.61, 1))

	// Integer frequency ratios keep the curve closed
	fx := float64(1 + index%3)
	fy := float64(2 + index%4)
	w := particleRate(index)

	x = cx + ax*math.Sin(fx*w*t+k*0.7)
	y = cy + ay*math.Sin(fy*w*t+k*1.3)

	// Noise is sampled on a circle travelled once per period, so the drift
	// closes with the curve
	theta := w * t
	u, v := driftRadius*math.Cos(theta), driftRadius*math.Sin(theta)
	x += driftScale * f.noise.Noise2D(k*0.37+u, v)
	y += driftScale * f.noise.Noise2D(v, k*0.37+driftYOffset+u)
	return x, y
}

// particlePeriod is the simulated time after which particle index returns
// to its starting point.
func particlePeriod(index int) float64 {
	return 2 * math.Pi / particleRate(index)
}

func particleRate(index int) float64 {
	return 0.02 * (1 + 0.1*float64(index%5))
}
