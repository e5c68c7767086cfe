package sim

import "math"

// Range bounds a slider input and snaps values onto its step grid.
type Range struct {
	Min, Max, Step float64
}

// Slider ranges accepted from the control layer
var (
	FieldIntensityRange = Range{Min: 0.1, Max: 1.0, Step: 0.1}
	WaveSpeedRange      = Range{Min: 0.1, Max: 3.0, Step: 0.1}
	ParticleCountRange  = Range{Min: 5, Max: 50, Step: 5}
	BarrierHeightRange  = Range{Min: 10, Max: 100, Step: 5}
	FrequencyRange      = Range{Min: MinFrequency, Max: MaxFrequency, Step: FrequencyStep}
	AmplitudeRange      = Range{Min: MinAmplitude, Max: MaxAmplitude}
)

// Clamp limits v to [Min, Max] and rounds it to the nearest step from Min.
// NaN collapses to Min.
func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) || v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	if r.Step > 0 {
		steps := math.Round((v - r.Min) / r.Step)
		v = r.Min + steps*r.Step
		// Remove float drift so 0.1+0.2 style sums compare cleanly
		v = math.Round(v*1e6) / 1e6
		if v > r.Max {
			v = r.Max
		}
	}
	return v
}

// Settings are the plain-value inputs owned by the control layer.
type Settings struct {
	FieldIntensity float64
	WaveSpeed      float64
	ParticleCount  int
	BarrierHeight  float64
}

// DefaultSettings returns the values the controls start at.
func DefaultSettings() Settings {
	return Settings{
		FieldIntensity: 0.5,
		WaveSpeed:      1.0,
		ParticleCount:  20,
		BarrierHeight:  50,
	}
}

// Normalize returns a copy with every field clamped onto its slider grid.
func (s Settings) Normalize() Settings {
	return Settings{
		FieldIntensity: FieldIntensityRange.Clamp(s.FieldIntensity),
		WaveSpeed:      WaveSpeedRange.Clamp(s.WaveSpeed),
		ParticleCount:  int(ParticleCountRange.Clamp(float64(s.ParticleCount))),
		BarrierHeight:  BarrierHeightRange.Clamp(s.BarrierHeight),
	}
}
