package sim

import (
	"math"
	"math/rand"
)

// ObjectID identifies a quantum object for its whole lifetime. Zero is never
// assigned and means "no object".
type ObjectID int

// NoObject is the zero ObjectID
const NoObject ObjectID = 0

// QuantumObject is one standing-wave glyph on the canvas.
type QuantumObject struct {
	ID        ObjectID
	X, Y      float64
	Frequency float64 // Hz, clamped to FrequencyRange
	Phase     float64 // Radians
	Amplitude float64 // Pixels

	Entangled     bool
	EntangledWith ObjectID // NoObject when unset
	Teleporting   bool
}

// Link is a mutually entangled pair, A before B in registry order.
type Link struct {
	A, B QuantumObject
}

// RandomObject builds an unentangled object at (x, y) with random
// frequency, phase and amplitude.
func RandomObject(rng *rand.Rand, x, y float64) QuantumObject {
	freq := MinFrequency + rng.Float64()*(MaxFrequency-MinFrequency)
	return QuantumObject{
		X:         x,
		Y:         y,
		Frequency: FrequencyRange.Clamp(freq),
		Phase:     rng.Float64() * 2 * math.Pi,
		Amplitude: MinAmplitude + rng.Float64()*(MaxAmplitude-MinAmplitude),
	}
}

// SeedObjects returns the two objects every session starts with: mutually
// entangled, phases offset by pi.
func SeedObjects() [2]QuantumObject {
	return [2]QuantumObject{
		{X: 150, Y: 200, Frequency: 1.0, Phase: 0, Amplitude: 50},
		{X: 550, Y: 300, Frequency: 1.0, Phase: math.Pi, Amplitude: 50},
	}
}

// MutualLinks returns every pair whose members are both entangled and
// reference each other. One-directional references and references to
// ids missing from objects produce no link.
func MutualLinks(objects []QuantumObject) []Link {
	index := make(map[ObjectID]int, len(objects))
	for i, o := range objects {
		index[o.ID] = i
	}

	var links []Link
	for i, a := range objects {
		if !a.Entangled || a.EntangledWith == NoObject {
			continue
		}
		j, ok := index[a.EntangledWith]
		if !ok || j <= i {
			continue // Missing partner, or pair already emitted from the other side
		}
		b := objects[j]
		if b.Entangled && b.EntangledWith == a.ID {
			links = append(links, Link{A: a, B: b})
		}
	}
	return links
}
