package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/olivierh59500/quantum-field-go/sim"
)

// Fade applied at both ends of every note to avoid clicks
const fadeDuration = 5 * time.Millisecond

// tone is a short arpeggio of sine notes
type tone struct {
	freqs []float64
	note  time.Duration
	gain  float64
}

var tones = [sim.SoundCount]tone{
	sim.SoundTeleport:      {freqs: []float64{440, 660, 880, 1320}, note: 70 * time.Millisecond, gain: 0.5},
	sim.SoundInterference:  {freqs: []float64{523.25, 659.25}, note: 120 * time.Millisecond, gain: 0.45},
	sim.SoundTunneling:     {freqs: []float64{330, 220}, note: 110 * time.Millisecond, gain: 0.45},
	sim.SoundSuperposition: {freqs: []float64{392, 493.88, 587.33}, note: 90 * time.Millisecond, gain: 0.4},
	sim.SoundSpawn:         {freqs: []float64{880}, note: 50 * time.Millisecond, gain: 0.35},
	sim.SoundModeSwitch:    {freqs: []float64{600, 750}, note: 40 * time.Millisecond, gain: 0.3},
	sim.SoundToggle:        {freqs: []float64{700}, note: 35 * time.Millisecond, gain: 0.3},
}

// Duration returns how long kind plays, zero for SoundNone or unknown kinds
func Duration(kind sim.SoundKind) time.Duration {
	if kind <= sim.SoundNone || kind >= sim.SoundCount {
		return 0
	}
	t := tones[kind]
	return t.note * time.Duration(len(t.freqs))
}

// Streamer builds the finite streamer for kind at master volume in [0,1].
// Returns nil for kinds without a tone.
func Streamer(kind sim.SoundKind, sr beep.SampleRate, volume float64) beep.Streamer {
	if kind <= sim.SoundNone || kind >= sim.SoundCount {
		return nil
	}
	t := tones[kind]

	notes := make([]beep.Streamer, 0, len(t.freqs))
	for _, f := range t.freqs {
		sine, err := generators.SineTone(sr, f)
		if err != nil {
			continue // Above Nyquist for this sample rate
		}
		n := sr.N(t.note)
		notes = append(notes, &fade{s: beep.Take(n, sine), total: n, ramp: sr.N(fadeDuration)})
	}
	if len(notes) == 0 {
		return nil
	}

	gain := t.gain * volume
	vol := &effects.Volume{Streamer: beep.Seq(notes...), Base: 2}
	if gain <= 0 {
		vol.Silent = true
	} else {
		vol.Volume = math.Log2(gain)
	}
	return vol
}

// fade applies a linear ramp to the first and last ramp samples
type fade struct {
	s     beep.Streamer
	pos   int
	total int
	ramp  int
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.s.Stream(samples)
	for i := 0; i < n; i++ {
		g := 1.0
		if f.ramp > 0 {
			if f.pos < f.ramp {
				g = float64(f.pos) / float64(f.ramp)
			} else if rem := f.total - f.pos - 1; rem < f.ramp {
				g = math.Max(0, float64(rem)/float64(f.ramp))
			}
		}
		samples[i][0] *= g
		samples[i][1] *= g
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error {
	return f.s.Err()
}
