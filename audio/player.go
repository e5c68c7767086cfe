package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"

	"github.com/olivierh59500/quantum-field-go/sim"
)

// Config controls the sound capability
type Config struct {
	Enabled    bool
	Volume     float64 // Master volume 0.0-1.0
	SampleRate int
}

// DefaultConfig enables sound at moderate volume
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Volume:     0.6,
		SampleRate: 44100,
	}
}

// Player implements sim.Feedback on top of the beep speaker. Requests are
// fire-and-forget: before Init, while muted, or after a failed Init they
// are dropped.
type Player struct {
	mu          sync.Mutex
	cfg         Config
	sr          beep.SampleRate
	mixer       *beep.Mixer
	initialized bool

	muted   atomic.Bool
	played  atomic.Uint64
	haptics atomic.Uint64
}

var _ sim.Feedback = (*Player)(nil)

// NewConfig is DefaultConfig with the user-facing switches applied
func NewConfig(enabled bool, volume float64) Config {
	cfg := DefaultConfig()
	cfg.Enabled = enabled
	cfg.Volume = volume
	return cfg
}

// NewPlayer creates an uninitialized player
func NewPlayer(cfg Config) *Player {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultConfig().SampleRate
	}
	cfg.Volume = clampVolume(cfg.Volume)
	p := &Player{
		cfg:   cfg,
		sr:    beep.SampleRate(cfg.SampleRate),
		mixer: &beep.Mixer{},
	}
	p.muted.Store(!cfg.Enabled)
	return p
}

// Init opens the audio device. On failure the player stays silent and the
// error is returned for logging only.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.sr, p.sr.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	logrus.Debugf("audio: speaker ready at %d Hz", p.cfg.SampleRate)
	return nil
}

// PlaySound queues the tone for kind
func (p *Player) PlaySound(kind sim.SoundKind) {
	if p.muted.Load() {
		return
	}
	p.mu.Lock()
	ready, volume := p.initialized, p.cfg.Volume
	p.mu.Unlock()
	if !ready {
		return
	}

	s := Streamer(kind, p.sr, volume)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	p.played.Add(1)
}

// TriggerHaptic has no actuator on desktop; requests are counted and traced
func (p *Player) TriggerHaptic() {
	p.haptics.Add(1)
	logrus.Trace("audio: haptic pulse requested")
}

// ToggleMute flips mute, returns true if sound is now audible
func (p *Player) ToggleMute() bool {
	muted := !p.muted.Load()
	p.muted.Store(muted)
	return !muted
}

// Volume returns the master volume (0.0-1.0)
func (p *Player) Volume() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cfg.Volume
}

// SetVolume updates master volume (0.0-1.0)
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	p.cfg.Volume = clampVolume(v)
	p.mu.Unlock()
}

// Stats returns sounds queued and haptic pulses requested
func (p *Player) Stats() (played, haptics uint64) {
	return p.played.Load(), p.haptics.Load()
}

// Close silences everything still playing
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
