package sim

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Config is the startup configuration of a Simulation.
type Config struct {
	Seed          int64
	Width, Height float64
	Mode          ExperimentMode
	Settings      Settings
	Particles     bool
	Measurement   bool

	// Toggle both sides of a mutual pair together
	SymmetricEntanglement bool
	// Drop a pending teleport when the simulation is paused
	CancelTeleportOnPause bool
}

// DefaultConfig returns an 800x600 session in teleportation mode.
func DefaultConfig() Config {
	return Config{
		Seed:     1,
		Width:    CanvasWidth,
		Height:   CanvasHeight,
		Mode:     ModeTeleportation,
		Settings: DefaultSettings(),
	}
}

// Option customizes a Simulation at construction
type Option func(*Simulation)

// WithFeedback routes sound and haptic requests to f
func WithFeedback(f Feedback) Option {
	return func(s *Simulation) {
		if f != nil {
			s.feedback = f
		}
	}
}

// WithClock replaces the wall clock used for the teleport delay and
// message lifetime
func WithClock(now func() time.Time) Option {
	return func(s *Simulation) {
		if now != nil {
			s.now = now
		}
	}
}

type message struct {
	text   string
	issued time.Time
}

// Simulation aggregates the core components. The host calls Poll and, while
// running, Tick once per frame, then renders Scene.
type Simulation struct {
	cfg Config

	clock    *Clock
	registry *Registry
	field    *Field
	modes    *ModeController
	recorder *Recorder

	settings  Settings
	particles bool

	rng      *PartitionedRNG
	feedback Feedback
	now      func() time.Time
	msg      message
}

// New builds a simulation with a generated field and the two seeded objects.
func New(cfg Config, opts ...Option) *Simulation {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = CanvasWidth, CanvasHeight
	}
	cfg.Settings = cfg.Settings.Normalize()

	s := &Simulation{
		cfg:       cfg,
		clock:     NewClock(BaseTimeStep),
		modes:     NewModeController(cfg.Mode),
		settings:  cfg.Settings,
		particles: cfg.Particles,
		rng:       NewPartitionedRNG(cfg.Seed),
		feedback:  NopFeedback{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.field = NewField(cfg.Width, cfg.Height, NodeSpacing, s.rng.ForSubsystem(SubsystemField))
	s.registry = NewRegistry(s.now)
	s.registry.SetSymmetric(cfg.SymmetricEntanglement)
	s.seedObjects()
	s.recorder = NewRecorder(MaxMeasurements, MeasurementCadence, s.rng.ForSubsystem(SubsystemRecorder))
	s.recorder.SetActive(cfg.Measurement, s.clock.Time())

	logrus.Infof("simulation: seed=%d canvas=%.0fx%.0f nodes=%d mode=%s",
		cfg.Seed, cfg.Width, cfg.Height, len(s.field.Nodes()), s.modes.Mode())
	return s
}

func (s *Simulation) seedObjects() {
	seeds := SeedObjects()
	a, _ := s.registry.Add(seeds[0])
	b, _ := s.registry.Add(seeds[1])
	s.registry.Entangle(a, b)
}

// Tick advances simulated time by one frame and takes a measurement when
// due. Returns false while paused.
func (s *Simulation) Tick() bool {
	if !s.clock.Tick(s.settings.WaveSpeed) {
		return false
	}
	s.recorder.Observe(s.clock.Time(), s.settings.FieldIntensity, s.modes.Mode())
	return true
}

// Poll services wall-clock work that runs regardless of pause: the
// deferred teleport commit. Returns true if the teleport committed.
func (s *Simulation) Poll() bool {
	if !s.registry.Advance() {
		return false
	}
	s.say("Teleportation complete")
	return true
}

// Tap handles a pointer or touch at canvas coordinates. Only teleportation
// mode spawns objects; taps outside the canvas are ignored.
func (s *Simulation) Tap(x, y float64) bool {
	if !s.modes.AcceptsTaps() {
		return false
	}
	if x < 0 || y < 0 || x > s.cfg.Width || y > s.cfg.Height {
		return false
	}
	id := s.registry.Spawn(s.rng.ForSubsystem(SubsystemObjects), x, y)
	logrus.Debugf("simulation: tap at (%.0f, %.0f) spawned object %d", x, y, id)
	s.feedback.PlaySound(SoundSpawn)
	s.feedback.TriggerHaptic()
	return true
}

// AddRandomObject spawns an unentangled object somewhere on the canvas,
// in any mode.
func (s *Simulation) AddRandomObject() ObjectID {
	rng := s.rng.ForSubsystem(SubsystemObjects)
	margin := MaxAmplitude
	x := margin + rng.Float64()*(s.cfg.Width-2*margin)
	y := margin + rng.Float64()*(s.cfg.Height-2*margin)
	id := s.registry.Spawn(rng, x, y)
	s.feedback.PlaySound(SoundSpawn)
	return id
}

// RunExperiment dispatches to the active mode's experiment.
func (s *Simulation) RunExperiment() Outcome {
	mode := s.modes.Mode()
	out := experiments[mode].run(s)
	logrus.Infof("simulation: %s experiment ran=%v: %s", mode, out.Ran, out.Message)
	if out.Message != "" {
		s.say(out.Message)
	}
	if out.Sound != SoundNone {
		s.feedback.PlaySound(out.Sound)
	}
	if out.Haptic {
		s.feedback.TriggerHaptic()
	}
	return out
}

// SetMode switches the experiment mode immediately.
func (s *Simulation) SetMode(m ExperimentMode) bool {
	if !s.modes.SetMode(m) {
		return false
	}
	logrus.Infof("simulation: mode -> %s", m)
	s.feedback.PlaySound(SoundModeSwitch)
	return true
}

// NextMode cycles to the following mode
func (s *Simulation) NextMode() ExperimentMode {
	next := (s.modes.Mode() + 1) % ModeCount
	s.SetMode(next)
	return next
}

// TogglePause flips the running state, returns true if now running.
func (s *Simulation) TogglePause() bool {
	if s.clock.Running() {
		s.Pause()
		return false
	}
	s.Resume()
	return true
}

// Pause stops the clock. A pending teleport still commits unless the
// session was configured with CancelTeleportOnPause.
func (s *Simulation) Pause() {
	s.clock.Pause()
	if s.cfg.CancelTeleportOnPause {
		s.registry.CancelTeleport()
	}
	logrus.Debug("simulation: paused")
}

func (s *Simulation) Resume() {
	s.clock.Resume()
	logrus.Debug("simulation: resumed")
}

// Reset zeroes time, restores the seeded objects, cancels any pending
// teleport and empties the measurement log. Mode, settings and the
// resonance lattice are kept.
func (s *Simulation) Reset() {
	s.clock.Reset()
	s.registry.Clear()
	s.seedObjects()
	s.recorder.Reset(s.clock.Time())
	s.say("Simulation reset")
	logrus.Info("simulation: reset")
}

// Settings returns the current slider values
func (s *Simulation) Settings() Settings { return s.settings }

func (s *Simulation) SetFieldIntensity(v float64) {
	s.settings.FieldIntensity = FieldIntensityRange.Clamp(v)
}

func (s *Simulation) SetWaveSpeed(v float64) {
	s.settings.WaveSpeed = WaveSpeedRange.Clamp(v)
}

func (s *Simulation) SetParticleCount(n int) {
	s.settings.ParticleCount = int(ParticleCountRange.Clamp(float64(n)))
}

func (s *Simulation) SetBarrierHeight(v float64) {
	s.settings.BarrierHeight = BarrierHeightRange.Clamp(v)
}

// SetSelectedFrequency applies the frequency slider to the selected object
func (s *Simulation) SetSelectedFrequency(v float64) bool {
	return s.registry.SetFrequency(s.registry.Selected(), v)
}

// AdjustSelectedFrequency nudges the selected object's frequency by delta
func (s *Simulation) AdjustSelectedFrequency(delta float64) bool {
	o, ok := s.registry.Get(s.registry.Selected())
	if !ok {
		return false
	}
	return s.registry.SetFrequency(o.ID, o.Frequency+delta)
}

// SelectNext moves the selection through the objects in insertion order
func (s *Simulation) SelectNext() ObjectID {
	return s.registry.SelectNext()
}

// ToggleEntangled flips the entanglement flag of id
func (s *Simulation) ToggleEntangled(id ObjectID) bool {
	if !s.registry.ToggleEntangled(id) {
		return false
	}
	s.feedback.PlaySound(SoundToggle)
	return true
}

// ToggleSelectedEntangled flips the flag of the selected object
func (s *Simulation) ToggleSelectedEntangled() bool {
	return s.ToggleEntangled(s.registry.Selected())
}

// EntangleSelectedWithNext pairs the selected object with the one after it
// in insertion order
func (s *Simulation) EntangleSelectedWithNext() bool {
	objs := s.registry.Objects()
	if len(objs) < 2 {
		return false
	}
	sel := s.registry.Selected()
	for i, o := range objs {
		if o.ID == sel {
			partner := objs[(i+1)%len(objs)].ID
			if !s.registry.Entangle(sel, partner) {
				return false
			}
			s.feedback.PlaySound(SoundToggle)
			return true
		}
	}
	return false
}

func (s *Simulation) ToggleParticles() bool {
	s.particles = !s.particles
	return s.particles
}

// SetMeasurement turns measurement mode on or off. Turning it off empties
// the log.
func (s *Simulation) SetMeasurement(on bool) {
	s.recorder.SetActive(on, s.clock.Time())
}

func (s *Simulation) ToggleMeasurement() bool {
	s.SetMeasurement(!s.recorder.Active())
	return s.recorder.Active()
}

// Notify shows text as the feedback message
func (s *Simulation) Notify(text string) { s.say(text) }

func (s *Simulation) say(text string) {
	s.msg = message{text: text, issued: s.now()}
}

// Message returns the current feedback message, empty once it has been on
// screen for MessageLifetime.
func (s *Simulation) Message() string {
	if s.msg.text == "" || s.now().Sub(s.msg.issued) >= MessageLifetime {
		return ""
	}
	return s.msg.text
}

func (s *Simulation) Time() float64 { return s.clock.Time() }

func (s *Simulation) Running() bool { return s.clock.Running() }

func (s *Simulation) Mode() ExperimentMode { return s.modes.Mode() }

func (s *Simulation) Registry() *Registry { return s.registry }

func (s *Simulation) Field() *Field { return s.field }

func (s *Simulation) Recorder() *Recorder { return s.recorder }

// Scene is an immutable snapshot of everything the renderer needs.
type Scene struct {
	Width, Height float64
	Time          float64
	Running       bool
	Mode          ExperimentMode
	Settings      Settings

	Objects  []QuantumObject
	Selected ObjectID

	Field     *Field
	Particles bool

	Measuring    bool
	Measurements []Measurement
	Stats        MeasurementStats

	Message string
}

// Scene captures the current state for one frame.
func (s *Simulation) Scene() Scene {
	log := s.recorder.Log()
	return Scene{
		Width:        s.cfg.Width,
		Height:       s.cfg.Height,
		Time:         s.clock.Time(),
		Running:      s.clock.Running(),
		Mode:         s.modes.Mode(),
		Settings:     s.settings,
		Objects:      s.registry.Objects(),
		Selected:     s.registry.Selected(),
		Field:        s.field,
		Particles:    s.particles,
		Measuring:    s.recorder.Active(),
		Measurements: log,
		Stats:        Summarize(log),
		Message:      s.Message(),
	}
}
