package game

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"github.com/olivierh59500/quantum-field-go/sim"
)

// Tap is a pointer or touch press in canvas coordinates
type Tap struct {
	X, Y float64
}

// Input is the subset of device state the game reads each tick
type Input interface {
	JustPressed(key ebiten.Key) bool
	Taps() []Tap
}

// ebitenInput reads the real keyboard, mouse and touch screen
type ebitenInput struct{}

func (ebitenInput) JustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

func (ebitenInput) Taps() []Tap {
	var taps []Tap
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		taps = append(taps, Tap{X: float64(x), Y: float64(y)})
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		taps = append(taps, Tap{X: float64(x), Y: float64(y)})
	}
	return taps
}

// binding maps a key to an action on the simulation
type binding struct {
	key    ebiten.Key
	action func(s *sim.Simulation)
}

var bindings = []binding{
	{ebiten.KeySpace, func(s *sim.Simulation) { s.TogglePause() }},
	{ebiten.KeyEnter, func(s *sim.Simulation) { s.RunExperiment() }},
	{ebiten.KeyDigit1, func(s *sim.Simulation) { s.SetMode(sim.ModeTeleportation) }},
	{ebiten.KeyDigit2, func(s *sim.Simulation) { s.SetMode(sim.ModeInterference) }},
	{ebiten.KeyDigit3, func(s *sim.Simulation) { s.SetMode(sim.ModeTunneling) }},
	{ebiten.KeyDigit4, func(s *sim.Simulation) { s.SetMode(sim.ModeSuperposition) }},
	{ebiten.KeyM, func(s *sim.Simulation) { s.ToggleMeasurement() }},
	{ebiten.KeyP, func(s *sim.Simulation) { s.ToggleParticles() }},
	{ebiten.KeyA, func(s *sim.Simulation) { s.AddRandomObject() }},
	{ebiten.KeyTab, func(s *sim.Simulation) { s.SelectNext() }},
	{ebiten.KeyE, func(s *sim.Simulation) { s.ToggleSelectedEntangled() }},
	{ebiten.KeyL, func(s *sim.Simulation) { s.EntangleSelectedWithNext() }},
	{ebiten.KeyR, func(s *sim.Simulation) { s.Reset() }},
	{ebiten.KeyArrowUp, func(s *sim.Simulation) { s.AdjustSelectedFrequency(sim.FrequencyRange.Step) }},
	{ebiten.KeyArrowDown, func(s *sim.Simulation) { s.AdjustSelectedFrequency(-sim.FrequencyRange.Step) }},
	{ebiten.KeyBracketRight, func(s *sim.Simulation) {
		s.SetFieldIntensity(s.Settings().FieldIntensity + sim.FieldIntensityRange.Step)
	}},
	{ebiten.KeyBracketLeft, func(s *sim.Simulation) {
		s.SetFieldIntensity(s.Settings().FieldIntensity - sim.FieldIntensityRange.Step)
	}},
	{ebiten.KeyEqual, func(s *sim.Simulation) { s.SetWaveSpeed(s.Settings().WaveSpeed + sim.WaveSpeedRange.Step) }},
	{ebiten.KeyMinus, func(s *sim.Simulation) { s.SetWaveSpeed(s.Settings().WaveSpeed - sim.WaveSpeedRange.Step) }},
	{ebiten.KeyPeriod, func(s *sim.Simulation) {
		s.SetParticleCount(s.Settings().ParticleCount + int(sim.ParticleCountRange.Step))
	}},
	{ebiten.KeyComma, func(s *sim.Simulation) {
		s.SetParticleCount(s.Settings().ParticleCount - int(sim.ParticleCountRange.Step))
	}},
	{ebiten.KeyB, func(s *sim.Simulation) { s.SetBarrierHeight(s.Settings().BarrierHeight + sim.BarrierHeightRange.Step) }},
	{ebiten.KeyN, func(s *sim.Simulation) { s.SetBarrierHeight(s.Settings().BarrierHeight - sim.BarrierHeightRange.Step) }},
}

// SoundControl is the part of the audio player driven from the keyboard
type SoundControl interface {
	ToggleMute() bool
	Volume() float64
	SetVolume(v float64)
}

// volumeStep is the change per volume key press
const volumeStep = 0.1

// soundBinding maps a key to a sound action; the returned text is shown
// as the feedback message
type soundBinding struct {
	key    ebiten.Key
	action func(sc SoundControl) string
}

var soundBindings = []soundBinding{
	{ebiten.KeyU, func(sc SoundControl) string {
		if sc.ToggleMute() {
			return "Sound on"
		}
		return "Sound off"
	}},
	{ebiten.KeyDigit0, func(sc SoundControl) string { return nudgeVolume(sc, volumeStep) }},
	{ebiten.KeyDigit9, func(sc SoundControl) string { return nudgeVolume(sc, -volumeStep) }},
}

func nudgeVolume(sc SoundControl, delta float64) string {
	sc.SetVolume(math.Round((sc.Volume()+delta)*10) / 10)
	return fmt.Sprintf("Volume %.0f%%", sc.Volume()*100)
}

// handleInput applies pressed keys and taps, returns true if any fired
func (g *Game) handleInput() bool {
	fired := false
	for _, b := range bindings {
		if g.input.JustPressed(b.key) {
			logrus.Tracef("game: key %s", b.key)
			b.action(g.sim)
			fired = true
		}
	}
	if g.sound != nil {
		for _, b := range soundBindings {
			if g.input.JustPressed(b.key) {
				g.sim.Notify(b.action(g.sound))
				fired = true
			}
		}
	}
	for _, t := range g.input.Taps() {
		if g.sim.Tap(t.X, t.Y) {
			fired = true
		}
	}
	return fired
}
