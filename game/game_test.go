package game

import (
	"math"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olivierh59500/quantum-field-go/render/canvas"
	"github.com/olivierh59500/quantum-field-go/sim"
)

// fakeInput presses keys and taps for exactly one Update
type fakeInput struct {
	keys map[ebiten.Key]bool
	taps []Tap
}

func (f *fakeInput) JustPressed(key ebiten.Key) bool { return f.keys[key] }

func (f *fakeInput) Taps() []Tap { return f.taps }

func (f *fakeInput) press(keys ...ebiten.Key) {
	f.keys = make(map[ebiten.Key]bool)
	for _, k := range keys {
		f.keys[k] = true
	}
}

func (f *fakeInput) clear() {
	f.keys = nil
	f.taps = nil
}

func newTestGame(t *testing.T) (*Game, *sim.Simulation, *fakeInput, *time.Time) {
	t.Helper()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := sim.New(sim.DefaultConfig(), sim.WithClock(func() time.Time { return now }))
	in := &fakeInput{}
	return New(s, canvas.NewPainter(false), in), s, in, &now
}

func TestGame_UpdateTicksWhileRunning(t *testing.T) {
	g, s, _, _ := newTestGame(t)
	require.NoError(t, g.Update())
	assert.InDelta(t, sim.BaseTimeStep, s.Time(), 1e-12)
	assert.True(t, g.Dirty())
}

func TestGame_SpacePausesAndStopsTime(t *testing.T) {
	g, s, in, _ := newTestGame(t)
	in.press(ebiten.KeySpace)
	g.Update()
	in.clear()
	paused := s.Time()

	g.Draw(nil)
	g.Update()
	g.Update()

	assert.False(t, s.Running())
	assert.Equal(t, paused, s.Time())
	assert.False(t, g.Dirty(), "paused and idle frames are not repainted")
}

func TestGame_TapSpawnsInTeleportationOnly(t *testing.T) {
	g, s, in, _ := newTestGame(t)
	in.taps = []Tap{{X: 300, Y: 250}}
	g.Update()
	assert.Equal(t, 3, s.Registry().Len())

	in.clear()
	in.press(ebiten.KeyDigit3)
	g.Update()
	in.clear()
	in.taps = []Tap{{X: 300, Y: 250}}
	g.Update()
	assert.Equal(t, sim.ModeTunneling, s.Mode())
	assert.Equal(t, 3, s.Registry().Len())
}

func TestGame_PausedTeleportStillCommits(t *testing.T) {
	g, s, in, now := newTestGame(t)
	in.press(ebiten.KeyEnter, ebiten.KeySpace)
	g.Update()
	in.clear()
	g.Draw(nil)
	require.Equal(t, sim.TeleportPending, s.Registry().Phase())

	*now = now.Add(sim.TeleportDelay)
	g.Update()

	assert.Equal(t, sim.TeleportIdle, s.Registry().Phase())
	assert.Equal(t, 550.0, s.Registry().Objects()[0].X)
	assert.True(t, g.Dirty())
}

func TestGame_SliderKeysStepAndClamp(t *testing.T) {
	g, s, in, _ := newTestGame(t)
	for i := 0; i < 30; i++ {
		in.press(ebiten.KeyB, ebiten.KeyBracketRight, ebiten.KeyComma)
		g.Update()
	}
	st := s.Settings()
	assert.Equal(t, sim.BarrierHeightRange.Max, st.BarrierHeight)
	assert.Equal(t, sim.FieldIntensityRange.Max, st.FieldIntensity)
	assert.Equal(t, int(sim.ParticleCountRange.Min), st.ParticleCount)
}

// fakeSound records mute and volume changes
type fakeSound struct {
	muted  bool
	volume float64
}

func (f *fakeSound) ToggleMute() bool {
	f.muted = !f.muted
	return !f.muted
}

func (f *fakeSound) Volume() float64 { return f.volume }

func (f *fakeSound) SetVolume(v float64) { f.volume = math.Max(0, math.Min(1, v)) }

func TestGame_MuteKeyTogglesSoundAndReports(t *testing.T) {
	g, s, in, _ := newTestGame(t)
	snd := &fakeSound{volume: 0.6}
	g.SetSound(snd)

	in.press(ebiten.KeyU)
	g.Update()
	assert.True(t, snd.muted)
	assert.Equal(t, "Sound off", s.Message())

	g.Update()
	assert.False(t, snd.muted)
	assert.Equal(t, "Sound on", s.Message())
}

func TestGame_VolumeKeysStepAndClamp(t *testing.T) {
	g, s, in, _ := newTestGame(t)
	snd := &fakeSound{volume: 0.6}
	g.SetSound(snd)

	in.press(ebiten.KeyDigit0)
	for i := 0; i < 6; i++ {
		g.Update()
	}
	assert.Equal(t, 1.0, snd.volume)
	assert.Equal(t, "Volume 100%", s.Message())

	in.press(ebiten.KeyDigit9)
	g.Update()
	assert.InDelta(t, 0.9, snd.volume, 1e-9)
	assert.Equal(t, "Volume 90%", s.Message())
}

func TestGame_SoundKeysIgnoredWithoutSound(t *testing.T) {
	g, s, in, _ := newTestGame(t)
	in.press(ebiten.KeyU)
	require.NoError(t, g.Update())
	assert.Empty(t, s.Message())
}

func TestGame_Layout(t *testing.T) {
	g, _, _, _ := newTestGame(t)
	w, h := g.Layout(1920, 1080)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)
}
