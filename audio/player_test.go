package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/olivierh59500/quantum-field-go/sim"
)

func TestPlayer_PlayBeforeInitIsDropped(t *testing.T) {
	p := NewPlayer(DefaultConfig())
	assert.NotPanics(t, func() { p.PlaySound(sim.SoundTeleport) })

	played, _ := p.Stats()
	assert.Zero(t, played)
}

func TestPlayer_TriggerHapticCounts(t *testing.T) {
	p := NewPlayer(DefaultConfig())
	p.TriggerHaptic()
	p.TriggerHaptic()

	_, haptics := p.Stats()
	assert.Equal(t, uint64(2), haptics)
}

func TestPlayer_MuteFollowsConfigAndToggle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	p := NewPlayer(cfg)
	assert.True(t, p.muted.Load())

	assert.True(t, p.ToggleMute(), "audible after toggle")
	assert.False(t, p.muted.Load())
	assert.False(t, p.ToggleMute())
}

func TestNewPlayer_NormalizesConfig(t *testing.T) {
	p := NewPlayer(Config{Enabled: true, Volume: 3})
	assert.Equal(t, 1.0, p.cfg.Volume)
	assert.Equal(t, 44100, p.cfg.SampleRate)

	p.SetVolume(-2)
	assert.Equal(t, 0.0, p.Volume())

	p.SetVolume(0.4)
	assert.Equal(t, 0.4, p.Volume())
}

func TestPlayer_CloseWithoutInit(t *testing.T) {
	p := NewPlayer(DefaultConfig())
	assert.NotPanics(t, p.Close)
}

func TestNewConfig_AppliesSwitchesOverDefaults(t *testing.T) {
	cfg := NewConfig(false, 0.25)
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 0.25, cfg.Volume)
	assert.Equal(t, DefaultConfig().SampleRate, cfg.SampleRate)
}

func TestDefaultConfig_MatchesConfigFileDefaults(t *testing.T) {
	d := DefaultConfig()
	assert.True(t, d.Enabled)
	assert.Equal(t, 0.6, d.Volume)
}
