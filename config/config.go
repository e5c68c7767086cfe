// Package config loads the YAML run configuration and maps it onto the
// simulation and audio settings.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/olivierh59500/quantum-field-go/sim"
)

// AudioConfig is the audio section of the config file
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// Config represents the full config file. Unknown keys are rejected.
type Config struct {
	Seed        int64   `yaml:"seed"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	WindowScale float64 `yaml:"window_scale"`
	TPS         int     `yaml:"tps"`
	LogLevel    string  `yaml:"log_level"`

	Mode           string  `yaml:"mode"`
	FieldIntensity float64 `yaml:"field_intensity"`
	WaveSpeed      float64 `yaml:"wave_speed"`
	ParticleCount  int     `yaml:"particle_count"`
	BarrierHeight  float64 `yaml:"barrier_height"`
	Particles      bool    `yaml:"particles"`
	Measurement    bool    `yaml:"measurement"`

	SymmetricEntanglement bool `yaml:"symmetric_entanglement"`
	CancelTeleportOnPause bool `yaml:"cancel_teleport_on_pause"`

	Audio AudioConfig `yaml:"audio"`
}

// DefaultConfig mirrors sim.DefaultConfig plus window and audio defaults.
// The audio section matches audio.DefaultConfig. This package must not
// import the audio backend.
func DefaultConfig() Config {
	st := sim.DefaultSettings()
	return Config{
		Seed:           1,
		Width:          sim.CanvasWidth,
		Height:         sim.CanvasHeight,
		WindowScale:    1,
		TPS:            60,
		LogLevel:       "info",
		Mode:           sim.ModeTeleportation.String(),
		FieldIntensity: st.FieldIntensity,
		WaveSpeed:      st.WaveSpeed,
		ParticleCount:  st.ParticleCount,
		BarrierHeight:  st.BarrierHeight,
		Audio:          AudioConfig{Enabled: true, Volume: 0.6},
	}
}

// LoadConfig reads path over the defaults. Missing keys keep their default.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML over the defaults with strict field checking,
// so a misspelled key is an error rather than a silent default.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values that cannot be clamped into something sensible
func (c Config) Validate() error {
	if _, err := sim.ParseMode(c.Mode); err != nil {
		return err
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas must be positive, got %vx%v", c.Width, c.Height)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	return nil
}

// SimConfig converts to the core's configuration. Slider values are
// clamped by sim.New.
func (c Config) SimConfig() sim.Config {
	mode, _ := sim.ParseMode(c.Mode)
	return sim.Config{
		Seed:   c.Seed,
		Width:  c.Width,
		Height: c.Height,
		Mode:   mode,
		Settings: sim.Settings{
			FieldIntensity: c.FieldIntensity,
			WaveSpeed:      c.WaveSpeed,
			ParticleCount:  c.ParticleCount,
			BarrierHeight:  c.BarrierHeight,
		},
		Particles:             c.Particles,
		Measurement:           c.Measurement,
		SymmetricEntanglement: c.SymmetricEntanglement,
		CancelTeleportOnPause: c.CancelTeleportOnPause,
	}
}
