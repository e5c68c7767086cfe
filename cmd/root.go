package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/olivierh59500/quantum-field-go/audio"
	"github.com/olivierh59500/quantum-field-go/config"
	"github.com/olivierh59500/quantum-field-go/game"
	"github.com/olivierh59500/quantum-field-go/render/canvas"
	"github.com/olivierh59500/quantum-field-go/sim"
)

var (
	// CLI flags
	configPath     string  // Optional YAML config file
	seed           int64   // Seed for the field lattice and spawned objects
	logLevel       string  // Log verbosity level
	mode           string  // Initial experiment mode
	fieldIntensity float64 // Field intensity slider
	waveSpeed      float64 // Wave speed slider
	particleCount  int     // Particle count slider
	barrierHeight  float64 // Barrier height slider
	particles      bool    // Start with the particle overlay on
	measurement    bool    // Start in measurement mode
	windowScale    float64 // Window size relative to the canvas
	tps            int     // Ticks per second
	mute           bool    // Disable sound
	symmetric      bool    // Toggle both sides of an entangled pair
	cancelOnPause  bool    // Cancel a pending teleport on pause
	antialias      bool    // Antialiased vector drawing
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "quantum-field",
	Short: "Interactive quantum field playground",
}

// runCmd opens the window and runs the simulation
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the simulation window",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd.Flags())
		if err != nil {
			return err
		}

		level, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
		}
		logrus.SetLevel(level)

		player := audio.NewPlayer(audio.NewConfig(cfg.Audio.Enabled, cfg.Audio.Volume))
		// Opened even when muted so the mute key can turn sound on
		if err := player.Init(); err != nil {
			logrus.Warnf("audio unavailable, continuing silently: %v", err)
		}
		defer player.Close()

		s := sim.New(cfg.SimConfig(), sim.WithFeedback(player))
		g := game.New(s, canvas.NewPainter(antialias), nil)
		g.SetSound(player)

		if err := game.Run(g, "Quantum Field", cfg.WindowScale, cfg.TPS); err != nil {
			logrus.Fatalf("game loop: %v", err)
		}
		played, haptics := player.Stats()
		logrus.Infof("window closed (%d sounds, %d haptic pulses)", played, haptics)
		return nil
	},
}

// modesCmd lists the experiment modes
var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List experiment modes and what running each does",
	Run: func(cmd *cobra.Command, args []string) {
		for i, m := range sim.Modes() {
			fmt.Fprintf(cmd.OutOrStdout(), "%d  %-14s %s\n", i+1, m, m.Describe())
		}
	},
}

// resolveConfig layers explicitly set flags over the config file over defaults
func resolveConfig(flags *pflag.FlagSet) (config.Config, error) {
	cfg := config.DefaultConfig()
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("log") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("mode") {
		cfg.Mode = mode
	}
	if flags.Changed("field-intensity") {
		cfg.FieldIntensity = fieldIntensity
	}
	if flags.Changed("wave-speed") {
		cfg.WaveSpeed = waveSpeed
	}
	if flags.Changed("particle-count") {
		cfg.ParticleCount = particleCount
	}
	if flags.Changed("barrier-height") {
		cfg.BarrierHeight = barrierHeight
	}
	if flags.Changed("particles") {
		cfg.Particles = particles
	}
	if flags.Changed("measurement") {
		cfg.Measurement = measurement
	}
	if flags.Changed("scale") {
		cfg.WindowScale = windowScale
	}
	if flags.Changed("tps") {
		cfg.TPS = tps
	}
	if flags.Changed("mute") {
		cfg.Audio.Enabled = !mute
	}
	if flags.Changed("symmetric-entanglement") {
		cfg.SymmetricEntanglement = symmetric
	}
	if flags.Changed("cancel-teleport-on-pause") {
		cfg.CancelTeleportOnPause = cancelOnPause
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	d := config.DefaultConfig()

	runCmd.Flags().StringVar(&configPath, "config", "", "YAML config file")
	runCmd.Flags().Int64Var(&seed, "seed", d.Seed, "Seed for the field lattice and spawned objects")
	runCmd.Flags().StringVar(&logLevel, "log", d.LogLevel, "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&mode, "mode", d.Mode, "Initial mode (teleportation, interference, tunneling, superposition)")

	// Sliders
	runCmd.Flags().Float64Var(&fieldIntensity, "field-intensity", d.FieldIntensity, "Field intensity [0.1, 1.0]")
	runCmd.Flags().Float64Var(&waveSpeed, "wave-speed", d.WaveSpeed, "Wave speed [0.1, 3.0]")
	runCmd.Flags().IntVar(&particleCount, "particle-count", d.ParticleCount, "Particle count [5, 50]")
	runCmd.Flags().Float64Var(&barrierHeight, "barrier-height", d.BarrierHeight, "Barrier height [10, 100]")
	runCmd.Flags().BoolVar(&particles, "particles", d.Particles, "Start with the particle overlay on")
	runCmd.Flags().BoolVar(&measurement, "measurement", d.Measurement, "Start in measurement mode")

	// Behaviour
	runCmd.Flags().BoolVar(&symmetric, "symmetric-entanglement", d.SymmetricEntanglement, "Toggle both sides of an entangled pair together")
	runCmd.Flags().BoolVar(&cancelOnPause, "cancel-teleport-on-pause", d.CancelTeleportOnPause, "Cancel a pending teleport when pausing")

	// Window and devices
	runCmd.Flags().Float64Var(&windowScale, "scale", d.WindowScale, "Window size relative to the 800x600 canvas")
	runCmd.Flags().IntVar(&tps, "tps", d.TPS, "Ticks per second")
	runCmd.Flags().BoolVar(&mute, "mute", !d.Audio.Enabled, "Disable sound")
	runCmd.Flags().BoolVar(&antialias, "antialias", true, "Antialiased vector drawing")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(modesCmd)
}
