package sim

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ExperimentMode selects the active overlay and RunExperiment behaviour.
type ExperimentMode int

const (
	ModeTeleportation ExperimentMode = iota
	ModeInterference
	ModeTunneling
	ModeSuperposition
	ModeCount
)

// ErrUnknownMode is returned by ParseMode for names outside the mode set
var ErrUnknownMode = errors.New("unknown experiment mode")

var modeNames = [ModeCount]string{
	ModeTeleportation: "teleportation",
	ModeInterference:  "interference",
	ModeTunneling:     "tunneling",
	ModeSuperposition: "superposition",
}

func (m ExperimentMode) String() string {
	if m < 0 || m >= ModeCount {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return modeNames[m]
}

// Valid reports whether m is one of the four modes
func (m ExperimentMode) Valid() bool {
	return m >= 0 && m < ModeCount
}

// ParseMode maps a case-insensitive name to its mode.
func ParseMode(name string) (ExperimentMode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for m, n := range modeNames {
		if n == name {
			return ExperimentMode(m), nil
		}
	}
	return ModeTeleportation, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// Modes returns all modes in selector order
func Modes() []ExperimentMode {
	out := make([]ExperimentMode, ModeCount)
	for i := range out {
		out[i] = ExperimentMode(i)
	}
	return out
}

// Outcome is what running an experiment produced.
type Outcome struct {
	Message string
	Sound   SoundKind
	Haptic  bool
	Ran     bool
}

// experiment is one row of the dispatch table
type experiment struct {
	description string
	acceptsTaps bool
	run         func(s *Simulation) Outcome
}

var experiments = [ModeCount]experiment{
	ModeTeleportation: {
		description: "swap the first two objects after an 800ms transfer; taps spawn objects",
		acceptsTaps: true,
		run: func(s *Simulation) Outcome {
			if !s.registry.Teleport() {
				return Outcome{Message: "Teleportation needs two idle objects"}
			}
			return Outcome{Message: "Quantum teleportation initiated", Sound: SoundTeleport, Haptic: true, Ran: true}
		},
	},
	ModeInterference: {
		description: "enable the particle overlay over a double-slit pattern",
		run: func(s *Simulation) Outcome {
			s.particles = true
			return Outcome{Message: "Interference pattern emerging", Sound: SoundInterference, Ran: true}
		},
	},
	ModeTunneling: {
		description: "report the transmission probability through the barrier",
		run: func(s *Simulation) Outcome {
			p := TunnelingProbability(s.settings.BarrierHeight)
			return Outcome{
				Message: fmt.Sprintf("Tunneling probability: %.2f%%", p*100),
				Sound:   SoundTunneling,
				Ran:     true,
			}
		},
	},
	ModeSuperposition: {
		description: "show three coherent ghost states around a shared center",
		run: func(s *Simulation) Outcome {
			return Outcome{Message: "Superposition: object exists in 3 states at once", Sound: SoundSuperposition, Ran: true}
		},
	},
}

// Describe returns a one-line summary of what RunExperiment does in m
func (m ExperimentMode) Describe() string {
	if !m.Valid() {
		return ""
	}
	return experiments[m].description
}

// ModeController is the four-state experiment selector. Switching carries
// no state between modes.
type ModeController struct {
	mode ExperimentMode
}

// NewModeController starts in initial, or teleportation if initial is invalid.
func NewModeController(initial ExperimentMode) *ModeController {
	if !initial.Valid() {
		initial = ModeTeleportation
	}
	return &ModeController{mode: initial}
}

// SetMode switches immediately. Invalid modes are ignored.
// Returns true if the mode changed.
func (c *ModeController) SetMode(m ExperimentMode) bool {
	if !m.Valid() || m == c.mode {
		return false
	}
	c.mode = m
	return true
}

func (c *ModeController) Mode() ExperimentMode { return c.mode }

// AcceptsTaps reports whether pointer taps spawn objects in the active mode
func (c *ModeController) AcceptsTaps() bool {
	return experiments[c.mode].acceptsTaps
}

// TunnelingProbability is the stylized transmission exp(-height*0.1).
func TunnelingProbability(barrierHeight float64) float64 {
	return math.Exp(-barrierHeight * 0.1)
}
