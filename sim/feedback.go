package sim

// SoundKind names a sound effect requested from the host
type SoundKind int

const (
	SoundNone SoundKind = iota
	SoundTeleport
	SoundInterference
	SoundTunneling
	SoundSuperposition
	SoundSpawn
	SoundModeSwitch
	SoundToggle
	SoundCount
)

var soundNames = [SoundCount]string{
	SoundNone:          "none",
	SoundTeleport:      "teleport",
	SoundInterference:  "interference",
	SoundTunneling:     "tunneling",
	SoundSuperposition: "superposition",
	SoundSpawn:         "spawn",
	SoundModeSwitch:    "mode-switch",
	SoundToggle:        "toggle",
}

func (k SoundKind) String() string {
	if k < 0 || k >= SoundCount {
		return "unknown"
	}
	return soundNames[k]
}

// Feedback is the fire-and-forget sound and haptic capability supplied by
// the host. Implementations must not block and swallow their own failures.
type Feedback interface {
	PlaySound(kind SoundKind)
	TriggerHaptic()
}

// NopFeedback discards every request
type NopFeedback struct{}

func (NopFeedback) PlaySound(SoundKind) {}

func (NopFeedback) TriggerHaptic() {}
