package sim

import "time"

// fakeClock is a manually advanced wall clock
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time { return f.t }

func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

// recordingFeedback captures capability requests
type recordingFeedback struct {
	sounds  []SoundKind
	haptics int
}

func (r *recordingFeedback) PlaySound(kind SoundKind) { r.sounds = append(r.sounds, kind) }

func (r *recordingFeedback) TriggerHaptic() { r.haptics++ }
