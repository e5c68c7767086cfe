package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClock_TickWhileRunning_AdvancesByStepTimesSpeed(t *testing.T) {
	for _, speed := range []float64{0.1, 1.0, 2.5, 3.0} {
		c := NewClock(0.25)
		c.Tick(1)
		before := c.Time()

		assert.True(t, c.Tick(speed))
		assert.InDelta(t, before+0.25*speed, c.Time(), 1e-12, "speed %v", speed)
	}
}

func TestClock_TickWhilePaused_LeavesTimeUnchanged(t *testing.T) {
	c := NewClock(BaseTimeStep)
	c.Tick(1)
	c.Pause()

	assert.False(t, c.Tick(2))
	assert.InDelta(t, BaseTimeStep, c.Time(), 1e-12)
}

func TestClock_PauseResume_KeepsTime(t *testing.T) {
	c := NewClock(1)
	c.Tick(1)
	c.Tick(1)
	c.Pause()
	c.Resume()
	c.Tick(1)

	assert.Equal(t, 3.0, c.Time())
	assert.True(t, c.Running())
}

func TestClock_Reset_ZeroesTimeKeepsRunningState(t *testing.T) {
	c := NewClock(1)
	c.Tick(1)
	c.Pause()
	c.Reset()

	assert.Equal(t, 0.0, c.Time())
	assert.False(t, c.Running())
}

func TestClock_NonPositiveStepFallsBackToBase(t *testing.T) {
	c := NewClock(0)
	assert.Equal(t, BaseTimeStep, c.Step())
}

func TestClock_Toggle(t *testing.T) {
	c := NewClock(1)
	assert.False(t, c.Toggle())
	assert.True(t, c.Toggle())
}
