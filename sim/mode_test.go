package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	for _, m := range Modes() {
		got, err := ParseMode(" " + m.String() + " ")
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	got, err := ParseMode("Tunneling")
	require.NoError(t, err)
	assert.Equal(t, ModeTunneling, got)

	_, err = ParseMode("entanglement")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestModeController_SetMode(t *testing.T) {
	c := NewModeController(ModeInterference)
	assert.Equal(t, ModeInterference, c.Mode())

	assert.False(t, c.SetMode(ModeInterference), "same mode is not a change")
	assert.True(t, c.SetMode(ModeSuperposition))
	assert.Equal(t, ModeSuperposition, c.Mode())

	assert.False(t, c.SetMode(ModeCount))
	assert.False(t, c.SetMode(-1))
	assert.Equal(t, ModeSuperposition, c.Mode())
}

func TestModeController_InvalidInitialFallsBack(t *testing.T) {
	assert.Equal(t, ModeTeleportation, NewModeController(42).Mode())
}

func TestModeController_OnlyTeleportationAcceptsTaps(t *testing.T) {
	c := NewModeController(ModeTeleportation)
	for _, m := range Modes() {
		c.SetMode(m)
		assert.Equal(t, m == ModeTeleportation, c.AcceptsTaps(), m.String())
	}
}

func TestExperimentMode_StringAndDescribe(t *testing.T) {
	assert.Equal(t, "superposition", ModeSuperposition.String())
	assert.Equal(t, "mode(9)", ExperimentMode(9).String())
	for _, m := range Modes() {
		assert.NotEmpty(t, m.Describe())
	}
	assert.Empty(t, ExperimentMode(9).Describe())
}

func TestTunnelingProbability(t *testing.T) {
	assert.InDelta(t, math.Exp(-5), TunnelingProbability(50), 1e-12)
	assert.InDelta(t, 0.0067, TunnelingProbability(50), 1e-4)

	prev := TunnelingProbability(BarrierHeightRange.Min)
	for h := BarrierHeightRange.Min + BarrierHeightRange.Step; h <= BarrierHeightRange.Max; h += BarrierHeightRange.Step {
		p := TunnelingProbability(h)
		assert.Less(t, p, prev, "height %v", h)
		prev = p
	}
}
