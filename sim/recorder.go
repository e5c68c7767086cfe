package sim

import (
	"math/rand"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Measurement is one sample of the measurement log.
type Measurement struct {
	Timestamp float64
	Value     float64
	Type      ExperimentMode
}

// MeasurementStats summarizes the current log.
type MeasurementStats struct {
	Count    int
	Mean     float64
	StdDev   float64
	Min, Max float64
}

// Recorder keeps a bounded, time-ordered log of samples taken while
// measurement mode is on. Turning it off empties the log.
type Recorder struct {
	active   bool
	capacity int
	cadence  float64
	nextAt   float64
	log      []Measurement
	rng      *rand.Rand
}

// NewRecorder creates an inactive recorder. Non-positive capacity or
// cadence fall back to MaxMeasurements and MeasurementCadence.
func NewRecorder(capacity int, cadence float64, rng *rand.Rand) *Recorder {
	if capacity <= 0 {
		capacity = MaxMeasurements
	}
	if cadence <= 0 {
		cadence = MeasurementCadence
	}
	return &Recorder{
		capacity: capacity,
		cadence:  cadence,
		log:      make([]Measurement, 0, capacity),
		rng:      rng,
	}
}

// SetActive turns sampling on or off. Activation schedules the first sample
// for the next Observe; deactivation clears the log.
func (r *Recorder) SetActive(on bool, now float64) {
	if on == r.active {
		return
	}
	r.active = on
	r.log = r.log[:0]
	r.nextAt = now
}

func (r *Recorder) Active() bool { return r.active }

// Observe samples when simulated time has reached the next cadence point.
// Samples never go backwards in time: a timestamp at or before the last
// entry is skipped. Returns true if a sample was appended.
func (r *Recorder) Observe(now, fieldIntensity float64, mode ExperimentMode) bool {
	if !r.active || now < r.nextAt {
		return false
	}
	if n := len(r.log); n > 0 && now <= r.log[n-1].Timestamp {
		return false
	}
	m := Measurement{
		Timestamp: now,
		Value:     r.rng.Float64() * fieldIntensity,
		Type:      mode,
	}
	if len(r.log) == r.capacity {
		copy(r.log, r.log[1:])
		r.log = r.log[:r.capacity-1]
	}
	r.log = append(r.log, m)
	r.nextAt = now + r.cadence
	logrus.Tracef("recorder: t=%.1f value=%.3f mode=%s", m.Timestamp, m.Value, m.Type)
	return true
}

// Reset clears the log and restarts the cadence from now, staying active.
func (r *Recorder) Reset(now float64) {
	r.log = r.log[:0]
	r.nextAt = now
}

// Log returns a copy of the entries, oldest first.
func (r *Recorder) Log() []Measurement {
	out := make([]Measurement, len(r.log))
	copy(out, r.log)
	return out
}

// Summarize computes count, mean, sample std-dev and range over log values.
func Summarize(log []Measurement) MeasurementStats {
	if len(log) == 0 {
		return MeasurementStats{}
	}
	values := make([]float64, len(log))
	for i, m := range log {
		values[i] = m.Value
	}
	st := MeasurementStats{
		Count: len(values),
		Min:   floats.Min(values),
		Max:   floats.Max(values),
	}
	if len(values) > 1 {
		st.Mean, st.StdDev = stat.MeanStdDev(values, nil)
	} else {
		st.Mean = values[0]
	}
	return st
}
