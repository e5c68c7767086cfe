package sim

import "time"

// Canvas logical surface
const (
	CanvasWidth  = 800.0
	CanvasHeight = 600.0
	NodeSpacing  = 40.0
)

// Clock
const (
	BaseTimeStep = 0.1 // Simulated time units per tick at speed 1.0
)

// Objects
const (
	MinFrequency  = 0.5
	MaxFrequency  = 5.0
	FrequencyStep = 0.1
	MinAmplitude  = 40.0
	MaxAmplitude  = 60.0
	TeleportDelay = 800 * time.Millisecond
)

// Field
const (
	MinNodeIntensity  = 0.2
	NodeIntensitySpan = 0.3 // Baseline intensity lies in [0.2, 0.5)
	FieldPulseRate    = 0.05
	FieldPulseDepth   = 0.3
)

// Measurement
const (
	MeasurementCadence = 10.0 // Simulated time between samples
	MaxMeasurements    = 20
)

// Feedback messages stay on screen for this long
const MessageLifetime = 3 * time.Second
