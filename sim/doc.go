// Package sim provides the simulation core for the quantum field playground.
//
// # Reading Guide
//
//   - clock.go: simulated time, advanced once per running frame
//   - registry.go: quantum objects, entanglement and the deferred teleport
//   - field.go: the resonance lattice and the floating particle overlay
//   - mode.go: the experiment mode state machine and its experiment table
//   - recorder.go: the bounded measurement log
//   - simulation.go: the aggregate driven by the host frame scheduler
//
// Nothing in this package draws. Simulation.Scene returns an immutable
// snapshot that the render package turns into a draw-list.
//
// Thread-safety: NOT thread-safe. Every method must be called from the
// goroutine that runs the frame loop.
package sim
