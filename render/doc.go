// Package render turns a sim.Scene into a draw-list.
//
// Frame is a pure function: it reads the scene, keeps nothing between calls
// and returns the complete list of commands for one frame, back to front.
// Replaying the list onto a surface is the job of render/canvas.
package render
