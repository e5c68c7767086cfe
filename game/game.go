// Package game hosts the simulation inside an ebiten game loop.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/olivierh59500/quantum-field-go/render"
	"github.com/olivierh59500/quantum-field-go/render/canvas"
	"github.com/olivierh59500/quantum-field-go/sim"
)

// Game implements ebiten.Game. Update is the frame scheduler: it polls
// wall-clock work, handles input and ticks the clock while running. Draw
// re-derives the whole frame from the current scene.
type Game struct {
	sim     *sim.Simulation
	painter *canvas.Painter
	input   Input
	sound   SoundControl

	width, height int

	// Paused frames are only repainted after something changed the scene
	dirty       bool
	lastMessage string
}

// New wraps s for ebiten. input may be nil to read the real devices.
func New(s *sim.Simulation, painter *canvas.Painter, input Input) *Game {
	if input == nil {
		input = ebitenInput{}
	}
	scene := s.Scene()
	return &Game{
		sim:     s,
		painter: painter,
		input:   input,
		width:   int(scene.Width),
		height:  int(scene.Height),
		dirty:   true,
	}
}

// SetSound binds the mute and volume keys to sc
func (g *Game) SetSound(sc SoundControl) { g.sound = sc }

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	if g.handleInput() {
		g.dirty = true
	}
	if g.sim.Poll() {
		g.dirty = true
	}
	if g.sim.Tick() {
		g.dirty = true
	}
	if msg := g.sim.Message(); msg != g.lastMessage {
		g.lastMessage = msg
		g.dirty = true
	}
	return nil
}

// Draw is called each frame by Ebitengine. While paused and unchanged the
// previous frame stays on screen.
func (g *Game) Draw(screen *ebiten.Image) {
	if !g.dirty {
		return
	}
	g.painter.Paint(screen, render.Frame(g.sim.Scene()))
	g.dirty = false
}

// Layout returns the logical canvas size; ebiten scales it to the window
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Dirty reports whether the next Draw will repaint
func (g *Game) Dirty() bool { return g.dirty }

// Run configures the window and blocks until it closes
func Run(g *Game, title string, scale float64, tps int) error {
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(float64(g.width)*scale), int(float64(g.height)*scale))
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps)
	// Draw skips unchanged paused frames, so the screen must persist
	ebiten.SetScreenClearedEveryFrame(false)

	logrus.Infof("game: window %dx%d at %d TPS", g.width, g.height, tps)
	return ebiten.RunGame(g)
}
