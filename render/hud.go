package render

import (
	"fmt"

	"github.com/olivierh59500/quantum-field-go/sim"
)

const (
	lineHeight     = 15.0
	panelWidth     = 190.0
	panelRows      = 8 // Most recent log entries listed under the stats
	sparklineWidth = 170.0
	sparklineH     = 30.0
)

// HelpLine lists the keyboard controls
const HelpLine = "1-4 mode enter run space pause tab select e entangle a add p particles m measure r reset u mute 9/0 vol"

func drawHUD(b *builder, scene sim.Scene) {
	status := fmt.Sprintf("%s  t=%.1f", scene.Mode, scene.Time)
	if !scene.Running {
		status += "  [paused]"
	}
	b.add(Command{Op: OpText, X: 12, Y: 20, Text: status, Color: textColor})
	b.add(Command{
		Op: OpText, X: 12, Y: 20 + lineHeight,
		Text: fmt.Sprintf("field %.1f  speed %.1f  particles %d  barrier %.0f",
			scene.Settings.FieldIntensity, scene.Settings.WaveSpeed,
			scene.Settings.ParticleCount, scene.Settings.BarrierHeight),
		Color: dimTextColor,
	})

	if scene.Message != "" {
		b.add(Command{Op: OpText, X: scene.Width/2 - float64(len(scene.Message))*3.5, Y: 60, Text: scene.Message, Color: textColor})
	}

	if scene.Measuring {
		drawMeasurements(b, scene)
	}

	b.add(Command{Op: OpText, X: 12, Y: scene.Height - 10, Text: HelpLine, Color: dimTextColor})
}

func drawMeasurements(b *builder, scene sim.Scene) {
	x := scene.Width - panelWidth
	y := 20.0
	st := scene.Stats

	b.add(Command{Op: OpRect, X: x - 8, Y: y - 14, W: panelWidth, H: lineHeight*(3+panelRows) + sparklineH + 12, Color: nrgba(colorWhite, 0.06)})
	b.add(Command{Op: OpText, X: x, Y: y, Text: fmt.Sprintf("measurements %d/%d", st.Count, sim.MaxMeasurements), Color: textColor})
	y += lineHeight
	b.add(Command{Op: OpText, X: x, Y: y, Text: fmt.Sprintf("mean %.3f  sd %.3f", st.Mean, st.StdDev), Color: dimTextColor})
	y += lineHeight
	b.add(Command{Op: OpText, X: x, Y: y, Text: fmt.Sprintf("min %.3f  max %.3f", st.Min, st.Max), Color: dimTextColor})
	y += 6

	if pts := Sparkline(scene.Measurements, x, y, sparklineWidth, sparklineH); len(pts) > 1 {
		b.add(Command{Op: OpPolyline, Points: pts, Width: 1, Color: nrgba(fieldColor, 0.9)})
	}
	y += sparklineH + lineHeight

	log := scene.Measurements
	if len(log) > panelRows {
		log = log[len(log)-panelRows:]
	}
	for i := len(log) - 1; i >= 0; i-- {
		m := log[i]
		b.add(Command{Op: OpText, X: x, Y: y, Text: fmt.Sprintf("%7.1f  %.3f  %s", m.Timestamp, m.Value, m.Type), Color: dimTextColor})
		y += lineHeight
	}
}

// Sparkline scales the log values into a w x h box at (x, y). Values are
// plotted against their index; the top of the box is the log maximum.
func Sparkline(log []sim.Measurement, x, y, w, h float64) []Point {
	if len(log) == 0 {
		return nil
	}
	maxV := 0.0
	for _, m := range log {
		if m.Value > maxV {
			maxV = m.Value
		}
	}
	if maxV == 0 {
		maxV = 1
	}
	step := 0.0
	if len(log) > 1 {
		step = w / float64(len(log)-1)
	}
	pts := make([]Point, len(log))
	for i, m := range log {
		pts[i] = Point{X: x + float64(i)*step, Y: y + h - h*m.Value/maxV}
	}
	return pts
}
