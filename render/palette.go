package render

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	Background     = color.NRGBA{R: 8, G: 8, B: 24, A: 255}
	fieldColor     = mustHex("#4f7cff")
	entangledColor = mustHex("#ff5fc8")
	freeColor      = mustHex("#5fd3ff")
	linkColor      = mustHex("#c77dff")
	barrierColor   = mustHex("#8a8fa3")
	ghostBase      = mustHex("#9b5de5")
	colorWhite     = mustHex("#ffffff")
	textColor      = color.NRGBA{R: 220, G: 220, B: 235, A: 255}
	dimTextColor   = color.NRGBA{R: 160, G: 160, B: 185, A: 200}
	lowProbColor   = mustHex("#ff3b30")
	highProbColor  = mustHex("#34c759")
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// nrgba converts c with opacity a in [0,1]
func nrgba(c colorful.Color, a float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha(a)}
}

func alpha(a float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, a)) * 255))
}

// ProbabilityColor maps a tunneling probability onto a red-to-green ramp.
// The ramp is logarithmic over the slider's range exp(-10)..exp(-1).
func ProbabilityColor(p float64) color.NRGBA {
	t := 0.0
	if p > 0 {
		t = (math.Log(p) + 10) / 9
	}
	t = math.Max(0, math.Min(1, t))
	return nrgba(lowProbColor.BlendHcl(highProbColor, t), 1)
}

// hueColor returns an evenly spaced hue for index i of n
func hueColor(i, n int, a float64) color.NRGBA {
	if n <= 0 {
		n = 1
	}
	return nrgba(colorful.Hsv(float64(i)*360/float64(n), 0.55, 1), a)
}
