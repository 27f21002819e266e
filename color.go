package scenery

import (
	"fmt"
	"image/color"
	"math"
)

// Color holds linear RGBA components in the range [0, 1].
type Color struct {
	R, G, B, A float64
}

var (
	Transparent = Color{}
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
)

func Gray(t float64) Color {
	return Color{t, t, t, 1}
}

// MakeColor converts a standard library color.
func MakeColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	const d = 0xffff
	return Color{float64(r) / d, float64(g) / d, float64(b) / d, float64(a) / d}
}

// HexColor parses colors of the form "1f2937", "#1f2937", "f27" or "ff2277aa".
func HexColor(x string) Color {
	if len(x) > 0 && x[0] == '#' {
		x = x[1:]
	}
	var r, g, b, a int
	a = 255
	switch len(x) {
	case 3:
		fmt.Sscanf(x, "%1x%1x%1x", &r, &g, &b)
		r = r*16 + r
		g = g*16 + g
		b = b*16 + b
	case 6:
		fmt.Sscanf(x, "%02x%02x%02x", &r, &g, &b)
	case 8:
		fmt.Sscanf(x, "%02x%02x%02x%02x", &r, &g, &b, &a)
	}
	const d = 255
	return Color{float64(r) / d, float64(g) / d, float64(b) / d, float64(a) / d}
}

func (c Color) NRGBA() color.NRGBA {
	r := uint8(math.Max(0, math.Min(255, c.R*255)))
	g := uint8(math.Max(0, math.Min(255, c.G*255)))
	b := uint8(math.Max(0, math.Min(255, c.B*255)))
	a := uint8(math.Max(0, math.Min(255, c.A*255)))
	return color.NRGBA{r, g, b, a}
}

func (a Color) Add(b Color) Color {
	return Color{a.R + b.R, a.G + b.G, a.B + b.B, a.A + b.A}
}

func (a Color) Mul(b Color) Color {
	return Color{a.R * b.R, a.G * b.G, a.B * b.B, a.A * b.A}
}

func (a Color) MulScalar(s float64) Color {
	return Color{a.R * s, a.G * s, a.B * s, a.A * s}
}

func (a Color) DivScalar(s float64) Color {
	return Color{a.R / s, a.G / s, a.B / s, a.A / s}
}

func (a Color) Min(b Color) Color {
	return Color{
		math.Min(a.R, b.R), math.Min(a.G, b.G),
		math.Min(a.B, b.B), math.Min(a.A, b.A)}
}

func (a Color) Lerp(b Color, t float64) Color {
	return a.Add(b.Add(a.MulScalar(-1)).MulScalar(t))
}

// Alpha returns the color with its alpha replaced.
func (a Color) Alpha(alpha float64) Color {
	return Color{a.R, a.G, a.B, alpha}
}
