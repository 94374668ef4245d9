package orrery

import (
	stdcolor "image/color"

	"github.com/gogpu/orrery/internal/color"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1]. Components are sRGB-encoded;
// interpolation converts through linear space.
type RGBA struct {
	R, G, B, A float64
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// WithAlpha returns the color with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() stdcolor.Color {
	return stdcolor.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// Scale multiplies the RGB components by s, leaving alpha untouched.
// Used by the lighting pass; the result is clamped on write, not here.
func (c RGBA) Scale(s float64) RGBA {
	return RGBA{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A}
}

// Lerp performs linear interpolation between two colors in linear sRGB
// space. This produces perceptually correct color blending for the
// synthesized gradient textures.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	c1 := color.SRGBToLinearColor(color.ColorF32{
		R: float32(c.R), G: float32(c.G), B: float32(c.B), A: float32(c.A),
	})
	c2 := color.SRGBToLinearColor(color.ColorF32{
		R: float32(other.R), G: float32(other.G), B: float32(other.B), A: float32(other.A),
	})

	t32 := float32(t)
	mixed := color.LinearToSRGBColor(color.ColorF32{
		R: c1.R + t32*(c2.R-c1.R),
		G: c1.G + t32*(c2.G-c1.G),
		B: c1.B + t32*(c2.B-c1.B),
		A: c1.A + t32*(c2.A-c1.A),
	})

	return RGBA{
		R: float64(mixed.R),
		G: float64(mixed.G),
		B: float64(mixed.B),
		A: float64(mixed.A),
	}
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// clamp01 clamps a value to [0, 1] range.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA{}
)
