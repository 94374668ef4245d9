package orrery

import (
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/orrery/internal/color"
)

// Texture synthesis defaults. Planet surface maps are 256px squares; the
// sun uses a larger map because it fills more of the frame.
const (
	DefaultTextureSize = 256
	SunTextureSize     = 512

	// textureAnisotropy is the anisotropic filtering hint applied to
	// synthesized surface maps when a GPU samples them.
	textureAnisotropy = 4
)

// Texture is a synthesized square surface map plus the sampling parameters a
// GPU backend applies when uploading it. Content is always sRGB-encoded;
// there is no legacy-encoding mode.
type Texture struct {
	Pixmap     *Pixmap
	Inner      RGBA // gradient color at the center
	Outer      RGBA // gradient color at the edge
	Format     gputypes.TextureFormat
	ColorSpace color.ColorSpace
	Anisotropy int
}

// RadialTexture synthesizes a square radial-gradient image transitioning
// from inner at the center to outer at the edge. The result is suitable as a
// sphere surface map: mapped onto a ball it reads as center-lit shading.
//
// size is the edge length in pixels; sizes below 1 fall back to
// DefaultTextureSize. Interpolation runs through linear sRGB space.
func RadialTexture(inner, outer RGBA, size int) *Texture {
	if size < 1 {
		size = DefaultTextureSize
	}

	pm := NewPixmap(size, size)
	center := float64(size) / 2
	// The gradient reaches outer exactly at the inscribed circle's edge and
	// pads beyond it, so the square's corners hold the edge color.
	radius := center

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - center
			dy := float64(y) + 0.5 - center
			t := clamp01(math.Sqrt(dx*dx+dy*dy) / radius)
			pm.SetPixel(x, y, inner.Lerp(outer, t))
		}
	}

	return &Texture{
		Pixmap:     pm,
		Inner:      inner,
		Outer:      outer,
		Format:     gputypes.TextureFormatRGBA8Unorm,
		ColorSpace: color.ColorSpaceSRGB,
		Anisotropy: textureAnisotropy,
	}
}

// ColorAt samples the gradient analytically at a normalized radial distance
// t in [0, 1]. The software renderer shades sphere impostors with this
// instead of sampling the rasterized pixmap, which avoids texture filtering
// in the hot path; both produce the same color ramp.
func (tx *Texture) ColorAt(t float64) RGBA {
	return tx.Inner.Lerp(tx.Outer, clamp01(t))
}
