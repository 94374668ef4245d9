package fallbacktext

import (
	"fmt"
	"image"
	stdcolor "image/color"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Default panel appearance.
const (
	// DefaultFontSize is the message font size in points at 72 DPI.
	DefaultFontSize = 16.0

	fontDPI = 72
)

var (
	// DefaultTextColor is the message color.
	DefaultTextColor = stdcolor.NRGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}

	// DefaultBackground is the panel fill behind the message.
	DefaultBackground = stdcolor.NRGBA{R: 0x10, G: 0x10, B: 0x18, A: 0xFF}
)

// Panel implements orrery.FallbackPanel by rasterizing the message into an
// image. The panel starts hidden; Reveal makes it visible and renders.
//
// Panel is safe for concurrent use.
type Panel struct {
	mu      sync.Mutex
	width   int
	height  int
	face    font.Face
	visible bool
	message string
	img     *image.NRGBA
}

// New creates a hidden panel of the given size using the embedded Go
// Regular face at DefaultFontSize.
func New(width, height int) (*Panel, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("fallbacktext: invalid dimensions %dx%d", width, height)
	}

	parsed, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("fallbacktext: parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    DefaultFontSize,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("fallbacktext: create face: %w", err)
	}

	return &Panel{
		width:  width,
		height: height,
		face:   face,
	}, nil
}

// Reveal makes the panel visible with the given message.
func (p *Panel) Reveal(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.visible = true
	p.message = message
	p.render()
}

// Visible reports whether Reveal has been called.
func (p *Panel) Visible() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visible
}

// Message returns the revealed message, or "" while hidden.
func (p *Panel) Message() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.message
}

// Image returns the rendered panel, or nil while hidden.
func (p *Panel) Image() *image.NRGBA {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.img
}

// Resize changes the panel dimensions and re-renders if visible.
func (p *Panel) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("fallbacktext: invalid dimensions %dx%d", width, height)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.width = width
	p.height = height
	if p.visible {
		p.render()
	}
	return nil
}

// render rasterizes the message centered on the background fill.
// Callers hold p.mu.
func (p *Panel) render() {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(DefaultBackground), image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(DefaultTextColor),
		Face: p.face,
	}

	advance := drawer.MeasureString(p.message)
	metrics := p.face.Metrics()

	x := (fixed.I(p.width) - advance) / 2
	if x < 0 {
		x = 0
	}
	// Center the cap height band vertically.
	y := fixed.I(p.height)/2 + (metrics.Ascent-metrics.Descent)/2

	drawer.Dot = fixed.Point26_6{X: x, Y: y}
	drawer.DrawString(p.message)

	p.img = img
}
