// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package canvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/orrery"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("canvas: canvas is closed")

	// ErrNilBackdrop is returned when a nil Backdrop is passed to New.
	ErrNilBackdrop = errors.New("canvas: nil backdrop")

	// ErrBackdropUnavailable is returned when the backdrop's capability gate
	// failed and there is no frame to present.
	ErrBackdropUnavailable = errors.New("canvas: backdrop unavailable")

	// ErrInvalidRenderer is returned when the draw context provides no
	// gpucontext.TextureCreator.
	ErrInvalidRenderer = errors.New("canvas: dc must provide a gpucontext.TextureCreator")

	// ErrInvalidTexture is returned when the created texture does not
	// implement gpucontext.Texture.
	ErrInvalidTexture = errors.New("canvas: texture must implement gpucontext.Texture")
)

// textureDestroyer matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// Canvas presents a Backdrop's frames through the gogpu texture pipeline.
//
// Canvas is NOT safe for concurrent use. Create one Canvas per goroutine,
// or use external synchronization.
type Canvas struct {
	backdrop   *orrery.Backdrop
	texture    any // Lazy-created texture (*gogpu.Texture)
	oldTexture any // Previous texture awaiting deferred destruction
	texW       int
	texH       int
	closed     bool
}

// New creates a Canvas presenting the given backdrop.
func New(b *orrery.Backdrop) (*Canvas, error) {
	if b == nil {
		return nil, ErrNilBackdrop
	}
	return &Canvas{backdrop: b}, nil
}

// MustNew is like New but panics on error.
func MustNew(b *orrery.Backdrop) *Canvas {
	c, err := New(b)
	if err != nil {
		panic(err)
	}
	return c
}

// Backdrop returns the wrapped backdrop, or nil if the canvas is closed.
func (c *Canvas) Backdrop() *orrery.Backdrop {
	if c.closed {
		return nil
	}
	return c.backdrop
}

// Present uploads the backdrop's current frame and draws it at (0, 0).
//
// The dc parameter should be obtained from gogpu.Context.AsTextureDrawer().
// The animation loop redraws the frame surface on its own schedule; Present
// simply publishes whatever the surface holds at call time.
//
// Returns ErrBackdropUnavailable when the capability gate failed; hosts
// showing a fallback panel need no frame in that case.
func (c *Canvas) Present(dc gpucontext.TextureDrawer) error {
	return c.PresentAt(dc, 0, 0)
}

// PresentAt is Present with an explicit draw position.
func (c *Canvas) PresentAt(dc gpucontext.TextureDrawer, x, y float32) error {
	if c.closed {
		return ErrCanvasClosed
	}

	frame := c.backdrop.Frame()
	if frame == nil {
		return ErrBackdropUnavailable
	}

	// A resize reallocates the frame surface; the texture must follow.
	// The old texture may still be referenced by in-flight GPU command
	// buffers, so destruction is deferred until after the next upload
	// (NewTextureFromRGBA waits for the GPU internally).
	if c.texture != nil && (c.texW != frame.Width() || c.texH != frame.Height()) {
		if c.oldTexture != nil {
			if destroyer, ok := c.oldTexture.(textureDestroyer); ok {
				destroyer.Destroy()
			}
		}
		c.oldTexture = c.texture
		c.texture = nil
	}

	data := frame.Data()

	if c.texture == nil {
		creator := dc.TextureCreator()
		if creator == nil {
			return ErrInvalidRenderer
		}
		tex, err := creator.NewTextureFromRGBA(frame.Width(), frame.Height(), data)
		if err != nil {
			return fmt.Errorf("canvas: NewTextureFromRGBA failed: %w", err)
		}
		c.texture = tex
		c.texW = frame.Width()
		c.texH = frame.Height()

		// GPU is idle after the upload's internal wait; the deferred
		// texture can go now.
		if c.oldTexture != nil {
			if destroyer, ok := c.oldTexture.(textureDestroyer); ok {
				destroyer.Destroy()
			}
			c.oldTexture = nil
		}
	} else if updater, ok := c.texture.(gpucontext.TextureUpdater); ok {
		if err := updater.UpdateData(data); err != nil {
			return fmt.Errorf("canvas: texture update failed: %w", err)
		}
	}

	gpuTex, ok := c.texture.(gpucontext.Texture)
	if !ok {
		return ErrInvalidTexture
	}
	return dc.DrawTexture(gpuTex, x, y)
}

// Texture returns the current GPU texture without presenting.
// Returns nil before the first Present.
func (c *Canvas) Texture() any {
	return c.texture
}

// Close releases the canvas textures. The backdrop itself is not closed;
// its owner remains responsible for it. Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	if c.oldTexture != nil {
		if destroyer, ok := c.oldTexture.(textureDestroyer); ok {
			destroyer.Destroy()
		}
		c.oldTexture = nil
	}
	if c.texture != nil {
		if destroyer, ok := c.texture.(textureDestroyer); ok {
			destroyer.Destroy()
		}
		c.texture = nil
	}
	c.backdrop = nil
	return nil
}
