package orrery

import "math/rand"

// Option configures a Backdrop during creation.
// Use functional options to customize Backdrop behavior.
//
// Example:
//
//	// Default: software rendering, fixed 800x600 viewport
//	bd := orrery.New()
//
//	// Custom host wiring
//	bd := orrery.New(
//	    orrery.WithViewport(vp),
//	    orrery.WithMotionSignal(motion),
//	    orrery.WithFallbackPanel(panel),
//	)
type Option func(*backdropOptions)

// backdropOptions holds optional configuration for Backdrop creation.
type backdropOptions struct {
	viewport    ViewportSignal
	motion      MotionSignal
	panel       FallbackPanel
	scheduler   FrameScheduler
	renderer    Renderer
	rng         *rand.Rand
	backendName string
}

// WithViewport sets the viewport signal supplying size, pixel ratio, and
// resize notifications.
func WithViewport(v ViewportSignal) Option {
	return func(o *backdropOptions) {
		o.viewport = v
	}
}

// WithMotionSignal sets the reduce-motion accessibility signal. The
// backdrop starts paused when the preference is active and follows changes
// at runtime.
func WithMotionSignal(m MotionSignal) Option {
	return func(o *backdropOptions) {
		o.motion = m
	}
}

// WithFallbackPanel sets the panel revealed when no rendering backend can
// be acquired.
func WithFallbackPanel(p FallbackPanel) Option {
	return func(o *backdropOptions) {
		o.panel = p
	}
}

// WithScheduler sets a custom frame scheduler. When unset the backdrop owns
// a TickerScheduler at display cadence and stops it on Close.
func WithScheduler(s FrameScheduler) Option {
	return func(o *backdropOptions) {
		o.scheduler = s
	}
}

// WithRenderer overrides the renderer supplied by the acquired backend.
// The capability gate still runs. Use this for dependency injection of
// custom renderers.
func WithRenderer(r Renderer) Option {
	return func(o *backdropOptions) {
		o.renderer = r
	}
}

// WithRand sets the random source used for planet phase offsets. A fixed
// seed makes the starting configuration reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(o *backdropOptions) {
		o.rng = rng
	}
}

// WithBackend restricts backend acquisition to a single named backend
// instead of trying all registered backends in priority order.
func WithBackend(name string) Option {
	return func(o *backdropOptions) {
		o.backendName = name
	}
}
