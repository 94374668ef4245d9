package orrery

import (
	"math"
	"math/rand"
	"sync"
	"time"
)

// MaxPixelRatio caps the applied device pixel ratio to bound fill-rate
// cost on high-density displays.
const MaxPixelRatio = 2.0

// UnavailableMessage is shown on the fallback panel when the capability
// gate fails.
const UnavailableMessage = "The animated 3D backdrop is not available on this device."

// Backdrop is one solar-backdrop instance. It owns all mutable state —
// viewport, scene, animation driver, frame surface — and is constructed
// once; event handlers operate on the instance, never on package globals.
//
// The capability gate runs inside New. When it fails the backdrop reveals
// the fallback panel and stays permanently inert: Frame returns nil and no
// callbacks are ever scheduled. The host page is unaffected.
type Backdrop struct {
	mu sync.Mutex

	viewport ViewportSignal
	motion   MotionSignal
	panel    FallbackPanel

	backend  RenderBackend
	renderer Renderer

	scene    *Scene
	camera   *Camera
	frame    *Pixmap
	animator *Animator

	sched      FrameScheduler
	ownedSched *TickerScheduler

	pixelRatio float64
	cancels    []func()
	closed     bool
	disabled   bool
}

// New constructs a backdrop. Capability-gate failure is not an error to the
// caller (the component degrades to the fallback panel, per its contract);
// use Available to query the outcome.
func New(opts ...Option) *Backdrop {
	o := backdropOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	if o.viewport == nil {
		o.viewport = FixedViewport(800, 600, 1)
	}
	if o.motion == nil {
		o.motion = NewMotionSwitch(false)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // decorative phases
	}

	b := &Backdrop{
		viewport: o.viewport,
		motion:   o.motion,
		panel:    o.panel,
	}

	// Capability gate: runs exactly once; failure is terminal for the
	// component but not for the host.
	backend, err := acquireBackend(o.backendName)
	if err != nil {
		Logger().Warn("orrery: capability gate failed", "error", err)
		if b.panel != nil {
			b.panel.Reveal(UnavailableMessage)
		}
		b.disabled = true
		return b
	}
	b.backend = backend

	b.renderer = o.renderer
	if b.renderer == nil {
		b.renderer = backend.Renderer()
	}

	if o.scheduler != nil {
		b.sched = o.scheduler
	} else {
		b.ownedSched = NewTickerScheduler(DefaultFrameInterval)
		b.sched = b.ownedSched
	}

	b.scene = BuildScene(o.rng)
	b.applyViewport()
	b.animator = NewAnimator(b.sched, b.onFrame, b.redraw)

	if b.motion.Reduced() {
		// One static frame so the backdrop is never blank: positions
		// evaluated at time zero, then a single draw.
		b.mu.Lock()
		b.scene.Advance(0)
		b.render()
		b.mu.Unlock()
	} else {
		b.animator.Resume()
	}

	b.cancels = append(b.cancels,
		b.motion.OnChange(b.onMotionChange),
		b.viewport.OnResize(b.onResize),
	)

	return b
}

// Available reports whether the capability gate succeeded.
func (b *Backdrop) Available() bool {
	return !b.disabled
}

// Frame returns the current frame surface, or nil when the backdrop is
// disabled. The pixmap is reallocated on resize; hosts should re-fetch it
// per presentation rather than caching it.
func (b *Backdrop) Frame() *Pixmap {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.frame
}

// PixelRatio returns the applied (clamped) device pixel ratio.
func (b *Backdrop) PixelRatio() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pixelRatio
}

// Camera returns the backdrop camera, or nil when disabled.
func (b *Backdrop) Camera() *Camera {
	return b.camera
}

// Scene returns the scene graph, or nil when disabled.
func (b *Backdrop) Scene() *Scene {
	return b.scene
}

// State returns the animation driver state. A disabled backdrop reports
// StatePaused.
func (b *Backdrop) State() AnimatorState {
	if b.animator == nil {
		return StatePaused
	}
	return b.animator.State()
}

// Close tears the backdrop down: subscriptions are cancelled, any pending
// frame callback is dropped, and backend resources are released. Close is
// idempotent.
func (b *Backdrop) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	cancels := b.cancels
	b.cancels = nil
	b.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
	if b.animator != nil {
		b.animator.stop()
	}
	if b.ownedSched != nil {
		b.ownedSched.Stop()
	}
	if b.backend != nil {
		b.backend.Close()
	}
}

// onFrame is the per-frame callback body: update strictly precedes the
// draw call.
func (b *Backdrop) onFrame(now float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.scene.Advance(now)
	b.render()
}

// redraw issues one draw call with the scene's current (frozen) positions.
func (b *Backdrop) redraw() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.render()
}

// render draws into the frame surface. Callers hold b.mu.
func (b *Backdrop) render() {
	if err := b.renderer.Render(b.frame, b.scene, b.camera); err != nil {
		// A failed draw is dropped; the next frame is independent.
		Logger().Warn("orrery: draw failed", "error", err)
	}
}

// onMotionChange pauses or resumes the loop when the reduce-motion
// preference flips. The pause path performs its single synchronous draw
// within this handling step.
func (b *Backdrop) onMotionChange(reduced bool) {
	if reduced {
		b.animator.Pause()
	} else {
		b.animator.Resume()
	}
}

// onResize recomputes the surface and camera projection. When paused, one
// synchronous redraw keeps the frozen frame consistent with the new
// viewport; when running, the next scheduled frame picks the change up.
func (b *Backdrop) onResize() {
	b.mu.Lock()
	b.applyViewport()
	if b.animator.State() == StatePaused {
		b.render()
	}
	w, h, ratio := b.frame.Width(), b.frame.Height(), b.pixelRatio
	b.mu.Unlock()

	Logger().Debug("orrery: viewport resized", "width", w, "height", h, "ratio", ratio)
}

// applyViewport reads the viewport signal, clamps the pixel ratio, resizes
// the frame surface, and refreshes the camera aspect. Callers hold b.mu
// (or own the backdrop exclusively during construction).
func (b *Backdrop) applyViewport() {
	w, h := b.viewport.Size()
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	ratio := b.viewport.PixelRatio()
	if ratio <= 0 {
		ratio = 1
	}
	b.pixelRatio = math.Min(ratio, MaxPixelRatio)

	bufW := int(math.Round(float64(w) * b.pixelRatio))
	bufH := int(math.Round(float64(h) * b.pixelRatio))
	if b.frame == nil || b.frame.Width() != bufW || b.frame.Height() != bufH {
		b.frame = NewPixmap(bufW, bufH)
	}

	aspect := float64(w) / float64(h)
	if b.camera == nil {
		b.camera = NewCamera(aspect)
	} else {
		b.camera.SetAspect(aspect)
	}
}
