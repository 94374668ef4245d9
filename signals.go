package orrery

import "sync"

// MotionSignal exposes the host's reduce-motion accessibility preference:
// a boolean query plus a change-notification subscription.
type MotionSignal interface {
	// Reduced reports whether the reduce-motion preference is active.
	Reduced() bool

	// OnChange subscribes to preference changes. The returned cancel
	// function removes the subscription.
	OnChange(fn func(reduced bool)) (cancel func())
}

// ViewportSignal exposes the host's drawing area: current size, pixel
// density, and a resize notification.
type ViewportSignal interface {
	// Size returns the viewport dimensions in logical pixels.
	Size() (width, height int)

	// PixelRatio returns the device pixel ratio (unclamped; the backdrop
	// caps the applied ratio itself).
	PixelRatio() float64

	// OnResize subscribes to viewport changes. The returned cancel
	// function removes the subscription.
	OnResize(fn func()) (cancel func())
}

// FallbackPanel is the element revealed when accelerated rendering is
// unavailable. A nil panel is tolerated; the message is simply not shown.
type FallbackPanel interface {
	// Reveal makes the panel visible with the given explanatory message.
	Reveal(message string)
}

// MotionSwitch is a MotionSignal backed by a mutable flag. Hosts wire their
// platform's accessibility notification to Set.
type MotionSwitch struct {
	mu        sync.Mutex
	reduced   bool
	nextID    int
	listeners map[int]func(bool)
}

// NewMotionSwitch creates a switch with the given initial preference.
func NewMotionSwitch(reduced bool) *MotionSwitch {
	return &MotionSwitch{
		reduced:   reduced,
		listeners: make(map[int]func(bool)),
	}
}

// Reduced implements the MotionSignal interface.
func (m *MotionSwitch) Reduced() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reduced
}

// OnChange implements the MotionSignal interface.
func (m *MotionSwitch) OnChange(fn func(reduced bool)) (cancel func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	id := m.nextID
	m.listeners[id] = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.listeners, id)
	}
}

// Set updates the preference and fires change notifications synchronously
// when the value actually changes.
func (m *MotionSwitch) Set(reduced bool) {
	m.mu.Lock()
	if m.reduced == reduced {
		m.mu.Unlock()
		return
	}
	m.reduced = reduced
	fns := make([]func(bool), 0, len(m.listeners))
	for _, fn := range m.listeners {
		fns = append(fns, fn)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn(reduced)
	}
}

// ViewportState is a ViewportSignal backed by mutable dimensions. Hosts wire
// their window system's resize notification to Set.
type ViewportState struct {
	mu        sync.Mutex
	width     int
	height    int
	ratio     float64
	nextID    int
	listeners map[int]func()
}

// NewViewportState creates a viewport with the given dimensions and pixel
// ratio.
func NewViewportState(width, height int, ratio float64) *ViewportState {
	return &ViewportState{
		width:     width,
		height:    height,
		ratio:     ratio,
		listeners: make(map[int]func()),
	}
}

// FixedViewport returns a viewport signal that never changes. Convenient
// for offscreen rendering and tests.
func FixedViewport(width, height int, ratio float64) *ViewportState {
	return NewViewportState(width, height, ratio)
}

// Size implements the ViewportSignal interface.
func (v *ViewportState) Size() (width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.width, v.height
}

// PixelRatio implements the ViewportSignal interface.
func (v *ViewportState) PixelRatio() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.ratio
}

// OnResize implements the ViewportSignal interface.
func (v *ViewportState) OnResize(fn func()) (cancel func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.nextID++
	id := v.nextID
	v.listeners[id] = fn
	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		delete(v.listeners, id)
	}
}

// Set updates the viewport and fires resize notifications synchronously.
func (v *ViewportState) Set(width, height int, ratio float64) {
	v.mu.Lock()
	v.width, v.height, v.ratio = width, height, ratio
	fns := make([]func(), 0, len(v.listeners))
	for _, fn := range v.listeners {
		fns = append(fns, fn)
	}
	v.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
