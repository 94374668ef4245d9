package orrery

import "sync"

// AnimatorState is the animation driver's state.
type AnimatorState uint8

const (
	// StatePaused means no frame callback is pending; the last drawn frame
	// stays visible.
	StatePaused AnimatorState = iota

	// StateRunning means a self-rescheduling frame callback is pending.
	StateRunning
)

// String returns the state name.
func (s AnimatorState) String() string {
	switch s {
	case StatePaused:
		return "paused"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}

// Animator is the two-state animation driver. While running, a frame
// callback is continuously rescheduled; each invocation updates the scene
// for the current time and issues one draw call. While paused, nothing is
// scheduled and the last frame stays consistent with a single evaluated
// position set.
//
// Invariant: at most one frame callback is pending at any time. Pause and
// Resume are idempotent.
type Animator struct {
	mu     sync.Mutex
	sched  FrameScheduler
	frame  func(now float64) // update positions for now, then draw
	redraw func()            // draw current (frozen) positions only
	handle FrameHandle
	state  AnimatorState
}

// NewAnimator creates a paused animator. frame runs the per-frame update
// plus draw; redraw issues a draw without moving anything (used for the
// final frame on pause and for resize while paused).
func NewAnimator(sched FrameScheduler, frame func(now float64), redraw func()) *Animator {
	return &Animator{
		sched:  sched,
		frame:  frame,
		redraw: redraw,
	}
}

// State returns the current driver state.
func (a *Animator) State() AnimatorState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Pending reports whether a frame callback is currently scheduled.
func (a *Animator) Pending() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.handle != 0
}

// Resume transitions paused → running. If a callback is already pending the
// call is a no-op; the loop never queues more than one frame of work.
func (a *Animator) Resume() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state == StateRunning {
		return
	}
	a.state = StateRunning
	if a.handle == 0 {
		a.handle = a.sched.Schedule(a.onFrame)
	}
	Logger().Debug("orrery: animation resumed")
}

// Pause transitions running → paused: the pending callback is cancelled,
// the handle cleared, and one final synchronous draw freezes the current
// positions. Pausing an already-paused animator is a no-op (no extra draw).
func (a *Animator) Pause() {
	a.mu.Lock()
	if a.state == StatePaused {
		a.mu.Unlock()
		return
	}
	a.state = StatePaused
	if a.handle != 0 {
		a.sched.Cancel(a.handle)
		a.handle = 0
	}
	a.mu.Unlock()

	a.redraw()
	Logger().Debug("orrery: animation paused")
}

// stop cancels any pending callback without issuing the pause redraw.
// Used on teardown, where no further frame should appear.
func (a *Animator) stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state = StatePaused
	if a.handle != 0 {
		a.sched.Cancel(a.handle)
		a.handle = 0
	}
}

// onFrame is the self-rescheduling frame callback. The reschedule happens
// before the frame work so cancellation during the draw still targets a
// live handle.
func (a *Animator) onFrame(now float64) {
	a.mu.Lock()
	if a.state != StateRunning {
		// Raced with Pause: the cancel landed after the scheduler fired.
		a.handle = 0
		a.mu.Unlock()
		return
	}
	a.handle = a.sched.Schedule(a.onFrame)
	a.mu.Unlock()

	a.frame(now)
}
