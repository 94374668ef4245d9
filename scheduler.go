package orrery

import (
	"sync"
	"time"
)

// FrameHandle identifies a scheduled frame callback. The zero handle means
// "none pending".
type FrameHandle uint64

// FrameScheduler is the per-frame callback primitive. It mirrors a display
// refresh driver: at most one frame's worth of work is queued at a time and
// a pending callback can be cancelled synchronously.
//
// The timestamp passed to a callback is in milliseconds since an arbitrary
// monotonic epoch.
type FrameScheduler interface {
	// Schedule queues cb to run at the next frame tick and returns its
	// handle. Scheduling while a callback is already pending replaces it.
	Schedule(cb func(now float64)) FrameHandle

	// Cancel drops the pending callback identified by h, if it is still
	// pending. Cancelling an unknown or already-fired handle is a no-op.
	Cancel(h FrameHandle)
}

// DefaultFrameInterval approximates a 60 Hz display cadence.
const DefaultFrameInterval = time.Second / 60

// TickerScheduler drives frame callbacks from a wall-clock ticker. It is
// the production FrameScheduler for hosts without a display-vsync source.
type TickerScheduler struct {
	mu      sync.Mutex
	nextID  FrameHandle
	pending FrameHandle
	cb      func(now float64)

	ticker *time.Ticker
	done   chan struct{}
	start  time.Time
	once   sync.Once
}

// NewTickerScheduler creates a scheduler firing at the given interval.
// A non-positive interval falls back to DefaultFrameInterval. The ticker
// goroutine starts on first Schedule; call Stop to release it.
func NewTickerScheduler(interval time.Duration) *TickerScheduler {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &TickerScheduler{
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
		start:  time.Now(),
	}
}

// Schedule implements the FrameScheduler interface.
func (s *TickerScheduler) Schedule(cb func(now float64)) FrameHandle {
	s.once.Do(func() { go s.run() })

	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	s.pending = s.nextID
	s.cb = cb
	return s.pending
}

// Cancel implements the FrameScheduler interface.
func (s *TickerScheduler) Cancel(h FrameHandle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == h {
		s.pending = 0
		s.cb = nil
	}
}

// Stop halts the ticker goroutine. The scheduler must not be used after
// Stop. Stop is idempotent.
func (s *TickerScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-s.done:
	default:
		s.ticker.Stop()
		close(s.done)
	}
}

func (s *TickerScheduler) run() {
	for {
		select {
		case <-s.done:
			return
		case <-s.ticker.C:
			s.mu.Lock()
			cb := s.cb
			s.pending = 0
			s.cb = nil
			s.mu.Unlock()

			if cb != nil {
				cb(float64(time.Since(s.start)) / float64(time.Millisecond))
			}
		}
	}
}
