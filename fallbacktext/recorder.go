package fallbacktext

import "sync"

// Recorder is a FallbackPanel that only records the revealed message.
// Useful for headless hosts that surface the message through their own UI.
type Recorder struct {
	mu      sync.Mutex
	visible bool
	message string
}

// Reveal stores the message and marks the recorder visible.
func (r *Recorder) Reveal(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.visible = true
	r.message = message
}

// Visible reports whether Reveal has been called.
func (r *Recorder) Visible() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.visible
}

// Message returns the revealed message, or "" while hidden.
func (r *Recorder) Message() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.message
}
