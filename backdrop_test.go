package orrery

import (
	"math"
	"math/rand"
	"testing"
)

// recordingPanel captures Reveal calls.
type recordingPanel struct {
	revealed bool
	message  string
}

func (p *recordingPanel) Reveal(message string) {
	p.revealed = true
	p.message = message
}

// countingRenderer counts draw calls.
type countingRenderer struct {
	draws int
}

func (r *countingRenderer) Render(target *Pixmap, scene *Scene, camera *Camera) error {
	r.draws++
	return nil
}

func newTestBackdrop(opts ...Option) *Backdrop {
	base := []Option{
		WithScheduler(&fakeScheduler{}),
		WithRenderer(&countingRenderer{}),
		WithRand(rand.New(rand.NewSource(1))),
	}
	return New(append(base, opts...)...)
}

func TestNewBackdropDefaults(t *testing.T) {
	b := newTestBackdrop()
	defer b.Close()

	if !b.Available() {
		t.Fatal("backdrop unavailable with software backend registered")
	}
	if b.Scene() == nil {
		t.Fatal("nil scene")
	}
	if len(b.Scene().Planets) != 8 {
		t.Errorf("planets = %d, want 8", len(b.Scene().Planets))
	}
	if b.State() != StateRunning {
		t.Errorf("state = %v, want %v", b.State(), StateRunning)
	}

	frame := b.Frame()
	if frame == nil {
		t.Fatal("nil frame")
	}
	if frame.Width() != 800 || frame.Height() != 600 {
		t.Errorf("frame %dx%d, want 800x600", frame.Width(), frame.Height())
	}
}

func TestGateFailureRevealsPanel(t *testing.T) {
	UnregisterBackend(BackendSoftware)
	defer RegisterBackend(BackendSoftware, 10, func() RenderBackend {
		return &softwareBackend{}
	})

	panel := &recordingPanel{}
	renderer := &countingRenderer{}
	sched := &fakeScheduler{}
	b := New(
		WithFallbackPanel(panel),
		WithRenderer(renderer),
		WithScheduler(sched),
	)
	defer b.Close()

	if b.Available() {
		t.Fatal("backdrop available with empty registry")
	}
	if !panel.revealed {
		t.Fatal("panel not revealed on gate failure")
	}
	if panel.message != UnavailableMessage {
		t.Errorf("panel message = %q, want %q", panel.message, UnavailableMessage)
	}

	// A disabled backdrop does no work at all.
	if b.Frame() != nil {
		t.Error("disabled backdrop has a frame")
	}
	if b.Scene() != nil {
		t.Error("disabled backdrop has a scene")
	}
	if b.State() != StatePaused {
		t.Errorf("disabled state = %v, want %v", b.State(), StatePaused)
	}
	if sched.scheduled != 0 {
		t.Errorf("disabled backdrop scheduled %d callbacks", sched.scheduled)
	}
	if renderer.draws != 0 {
		t.Errorf("disabled backdrop drew %d frames", renderer.draws)
	}
}

func TestGateFailureWithoutPanel(t *testing.T) {
	UnregisterBackend(BackendSoftware)
	defer RegisterBackend(BackendSoftware, 10, func() RenderBackend {
		return &softwareBackend{}
	})

	// No panel wired: the failure is still quiet.
	b := New(WithScheduler(&fakeScheduler{}))
	defer b.Close()

	if b.Available() {
		t.Fatal("backdrop available with empty registry")
	}
}

func TestPixelRatioClamped(t *testing.T) {
	tests := []struct {
		name  string
		ratio float64
		want  float64
	}{
		{"standard", 1, 1},
		{"retina", 2, 2},
		{"above cap", 3, 2},
		{"fractional", 1.5, 1.5},
		{"invalid", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBackdrop(WithViewport(FixedViewport(800, 600, tt.ratio)))
			defer b.Close()

			if got := b.PixelRatio(); got != tt.want {
				t.Errorf("PixelRatio() = %v, want %v", got, tt.want)
			}
			frame := b.Frame()
			wantW := int(math.Round(800 * tt.want))
			if frame.Width() != wantW {
				t.Errorf("frame width = %d, want %d", frame.Width(), wantW)
			}
		})
	}
}

func TestReducedMotionStartsPausedWithOneFrame(t *testing.T) {
	renderer := &countingRenderer{}
	sched := &fakeScheduler{}
	b := New(
		WithMotionSignal(NewMotionSwitch(true)),
		WithRenderer(renderer),
		WithScheduler(sched),
	)
	defer b.Close()

	if b.State() != StatePaused {
		t.Errorf("state = %v with reduce-motion, want %v", b.State(), StatePaused)
	}
	if renderer.draws != 1 {
		t.Errorf("draws = %d, want exactly 1 static frame", renderer.draws)
	}
	if sched.scheduled != 0 {
		t.Errorf("scheduled = %d with reduce-motion, want 0", sched.scheduled)
	}
}

func TestMotionToggle(t *testing.T) {
	motion := NewMotionSwitch(false)
	renderer := &countingRenderer{}
	sched := &fakeScheduler{}
	b := New(
		WithMotionSignal(motion),
		WithRenderer(renderer),
		WithScheduler(sched),
	)
	defer b.Close()

	if b.State() != StateRunning {
		t.Fatalf("state = %v, want %v", b.State(), StateRunning)
	}

	sched.fire(16)
	drawsBefore := renderer.draws

	motion.Set(true)
	if b.State() != StatePaused {
		t.Errorf("state = %v after reduce-motion on, want %v", b.State(), StatePaused)
	}
	// The pause freezes positions with a single draw.
	if renderer.draws != drawsBefore+1 {
		t.Errorf("draws = %d after pause, want %d", renderer.draws, drawsBefore+1)
	}

	// Nothing pending fires while paused.
	sched.fire(32)
	if renderer.draws != drawsBefore+1 {
		t.Errorf("draws = %d while paused, want %d", renderer.draws, drawsBefore+1)
	}

	motion.Set(false)
	if b.State() != StateRunning {
		t.Errorf("state = %v after reduce-motion off, want %v", b.State(), StateRunning)
	}
	sched.fire(48)
	if renderer.draws != drawsBefore+2 {
		t.Errorf("draws = %d after resume frame, want %d", renderer.draws, drawsBefore+2)
	}
}

func TestPauseFreezesPositions(t *testing.T) {
	motion := NewMotionSwitch(false)
	sched := &fakeScheduler{}
	b := New(
		WithMotionSignal(motion),
		WithRenderer(&countingRenderer{}),
		WithScheduler(sched),
		WithRand(nil),
	)
	defer b.Close()

	sched.fire(1000)
	positions := make([]Vec3, len(b.Scene().Planets))
	for i, p := range b.Scene().Planets {
		positions[i] = p.Mesh.Position
	}

	motion.Set(true)
	for i, p := range b.Scene().Planets {
		if !p.Mesh.Position.Approx(positions[i], 1e-9) {
			t.Errorf("planet %d moved on pause: %+v vs %+v", i, p.Mesh.Position, positions[i])
		}
	}
}

func TestResizeReprojects(t *testing.T) {
	vp := NewViewportState(800, 600, 1)
	b := newTestBackdrop(WithViewport(vp))
	defer b.Close()

	if got := b.Camera().Aspect(); math.Abs(got-800.0/600.0) > 1e-12 {
		t.Fatalf("aspect = %v, want %v", got, 800.0/600.0)
	}

	vp.Set(1200, 400, 3)

	frame := b.Frame()
	// Ratio clamps to 2, so the buffer is 2400x800.
	if frame.Width() != 2400 || frame.Height() != 800 {
		t.Errorf("frame %dx%d after resize, want 2400x800", frame.Width(), frame.Height())
	}
	if got := b.PixelRatio(); got != 2 {
		t.Errorf("PixelRatio() = %v after resize, want 2", got)
	}
	if got := b.Camera().Aspect(); math.Abs(got-3.0) > 1e-12 {
		t.Errorf("aspect = %v after resize, want 3", got)
	}
}

func TestResizeWhilePausedRedraws(t *testing.T) {
	vp := NewViewportState(800, 600, 1)
	renderer := &countingRenderer{}
	b := New(
		WithViewport(vp),
		WithMotionSignal(NewMotionSwitch(true)),
		WithRenderer(renderer),
		WithScheduler(&fakeScheduler{}),
	)
	defer b.Close()

	drawsBefore := renderer.draws
	vp.Set(400, 300, 1)

	if renderer.draws != drawsBefore+1 {
		t.Errorf("draws = %d after paused resize, want %d", renderer.draws, drawsBefore+1)
	}
}

func TestResizeZeroDimensionsClamped(t *testing.T) {
	vp := NewViewportState(800, 600, 1)
	b := newTestBackdrop(WithViewport(vp))
	defer b.Close()

	vp.Set(0, 0, 1)

	frame := b.Frame()
	if frame.Width() < 1 || frame.Height() < 1 {
		t.Errorf("frame %dx%d after zero resize, want at least 1x1", frame.Width(), frame.Height())
	}
}

func TestCloseStopsCallbacks(t *testing.T) {
	motion := NewMotionSwitch(false)
	vp := NewViewportState(800, 600, 1)
	renderer := &countingRenderer{}
	sched := &fakeScheduler{}
	b := New(
		WithViewport(vp),
		WithMotionSignal(motion),
		WithRenderer(renderer),
		WithScheduler(sched),
	)

	b.Close()
	b.Close() // idempotent

	draws := renderer.draws
	sched.fire(16)
	motion.Set(true)
	vp.Set(100, 100, 1)

	if renderer.draws != draws {
		t.Errorf("draws = %d after Close, want %d", renderer.draws, draws)
	}
}

func TestWithBackendUnknownName(t *testing.T) {
	panel := &recordingPanel{}
	b := New(
		WithBackend("no-such-backend"),
		WithFallbackPanel(panel),
		WithScheduler(&fakeScheduler{}),
	)
	defer b.Close()

	if b.Available() {
		t.Error("backdrop available with unknown backend name")
	}
	if !panel.revealed {
		t.Error("panel not revealed for unknown backend")
	}
}

func TestPhasesDeterministicWithSeed(t *testing.T) {
	a := newTestBackdrop(WithRand(rand.New(rand.NewSource(42))))
	defer a.Close()
	b := newTestBackdrop(WithRand(rand.New(rand.NewSource(42))))
	defer b.Close()

	for i := range a.Scene().Planets {
		pa, pb := a.Scene().Planets[i].Phase, b.Scene().Planets[i].Phase
		if pa != pb {
			t.Errorf("planet %d phase %v vs %v with same seed", i, pa, pb)
		}
	}
}
