package orrery

import (
	"errors"
	"testing"
)

// stubBackend is a controllable RenderBackend for registry tests.
type stubBackend struct {
	name    string
	initErr error
	inited  bool
	closed  bool
}

func (b *stubBackend) Name() string { return b.name }

func (b *stubBackend) Init() error {
	if b.initErr != nil {
		return b.initErr
	}
	b.inited = true
	return nil
}

func (b *stubBackend) Close() { b.closed = true }

func (b *stubBackend) Renderer() Renderer { return NewSoftwareRenderer() }

func TestRegisteredBackendsPriorityOrder(t *testing.T) {
	RegisterBackend("test-low", 1, func() RenderBackend { return &stubBackend{name: "test-low"} })
	RegisterBackend("test-high", 500, func() RenderBackend { return &stubBackend{name: "test-high"} })
	defer UnregisterBackend("test-low")
	defer UnregisterBackend("test-high")

	names := RegisteredBackends()
	if len(names) < 3 {
		t.Fatalf("backends = %v, want at least 3", names)
	}
	if names[0] != "test-high" {
		t.Errorf("first backend = %q, want test-high", names[0])
	}
	if names[len(names)-1] != "test-low" {
		t.Errorf("last backend = %q, want test-low", names[len(names)-1])
	}
}

func TestAcquireBackendFallsThrough(t *testing.T) {
	bad := errors.New("probe failed")
	RegisterBackend("test-broken", 999, func() RenderBackend {
		return &stubBackend{name: "test-broken", initErr: bad}
	})
	defer UnregisterBackend("test-broken")

	// The broken high-priority backend is skipped in favor of software.
	b, err := acquireBackend("")
	if err != nil {
		t.Fatalf("acquireBackend error: %v", err)
	}
	if b.Name() != BackendSoftware {
		t.Errorf("acquired %q, want %q", b.Name(), BackendSoftware)
	}
}

func TestAcquireBackendByName(t *testing.T) {
	stub := &stubBackend{name: "test-named"}
	RegisterBackend("test-named", 0, func() RenderBackend { return stub })
	defer UnregisterBackend("test-named")

	b, err := acquireBackend("test-named")
	if err != nil {
		t.Fatalf("acquireBackend error: %v", err)
	}
	if b.Name() != "test-named" {
		t.Errorf("acquired %q, want test-named", b.Name())
	}
	if !stub.inited {
		t.Error("backend not initialized")
	}
}

func TestAcquireBackendReportsInitError(t *testing.T) {
	bad := errors.New("no device")
	RegisterBackend("test-bad", 0, func() RenderBackend {
		return &stubBackend{name: "test-bad", initErr: bad}
	})
	defer UnregisterBackend("test-bad")

	_, err := acquireBackend("test-bad")
	if !errors.Is(err, ErrNoBackend) {
		t.Errorf("error = %v, want ErrNoBackend", err)
	}
	if !errors.Is(err, bad) {
		t.Errorf("error = %v, want wrapped init error", err)
	}
}

func TestAcquireBackendUnknownName(t *testing.T) {
	_, err := acquireBackend("test-nonexistent")
	if !errors.Is(err, ErrNoBackend) {
		t.Errorf("error = %v, want ErrNoBackend", err)
	}
}

func TestSoftwareBackendAlwaysAvailable(t *testing.T) {
	b, err := acquireBackend(BackendSoftware)
	if err != nil {
		t.Fatalf("software backend unavailable: %v", err)
	}
	defer b.Close()

	if b.Renderer() == nil {
		t.Error("software backend has no renderer")
	}
}

func TestRegisterReplacesExisting(t *testing.T) {
	first := &stubBackend{name: "test-dup"}
	second := &stubBackend{name: "test-dup"}
	RegisterBackend("test-dup", 0, func() RenderBackend { return first })
	RegisterBackend("test-dup", 0, func() RenderBackend { return second })
	defer UnregisterBackend("test-dup")

	b, err := acquireBackend("test-dup")
	if err != nil {
		t.Fatal(err)
	}
	if b != RenderBackend(second) {
		t.Error("registration did not replace the previous factory")
	}
}
