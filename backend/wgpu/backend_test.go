package wgpu

import (
	"testing"

	"github.com/gogpu/orrery"
)

func TestBackendName(t *testing.T) {
	b := &Backend{}
	if b.Name() != BackendName {
		t.Errorf("Name() = %q, want %q", b.Name(), BackendName)
	}
}

func TestBackendRegisters(t *testing.T) {
	names := orrery.RegisteredBackends()

	found := false
	for _, n := range names {
		if n == BackendName {
			found = true
		}
	}
	if !found {
		t.Fatalf("backends = %v, missing %q", names, BackendName)
	}

	// The GPU backend outranks the software fallback.
	if names[0] != BackendName {
		t.Errorf("first backend = %q, want %q", names[0], BackendName)
	}
}

func TestBackendRenderer(t *testing.T) {
	b := &Backend{}
	if b.Renderer() == nil {
		t.Error("Renderer() returned nil")
	}
}

func TestCloseWithoutInit(t *testing.T) {
	b := &Backend{}
	b.Close()
	b.Close()
}

func TestGPUBeforeInit(t *testing.T) {
	b := &Backend{}
	if b.GPU() != nil {
		t.Error("GPU() non-nil before Init")
	}
}

func TestInitProbe(t *testing.T) {
	// The probe needs real GPU drivers; tolerate absence but require the
	// success path to be internally consistent.
	b := &Backend{}
	if err := b.Init(); err != nil {
		t.Skipf("no GPU available: %v", err)
	}
	defer b.Close()

	if b.GPU() == nil {
		t.Error("GPU() nil after successful Init")
	}
	if err := b.Init(); err != nil {
		t.Errorf("second Init() error = %v", err)
	}
}
