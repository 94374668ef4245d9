package wgpu

import (
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/core"

	"github.com/gogpu/orrery"
)

// BackendName is the registry name of this backend.
const BackendName = "wgpu"

// backendPriority places the GPU backend ahead of the software fallback.
const backendPriority = 100

func init() {
	orrery.RegisterBackend(BackendName, backendPriority, func() orrery.RenderBackend {
		return &Backend{}
	})
}

// Backend probes the GPU stack through wgpu. A successful Init means an
// adapter, device, and queue exist and the present shader compiles; frame
// rasterization then delegates to the software renderer while the GPU
// resources serve presentation.
type Backend struct {
	mu sync.Mutex

	instance *core.Instance
	adapter  core.AdapterID
	device   core.DeviceID
	queue    core.QueueID

	presentShader []byte
	gpuInfo       *GPUInfo
	initialized   bool
}

// Name returns the backend registry name.
func (b *Backend) Name() string { return BackendName }

// Init runs the GPU probe: instance, adapter, device, queue, shader. Any
// failure releases what was acquired and reports the step that failed.
func (b *Backend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized {
		return nil
	}

	instance := core.NewInstance(&gputypes.InstanceDescriptor{
		Backends: gputypes.BackendsPrimary,
		Flags:    0,
	})

	adapterID, err := instance.RequestAdapter(&gputypes.RequestAdapterOptions{
		PowerPreference: gputypes.PowerPreferenceHighPerformance,
	})
	if err != nil {
		return fmt.Errorf("wgpu: no suitable adapter: %w", err)
	}

	logGPUInfo(adapterID)

	deviceID, err := createDevice(adapterID, "orrery-device")
	if err != nil {
		b.releaseLocked(adapterID, core.DeviceID{})
		return err
	}

	queueID, err := getDeviceQueue(deviceID)
	if err != nil {
		b.releaseLocked(adapterID, deviceID)
		return err
	}

	shader, err := compilePresentShader()
	if err != nil {
		b.releaseLocked(adapterID, deviceID)
		return err
	}

	b.instance = instance
	b.adapter = adapterID
	b.device = deviceID
	b.queue = queueID
	b.presentShader = shader
	b.gpuInfo, _ = getGPUInfo(adapterID)
	b.initialized = true

	orrery.Logger().Info("wgpu: backend initialized")
	return nil
}

// Renderer returns the frame rasterizer for this backend.
func (b *Backend) Renderer() orrery.Renderer {
	return orrery.NewSoftwareRenderer()
}

// GPU returns information about the selected adapter, or nil before Init.
func (b *Backend) GPU() *GPUInfo {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.gpuInfo
}

// Close releases GPU resources in reverse acquisition order. Close is
// idempotent.
func (b *Backend) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}
	b.releaseLocked(b.adapter, b.device)
	b.adapter = core.AdapterID{}
	b.device = core.DeviceID{}
	b.queue = core.QueueID{}
	b.instance = nil
	b.presentShader = nil
	b.initialized = false
}

// releaseLocked drops the device then the adapter, logging release errors.
// Callers hold b.mu.
func (b *Backend) releaseLocked(adapterID core.AdapterID, deviceID core.DeviceID) {
	if err := releaseDevice(deviceID); err != nil {
		orrery.Logger().Warn("wgpu: device release failed", "error", err)
	}
	if err := releaseAdapter(adapterID); err != nil {
		orrery.Logger().Warn("wgpu: adapter release failed", "error", err)
	}
}
