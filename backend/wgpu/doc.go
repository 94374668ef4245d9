// Package wgpu provides the GPU-probing rendering backend for orrery.
//
// The backend registers itself on import:
//
//	import _ "github.com/gogpu/orrery/backend/wgpu"
//
// During the capability gate it creates a wgpu instance, requests a
// high-performance adapter, creates a device and queue, and compiles the
// present shader. Any failure along that path marks the backend
// unavailable and orrery falls back to the next registered backend.
//
// Frame rasterization currently delegates to orrery's software renderer
// after a successful probe; the GPU resources acquired here are used for
// presentation (see the canvas package).
package wgpu
