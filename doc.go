// Package orrery renders a decorative animated solar-system backdrop.
//
// # Overview
//
// orrery draws a sun, eight orbiting planets (one ringed) and faint orbit
// guide rings into a pixel surface that a host application presents. It is a
// backdrop, not a simulation: planet positions are purely parametric circular
// orbits, there is no user interaction, and the whole component is driven by
// three external signals — the per-frame callback, the viewport resize
// notification, and the reduced-motion accessibility preference.
//
// # Quick Start
//
//	import "github.com/gogpu/orrery"
//
//	bd := orrery.New(
//	    orrery.WithViewport(orrery.FixedViewport(800, 600, 1)),
//	)
//	defer bd.Close()
//
//	// The current frame is available for presentation at any time.
//	img := bd.Frame().ToImage()
//
// # Capability gate
//
// At construction orrery acquires a rendering backend from the backend
// registry (wgpu when available, software otherwise). When no backend can be
// acquired the component reveals the configured fallback panel with a short
// message and does nothing further; the host page is unaffected.
//
// # Reduced motion
//
// When the host's MotionSignal reports an active reduce-motion preference the
// animation loop is suspended and exactly one static frame is kept current.
// Preference changes at runtime pause or resume the loop; both transitions
// are idempotent.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Backdrop, Scene, Camera, Animator, Pixmap, and the
//     backend registry with the built-in software renderer
//   - backend/wgpu: GPU-probing backend, registered on import
//   - canvas: GPU presentation for gogpu hosts
//   - fallbacktext: static fallback panel rendering
package orrery

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
