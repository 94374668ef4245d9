// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package canvas presents orrery backdrop frames inside a gogpu host.
//
// A Canvas wraps a Backdrop and manages the CPU-to-GPU upload pipeline:
// each Present call uploads the current frame surface to a GPU texture
// (recreating it when the surface was reallocated on resize) and draws it
// through a gpucontext.TextureDrawer.
//
// Example:
//
//	b := orrery.New(orrery.WithViewport(vp))
//	cv := canvas.New(b)
//	app.OnDraw(func(dc *gogpu.Context) {
//	    cv.Present(dc.AsTextureDrawer())
//	})
package canvas
