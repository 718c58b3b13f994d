// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package enginehost integrates the UI overlay into a host engine's
// frame loop.
//
// The host owns the GPU device, the window, and the render target; the
// UI toolkit renders its widget tree into an offscreen texture. The
// Overlay sits between them: each frame, after the host's main pass,
// it composites the UI texture over the frame, honoring the window's
// scale factor and skipping frames where the UI drew nothing.
//
// Typical wiring:
//
//	overlay, _ := enginehost.NewOverlay(app.GPUContextProvider(), enginehost.Settings{})
//	// on resize:
//	overlay.UpdateViewport(w, h, window.ScaleFactor())
//	// when the UI renders:
//	overlay.MarkDrawn()
//	// after the main pass:
//	overlay.RenderFrame(frameView, surfaceFormat, uiSource)
package enginehost
