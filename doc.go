// Package uioverlay composites an off-screen-rendered UI texture onto a
// host application's render target.
//
// # Overview
//
// uioverlay is the bridge between a UI toolkit that rasterizes its widget
// tree into a texture and a host engine that owns the frame. Every frame
// the host hands the overlay its current color target; the overlay draws
// a single full-screen quad that samples the UI texture over it. The quad
// is generated procedurally in the vertex stage from a four-entry constant
// table, so no vertex or index buffers are involved.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/uioverlay"
//	    "github.com/gogpu/uioverlay/software"
//	)
//
//	dst := software.NewTexture(800, 600) // host frame, CPU path
//	src := software.NewTexture(800, 600) // rasterized UI
//	c := software.NewCompositor()
//	err := c.Composite(dst, src, uioverlay.WithFilter(uioverlay.FilterLinear))
//
// For GPU hosts, the gpu subpackage builds the equivalent wgpu pipeline
// (WGSL shader, one bind group: texture at binding 0, sampler at
// binding 1) and records the 4-vertex draw into the host's render pass.
// The integration/enginehost subpackage packages both paths behind a
// per-frame plugin hook.
//
// # Architecture
//
// The library is organized into:
//   - Root: quad vertex table, compositor registry, shared configuration
//   - gpu: wgpu render pipeline (gogpu/wgpu hal, WGSL via gogpu/naga)
//   - software: CPU reference compositor (pixel-exact model of the shader)
//   - integration/enginehost: host engine plumbing (device handoff,
//     viewport tracking, per-frame render hook)
//
// # Coordinate System
//
// Clip space follows the usual convention: x,y in [-1,1] with y up.
// Texture coordinates are top-left origin, u,v in [0,1]. The quad table
// flips v against clip y so raster-order image sources composite upright.
package uioverlay

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"
)
