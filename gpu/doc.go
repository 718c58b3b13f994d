// Package gpu implements the wgpu-backed overlay compositor.
//
// The compositor draws a previously rendered UI texture over a host
// render target as a single full-screen quad. The quad is generated
// procedurally in the vertex shader from the vertex index, so the draw
// binds no vertex or index buffers: one pipeline, one bind group
// (texture + sampler), four vertices, one instance.
//
// The package follows the shared-device model: the host application owns
// the hal.Device and hal.Queue and hands them to the compositor, which
// never creates a device of its own.
package gpu
