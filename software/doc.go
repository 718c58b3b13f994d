// Package software implements the CPU overlay compositor.
//
// It reproduces the GPU path's semantics without a device: the source
// texture is stretched over the destination as a full-screen quad, with
// nearest or bilinear sampling and premultiplied source-over or source
// blending. Hosts without a GPU, and tests, use this path; the results
// match what the wgpu pipeline produces for the same inputs.
package software
