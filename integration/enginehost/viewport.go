// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package enginehost

// Viewport describes the region the UI is laid out and rendered in:
// the physical pixel size of the host window's render target and the
// scale factor between logical and physical coordinates.
type Viewport struct {
	// PhysicalWidth is the render target width in physical pixels.
	PhysicalWidth uint32

	// PhysicalHeight is the render target height in physical pixels.
	PhysicalHeight uint32

	// ScaleFactor converts logical units to physical pixels.
	// On a 2x HiDPI display this is 2.0.
	ScaleFactor float64
}

// NewViewport creates a viewport for the given physical size and scale.
// A non-positive scale factor is treated as 1.0.
func NewViewport(physicalWidth, physicalHeight uint32, scaleFactor float64) Viewport {
	if scaleFactor <= 0 {
		scaleFactor = 1.0
	}
	return Viewport{
		PhysicalWidth:  physicalWidth,
		PhysicalHeight: physicalHeight,
		ScaleFactor:    scaleFactor,
	}
}

// LogicalWidth returns the viewport width in logical units.
func (v Viewport) LogicalWidth() float64 {
	return float64(v.PhysicalWidth) / v.ScaleFactor
}

// LogicalHeight returns the viewport height in logical units.
func (v Viewport) LogicalHeight() float64 {
	return float64(v.PhysicalHeight) / v.ScaleFactor
}

// IsEmpty reports whether the viewport has a zero dimension.
func (v Viewport) IsEmpty() bool {
	return v.PhysicalWidth == 0 || v.PhysicalHeight == 0
}
