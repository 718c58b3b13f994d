// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package enginehost

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/uioverlay"
	"github.com/gogpu/uioverlay/gpu"
)

// Common errors returned by Overlay operations.
var (
	// ErrOverlayClosed is returned when operations are attempted on a
	// closed overlay.
	ErrOverlayClosed = errors.New("enginehost: overlay is closed")

	// ErrNilProvider is returned when a nil DeviceProvider is passed.
	ErrNilProvider = errors.New("enginehost: nil DeviceProvider")

	// ErrNoHALAccess is returned when the provider does not expose the
	// underlying HAL device and queue.
	ErrNoHALAccess = errors.New("enginehost: provider does not expose HAL types")

	// ErrNilTarget is returned when RenderFrame is given a nil target view.
	ErrNilTarget = errors.New("enginehost: nil target view")

	// ErrNilSource is returned when RenderFrame is given a nil source.
	ErrNilSource = errors.New("enginehost: nil UI source")
)

// DeviceProvider supplies the host's GPU context. It is an alias for
// gpucontext.DeviceProvider: the overlay RECEIVES the device from the
// host, it does not create one.
type DeviceProvider = gpucontext.DeviceProvider

// Source provides the rendered UI texture for a frame. The host's UI
// toolkit renders its widget tree into an offscreen texture and exposes
// it through this interface.
type Source interface {
	// TextureView returns the view of the rendered UI texture.
	TextureView() hal.TextureView
}

// Settings configures the overlay's presentation.
type Settings struct {
	// ScaleFactor overrides the window's scale factor when positive.
	// Zero means follow the window.
	ScaleFactor float64

	// Filter selects the sampling filter (linear by default).
	Filter uioverlay.Filter

	// Blend selects how the UI combines with the host frame (over by
	// default).
	Blend uioverlay.Blend
}

// Overlay composites a UI texture over the host engine's frame. It is
// the frame-loop integration point: the host updates the viewport on
// resize, the UI marks the overlay drawn when it rendered anything, and
// the host calls RenderFrame after its main pass.
//
// Frames where nothing was drawn are skipped entirely: no pass, no
// draw, no GPU work.
//
// Overlay is safe for concurrent use.
type Overlay struct {
	mu         sync.Mutex
	provider   DeviceProvider
	compositor *gpu.Compositor
	viewport   Viewport
	settings   Settings

	// didDraw is set by the UI side each frame it produced output and
	// consumed by RenderFrame.
	didDraw atomic.Bool

	initialized bool
	closed      bool
}

// NewOverlay creates an overlay bound to the host's device provider.
// The provider's Device() must expose the HAL device and queue through
// HalDevice and HalQueue methods, as the wgpu device does; GPU
// resources are created on first use.
func NewOverlay(provider DeviceProvider, settings Settings) (*Overlay, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	return &Overlay{
		provider: provider,
		settings: settings,
	}, nil
}

// init extracts the HAL device and queue from the provider and builds
// the GPU compositor. Called lazily so an overlay can be constructed
// before the host finishes device setup.
func (o *Overlay) init() error {
	if o.initialized {
		return nil
	}

	type halSource interface {
		HalDevice() hal.Device
		HalQueue() hal.Queue
	}
	src, ok := o.provider.Device().(halSource)
	if !ok {
		return ErrNoHALAccess
	}
	device := src.HalDevice()
	queue := src.HalQueue()
	if device == nil || queue == nil {
		return fmt.Errorf("%w: HAL device not fully initialized", ErrNoHALAccess)
	}

	compositor := gpu.NewCompositor()
	compositor.AttachDevice(device, queue)
	if err := compositor.Init(); err != nil {
		return fmt.Errorf("enginehost: compositor init failed: %w", err)
	}

	o.compositor = compositor
	o.initialized = true
	return nil
}

// UpdateViewport recomputes the viewport from the window's physical
// size and scale factor. A positive Settings.ScaleFactor takes
// precedence over the window's.
func (o *Overlay) UpdateViewport(physicalWidth, physicalHeight uint32, windowScale float64) {
	o.mu.Lock()
	defer o.mu.Unlock()

	scale := windowScale
	if o.settings.ScaleFactor > 0 {
		scale = o.settings.ScaleFactor
	}
	o.viewport = NewViewport(physicalWidth, physicalHeight, scale)
}

// Viewport returns the current viewport.
func (o *Overlay) Viewport() Viewport {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.viewport
}

// SetScaleFactor overrides the scale factor used for layout. Passing
// zero restores following the window's scale. The viewport keeps its
// physical size.
func (o *Overlay) SetScaleFactor(scale float64) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.settings.ScaleFactor = scale
	if scale > 0 {
		o.viewport = NewViewport(o.viewport.PhysicalWidth, o.viewport.PhysicalHeight, scale)
	}
}

// Settings returns the current settings.
func (o *Overlay) Settings() Settings {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.settings
}

// MarkDrawn flags that the UI produced output this frame. RenderFrame
// consumes the flag; without it the frame is skipped.
func (o *Overlay) MarkDrawn() {
	o.didDraw.Store(true)
}

// DidDraw reports whether the UI has drawn since the last RenderFrame.
func (o *Overlay) DidDraw() bool {
	return o.didDraw.Load()
}

// RenderFrame composites the source UI texture over the target view.
// It runs after the host's main pass and preserves the frame beneath
// the UI. If the UI drew nothing since the last call, RenderFrame
// resets nothing and returns immediately.
func (o *Overlay) RenderFrame(target hal.TextureView, format gputypes.TextureFormat, source Source) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return ErrOverlayClosed
	}
	if target == nil {
		return ErrNilTarget
	}
	if source == nil {
		return ErrNilSource
	}

	if !o.didDraw.Swap(false) {
		uioverlay.Logger().Debug("enginehost: frame skipped, nothing drawn")
		return nil
	}

	if err := o.init(); err != nil {
		// The flag was consumed but nothing rendered; restore it so the
		// content is not lost if the host retries next frame.
		o.didDraw.Store(true)
		return err
	}

	view := source.TextureView()
	if view == nil {
		return ErrNilSource
	}

	return o.compositor.Composite(gpu.BlitParams{
		Target:       target,
		TargetFormat: format,
		Source:       view,
		Filter:       o.settings.Filter,
		Blend:        o.settings.Blend,
	})
}

// Close releases the overlay's GPU resources. The host's device is left
// untouched. Close is idempotent.
func (o *Overlay) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return
	}
	o.closed = true

	if o.compositor != nil {
		o.compositor.Close()
		o.compositor = nil
	}
	o.initialized = false
}
