package gpu

import (
	"sync"

	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/uioverlay"
)

// Compositor is the GPU-backed overlay compositor. It receives the hal
// device and queue from the host (it never creates its own) and owns an
// OverlayPipeline for blitting UI textures onto host render targets.
//
// Typical host flow per frame:
//
//	c := gpu.NewCompositor()
//	c.AttachDevice(device, queue)
//	c.Init()
//	...
//	err := c.Composite(gpu.BlitParams{Target: hostView, ...})
//
// Compositor is safe for concurrent use.
type Compositor struct {
	mu       sync.Mutex
	device   hal.Device
	queue    hal.Queue
	pipeline *OverlayPipeline
}

// NewCompositor creates a GPU compositor with no device attached.
func NewCompositor() *Compositor {
	return &Compositor{}
}

// Name returns the compositor identifier.
func (c *Compositor) Name() string { return uioverlay.CompositorGPU }

// AttachDevice hands the host's hal device and queue to the compositor.
// Must be called before Init.
func (c *Compositor) AttachDevice(device hal.Device, queue hal.Queue) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.device = device
	c.queue = queue
}

// Init creates the overlay pipeline resources. A device must have been
// attached first. Init is idempotent.
func (c *Compositor) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.device == nil {
		return ErrNilHALDevice
	}
	if c.pipeline != nil {
		return nil
	}

	pipeline, err := NewOverlayPipeline(c.device)
	if err != nil {
		return err
	}
	if err := pipeline.Init(); err != nil {
		return err
	}
	c.pipeline = pipeline

	uioverlay.Logger().Info("gpu: overlay compositor initialized")
	return nil
}

// Pipeline returns the underlying overlay pipeline, or nil before Init.
func (c *Compositor) Pipeline() *OverlayPipeline {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pipeline
}

// Composite blits the source UI texture onto the target view and waits
// for completion.
func (c *Compositor) Composite(params BlitParams) error {
	c.mu.Lock()
	device, queue, pipeline := c.device, c.queue, c.pipeline
	c.mu.Unlock()

	if pipeline == nil {
		return ErrPipelineNotInitialized
	}
	return Blit(device, queue, pipeline, params)
}

// Record encodes an overlay draw into a render pass owned by the host.
// This is the path for hosts that composite the overlay inside their own
// frame pass instead of a standalone submission.
func (c *Compositor) Record(rp RenderPass, cmd DrawCommand) error {
	c.mu.Lock()
	pipeline := c.pipeline
	c.mu.Unlock()

	if pipeline == nil {
		return ErrPipelineNotInitialized
	}
	return cmd.Record(rp)
}

// Close releases all compositor resources. The attached device is owned
// by the host and is left untouched.
func (c *Compositor) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pipeline != nil {
		c.pipeline.Destroy()
		c.pipeline = nil
	}
}

func init() {
	uioverlay.Register(uioverlay.CompositorGPU, func() uioverlay.Compositor {
		return NewCompositor()
	})
}
