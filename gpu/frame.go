package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/uioverlay"
)

// Draw validation errors. Validate rejects a malformed draw before any
// commands are encoded, so a bad frame never reaches the GPU.
var (
	// ErrBadVertexCount is returned when a draw does not use exactly the
	// procedural quad's vertex count.
	ErrBadVertexCount = errors.New("gpu: overlay draw requires exactly 4 vertices")

	// ErrBadInstanceCount is returned when a draw uses more than one instance.
	ErrBadInstanceCount = errors.New("gpu: overlay draw requires exactly 1 instance")

	// ErrMissingPipeline is returned when a draw has no render pipeline.
	ErrMissingPipeline = errors.New("gpu: overlay draw has no pipeline")

	// ErrMissingBindGroup is returned when a draw has no bind group.
	ErrMissingBindGroup = errors.New("gpu: overlay draw has no bind group")

	// ErrNilTargetView is returned when a blit targets a nil texture view.
	ErrNilTargetView = errors.New("gpu: target texture view is nil")

	// ErrNilQueue is returned when a blit is submitted without a queue.
	ErrNilQueue = errors.New("gpu: hal queue is nil")
)

// DrawCommand describes a single overlay draw: the pipeline variant, the
// texture+sampler bind group, and the vertex/instance counts. The counts
// are fixed for the procedural quad but carried explicitly so Validate
// can reject anything else.
type DrawCommand struct {
	Pipeline      hal.RenderPipeline
	BindGroup     hal.BindGroup
	VertexCount   uint32
	InstanceCount uint32
}

// NewDrawCommand returns a draw command for the full-screen quad with the
// given pipeline and bind group.
func NewDrawCommand(pipeline hal.RenderPipeline, bindGroup hal.BindGroup) DrawCommand {
	return DrawCommand{
		Pipeline:      pipeline,
		BindGroup:     bindGroup,
		VertexCount:   uioverlay.QuadVertexCount,
		InstanceCount: 1,
	}
}

// Validate checks the draw command against the overlay draw contract:
// exactly 4 vertices, exactly 1 instance, pipeline and bind group set.
func (c DrawCommand) Validate() error {
	if c.VertexCount != uioverlay.QuadVertexCount {
		return fmt.Errorf("%w: got %d", ErrBadVertexCount, c.VertexCount)
	}
	if c.InstanceCount != 1 {
		return fmt.Errorf("%w: got %d", ErrBadInstanceCount, c.InstanceCount)
	}
	if c.Pipeline == nil {
		return ErrMissingPipeline
	}
	if c.BindGroup == nil {
		return ErrMissingBindGroup
	}
	return nil
}

// RenderPass is the subset of hal.RenderPassEncoder the overlay records
// into. Narrowing the requirement here keeps hosts free to wrap their own
// pass encoders.
type RenderPass interface {
	SetPipeline(pipeline hal.RenderPipeline)
	SetBindGroup(index uint32, group hal.BindGroup, dynamicOffsets []uint32)
	Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32)
}

// Record encodes the draw into an existing render pass. The pass is owned
// by the caller; Record binds no vertex or index buffers.
func (c DrawCommand) Record(rp RenderPass) error {
	if err := c.Validate(); err != nil {
		return err
	}
	rp.SetPipeline(c.Pipeline)
	rp.SetBindGroup(0, c.BindGroup, nil)
	rp.Draw(c.VertexCount, c.InstanceCount, 0, 0)
	return nil
}

// BlitParams describes a standalone overlay blit onto a host target view.
type BlitParams struct {
	// Target is the host render target view the overlay is drawn onto.
	Target hal.TextureView

	// TargetFormat is the texture format of Target.
	TargetFormat gputypes.TextureFormat

	// Source is the UI texture view sampled by the fragment stage.
	Source hal.TextureView

	// Filter selects the sampler (linear by default).
	Filter uioverlay.Filter

	// Blend selects how the overlay combines with the existing target
	// content (over by default).
	Blend uioverlay.Blend
}

// Blit records and submits a single full-screen overlay draw onto the
// target view, preserving the target's existing content (the render pass
// loads rather than clears). It blocks until the GPU has finished.
//
// Hosts that already own a render pass per frame should use Record inside
// that pass instead; Blit is the standalone path for hosts that hand over
// only a target view.
func Blit(device hal.Device, queue hal.Queue, pipeline *OverlayPipeline, params BlitParams) error {
	if device == nil {
		return ErrNilHALDevice
	}
	if queue == nil {
		return ErrNilQueue
	}
	if pipeline == nil {
		return ErrNilPipeline
	}
	if params.Target == nil {
		return ErrNilTargetView
	}
	if params.Source == nil {
		return ErrNilTextureView
	}

	pipe, err := pipeline.Pipeline(params.TargetFormat, params.Blend)
	if err != nil {
		return err
	}

	bindGroup, err := pipeline.CreateBindGroup(params.Source, params.Filter)
	if err != nil {
		return err
	}
	defer pipeline.DestroyBindGroup(bindGroup)

	cmd := NewDrawCommand(pipe, bindGroup)
	if err := cmd.Validate(); err != nil {
		return err
	}

	encoder, err := device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "overlay_encoder",
	})
	if err != nil {
		return fmt.Errorf("create overlay encoder: %w", err)
	}

	if err := encoder.BeginEncoding("overlay_blit"); err != nil {
		return fmt.Errorf("begin overlay encoding: %w", err)
	}

	// Load, not clear: the host frame under the overlay must survive.
	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "overlay_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:    params.Target,
			LoadOp:  gputypes.LoadOpLoad,
			StoreOp: gputypes.StoreOpStore,
		}},
	})

	if err := cmd.Record(rp); err != nil {
		rp.End()
		encoder.DiscardEncoding()
		return err
	}
	rp.End()

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end overlay encoding: %w", err)
	}
	defer device.FreeCommandBuffer(cmdBuf)

	submission, err := queue.Submit([]hal.CommandBuffer{cmdBuf})
	if err != nil {
		return fmt.Errorf("submit overlay blit: %w", err)
	}

	// The command buffer is freed on return, so the GPU must be done
	// with it before then. The HAL synchronizes submissions internally;
	// PollCompleted skips the blocking wait when the work has already
	// retired.
	if queue.PollCompleted() < submission {
		if err := device.WaitIdle(); err != nil {
			return fmt.Errorf("wait overlay blit: %w", err)
		}
	}

	uioverlay.Logger().Debug("gpu: overlay blit submitted",
		"submission", submission, "format", params.TargetFormat, "blend", params.Blend.String())
	return nil
}
