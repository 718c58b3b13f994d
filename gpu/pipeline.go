package gpu

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/uioverlay"
)

// Overlay pipeline errors.
var (
	// ErrNilHALDevice is returned when a nil device is supplied.
	ErrNilHALDevice = errors.New("gpu: hal device is nil")

	// ErrNilPipeline is returned when operating on a nil pipeline.
	ErrNilPipeline = errors.New("gpu: overlay pipeline is nil")

	// ErrPipelineNotInitialized is returned when the pipeline has not been
	// initialized yet.
	ErrPipelineNotInitialized = errors.New("gpu: overlay pipeline not initialized")

	// ErrNilTextureView is returned when a bind group is requested for a
	// nil texture view.
	ErrNilTextureView = errors.New("gpu: texture view is nil")
)

// pipelineKey identifies a render pipeline variant. One pipeline is
// created per (target format, blend mode) pair and cached for reuse.
type pipelineKey struct {
	format gputypes.TextureFormat
	blend  uioverlay.Blend
}

// OverlayPipeline owns the GPU resources for blitting a UI texture onto a
// host render target: shader module, bind group layout, pipeline layout,
// samplers, and one render pipeline per target format and blend mode.
//
// The vertex stage generates a full-screen triangle strip from the vertex
// index, so no vertex buffers are ever bound. The fragment stage samples
// the bound texture at the interpolated uv.
//
// Bind group layout (group 0):
//
//	Binding 0: UI texture (texture_2d<f32>, fragment)
//	Binding 1: Sampler (filtering, fragment)
//
// OverlayPipeline is safe for concurrent use after Init.
type OverlayPipeline struct {
	device hal.Device

	shader     hal.ShaderModule
	bindLayout hal.BindGroupLayout
	pipeLayout hal.PipelineLayout

	// Samplers shared by all bind groups. Both clamp to edge: the quad
	// uv spans exactly [0,1] so edge clamping only matters for the
	// half-texel border under linear filtering.
	samplerLinear  hal.Sampler
	samplerNearest hal.Sampler

	mu        sync.Mutex
	pipelines map[pipelineKey]hal.RenderPipeline

	initialized bool
}

// NewOverlayPipeline creates an overlay pipeline for the given device.
// GPU resources are not created until Init is called.
func NewOverlayPipeline(device hal.Device) (*OverlayPipeline, error) {
	if device == nil {
		return nil, ErrNilHALDevice
	}
	return &OverlayPipeline{
		device:    device,
		pipelines: make(map[pipelineKey]hal.RenderPipeline),
	}, nil
}

// Init compiles the overlay shader and creates the shared GPU resources
// (shader module, layouts, samplers). Render pipelines are created lazily
// per target format by Pipeline. Init is idempotent.
func (p *OverlayPipeline) Init() error {
	if p == nil {
		return ErrNilPipeline
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if overlayShaderSource == "" {
		return errors.New("gpu: overlay shader source is empty")
	}

	shader, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "overlay_shader",
		Source: hal.ShaderSource{WGSL: overlayShaderSource},
	})
	if err != nil {
		return fmt.Errorf("compile overlay shader: %w", err)
	}
	p.shader = shader

	// Bind group layout:
	//   Binding 0: UI texture (texture_2d, fragment)
	//   Binding 1: Sampler (fragment)
	bindLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "overlay_bind_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		p.destroyLocked()
		return fmt.Errorf("create overlay bind layout: %w", err)
	}
	p.bindLayout = bindLayout

	pipeLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "overlay_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.bindLayout},
	})
	if err != nil {
		p.destroyLocked()
		return fmt.Errorf("create overlay pipeline layout: %w", err)
	}
	p.pipeLayout = pipeLayout

	samplerLinear, err := p.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "overlay_sampler_linear",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
		MipmapFilter: gputypes.FilterModeLinear,
	})
	if err != nil {
		p.destroyLocked()
		return fmt.Errorf("create overlay linear sampler: %w", err)
	}
	p.samplerLinear = samplerLinear

	samplerNearest, err := p.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "overlay_sampler_nearest",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeNearest,
		MinFilter:    gputypes.FilterModeNearest,
		MipmapFilter: gputypes.FilterModeNearest,
	})
	if err != nil {
		p.destroyLocked()
		return fmt.Errorf("create overlay nearest sampler: %w", err)
	}
	p.samplerNearest = samplerNearest

	p.initialized = true
	return nil
}

// IsInitialized reports whether Init has completed successfully.
func (p *OverlayPipeline) IsInitialized() bool {
	if p == nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// Pipeline returns the render pipeline for the given target format and
// blend mode, creating and caching it on first use.
//
// BlendOver composites the (premultiplied alpha) UI texture over the host
// frame. BlendSrc overwrites the target, alpha included.
func (p *OverlayPipeline) Pipeline(format gputypes.TextureFormat, blend uioverlay.Blend) (hal.RenderPipeline, error) {
	if p == nil {
		return nil, ErrNilPipeline
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return nil, ErrPipelineNotInitialized
	}

	key := pipelineKey{format: format, blend: blend}
	if pipe, ok := p.pipelines[key]; ok {
		return pipe, nil
	}

	var blendState *gputypes.BlendState
	if blend == uioverlay.BlendOver {
		premul := gputypes.BlendStatePremultiplied()
		blendState = &premul
	}

	pipeline, err := p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  fmt.Sprintf("overlay_pipeline_%d_%s", format, blend),
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: vertexEntryPoint,
			// No vertex buffers: the quad is generated from vertex_index.
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
			EntryPoint: fragmentEntryPoint,
			Targets: []gputypes.ColorTargetState{
				{
					Format:    format,
					Blend:     blendState,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleStrip,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create overlay pipeline (format %d, blend %s): %w", format, blend, err)
	}
	p.pipelines[key] = pipeline

	return pipeline, nil
}

// CreateBindGroup creates a bind group binding the given UI texture view
// at slot 0 and the sampler for the given filter at slot 1. The caller
// owns the returned bind group and must release it with DestroyBindGroup.
func (p *OverlayPipeline) CreateBindGroup(view hal.TextureView, filter uioverlay.Filter) (hal.BindGroup, error) {
	if p == nil {
		return nil, ErrNilPipeline
	}
	if view == nil {
		return nil, ErrNilTextureView
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return nil, ErrPipelineNotInitialized
	}

	sampler := p.samplerLinear
	if filter == uioverlay.FilterNearest {
		sampler = p.samplerNearest
	}

	bindGroup, err := p.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "overlay_bind",
		Layout: p.bindLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.TextureViewBinding{
				TextureView: view.NativeHandle(),
			}},
			{Binding: 1, Resource: gputypes.SamplerBinding{
				Sampler: sampler.NativeHandle(),
			}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create overlay bind group: %w", err)
	}
	return bindGroup, nil
}

// DestroyBindGroup releases a bind group created by CreateBindGroup.
func (p *OverlayPipeline) DestroyBindGroup(bg hal.BindGroup) {
	if p == nil || bg == nil {
		return
	}
	p.device.DestroyBindGroup(bg)
}

// Destroy releases all GPU resources held by the pipeline, in reverse
// creation order. Safe to call multiple times.
func (p *OverlayPipeline) Destroy() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.destroyLocked()
	p.initialized = false
}

func (p *OverlayPipeline) destroyLocked() {
	if p.device == nil {
		return
	}
	for key, pipe := range p.pipelines {
		p.device.DestroyRenderPipeline(pipe)
		delete(p.pipelines, key)
	}
	if p.samplerNearest != nil {
		p.device.DestroySampler(p.samplerNearest)
		p.samplerNearest = nil
	}
	if p.samplerLinear != nil {
		p.device.DestroySampler(p.samplerLinear)
		p.samplerLinear = nil
	}
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.bindLayout != nil {
		p.device.DestroyBindGroupLayout(p.bindLayout)
		p.bindLayout = nil
	}
	if p.shader != nil {
		p.device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}
