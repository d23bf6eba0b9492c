//go:build !nogpu

package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/glyph"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Glyph pipeline errors.
var (
	// ErrNoQuads is returned when PrepareDraw is called without quads.
	ErrNoQuads = errors.New("gpu: no quads to draw")

	// ErrTooManyQuads is returned when a draw exceeds PipelineConfig.MaxQuads.
	ErrTooManyQuads = errors.New("gpu: too many quads for one draw")

	// ErrPipelineDestroyed is returned when using a pipeline after Destroy.
	ErrPipelineDestroyed = errors.New("gpu: glyph pipeline destroyed")
)

// PipelineConfig holds configuration for the glyph pipeline.
type PipelineConfig struct {
	// Format is the color target format.
	// Default: BGRA8Unorm
	Format gputypes.TextureFormat

	// SampleCount is the MSAA sample count of the render pass.
	// Default: 1
	SampleCount uint32

	// MaxQuads is the maximum number of quads per draw.
	// Default and upper bound: glyph.MaxQuads (uint16 indices).
	MaxQuads int
}

// DefaultPipelineConfig returns default configuration.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		Format:      gputypes.TextureFormatBGRA8Unorm,
		SampleCount: 1,
		MaxQuads:    glyph.MaxQuads,
	}
}

func (c PipelineConfig) normalized() PipelineConfig {
	def := DefaultPipelineConfig()
	if c.Format == gputypes.TextureFormatUndefined {
		c.Format = def.Format
	}
	if c.SampleCount == 0 {
		c.SampleCount = def.SampleCount
	}
	if c.MaxQuads <= 0 || c.MaxQuads > glyph.MaxQuads {
		c.MaxQuads = glyph.MaxQuads
	}
	return c
}

// GlyphPipeline owns the GPU objects of the glyph vertex stage: the shader
// module, both bind group layouts, the pipeline layout and the render
// pipeline. They are created lazily on first use.
//
// Architecture:
//
//	GlyphPipeline owns shader, layouts, pipeline
//	Draw owns per-draw vertex, index and uniform buffers + group 1 bind group
//	the caller owns the atlas bind group (group 0, see AtlasLayout)
//
// GlyphPipeline is not safe for concurrent use.
type GlyphPipeline struct {
	device hal.Device
	queue  hal.Queue
	config PipelineConfig

	shader          hal.ShaderModule
	atlasLayout     hal.BindGroupLayout
	transformLayout hal.BindGroupLayout
	pipeLayout      hal.PipelineLayout
	pipeline        hal.RenderPipeline

	destroyed bool
}

// NewGlyphPipeline creates a glyph pipeline on device. GPU objects are not
// created until the first call that needs them.
func NewGlyphPipeline(device hal.Device, queue hal.Queue, config PipelineConfig) *GlyphPipeline {
	return &GlyphPipeline{
		device: device,
		queue:  queue,
		config: config.normalized(),
	}
}

// Config returns the effective configuration.
func (p *GlyphPipeline) Config() PipelineConfig {
	return p.config
}

// AtlasLayout returns the group 0 layout (binding 0: 2D float texture,
// binding 1: filtering sampler). Callers build their atlas bind groups from it.
func (p *GlyphPipeline) AtlasLayout() (hal.BindGroupLayout, error) {
	if err := p.ensurePipeline(); err != nil {
		return nil, err
	}
	return p.atlasLayout, nil
}

// ensurePipeline creates the shader, layouts and render pipeline if needed.
func (p *GlyphPipeline) ensurePipeline() error {
	if p.destroyed {
		return ErrPipelineDestroyed
	}
	if p.pipeline != nil {
		return nil
	}
	if err := p.createPipeline(); err != nil {
		slogger().Warn("gpu: glyph pipeline creation failed", "err", err)
		p.destroyPipeline()
		return err
	}
	slogger().Debug("gpu: glyph pipeline created",
		"format", p.config.Format, "samples", p.config.SampleCount)
	return nil
}

func (p *GlyphPipeline) createPipeline() error {
	if glyphShaderSource == "" {
		return ErrEmptyShader
	}

	shader, err := p.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "glyph_shader",
		Source: hal.ShaderSource{WGSL: glyphShaderSource},
	})
	if err != nil {
		return fmt.Errorf("compile glyph shader: %w", err)
	}
	p.shader = shader

	atlasLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "glyph_atlas_layout",
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
		return fmt.Errorf("create glyph atlas layout: %w", err)
	}
	p.atlasLayout = atlasLayout

	transformLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "glyph_transform_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create glyph transform layout: %w", err)
	}
	p.transformLayout = transformLayout

	pipeLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "glyph_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.atlasLayout, p.transformLayout},
	})
	if err != nil {
		return fmt.Errorf("create glyph pipeline layout: %w", err)
	}
	p.pipeLayout = pipeLayout

	premulBlend := gputypes.BlendStatePremultiplied()
	pipeline, err := p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "glyph_pipeline",
		Layout: p.pipeLayout,
		Vertex: hal.VertexState{
			Module:     p.shader,
			EntryPoint: vertexEntryPoint,
			Buffers:    glyphVertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     p.shader,
			EntryPoint: fragmentEntryPoint,
			Targets: []gputypes.ColorTargetState{
				{
					Format:    p.config.Format,
					Blend:     &premulBlend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: p.config.SampleCount,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return fmt.Errorf("create glyph pipeline: %w", err)
	}
	p.pipeline = pipeline
	return nil
}

// glyphVertexLayout returns the vertex buffer layout matching VertexInput
// in glyph.wgsl:
//
//	location 0: position (vec2<f32>)
//	location 1: tex_coord (vec2<f32>)
func glyphVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: glyph.VertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
				{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1}, // tex_coord
			},
		},
	}
}

// Destroy releases all GPU objects held by the pipeline. Draws prepared by
// the pipeline must be released separately. Safe to call multiple times.
func (p *GlyphPipeline) Destroy() {
	p.destroyPipeline()
	p.destroyed = true
}

// destroyPipeline releases pipeline objects in reverse creation order.
func (p *GlyphPipeline) destroyPipeline() {
	if p.device == nil {
		return
	}
	if p.pipeline != nil {
		p.device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.pipeLayout != nil {
		p.device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.transformLayout != nil {
		p.device.DestroyBindGroupLayout(p.transformLayout)
		p.transformLayout = nil
	}
	if p.atlasLayout != nil {
		p.device.DestroyBindGroupLayout(p.atlasLayout)
		p.atlasLayout = nil
	}
	if p.shader != nil {
		p.device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}
