//go:build !nogpu

// Package gpu exposes the GPU glyph pipeline.
//
// A Pipeline draws glyph quads with the same vertex stage as glyph.Stage:
// the draw transform and tint are uploaded as a per-draw uniform (group 1),
// the caller supplies the atlas bind group (group 0).
//
// Usage:
//
//	p, err := gpu.NewPipelineFromProvider(provider, gpu.Config{})
//	layout, _ := p.AtlasLayout()          // build the atlas bind group from it
//	d, err := p.PrepareDraw(vp.DrawTransform(model), glyph.DefaultTint(), quads)
//	p.RecordDraw(renderPass, atlasGroup, d)
//	// after submission:
//	p.ReleaseDraw(d)
//
// Importing this package routes glyph.SetLogger to the GPU code as well.
package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/glyph"
	gpuimpl "github.com/gogpu/glyph/internal/gpu"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

func init() {
	glyph.RegisterLoggerSetter(gpuimpl.LogSink{})
}

// Pipeline is the GPU glyph pipeline.
type Pipeline = gpuimpl.GlyphPipeline

// Draw holds the per-draw resources created by Pipeline.PrepareDraw.
type Draw = gpuimpl.Draw

// Config configures a Pipeline. The zero value selects defaults.
type Config = gpuimpl.PipelineConfig

// Errors re-exported from the implementation.
var (
	ErrNoQuads           = gpuimpl.ErrNoQuads
	ErrTooManyQuads      = gpuimpl.ErrTooManyQuads
	ErrPipelineDestroyed = gpuimpl.ErrPipelineDestroyed
)

// Provider errors returned by NewPipelineFromProvider.
var (
	// ErrNilProvider is returned for a nil provider.
	ErrNilProvider = errors.New("gpu: nil device provider")

	// ErrProviderNotHAL is returned when the provider does not expose a
	// usable hal.Device and hal.Queue.
	ErrProviderNotHAL = errors.New("gpu: provider does not expose HAL types")
)

// DefaultConfig returns the default pipeline configuration.
func DefaultConfig() Config {
	return gpuimpl.DefaultPipelineConfig()
}

// NewPipeline creates a glyph pipeline on an existing HAL device.
func NewPipeline(device hal.Device, queue hal.Queue, cfg Config) *Pipeline {
	return gpuimpl.NewGlyphPipeline(device, queue, cfg)
}

// NewPipelineFromProvider creates a glyph pipeline on a shared device.
// The provider must also implement HalDevice() any and HalQueue() any
// returning hal.Device and hal.Queue. When cfg.Format is undefined the
// provider's surface format is used.
func NewPipelineFromProvider(provider gpucontext.DeviceProvider, cfg Config) (*Pipeline, error) {
	if provider == nil {
		return nil, ErrNilProvider
	}
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, fmt.Errorf("%w: missing HalDevice/HalQueue", ErrProviderNotHAL)
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrProviderNotHAL)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrProviderNotHAL)
	}

	if cfg.Format == gputypes.TextureFormatUndefined {
		cfg.Format = provider.SurfaceFormat()
	}
	return gpuimpl.NewGlyphPipeline(device, queue, cfg), nil
}

// ShaderSource returns the WGSL source of the glyph shader.
func ShaderSource() string {
	return gpuimpl.GlyphShaderSource()
}

// CompileSPIRV compiles the glyph shader to SPIR-V words.
func CompileSPIRV() ([]uint32, error) {
	return gpuimpl.CompileSPIRV()
}
