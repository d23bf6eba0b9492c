//go:build !nogpu

package gpu

import (
	"fmt"

	"github.com/gogpu/glyph"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// Draw holds the per-draw GPU resources of one text run: vertex, index and
// uniform buffers plus the group 1 bind group referencing the uniform.
// The transform uploaded with a Draw never changes; prepare a new Draw for
// a new transform.
type Draw struct {
	vertBuf    hal.Buffer
	idxBuf     hal.Buffer
	uniformBuf hal.Buffer
	bindGroup  hal.BindGroup
	indexCount uint32
}

// IndexCount returns the number of indices recorded by RecordDraw.
func (d *Draw) IndexCount() uint32 {
	if d == nil {
		return 0
	}
	return d.indexCount
}

// PrepareDraw uploads quads and the draw transform for one draw call.
// t is the complete draw transform (projection included).
func (p *GlyphPipeline) PrepareDraw(t glyph.Transform, tint glyph.RGB, quads []glyph.Quad) (*Draw, error) {
	if len(quads) == 0 {
		return nil, ErrNoQuads
	}
	if len(quads) > p.config.MaxQuads {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyQuads, len(quads), p.config.MaxQuads)
	}
	if err := p.ensurePipeline(); err != nil {
		return nil, err
	}

	d := &Draw{indexCount: uint32(len(quads) * 6)} //nolint:gosec // bounded by MaxQuads

	var err error
	d.vertBuf, err = p.createAndUploadBuffer("glyph_vertices",
		glyph.EncodeVertices(glyph.QuadVertices(quads)),
		gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
	if err != nil {
		return nil, err
	}

	d.idxBuf, err = p.createAndUploadBuffer("glyph_indices",
		glyph.EncodeIndices(glyph.QuadIndices(len(quads))),
		gputypes.BufferUsageIndex|gputypes.BufferUsageCopyDst)
	if err != nil {
		p.ReleaseDraw(d)
		return nil, err
	}

	d.uniformBuf, err = p.createAndUploadBuffer("glyph_uniforms",
		glyph.EncodeUniform(t, tint),
		gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
	if err != nil {
		p.ReleaseDraw(d)
		return nil, err
	}

	d.bindGroup, err = p.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "glyph_transform_bind",
		Layout: p.transformLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: d.uniformBuf.NativeHandle(), Offset: 0, Size: glyph.UniformSize,
			}},
		},
	})
	if err != nil {
		p.ReleaseDraw(d)
		return nil, fmt.Errorf("create glyph bind group: %w", err)
	}

	slogger().Debug("gpu: glyph draw prepared", "quads", len(quads), "indices", d.indexCount)
	return d, nil
}

// RecordDraw records d into an open render pass. atlas is the caller's
// group 0 bind group built from AtlasLayout.
func (p *GlyphPipeline) RecordDraw(rp hal.RenderPassEncoder, atlas hal.BindGroup, d *Draw) error {
	if d == nil || d.indexCount == 0 {
		return nil
	}
	if err := p.ensurePipeline(); err != nil {
		return err
	}
	rp.SetPipeline(p.pipeline)
	rp.SetBindGroup(0, atlas, nil)
	rp.SetBindGroup(1, d.bindGroup, nil)
	rp.SetVertexBuffer(0, d.vertBuf, 0)
	rp.SetIndexBuffer(d.idxBuf, gputypes.IndexFormatUint16, 0)
	rp.DrawIndexed(d.indexCount, 1, 0, 0, 0)
	return nil
}

// ReleaseDraw destroys the resources of d. Safe to call with nil or twice.
func (p *GlyphPipeline) ReleaseDraw(d *Draw) {
	if d == nil || p.device == nil {
		return
	}
	if d.bindGroup != nil {
		p.device.DestroyBindGroup(d.bindGroup)
		d.bindGroup = nil
	}
	for _, buf := range []*hal.Buffer{&d.uniformBuf, &d.idxBuf, &d.vertBuf} {
		if *buf != nil {
			p.device.DestroyBuffer(*buf)
			*buf = nil
		}
	}
	d.indexCount = 0
}

// createAndUploadBuffer creates a GPU buffer and uploads data.
func (p *GlyphPipeline) createAndUploadBuffer(label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := p.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	p.queue.WriteBuffer(buf, 0, data)
	return buf, nil
}
