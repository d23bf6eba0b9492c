//go:build !nogpu

// Package gpu runs the glyph vertex stage on the GPU.
//
// It embeds the WGSL glyph shader, compiles it through naga and builds a
// wgpu/hal render pipeline around it:
//
//	group 0: atlas texture + sampler (owned by the caller)
//	group 1: per-draw uniform (transform rows + tint), vertex stage
//	vertex buffer: stride 16, position @0, tex_coord @1
//	index buffer: uint16, 6 indices per quad
//
// The uniform and vertex byte layouts come from the root glyph package, so
// the CPU stage and the shader consume identical data.
package gpu
