// Package glyph implements the vertex stage of a text-glyph renderer.
//
// # Overview
//
// Every glyph is drawn as a textured quad. The vertex stage maps each quad
// corner from its local 2D position into normalized device space with a
// per-draw 3x3 affine transform, passes the atlas texture coordinate through
// unchanged and emits a constant tint for the fragment stage:
//
//	h    = (x, y, 1)
//	t    = T · h            (T row-major: T[row][col])
//	clip = (t.x, t.y, 0, 1)
//
// The third row of T is carried but never contributes to the output.
//
// # Quick Start
//
//	vp := glyph.Viewport{Width: 800, Height: 600}
//	draw := vp.DrawTransform(glyph.Translate(40, 80))
//
//	quads := []glyph.Quad{{X0: 0, Y0: 0, X1: 8, Y1: 12, U1: 1, V1: 1}}
//	out := glyph.Project(draw, quads[0].Vertices()[0])
//
// # Draw Transforms
//
// Layout produces glyph positions in pixels. [Viewport.Projection] maps
// pixels to NDC and [Viewport.DrawTransform] prepends it to a text transform
// built from [Translate], [Scale], [Rotate], [Compose] or [FromCTM].
//
// # Parallel Dispatch
//
// [Dispatcher] runs a [Stage] over vertex slices on a worker pool. Each output
// depends only on the vertex at the same index.
//
// # GPU
//
// The same stage exists as a WGSL vertex shader in package
// github.com/gogpu/glyph/gpu. [EncodeUniform], [EncodeVertices] and
// [EncodeIndices] produce the byte layouts that pipeline consumes.
//
// # Architecture
//
//   - Public API: Transform, Stage, Dispatcher, Viewport, Quad
//   - Wire layouts: uniform.go (shared with the shader)
//   - Internal: parallel (worker pool), gpu (wgpu/hal pipeline)
package glyph

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
