package glyph

// Viewport describes the render target in pixels and builds the projection
// from pixel space to normalized device coordinates.
//
// With FlipY unset, pixel (0, 0) maps to NDC (-1, -1) and (Width, Height)
// to (1, 1), the convention of APIs whose NDC y axis points down
// (Vulkan). Set FlipY for WebGPU/Metal targets, where NDC y points up and
// pixel (0, 0) must land on the top edge.
type Viewport struct {
	Width, Height int
	FlipY         bool
}

// Projection returns the pixel-to-NDC transform.
// A viewport with a non-positive dimension yields the identity.
func (v Viewport) Projection() Transform {
	if v.Width <= 0 || v.Height <= 0 {
		return Identity()
	}
	sx := 2 / float32(v.Width)
	sy := 2 / float32(v.Height)
	if v.FlipY {
		return Transform{
			{sx, 0, -1},
			{0, -sy, 1},
			{0, 0, 1},
		}
	}
	return Transform{
		{sx, 0, -1},
		{0, sy, -1},
		{0, 0, 1},
	}
}

// DrawTransform returns Projection() * model, the per-draw transform for
// a text run whose glyph vertices are in model space.
func (v Viewport) DrawTransform(model Transform) Transform {
	return v.Projection().Multiply(model)
}

// Resize returns a copy of v with new dimensions.
func (v Viewport) Resize(width, height int) Viewport {
	v.Width, v.Height = width, height
	return v
}
