package glyph

// Vec2 is a 2D vector of float32 components.
type Vec2 struct {
	X, Y float32
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Vec3 is a homogeneous 2D point or a 3-component vector.
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 is a homogeneous clip-space position.
type Vec4 struct {
	X, Y, Z, W float32
}

// RGB is a linear color without alpha.
type RGB struct {
	R, G, B float32
}

// Vertex is one corner of a glyph quad.
// Position is in glyph-local space, TexCoord in atlas space (conventionally [0, 1]).
type Vertex struct {
	Position Vec2
	TexCoord Vec2
}

// Output is the per-vertex result of the stage, consumed by the
// rasterizer and the fragment (sampling) stage.
type Output struct {
	// Position is the clip-space position. Z is always 0 and W is always 1.
	Position Vec4

	// Color is the tint passed to the fragment stage.
	Color RGB

	// TexCoord is the input texture coordinate, unchanged.
	TexCoord Vec2
}
