package glyph

import (
	"image"

	"golang.org/x/image/math/fixed"
)

// MaxQuads is the largest number of quads addressable with uint16 indices.
const MaxQuads = 1 << 16 / 4

// Quad is one glyph rectangle with its atlas region.
type Quad struct {
	// Corners in glyph-local space.
	X0, Y0, X1, Y1 float32

	// Atlas texture coordinates of the same corners.
	U0, V0, U1, V1 float32
}

// Vertices returns the four corners in the order
// (X0,Y0), (X1,Y0), (X1,Y1), (X0,Y1).
func (q Quad) Vertices() [4]Vertex {
	return [4]Vertex{
		{Position: Vec2{X: q.X0, Y: q.Y0}, TexCoord: Vec2{X: q.U0, Y: q.V0}},
		{Position: Vec2{X: q.X1, Y: q.Y0}, TexCoord: Vec2{X: q.U1, Y: q.V0}},
		{Position: Vec2{X: q.X1, Y: q.Y1}, TexCoord: Vec2{X: q.U1, Y: q.V1}},
		{Position: Vec2{X: q.X0, Y: q.Y1}, TexCoord: Vec2{X: q.U0, Y: q.V1}},
	}
}

// QuadVertices flattens quads into 4 vertices each.
func QuadVertices(quads []Quad) []Vertex {
	vertices := make([]Vertex, 0, len(quads)*4)
	for _, q := range quads {
		v := q.Vertices()
		vertices = append(vertices, v[:]...)
	}
	return vertices
}

// QuadIndices returns the triangle-list indices for n quads:
// 0,1,2 and 2,3,0 per quad. n is clamped to [0, MaxQuads], the largest
// count addressable with uint16 indices.
func QuadIndices(n int) []uint16 {
	n = max(0, min(n, MaxQuads))
	indices := make([]uint16, n*6)
	for i := range n {
		base := i * 6
		vertex := uint16(i * 4) //nolint:gosec // n is bounded by MaxQuads

		indices[base+0] = vertex + 0
		indices[base+1] = vertex + 1
		indices[base+2] = vertex + 2

		indices[base+3] = vertex + 2
		indices[base+4] = vertex + 3
		indices[base+5] = vertex + 0
	}
	return indices
}

// QuadFromGlyph builds the quad of a glyph drawn at dot.
//
// bounds is the glyph's bounding box relative to the dot, as returned by
// font.Face.GlyphBounds. region is the glyph's rectangle inside an atlas of
// size atlas, in texels.
func QuadFromGlyph(dot fixed.Point26_6, bounds fixed.Rectangle26_6, region image.Rectangle, atlas image.Point) Quad {
	q := Quad{
		X0: fixedToFloat32(dot.X + bounds.Min.X),
		Y0: fixedToFloat32(dot.Y + bounds.Min.Y),
		X1: fixedToFloat32(dot.X + bounds.Max.X),
		Y1: fixedToFloat32(dot.Y + bounds.Max.Y),
	}
	if atlas.X > 0 && atlas.Y > 0 {
		w, h := float32(atlas.X), float32(atlas.Y)
		q.U0 = float32(region.Min.X) / w
		q.V0 = float32(region.Min.Y) / h
		q.U1 = float32(region.Max.X) / w
		q.V1 = float32(region.Max.Y) / h
	}
	return q
}

// fixedToFloat32 converts a 26.6 fixed-point value to float32.
func fixedToFloat32(x fixed.Int26_6) float32 {
	return float32(x) / 64
}
