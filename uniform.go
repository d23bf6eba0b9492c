package glyph

import (
	"encoding/binary"
	"fmt"
	"math"
)

// UniformSize is the byte size of the per-draw uniform block:
//
//	row0 (vec4<f32>) = 16 bytes  transform row 0, xyz used
//	row1 (vec4<f32>) = 16 bytes  transform row 1, xyz used
//	row2 (vec4<f32>) = 16 bytes  transform row 2, xyz used
//	tint (vec4<f32>) = 16 bytes  rgb used
//
// Total = 64 bytes. The three rows are the std140 layout of a row-major mat3.
const UniformSize = 64

// VertexStride is the byte stride per vertex:
//
//	position  (vec2<f32>) = 8 bytes  (location 0)
//	tex_coord (vec2<f32>) = 8 bytes  (location 1)
const VertexStride = 16

// EncodeUniform serializes a draw transform and tint into the uniform layout.
func EncodeUniform(t Transform, tint RGB) []byte {
	buf := make([]byte, UniformSize)
	off := 0
	for _, row := range t.Padded() {
		for _, v := range row {
			putFloat32(buf[off:], v)
			off += 4
		}
	}
	putFloat32(buf[off:], tint.R)
	putFloat32(buf[off+4:], tint.G)
	putFloat32(buf[off+8:], tint.B)
	// Fourth tint component stays zero.
	return buf
}

// DecodeUniform is the inverse of EncodeUniform. Padding is ignored.
func DecodeUniform(data []byte) (Transform, RGB, error) {
	if len(data) != UniformSize {
		return Transform{}, RGB{}, fmt.Errorf("%w: got %d bytes, want %d", ErrUniformSize, len(data), UniformSize)
	}
	var t Transform
	for row := range 3 {
		for col := range 3 {
			t[row][col] = getFloat32(data[row*16+col*4:])
		}
	}
	tint := RGB{
		R: getFloat32(data[48:]),
		G: getFloat32(data[52:]),
		B: getFloat32(data[56:]),
	}
	return t, tint, nil
}

// EncodeVertices serializes vertices with VertexStride bytes each.
func EncodeVertices(vertices []Vertex) []byte {
	if len(vertices) == 0 {
		return nil
	}
	buf := make([]byte, len(vertices)*VertexStride)
	for i, v := range vertices {
		off := i * VertexStride
		putFloat32(buf[off:], v.Position.X)
		putFloat32(buf[off+4:], v.Position.Y)
		putFloat32(buf[off+8:], v.TexCoord.X)
		putFloat32(buf[off+12:], v.TexCoord.Y)
	}
	return buf
}

// DecodeVertices is the inverse of EncodeVertices.
func DecodeVertices(data []byte) ([]Vertex, error) {
	if len(data)%VertexStride != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d", ErrVertexDataSize, len(data), VertexStride)
	}
	vertices := make([]Vertex, len(data)/VertexStride)
	for i := range vertices {
		off := i * VertexStride
		vertices[i] = Vertex{
			Position: Vec2{X: getFloat32(data[off:]), Y: getFloat32(data[off+4:])},
			TexCoord: Vec2{X: getFloat32(data[off+8:]), Y: getFloat32(data[off+12:])},
		}
	}
	return vertices, nil
}

// EncodeIndices serializes uint16 indices.
func EncodeIndices(indices []uint16) []byte {
	buf := make([]byte, len(indices)*2)
	for i, idx := range indices {
		binary.LittleEndian.PutUint16(buf[i*2:], idx)
	}
	return buf
}

func putFloat32(buf []byte, v float32) {
	binary.LittleEndian.PutUint32(buf, math.Float32bits(v))
}

func getFloat32(buf []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(buf))
}
