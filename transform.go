package glyph

import (
	"math"

	"seehuhn.de/go/geom/matrix"
)

// Transform is a 3x3 matrix in row-major order, indexed t[row][col]:
//
//	| a  b  c |
//	| d  e  f |
//	| g  h  i |
//
// Applied to a column vector (x, y, 1):
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
//
// The bottom row is (0, 0, 1) for affine transforms. It is carried through
// the uniform layout but does not influence the clip-space x/y.
type Transform [3][3]float32

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Translate creates a translation transform.
func Translate(x, y float32) Transform {
	return Transform{
		{1, 0, x},
		{0, 1, y},
		{0, 0, 1},
	}
}

// Scale creates a scaling transform.
func Scale(x, y float32) Transform {
	return Transform{
		{x, 0, 0},
		{0, y, 0},
		{0, 0, 1},
	}
}

// Rotate creates a rotation transform (angle in radians, counter-clockwise
// in a y-up space).
func Rotate(angle float64) Transform {
	cos := float32(math.Cos(angle))
	sin := float32(math.Sin(angle))
	return Transform{
		{cos, -sin, 0},
		{sin, cos, 0},
		{0, 0, 1},
	}
}

// Compose builds translate(position) * rotate(rotation) * scale(scale),
// the transform of a text run placed at position.
func Compose(position Vec2, rotation float64, scale Vec2) Transform {
	cos := float32(math.Cos(rotation))
	sin := float32(math.Sin(rotation))
	return Transform{
		{cos * scale.X, -sin * scale.Y, position.X},
		{sin * scale.X, cos * scale.Y, position.Y},
		{0, 0, 1},
	}
}

// FromCTM converts a PDF-style current transformation matrix
// [a b c d e f] (x' = a*x + c*y + e, y' = b*x + d*y + f) into a Transform.
func FromCTM(m matrix.Matrix) Transform {
	return Transform{
		{float32(m[0]), float32(m[2]), float32(m[4])},
		{float32(m[1]), float32(m[3]), float32(m[5])},
		{0, 0, 1},
	}
}

// Multiply returns t * other. Applying the result to a point is the same
// as applying other first and t second.
func (t Transform) Multiply(other Transform) Transform {
	var r Transform
	for i := range 3 {
		for j := range 3 {
			r[i][j] = t[i][0]*other[0][j] + t[i][1]*other[1][j] + t[i][2]*other[2][j]
		}
	}
	return r
}

// Apply multiplies t by the homogeneous point (p.X, p.Y, 1).
func (t *Transform) Apply(p Vec2) Vec3 {
	return Vec3{
		X: t[0][0]*p.X + t[0][1]*p.Y + t[0][2],
		Y: t[1][0]*p.X + t[1][1]*p.Y + t[1][2],
		Z: t[2][0]*p.X + t[2][1]*p.Y + t[2][2],
	}
}

// Padded returns the rows of t, each padded to four components.
// This is the std140 layout of a mat3 uniform: three 16-byte rows.
func (t Transform) Padded() [3][4]float32 {
	return [3][4]float32{
		{t[0][0], t[0][1], t[0][2], 0},
		{t[1][0], t[1][1], t[1][2], 0},
		{t[2][0], t[2][1], t[2][2], 0},
	}
}

// IsIdentity reports whether t is exactly the identity transform.
func (t Transform) IsIdentity() bool {
	return t == Identity()
}

// ApproxEqual reports whether every element of t is within tol of other.
func (t Transform) ApproxEqual(other Transform, tol float32) bool {
	for i := range 3 {
		for j := range 3 {
			d := t[i][j] - other[i][j]
			if !(d <= tol && d >= -tol) {
				return false
			}
		}
	}
	return true
}
