// Package mathx implements the affine matrix kernel used to place sprite
// quads in world space.
package mathx

import "math"

// Mat4 is a column-major 4x4 affine matrix. The four columns double as the
// four corners of a unit quad once the matrix has been built up through
// Scale2D/Flip/rotations/translations; Corner reads them back out.
type Mat4 [4][4]float32

// NewUnitQuad returns the matrix initialized to the unit-quad template:
// four corners at (-0.5,-0.5), (0.5,-0.5), (0.5,0.5), (-0.5,0.5), all at
// z=0, in homogeneous form.
func NewUnitQuad() Mat4 {
	return Mat4{
		{-0.5, 0.5, 0.5, -0.5},
		{-0.5, -0.5, 0.5, 0.5},
		{0, 0, 0, 0},
		{1, 1, 1, 1},
	}
}

// Scale2D scales the X and Y rows in place.
func (m *Mat4) Scale2D(w, h float32) {
	for i := 0; i < 4; i++ {
		m[0][i] *= w
		m[1][i] *= h
	}
}

// Flip negates the X row, mirroring the quad horizontally.
func (m *Mat4) Flip() {
	for i := 0; i < 4; i++ {
		m[0][i] = -m[0][i]
	}
}

// RotateX rotates the Y/Z rows about the X axis by theta radians.
func (m *Mat4) RotateX(theta float32) {
	s, c := float32(math.Sin(float64(theta))), float32(math.Cos(float64(theta)))
	for i := 0; i < 4; i++ {
		y, z := m[1][i], m[2][i]
		m[1][i] = y*c - z*s
		m[2][i] = y*s + z*c
	}
}

// RotateY rotates the X/Z rows about the Y axis by theta radians.
func (m *Mat4) RotateY(theta float32) {
	s, c := float32(math.Sin(float64(theta))), float32(math.Cos(float64(theta)))
	for i := 0; i < 4; i++ {
		x, z := m[0][i], m[2][i]
		m[0][i] = x*c + z*s
		m[2][i] = -x*s + z*c
	}
}

// RotateZ rotates the X/Y rows about the Z axis by theta radians.
func (m *Mat4) RotateZ(theta float32) {
	s, c := float32(math.Sin(float64(theta))), float32(math.Cos(float64(theta)))
	for i := 0; i < 4; i++ {
		x, y := m[0][i], m[1][i]
		m[0][i] = x*c - y*s
		m[1][i] = x*s + y*c
	}
}

// Translate adds (x, y, z) to every column.
func (m *Mat4) Translate(x, y, z float32) {
	for i := 0; i < 4; i++ {
		m[0][i] += x
		m[1][i] += y
		m[2][i] += z
	}
}

// Translate2D adds (x, y) to every column, leaving Z untouched.
func (m *Mat4) Translate2D(x, y float32) {
	for i := 0; i < 4; i++ {
		m[0][i] += x
		m[1][i] += y
	}
}

// Corner returns the (x, y, z) world position of column i (0..3).
func (m *Mat4) Corner(i int) (x, y, z float32) {
	return m[0][i], m[1][i], m[2][i]
}
