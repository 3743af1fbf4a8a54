// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Matrix4 is 4x4 matrix organized internally as column matrix,
// which is the layout expected by uniformMatrix4fv with transpose false.
// Element (row r, column c) is at index c*4+r.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4] matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// RotationY returns a matrix rotating by the given angle in radians
// around the vertical (Y) axis.
func RotationY(angle float32) Matrix4 {
	s, c := Sincos(angle)
	return Matrix4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// At returns the element at the given row and column.
func (m Matrix4) At(row, col int) float32 {
	return m[col*4+row]
}

// Slice returns the elements as a column-major slice.
func (m *Matrix4) Slice() []float32 {
	return m[:]
}

// Mul returns this matrix times other.
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	var r Matrix4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m.At(row, k) * other.At(k, col)
			}
			r[col*4+row] = sum
		}
	}
	return r
}

// Transpose returns the transpose of this matrix.
func (m Matrix4) Transpose() Matrix4 {
	var r Matrix4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			r[row*4+col] = m[col*4+row]
		}
	}
	return r
}

// Determinant calculates and returns the determinant of this matrix.
func (m Matrix4) Determinant() float32 {
	n11, n12, n13, n14 := m[0], m[4], m[8], m[12]
	n21, n22, n23, n24 := m[1], m[5], m[9], m[13]
	n31, n32, n33, n34 := m[2], m[6], m[10], m[14]
	n41, n42, n43, n44 := m[3], m[7], m[11], m[15]

	return n41*(n14*n23*n32-n13*n24*n32-n14*n22*n33+n12*n24*n33+n13*n22*n34-n12*n23*n34) +
		n42*(n11*n23*n34-n11*n24*n33+n14*n21*n33-n13*n21*n34+n13*n24*n31-n14*n23*n31) +
		n43*(n11*n24*n32-n11*n22*n34-n14*n21*n32+n12*n21*n34+n14*n22*n31-n12*n24*n31) +
		n44*(-n13*n22*n31-n11*n23*n32+n11*n22*n33+n13*n21*n32-n12*n21*n33+n12*n23*n31)
}

// MulVector3AsPoint returns the point v transformed by this matrix,
// treating v as a homogeneous point with w = 1.
func (m Matrix4) MulVector3AsPoint(v Vector3) Vector3 {
	x := m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]
	y := m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]
	z := m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]
	w := m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]
	if w != 0 && w != 1 {
		return Vec3(x/w, y/w, z/w)
	}
	return Vec3(x, y, z)
}

// IsApproxEqual returns whether every element of this matrix is
// within tol of the corresponding element of other.
func (m Matrix4) IsApproxEqual(other Matrix4, tol float32) bool {
	for i := range m {
		if Abs(m[i]-other[i]) > tol {
			return false
		}
	}
	return true
}
