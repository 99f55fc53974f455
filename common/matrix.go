package common

import "math"

// Matrix is a 4x4 transform matrix stored in column-major order, matching
// the usual GPU convention: basis columns first, translation in elements
// 12-14.
type Matrix [16]float64

// IdentityMatrix returns the identity matrix.
func IdentityMatrix() Matrix {
	var m Matrix
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
	return m
}

// Multiply returns m * other.
func (m Matrix) Multiply(other Matrix) Matrix {
	var out Matrix
	for i := 0; i < 4; i++ { // column of other
		for j := 0; j < 4; j++ { // row of m
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m[k*4+j] * other[i*4+k]
			}
			out[i*4+j] = sum
		}
	}
	return out
}

// Lerp interpolates every element independently. This is only meaningful
// for matrices that are close together; use DecomposeLerp for transforms.
func (m Matrix) Lerp(other Matrix, t float64) Matrix {
	var out Matrix
	for i := range m {
		out[i] = Lerp(m[i], other[i], t)
	}
	return out
}

// Translation returns the translation column of m.
func (m Matrix) Translation() Vector3 {
	return Vector3{X: m[12], Y: m[13], Z: m[14]}
}

// ComposeMatrix builds a transform matrix from scale, rotation, and
// translation, applied in that order.
func ComposeMatrix(scale Vector3, rotation Quaternion, translation Vector3) Matrix {
	x, y, z, w := rotation.X, rotation.Y, rotation.Z, rotation.W

	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	wx, wy, wz := w*x, w*y, w*z

	var m Matrix
	m[0] = (1 - 2*(yy+zz)) * scale.X
	m[1] = 2 * (xy + wz) * scale.X
	m[2] = 2 * (xz - wy) * scale.X

	m[4] = 2 * (xy - wz) * scale.Y
	m[5] = (1 - 2*(xx+zz)) * scale.Y
	m[6] = 2 * (yz + wx) * scale.Y

	m[8] = 2 * (xz + wy) * scale.Z
	m[9] = 2 * (yz - wx) * scale.Z
	m[10] = (1 - 2*(xx+yy)) * scale.Z

	m[12] = translation.X
	m[13] = translation.Y
	m[14] = translation.Z
	m[15] = 1
	return m
}

// Decompose splits m into scale, rotation, and translation. Scale is taken
// from the basis column magnitudes; a negative determinant flips the X
// scale. A degenerate (zero-scale) matrix yields the identity rotation.
func (m Matrix) Decompose() (scale Vector3, rotation Quaternion, translation Vector3) {
	translation = m.Translation()

	scale.X = math.Sqrt(m[0]*m[0] + m[1]*m[1] + m[2]*m[2])
	scale.Y = math.Sqrt(m[4]*m[4] + m[5]*m[5] + m[6]*m[6])
	scale.Z = math.Sqrt(m[8]*m[8] + m[9]*m[9] + m[10]*m[10])

	if m.determinant3() < 0 {
		scale.X = -scale.X
	}

	if scale.X == 0 || scale.Y == 0 || scale.Z == 0 {
		rotation = IdentityQuaternion()
		return scale, rotation, translation
	}

	// Normalized rotation entries, row r / column c.
	r00, r10, r20 := m[0]/scale.X, m[1]/scale.X, m[2]/scale.X
	r01, r11, r21 := m[4]/scale.Y, m[5]/scale.Y, m[6]/scale.Y
	r02, r12, r22 := m[8]/scale.Z, m[9]/scale.Z, m[10]/scale.Z

	trace := r00 + r11 + r22
	switch {
	case trace > 0:
		s := math.Sqrt(trace+1.0) * 2
		rotation.W = 0.25 * s
		rotation.X = (r21 - r12) / s
		rotation.Y = (r02 - r20) / s
		rotation.Z = (r10 - r01) / s
	case r00 > r11 && r00 > r22:
		s := math.Sqrt(1.0+r00-r11-r22) * 2
		rotation.W = (r21 - r12) / s
		rotation.X = 0.25 * s
		rotation.Y = (r01 + r10) / s
		rotation.Z = (r02 + r20) / s
	case r11 > r22:
		s := math.Sqrt(1.0+r11-r00-r22) * 2
		rotation.W = (r02 - r20) / s
		rotation.X = (r01 + r10) / s
		rotation.Y = 0.25 * s
		rotation.Z = (r12 + r21) / s
	default:
		s := math.Sqrt(1.0+r22-r00-r11) * 2
		rotation.W = (r10 - r01) / s
		rotation.X = (r02 + r20) / s
		rotation.Y = (r12 + r21) / s
		rotation.Z = 0.25 * s
	}
	return scale, rotation, translation
}

// DecomposeLerp interpolates two transform matrices by decomposing both,
// lerping scale and translation, slerping rotation, and recomposing.
func (m Matrix) DecomposeLerp(other Matrix, t float64) Matrix {
	startScale, startRotation, startTranslation := m.Decompose()
	endScale, endRotation, endTranslation := other.Decompose()

	return ComposeMatrix(
		startScale.Lerp(endScale, t),
		startRotation.Slerp(endRotation, t),
		startTranslation.Lerp(endTranslation, t),
	)
}

// determinant3 is the determinant of the upper-left 3x3 block.
func (m Matrix) determinant3() float64 {
	return m[0]*(m[5]*m[10]-m[6]*m[9]) -
		m[4]*(m[1]*m[10]-m[2]*m[9]) +
		m[8]*(m[1]*m[6]-m[2]*m[5])
}
