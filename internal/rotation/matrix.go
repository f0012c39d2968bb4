package rotation

import "math"

// Matrix3 is a 3×3 direction cosine matrix, row-major. It is orthonormal
// with determinant +1 for every value produced by this package.
type Matrix3 [3][3]float64

// IdentityMatrix returns the identity DCM.
func IdentityMatrix() Matrix3 {
	return Matrix3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// matrixElem builds the principal-axis coordinate rotation matrix ROTn(θ).
func matrixElem(axis Axis, angle float64) Matrix3 {
	s, c := math.Sincos(angle)
	switch axis {
	case AxisX:
		return Matrix3{{1, 0, 0}, {0, c, s}, {0, -s, c}}
	case AxisY:
		return Matrix3{{c, 0, -s}, {0, 1, 0}, {s, 0, c}}
	default:
		return Matrix3{{c, s, 0}, {-s, c, 0}, {0, 0, 1}}
	}
}

// Apply rotates the coordinates of v.
func (m Matrix3) Apply(v Vec3) Vec3 {
	return Vec3{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// compose returns m·o.
func (m Matrix3) compose(o Matrix3) Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j]
		}
	}
	return r
}

// Compose returns m∘other (other applied first). A quaternion argument is
// converted through its matrix form.
func (m Matrix3) Compose(other Rotation) Rotation {
	return m.compose(other.Matrix())
}

// Inverse returns the transpose, which equals the inverse for a DCM.
func (m Matrix3) Inverse() Rotation {
	return m.Transpose()
}

// Transpose returns mᵀ.
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// Det returns the determinant.
func (m Matrix3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Matrix returns m itself.
func (m Matrix3) Matrix() Matrix3 { return m }

// Quaternion converts the DCM to the equivalent unit quaternion using
// Shepperd's method (largest-pivot branch keeps the conversion stable for
// rotations near π).
func (m Matrix3) Quaternion() Quaternion {
	tr := m[0][0] + m[1][1] + m[2][2]
	var w, x, y, z float64
	switch {
	case tr > m[0][0] && tr > m[1][1] && tr > m[2][2]:
		s := math.Sqrt(1 + tr)
		w = 0.5 * s
		s = 0.5 / s
		x = (m[2][1] - m[1][2]) * s
		y = (m[0][2] - m[2][0]) * s
		z = (m[1][0] - m[0][1]) * s
	case m[0][0] > m[1][1] && m[0][0] > m[2][2]:
		s := math.Sqrt(1 + m[0][0] - m[1][1] - m[2][2])
		x = 0.5 * s
		s = 0.5 / s
		w = (m[2][1] - m[1][2]) * s
		y = (m[0][1] + m[1][0]) * s
		z = (m[2][0] + m[0][2]) * s
	case m[1][1] > m[2][2]:
		s := math.Sqrt(1 - m[0][0] + m[1][1] - m[2][2])
		y = 0.5 * s
		s = 0.5 / s
		w = (m[0][2] - m[2][0]) * s
		x = (m[0][1] + m[1][0]) * s
		z = (m[1][2] + m[2][1]) * s
	default:
		s := math.Sqrt(1 - m[0][0] - m[1][1] + m[2][2])
		z = 0.5 * s
		s = 0.5 / s
		w = (m[1][0] - m[0][1]) * s
		x = (m[2][0] + m[0][2]) * s
		y = (m[1][2] + m[2][1]) * s
	}
	return newQuaternion(w, x, y, z).normalized()
}

// Representation reports DCM.
func (m Matrix3) Representation() Representation { return DCM }
