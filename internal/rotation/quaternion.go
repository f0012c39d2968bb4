package rotation

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// Quaternion is a unit quaternion backed by gonum's quat.Number. The stored
// value is the Hamilton quaternion q for which Apply(v) = q ⊗ v ⊗ q*, so a
// passive coordinate rotation by +θ about axis ê is stored as
// (cos θ/2, −sin(θ/2)·ê). Under this storage, Compose multiplies in the
// same order as the matrix product, so the two backends share one
// composition convention.
type Quaternion struct {
	q quat.Number
}

// IdentityQuaternion returns the identity rotation.
func IdentityQuaternion() Quaternion {
	return Quaternion{q: quat.Number{Real: 1}}
}

func newQuaternion(w, x, y, z float64) Quaternion {
	return Quaternion{q: quat.Number{Real: w, Imag: x, Jmag: y, Kmag: z}}
}

// quatElem builds the quaternion equivalent of matrixElem(axis, angle).
func quatElem(axis Axis, angle float64) Quaternion {
	s, c := math.Sincos(angle / 2)
	switch axis {
	case AxisX:
		return newQuaternion(c, -s, 0, 0)
	case AxisY:
		return newQuaternion(c, 0, -s, 0)
	default:
		return newQuaternion(c, 0, 0, -s)
	}
}

// W returns the scalar part.
func (r Quaternion) W() float64 { return r.q.Real }

// XYZ returns the vector part.
func (r Quaternion) XYZ() Vec3 { return Vec3{r.q.Imag, r.q.Jmag, r.q.Kmag} }

// Norm returns the quaternion magnitude (1 up to roundoff for every value
// produced by this package).
func (r Quaternion) Norm() float64 {
	return quat.Abs(r.q)
}

func (r Quaternion) normalized() Quaternion {
	n := quat.Abs(r.q)
	if n == 0 {
		return IdentityQuaternion()
	}
	return Quaternion{q: quat.Scale(1/n, r.q)}
}

// Apply rotates the coordinates of v: q ⊗ v ⊗ q*.
func (r Quaternion) Apply(v Vec3) Vec3 {
	vq := quat.Number{Imag: v[0], Jmag: v[1], Kmag: v[2]}
	out := quat.Mul(quat.Mul(r.q, vq), quat.Conj(r.q))
	return Vec3{out.Imag, out.Jmag, out.Kmag}
}

func (r Quaternion) compose(o Quaternion) Quaternion {
	return Quaternion{q: quat.Mul(r.q, o.q)}
}

// Compose returns r∘other (other applied first). A matrix argument is
// converted through its quaternion form.
func (r Quaternion) Compose(other Rotation) Rotation {
	return r.compose(other.Quaternion())
}

// Inverse returns the conjugate, which equals the inverse for a unit
// quaternion.
func (r Quaternion) Inverse() Rotation {
	return Quaternion{q: quat.Conj(r.q)}
}

// Matrix converts the quaternion to the equivalent DCM.
func (r Quaternion) Matrix() Matrix3 {
	w, x, y, z := r.q.Real, r.q.Imag, r.q.Jmag, r.q.Kmag
	return Matrix3{
		{1 - 2*(y*y+z*z), 2 * (x*y - w*z), 2 * (x*z + w*y)},
		{2 * (x*y + w*z), 1 - 2*(x*x+z*z), 2 * (y*z - w*x)},
		{2 * (x*z - w*y), 2 * (y*z + w*x), 1 - 2*(x*x+y*y)},
	}
}

// Quaternion returns r itself.
func (r Quaternion) Quaternion() Quaternion { return r }

// Representation reports Quat.
func (r Quaternion) Representation() Representation { return Quat }
