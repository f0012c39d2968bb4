// Package rotation provides the dual matrix/quaternion representation of
// coordinate-frame rotations.
//
// Every rotation built by the frame models is a product of principal-axis
// rotations. Model code emits that product as a sequence of Elem values and
// asks New to assemble it in either representation, so the series and
// polynomial logic is written exactly once. The two representations are
// numerically interchangeable: applying the matrix form and the quaternion
// form of the same product to a vector agrees to double precision.
//
// Convention: rotations are passive (coordinate rotations). R3(θ) rotates
// the coordinate axes by +θ about the z axis, matching ROT3 in Vallado,
// "Fundamentals of Astrodynamics and Applications", Section 3.3. The
// convention is fixed for the whole package and never flipped per frame
// pair.
package rotation

import "math"

// Vec3 is a Cartesian 3-vector in an arbitrary but consistent unit.
type Vec3 [3]float64

// Norm returns the magnitude of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Dot returns the scalar product v·u.
func (v Vec3) Dot(u Vec3) float64 {
	return v[0]*u[0] + v[1]*u[1] + v[2]*u[2]
}

// Cross returns the vector product v×u.
func (v Vec3) Cross(u Vec3) Vec3 {
	return Vec3{
		v[1]*u[2] - v[2]*u[1],
		v[2]*u[0] - v[0]*u[2],
		v[0]*u[1] - v[1]*u[0],
	}
}

// Scale returns the vector scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Add returns v + u.
func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{v[0] + u[0], v[1] + u[1], v[2] + u[2]}
}

// Sub returns v - u.
func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{v[0] - u[0], v[1] - u[1], v[2] - u[2]}
}

// Axis identifies a principal coordinate axis.
type Axis int

const (
	AxisX Axis = 1
	AxisY Axis = 2
	AxisZ Axis = 3
)

// Elem is one principal-axis coordinate rotation: Angle radians about Axis.
type Elem struct {
	Axis  Axis
	Angle float64
}

// Representation selects the concrete rotation backend.
type Representation int

const (
	// DCM selects the 3×3 direction-cosine-matrix backend.
	DCM Representation = iota
	// Quat selects the unit-quaternion backend.
	Quat
)

// String implements fmt.Stringer.
func (r Representation) String() string {
	switch r {
	case DCM:
		return "dcm"
	case Quat:
		return "quaternion"
	default:
		return "unknown"
	}
}

// Rotation is a frame rotation in either representation. Implementations
// are immutable value types; every method returns a new value.
//
// Compose follows operator order: a.Compose(b) applies b first, then a,
// mirroring matrix multiplication a·b.
type Rotation interface {
	// Apply rotates the coordinates of v into the target frame.
	Apply(v Vec3) Vec3
	// Compose returns this∘other (other applied first).
	Compose(other Rotation) Rotation
	// Inverse returns the reverse rotation.
	Inverse() Rotation
	// Matrix returns the direction-cosine-matrix form.
	Matrix() Matrix3
	// Quaternion returns the unit-quaternion form.
	Quaternion() Quaternion
	// Representation reports the native backend of this value.
	Representation() Representation
}

// New assembles the product elems[0]·elems[1]·…·elems[n-1] (the last element
// is applied to a vector first) in the requested representation. An empty
// sequence yields the identity.
func New(rep Representation, elems ...Elem) Rotation {
	if rep == Quat {
		q := IdentityQuaternion()
		for _, e := range elems {
			q = q.compose(quatElem(e.Axis, e.Angle))
		}
		return q
	}
	m := IdentityMatrix()
	for _, e := range elems {
		m = m.compose(matrixElem(e.Axis, e.Angle))
	}
	return m
}

// Identity returns the identity rotation in the requested representation.
func Identity(rep Representation) Rotation {
	if rep == Quat {
		return IdentityQuaternion()
	}
	return IdentityMatrix()
}
