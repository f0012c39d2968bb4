package rotation

import (
	"math"
	"testing"
)

func vecClose(t *testing.T, got, want Vec3, tol float64, label string) {
	t.Helper()
	for i := 0; i < 3; i++ {
		if math.Abs(got[i]-want[i]) > tol {
			t.Errorf("%s[%d] = %.15f, want %.15f (diff=%.2e)", label, i, got[i], want[i], math.Abs(got[i]-want[i]))
		}
	}
}

// TestElemDirection pins the passive sign convention. Rotating the axes by
// +90° about z puts the old +x direction at coordinates (0,-1,0) in the new
// frame: R3(90°)·[1 0 0] = [0 -1 0].
func TestElemDirection(t *testing.T) {
	r3 := New(DCM, Elem{AxisZ, math.Pi / 2})
	got := r3.Apply(Vec3{1, 0, 0})
	vecClose(t, got, Vec3{0, -1, 0}, 1e-15, "R3(90°)·x̂")

	r1 := New(DCM, Elem{AxisX, math.Pi / 2})
	got = r1.Apply(Vec3{0, 1, 0})
	vecClose(t, got, Vec3{0, 0, -1}, 1e-15, "R1(90°)·ŷ")

	r2 := New(DCM, Elem{AxisY, math.Pi / 2})
	got = r2.Apply(Vec3{0, 0, 1})
	vecClose(t, got, Vec3{-1, 0, 0}, 1e-15, "R2(90°)·ẑ")
}

// TestRepresentationEquivalence checks that the matrix and quaternion
// backends produce the same vector for the same element sequence.
func TestRepresentationEquivalence(t *testing.T) {
	tests := []struct {
		name  string
		elems []Elem
	}{
		{"single R3", []Elem{{AxisZ, 0.7}}},
		{"single R1 negative", []Elem{{AxisX, -1.2}}},
		{"euler 3-1-3", []Elem{{AxisZ, 0.3}, {AxisX, 1.1}, {AxisZ, -0.5}}},
		{"long product", []Elem{
			{AxisZ, 0.013}, {AxisY, -0.4}, {AxisX, 2.9}, {AxisZ, -1.7}, {AxisY, 0.002},
		}},
		{"tiny angles", []Elem{{AxisX, 1e-8}, {AxisZ, -3e-9}}},
	}

	vs := []Vec3{
		{1, 0, 0},
		{0.5, -0.3, 0.8},
		{7000, -1234.5, 4321.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dcm := New(DCM, tt.elems...)
			q := New(Quat, tt.elems...)

			if dcm.Representation() != DCM || q.Representation() != Quat {
				t.Fatalf("representation mismatch: %v / %v", dcm.Representation(), q.Representation())
			}

			for _, v := range vs {
				a := dcm.Apply(v)
				b := q.Apply(v)
				tol := 1e-12 * math.Max(1, v.Norm())
				vecClose(t, b, a, tol, "quat vs dcm")
			}
		})
	}
}

// TestOrthonormality checks products of many element rotations stay
// orthonormal: RRᵀ = I to 1e-10 per entry and det(R) = +1.
func TestOrthonormality(t *testing.T) {
	elems := make([]Elem, 0, 30)
	for i := 0; i < 30; i++ {
		elems = append(elems, Elem{Axis(i%3 + 1), 0.1 + 0.37*float64(i)})
	}

	for _, rep := range []Representation{DCM, Quat} {
		t.Run(rep.String(), func(t *testing.T) {
			r := New(rep, elems...)
			m := r.Matrix()
			prod := m.compose(m.Transpose())
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					want := 0.0
					if i == j {
						want = 1.0
					}
					if math.Abs(prod[i][j]-want) > 1e-10 {
						t.Errorf("(RRᵀ)[%d][%d] = %.15f, want %g", i, j, prod[i][j], want)
					}
				}
			}
			if d := m.Det(); math.Abs(d-1) > 1e-10 {
				t.Errorf("det = %.15f, want 1", d)
			}
		})
	}
}

// TestInverseRoundTrip checks r.Inverse().Compose(r) is the identity in
// both representations.
func TestInverseRoundTrip(t *testing.T) {
	elems := []Elem{{AxisZ, 1.9}, {AxisX, -0.2}, {AxisY, 0.77}}
	v := Vec3{6524.834, 6862.875, 6448.296}

	for _, rep := range []Representation{DCM, Quat} {
		t.Run(rep.String(), func(t *testing.T) {
			r := New(rep, elems...)
			round := r.Inverse().Compose(r)
			got := round.Apply(v)
			vecClose(t, got, v, 1e-9, "inverse round trip")
		})
	}
}

// TestComposeOrder verifies a.Compose(b) applies b first.
func TestComposeOrder(t *testing.T) {
	a := New(DCM, Elem{AxisZ, math.Pi / 2})
	b := New(DCM, Elem{AxisX, math.Pi / 2})

	// b first: ŷ → -ẑ under R1(90°), then R3 leaves z alone.
	got := a.Compose(b).Apply(Vec3{0, 1, 0})
	vecClose(t, got, Vec3{0, 0, -1}, 1e-15, "a∘b")

	// Same product built as a single element sequence.
	single := New(DCM, Elem{AxisZ, math.Pi / 2}, Elem{AxisX, math.Pi / 2})
	got2 := single.Apply(Vec3{0, 1, 0})
	vecClose(t, got2, got, 1e-15, "element-sequence product")
}

// TestComposeMixedRepresentations composes a quaternion with a matrix; the
// result stays in the receiver's representation.
func TestComposeMixedRepresentations(t *testing.T) {
	q := New(Quat, Elem{AxisZ, 0.4})
	m := New(DCM, Elem{AxisX, -0.9})

	mixed := q.Compose(m)
	if mixed.Representation() != Quat {
		t.Errorf("q.Compose(m) representation = %v, want Quat", mixed.Representation())
	}

	ref := New(DCM, Elem{AxisZ, 0.4}, Elem{AxisX, -0.9})
	v := Vec3{1, 2, 3}
	vecClose(t, mixed.Apply(v), ref.Apply(v), 1e-12, "mixed compose")

	mixed2 := m.Compose(q)
	if mixed2.Representation() != DCM {
		t.Errorf("m.Compose(q) representation = %v, want DCM", mixed2.Representation())
	}
}

// TestQuaternionMatrixRoundTrip converts each way and compares the action
// on vectors.
func TestQuaternionMatrixRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		elems []Elem
	}{
		{"identity", nil},
		{"generic", []Elem{{AxisZ, 2.3}, {AxisY, -1.1}, {AxisX, 0.6}}},
		// Near-180° rotations exercise the non-trace branches of the
		// matrix-to-quaternion extraction.
		{"near pi about x", []Elem{{AxisX, math.Pi - 1e-7}}},
		{"near pi about y", []Elem{{AxisY, math.Pi - 1e-7}}},
		{"near pi about z", []Elem{{AxisZ, math.Pi - 1e-7}}},
	}

	v := Vec3{0.28, -0.77, 1.4}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(DCM, tt.elems...)
			q := m.Quaternion()
			vecClose(t, q.Apply(v), m.Apply(v), 1e-12, "matrix→quat")

			if n := q.Norm(); math.Abs(n-1) > 1e-12 {
				t.Errorf("extracted quaternion norm = %.15f, want 1", n)
			}

			qNative := New(Quat, tt.elems...)
			m2 := qNative.Matrix()
			vecClose(t, m2.Apply(v), m.Apply(v), 1e-12, "quat→matrix")
		})
	}
}

// TestIdentity checks both identity constructors leave vectors unchanged.
func TestIdentity(t *testing.T) {
	v := Vec3{1.5, -2.5, 3.5}
	for _, rep := range []Representation{DCM, Quat} {
		got := Identity(rep).Apply(v)
		vecClose(t, got, v, 0, "identity "+rep.String())
	}
	got := New(DCM).Apply(v)
	vecClose(t, got, v, 0, "empty product")
}

func TestVec3Ops(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{-4, 5, 0.5}

	if got := a.Dot(b); math.Abs(got-7.5) > 1e-15 {
		t.Errorf("Dot = %v, want 7.5", got)
	}
	vecClose(t, a.Cross(b), Vec3{-14, -12.5, 13}, 1e-15, "Cross")
	vecClose(t, a.Add(b), Vec3{-3, 7, 3.5}, 1e-15, "Add")
	vecClose(t, a.Sub(b), Vec3{5, -3, 2.5}, 1e-15, "Sub")
	vecClose(t, a.Scale(2), Vec3{2, 4, 6}, 1e-15, "Scale")
	if got := (Vec3{3, 4, 0}).Norm(); math.Abs(got-5) > 1e-15 {
		t.Errorf("Norm = %v, want 5", got)
	}

	// Cross product of parallel vectors vanishes.
	vecClose(t, a.Cross(a.Scale(3)), Vec3{}, 1e-15, "parallel cross")
}
