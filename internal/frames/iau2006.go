package frames

import (
	"math"

	"github.com/star/astroframe/internal/rotation"
)

// Fixed frame-bias angles between the GCRF and the mean dynamical J2000
// frame, in arcseconds (IERS Conventions 2010, Section 5.5.2).
const (
	biasDAlpha0 = -0.0146
	biasXi0     = -0.016617
	biasEta0    = -0.0068192
)

// BiasIAU2006 builds the constant frame-bias rotation taking GCRF
// coordinates to the mean dynamical J2000 frame:
//
//	r_MJ2000 = R1(−η₀) · R2(ξ₀) · R3(dα₀) · r_GCRF
func BiasIAU2006(rep rotation.Representation) rotation.Rotation {
	return rotation.New(rep,
		rotation.Elem{Axis: rotation.AxisX, Angle: -biasEta0 * arcsecToRad},
		rotation.Elem{Axis: rotation.AxisY, Angle: biasXi0 * arcsecToRad},
		rotation.Elem{Axis: rotation.AxisZ, Angle: biasDAlpha0 * arcsecToRad},
	)
}

// fwAngles06 returns the IAU-2006 Fukushima-Williams precession angles
// γ̄, φ̄, ψ̄ and the mean obliquity εA, in radians, at t TT Julian
// centuries. The angles include the frame bias, so the 4-rotation product
// below maps GCRF directly to the of-date frames.
func fwAngles06(t float64) (gamb, phib, psib, epsa float64) {
	gamb = arcsecToRad * (-0.052928 + 10.556378*t + 0.4932044*t*t -
		0.00031238*t*t*t - 0.000002788*t*t*t*t + 0.0000000260*t*t*t*t*t)
	phib = arcsecToRad * (84381.412819 - 46.811016*t + 0.0511268*t*t +
		0.00053289*t*t*t - 0.000000440*t*t*t*t - 0.0000000176*t*t*t*t*t)
	psib = arcsecToRad * (-0.041775 + 5038.481484*t + 1.5584175*t*t -
		0.00018522*t*t*t - 0.000026452*t*t*t*t - 0.0000000148*t*t*t*t*t)
	epsa = arcsecToRad * (84381.406 - 46.836769*t - 0.0001831*t*t +
		0.00200340*t*t*t - 0.000000576*t*t*t*t - 0.0000000434*t*t*t*t*t)
	return gamb, phib, psib, epsa
}

// fw2Elems expresses the Fukushima-Williams 4-rotation product
//
//	r_of-date = R1(−ε) · R3(−ψ) · R1(φ̄) · R3(γ̄) · r_GCRF
//
// as rotation elements; with (ψ̄, εA) it yields precession×bias, with
// nutation added to both angles the full NPB rotation.
func fw2Elems(gamb, phib, psi, eps float64) []rotation.Elem {
	return []rotation.Elem{
		{Axis: rotation.AxisX, Angle: -eps},
		{Axis: rotation.AxisZ, Angle: -psi},
		{Axis: rotation.AxisX, Angle: phib},
		{Axis: rotation.AxisZ, Angle: gamb},
	}
}

// PrecessionIAU2006 builds the precession(×bias) rotation taking GCRF
// coordinates to the IAU-2006 mean-of-date frame (MOD06).
func PrecessionIAU2006(rep rotation.Representation, t float64) rotation.Rotation {
	gamb, phib, psib, epsa := fwAngles06(t)
	return rotation.New(rep, fw2Elems(gamb, phib, psib, epsa)...)
}

// NPBIAU2006 builds the full nutation×precession×bias rotation taking GCRF
// coordinates to the IAU-2006 equinox-based true-of-date frame (ERS).
// ddpsi/ddeps are equinox-system celestial-pole corrections in radians
// (zero without EOP).
func NPBIAU2006(rep rotation.Representation, t, ddpsi, ddeps float64) rotation.Rotation {
	gamb, phib, psib, epsa := fwAngles06(t)
	dpsi, deps := nutation2006(t)
	return rotation.New(rep, fw2Elems(gamb, phib, psib+dpsi+ddpsi, epsa+deps+ddeps)...)
}

// poleCorrections06 converts the IAU-2000 EOP offsets (δX, δY, radians)
// into equinox-system corrections (δψ, δε) for the equinox-based chain,
// using the standard first-order relation δψ = δX / sin εA, δε = δY.
func poleCorrections06(t, dx, dy float64) (ddpsi, ddeps float64) {
	_, _, _, epsa := fwAngles06(t)
	return dx / math.Sin(epsa), dy
}

// cipXY extracts the celestial intermediate pole coordinates X, Y (radians)
// from the NPB rotation: the CIP unit vector is the bottom row of the
// GCRF-to-true matrix.
func cipXY(t float64) (x, y float64) {
	m := NPBIAU2006(rotation.DCM, t, 0, 0).Matrix()
	return m[2][0], m[2][1]
}

// s06Term is one periodic term of the CIO-locator development.
type s06Term struct {
	l, lp, f, d, om int
	amp             float64 // µas, times sin(argument)
}

// s06Series holds the leading periodic terms of s + XY/2 (IERS Conventions
// 2010, Table 5.2d). Time-multiplied periodic terms are dropped; they stay
// below a microarcsecond for decades around J2000.
var s06Series = []s06Term{
	{0, 0, 0, 0, 1, -2640.73},
	{0, 0, 0, 0, 2, -63.53},
	{0, 0, 2, -2, 3, -11.75},
	{0, 0, 2, -2, 1, -11.21},
	{0, 0, 2, -2, 2, 4.57},
	{0, 0, 2, 0, 3, -2.02},
	{0, 0, 2, 0, 1, -1.98},
	{0, 0, 0, 0, 3, 1.72},
	{0, 1, 0, 0, 1, 1.41},
	{0, 1, 0, 0, -1, 1.26},
	{1, 0, 0, 0, -1, 0.63},
	{1, 0, 0, 0, 1, 0.63},
}

// s06 returns the CIO locator s in radians given t (TT Julian centuries)
// and the CIP coordinates X, Y (radians).
func s06(t, x, y float64) float64 {
	args := fundArgs2000(t)
	// Polynomial part of s + XY/2, in µas.
	s := 94.00 + 3808.65*t - 122.68*t*t - 72574.11*t*t*t +
		27.98*t*t*t*t + 15.62*t*t*t*t*t
	for _, tm := range s06Series {
		s += tm.amp * math.Sin(args.argument(tm.l, tm.lp, tm.f, tm.d, tm.om))
	}
	return s*1e-6*arcsecToRad - x*y/2
}

// CIORotation builds the CIO-based rotation taking CIRS coordinates to
// GCRF, from the CIP coordinates X, Y and the CIO locator s (all radians,
// with any EOP δX/δY corrections already applied to X and Y):
//
//	r_GCRF = R3(−E) · R2(−d) · R3(E) · R3(s) · r_CIRS
//
// with E = atan2(Y, X) and d the CIP polar angle. This is the published
// spherical-angle form of the Q(t) matrix (IERS Conventions 2010, Eq. 5.7);
// the composition order is the theory's, not an algebraic rearrangement.
func CIORotation(rep rotation.Representation, x, y, s float64) rotation.Rotation {
	e := math.Atan2(y, x)
	r2 := x*x + y*y
	d := math.Atan(math.Sqrt(r2 / (1 - r2)))
	return rotation.New(rep,
		rotation.Elem{Axis: rotation.AxisZ, Angle: -e},
		rotation.Elem{Axis: rotation.AxisY, Angle: -d},
		rotation.Elem{Axis: rotation.AxisZ, Angle: e + s},
	)
}

// eo06 returns the equation of the origins in radians given the NPB matrix
// and the CIO locator s: the angle between the CIO and the true equinox
// along the intermediate equator.
func eo06(m rotation.Matrix3, s float64) float64 {
	x := m[2][0]
	ax := x / (1 + m[2][2])
	xs := 1 - ax*x
	ys := -ax * m[2][1]
	zs := -x
	p := m[0][0]*xs + m[0][1]*ys + m[0][2]*zs
	q := m[1][0]*xs + m[1][1]*ys + m[1][2]*zs
	if p != 0 || q != 0 {
		return s - math.Atan2(q, p)
	}
	return s
}

// GAST06 returns Greenwich Apparent Sidereal Time for the IAU-2006 theory:
// ERA minus the equation of the origins.
func GAST06(jdUT1, t, ddpsi, ddeps float64) float64 {
	npb := NPBIAU2006(rotation.DCM, t, ddpsi, ddeps).Matrix()
	x, y := npb[2][0], npb[2][1]
	s := s06(t, x, y)
	return wrapTwoPi(ERA(jdUT1) - eo06(npb, s))
}
