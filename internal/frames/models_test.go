package frames

import (
	"math"
	"testing"

	"github.com/star/astroframe/internal/rotation"
	"github.com/star/astroframe/internal/timeutil"
)

const radToDeg = 180.0 / math.Pi

// Vallado Example 3-15 time quantities at 2004-04-06 07:51:28.386009 UTC.
var (
	valladoJDUT1 = timeutil.UTCToUT1(valladoJD, -0.4399619)
	valladoT     = timeutil.JulianCenturies(timeutil.UTCToTT(valladoJD))
)

func TestGMST82Vallado(t *testing.T) {
	// Vallado Example 3-5 / 3-15: GMST = 312.8098943°.
	got := GMST82(valladoJDUT1) * radToDeg
	if d := math.Abs(got - 312.8098943); d > 1e-5 {
		t.Errorf("GMST82 = %.7f deg, want 312.8098943 (diff=%.2e)", got, d)
	}
}

func TestGAST82Vallado(t *testing.T) {
	// Vallado Example 3-15: GAST = 312.8067654° with the corrected nutation.
	ddpsi := -0.052195 * arcsecToRad
	dpsi, _ := nutation80(valladoT)
	got := GAST82(valladoJDUT1, valladoT, dpsi+ddpsi) * radToDeg
	if d := math.Abs(got - 312.8067654); d > 1e-4 {
		t.Errorf("GAST82 = %.7f deg, want 312.8067654 (diff=%.2e)", got, d)
	}
}

func TestERAVallado(t *testing.T) {
	// Vallado Example 3-15: ERA = 312.7552829°.
	got := ERA(valladoJDUT1) * radToDeg
	if d := math.Abs(got - 312.7552829); d > 1e-5 {
		t.Errorf("ERA = %.7f deg, want 312.7552829 (diff=%.2e)", got, d)
	}
}

func TestERAAtJ2000(t *testing.T) {
	// At the J2000.0 epoch the ERA polynomial reduces to its constant term.
	want := wrapTwoPi(twoPi * 0.7790572732640)
	if got := ERA(timeutil.J2000); math.Abs(got-want) > 1e-12 {
		t.Errorf("ERA(J2000) = %.15f, want %.15f", got, want)
	}
}

func TestMeanObliquity80(t *testing.T) {
	// J2000.0 value is the defining constant 84381.448″ = 23.43929111°.
	got := meanObliquity80(0) * radToDeg
	if d := math.Abs(got - 23.439291111); d > 1e-9 {
		t.Errorf("meanObliquity80(0) = %.9f deg, want 23.439291111", got)
	}

	// Obliquity decreases with time.
	if meanObliquity80(1) >= meanObliquity80(0) {
		t.Error("mean obliquity not decreasing")
	}
}

func TestPrecessionAnglesFK5(t *testing.T) {
	// One century from J2000 the polynomials evaluate to their coefficient
	// sums (arcsec).
	zeta, theta, z := precessionAnglesFK5(1)
	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"zeta", zeta / arcsecToRad, 2306.2181 + 0.30188 + 0.017998},
		{"theta", theta / arcsecToRad, 2004.3109 - 0.42665 - 0.041833},
		{"z", z / arcsecToRad, 2306.2181 + 1.09468 + 0.018203},
	}
	for _, c := range checks {
		if d := math.Abs(c.got - c.want); d > 1e-9 {
			t.Errorf("%s(t=1) = %.9f arcsec, want %.9f", c.name, c.got, c.want)
		}
	}

	// At t=0 precession vanishes and the rotation is the identity.
	r := PrecessionFK5(rotation.DCM, 0)
	v := rotation.Vec3{1, 2, 3}
	if got := r.Apply(v); got != v {
		t.Errorf("PrecessionFK5(t=0) not identity: %v", got)
	}
}

func TestFundArgs2000AtJ2000(t *testing.T) {
	// IERS Conventions 2010, Eq. 5.43 constant terms, in degrees.
	args := fundArgs2000(0)
	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"L", args.L, 134.96340251},
		{"LP", args.LP, 357.52910918},
		{"F", args.F, 93.27209062},
		{"D", args.D, 297.85019547},
		{"Om", args.Om, 125.04455501},
	}
	for _, c := range checks {
		if d := math.Abs(c.got*radToDeg - c.want); d > 1e-7 {
			t.Errorf("%s(0) = %.8f deg, want %.8f", c.name, c.got*radToDeg, c.want)
		}
	}
}

func TestArgumentCombination(t *testing.T) {
	args := fundArgs{L: 0.1, LP: 0.2, F: 0.3, D: 0.4, Om: 0.5}
	got := args.argument(1, -1, 2, 0, -2)
	want := 0.1 - 0.2 + 0.6 - 1.0
	if math.Abs(got-want) > 1e-15 {
		t.Errorf("argument = %v, want %v", got, want)
	}
}

func TestNutation80Magnitude(t *testing.T) {
	// The 1980 series is dominated by the 18.6-year Ω term: |Δψ| ≤ ~17.3″,
	// |Δε| ≤ ~9.3″ for any epoch.
	for _, tc := range []float64{-1, -0.5, 0, 0.042953, 0.5, 1} {
		dpsi, deps := nutation80(tc)
		if a := math.Abs(dpsi / arcsecToRad); a > 20 {
			t.Errorf("|Δψ(t=%v)| = %.3f arcsec, implausibly large", tc, a)
		}
		if a := math.Abs(deps / arcsecToRad); a > 12 {
			t.Errorf("|Δε(t=%v)| = %.3f arcsec, implausibly large", tc, a)
		}
	}
}

func TestNutationModelsAgree(t *testing.T) {
	// The 1980 and 2000A series describe the same physics; they differ at
	// the tens-of-milliarcseconds level, not arcseconds.
	for _, tc := range []float64{-0.3, 0.042953, 0.26} {
		dpsi80, deps80 := nutation80(tc)
		dpsi00, deps00 := nutation2000AB(tc)
		if d := math.Abs(dpsi80-dpsi00) / arcsecToRad; d > 0.1 {
			t.Errorf("Δψ models differ by %.4f arcsec at t=%v", d, tc)
		}
		if d := math.Abs(deps80-deps00) / arcsecToRad; d > 0.1 {
			t.Errorf("Δε models differ by %.4f arcsec at t=%v", d, tc)
		}
	}
}

func TestEarthRate(t *testing.T) {
	if got := EarthRate(0); got != OmegaEarth {
		t.Errorf("EarthRate(0) = %v, want nominal rate", got)
	}
	// Positive LOD means a slower spin.
	if got := EarthRate(0.0015563); got >= OmegaEarth {
		t.Error("EarthRate with positive LOD not below nominal")
	}
	want := OmegaEarth * (1 - 0.0015563/86400.0)
	if got := EarthRate(0.0015563); math.Abs(got-want) > 1e-19 {
		t.Errorf("EarthRate = %.18e, want %.18e", got, want)
	}
}

// TestPolarMotionCIP: the polar-motion rotation must take the ITRF
// coordinates of the intermediate pole, (xp, −yp, 1) to first order, onto
// the intermediate frame's z axis.
func TestPolarMotionCIP(t *testing.T) {
	xp := -0.140682 * arcsecToRad
	yp := 0.333309 * arcsecToRad

	w := PolarMotion(rotation.DCM, xp, yp, sPrime06(valladoT))
	pole := rotation.Vec3{math.Sin(xp), -math.Cos(xp) * math.Sin(yp), math.Cos(xp) * math.Cos(yp)}
	got := w.Apply(pole)

	if d := math.Abs(got[2] - 1); d > 1e-12 {
		t.Errorf("pole z = 1%+.3e", -d)
	}
	// Residual transverse components are second order in xp, yp (~1e-12).
	if math.Abs(got[0]) > 1e-11 || math.Abs(got[1]) > 1e-11 {
		t.Errorf("pole transverse residual = [%.3e, %.3e]", got[0], got[1])
	}
}

// TestTEMEBridge: with the equation of the equinoxes zeroed TEME and TOD
// coincide; in general they differ by a z-rotation of EqE magnitude.
func TestTEMEBridge(t *testing.T) {
	b := TEMEToTOD(rotation.DCM, valladoT, 0)
	m := b.Matrix()

	// Pure z-rotation: z axis untouched.
	if m[2][2] != 1 || m[0][2] != 0 || m[1][2] != 0 || m[2][0] != 0 || m[2][1] != 0 {
		t.Errorf("TEME bridge is not a pure z-rotation: %v", m)
	}

	// Rotation angle equals −EqE.
	dpsi, _ := nutation80(valladoT)
	eqe := equationOfEquinoxes82(valladoT, dpsi)
	if d := math.Abs(math.Atan2(m[0][1], m[0][0]) - -eqe); d > 1e-15 {
		t.Errorf("TEME bridge angle off by %.3e rad", d)
	}
}

func TestSPrime06(t *testing.T) {
	if got := sPrime06(0); got != 0 {
		t.Errorf("s'(0) = %v, want 0", got)
	}
	// One century out: −47 µas.
	want := -0.000047 * arcsecToRad
	if got := sPrime06(1); math.Abs(got-want) > 1e-20 {
		t.Errorf("s'(1) = %v, want %v", got, want)
	}
}

// TestCIPXYVallado: the CIP coordinates at the Example 3-15 epoch are
// X ≈ 80.5319 arcsec, Y ≈ 7.2739 arcsec (Vallado Example 3-14).
func TestCIPXYVallado(t *testing.T) {
	x, y := cipXY(valladoT)
	if d := math.Abs(x/arcsecToRad - 80.531880); d > 0.05 {
		t.Errorf("X = %.6f arcsec, want ~80.53 (diff=%.3f)", x/arcsecToRad, d)
	}
	if d := math.Abs(y/arcsecToRad - 7.273921); d > 0.05 {
		t.Errorf("Y = %.6f arcsec, want ~7.27 (diff=%.3f)", y/arcsecToRad, d)
	}
}

// TestS06Small: the CIO locator stays below ~0.1 arcsec for centuries
// around J2000.
func TestS06Small(t *testing.T) {
	for _, tc := range []float64{-1, 0, 0.042953, 1} {
		x, y := cipXY(tc)
		s := s06(tc, x, y)
		if a := math.Abs(s / arcsecToRad); a > 0.1 {
			t.Errorf("|s(t=%v)| = %.4f arcsec, implausibly large", tc, a)
		}
	}
}

// TestBias06Magnitude: the frame bias is a fixed sub-arcsecond rotation.
func TestBias06Magnitude(t *testing.T) {
	m := BiasIAU2006(rotation.DCM).Matrix()
	// Rotation angle from the trace.
	angle := math.Acos((m[0][0] + m[1][1] + m[2][2] - 1) / 2)
	asec := angle / arcsecToRad
	if asec < 0.01 || asec > 0.05 {
		t.Errorf("frame-bias angle = %.6f arcsec, want ~0.023", asec)
	}
}
