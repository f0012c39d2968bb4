package frames

import (
	"math"

	"github.com/star/astroframe/internal/rotation"
	"github.com/star/astroframe/internal/timeutil"
)

// OmegaEarth is Earth's nominal rotation rate in rad/s (IAU value).
const OmegaEarth = 7.292115146706979e-5

// EarthRate returns Earth's angular rotation rate in rad/s corrected by the
// excess length of day (seconds). With lod = 0 this is the nominal rate.
func EarthRate(lod float64) float64 {
	return OmegaEarth * (1 - lod/86400.0)
}

// GMST82 calculates Greenwich Mean Sidereal Time in radians for a UT1
// Julian Date, using the IAU-82 model (Vallado Eq. 3-47):
//
//	θ_GMST = 67310.54841 + (876600h + 8640184.812866)·T + 0.093104·T² − 6.2e-6·T³
//
// where T is Julian centuries of UT1 from J2000.0 and the result is in
// seconds of time before reduction.
func GMST82(jdUT1 float64) float64 {
	tUT1 := timeutil.JulianCenturies(jdUT1)

	// 876600h = 876600 * 3600 = 3155760000 seconds.
	gmstSec := 67310.54841 +
		(3155760000.0+8640184.812866)*tUT1 +
		0.093104*tUT1*tUT1 -
		6.2e-6*tUT1*tUT1*tUT1

	gmstSec = math.Mod(gmstSec, 86400.0)
	if gmstSec < 0 {
		gmstSec += 86400.0
	}
	return gmstSec / 86400.0 * twoPi
}

// GAST82 returns Greenwich Apparent Sidereal Time in radians: GMST plus the
// equation of the equinoxes. t is TT Julian centuries, dpsi the nutation in
// longitude (with any EOP correction already applied).
func GAST82(jdUT1, t, dpsi float64) float64 {
	return wrapTwoPi(GMST82(jdUT1) + equationOfEquinoxes82(t, dpsi))
}

// ERA returns the Earth Rotation Angle in radians for a UT1 Julian Date
// (IERS Conventions 2010, Eq. 5.15).
func ERA(jdUT1 float64) float64 {
	du := jdUT1 - timeutil.J2000
	f := math.Mod(du, 1.0)
	return wrapTwoPi(twoPi * (f + 0.7790572732640 + 0.00273781191135448*du))
}

// sPrime06 returns the TIO locator s′ in radians at t TT Julian centuries
// (IERS Conventions 2010, Eq. 5.13).
func sPrime06(t float64) float64 {
	return arcsecToRad * (-0.000047 * t)
}

// PolarMotion builds the polar-motion rotation taking ITRF coordinates to
// the intermediate terrestrial frame (TIRS, or PEF when sp = 0):
//
//	r_TIRS = R3(−s′) · R2(x_p) · R1(y_p) · r_ITRF
//
// xp, yp and sp are in radians.
func PolarMotion(rep rotation.Representation, xp, yp, sp float64) rotation.Rotation {
	return rotation.New(rep,
		rotation.Elem{Axis: rotation.AxisZ, Angle: -sp},
		rotation.Elem{Axis: rotation.AxisY, Angle: xp},
		rotation.Elem{Axis: rotation.AxisX, Angle: yp},
	)
}

// EarthRotation builds the rotation about the celestial intermediate pole
// (or true pole, for FK5) taking inertial-side coordinates to the rotating
// terrestrial side:
//
//	r_TIRS = R3(θ) · r_CIRS   (θ = ERA)
//	r_PEF  = R3(θ) · r_TOD    (θ = GAST)
func EarthRotation(rep rotation.Representation, theta float64) rotation.Rotation {
	return rotation.New(rep, rotation.Elem{Axis: rotation.AxisZ, Angle: theta})
}
