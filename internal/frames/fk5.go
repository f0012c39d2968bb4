package frames

import (
	"math"

	"github.com/star/astroframe/internal/rotation"
)

// precessionAnglesFK5 returns the IAU-76 equatorial precession angles
// ζ, θ, z in radians at t Julian centuries of TT since J2000.0.
func precessionAnglesFK5(t float64) (zeta, theta, z float64) {
	zeta = arcsecToRad * (2306.2181*t + 0.30188*t*t + 0.017998*t*t*t)
	theta = arcsecToRad * (2004.3109*t - 0.42665*t*t - 0.041833*t*t*t)
	z = arcsecToRad * (2306.2181*t + 1.09468*t*t + 0.018203*t*t*t)
	return zeta, theta, z
}

// PrecessionFK5 builds the IAU-76 precession rotation taking J2000
// coordinates to mean-of-date (MOD) coordinates:
//
//	r_MOD = R3(−z) · R2(θ) · R3(−ζ) · r_J2000
func PrecessionFK5(rep rotation.Representation, t float64) rotation.Rotation {
	zeta, theta, z := precessionAnglesFK5(t)
	return rotation.New(rep,
		rotation.Elem{Axis: rotation.AxisZ, Angle: -z},
		rotation.Elem{Axis: rotation.AxisY, Angle: theta},
		rotation.Elem{Axis: rotation.AxisZ, Angle: -zeta},
	)
}

// nutationAnglesFK5 evaluates the IAU-1980 nutation plus the EOP
// celestial-pole corrections (δΔψ, δΔε, radians; zero without EOP) and the
// mean obliquity, all in radians.
func nutationAnglesFK5(t, ddpsi, ddeps float64) (dpsi, deps, meps float64) {
	dpsi, deps = nutation80(t)
	dpsi += ddpsi
	deps += ddeps
	return dpsi, deps, meanObliquity80(t)
}

// NutationFK5 builds the IAU-1980 nutation rotation taking mean-of-date
// coordinates to true-of-date (TOD) coordinates:
//
//	r_TOD = R1(−(ε̄+Δε)) · R3(−Δψ) · R1(ε̄) · r_MOD
//
// ddpsi and ddeps are the EOP celestial-pole offsets in radians (pass zero
// when no EOP data is in use).
func NutationFK5(rep rotation.Representation, t, ddpsi, ddeps float64) rotation.Rotation {
	dpsi, deps, meps := nutationAnglesFK5(t, ddpsi, ddeps)
	return rotation.New(rep,
		rotation.Elem{Axis: rotation.AxisX, Angle: -(meps + deps)},
		rotation.Elem{Axis: rotation.AxisZ, Angle: -dpsi},
		rotation.Elem{Axis: rotation.AxisX, Angle: meps},
	)
}

// equationOfEquinoxes82 returns the 1982 equation of the equinoxes in
// radians, including the two post-1997 kinematic terms.
func equationOfEquinoxes82(t, dpsi float64) float64 {
	meps := meanObliquity80(t)
	om := fundArgsFK5(t).Om
	return dpsi*math.Cos(meps) +
		arcsecToRad*(0.00264*math.Sin(om)+0.000063*math.Sin(2*om))
}

// TEMEToTOD builds the rotation from the TEME pseudo-frame to TOD, a single
// z-rotation by the equation of the equinoxes:
//
//	r_TOD = R3(−EqE) · r_TEME
//
// TEME is defined only relative to TOD; it never composes generically with
// other frames except through this bridge.
func TEMEToTOD(rep rotation.Representation, t, ddpsi float64) rotation.Rotation {
	dpsi, _ := nutation80(t)
	eqe := equationOfEquinoxes82(t, dpsi+ddpsi)
	return rotation.New(rep, rotation.Elem{Axis: rotation.AxisZ, Angle: -eqe})
}
