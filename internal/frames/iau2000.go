package frames

import "math"

// nutTerm2000 is one luni-solar term of the IAU-2000 nutation series.
// Amplitudes are in milliarcseconds; the t coefficients are per Julian
// century.
type nutTerm2000 struct {
	l, lp, f, d, om int
	ps, pst, pc     float64 // Δψ: (ps + pst·t)·sin + pc·cos
	ec, ect, es     float64 // Δε: (ec + ect·t)·cos + es·sin
}

// nutation2000 holds the leading luni-solar terms of the IAU-2000 nutation
// series. The development is truncated: terms below 0.1 mas are dropped and
// the planetary nutation is replaced by the constant offsets below, the
// same scheme as the abridged IAU-2000B model. The resulting error stays at
// the milliarcsecond level over several decades around J2000, a few
// centimeters at LEO radii.
var nutation2000 = []nutTerm2000{
	{0, 0, 0, 0, 1, -17206.4161, -17.4666, 3.3386, 9205.2331, 0.9086, 1.5377},
	{0, 0, 2, -2, 2, -1317.0906, -0.1675, -1.3696, 573.0336, -0.3015, -0.4587},
	{0, 0, 2, 0, 2, -227.6413, -0.0234, 0.2796, 97.8459, -0.0485, 0.1374},
	{0, 0, 0, 0, 2, 207.4554, 0.0207, -0.0698, -89.7492, 0.0470, -0.0291},
	{0, 1, 0, 0, 0, 147.5877, -0.3633, 1.1817, 7.3871, -0.0184, -0.1924},
	{0, 1, 2, -2, 2, -51.6821, 0.1226, -0.0524, 22.4386, -0.0677, -0.0174},
	{1, 0, 0, 0, 0, 71.1159, 0.0073, -0.0872, -0.6750, 0.0000, 0.0358},
	{0, 0, 2, 0, 1, -38.7298, -0.0367, 0.0380, 20.0728, 0.0018, 0.0318},
	{1, 0, 2, 0, 2, -30.1461, -0.0036, 0.0816, 12.9025, -0.0063, 0.0367},
	{0, -1, 2, -2, 2, 21.5829, -0.0494, 0.0111, -9.5929, 0.0299, 0.0132},
	{0, 0, 2, -2, 1, 12.8227, 0.0137, 0.0181, -6.8982, -0.0009, 0.0039},
	{-1, 0, 2, 0, 2, 12.3457, 0.0011, 0.0019, -5.3311, 0.0032, -0.0004},
	{-1, 0, 0, 2, 0, 15.6994, 0.0010, -0.0168, -0.1235, 0.0000, 0.0082},
	{1, 0, 0, 0, 1, 6.3110, 0.0063, 0.0027, -3.3228, 0.0000, -0.0009},
	{-1, 0, 0, 0, 1, -5.7976, -0.0063, -0.0189, 3.1429, 0.0000, -0.0075},
	{-1, 0, 2, 2, 2, -5.9641, -0.0011, 0.0149, 2.5543, -0.0011, 0.0066},
	{1, 0, 2, 0, 1, -5.1613, -0.0042, 0.0129, 2.6366, 0.0000, 0.0078},
	{-2, 0, 2, 0, 1, 4.5893, 0.0050, 0.0031, -2.4236, -0.0010, 0.0020},
	{0, 0, 0, 2, 0, 6.3384, 0.0011, -0.0150, -0.1220, 0.0000, 0.0029},
	{0, 0, 2, 2, 2, -3.8571, -0.0001, 0.0158, 1.6452, -0.0011, 0.0068},
	// The remaining included terms match the IAU-1980 development at their
	// shared 0.1 mas precision.
	{2, 0, 0, -2, 0, 4.8, 0, 0, 0.1, 0, 0},
	{2, 0, 2, 0, 2, -3.1, 0, 0, 1.3, 0, 0},
	{2, 0, 0, 0, 0, 2.9, 0, 0, -0.1, 0, 0},
	{1, 0, 2, -2, 2, 2.9, 0, 0, -1.2, 0, 0},
	{0, 0, 2, 0, 0, 2.6, 0, 0, -0.1, 0, 0},
	{0, 0, 2, -2, 0, -2.2, 0, 0, 0, 0, 0},
	{-1, 0, 2, 0, 1, 2.1, 0, 0, -1.0, 0, 0},
	{0, 2, 0, 0, 0, 1.7, 0, 0, 0, 0, 0},
	{0, 2, 2, -2, 2, -1.6, 0, 0, 0.7, 0, 0},
	{-1, 0, 0, 2, 1, 1.6, 0, 0, -0.8, 0, 0},
	{0, 1, 0, 0, 1, -1.5, 0, 0, 0.9, 0, 0},
	{1, 0, 0, -2, 1, -1.3, 0, 0, 0.7, 0, 0},
	{0, -1, 0, 0, 1, -1.2, 0, 0, 0.6, 0, 0},
	{-1, 0, 2, 2, 1, -1.0, 0, 0, 0.5, 0, 0},
	{1, 0, 2, 2, 2, -0.8, 0, 0, 0.3, 0, 0},
	{0, -1, 2, 0, 2, -0.7, 0, 0, 0.3, 0, 0},
	{0, 1, 2, 0, 2, 0.7, 0, 0, -0.3, 0, 0},
	{1, 1, 0, -2, 0, -0.7, 0, 0, 0, 0, 0},
	{0, 0, 2, 2, 1, -0.7, 0, 0, 0.3, 0, 0},
	{2, 0, 2, -2, 2, 0.6, 0, 0, -0.3, 0, 0},
	{1, 0, 0, 2, 0, 0.6, 0, 0, 0, 0, 0},
	{1, 0, 2, -2, 1, 0.6, 0, 0, -0.3, 0, 0},
	{0, 0, 0, 2, 1, -0.6, 0, 0, 0.3, 0, 0},
	{0, 0, 0, -2, 1, -0.5, 0, 0, 0.3, 0, 0},
	{2, 0, 2, 0, 1, -0.5, 0, 0, 0.3, 0, 0},
	{1, -1, 0, 0, 0, 0.5, 0, 0, 0, 0, 0},
	{-2, 0, 0, 2, 1, -0.6, 0, 0, 0.3, 0, 0},
	{0, 1, 0, -2, 0, -0.4, 0, 0, 0, 0, 0},
	{1, 0, -2, 0, 0, 0.4, 0, 0, 0, 0, 0},
	{0, 0, 0, 1, 0, -0.4, 0, 0, 0, 0, 0},
	{0, -1, 2, -2, 1, -0.5, 0, 0, 0.3, 0, 0},
	{2, 0, 0, -2, 1, 0.4, 0, 0, -0.2, 0, 0},
	{0, 1, 2, -2, 1, 0.4, 0, 0, -0.2, 0, 0},
	{1, 0, 0, -1, 0, -0.4, 0, 0, 0, 0, 0},
	{1, 1, 0, 0, 0, -0.3, 0, 0, 0, 0, 0},
	{1, 0, 2, 0, 0, 0.3, 0, 0, 0, 0, 0},
	{1, -1, 2, 0, 2, -0.3, 0, 0, 0.1, 0, 0},
	{-1, -1, 2, 2, 2, -0.3, 0, 0, 0.1, 0, 0},
	{3, 0, 2, 0, 2, -0.3, 0, 0, 0.1, 0, 0},
	{0, -1, 2, 2, 2, -0.3, 0, 0, 0.1, 0, 0},
}

// Constant offsets substituting for the omitted planetary nutation terms,
// in milliarcseconds (the IAU-2000B scheme).
const (
	planetaryBiasPsi = -0.135
	planetaryBiasEps = +0.388
)

// nutation2000AB evaluates the truncated IAU-2000 nutation at t Julian
// centuries of TT, returning Δψ and Δε in radians. Terms are summed in
// table order.
func nutation2000AB(t float64) (dpsi, deps float64) {
	args := fundArgs2000(t)
	for _, tm := range nutation2000 {
		arg := args.argument(tm.l, tm.lp, tm.f, tm.d, tm.om)
		s, c := math.Sincos(arg)
		dpsi += (tm.ps+tm.pst*t)*s + tm.pc*c
		deps += (tm.ec+tm.ect*t)*c + tm.es*s
	}
	dpsi += planetaryBiasPsi
	deps += planetaryBiasEps
	const masToRad = 1e-3 * arcsecToRad
	return dpsi * masToRad, deps * masToRad
}

// nutation2006 applies the IAU-2006 adjustments to the IAU-2000 nutation:
// a secular J2-rate factor on both components and a precession-rate factor
// on the longitude component.
func nutation2006(t float64) (dpsi, deps float64) {
	dp, de := nutation2000AB(t)
	fj2 := -2.7774e-6 * t
	dpsi = dp + dp*(0.4697e-6+fj2)
	deps = de + de*fj2
	return dpsi, deps
}
