package frames

import "math"

// nutTerm80 is one term of the IAU-1980 nutation series. Amplitudes are in
// units of 0.0001 arcsec; the t coefficients are per Julian century.
type nutTerm80 struct {
	l, lp, f, d, om int
	sp, spt         float64 // Δψ: sp + spt·t, times sin(argument)
	ce, cet         float64 // Δε: ce + cet·t, times cos(argument)
}

// nutation1980 is the full 106-term IAU-1980 nutation table (1980 IAU Theory
// of Nutation, as tabulated in Vallado and the IERS 1992 standards).
// Evaluation order is the table order; it is fixed for bit reproducibility.
var nutation1980 = []nutTerm80{
	{0, 0, 0, 0, 1, -171996, -174.2, 92025, 8.9},
	{0, 0, 0, 0, 2, 2062, 0.2, -895, 0.5},
	{-2, 0, 2, 0, 1, 46, 0, -24, 0},
	{2, 0, -2, 0, 0, 11, 0, 0, 0},
	{-2, 0, 2, 0, 2, -3, 0, 1, 0},
	{1, -1, 0, -1, 0, -3, 0, 0, 0},
	{0, -2, 2, -2, 1, -2, 0, 1, 0},
	{2, 0, -2, 0, 1, 1, 0, 0, 0},
	{0, 0, 2, -2, 2, -13187, -1.6, 5736, -3.1},
	{0, 1, 0, 0, 0, 1426, -3.4, 54, -0.1},
	{0, 1, 2, -2, 2, -517, 1.2, 224, -0.6},
	{0, -1, 2, -2, 2, 217, -0.5, -95, 0.3},
	{0, 0, 2, -2, 1, 129, 0.1, -70, 0},
	{2, 0, 0, -2, 0, 48, 0, 1, 0},
	{0, 0, 2, -2, 0, -22, 0, 0, 0},
	{0, 2, 0, 0, 0, 17, -0.1, 0, 0},
	{0, 1, 0, 0, 1, -15, 0, 9, 0},
	{0, 2, 2, -2, 2, -16, 0.1, 7, 0},
	{0, -1, 0, 0, 1, -12, 0, 6, 0},
	{-2, 0, 0, 2, 1, -6, 0, 3, 0},
	{0, -1, 2, -2, 1, -5, 0, 3, 0},
	{2, 0, 0, -2, 1, 4, 0, -2, 0},
	{0, 1, 2, -2, 1, 4, 0, -2, 0},
	{1, 0, 0, -1, 0, -4, 0, 0, 0},
	{2, 1, 0, -2, 0, 1, 0, 0, 0},
	{0, 0, -2, 2, 1, 1, 0, 0, 0},
	{0, 1, -2, 2, 0, -1, 0, 0, 0},
	{0, 1, 0, 0, 2, 1, 0, 0, 0},
	{-1, 0, 0, 1, 1, 1, 0, 0, 0},
	{0, 1, 2, -2, 0, -1, 0, 0, 0},
	{0, 0, 2, 0, 2, -2274, -0.2, 977, -0.5},
	{1, 0, 0, 0, 0, 712, 0.1, -7, 0},
	{0, 0, 2, 0, 1, -386, -0.4, 200, 0},
	{1, 0, 2, 0, 2, -301, 0, 129, -0.1},
	{1, 0, 0, -2, 0, -158, 0, -1, 0},
	{-1, 0, 2, 0, 2, 123, 0, -53, 0},
	{0, 0, 0, 2, 0, 63, 0, -2, 0},
	{1, 0, 0, 0, 1, 63, 0.1, -33, 0},
	{-1, 0, 0, 0, 1, -58, -0.1, 32, 0},
	{-1, 0, 2, 2, 2, -59, 0, 26, 0},
	{1, 0, 2, 0, 1, -51, 0, 27, 0},
	{0, 0, 2, 2, 2, -38, 0, 16, 0},
	{2, 0, 0, 0, 0, 29, 0, -1, 0},
	{1, 0, 2, -2, 2, 29, 0, -12, 0},
	{2, 0, 2, 0, 2, -31, 0, 13, 0},
	{0, 0, 2, 0, 0, 26, 0, -1, 0},
	{-1, 0, 2, 0, 1, 21, 0, -10, 0},
	{-1, 0, 0, 2, 1, 16, 0, -8, 0},
	{1, 0, 0, -2, 1, -13, 0, 7, 0},
	{-1, 0, 2, 2, 1, -10, 0, 5, 0},
	{1, 1, 0, -2, 0, -7, 0, 0, 0},
	{0, 1, 2, 0, 2, 7, 0, -3, 0},
	{0, -1, 2, 0, 2, -7, 0, 3, 0},
	{1, 0, 2, 2, 2, -8, 0, 3, 0},
	{1, 0, 0, 2, 0, 6, 0, 0, 0},
	{2, 0, 2, -2, 2, 6, 0, -3, 0},
	{0, 0, 0, 2, 1, -6, 0, 3, 0},
	{0, 0, 2, 2, 1, -7, 0, 3, 0},
	{1, 0, 2, -2, 1, 6, 0, -3, 0},
	{0, 0, 0, -2, 1, -5, 0, 3, 0},
	{1, -1, 0, 0, 0, 5, 0, 0, 0},
	{2, 0, 2, 0, 1, -5, 0, 3, 0},
	{0, 1, 0, -2, 0, -4, 0, 0, 0},
	{1, 0, -2, 0, 0, 4, 0, 0, 0},
	{0, 0, 0, 1, 0, -4, 0, 0, 0},
	{1, 1, 0, 0, 0, -3, 0, 0, 0},
	{1, 0, 2, 0, 0, 3, 0, 0, 0},
	{1, -1, 2, 0, 2, -3, 0, 1, 0},
	{-1, -1, 2, 2, 2, -3, 0, 1, 0},
	{-2, 0, 0, 0, 1, -2, 0, 1, 0},
	{3, 0, 2, 0, 2, -3, 0, 1, 0},
	{0, -1, 2, 2, 2, -3, 0, 1, 0},
	{1, 1, 2, 0, 2, 2, 0, -1, 0},
	{-1, 0, 2, -2, 1, -2, 0, 1, 0},
	{2, 0, 0, 0, 1, 2, 0, -1, 0},
	{1, 0, 0, 0, 2, -2, 0, 1, 0},
	{3, 0, 0, 0, 0, 2, 0, 0, 0},
	{0, 0, 2, 1, 2, 2, 0, -1, 0},
	{-1, 0, 0, 0, 2, 1, 0, -1, 0},
	{1, 0, 0, -4, 0, -1, 0, 0, 0},
	{-2, 0, 2, 2, 2, 1, 0, -1, 0},
	{-1, 0, 2, 4, 2, -2, 0, 1, 0},
	{2, 0, 0, -4, 0, -1, 0, 0, 0},
	{1, 1, 2, -2, 2, 1, 0, -1, 0},
	{1, 0, 2, 2, 1, -1, 0, 1, 0},
	{-2, 0, 2, 4, 2, -1, 0, 1, 0},
	{-1, 0, 4, 0, 2, 1, 0, 0, 0},
	{1, -1, 0, -2, 0, 1, 0, 0, 0},
	{2, 0, 2, -2, 1, 1, 0, -1, 0},
	{2, 0, 2, 2, 2, -1, 0, 0, 0},
	{1, 0, 0, 2, 1, -1, 0, 0, 0},
	{0, 0, 4, -2, 2, 1, 0, 0, 0},
	{3, 0, 2, -2, 2, 1, 0, 0, 0},
	{1, 0, 2, -2, 0, -1, 0, 0, 0},
	{0, 1, 2, 0, 1, 1, 0, 0, 0},
	{-1, -1, 0, 2, 1, 1, 0, 0, 0},
	{0, 0, -2, 0, 1, -1, 0, 0, 0},
	{0, 0, 2, -1, 2, -1, 0, 0, 0},
	{0, 1, 0, 2, 0, -1, 0, 0, 0},
	{1, 0, -2, -2, 0, -1, 0, 0, 0},
	{0, -1, 2, 0, 1, -1, 0, 0, 0},
	{1, 1, 0, -2, 1, -1, 0, 0, 0},
	{1, 0, -2, 2, 0, -1, 0, 0, 0},
	{2, 0, 0, 2, 0, 1, 0, 0, 0},
	{0, 0, 2, 4, 2, -1, 0, 0, 0},
	{0, 1, 0, 1, 0, 1, 0, 0, 0},
}

// nutation80 evaluates the IAU-1980 nutation in longitude and obliquity at
// t Julian centuries of TT, returning Δψ and Δε in radians. Terms are
// summed in table order.
func nutation80(t float64) (dpsi, deps float64) {
	args := fundArgsFK5(t)
	const unit = 1e-4 * arcsecToRad
	for _, tm := range nutation1980 {
		arg := args.argument(tm.l, tm.lp, tm.f, tm.d, tm.om)
		s, c := math.Sincos(arg)
		dpsi += (tm.sp + tm.spt*t) * s
		deps += (tm.ce + tm.cet*t) * c
	}
	return dpsi * unit, deps * unit
}

// meanObliquity80 returns the IAU-1980 mean obliquity of the ecliptic in
// radians at t Julian centuries of TT.
func meanObliquity80(t float64) float64 {
	return arcsecToRad * (84381.448 - 46.8150*t - 0.00059*t*t + 0.001813*t*t*t)
}
