package frames

import "math"

// Unit conversions used throughout the models.
const (
	arcsecToRad = math.Pi / (180.0 * 3600.0)
	twoPi       = 2 * math.Pi
)

// wrapTwoPi reduces an angle to [0, 2π).
func wrapTwoPi(x float64) float64 {
	x = math.Mod(x, twoPi)
	if x < 0 {
		x += twoPi
	}
	return x
}

// fundArgs holds the luni-solar Delaunay arguments in radians:
// mean anomaly of the Moon (L) and Sun (LP), mean argument of latitude of
// the Moon (F), mean elongation of the Moon from the Sun (D), and mean
// longitude of the Moon's ascending node (Om).
type fundArgs struct {
	L, LP, F, D, Om float64
}

// fundArgsFK5 evaluates the IAU-1980 Delaunay argument polynomials at t
// Julian centuries of TT since J2000.0 (coefficients in arcseconds;
// revolutions written out as multiples of 1296000″).
func fundArgsFK5(t float64) fundArgs {
	return fundArgs{
		L: wrapTwoPi(arcsecToRad * (485866.733 +
			(1325*1296000.0+715922.633)*t + 31.310*t*t + 0.064*t*t*t)),
		LP: wrapTwoPi(arcsecToRad * (1287099.804 +
			(99*1296000.0+1292581.224)*t - 0.577*t*t - 0.012*t*t*t)),
		F: wrapTwoPi(arcsecToRad * (335778.877 +
			(1342*1296000.0+295263.137)*t - 13.257*t*t + 0.011*t*t*t)),
		D: wrapTwoPi(arcsecToRad * (1072261.307 +
			(1236*1296000.0+1105601.328)*t - 6.891*t*t + 0.019*t*t*t)),
		Om: wrapTwoPi(arcsecToRad * (450160.280 -
			(5*1296000.0+482890.539)*t + 7.455*t*t + 0.008*t*t*t)),
	}
}

// fundArgs2000 evaluates the IAU-2000 Delaunay argument polynomials
// (IERS Conventions 2010, Eq. 5.43) at t Julian centuries of TT.
func fundArgs2000(t float64) fundArgs {
	return fundArgs{
		L: wrapTwoPi(arcsecToRad * (485868.249036 +
			1717915923.2178*t + 31.8792*t*t + 0.051635*t*t*t - 0.00024470*t*t*t*t)),
		LP: wrapTwoPi(arcsecToRad * (1287104.79305 +
			129596581.0481*t - 0.5532*t*t + 0.000136*t*t*t - 0.00001149*t*t*t*t)),
		F: wrapTwoPi(arcsecToRad * (335779.526232 +
			1739527262.8478*t - 12.7512*t*t - 0.001037*t*t*t + 0.00000417*t*t*t*t)),
		D: wrapTwoPi(arcsecToRad * (1072260.70369 +
			1602961601.2090*t - 6.3706*t*t + 0.006593*t*t*t - 0.00003169*t*t*t*t)),
		Om: wrapTwoPi(arcsecToRad * (450160.398036 -
			6962890.5431*t + 7.4722*t*t + 0.007702*t*t*t - 0.00005939*t*t*t*t)),
	}
}

// planetArgs holds the planetary mean longitudes and the general precession
// in longitude (radians), the additional arguments of the IAU-2006 series.
type planetArgs struct {
	Me, Ve, E, Ma, J, Sa, U, Ne float64
	PA                          float64
}

// planetArgs2000 evaluates the planetary argument polynomials (IERS
// Conventions 2010, Eq. 5.44) at t Julian centuries of TT. The planetary
// nutation contribution itself is folded into the series as constant
// offsets (see iau2000.go); the arguments are part of the fundamental-
// argument layer's contract and are exercised by its tests.
func planetArgs2000(t float64) planetArgs {
	return planetArgs{
		Me: wrapTwoPi(4.402608842 + 2608.7903141574*t),
		Ve: wrapTwoPi(3.176146697 + 1021.3285546211*t),
		E:  wrapTwoPi(1.753470314 + 628.3075849991*t),
		Ma: wrapTwoPi(6.203480913 + 334.0612426700*t),
		J:  wrapTwoPi(0.599546497 + 52.9690962641*t),
		Sa: wrapTwoPi(0.874016757 + 21.3299104960*t),
		U:  wrapTwoPi(5.481293872 + 7.4781598567*t),
		Ne: wrapTwoPi(5.311886287 + 3.8133035638*t),
		PA: wrapTwoPi((0.024381750 + 0.00000538691*t) * t),
	}
}

// argument forms the integer linear combination of the Delaunay arguments
// for one series term.
func (a fundArgs) argument(nl, nlp, nf, nd, nom int) float64 {
	return float64(nl)*a.L + float64(nlp)*a.LP + float64(nf)*a.F +
		float64(nd)*a.D + float64(nom)*a.Om
}
