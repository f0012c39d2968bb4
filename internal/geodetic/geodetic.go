// Package geodetic provides WGS-84 geodetic/ECEF conversions and
// observer-to-satellite look angles. These utilities are independent of the
// frame engine: they assume coordinates already expressed in an Earth-fixed
// frame (ITRF), in meters.
package geodetic

import (
	"math"

	"github.com/star/astroframe/internal/rotation"
)

// WGS-84 ellipsoid parameters.
const (
	wgs84A  = 6378137.0             // semi-major axis (meters)
	wgs84F  = 1.0 / 298.257223563   // flattening
	wgs84E2 = wgs84F * (2 - wgs84F) // first eccentricity squared
)

// Observer holds a ground observer's location in both geodetic and ECEF
// coordinates. ECEF is precomputed once so it can be reused across many
// satellite lookups.
type Observer struct {
	LatRad, LonRad, AltM float64       // geodetic (radians, meters above ellipsoid)
	ECEF                 rotation.Vec3 // precomputed ECEF (meters)
}

// LookAngles holds azimuth, elevation, and range from observer to satellite.
type LookAngles struct {
	AzimuthDeg   float64 // 0 = North, clockwise
	ElevationDeg float64 // 0 = horizon, 90 = zenith
	RangeKm      float64
}

// NewObserver creates an Observer from geodetic coordinates. Latitude and
// longitude are in degrees, altitude in meters above the WGS-84 ellipsoid.
func NewObserver(latDeg, lonDeg, altM float64) Observer {
	lat := latDeg * math.Pi / 180.0
	lon := lonDeg * math.Pi / 180.0

	sinLat := math.Sin(lat)
	cosLat := math.Cos(lat)
	sinLon := math.Sin(lon)
	cosLon := math.Cos(lon)

	// Radius of curvature in the prime vertical.
	N := wgs84A / math.Sqrt(1-wgs84E2*sinLat*sinLat)

	return Observer{
		LatRad: lat,
		LonRad: lon,
		AltM:   altM,
		ECEF: rotation.Vec3{
			(N + altM) * cosLat * cosLon,
			(N + altM) * cosLat * sinLon,
			(N*(1-wgs84E2) + altM) * sinLat,
		},
	}
}

// Point holds a geodetic position (latitude/longitude in degrees, altitude
// in meters).
type Point struct {
	LatDeg, LonDeg, AltM float64
}

// FromECEF converts an ECEF position (meters) to geodetic coordinates using
// the iterative Bowring method. Converges in 2-3 iterations for Earth
// orbits.
func FromECEF(p rotation.Vec3) Point {
	x, y, z := p[0], p[1], p[2]
	lon := math.Atan2(y, x)

	rho := math.Sqrt(x*x + y*y)

	lat := math.Atan2(z, rho*(1-wgs84E2))
	for i := 0; i < 5; i++ {
		sinLat := math.Sin(lat)
		N := wgs84A / math.Sqrt(1-wgs84E2*sinLat*sinLat)
		lat = math.Atan2(z+wgs84E2*N*sinLat, rho)
	}

	sinLat := math.Sin(lat)
	cosLat := math.Cos(lat)
	N := wgs84A / math.Sqrt(1-wgs84E2*sinLat*sinLat)

	var alt float64
	if math.Abs(cosLat) > 1e-10 {
		alt = rho/cosLat - N
	} else {
		alt = math.Abs(z)/math.Abs(sinLat) - N*(1-wgs84E2)
	}

	return Point{
		LatDeg: lat * 180.0 / math.Pi,
		LonDeg: lon * 180.0 / math.Pi,
		AltM:   alt,
	}
}

// Look computes azimuth, elevation, and range from an observer to a
// satellite position given in ECEF meters, using the SEZ (South-East-
// Zenith) topocentric rotation per Vallado Section 4.4.
func Look(obs Observer, sat rotation.Vec3) LookAngles {
	r := sat.Sub(obs.ECEF)

	sinLat := math.Sin(obs.LatRad)
	cosLat := math.Cos(obs.LatRad)
	sinLon := math.Sin(obs.LonRad)
	cosLon := math.Cos(obs.LonRad)

	// Rotate the ECEF range vector to SEZ.
	south := sinLat*cosLon*r[0] + sinLat*sinLon*r[1] - cosLat*r[2]
	east := -sinLon*r[0] + cosLon*r[1]
	zenith := cosLat*cosLon*r[0] + cosLat*sinLon*r[1] + sinLat*r[2]

	rangeMag := math.Sqrt(south*south + east*east + zenith*zenith)

	el := math.Asin(zenith / rangeMag)

	// Azimuth measured clockwise from North; in SEZ, North = -South.
	az := math.Atan2(east, -south)
	if az < 0 {
		az += 2 * math.Pi
	}

	return LookAngles{
		AzimuthDeg:   az * 180.0 / math.Pi,
		ElevationDeg: el * 180.0 / math.Pi,
		RangeKm:      rangeMag / 1000.0,
	}
}
