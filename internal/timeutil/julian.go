// Package timeutil provides calendar and Julian-date arithmetic plus the
// UTC/UT1/TT time-scale conversions the frame models need. The frame engine
// treats these conversions as exact.
package timeutil

import (
	"math"
	"time"
)

// J2000 is the Julian Date of the J2000.0 epoch (January 1, 2000, 12:00:00 TT).
const J2000 = 2451545.0

// MJDOffset converts between Julian Date and Modified Julian Date.
const MJDOffset = 2400000.5

// DaysPerCentury is the length of a Julian century in days.
const DaysPerCentury = 36525.0

// JulianDate converts a time.Time (taken as UTC) to Julian Date.
// Uses the standard astronomical algorithm valid for dates after March 1, 4801 BC.
func JulianDate(t time.Time) float64 {
	t = t.UTC()
	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())
	h := float64(t.Hour())
	min := float64(t.Minute())
	s := float64(t.Second()) + float64(t.Nanosecond())/1e9

	// Adjust year/month for Jan/Feb (treat as months 13/14 of previous year).
	if m <= 2 {
		y -= 1
		m += 12
	}

	A := math.Floor(y / 100)
	B := 2 - A + math.Floor(A/4)

	jd := math.Floor(365.25*(y+4716)) + math.Floor(30.6001*(m+1)) + d + B - 1524.5
	jd += (h + min/60.0 + s/3600.0) / 24.0

	return jd
}

// FromJulian converts a Julian Date back to a time.Time in UTC. Inverse of
// JulianDate to sub-microsecond precision for the satellite era.
func FromJulian(jd float64) time.Time {
	z, f := math.Modf(jd + 0.5)

	a := z
	if z >= 2299161 {
		alpha := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Floor(alpha/4)
	}
	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	e := math.Floor((b - d) / 30.6001)

	day := b - d - math.Floor(30.6001*e)
	month := e - 1
	if e >= 14 {
		month = e - 13
	}
	year := c - 4716
	if month <= 2 {
		year = c - 4715
	}

	secs := f * 86400.0
	h := math.Floor(secs / 3600)
	secs -= h * 3600
	m := math.Floor(secs / 60)
	secs -= m * 60
	sec, frac := math.Modf(secs)

	return time.Date(int(year), time.Month(month), int(day),
		int(h), int(m), int(sec), int(math.Round(frac*1e9)), time.UTC)
}

// JulianCenturies returns Julian centuries elapsed between J2000.0 and jd.
func JulianCenturies(jd float64) float64 {
	return (jd - J2000) / DaysPerCentury
}

// MJD converts a Julian Date to Modified Julian Date.
func MJD(jd float64) float64 {
	return jd - MJDOffset
}
