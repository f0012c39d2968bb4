package frames

import (
	"math"
	"testing"
	"time"

	satellite "github.com/joshuaferrara/go-satellite"

	"github.com/star/astroframe/internal/rotation"
	"github.com/star/astroframe/internal/timeutil"
)

// TestGMST82CrossValidation checks GMST82 against the go-satellite
// library's GSTimeFromDate, which implements the same IAU-82 model.
func TestGMST82CrossValidation(t *testing.T) {
	tests := []struct {
		name string
		time time.Time
	}{
		{"J2000.0 epoch", time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)},
		{"Vallado example date", time.Date(2004, 4, 6, 7, 51, 28, 0, time.UTC)},
		{"recent date", time.Date(2026, 8, 29, 4, 1, 0, 0, time.UTC)},
		{"pre-2000", time.Date(1992, 8, 20, 12, 14, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Treat the timestamp as UT1 on both sides.
			our := GMST82(timeutil.JulianDate(tt.time))
			ref := satellite.GSTimeFromDate(
				tt.time.Year(), int(tt.time.Month()), tt.time.Day(),
				tt.time.Hour(), tt.time.Minute(), tt.time.Second(),
			)
			diff := math.Abs(our - ref)
			// 1e-8 rad is about 0.06 arcsec of hour angle.
			if diff > 1e-8 {
				t.Errorf("GMST82(%v) = %.12f rad, go-satellite = %.12f rad (diff=%.2e)", tt.time, our, ref, diff)
			}
		})
	}
}

// TestTEMEToPEFCrossValidation compares the zero-EOP TEME→PEF rotation
// with go-satellite's ECIToECEF, which applies the plain GMST rotation to a
// TEME vector. Without EOP and with the equation of the equinoxes bridging
// TEME to TOD, the two agree to the bridge's sub-arcsecond level.
func TestTEMEToPEFCrossValidation(t *testing.T) {
	when := time.Date(2026, 2, 6, 12, 0, 0, 0, time.UTC)
	jd := timeutil.JulianDate(when)
	pos := rotation.Vec3{5094.18016210, 6127.64465950, 6380.34453270}

	rot, err := Rotation(TEME, PEF, jd)
	if err != nil {
		t.Fatal(err)
	}
	our := rot.Apply(pos)

	gmst := satellite.GSTimeFromDate(
		when.Year(), int(when.Month()), when.Day(),
		when.Hour(), when.Minute(), when.Second(),
	)
	ref := satellite.ECIToECEF(satellite.Vector3{X: pos[0], Y: pos[1], Z: pos[2]}, gmst)

	// go-satellite rotates by GMST directly; our chain routes through TOD
	// and GAST, which cancels the equation of the equinoxes exactly. A
	// couple of meters covers the different GMST evaluation precision.
	for i, refv := range []float64{ref.X, ref.Y, ref.Z} {
		if d := math.Abs(our[i] - refv); d > 2e-3 {
			t.Errorf("TEME->PEF [%d] = %.6f km, go-satellite = %.6f km (diff=%.3e)", i, our[i], refv, d)
		}
	}
}
