// Package frames implements Earth reference-frame transformations for orbit
// determination: the classical IAU-76/FK5 chain and the IAU-2006/2010 CIO-
// and equinox-based chains, composed into frame-to-frame rotations and full
// state-vector transforms.
//
// The frame set and the rotation chains follow Vallado, "Fundamentals of
// Astrodynamics and Applications" (4th ed., Ch. 3) and the IERS Conventions
// (2010, Ch. 5):
//
//	FK5:       ITRF <-> PEF <-> TOD <-> MOD <-> GCRF   (+ TEME and J2000 off TOD)
//	CIO:       ITRF <-> TIRS <-> CIRS <-> GCRF
//	Equinox:   ITRF <-> TIRS <-> ERS <-> GCRF          (+ MOD06 and MJ2000 off GCRF)
//
// ITRF and GCRF are shared across theories; every other frame belongs to
// exactly one chain. All rotations are passive coordinate rotations built
// on the rotation package, retrievable as a DCM or a unit quaternion.
package frames

import "errors"

// Frame identifies one of the supported reference frames. The zero value is
// not a valid frame.
type Frame int

const (
	// ITRF is the International Terrestrial Reference Frame (Earth-fixed,
	// shared by both theories).
	ITRF Frame = iota + 1
	// PEF is the Pseudo-Earth-Fixed frame of the FK5 theory (ITRF without
	// polar motion).
	PEF
	// TIRS is the Terrestrial Intermediate Reference System of the
	// IAU-2006/2010 theory.
	TIRS
	// TOD is the FK5 True Equator, True Equinox of-date frame.
	TOD
	// MOD is the FK5 Mean Equator, Mean Equinox of-date frame.
	MOD
	// TEME is the True Equator, Mean Equinox pseudo-frame used by SGP4-class
	// propagators. It is reached only through TOD.
	TEME
	// J2000 is the FK5 mean equator/equinox frame of epoch J2000.0.
	J2000
	// CIRS is the Celestial Intermediate Reference System (IAU-2006 CIO
	// chain).
	CIRS
	// ERS is the IAU-2006 equinox-based true-of-date frame.
	ERS
	// MOD06 is the IAU-2006 equinox-based mean-of-date frame.
	MOD06
	// MJ2000 is the mean-equinox dynamical J2000 frame (GCRF rotated by the
	// fixed frame bias).
	MJ2000
	// GCRF is the Geocentric Celestial Reference Frame (inertial root,
	// shared by both theories).
	GCRF
)

// allFrames lists every supported frame; tests assert the composer covers
// the full cross product.
var allFrames = []Frame{ITRF, PEF, TIRS, TOD, MOD, TEME, J2000, CIRS, ERS, MOD06, MJ2000, GCRF}

var frameNames = map[Frame]string{
	ITRF:   "ITRF",
	PEF:    "PEF",
	TIRS:   "TIRS",
	TOD:    "TOD",
	MOD:    "MOD",
	TEME:   "TEME",
	J2000:  "J2000",
	CIRS:   "CIRS",
	ERS:    "ERS",
	MOD06:  "MOD06",
	MJ2000: "MJ2000",
	GCRF:   "GCRF",
}

// String implements fmt.Stringer.
func (f Frame) String() string {
	if s, ok := frameNames[f]; ok {
		return s
	}
	return "invalid"
}

// ParseFrame converts a frame name (as produced by String) to a Frame.
func ParseFrame(s string) (Frame, error) {
	for f, name := range frameNames {
		if name == s {
			return f, nil
		}
	}
	return 0, errors.New("unknown frame " + s)
}

// EarthFixed reports whether the frame rotates with the solid Earth.
func (f Frame) EarthFixed() bool {
	switch f {
	case ITRF, PEF, TIRS:
		return true
	default:
		return false
	}
}

// OfDate reports whether the frame is defined relative to a specific epoch
// (as opposed to the fixed-epoch GCRF/J2000/MJ2000 frames). Of-date frames
// accept distinct source and target epochs in the composer.
func (f Frame) OfDate() bool {
	switch f {
	case TOD, MOD, TEME, CIRS, ERS, MOD06:
		return true
	default:
		return false
	}
}

// valid reports whether f is one of the supported frames.
func (f Frame) valid() bool {
	_, ok := frameNames[f]
	return ok
}

// Sentinel errors surfaced by the composer.
var (
	// ErrUnsupportedFramePair reports a source/target pair with no defined
	// rotation path. Every pair of valid frames has a path, so this only
	// fires for invalid Frame values.
	ErrUnsupportedFramePair = errors.New("unsupported frame pair")
	// ErrEpochNotFinite reports a NaN or infinite epoch.
	ErrEpochNotFinite = errors.New("epoch is not finite")
)
