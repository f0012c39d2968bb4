// Package eop supplies Earth-orientation parameters to the frame engine:
// polar motion, UT1−UTC, length of day, and celestial-pole offsets, indexed
// by time and interpolated over the span of an IERS bulletin file.
//
// A Dataset is immutable after construction and safe for unbounded
// concurrent reads. The frame engine only ever calls At.
package eop

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/star/astroframe/internal/timeutil"
)

// ErrOutOfRange reports a query outside the dataset's interpolation span.
// The frame engine propagates it unmodified.
var ErrOutOfRange = errors.New("epoch outside EOP dataset range")

// Kind identifies which celestial-pole-offset pair a dataset carries.
type Kind int

const (
	// IAU1980 datasets carry δΔψ/δΔε offsets for the FK5/IAU-76/80 theory.
	IAU1980 Kind = iota
	// IAU2000 datasets carry δX/δY offsets for the IAU-2006/2010 theory.
	IAU2000
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k == IAU2000 {
		return "IAU2000"
	}
	return "IAU1980"
}

// Record is one daily Earth-orientation entry. Angular quantities are in
// arcseconds, ΔUT1 and LOD in seconds.
type Record struct {
	MJD  float64 // UTC Modified Julian Date of the entry
	Xp   float64 // polar motion x (arcsec)
	Yp   float64 // polar motion y (arcsec)
	DUT1 float64 // UT1−UTC (s)
	LOD  float64 // excess length of day (s)

	// Celestial-pole offsets; which pair is populated depends on Kind.
	DPsi float64 // δΔψ (arcsec, IAU1980)
	DEps float64 // δΔε (arcsec, IAU1980)
	DX   float64 // δX (arcsec, IAU2000)
	DY   float64 // δY (arcsec, IAU2000)
}

// Values is the interpolated Earth orientation at a query epoch. Units
// match Record.
type Values struct {
	Xp, Yp     float64
	DUT1, LOD  float64
	DPsi, DEps float64
	DX, DY     float64
}

// Dataset is an immutable, time-indexed Earth-orientation table with linear
// interpolation between daily records.
type Dataset struct {
	kind Kind
	recs []Record // sorted by MJD, strictly increasing
}

// NewDataset builds a Dataset from parsed records. Records are sorted by
// MJD; duplicates keep the last occurrence. At least two records are
// required to define an interpolation span.
func NewDataset(kind Kind, recs []Record) (*Dataset, error) {
	if len(recs) < 2 {
		return nil, fmt.Errorf("eop: need at least 2 records, got %d", len(recs))
	}

	sorted := make([]Record, len(recs))
	copy(sorted, recs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].MJD < sorted[j].MJD })

	// Drop duplicate MJDs, keeping the later record.
	out := sorted[:0]
	for _, r := range sorted {
		if len(out) > 0 && out[len(out)-1].MJD == r.MJD {
			out[len(out)-1] = r
			continue
		}
		out = append(out, r)
	}
	if len(out) < 2 {
		return nil, fmt.Errorf("eop: need at least 2 distinct epochs, got %d", len(out))
	}

	return &Dataset{kind: kind, recs: out}, nil
}

// Kind returns which celestial-pole-offset pair the dataset carries.
func (d *Dataset) Kind() Kind { return d.kind }

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.recs) }

// Span returns the dataset's valid range as UTC Julian Dates.
func (d *Dataset) Span() (first, last float64) {
	return d.recs[0].MJD + timeutil.MJDOffset, d.recs[len(d.recs)-1].MJD + timeutil.MJDOffset
}

// At returns the Earth orientation at the given UTC Julian Date, linearly
// interpolated between the bracketing records. Queries outside the span
// return ErrOutOfRange; they are never clamped.
func (d *Dataset) At(jdUTC float64) (Values, error) {
	if math.IsNaN(jdUTC) {
		return Values{}, fmt.Errorf("eop: query epoch is NaN")
	}
	mjd := timeutil.MJD(jdUTC)
	first, last := d.recs[0].MJD, d.recs[len(d.recs)-1].MJD
	if mjd < first || mjd > last {
		return Values{}, fmt.Errorf("%w: MJD %.3f outside [%.1f, %.1f]", ErrOutOfRange, mjd, first, last)
	}

	i := sort.Search(len(d.recs), func(i int) bool { return d.recs[i].MJD >= mjd })
	if d.recs[i].MJD == mjd {
		r := d.recs[i]
		return Values{r.Xp, r.Yp, r.DUT1, r.LOD, r.DPsi, r.DEps, r.DX, r.DY}, nil
	}

	a, b := d.recs[i-1], d.recs[i]
	f := (mjd - a.MJD) / (b.MJD - a.MJD)
	lerp := func(x, y float64) float64 { return x + f*(y-x) }

	return Values{
		Xp:   lerp(a.Xp, b.Xp),
		Yp:   lerp(a.Yp, b.Yp),
		DUT1: lerp(a.DUT1, b.DUT1),
		LOD:  lerp(a.LOD, b.LOD),
		DPsi: lerp(a.DPsi, b.DPsi),
		DEps: lerp(a.DEps, b.DEps),
		DX:   lerp(a.DX, b.DX),
		DY:   lerp(a.DY, b.DY),
	}, nil
}
