// Package report renders human-readable summaries of datasets and
// transformation results for the command-line tools.
package report

import (
	"fmt"
	"strings"

	"github.com/star/astroframe/internal/eop"
	"github.com/star/astroframe/internal/frames"
	"github.com/star/astroframe/internal/timeutil"
)

// DatasetSummary returns a multi-line description of an EOP dataset:
// its kind, record count, MJD span, and the corresponding calendar dates.
func DatasetSummary(ds *eop.Dataset) string {
	var b strings.Builder

	fmt.Fprintf(&b, "kind:    %s\n", ds.Kind())
	fmt.Fprintf(&b, "records: %d\n", ds.Len())

	lo, hi := ds.Span()

	loT := timeutil.FromJulian(lo)
	hiT := timeutil.FromJulian(hi)
	fmt.Fprintf(&b, "span:    MJD %.1f to %.1f\n", lo-timeutil.MJDOffset, hi-timeutil.MJDOffset)
	fmt.Fprintf(&b, "         %s to %s\n",
		loT.Format("2006-01-02"), hiT.Format("2006-01-02"))

	return b.String()
}

// RecordSummary formats interpolated EOP values at a single epoch.
func RecordSummary(v eop.Values, kind eop.Kind) string {
	var b strings.Builder

	fmt.Fprintf(&b, "xp:    %+.6f arcsec\n", v.Xp)
	fmt.Fprintf(&b, "yp:    %+.6f arcsec\n", v.Yp)
	fmt.Fprintf(&b, "dut1:  %+.7f s\n", v.DUT1)
	fmt.Fprintf(&b, "lod:   %+.7f s\n", v.LOD)
	switch kind {
	case eop.IAU1980:
		fmt.Fprintf(&b, "dpsi:  %+.6f arcsec\n", v.DPsi)
		fmt.Fprintf(&b, "deps:  %+.6f arcsec\n", v.DEps)
	case eop.IAU2000:
		fmt.Fprintf(&b, "dX:    %+.6f arcsec\n", v.DX)
		fmt.Fprintf(&b, "dY:    %+.6f arcsec\n", v.DY)
	}

	return b.String()
}

// FormatState renders a state vector with kilometer positions and
// km/s velocities, one axis per line.
func FormatState(s frames.State) string {
	var b strings.Builder

	fmt.Fprintf(&b, "frame: %s (JD %.9f UTC)\n", s.Frame, s.Epoch)
	fmt.Fprintf(&b, "r: [%15.8f %15.8f %15.8f] km\n",
		s.Position[0], s.Position[1], s.Position[2])
	fmt.Fprintf(&b, "v: [%15.9f %15.9f %15.9f] km/s\n",
		s.Velocity[0], s.Velocity[1], s.Velocity[2])

	return b.String()
}
