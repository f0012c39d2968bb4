package eop

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

// Parse reads an IERS "finals" file (finals.all for IAU1980, finals2000A.all
// for IAU2000) in the standard fixed-width layout and returns the usable
// records. Lines without a polar-motion or UT1−UTC value (far-future rows at
// the end of the file) are skipped; otherwise-malformed lines are skipped
// with a warning log.
func Parse(r io.Reader, kind Kind, logger *slog.Logger) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	var recs []Record
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.Contains(line, ";") || strings.Contains(line, ",") {
			return nil, fmt.Errorf("eop: line %d is delimited, not fixed width (use ParseCSV)", lineNo)
		}

		rec, ok, err := parseFinalsLine(line, kind)
		if err != nil {
			logger.Warn("skipping malformed EOP record", "line", lineNo, "error", err)
			continue
		}
		if !ok {
			// Prediction horizon exhausted; the remaining rows carry no data.
			continue
		}
		recs = append(recs, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading EOP data: %w", err)
	}
	return recs, nil
}

// Fixed-width column spans (0-indexed, half-open) of the finals file format.
// Reference: IERS readme.finals2000A.
var finalsCols = struct {
	mjd, xp, yp, dut1, lod, dpsiDX, depsDY [2]int
}{
	mjd:    [2]int{7, 15},
	xp:     [2]int{18, 27},
	yp:     [2]int{37, 46},
	dut1:   [2]int{58, 68},
	lod:    [2]int{79, 86},
	dpsiDX: [2]int{97, 106},
	depsDY: [2]int{116, 125},
}

func parseFinalsLine(line string, kind Kind) (Record, bool, error) {
	field := func(span [2]int) string {
		if len(line) < span[1] {
			return ""
		}
		return strings.TrimSpace(line[span[0]:span[1]])
	}

	mjdStr := field(finalsCols.mjd)
	if mjdStr == "" {
		return Record{}, false, fmt.Errorf("missing MJD")
	}
	mjd, err := strconv.ParseFloat(mjdStr, 64)
	if err != nil {
		return Record{}, false, fmt.Errorf("invalid MJD %q: %w", mjdStr, err)
	}

	// Rows beyond the prediction horizon have an MJD but no values.
	xpStr, ypStr, dutStr := field(finalsCols.xp), field(finalsCols.yp), field(finalsCols.dut1)
	if xpStr == "" || ypStr == "" || dutStr == "" {
		return Record{}, false, nil
	}

	rec := Record{MJD: mjd}
	if rec.Xp, err = strconv.ParseFloat(xpStr, 64); err != nil {
		return Record{}, false, fmt.Errorf("invalid PM-x %q: %w", xpStr, err)
	}
	if rec.Yp, err = strconv.ParseFloat(ypStr, 64); err != nil {
		return Record{}, false, fmt.Errorf("invalid PM-y %q: %w", ypStr, err)
	}
	if rec.DUT1, err = strconv.ParseFloat(dutStr, 64); err != nil {
		return Record{}, false, fmt.Errorf("invalid UT1-UTC %q: %w", dutStr, err)
	}

	// LOD (milliseconds in the file) and the pole offsets (milliarcseconds)
	// are absent from prediction rows; treat blanks as zero.
	if s := field(finalsCols.lod); s != "" {
		lodMS, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Record{}, false, fmt.Errorf("invalid LOD %q: %w", s, err)
		}
		rec.LOD = lodMS / 1e3
	}
	a, err := optionalMas(field(finalsCols.dpsiDX))
	if err != nil {
		return Record{}, false, err
	}
	b, err := optionalMas(field(finalsCols.depsDY))
	if err != nil {
		return Record{}, false, err
	}
	if kind == IAU2000 {
		rec.DX, rec.DY = a, b
	} else {
		rec.DPsi, rec.DEps = a, b
	}
	return rec, true, nil
}

// optionalMas parses a milliarcsecond field into arcseconds, with blank
// meaning zero.
func optionalMas(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid pole offset %q: %w", s, err)
	}
	return v / 1e3, nil
}

// ParseCSV reads the semicolon-delimited variant of the finals files served
// by the IERS data center. The header row names the columns; only the
// columns the Dataset needs are read.
func ParseCSV(r io.Reader, kind Kind, logger *slog.Logger) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading EOP data: %w", err)
		}
		return nil, fmt.Errorf("eop: empty CSV input")
	}

	header := strings.Split(scanner.Text(), ";")
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	idx := func(names ...string) int {
		for _, n := range names {
			if i, ok := col[n]; ok {
				return i
			}
		}
		return -1
	}

	iMJD := idx("MJD")
	iXp := idx("x_pole")
	iYp := idx("y_pole")
	iDUT := idx("UT1-UTC")
	iLOD := idx("LOD")
	iA := idx("dPsi", "dX")
	iB := idx("dEpsilon", "dY")
	if iMJD < 0 || iXp < 0 || iYp < 0 || iDUT < 0 {
		return nil, fmt.Errorf("eop: CSV header missing required columns")
	}

	var recs []Record
	lineNo := 1
	for scanner.Scan() {
		lineNo++
		fields := strings.Split(scanner.Text(), ";")
		get := func(i int) string {
			if i < 0 || i >= len(fields) {
				return ""
			}
			return strings.TrimSpace(fields[i])
		}
		if get(iXp) == "" || get(iYp) == "" || get(iDUT) == "" {
			continue
		}

		var rec Record
		var err error
		parse := func(s string) float64 {
			if err != nil || s == "" {
				return 0
			}
			var v float64
			v, err = strconv.ParseFloat(s, 64)
			return v
		}
		rec.MJD = parse(get(iMJD))
		rec.Xp = parse(get(iXp))
		rec.Yp = parse(get(iYp))
		rec.DUT1 = parse(get(iDUT))
		rec.LOD = parse(get(iLOD)) / 1e3
		a := parse(get(iA)) / 1e3
		b := parse(get(iB)) / 1e3
		if err != nil {
			logger.Warn("skipping malformed EOP record", "line", lineNo, "error", err)
			continue
		}
		if kind == IAU2000 {
			rec.DX, rec.DY = a, b
		} else {
			rec.DPsi, rec.DEps = a, b
		}
		recs = append(recs, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading EOP data: %w", err)
	}
	return recs, nil
}
