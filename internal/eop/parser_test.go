package eop

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// finalsLine builds a fixed-width finals-file row by placing each field at
// the column span documented in readme.finals2000A. Empty strings leave the
// span blank, matching prediction rows past the data horizon.
func finalsLine(mjd, xp, yp, dut1, lod, a, b string) string {
	row := []byte(strings.Repeat(" ", 130))
	put := func(span [2]int, s string) {
		if s == "" {
			return
		}
		// Right-align within the span like the IERS writer does.
		copy(row[span[1]-len(s):span[1]], s)
	}
	put(finalsCols.mjd, mjd)
	put(finalsCols.xp, xp)
	put(finalsCols.yp, yp)
	put(finalsCols.dut1, dut1)
	put(finalsCols.lod, lod)
	put(finalsCols.dpsiDX, a)
	put(finalsCols.depsDY, b)
	return string(row)
}

func TestParseFinals(t *testing.T) {
	// Vallado Example 3-15 Earth orientation, as a finals.all row would
	// carry it (LOD and pole offsets in milli-units).
	input := strings.Join([]string{
		finalsLine("53101.00", "-0.140682", "0.333309", "-0.4399619", "1.5563", "-52.195", "-3.875"),
		finalsLine("53102.00", "-0.141400", "0.333600", "-0.4404000", "1.5400", "-52.100", "-3.900"),
	}, "\n")

	recs, err := Parse(strings.NewReader(input), IAU1980, testLogger)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	r := recs[0]
	assert.Equal(t, 53101.0, r.MJD)
	assert.InDelta(t, -0.140682, r.Xp, 1e-12)
	assert.InDelta(t, 0.333309, r.Yp, 1e-12)
	assert.InDelta(t, -0.4399619, r.DUT1, 1e-12)
	assert.InDelta(t, 0.0015563, r.LOD, 1e-12, "LOD converts ms to s")
	assert.InDelta(t, -0.052195, r.DPsi, 1e-12, "dPsi converts mas to arcsec")
	assert.InDelta(t, -0.003875, r.DEps, 1e-12)
	assert.Zero(t, r.DX)
	assert.Zero(t, r.DY)
}

func TestParseFinalsIAU2000(t *testing.T) {
	input := finalsLine("53101.00", "-0.140682", "0.333309", "-0.4399619", "1.5563", "-0.205", "-0.136")

	recs, err := Parse(strings.NewReader(input), IAU2000, testLogger)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	// The same offset columns load as δX/δY for an IAU2000 file.
	assert.InDelta(t, -0.000205, recs[0].DX, 1e-12)
	assert.InDelta(t, -0.000136, recs[0].DY, 1e-12)
	assert.Zero(t, recs[0].DPsi)
	assert.Zero(t, recs[0].DEps)
}

func TestParseFinalsSkipsPredictionTail(t *testing.T) {
	input := strings.Join([]string{
		finalsLine("53101.00", "-0.140682", "0.333309", "-0.4399619", "", "", ""),
		// Far-future rows carry an MJD but no values.
		finalsLine("60000.00", "", "", "", "", "", ""),
		"",
	}, "\n")

	recs, err := Parse(strings.NewReader(input), IAU1980, testLogger)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 53101.0, recs[0].MJD)
	assert.Zero(t, recs[0].LOD, "blank LOD reads as zero")
}

func TestParseFinalsSkipsMalformedLine(t *testing.T) {
	input := strings.Join([]string{
		finalsLine("53101.00", "-0.140682", "0.333309", "-0.4399619", "", "", ""),
		finalsLine("53102.00", "not-a-num", "0.333600", "-0.4404000", "", "", ""),
		finalsLine("53103.00", "-0.142000", "0.334000", "-0.4410000", "", "", ""),
	}, "\n")

	recs, err := Parse(strings.NewReader(input), IAU1980, testLogger)
	require.NoError(t, err)
	require.Len(t, recs, 2, "malformed row skipped, valid rows kept")
	assert.Equal(t, 53101.0, recs[0].MJD)
	assert.Equal(t, 53103.0, recs[1].MJD)
}

func TestParseFinalsRejectsDelimitedInput(t *testing.T) {
	_, err := Parse(strings.NewReader("MJD;x_pole;y_pole\n53101;0.1;0.2\n"), IAU1980, testLogger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fixed width")
}

func TestParseCSV(t *testing.T) {
	input := "MJD;Year;Month;Day;x_pole;y_pole;UT1-UTC;LOD;dPsi;dEpsilon\n" +
		"53101;2004;4;6;-0.140682;0.333309;-0.4399619;1.5563;-52.195;-3.875\n" +
		"53102;2004;4;7;-0.141400;0.333600;-0.4404000;1.5400;-52.100;-3.900\n" +
		"60000;2026;1;1;;;;;;\n" // prediction row, skipped

	recs, err := ParseCSV(strings.NewReader(input), IAU1980, testLogger)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.InDelta(t, -0.140682, recs[0].Xp, 1e-12)
	assert.InDelta(t, -0.4399619, recs[0].DUT1, 1e-12)
	assert.InDelta(t, 0.0015563, recs[0].LOD, 1e-12)
	assert.InDelta(t, -0.052195, recs[0].DPsi, 1e-12)
}

func TestParseCSVIAU2000Columns(t *testing.T) {
	input := "MJD;x_pole;y_pole;UT1-UTC;LOD;dX;dY\n" +
		"53101;-0.140682;0.333309;-0.4399619;1.5563;-0.205;-0.136\n"

	recs, err := ParseCSV(strings.NewReader(input), IAU2000, testLogger)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.InDelta(t, -0.000205, recs[0].DX, 1e-12)
	assert.InDelta(t, -0.000136, recs[0].DY, 1e-12)
}

func TestParseCSVMissingHeader(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("MJD;x_pole\n53101;0.1\n"), IAU1980, testLogger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required columns")
}

func TestParseCSVEmpty(t *testing.T) {
	_, err := ParseCSV(strings.NewReader(""), IAU1980, testLogger)
	require.Error(t, err)
}
