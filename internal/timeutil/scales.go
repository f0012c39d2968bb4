package timeutil

// TAI-UTC (ΔAT) leap-second steps since 1972, as (MJD of effect, seconds).
// Source: IERS Bulletin C. The table is append-only; the last entry covers
// all later dates until the next leap second is announced.
var leapSeconds = []struct {
	mjd float64
	dat float64
}{
	{41317.0, 10}, // 1972-01-01
	{41499.0, 11}, // 1972-07-01
	{41683.0, 12}, // 1973-01-01
	{42048.0, 13}, // 1974-01-01
	{42413.0, 14}, // 1975-01-01
	{42778.0, 15}, // 1976-01-01
	{43144.0, 16}, // 1977-01-01
	{43509.0, 17}, // 1978-01-01
	{43874.0, 18}, // 1979-01-01
	{44239.0, 19}, // 1980-01-01
	{44786.0, 20}, // 1981-07-01
	{45151.0, 21}, // 1982-07-01
	{45516.0, 22}, // 1983-07-01
	{46247.0, 23}, // 1985-07-01
	{47161.0, 24}, // 1988-01-01
	{47892.0, 25}, // 1990-01-01
	{48257.0, 26}, // 1991-01-01
	{48804.0, 27}, // 1992-07-01
	{49169.0, 28}, // 1993-07-01
	{49534.0, 29}, // 1994-07-01
	{50083.0, 30}, // 1996-01-01
	{50630.0, 31}, // 1997-07-01
	{51179.0, 32}, // 1999-01-01
	{53736.0, 33}, // 2006-01-01
	{54832.0, 34}, // 2009-01-01
	{56109.0, 35}, // 2012-07-01
	{57204.0, 36}, // 2015-07-01
	{57754.0, 37}, // 2017-01-01
}

// ttMinusTAI is the fixed TT−TAI offset in seconds.
const ttMinusTAI = 32.184

// DeltaAT returns TAI−UTC in seconds for the given UTC Julian Date.
// Dates before 1972 return the 1972 value.
func DeltaAT(jdUTC float64) float64 {
	mjd := MJD(jdUTC)
	dat := leapSeconds[0].dat
	for _, ls := range leapSeconds {
		if mjd < ls.mjd {
			break
		}
		dat = ls.dat
	}
	return dat
}

// UTCToTT converts a UTC Julian Date to Terrestrial Time.
// TT = UTC + ΔAT + 32.184 s. The difference TT−TDB (< 2 ms) is neglected;
// the models here use TT wherever the theory asks for TT or TDB.
func UTCToTT(jdUTC float64) float64 {
	return jdUTC + (DeltaAT(jdUTC)+ttMinusTAI)/86400.0
}

// UTCToUT1 converts a UTC Julian Date to UT1 given ΔUT1 = UT1−UTC in
// seconds. With dut1 = 0 this is the degraded-precision approximation used
// when no Earth-orientation data is supplied.
func UTCToUT1(jdUTC, dut1 float64) float64 {
	return jdUTC + dut1/86400.0
}
