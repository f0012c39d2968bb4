package frames

import (
	"fmt"
	"math"

	"github.com/star/astroframe/internal/eop"
	"github.com/star/astroframe/internal/metrics"
	"github.com/star/astroframe/internal/rotation"
	"github.com/star/astroframe/internal/timeutil"
)

// Option configures a composition.
type Option func(*config)

type config struct {
	ds     *eop.Dataset
	rep    rotation.Representation
	jd2    float64
	hasJD2 bool
}

// WithEOP supplies an Earth-orientation dataset. Without this option the
// composer runs in the degraded-precision zero-EOP mode: polar motion,
// ΔUT1, LOD and the celestial-pole offsets are all taken as exactly zero
// and UT1 is approximated by UTC. That mode is deterministic and valid for
// low-precision work; it silently costs meter-level accuracy near Earth.
func WithEOP(ds *eop.Dataset) Option {
	return func(c *config) { c.ds = ds }
}

// WithRepresentation selects the output representation (default DCM).
func WithRepresentation(rep rotation.Representation) Option {
	return func(c *config) { c.rep = rep }
}

// WithTargetEpoch sets a distinct epoch (UTC Julian Date) for the target
// frame of an of-date pair, enabling cross-epoch composition such as
// TOD@t1 → TOD@t2. The target frame must be of-date.
func WithTargetEpoch(jdUTC float64) Option {
	return func(c *config) { c.jd2 = jdUTC; c.hasJD2 = true }
}

// theory identifies which transformation chain a leg follows.
type theory int

const (
	theoryFK5 theory = iota
	theoryCIO
	theoryEq06
)

// epochCtx bundles everything epoch-dependent a chain leg needs.
type epochCtx struct {
	jdUTC  float64
	jdUT1  float64
	t      float64 // TT Julian centuries since J2000.0
	vals   eop.Values
	hasEOP bool
	kind   eop.Kind
}

func newEpochCtx(jdUTC float64, ds *eop.Dataset) (epochCtx, error) {
	if math.IsNaN(jdUTC) || math.IsInf(jdUTC, 0) {
		return epochCtx{}, fmt.Errorf("%w: %v", ErrEpochNotFinite, jdUTC)
	}
	c := epochCtx{jdUTC: jdUTC}
	if ds != nil {
		vals, err := ds.At(jdUTC)
		if err != nil {
			return epochCtx{}, err
		}
		c.vals = vals
		c.hasEOP = true
		c.kind = ds.Kind()
	}
	c.jdUT1 = timeutil.UTCToUT1(jdUTC, c.vals.DUT1)
	c.t = timeutil.JulianCenturies(timeutil.UTCToTT(jdUTC))
	return c, nil
}

// fk5Corrections returns the FK5 celestial-pole offsets in radians.
// IAU-2000 datasets carry δX/δY instead, which do not apply to this chain.
func (c epochCtx) fk5Corrections() (ddpsi, ddeps float64) {
	if !c.hasEOP || c.kind != eop.IAU1980 {
		return 0, 0
	}
	return c.vals.DPsi * arcsecToRad, c.vals.DEps * arcsecToRad
}

// eq06Corrections returns equinox-system corrections derived from the
// IAU-2000 δX/δY offsets, in radians.
func (c epochCtx) eq06Corrections() (ddpsi, ddeps float64) {
	if !c.hasEOP || c.kind != eop.IAU2000 {
		return 0, 0
	}
	return poleCorrections06(c.t, c.vals.DX*arcsecToRad, c.vals.DY*arcsecToRad)
}

// eciTheory returns the chain an inertial frame belongs to. The shared GCRF
// node defaults to the chain matching the EOP dataset in use (FK5 for
// IAU-1980 data, CIO otherwise), which only matters when GCRF is one side
// of a mixed inertial/Earth-fixed pair through ITRF.
func (c epochCtx) eciTheory(f Frame) theory {
	switch f {
	case TOD, MOD, TEME, J2000:
		return theoryFK5
	case CIRS:
		return theoryCIO
	case ERS, MOD06, MJ2000:
		return theoryEq06
	default: // GCRF
		if c.hasEOP && c.kind == eop.IAU1980 {
			return theoryFK5
		}
		return theoryCIO
	}
}

// gcrfFromECI builds the rotation taking coordinates in the inertial frame
// f to GCRF at this epoch.
func (c epochCtx) gcrfFromECI(f Frame, rep rotation.Representation) rotation.Rotation {
	switch f {
	case GCRF:
		return rotation.Identity(rep)
	case MOD:
		return PrecessionFK5(rep, c.t).Inverse()
	case TOD:
		return c.todToGCRF(rep)
	case TEME:
		ddpsi, _ := c.fk5Corrections()
		return c.todToGCRF(rep).Compose(TEMEToTOD(rep, c.t, ddpsi))
	case J2000:
		// r_TOD = N_unc · P · r_J2000, with the true equinox of the
		// uncorrected pole. The corrected chain's TOD is rotated about z
		// from it by the change δΔψ makes to the equation of the equinoxes,
		// so that bridge sits between the two nutation legs:
		//
		//	r_GCRF = Pᵀ · N_corrᵀ · R3(−ΔEqE) · N_unc · P · r_J2000
		ddpsi, _ := c.fk5Corrections()
		dpsi, _ := nutation80(c.t)
		deqe := equationOfEquinoxes82(c.t, dpsi+ddpsi) - equationOfEquinoxes82(c.t, dpsi)
		bridge := rotation.New(rep, rotation.Elem{Axis: rotation.AxisZ, Angle: -deqe})
		j2000ToTOD := NutationFK5(rep, c.t, 0, 0).Compose(PrecessionFK5(rep, c.t))
		return c.todToGCRF(rep).Compose(bridge).Compose(j2000ToTOD)
	case CIRS:
		x, y, s := c.cioXYS()
		return CIORotation(rep, x, y, s)
	case ERS:
		ddpsi, ddeps := c.eq06Corrections()
		return NPBIAU2006(rep, c.t, ddpsi, ddeps).Inverse()
	case MOD06:
		return PrecessionIAU2006(rep, c.t).Inverse()
	default: // MJ2000
		return BiasIAU2006(rep).Inverse()
	}
}

// todToGCRF composes r_GCRF = Pᵀ · N_corrᵀ · r_TOD.
func (c epochCtx) todToGCRF(rep rotation.Representation) rotation.Rotation {
	ddpsi, ddeps := c.fk5Corrections()
	p := PrecessionFK5(rep, c.t)
	n := NutationFK5(rep, c.t, ddpsi, ddeps)
	return p.Inverse().Compose(n.Inverse())
}

// cioXYS returns the CIP coordinates and CIO locator with EOP corrections
// applied: the δX/δY offsets are added to the model X/Y before s and the
// intermediate-pole rotation are formed, the order the published algorithm
// prescribes.
func (c epochCtx) cioXYS() (x, y, s float64) {
	x, y = cipXY(c.t)
	if c.hasEOP && c.kind == eop.IAU2000 {
		x += c.vals.DX * arcsecToRad
		y += c.vals.DY * arcsecToRad
	}
	return x, y, s06(c.t, x, y)
}

// itrfTo builds the polar-motion rotation taking ITRF to the Earth-fixed
// frame f at this epoch.
func (c epochCtx) itrfTo(f Frame, rep rotation.Representation) rotation.Rotation {
	xp := c.vals.Xp * arcsecToRad
	yp := c.vals.Yp * arcsecToRad
	switch f {
	case ITRF:
		return rotation.Identity(rep)
	case PEF:
		return PolarMotion(rep, xp, yp, 0)
	default: // TIRS
		return PolarMotion(rep, xp, yp, sPrime06(c.t))
	}
}

// earthAngle returns the Earth-rotation angle of the given chain: GAST for
// FK5, ERA for the CIO chain, the IAU-2006 GAST for the equinox chain.
func (c epochCtx) earthAngle(th theory) float64 {
	switch th {
	case theoryFK5:
		ddpsi, _ := c.fk5Corrections()
		dpsi, _ := nutation80(c.t)
		return GAST82(c.jdUT1, c.t, dpsi+ddpsi)
	case theoryEq06:
		ddpsi, ddeps := c.eq06Corrections()
		return GAST06(c.jdUT1, c.t, ddpsi, ddeps)
	default:
		return ERA(c.jdUT1)
	}
}

// gcrfFromECEF builds the rotation taking coordinates in the Earth-fixed
// frame f to GCRF through the chain of the given theory.
func (c epochCtx) gcrfFromECEF(f Frame, th theory, rep rotation.Representation) rotation.Rotation {
	// Inertial node the chain crosses into.
	var node Frame
	switch th {
	case theoryFK5:
		node = TOD
	case theoryEq06:
		node = ERS
	default:
		node = CIRS
	}

	r := EarthRotation(rep, c.earthAngle(th)).Inverse()
	if f == ITRF {
		var intermediate Frame
		if th == theoryFK5 {
			intermediate = PEF
		} else {
			intermediate = TIRS
		}
		r = r.Compose(c.itrfTo(intermediate, rep))
	}
	return c.gcrfFromECI(node, rep).Compose(r)
}

// ecefTheory returns the chain used to cross the Earth-rotation boundary
// for a mixed pair: the Earth-fixed frame picks its own theory when it has
// one, otherwise (ITRF) the inertial side decides.
func (c epochCtx) ecefTheory(ecef, eci Frame) theory {
	switch ecef {
	case PEF:
		return theoryFK5
	case TIRS:
		if c.eciTheory(eci) == theoryEq06 {
			return theoryEq06
		}
		return theoryCIO
	default: // ITRF
		return c.eciTheory(eci)
	}
}

// Rotation composes the rotation taking coordinates in src at the given
// UTC Julian Date to dst. Options supply the EOP dataset, the output
// representation, and a distinct target epoch for of-date pairs.
//
// The composition uses the minimal domain-appropriate chain: Earth-fixed
// pairs stay in polar-motion algebra (ITRF↔PEF never transits TIRS or any
// inertial frame), inertial pairs meet at GCRF, and mixed pairs cross the
// Earth-rotation boundary of exactly one theory.
func Rotation(src, dst Frame, jdUTC float64, opts ...Option) (rotation.Rotation, error) {
	cfg := config{rep: rotation.DCM}
	for _, o := range opts {
		o(&cfg)
	}
	if !src.valid() || !dst.valid() {
		return nil, fmt.Errorf("%w: %v -> %v", ErrUnsupportedFramePair, src, dst)
	}

	c1, err := newEpochCtx(jdUTC, cfg.ds)
	if err != nil {
		return nil, err
	}
	c2 := c1
	if cfg.hasJD2 && cfg.jd2 != jdUTC {
		if !dst.OfDate() {
			return nil, fmt.Errorf("target epoch given but %v is not an of-date frame", dst)
		}
		if c2, err = newEpochCtx(cfg.jd2, cfg.ds); err != nil {
			return nil, err
		}
	}

	mode := "zero-eop"
	if c1.hasEOP {
		mode = "eop"
	}
	metrics.RecordTransform(src.String(), dst.String(), mode)

	// Identity shortcut: same frame, same epoch, with or without EOP.
	if src == dst && c1.jdUTC == c2.jdUTC {
		return rotation.Identity(cfg.rep), nil
	}

	switch {
	case src.EarthFixed() && dst.EarthFixed():
		toSrc := c1.itrfTo(src, cfg.rep)
		toDst := c1.itrfTo(dst, cfg.rep)
		return toDst.Compose(toSrc.Inverse()), nil

	case !src.EarthFixed() && !dst.EarthFixed():
		up := c1.gcrfFromECI(src, cfg.rep)
		down := c2.gcrfFromECI(dst, cfg.rep).Inverse()
		return down.Compose(up), nil

	case src.EarthFixed():
		th := c1.ecefTheory(src, dst)
		up := c1.gcrfFromECEF(src, th, cfg.rep)
		down := c2.gcrfFromECI(dst, cfg.rep).Inverse()
		return down.Compose(up), nil

	default:
		th := c2.ecefTheory(dst, src)
		up := c1.gcrfFromECI(src, cfg.rep)
		down := c2.gcrfFromECEF(dst, th, cfg.rep).Inverse()
		return down.Compose(up), nil
	}
}
