package frames

import (
	"github.com/star/astroframe/internal/rotation"
)

// State is an orbit state vector: an epoch, a position and a velocity in a
// stated frame. The engine is unit-agnostic as long as one length unit is
// used consistently within a call, with velocity in that unit per second.
// States are immutable; transforms return new values.
type State struct {
	Epoch    float64 // UTC Julian Date
	Frame    Frame
	Position rotation.Vec3
	Velocity rotation.Vec3
}

// Transform rotates a state vector into the target frame at the state's
// epoch. Position is rotated directly. Velocity picks up the Earth-rotation
// kinematic term when the transform crosses the Earth-fixed boundary:
//
//	Earth-fixed → inertial:  v' = R · (v + ω × r)
//	inertial → Earth-fixed:  v' = R · v − ω × r'
//
// where ω is Earth's rotation rate scaled by (1 − LOD/86400) when an EOP
// dataset is supplied, the nominal rate otherwise. The output epoch equals
// the input epoch: frame transforms are instantaneous.
func Transform(s State, target Frame, opts ...Option) (State, error) {
	cfg := config{rep: rotation.DCM}
	for _, o := range opts {
		o(&cfg)
	}

	rot, err := Rotation(s.Frame, target, s.Epoch, opts...)
	if err != nil {
		return State{}, err
	}

	pos := rot.Apply(s.Position)
	vel := rot.Apply(s.Velocity)

	srcFixed, dstFixed := s.Frame.EarthFixed(), target.EarthFixed()
	if srcFixed != dstFixed {
		var lod float64
		if cfg.ds != nil {
			vals, err := cfg.ds.At(s.Epoch)
			if err != nil {
				return State{}, err
			}
			lod = vals.LOD
		}
		w := rotation.Vec3{0, 0, EarthRate(lod)}
		if srcFixed {
			vel = rot.Apply(s.Velocity.Add(w.Cross(s.Position)))
		} else {
			vel = vel.Sub(w.Cross(pos))
		}
	}

	return State{
		Epoch:    s.Epoch,
		Frame:    target,
		Position: pos,
		Velocity: vel,
	}, nil
}
