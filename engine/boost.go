package engine

import (
	"fmt"
	"math"

	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/vtype"
)

// BoostOption selects the speed of a single-axis boost.
type BoostOption func(*boostSpeed)

type boostSpeed struct {
	beta, gamma       float64
	hasBeta, hasGamma bool
}

// WithBeta boosts with velocity beta (in units of c).
func WithBeta(beta float64) BoostOption {
	return func(s *boostSpeed) {
		s.beta = beta
		s.hasBeta = true
	}
}

// WithGamma boosts with Lorentz factor |gamma|; the sign of gamma selects the
// direction.
func WithGamma(gamma float64) BoostOption {
	return func(s *boostSpeed) {
		s.gamma = gamma
		s.hasGamma = true
	}
}

// factors returns gamma and beta*gamma for the configured speed.
func (s boostSpeed) factors() (gam, bgam float64) {
	if s.hasBeta {
		gam = 1 / math.Sqrt(1-s.beta*s.beta)
		return gam, s.beta * gam
	}
	gam = math.Abs(s.gamma)
	return gam, math.Copysign(math.Sqrt(s.gamma*s.gamma-1), s.gamma)
}

// boosted stores boosted Cartesian components. A tau-stored vector keeps its
// proper time, which boosts leave invariant.
func boosted(v, booster Vec, x, y, z, t float64) Vec {
	tem := v.Type.Temporal()
	sys := coords.System{Azimuthal: coords.XY, Longitudinal: coords.Z, Temporal: tem}
	out := Vec{Type: vtype.Must(sys, v.Type.Flavor().Merge(booster.Type.Flavor()))}
	out.C = [4]float64{x, y, z, t}
	if tem == coords.Tau {
		out.C[3] = v.C[3]
	}
	return out
}

func boostAxis(op string, v Vec, axis int, opts []BoostOption) (Vec, error) {
	var s boostSpeed
	for _, opt := range opts {
		opt(&s)
	}
	if s.hasBeta == s.hasGamma {
		return Vec{}, argumentError(op, "exactly one of beta or gamma must be given", nil)
	}
	if err := requireDim(op, v, 4); err != nil {
		return Vec{}, err
	}

	gam, bgam := s.factors()
	x, y, z, t := v.cartesian()
	p := [3]float64{x, y, z}
	p[axis], t = gam*p[axis]+bgam*t, bgam*p[axis]+gam*t
	return boosted(v, Vec{}, p[0], p[1], p[2], t), nil
}

// BoostX boosts v along x. Exactly one of WithBeta or WithGamma must be given.
func BoostX(v Vec, opts ...BoostOption) (Vec, error) { return boostAxis("boostX", v, 0, opts) }

// BoostY boosts v along y. Exactly one of WithBeta or WithGamma must be given.
func BoostY(v Vec, opts ...BoostOption) (Vec, error) { return boostAxis("boostY", v, 1, opts) }

// BoostZ boosts v along z. Exactly one of WithBeta or WithGamma must be given.
func BoostZ(v Vec, opts ...BoostOption) (Vec, error) { return boostAxis("boostZ", v, 2, opts) }

// lorentzBoost applies the active boost with velocity (bx, by, bz) and Lorentz
// factor gam to the four-vector (x, y, z, t).
func lorentzBoost(x, y, z, t, bx, by, bz, gam float64) (float64, float64, float64, float64) {
	bgam := gam * gam / (1 + gam)
	bp := bx*x + by*y + bz*z
	k := bgam*bp + gam*t
	return x + k*bx, y + k*by, z + k*bz, gam * (t + bp)
}

// BoostBeta3 boosts the 4D vector v by the velocity beta3 (in units of c).
// Speeds of 1 or more produce NaN or infinite components.
func BoostBeta3(v, beta3 Vec) (Vec, error) {
	if err := requireDim("boost_beta3", v, 4); err != nil {
		return Vec{}, err
	}
	if err := requireDim("boost_beta3", beta3, 3); err != nil {
		return Vec{}, err
	}
	bx, by, bz, _ := beta3.cartesian()
	gam := 1 / math.Sqrt(1-(bx*bx+by*by+bz*bz))
	x, y, z, t := v.cartesian()
	x, y, z, t = lorentzBoost(x, y, z, t, bx, by, bz, gam)
	return boosted(v, beta3, x, y, z, t), nil
}

// BoostP4 boosts v into the frame in which p4 moves, i.e. by p4's velocity
// p/E with Lorentz factor E/M.
func BoostP4(v, p4 Vec) (Vec, error) {
	if err := requireDim("boost_p4", v, 4); err != nil {
		return Vec{}, err
	}
	if err := requireDim("boost_p4", p4, 4); err != nil {
		return Vec{}, err
	}
	px, py, pz, e := p4.cartesian()
	gam := e / p4.Tau()
	x, y, z, t := v.cartesian()
	x, y, z, t = lorentzBoost(x, y, z, t, px/e, py/e, pz/e, gam)
	return boosted(v, p4, x, y, z, t), nil
}

// Boost dispatches on the booster: a 3D booster is a velocity (BoostBeta3),
// a 4D booster is a four-momentum (BoostP4).
func Boost(v, booster Vec) (Vec, error) {
	switch booster.Dim() {
	case 3:
		return BoostBeta3(v, booster)
	case 4:
		return BoostP4(v, booster)
	default:
		return Vec{}, argumentError("boost", fmt.Sprintf("booster must be 3D or 4D, got %s", booster.Type), nil)
	}
}

// ToBeta3 returns the velocity p/t of the 4D vector v as a 3D vector.
func ToBeta3(v Vec) (Vec, error) {
	if err := requireDim("to_beta3", v, 4); err != nil {
		return Vec{}, err
	}
	x, y, z, t := v.cartesian()
	return fromCartesian(vtype.Must(coords.System{Azimuthal: coords.XY, Longitudinal: coords.Z}, v.Type.Flavor()), x/t, y/t, z/t, 0), nil
}
