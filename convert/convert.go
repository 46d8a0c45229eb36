package convert

import (
	"math"

	"github.com/hupe1980/hepvec/coords"
)

// X returns the Cartesian x component.
func X(s coords.System, c [4]float64) float64 {
	if s.Azimuthal == coords.RhoPhi {
		return XFromRhoPhi(c[0], c[1])
	}
	return c[0]
}

// Y returns the Cartesian y component.
func Y(s coords.System, c [4]float64) float64 {
	if s.Azimuthal == coords.RhoPhi {
		return YFromRhoPhi(c[0], c[1])
	}
	return c[1]
}

// Rho returns the transverse radius.
func Rho(s coords.System, c [4]float64) float64 {
	if s.Azimuthal == coords.RhoPhi {
		return c[0]
	}
	return RhoFromXY(c[0], c[1])
}

// Rho2 returns the squared transverse radius.
func Rho2(s coords.System, c [4]float64) float64 {
	if s.Azimuthal == coords.RhoPhi {
		return c[0] * c[0]
	}
	return c[0]*c[0] + c[1]*c[1]
}

// Phi returns the azimuthal angle.
func Phi(s coords.System, c [4]float64) float64 {
	if s.Azimuthal == coords.RhoPhi {
		return c[1]
	}
	return PhiFromXY(c[0], c[1])
}

// Z returns the Cartesian z component.
func Z(s coords.System, c [4]float64) float64 {
	switch s.Longitudinal {
	case coords.Z:
		return c[2]
	case coords.Theta:
		return ZFromTheta(Rho(s, c), c[2])
	case coords.Eta:
		return ZFromEta(Rho(s, c), c[2])
	default:
		return 0
	}
}

// Theta returns the polar angle.
func Theta(s coords.System, c [4]float64) float64 {
	switch s.Longitudinal {
	case coords.Theta:
		return c[2]
	case coords.Eta:
		return ThetaFromEta(c[2])
	default:
		return ThetaFromZ(Rho(s, c), Z(s, c))
	}
}

// Eta returns the pseudorapidity.
func Eta(s coords.System, c [4]float64) float64 {
	switch s.Longitudinal {
	case coords.Eta:
		return c[2]
	case coords.Theta:
		return EtaFromTheta(c[2])
	default:
		return EtaFromZ(Rho(s, c), Z(s, c))
	}
}

// Mag2 returns the squared spatial magnitude.
func Mag2(s coords.System, c [4]float64) float64 {
	if s.Longitudinal == coords.Eta {
		m := Mag(s, c)
		return m * m
	}
	z := Z(s, c)
	return Rho2(s, c) + z*z
}

// Mag returns the spatial magnitude.
func Mag(s coords.System, c [4]float64) float64 {
	if s.Longitudinal == coords.Eta {
		rho := Rho(s, c)
		if rho == 0 && !math.IsNaN(c[2]) {
			return 0
		}
		return rho * math.Cosh(c[2])
	}
	return math.Hypot(Rho(s, c), Z(s, c))
}

// CosTheta returns z/mag, or 0 for a zero vector.
func CosTheta(s coords.System, c [4]float64) float64 {
	switch s.Longitudinal {
	case coords.Theta:
		return math.Cos(c[2])
	case coords.Eta:
		return math.Tanh(c[2])
	}
	mag := Mag(s, c)
	if mag == 0 {
		return 0
	}
	return Z(s, c) / mag
}

// CotTheta returns z/rho.
func CotTheta(s coords.System, c [4]float64) float64 {
	switch s.Longitudinal {
	case coords.Theta:
		switch c[2] {
		case 0:
			return math.Inf(1)
		case math.Pi:
			return math.Inf(-1)
		}
		return 1 / math.Tan(c[2])
	case coords.Eta:
		return math.Sinh(c[2])
	}
	return Z(s, c) / Rho(s, c)
}

// T returns the time component.
func T(s coords.System, c [4]float64) float64 {
	switch s.Temporal {
	case coords.T:
		return c[3]
	case coords.Tau:
		return TFromTau(c[3], Mag2(s, c))
	default:
		return 0
	}
}

// T2 returns the squared time component.
func T2(s coords.System, c [4]float64) float64 {
	switch s.Temporal {
	case coords.T:
		return c[3] * c[3]
	case coords.Tau:
		return T2FromTau(c[3], Mag2(s, c))
	default:
		return 0
	}
}

// Tau returns the signed proper time.
func Tau(s coords.System, c [4]float64) float64 {
	if s.Temporal == coords.Tau {
		return c[3]
	}
	return TauFromT(T(s, c), Mag2(s, c))
}

// Tau2 returns the signed squared proper time, t^2 - mag^2.
func Tau2(s coords.System, c [4]float64) float64 {
	if s.Temporal == coords.Tau {
		return Tau2FromTau(c[3])
	}
	t := T(s, c)
	return t*t - Mag2(s, c)
}

// Beta returns mag/t, or 0 when both vanish.
func Beta(s coords.System, c [4]float64) float64 {
	mag, t := Mag(s, c), T(s, c)
	if mag == 0 && t == 0 {
		return 0
	}
	return mag / t
}

// Gamma returns t/tau.
func Gamma(s coords.System, c [4]float64) float64 {
	return T(s, c) / Tau(s, c)
}

// Rapidity returns 0.5*ln((t+z)/(t-z)), or 0 when t and z both vanish.
func Rapidity(s coords.System, c [4]float64) float64 {
	t, z := T(s, c), Z(s, c)
	if t == 0 && z == 0 {
		return 0
	}
	return 0.5 * math.Log((t+z)/(t-z))
}

// Mt2 returns the squared transverse mass t^2 - z^2.
func Mt2(s coords.System, c [4]float64) float64 {
	z := Z(s, c)
	return T2(s, c) - z*z
}

// Mt returns the transverse mass. It is NaN when Mt2 is negative.
func Mt(s coords.System, c [4]float64) float64 {
	return math.Sqrt(Mt2(s, c))
}

// Et2 returns the squared transverse energy t^2 * rho^2 / mag^2.
func Et2(s coords.System, c [4]float64) float64 {
	return T2(s, c) * Rho2(s, c) / Mag2(s, c)
}

// Et returns the transverse energy.
func Et(s coords.System, c [4]float64) float64 {
	return math.Sqrt(Et2(s, c))
}
