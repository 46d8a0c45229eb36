package engine

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/hupe1980/hepvec/convert"
	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/resolve"
)

// Add returns a + b, demoted to the smaller dimension.
func Add(a, b Vec) Vec {
	d := resolve.Binary(a.Type, b.Type, resolve.Demote)
	ax, ay, az, at := a.cartesian()
	bx, by, bz, bt := b.cartesian()
	return fromCartesian(d, ax+bx, ay+by, az+bz, at+bt)
}

// Subtract returns a - b. A 2D operand combined with a longer one is read
// with z = 0, so the result is at least 3D in that case; time is only kept
// when both operands are 4D.
func Subtract(a, b Vec) Vec {
	d := resolve.Binary(a.Type, b.Type, resolve.ImputeZero)
	ax, ay, az, at := a.cartesian()
	bx, by, bz, bt := b.cartesian()
	return fromCartesian(d, ax-bx, ay-by, az-bz, at-bt)
}

// Scale multiplies v by f, keeping its coordinate kinds.
func Scale(v Vec, f float64) Vec {
	out := v
	switch v.Type.Azimuthal() {
	case coords.RhoPhi:
		out.C[0] = math.Abs(f) * v.C[0]
		if f < 0 {
			out.C[1] = convert.Rectify(v.C[1] + math.Pi)
		}
	default:
		out.C[0], out.C[1] = f*v.C[0], f*v.C[1]
	}

	switch v.Type.Longitudinal() {
	case coords.Z:
		out.C[2] = f * v.C[2]
	case coords.Theta:
		if f < 0 {
			out.C[2] = math.Pi - v.C[2]
		}
	case coords.Eta:
		if f < 0 {
			out.C[2] = -v.C[2]
		}
	}

	if v.Type.Temporal() != coords.NoTemporal {
		out.C[3] = f * v.C[3]
	}
	return out
}

// Neg returns -v.
func Neg(v Vec) Vec { return Scale(v, -1) }

// Dot returns the scalar product in the smaller dimension of a and b:
// Euclidean for 2D and 3D, Minkowski (t*t - p*p) for two 4D vectors.
func Dot(a, b Vec) float64 {
	dim := resolve.Demote.Dim(a.Dim(), b.Dim())
	sa, sb := a.sys(), b.sys()

	var out float64
	if sa.Azimuthal == coords.RhoPhi && sb.Azimuthal == coords.RhoPhi {
		out = a.C[0] * b.C[0] * math.Cos(a.C[1]-b.C[1])
	} else {
		out = convert.X(sa, a.C)*convert.X(sb, b.C) + convert.Y(sa, a.C)*convert.Y(sb, b.C)
	}
	if dim >= 3 {
		out += convert.Z(sa, a.C) * convert.Z(sb, b.C)
	}
	if dim == 4 {
		out = convert.T(sa, a.C)*convert.T(sb, b.C) - out
	}
	return out
}

func spatial(v Vec) r3.Vec {
	x, y, z, _ := v.cartesian()
	return r3.Vec{X: x, Y: y, Z: z}
}

// Cross returns the 3D cross product a x b. The temporal slices of 4D operands
// are dropped; a 2D argument b is read with z = 0.
func Cross(a, b Vec) (Vec, error) {
	if err := requireDim("cross", a, 3); err != nil {
		return Vec{}, err
	}
	d := resolve.Binary(a.Type, b.Type, resolve.Spatial)
	c := r3.Cross(spatial(a), spatial(b))
	return fromCartesian(d, c.X, c.Y, c.Z, 0), nil
}

// Abs returns the norm of v: rho in 2D, mag in 3D and sqrt(|tau2|) in 4D.
func Abs(v Vec) float64 {
	switch v.Dim() {
	case 2:
		return v.Rho()
	case 3:
		return v.Mag()
	default:
		return math.Sqrt(math.Abs(v.Tau2()))
	}
}

func divOrZero(x, n float64) float64 {
	if n == 0 {
		return 0
	}
	return x / n
}

// Unit returns v divided by Abs(v), keeping its coordinate kinds. Angles are
// unchanged. The zero vector maps to the zero vector, so Abs(Unit(0)) == 0.
func Unit(v Vec) Vec {
	n := Abs(v)
	out := v
	switch v.Type.Azimuthal() {
	case coords.RhoPhi:
		out.C[0] = divOrZero(v.C[0], n)
	default:
		out.C[0], out.C[1] = divOrZero(v.C[0], n), divOrZero(v.C[1], n)
	}
	if v.Type.Longitudinal() == coords.Z {
		out.C[2] = divOrZero(v.C[2], n)
	}
	if v.Type.Temporal() != coords.NoTemporal {
		out.C[3] = divOrZero(v.C[3], n)
	}
	return out
}

// Equal compares the stored values of a and b in their common dimension.
// Vectors stored in different coordinate kinds are never equal.
func Equal(a, b Vec) bool {
	dim := resolve.Demote.Dim(a.Dim(), b.Dim())
	if a.Type.Azimuthal() != b.Type.Azimuthal() {
		return false
	}
	if dim >= 3 && a.Type.Longitudinal() != b.Type.Longitudinal() {
		return false
	}
	if dim == 4 && a.Type.Temporal() != b.Type.Temporal() {
		return false
	}
	for i := 0; i < dim; i++ {
		if a.C[i] != b.C[i] {
			return false
		}
	}
	return true
}

// NotEqual is the negation of Equal.
func NotEqual(a, b Vec) bool { return !Equal(a, b) }

// Tolerance configures IsClose.
type Tolerance struct {
	RTol     float64
	ATol     float64
	EqualNaN bool
}

// DefaultTolerance matches the usual numerical defaults.
var DefaultTolerance = Tolerance{RTol: 1e-5, ATol: 1e-8}

func (tol Tolerance) close(a, b float64) bool {
	if a == b {
		return true
	}
	if math.IsNaN(a) || math.IsNaN(b) {
		return tol.EqualNaN && math.IsNaN(a) && math.IsNaN(b)
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	return math.Abs(a-b) <= tol.ATol+tol.RTol*math.Abs(b)
}

// IsClose compares the Cartesian components of a and b in their common
// dimension using |a-b| <= atol + rtol*|b| per component.
func IsClose(a, b Vec, tol Tolerance) bool {
	dim := resolve.Demote.Dim(a.Dim(), b.Dim())
	ax, ay, az, at := a.cartesian()
	bx, by, bz, bt := b.cartesian()

	if !tol.close(ax, bx) || !tol.close(ay, by) {
		return false
	}
	if dim >= 3 && !tol.close(az, bz) {
		return false
	}
	if dim == 4 && !tol.close(at, bt) {
		return false
	}
	return true
}
