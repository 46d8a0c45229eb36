// Package resolve computes the result type of operations that combine vectors.
//
// # Policies
//
//   - Demote: the result has the smaller dimension; the extra slices of the
//     longer operand are discarded (add, dot, equal, isclose).
//   - ImputeZero: a missing longitudinal slice reads as z = 0, so a 2D operand
//     combined with a 3D or 4D one yields 3D. The temporal slice is never
//     imputed (subtract, is_parallel, is_perpendicular).
//   - Spatial: the result is always 3D (cross).
//
// Per slice, a kind shared by both operands is kept; otherwise the first kind
// in the canonical order (XY < RhoPhi, Z < Theta < Eta, T < Tau) wins. Imputed
// slices count as Cartesian. The result therefore never depends on argument
// order. The result is momentum-flavored when either operand is.
package resolve

import (
	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/vtype"
)

// Policy selects how mismatched dimensions are reconciled.
type Policy uint8

const (
	Demote Policy = iota
	ImputeZero
	Spatial
)

func (p Policy) String() string {
	switch p {
	case Demote:
		return "demote"
	case ImputeZero:
		return "impute-zero"
	case Spatial:
		return "spatial"
	default:
		return "unknown"
	}
}

// Dim returns the result dimension for operands of dimension a and b.
func (p Policy) Dim(a, b int) int {
	lo, hi := min(a, b), max(a, b)
	switch p {
	case ImputeZero:
		return max(lo, min(hi, 3))
	case Spatial:
		return 3
	default:
		return lo
	}
}

// Binary returns the descriptor of op(a, b) under policy p.
func Binary(a, b vtype.Descriptor, p Policy) vtype.Descriptor {
	dim := p.Dim(a.Dim(), b.Dim())

	sys := coords.System{Azimuthal: pickAzimuthal(a.Azimuthal(), b.Azimuthal())}
	if dim >= 3 {
		sys.Longitudinal = pickLongitudinal(a.Longitudinal(), b.Longitudinal())
	}
	if dim == 4 {
		sys.Temporal = pickTemporal(a.Temporal(), b.Temporal())
	}
	return vtype.Must(sys, a.Flavor().Merge(b.Flavor()))
}

func pickAzimuthal(a, b coords.Azimuthal) coords.Azimuthal {
	return min(a, b)
}

// pickLongitudinal treats an absent slice as an imputed Cartesian z.
func pickLongitudinal(a, b coords.Longitudinal) coords.Longitudinal {
	if a == coords.NoLongitudinal {
		a = coords.Z
	}
	if b == coords.NoLongitudinal {
		b = coords.Z
	}
	return min(a, b)
}

func pickTemporal(a, b coords.Temporal) coords.Temporal {
	if a == coords.NoTemporal {
		return b
	}
	if b == coords.NoTemporal {
		return a
	}
	return min(a, b)
}

// Cartesian returns the descriptor with every present slice switched to its
// Cartesian kind, keeping dimension and flavor.
func Cartesian(d vtype.Descriptor) vtype.Descriptor {
	sys := coords.System{Azimuthal: coords.XY}
	if d.Dim() >= 3 {
		sys.Longitudinal = coords.Z
	}
	if d.Dim() == 4 {
		sys.Temporal = coords.T
	}
	return vtype.Must(sys, d.Flavor())
}
