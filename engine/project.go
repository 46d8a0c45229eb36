package engine

import (
	"fmt"

	"github.com/hupe1980/hepvec/convert"
	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/vtype"
)

// To re-expresses v in the coordinate system sys, keeping its flavor.
//
// Slices v does not have are filled with 0 in the target kind (so a 2D vector
// projected to xy_theta gets theta = 0), and slices sys does not have are
// dropped. Slices already stored in the target kind are copied unchanged.
func To(v Vec, sys coords.System) (Vec, error) {
	d, err := vtype.New(sys, v.Type.Flavor())
	if err != nil {
		return Vec{}, argumentError("to", fmt.Sprintf("invalid target system %s", sys), err)
	}
	return convertTo(v, d), nil
}

func convertTo(v Vec, d vtype.Descriptor) Vec {
	s := v.sys()
	out := Vec{Type: d}

	switch {
	case d.Azimuthal() == s.Azimuthal:
		out.C[0], out.C[1] = v.C[0], v.C[1]
	case d.Azimuthal() == coords.RhoPhi:
		out.C[0], out.C[1] = convert.Rho(s, v.C), convert.Phi(s, v.C)
	default:
		out.C[0], out.C[1] = convert.X(s, v.C), convert.Y(s, v.C)
	}

	if d.Dim() >= 3 && v.Dim() >= 3 {
		switch lon := d.Longitudinal(); {
		case lon == s.Longitudinal:
			out.C[2] = v.C[2]
		case lon == coords.Theta:
			out.C[2] = convert.Theta(s, v.C)
		case lon == coords.Eta:
			out.C[2] = convert.Eta(s, v.C)
		default:
			out.C[2] = convert.Z(s, v.C)
		}
	}

	if d.Dim() == 4 && v.Dim() == 4 {
		switch tem := d.Temporal(); {
		case tem == s.Temporal:
			out.C[3] = v.C[3]
		case tem == coords.Tau:
			out.C[3] = convert.Tau(s, v.C)
		default:
			out.C[3] = convert.T(s, v.C)
		}
	}
	return out
}

// Demote drops the slices of v above dimension dim, keeping the other kinds.
func Demote(v Vec, dim int) (Vec, error) {
	d, err := v.Type.Demote(dim)
	if err != nil {
		return Vec{}, argumentError("demote", err.Error(), err)
	}
	out := Vec{Type: d}
	copy(out.C[:dim], v.C[:dim])
	return out, nil
}

// Promote3D adds a longitudinal slice of the given kind and value to a 2D vector.
func Promote3D(v Vec, lon coords.Longitudinal, value float64) (Vec, error) {
	if v.Dim() != 2 {
		return Vec{}, argumentError("promote3D", fmt.Sprintf("need a 2D vector, got %s", v.Type), nil)
	}
	d, err := v.Type.WithLongitudinal(lon)
	if err != nil {
		return Vec{}, argumentError("promote3D", err.Error(), err)
	}
	out := Vec{Type: d, C: v.C}
	out.C[2] = value
	return out, nil
}

// Promote4D adds a temporal slice of the given kind and value to a 3D vector.
func Promote4D(v Vec, tem coords.Temporal, value float64) (Vec, error) {
	if v.Dim() != 3 {
		return Vec{}, argumentError("promote4D", fmt.Sprintf("need a 3D vector, got %s", v.Type), nil)
	}
	d, err := v.Type.WithTemporal(tem)
	if err != nil {
		return Vec{}, argumentError("promote4D", err.Error(), err)
	}
	out := Vec{Type: d, C: v.C}
	out.C[3] = value
	return out, nil
}

// ToGeometric strips the momentum flavor; the stored values are unchanged.
func ToGeometric(v Vec) Vec {
	v.Type = v.Type.Geometric()
	return v
}

// ToMomentum adds the momentum flavor; the stored values are unchanged.
func ToMomentum(v Vec) Vec {
	v.Type = v.Type.AsMomentum()
	return v
}

// Projection returns the coordinate system named like "xy", "rhophi_z" or
// "xy_eta_tau" (see coords.System.String).
func Projection(name string) (coords.System, bool) {
	for _, sys := range coords.All() {
		if sys.String() == name {
			return sys, true
		}
	}
	return coords.System{}, false
}
