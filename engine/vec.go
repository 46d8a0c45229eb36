package engine

import (
	"math"
	"sort"

	"github.com/hupe1980/hepvec/convert"
	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/vtype"
)

// Vec is a vector value: its type and the native coordinates in slot order
// (azimuthal in C[0] and C[1], longitudinal in C[2], temporal in C[3]).
// Slots the type does not use are zero.
type Vec struct {
	Type vtype.Descriptor
	C    [4]float64
}

// Make builds a Vec from native values in slot order. Extra values beyond the
// dimension of d are ignored; missing ones are zero.
func Make(d vtype.Descriptor, values ...float64) Vec {
	v := Vec{Type: d}
	copy(v.C[:d.Dim()], values)
	return v
}

// FromMap builds a Vec from named fields, inferring the type from the names.
func FromMap(fields map[string]float64) (Vec, error) {
	names := make([]string, 0, len(fields))
	for n := range fields {
		names = append(names, n)
	}
	sort.Strings(names)

	d, slots, err := vtype.FromNames(names)
	if err != nil {
		return Vec{}, err
	}
	v := Vec{Type: d}
	for i, n := range names {
		v.C[slots[i]] = fields[n]
	}
	return v, nil
}

// Dim returns the dimension of v.
func (v Vec) Dim() int { return v.Type.Dim() }

func (v Vec) sys() coords.System { return v.Type.System() }

// Get reads a coordinate by name, native or derived.
func (v Vec) Get(name string) (float64, error) {
	c, ok := convert.Lookup(name)
	if !ok || (c.Momentum && !v.Type.IsMomentum()) {
		return math.NaN(), &AttributeError{Name: name, Type: v.Type}
	}
	if v.Dim() < c.MinDim {
		return math.NaN(), &CapabilityError{Op: name, Type: v.Type, Need: c.MinDim}
	}
	return c.Compute(v.sys(), v.C), nil
}

// Fields returns the stored values keyed by their presented names.
func (v Vec) Fields() map[string]float64 {
	names := v.Type.Names()
	out := make(map[string]float64, len(names))
	for i, n := range names {
		out[n] = v.C[i]
	}
	return out
}

func (v Vec) X() float64 { return convert.X(v.sys(), v.C) }
func (v Vec) Y() float64 { return convert.Y(v.sys(), v.C) }
func (v Vec) Rho() float64 { return convert.Rho(v.sys(), v.C) }
func (v Vec) Rho2() float64 { return convert.Rho2(v.sys(), v.C) }
func (v Vec) Phi() float64 { return convert.Phi(v.sys(), v.C) }
func (v Vec) Z() float64 { return convert.Z(v.sys(), v.C) }
func (v Vec) Theta() float64 { return convert.Theta(v.sys(), v.C) }
func (v Vec) Eta() float64 { return convert.Eta(v.sys(), v.C) }
func (v Vec) Mag() float64 { return convert.Mag(v.sys(), v.C) }
func (v Vec) Mag2() float64 { return convert.Mag2(v.sys(), v.C) }
func (v Vec) CosTheta() float64 { return convert.CosTheta(v.sys(), v.C) }
func (v Vec) CotTheta() float64 { return convert.CotTheta(v.sys(), v.C) }
func (v Vec) T() float64 { return convert.T(v.sys(), v.C) }
func (v Vec) T2() float64 { return convert.T2(v.sys(), v.C) }
func (v Vec) Tau() float64 { return convert.Tau(v.sys(), v.C) }
func (v Vec) Tau2() float64 { return convert.Tau2(v.sys(), v.C) }
func (v Vec) Beta() float64 { return convert.Beta(v.sys(), v.C) }
func (v Vec) Gamma() float64 { return convert.Gamma(v.sys(), v.C) }
func (v Vec) Rapidity() float64 { return convert.Rapidity(v.sys(), v.C) }
func (v Vec) Mt() float64 { return convert.Mt(v.sys(), v.C) }
func (v Vec) Mt2() float64 { return convert.Mt2(v.sys(), v.C) }
func (v Vec) Et() float64 { return convert.Et(v.sys(), v.C) }
func (v Vec) Et2() float64 { return convert.Et2(v.sys(), v.C) }

// cartesian returns x, y, z and t, with absent slices read as zero.
func (v Vec) cartesian() (x, y, z, t float64) {
	s := v.sys()
	return convert.X(s, v.C), convert.Y(s, v.C), convert.Z(s, v.C), convert.T(s, v.C)
}

// fromCartesian stores Cartesian components in the kinds of d.
func fromCartesian(d vtype.Descriptor, x, y, z, t float64) Vec {
	v := Vec{Type: d}
	if d.Azimuthal() == coords.RhoPhi {
		v.C[0], v.C[1] = convert.RhoFromXY(x, y), convert.PhiFromXY(x, y)
	} else {
		v.C[0], v.C[1] = x, y
	}
	if d.Dim() < 3 {
		return v
	}
	switch d.Longitudinal() {
	case coords.Theta:
		v.C[2] = convert.ThetaFromZ(convert.RhoFromXY(x, y), z)
	case coords.Eta:
		v.C[2] = convert.EtaFromZ(convert.RhoFromXY(x, y), z)
	default:
		v.C[2] = z
	}
	if d.Dim() < 4 {
		return v
	}
	if d.Temporal() == coords.Tau {
		v.C[3] = convert.TauFromT(t, x*x+y*y+z*z)
	} else {
		v.C[3] = t
	}
	return v
}
