package vtype

import (
	"fmt"
	"strings"

	"github.com/hupe1980/hepvec/convert"
	"github.com/hupe1980/hepvec/coords"
)

// Descriptor is the immutable type of a vector.
// The zero value is invalid.
type Descriptor struct {
	sys    coords.System
	flavor coords.Flavor
}

// New validates sys and returns its descriptor.
func New(sys coords.System, flavor coords.Flavor) (Descriptor, error) {
	if !sys.Valid() {
		return Descriptor{}, &ConstructionError{Fields: sys.Fields(), Reason: fmt.Sprintf("invalid coordinate system %s", sys)}
	}
	if flavor != coords.Geometric && flavor != coords.Momentum {
		return Descriptor{}, &ConstructionError{Fields: sys.Fields(), Reason: fmt.Sprintf("invalid flavor %s", flavor)}
	}
	return Descriptor{sys: sys, flavor: flavor}, nil
}

// Must is like New but panics on an invalid system.
func Must(sys coords.System, flavor coords.Flavor) Descriptor {
	d, err := New(sys, flavor)
	if err != nil {
		panic(err)
	}
	return d
}

func Vector2D(az coords.Azimuthal) Descriptor {
	return Must(coords.System{Azimuthal: az}, coords.Geometric)
}

func Vector3D(az coords.Azimuthal, lon coords.Longitudinal) Descriptor {
	return Must(coords.System{Azimuthal: az, Longitudinal: lon}, coords.Geometric)
}

func Vector4D(az coords.Azimuthal, lon coords.Longitudinal, tem coords.Temporal) Descriptor {
	return Must(coords.System{Azimuthal: az, Longitudinal: lon, Temporal: tem}, coords.Geometric)
}

func Momentum2D(az coords.Azimuthal) Descriptor {
	return Vector2D(az).AsMomentum()
}

func Momentum3D(az coords.Azimuthal, lon coords.Longitudinal) Descriptor {
	return Vector3D(az, lon).AsMomentum()
}

func Momentum4D(az coords.Azimuthal, lon coords.Longitudinal, tem coords.Temporal) Descriptor {
	return Vector4D(az, lon, tem).AsMomentum()
}

// IsZero reports whether d is the zero (invalid) descriptor.
func (d Descriptor) IsZero() bool { return d == Descriptor{} }

func (d Descriptor) System() coords.System { return d.sys }
func (d Descriptor) Dim() int { return d.sys.Dim() }
func (d Descriptor) Azimuthal() coords.Azimuthal { return d.sys.Azimuthal }
func (d Descriptor) Longitudinal() coords.Longitudinal { return d.sys.Longitudinal }
func (d Descriptor) Temporal() coords.Temporal { return d.sys.Temporal }
func (d Descriptor) Flavor() coords.Flavor { return d.flavor }
func (d Descriptor) IsMomentum() bool { return d.flavor == coords.Momentum }

// Fields returns the canonical native field names in slot order.
func (d Descriptor) Fields() []string { return d.sys.Fields() }

// Names returns the native field names as presented for the flavor,
// e.g. [pt phi eta M] for a momentum vector stored as rho, phi, eta, tau.
func (d Descriptor) Names() []string {
	fields := d.sys.Fields()
	if d.IsMomentum() {
		for i, f := range fields {
			fields[i] = coords.MomentumName(f)
		}
	}
	return fields
}

// Slot returns the payload slot of a native field, accepting momentum
// synonyms on momentum descriptors only.
func (d Descriptor) Slot(name string) (int, bool) {
	canonical, momentum, ok := coords.Canonical(name)
	if !ok || (momentum && !d.IsMomentum()) {
		return 0, false
	}
	switch canonical {
	case d.sys.Longitudinal.Field():
		return 2, true
	case d.sys.Temporal.Field():
		return 3, true
	}
	az := d.sys.Azimuthal.Fields()
	for i, f := range az {
		if f == canonical {
			return i, true
		}
	}
	return 0, false
}

// HasField reports whether the coordinate name, native or derived, can be
// read from a vector of this type.
func (d Descriptor) HasField(name string) bool {
	c, ok := convert.Lookup(name)
	if !ok {
		return false
	}
	if c.Momentum && !d.IsMomentum() {
		return false
	}
	return c.MinDim <= d.Dim()
}

// Demote drops slices until the descriptor has dimension dim.
func (d Descriptor) Demote(dim int) (Descriptor, error) {
	if dim < 2 || dim > d.Dim() {
		return Descriptor{}, &ProjectionError{From: d, Reason: fmt.Sprintf("cannot demote to %dD", dim)}
	}
	out := d
	if dim < 4 {
		out.sys.Temporal = coords.NoTemporal
	}
	if dim < 3 {
		out.sys.Longitudinal = coords.NoLongitudinal
	}
	return out, nil
}

// WithAzimuthal replaces the azimuthal kind.
func (d Descriptor) WithAzimuthal(az coords.Azimuthal) (Descriptor, error) {
	if !az.Valid() {
		return Descriptor{}, &ProjectionError{From: d, Reason: fmt.Sprintf("invalid azimuthal kind %s", az)}
	}
	d.sys.Azimuthal = az
	return d, nil
}

// WithLongitudinal sets the longitudinal kind, promoting a 2D descriptor to 3D.
func (d Descriptor) WithLongitudinal(lon coords.Longitudinal) (Descriptor, error) {
	if !lon.Valid() {
		return Descriptor{}, &ProjectionError{From: d, Reason: fmt.Sprintf("invalid longitudinal kind %s", lon)}
	}
	d.sys.Longitudinal = lon
	return d, nil
}

// WithTemporal sets the temporal kind, promoting a 3D descriptor to 4D.
// A 2D descriptor needs a longitudinal kind first.
func (d Descriptor) WithTemporal(tem coords.Temporal) (Descriptor, error) {
	if !tem.Valid() {
		return Descriptor{}, &ProjectionError{From: d, Reason: fmt.Sprintf("invalid temporal kind %s", tem)}
	}
	if d.sys.Longitudinal == coords.NoLongitudinal {
		return Descriptor{}, &ProjectionError{From: d, Reason: "a temporal slice requires a longitudinal slice"}
	}
	d.sys.Temporal = tem
	return d, nil
}

// WithFlavor returns d with the given flavor.
func (d Descriptor) WithFlavor(f coords.Flavor) Descriptor {
	d.flavor = f
	return d
}

// Geometric strips the momentum flavor.
func (d Descriptor) Geometric() Descriptor { return d.WithFlavor(coords.Geometric) }

// AsMomentum adds the momentum flavor.
func (d Descriptor) AsMomentum() Descriptor { return d.WithFlavor(coords.Momentum) }

// Less orders descriptors by dimension, then by kinds, then by flavor.
func (d Descriptor) Less(o Descriptor) bool {
	a := [5]int{d.Dim(), int(d.sys.Azimuthal), int(d.sys.Longitudinal), int(d.sys.Temporal), int(d.flavor)}
	b := [5]int{o.Dim(), int(o.sys.Azimuthal), int(o.sys.Longitudinal), int(o.sys.Temporal), int(o.flavor)}
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func (d Descriptor) String() string {
	if d.IsZero() {
		return "Invalid()"
	}
	prefix := "Vector"
	if d.IsMomentum() {
		prefix = "Momentum"
	}
	return fmt.Sprintf("%s%dD(%s)", prefix, d.Dim(), strings.Join(d.Names(), ", "))
}
