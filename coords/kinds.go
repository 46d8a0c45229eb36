package coords

import "fmt"

// Azimuthal is the coordinate kind of the transverse plane.
type Azimuthal uint8

const (
	// XY stores Cartesian x and y.
	XY Azimuthal = iota + 1
	// RhoPhi stores the polar radius rho and angle phi.
	RhoPhi
)

func (a Azimuthal) String() string {
	switch a {
	case XY:
		return "xy"
	case RhoPhi:
		return "rhophi"
	default:
		return fmt.Sprintf("Azimuthal(%d)", a)
	}
}

// Valid reports whether a is a known azimuthal kind.
func (a Azimuthal) Valid() bool { return a == XY || a == RhoPhi }

// Fields returns the canonical field names of the kind, in slot order.
func (a Azimuthal) Fields() [2]string {
	if a == RhoPhi {
		return [2]string{FieldRho, FieldPhi}
	}
	return [2]string{FieldX, FieldY}
}

// Longitudinal is the coordinate kind along the beam axis.
// The zero value means the slice is absent (2D vector).
type Longitudinal uint8

const (
	// NoLongitudinal marks a 2D vector.
	NoLongitudinal Longitudinal = iota
	// Z stores the Cartesian z.
	Z
	// Theta stores the polar angle measured from the +z axis.
	Theta
	// Eta stores the pseudorapidity.
	Eta
)

func (l Longitudinal) String() string {
	switch l {
	case NoLongitudinal:
		return "none"
	case Z:
		return "z"
	case Theta:
		return "theta"
	case Eta:
		return "eta"
	default:
		return fmt.Sprintf("Longitudinal(%d)", l)
	}
}

// Valid reports whether l is a present, known longitudinal kind.
func (l Longitudinal) Valid() bool { return l >= Z && l <= Eta }

// Field returns the canonical field name, or "" when absent.
func (l Longitudinal) Field() string {
	switch l {
	case Z:
		return FieldZ
	case Theta:
		return FieldTheta
	case Eta:
		return FieldEta
	default:
		return ""
	}
}

// Temporal is the coordinate kind of the time slice.
// The zero value means the slice is absent (2D or 3D vector).
type Temporal uint8

const (
	// NoTemporal marks a vector without a time slice.
	NoTemporal Temporal = iota
	// T stores the time (energy) component.
	T
	// Tau stores the signed proper time (mass).
	Tau
)

func (t Temporal) String() string {
	switch t {
	case NoTemporal:
		return "none"
	case T:
		return "t"
	case Tau:
		return "tau"
	default:
		return fmt.Sprintf("Temporal(%d)", t)
	}
}

// Valid reports whether t is a present, known temporal kind.
func (t Temporal) Valid() bool { return t == T || t == Tau }

// Field returns the canonical field name, or "" when absent.
func (t Temporal) Field() string {
	switch t {
	case T:
		return FieldT
	case Tau:
		return FieldTau
	default:
		return ""
	}
}

// Flavor distinguishes plain geometric vectors from momentum vectors.
type Flavor uint8

const (
	Geometric Flavor = iota
	Momentum
)

func (f Flavor) String() string {
	switch f {
	case Geometric:
		return "geometric"
	case Momentum:
		return "momentum"
	default:
		return fmt.Sprintf("Flavor(%d)", f)
	}
}

// Merge returns Momentum if either flavor is Momentum.
func (f Flavor) Merge(other Flavor) Flavor {
	if f == Momentum || other == Momentum {
		return Momentum
	}
	return Geometric
}

// System is the combination of kinds that fixes a vector's native fields.
type System struct {
	Azimuthal    Azimuthal
	Longitudinal Longitudinal
	Temporal     Temporal
}

// Dim returns 2, 3 or 4.
func (s System) Dim() int {
	switch {
	case s.Temporal != NoTemporal:
		return 4
	case s.Longitudinal != NoLongitudinal:
		return 3
	default:
		return 2
	}
}

// Valid reports whether the kinds are known and the temporal slice only
// appears together with a longitudinal slice.
func (s System) Valid() bool {
	if !s.Azimuthal.Valid() {
		return false
	}
	if s.Longitudinal != NoLongitudinal && !s.Longitudinal.Valid() {
		return false
	}
	if s.Temporal != NoTemporal {
		return s.Temporal.Valid() && s.Longitudinal != NoLongitudinal
	}
	return true
}

// Fields returns the canonical native field names in slot order.
func (s System) Fields() []string {
	az := s.Azimuthal.Fields()
	out := make([]string, 0, 4)
	out = append(out, az[0], az[1])
	if f := s.Longitudinal.Field(); f != "" {
		out = append(out, f)
	}
	if f := s.Temporal.Field(); f != "" {
		out = append(out, f)
	}
	return out
}

// String renders the system the way projection names do, e.g. "rhophi_eta_tau".
func (s System) String() string {
	out := s.Azimuthal.String()
	if s.Longitudinal != NoLongitudinal {
		out += "_" + s.Longitudinal.String()
	}
	if s.Temporal != NoTemporal {
		out += "_" + s.Temporal.String()
	}
	return out
}

// All returns every valid system, ordered by dimension and then by kind.
func All() []System {
	out := make([]System, 0, 20)
	for _, az := range []Azimuthal{XY, RhoPhi} {
		out = append(out, System{Azimuthal: az})
	}
	for _, az := range []Azimuthal{XY, RhoPhi} {
		for _, l := range []Longitudinal{Z, Theta, Eta} {
			out = append(out, System{Azimuthal: az, Longitudinal: l})
		}
	}
	for _, az := range []Azimuthal{XY, RhoPhi} {
		for _, l := range []Longitudinal{Z, Theta, Eta} {
			for _, t := range []Temporal{T, Tau} {
				out = append(out, System{Azimuthal: az, Longitudinal: l, Temporal: t})
			}
		}
	}
	return out
}
