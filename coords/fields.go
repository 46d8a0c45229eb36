package coords

// Canonical field names.
const (
	FieldX     = "x"
	FieldY     = "y"
	FieldRho   = "rho"
	FieldPhi   = "phi"
	FieldZ     = "z"
	FieldTheta = "theta"
	FieldEta   = "eta"
	FieldT     = "t"
	FieldTau   = "tau"
)

// Momentum synonyms.
const (
	FieldPx     = "px"
	FieldPy     = "py"
	FieldPt     = "pt"
	FieldPz     = "pz"
	FieldE      = "E"
	FieldEnergy = "energy"
	FieldLowerE = "e"
	FieldM      = "M"
	FieldMass   = "mass"
	FieldLowerM = "m"
)

type synonym struct {
	canonical string
	momentum  bool
}

var names = map[string]synonym{
	FieldX:     {FieldX, false},
	FieldY:     {FieldY, false},
	FieldRho:   {FieldRho, false},
	FieldPhi:   {FieldPhi, false},
	FieldZ:     {FieldZ, false},
	FieldTheta: {FieldTheta, false},
	FieldEta:   {FieldEta, false},
	FieldT:     {FieldT, false},
	FieldTau:   {FieldTau, false},

	FieldPx:     {FieldX, true},
	FieldPy:     {FieldY, true},
	FieldPt:     {FieldRho, true},
	FieldPz:     {FieldZ, true},
	FieldE:      {FieldT, true},
	FieldEnergy: {FieldT, true},
	FieldLowerE: {FieldT, true},
	FieldM:      {FieldTau, true},
	FieldMass:   {FieldTau, true},
	FieldLowerM: {FieldTau, true},
}

var momentumNames = map[string]string{
	FieldX:   FieldPx,
	FieldY:   FieldPy,
	FieldRho: FieldPt,
	FieldZ:   FieldPz,
	FieldT:   FieldE,
	FieldTau: FieldM,
}

// Canonical resolves a storable field name or momentum synonym.
// momentum is true when name is a synonym that only momentum vectors expose.
func Canonical(name string) (canonical string, momentum bool, ok bool) {
	s, ok := names[name]
	if !ok {
		return "", false, false
	}
	return s.canonical, s.momentum, true
}

// MomentumName returns the primary momentum spelling of a canonical field,
// or the field itself when it has no synonym (phi, theta, eta).
func MomentumName(canonical string) string {
	if m, ok := momentumNames[canonical]; ok {
		return m
	}
	return canonical
}

// IsMomentumSynonym reports whether name is only valid on momentum vectors.
func IsMomentumSynonym(name string) bool {
	s, ok := names[name]
	return ok && s.momentum
}

// Slice identifies the dimensional slice a canonical field belongs to.
type Slice uint8

const (
	SliceNone Slice = iota
	SliceAzimuthal
	SliceLongitudinal
	SliceTemporal
)

// SliceOf returns the slice of a canonical field name.
func SliceOf(canonical string) Slice {
	switch canonical {
	case FieldX, FieldY, FieldRho, FieldPhi:
		return SliceAzimuthal
	case FieldZ, FieldTheta, FieldEta:
		return SliceLongitudinal
	case FieldT, FieldTau:
		return SliceTemporal
	default:
		return SliceNone
	}
}
