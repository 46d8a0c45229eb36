package convert

import (
	"sort"

	"github.com/hupe1980/hepvec/coords"
)

// Func computes one coordinate from a stored payload.
type Func func(s coords.System, c [4]float64) float64

// Coordinate describes a readable coordinate, native or derived.
type Coordinate struct {
	// Name is the canonical name, e.g. "rho2".
	Name string
	// MinDim is the smallest dimension that defines the coordinate.
	MinDim int
	// Momentum is true when the name is a momentum-only synonym.
	Momentum bool
	// Compute evaluates the coordinate.
	Compute Func
}

var coordinates = map[string]Coordinate{}

func register(name string, minDim int, fn Func, momentumSynonyms ...string) {
	coordinates[name] = Coordinate{Name: name, MinDim: minDim, Compute: fn}
	for _, syn := range momentumSynonyms {
		coordinates[syn] = Coordinate{Name: name, MinDim: minDim, Momentum: true, Compute: fn}
	}
}

func init() {
	register(coords.FieldX, 2, X, coords.FieldPx)
	register(coords.FieldY, 2, Y, coords.FieldPy)
	register(coords.FieldRho, 2, Rho, coords.FieldPt)
	register("rho2", 2, Rho2, "pt2")
	register(coords.FieldPhi, 2, Phi)

	register(coords.FieldZ, 3, Z, coords.FieldPz)
	register(coords.FieldTheta, 3, Theta)
	register(coords.FieldEta, 3, Eta)
	register("mag", 3, Mag, "p")
	register("mag2", 3, Mag2, "p2")
	register("costheta", 3, CosTheta)
	register("cottheta", 3, CotTheta)

	register(coords.FieldT, 4, T, coords.FieldE, coords.FieldEnergy, coords.FieldLowerE)
	register("t2", 4, T2, "E2", "energy2", "e2")
	register(coords.FieldTau, 4, Tau, coords.FieldM, coords.FieldMass, coords.FieldLowerM)
	register("tau2", 4, Tau2, "M2", "mass2", "m2")
	register("beta", 4, Beta)
	register("gamma", 4, Gamma)
	register("rapidity", 4, Rapidity)
	register("Mt", 4, Mt, "transverse_mass")
	register("Mt2", 4, Mt2, "transverse_mass2")
	register("Et", 4, Et, "transverse_energy")
	register("Et2", 4, Et2, "transverse_energy2")
}

// Lookup resolves a coordinate name.
func Lookup(name string) (Coordinate, bool) {
	c, ok := coordinates[name]
	return c, ok
}

// Names returns every readable coordinate name, sorted.
func Names() []string {
	out := make([]string, 0, len(coordinates))
	for n := range coordinates {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
