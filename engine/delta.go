package engine

import (
	"math"

	"github.com/hupe1980/hepvec/convert"
)

// Default tolerances of the predicates.
const (
	DefaultAngleTolerance     = 1e-5
	DefaultLightlikeTolerance = 1e-5
)

// DeltaPhi returns phi(a) - phi(b) mapped onto [-pi, pi).
func DeltaPhi(a, b Vec) float64 {
	return convert.Rectify(a.Phi() - b.Phi())
}

// DeltaEta returns eta(a) - eta(b).
func DeltaEta(a, b Vec) (float64, error) {
	if err := requireDim("deltaeta", a, 3); err != nil {
		return math.NaN(), err
	}
	if err := requireDim("deltaeta", b, 3); err != nil {
		return math.NaN(), err
	}
	return a.Eta() - b.Eta(), nil
}

// DeltaR2 returns deltaphi^2 + deltaeta^2.
func DeltaR2(a, b Vec) (float64, error) {
	deta, err := DeltaEta(a, b)
	if err != nil {
		return math.NaN(), err
	}
	dphi := DeltaPhi(a, b)
	return dphi*dphi + deta*deta, nil
}

// DeltaR returns sqrt(DeltaR2).
func DeltaR(a, b Vec) (float64, error) {
	r2, err := DeltaR2(a, b)
	return math.Sqrt(r2), err
}

// DeltaRapidityPhi2 returns deltaphi^2 + deltarapidity^2 of two 4D vectors.
func DeltaRapidityPhi2(a, b Vec) (float64, error) {
	if err := requireDim("deltaRapidityPhi", a, 4); err != nil {
		return math.NaN(), err
	}
	if err := requireDim("deltaRapidityPhi", b, 4); err != nil {
		return math.NaN(), err
	}
	dphi := DeltaPhi(a, b)
	dy := a.Rapidity() - b.Rapidity()
	return dphi*dphi + dy*dy, nil
}

// DeltaRapidityPhi returns sqrt(DeltaRapidityPhi2).
func DeltaRapidityPhi(a, b Vec) (float64, error) {
	r2, err := DeltaRapidityPhi2(a, b)
	return math.Sqrt(r2), err
}

// DeltaAngle returns the angle between the spatial parts of a and b.
func DeltaAngle(a, b Vec) (float64, error) {
	if err := requireDim("deltaangle", a, 3); err != nil {
		return math.NaN(), err
	}
	if err := requireDim("deltaangle", b, 3); err != nil {
		return math.NaN(), err
	}
	cos := spatialDot(a, b) / (a.Mag() * b.Mag())
	return math.Acos(math.Max(-1, math.Min(1, cos))), nil
}

// spatialDot is the Euclidean product of the spatial parts; a 2D operand
// reads as z = 0.
func spatialDot(a, b Vec) float64 {
	ax, ay, az, _ := a.cartesian()
	bx, by, bz, _ := b.cartesian()
	return ax*bx + ay*by + az*bz
}

func spatialMag(v Vec) float64 {
	if v.Dim() == 2 {
		return v.Rho()
	}
	return v.Mag()
}

// IsParallel reports whether the spatial parts of a and b point the same way
// within tol: dot > (1-|tol|)*|a|*|b|.
func IsParallel(a, b Vec, tol float64) bool {
	return spatialDot(a, b) > (1-math.Abs(tol))*spatialMag(a)*spatialMag(b)
}

// IsAntiparallel reports whether the spatial parts of a and b point opposite
// ways within tol: dot < (|tol|-1)*|a|*|b|.
func IsAntiparallel(a, b Vec, tol float64) bool {
	return spatialDot(a, b) < (math.Abs(tol)-1)*spatialMag(a)*spatialMag(b)
}

// IsPerpendicular reports whether |dot| < |tol|*|a|*|b| for the spatial parts.
func IsPerpendicular(a, b Vec, tol float64) bool {
	return math.Abs(spatialDot(a, b)) < math.Abs(tol)*spatialMag(a)*spatialMag(b)
}

// IsTimelike reports whether t^2 - mag^2 > |tol|.
func IsTimelike(v Vec, tol float64) (bool, error) {
	if err := requireDim("is_timelike", v, 4); err != nil {
		return false, err
	}
	return v.Tau2() > math.Abs(tol), nil
}

// IsSpacelike reports whether t^2 - mag^2 < -|tol|.
func IsSpacelike(v Vec, tol float64) (bool, error) {
	if err := requireDim("is_spacelike", v, 4); err != nil {
		return false, err
	}
	return v.Tau2() < -math.Abs(tol), nil
}

// IsLightlike reports whether |t^2 - mag^2| < |tol|.
func IsLightlike(v Vec, tol float64) (bool, error) {
	if err := requireDim("is_lightlike", v, 4); err != nil {
		return false, err
	}
	return math.Abs(v.Tau2()) < math.Abs(tol), nil
}
