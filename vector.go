package hepvec

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/hepvec/codec"
	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/engine"
	"github.com/hupe1980/hepvec/vtype"
)

// Vector is a single immutable vector. The zero Vector has no type; build
// one with New or a typed constructor.
type Vector struct {
	v engine.Vec
}

// Tolerance configures IsClose.
type Tolerance = engine.Tolerance

// DefaultTolerance is rtol=1e-5, atol=1e-8.
var DefaultTolerance = engine.DefaultTolerance

// BoostOption selects the speed of BoostX, BoostY and BoostZ.
type BoostOption = engine.BoostOption

// WithBeta boosts with velocity beta.
func WithBeta(beta float64) BoostOption { return engine.WithBeta(beta) }

// WithGamma boosts with Lorentz factor gamma; a negative gamma boosts backwards.
func WithGamma(gamma float64) BoostOption { return engine.WithGamma(gamma) }

// New builds a vector from named coordinates. The set of names selects the
// coordinate system and flavor: {"x", "y"} is a 2D geometric vector,
// {"pt", "eta", "phi", "M"} a 4D momentum.
func New(fields map[string]float64) (Vector, error) {
	v, err := engine.FromMap(fields)
	if err != nil {
		return Vector{}, translateError(err)
	}
	return Vector{v: v}, nil
}

// FromVec wraps an engine value.
func FromVec(v engine.Vec) Vector { return Vector{v: v} }

func of(d vtype.Descriptor, values ...float64) Vector {
	return Vector{v: engine.Make(d, values...)}
}

// XY returns a 2D vector in Cartesian coordinates.
func XY(x, y float64) Vector { return of(vtype.Vector2D(coords.XY), x, y) }

// RhoPhi returns a 2D vector in polar coordinates.
func RhoPhi(rho, phi float64) Vector { return of(vtype.Vector2D(coords.RhoPhi), rho, phi) }

// XYZ returns a 3D vector in Cartesian coordinates.
func XYZ(x, y, z float64) Vector { return of(vtype.Vector3D(coords.XY, coords.Z), x, y, z) }

func XYTheta(x, y, theta float64) Vector {
	return of(vtype.Vector3D(coords.XY, coords.Theta), x, y, theta)
}

func XYEta(x, y, eta float64) Vector { return of(vtype.Vector3D(coords.XY, coords.Eta), x, y, eta) }

func RhoPhiZ(rho, phi, z float64) Vector {
	return of(vtype.Vector3D(coords.RhoPhi, coords.Z), rho, phi, z)
}

func RhoPhiTheta(rho, phi, theta float64) Vector {
	return of(vtype.Vector3D(coords.RhoPhi, coords.Theta), rho, phi, theta)
}

func RhoPhiEta(rho, phi, eta float64) Vector {
	return of(vtype.Vector3D(coords.RhoPhi, coords.Eta), rho, phi, eta)
}

// XYZT returns a 4D vector in Cartesian coordinates.
func XYZT(x, y, z, t float64) Vector {
	return of(vtype.Vector4D(coords.XY, coords.Z, coords.T), x, y, z, t)
}

func XYZTau(x, y, z, tau float64) Vector {
	return of(vtype.Vector4D(coords.XY, coords.Z, coords.Tau), x, y, z, tau)
}

func XYThetaT(x, y, theta, t float64) Vector {
	return of(vtype.Vector4D(coords.XY, coords.Theta, coords.T), x, y, theta, t)
}

func XYThetaTau(x, y, theta, tau float64) Vector {
	return of(vtype.Vector4D(coords.XY, coords.Theta, coords.Tau), x, y, theta, tau)
}

func XYEtaT(x, y, eta, t float64) Vector {
	return of(vtype.Vector4D(coords.XY, coords.Eta, coords.T), x, y, eta, t)
}

func XYEtaTau(x, y, eta, tau float64) Vector {
	return of(vtype.Vector4D(coords.XY, coords.Eta, coords.Tau), x, y, eta, tau)
}

func RhoPhiZT(rho, phi, z, t float64) Vector {
	return of(vtype.Vector4D(coords.RhoPhi, coords.Z, coords.T), rho, phi, z, t)
}

func RhoPhiZTau(rho, phi, z, tau float64) Vector {
	return of(vtype.Vector4D(coords.RhoPhi, coords.Z, coords.Tau), rho, phi, z, tau)
}

func RhoPhiThetaT(rho, phi, theta, t float64) Vector {
	return of(vtype.Vector4D(coords.RhoPhi, coords.Theta, coords.T), rho, phi, theta, t)
}

func RhoPhiThetaTau(rho, phi, theta, tau float64) Vector {
	return of(vtype.Vector4D(coords.RhoPhi, coords.Theta, coords.Tau), rho, phi, theta, tau)
}

func RhoPhiEtaT(rho, phi, eta, t float64) Vector {
	return of(vtype.Vector4D(coords.RhoPhi, coords.Eta, coords.T), rho, phi, eta, t)
}

func RhoPhiEtaTau(rho, phi, eta, tau float64) Vector {
	return of(vtype.Vector4D(coords.RhoPhi, coords.Eta, coords.Tau), rho, phi, eta, tau)
}

// PxPy returns a 2D momentum.
func PxPy(px, py float64) Vector { return of(vtype.Momentum2D(coords.XY), px, py) }

// PtPhi returns a 2D momentum in polar coordinates.
func PtPhi(pt, phi float64) Vector { return of(vtype.Momentum2D(coords.RhoPhi), pt, phi) }

// PxPyPz returns a 3D momentum.
func PxPyPz(px, py, pz float64) Vector {
	return of(vtype.Momentum3D(coords.XY, coords.Z), px, py, pz)
}

// PtPhiEta returns a 3D momentum in collider coordinates.
func PtPhiEta(pt, phi, eta float64) Vector {
	return of(vtype.Momentum3D(coords.RhoPhi, coords.Eta), pt, phi, eta)
}

// PxPyPzE returns a four-momentum from its Cartesian components and energy.
func PxPyPzE(px, py, pz, e float64) Vector {
	return of(vtype.Momentum4D(coords.XY, coords.Z, coords.T), px, py, pz, e)
}

// PxPyPzM returns a four-momentum from its Cartesian components and mass.
func PxPyPzM(px, py, pz, m float64) Vector {
	return of(vtype.Momentum4D(coords.XY, coords.Z, coords.Tau), px, py, pz, m)
}

// PtPhiEtaM returns a four-momentum in collider coordinates with mass.
func PtPhiEtaM(pt, phi, eta, m float64) Vector {
	return of(vtype.Momentum4D(coords.RhoPhi, coords.Eta, coords.Tau), pt, phi, eta, m)
}

// PtPhiEtaE returns a four-momentum in collider coordinates with energy.
func PtPhiEtaE(pt, phi, eta, e float64) Vector {
	return of(vtype.Momentum4D(coords.RhoPhi, coords.Eta, coords.T), pt, phi, eta, e)
}

// Vec returns the underlying engine value.
func (v Vector) Vec() engine.Vec { return v.v }

// Type returns the type descriptor.
func (v Vector) Type() vtype.Descriptor { return v.v.Type }

// Dim returns 2, 3 or 4.
func (v Vector) Dim() int { return v.v.Dim() }

// IsMomentum reports whether v has the momentum flavor.
func (v Vector) IsMomentum() bool { return v.v.Type.IsMomentum() }

// Get reads a coordinate by name. Momentum names such as "pt" or "M" need
// a momentum vector.
func (v Vector) Get(name string) (float64, error) { return v.v.Get(name) }

// Fields returns the native coordinates under their presented names.
func (v Vector) Fields() map[string]float64 { return v.v.Fields() }

// get returns NaN where Get fails.
func (v Vector) get(name string) float64 {
	f, err := v.v.Get(name)
	if err != nil {
		return math.NaN()
	}
	return f
}

// Coordinates of the transverse plane are defined for every vector.

func (v Vector) X() float64    { return v.v.X() }
func (v Vector) Y() float64    { return v.v.Y() }
func (v Vector) Rho() float64  { return v.v.Rho() }
func (v Vector) Rho2() float64 { return v.v.Rho2() }
func (v Vector) Phi() float64  { return v.v.Phi() }

// The getters below return NaN when v has too few dimensions; Get reports
// the reason.

func (v Vector) Z() float64        { return v.get("z") }
func (v Vector) Theta() float64    { return v.get("theta") }
func (v Vector) Eta() float64      { return v.get("eta") }
func (v Vector) Mag() float64      { return v.get("mag") }
func (v Vector) Mag2() float64     { return v.get("mag2") }
func (v Vector) CosTheta() float64 { return v.get("costheta") }
func (v Vector) CotTheta() float64 { return v.get("cottheta") }
func (v Vector) T() float64        { return v.get("t") }
func (v Vector) T2() float64       { return v.get("t2") }
func (v Vector) Tau() float64      { return v.get("tau") }
func (v Vector) Tau2() float64     { return v.get("tau2") }
func (v Vector) Beta() float64     { return v.get("beta") }
func (v Vector) Gamma() float64    { return v.get("gamma") }
func (v Vector) Rapidity() float64 { return v.get("rapidity") }
func (v Vector) Mt() float64       { return v.get("Mt") }
func (v Vector) Mt2() float64      { return v.get("Mt2") }
func (v Vector) Et() float64       { return v.get("Et") }
func (v Vector) Et2() float64      { return v.get("Et2") }

// Momentum getters return NaN unless v is a momentum of enough dimensions.

func (v Vector) Px() float64  { return v.get("px") }
func (v Vector) Py() float64  { return v.get("py") }
func (v Vector) Pt() float64  { return v.get("pt") }
func (v Vector) Pt2() float64 { return v.get("pt2") }
func (v Vector) Pz() float64  { return v.get("pz") }
func (v Vector) P() float64   { return v.get("p") }
func (v Vector) P2() float64  { return v.get("p2") }
func (v Vector) E() float64   { return v.get("E") }
func (v Vector) E2() float64  { return v.get("E2") }
func (v Vector) M() float64   { return v.get("M") }
func (v Vector) M2() float64  { return v.get("M2") }

// Add returns v + o in the resolved common type.
func (v Vector) Add(o Vector) Vector { return Vector{v: engine.Add(v.v, o.v)} }

// Subtract returns v - o.
func (v Vector) Subtract(o Vector) Vector { return Vector{v: engine.Subtract(v.v, o.v)} }

// Scale multiplies every Cartesian component by f.
func (v Vector) Scale(f float64) Vector { return Vector{v: engine.Scale(v.v, f)} }

// Neg returns -v.
func (v Vector) Neg() Vector { return Vector{v: engine.Neg(v.v)} }

// Dot returns the (Minkowski, for 4D) inner product.
func (v Vector) Dot(o Vector) float64 { return engine.Dot(v.v, o.v) }

// Cross returns the spatial cross product; both vectors need 3 dimensions.
func (v Vector) Cross(o Vector) (Vector, error) { return wrap(engine.Cross(v.v, o.v)) }

// Abs returns rho, mag or tau depending on the dimension.
func (v Vector) Abs() float64 { return engine.Abs(v.v) }

// Unit returns v scaled to magnitude 1; the zero vector stays zero.
func (v Vector) Unit() Vector { return Vector{v: engine.Unit(v.v)} }

// Equal compares the stored coordinates exactly.
func (v Vector) Equal(o Vector) bool    { return engine.Equal(v.v, o.v) }
func (v Vector) NotEqual(o Vector) bool { return engine.NotEqual(v.v, o.v) }

// IsClose compares Cartesian components within tol.
func (v Vector) IsClose(o Vector, tol Tolerance) bool { return engine.IsClose(v.v, o.v, tol) }

// IsNonzero reports whether any Cartesian component is nonzero.
func (v Vector) IsNonzero() bool { return engine.IsNonzero(v.v) }

func wrap(v engine.Vec, err error) (Vector, error) {
	if err != nil {
		return Vector{}, translateError(err)
	}
	return Vector{v: v}, nil
}

// RotateZ rotates v by angle about the z axis.
func (v Vector) RotateZ(angle float64) Vector { return Vector{v: engine.RotateZ(v.v, angle)} }

func (v Vector) RotateX(angle float64) (Vector, error) { return wrap(engine.RotateX(v.v, angle)) }
func (v Vector) RotateY(angle float64) (Vector, error) { return wrap(engine.RotateY(v.v, angle)) }

// RotateAxis rotates v by angle about the spatial part of axis.
func (v Vector) RotateAxis(axis Vector, angle float64) (Vector, error) {
	return wrap(engine.RotateAxis(v.v, axis.v, angle))
}

// RotateEuler applies intrinsic rotations phi, theta, psi about the axes
// named by order, such as "zxz" or "zyx".
func (v Vector) RotateEuler(phi, theta, psi float64, order string) (Vector, error) {
	return wrap(engine.RotateEuler(v.v, phi, theta, psi, order))
}

// RotateNautical applies yaw, pitch and roll.
func (v Vector) RotateNautical(yaw, pitch, roll float64) (Vector, error) {
	return wrap(engine.RotateNautical(v.v, yaw, pitch, roll))
}

// RotateQuaternion rotates by the quaternion u + i·î + j·ĵ + k·k̂.
func (v Vector) RotateQuaternion(u, i, j, k float64) (Vector, error) {
	return wrap(engine.RotateQuaternion(v.v, u, i, j, k))
}

// Transform applies a 2x2, 3x3 or 4x4 matrix to the Cartesian components.
func (v Vector) Transform(m mat.Matrix) (Vector, error) { return wrap(engine.Transform(v.v, m)) }

func (v Vector) BoostX(opts ...BoostOption) (Vector, error) { return wrap(engine.BoostX(v.v, opts...)) }
func (v Vector) BoostY(opts ...BoostOption) (Vector, error) { return wrap(engine.BoostY(v.v, opts...)) }
func (v Vector) BoostZ(opts ...BoostOption) (Vector, error) { return wrap(engine.BoostZ(v.v, opts...)) }

// BoostBeta3 boosts a 4D vector by the velocity beta3.
func (v Vector) BoostBeta3(beta3 Vector) (Vector, error) {
	return wrap(engine.BoostBeta3(v.v, beta3.v))
}

// BoostP4 boosts a 4D vector into the frame where p4 moves like it does here.
func (v Vector) BoostP4(p4 Vector) (Vector, error) { return wrap(engine.BoostP4(v.v, p4.v)) }

// Boost dispatches to BoostBeta3 or BoostP4 on the dimension of booster.
func (v Vector) Boost(booster Vector) (Vector, error) { return wrap(engine.Boost(v.v, booster.v)) }

// ToBeta3 returns the velocity of a 4D vector as a 3D vector.
func (v Vector) ToBeta3() (Vector, error) { return wrap(engine.ToBeta3(v.v)) }

// DeltaPhi returns phi(v) - phi(o) wrapped into [-π, π).
func (v Vector) DeltaPhi(o Vector) float64 { return engine.DeltaPhi(v.v, o.v) }

func (v Vector) DeltaEta(o Vector) (float64, error)  { return engine.DeltaEta(v.v, o.v) }
func (v Vector) DeltaR(o Vector) (float64, error)    { return engine.DeltaR(v.v, o.v) }
func (v Vector) DeltaR2(o Vector) (float64, error)   { return engine.DeltaR2(v.v, o.v) }
func (v Vector) DeltaAngle(o Vector) (float64, error) { return engine.DeltaAngle(v.v, o.v) }

func (v Vector) DeltaRapidityPhi(o Vector) (float64, error) {
	return engine.DeltaRapidityPhi(v.v, o.v)
}

func (v Vector) DeltaRapidityPhi2(o Vector) (float64, error) {
	return engine.DeltaRapidityPhi2(v.v, o.v)
}

func (v Vector) IsParallel(o Vector, tol float64) bool     { return engine.IsParallel(v.v, o.v, tol) }
func (v Vector) IsAntiparallel(o Vector, tol float64) bool { return engine.IsAntiparallel(v.v, o.v, tol) }

func (v Vector) IsPerpendicular(o Vector, tol float64) bool {
	return engine.IsPerpendicular(v.v, o.v, tol)
}

func (v Vector) IsTimelike(tol float64) (bool, error)  { return engine.IsTimelike(v.v, tol) }
func (v Vector) IsSpacelike(tol float64) (bool, error) { return engine.IsSpacelike(v.v, tol) }
func (v Vector) IsLightlike(tol float64) (bool, error) { return engine.IsLightlike(v.v, tol) }

// To re-expresses v in sys. Slices v lacks are zero in the target kind.
func (v Vector) To(sys coords.System) (Vector, error) { return wrap(engine.To(v.v, sys)) }

// project converts to one of the fixed systems of the ToXxx methods, which
// are always valid.
func (v Vector) project(az coords.Azimuthal, lon coords.Longitudinal, tem coords.Temporal) Vector {
	out, err := engine.To(v.v, coords.System{Azimuthal: az, Longitudinal: lon, Temporal: tem})
	if err != nil {
		panic(err)
	}
	return Vector{v: out}
}

func (v Vector) ToXY() Vector     { return v.project(coords.XY, coords.NoLongitudinal, coords.NoTemporal) }
func (v Vector) ToRhoPhi() Vector { return v.project(coords.RhoPhi, coords.NoLongitudinal, coords.NoTemporal) }

func (v Vector) ToXYZ() Vector     { return v.project(coords.XY, coords.Z, coords.NoTemporal) }
func (v Vector) ToXYTheta() Vector { return v.project(coords.XY, coords.Theta, coords.NoTemporal) }
func (v Vector) ToXYEta() Vector   { return v.project(coords.XY, coords.Eta, coords.NoTemporal) }
func (v Vector) ToRhoPhiZ() Vector { return v.project(coords.RhoPhi, coords.Z, coords.NoTemporal) }

func (v Vector) ToRhoPhiTheta() Vector {
	return v.project(coords.RhoPhi, coords.Theta, coords.NoTemporal)
}

func (v Vector) ToRhoPhiEta() Vector { return v.project(coords.RhoPhi, coords.Eta, coords.NoTemporal) }

func (v Vector) ToXYZT() Vector         { return v.project(coords.XY, coords.Z, coords.T) }
func (v Vector) ToXYZTau() Vector       { return v.project(coords.XY, coords.Z, coords.Tau) }
func (v Vector) ToXYThetaT() Vector     { return v.project(coords.XY, coords.Theta, coords.T) }
func (v Vector) ToXYThetaTau() Vector   { return v.project(coords.XY, coords.Theta, coords.Tau) }
func (v Vector) ToXYEtaT() Vector       { return v.project(coords.XY, coords.Eta, coords.T) }
func (v Vector) ToXYEtaTau() Vector     { return v.project(coords.XY, coords.Eta, coords.Tau) }
func (v Vector) ToRhoPhiZT() Vector     { return v.project(coords.RhoPhi, coords.Z, coords.T) }
func (v Vector) ToRhoPhiZTau() Vector   { return v.project(coords.RhoPhi, coords.Z, coords.Tau) }
func (v Vector) ToRhoPhiThetaT() Vector { return v.project(coords.RhoPhi, coords.Theta, coords.T) }

func (v Vector) ToRhoPhiThetaTau() Vector {
	return v.project(coords.RhoPhi, coords.Theta, coords.Tau)
}

func (v Vector) ToRhoPhiEtaT() Vector   { return v.project(coords.RhoPhi, coords.Eta, coords.T) }
func (v Vector) ToRhoPhiEtaTau() Vector { return v.project(coords.RhoPhi, coords.Eta, coords.Tau) }

// To2D drops the longitudinal and temporal slices.
func (v Vector) To2D() Vector {
	if v.Dim() == 2 {
		return v
	}
	out, _ := engine.Demote(v.v, 2)
	return Vector{v: out}
}

// To3D drops the temporal slice of a 4D vector or adds z to a 2D one.
func (v Vector) To3D(z float64) Vector {
	switch v.Dim() {
	case 2:
		out, _ := engine.Promote3D(v.v, coords.Z, z)
		return Vector{v: out}
	case 4:
		out, _ := engine.Demote(v.v, 3)
		return Vector{v: out}
	}
	return v
}

// To4D adds the missing slices as z and t.
func (v Vector) To4D(z, t float64) Vector {
	if v.Dim() == 4 {
		return v
	}
	out, _ := engine.Promote4D(v.To3D(z).v, coords.T, t)
	return Vector{v: out}
}

// Promote3D adds a longitudinal slice of the given kind to a 2D vector.
func (v Vector) Promote3D(lon coords.Longitudinal, value float64) (Vector, error) {
	return wrap(engine.Promote3D(v.v, lon, value))
}

// Promote4D adds a temporal slice of the given kind to a 3D vector.
func (v Vector) Promote4D(tem coords.Temporal, value float64) (Vector, error) {
	return wrap(engine.Promote4D(v.v, tem, value))
}

// Demote drops the slices above dim.
func (v Vector) Demote(dim int) (Vector, error) { return wrap(engine.Demote(v.v, dim)) }

// ToGeometric strips the momentum flavor.
func (v Vector) ToGeometric() Vector { return Vector{v: engine.ToGeometric(v.v)} }

// ToMomentum adds the momentum flavor.
func (v Vector) ToMomentum() Vector { return Vector{v: engine.ToMomentum(v.v)} }

// Sum adds vs up. It fails with ErrArgument for no vectors.
func Sum(vs ...Vector) (Vector, error) {
	raw := make([]engine.Vec, len(vs))
	for i, v := range vs {
		raw[i] = v.v
	}
	return wrap(engine.Sum(raw))
}

// CountNonzero returns the number of nonzero vectors.
func CountNonzero(vs ...Vector) int {
	n := 0
	for _, v := range vs {
		if v.IsNonzero() {
			n++
		}
	}
	return n
}

func (v Vector) String() string {
	if v.v.Type.IsZero() {
		return "Vector()"
	}
	prefix := "Vector"
	if v.IsMomentum() {
		prefix = "Momentum"
	}
	names := v.v.Type.Names()
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = fmt.Sprintf("%s=%g", n, v.v.C[i])
	}
	return fmt.Sprintf("%s%dD(%s)", prefix, v.Dim(), strings.Join(parts, ", "))
}

// MarshalJSON encodes v as its field document, e.g. {"px":1,"py":2}.
func (v Vector) MarshalJSON() ([]byte, error) { return codec.MarshalVec(codec.Default, v.v) }

// UnmarshalJSON decodes a field document like New does.
func (v *Vector) UnmarshalJSON(data []byte) error {
	out, err := codec.UnmarshalVec(codec.Default, data)
	if err != nil {
		return translateError(err)
	}
	v.v = out
	return nil
}
