package ragged

import (
	"context"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/hepvec/columnar"
	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/engine"
)

// Operand is the right-hand side of a list-aligned operation: an *Array
// with the same list lengths, or a Scalar applied to every element.
type Operand interface {
	flatten(op string, like *Array) (columnar.Operand, string, error)
}

// Scalar applies one vector to every element. Its class is the built-in
// class of its type.
type Scalar engine.Vec

func (s Scalar) flatten(string, *Array) (columnar.Operand, string, error) {
	return columnar.Scalar(s), builtinClass(s.Type), nil
}

func (a *Array) flatten(op string, like *Array) (columnar.Operand, string, error) {
	if a == nil {
		return nil, "", &engine.ArgumentError{Op: op, Reason: "nil operand"}
	}
	if a.Len() != like.Len() {
		return nil, "", &ListError{Op: op, List: -1, Want: int64(like.Len()), Got: int64(a.Len())}
	}
	for i := 1; i < len(a.offsets); i++ {
		want := like.offsets[i] - like.offsets[i-1]
		if got := a.offsets[i] - a.offsets[i-1]; got != want {
			return nil, "", &ListError{Op: op, List: i - 1, Want: want, Got: got}
		}
	}
	return a.inner, a.behavior, nil
}

func (a *Array) other(op string, b Operand) (columnar.Operand, string, error) {
	if b == nil {
		return nil, "", &engine.ArgumentError{Op: op, Reason: "nil operand"}
	}
	return b.flatten(op, a)
}

func (a *Array) logOp(op string, start time.Time, err error) {
	a.logger.Debug("ragged op",
		"op", op,
		"behavior", a.behavior,
		"lists", a.Len(),
		"elements", a.inner.Len(),
		"duration", time.Since(start),
		"error", err,
	)
}

// unary applies a flat operation and projects the behavior onto the result
// type.
func (a *Array) unary(op string, fn func(*columnar.Array) (*columnar.Array, error)) (*Array, error) {
	start := time.Now()
	flat, err := fn(a.inner)
	a.logOp(op, start, err)
	if err != nil {
		return nil, err
	}
	return a.derive(flat, a.behaviors.Projection(a.behavior, flat.Type())), nil
}

// binary applies a flat operation to aligned operands; the result class is
// resolved from both behaviors.
func (a *Array) binary(op string, b Operand, fn func(*columnar.Array, columnar.Operand) (*columnar.Array, error)) (*Array, error) {
	start := time.Now()
	rhs, behavior, err := a.other(op, b)
	if err != nil {
		return nil, err
	}
	flat, err := fn(a.inner, rhs)
	a.logOp(op, start, err)
	if err != nil {
		return nil, err
	}
	return a.derive(flat, a.behaviors.ResultClass(a.behavior, behavior, flat.Type())), nil
}

func values[T any](a *Array, op string, fn func(*columnar.Array) ([]T, error)) (*Values[T], error) {
	start := time.Now()
	data, err := fn(a.inner)
	a.logOp(op, start, err)
	if err != nil {
		return nil, err
	}
	return &Values[T]{offsets: a.offsets, data: data}, nil
}

func binaryValues[T any](a *Array, op string, b Operand, fn func(*columnar.Array, columnar.Operand) ([]T, error)) (*Values[T], error) {
	rhs, _, err := a.other(op, b)
	if err != nil {
		return nil, err
	}
	return values(a, op, func(flat *columnar.Array) ([]T, error) {
		return fn(flat, rhs)
	})
}

// Add returns a + b element-wise.
func (a *Array) Add(ctx context.Context, b Operand) (*Array, error) {
	return a.binary("add", b, func(x *columnar.Array, y columnar.Operand) (*columnar.Array, error) {
		return x.Add(ctx, y)
	})
}

// Subtract returns a - b element-wise.
func (a *Array) Subtract(ctx context.Context, b Operand) (*Array, error) {
	return a.binary("subtract", b, func(x *columnar.Array, y columnar.Operand) (*columnar.Array, error) {
		return x.Subtract(ctx, y)
	})
}

// Cross returns the 3D cross products.
func (a *Array) Cross(ctx context.Context, b Operand) (*Array, error) {
	return a.binary("cross", b, func(x *columnar.Array, y columnar.Operand) (*columnar.Array, error) {
		return x.Cross(ctx, y)
	})
}

// RotateAxis rotates every element about the matching axis.
func (a *Array) RotateAxis(ctx context.Context, axis Operand, angle float64) (*Array, error) {
	return a.binary("rotate_axis", axis, func(x *columnar.Array, y columnar.Operand) (*columnar.Array, error) {
		return x.RotateAxis(ctx, y, angle)
	})
}

// BoostBeta3 boosts every element by the matching velocity.
func (a *Array) BoostBeta3(ctx context.Context, beta3 Operand) (*Array, error) {
	return a.binary("boost_beta3", beta3, func(x *columnar.Array, y columnar.Operand) (*columnar.Array, error) {
		return x.BoostBeta3(ctx, y)
	})
}

// BoostP4 boosts every element into the frame of the matching four-momentum.
func (a *Array) BoostP4(ctx context.Context, p4 Operand) (*Array, error) {
	return a.binary("boost_p4", p4, func(x *columnar.Array, y columnar.Operand) (*columnar.Array, error) {
		return x.BoostP4(ctx, y)
	})
}

// Boost dispatches on the booster dimension.
func (a *Array) Boost(ctx context.Context, booster Operand) (*Array, error) {
	return a.binary("boost", booster, func(x *columnar.Array, y columnar.Operand) (*columnar.Array, error) {
		return x.Boost(ctx, y)
	})
}

// Scale multiplies every element by f.
func (a *Array) Scale(ctx context.Context, f float64) (*Array, error) {
	return a.unary("scale", func(x *columnar.Array) (*columnar.Array, error) { return x.Scale(ctx, f) })
}

// Neg returns -a.
func (a *Array) Neg(ctx context.Context) (*Array, error) {
	return a.unary("neg", func(x *columnar.Array) (*columnar.Array, error) { return x.Neg(ctx) })
}

// Unit returns every element divided by its norm.
func (a *Array) Unit(ctx context.Context) (*Array, error) {
	return a.unary("unit", func(x *columnar.Array) (*columnar.Array, error) { return x.Unit(ctx) })
}

// RotateZ rotates every element about the z axis.
func (a *Array) RotateZ(ctx context.Context, angle float64) (*Array, error) {
	return a.unary("rotateZ", func(x *columnar.Array) (*columnar.Array, error) { return x.RotateZ(ctx, angle) })
}

// RotateX rotates every element about the x axis.
func (a *Array) RotateX(ctx context.Context, angle float64) (*Array, error) {
	return a.unary("rotateX", func(x *columnar.Array) (*columnar.Array, error) { return x.RotateX(ctx, angle) })
}

// RotateY rotates every element about the y axis.
func (a *Array) RotateY(ctx context.Context, angle float64) (*Array, error) {
	return a.unary("rotateY", func(x *columnar.Array) (*columnar.Array, error) { return x.RotateY(ctx, angle) })
}

// RotateEuler applies one Euler rotation to every element.
func (a *Array) RotateEuler(ctx context.Context, phi, theta, psi float64, order string) (*Array, error) {
	return a.unary("rotate_euler", func(x *columnar.Array) (*columnar.Array, error) {
		return x.RotateEuler(ctx, phi, theta, psi, order)
	})
}

// RotateNautical applies yaw, pitch and roll to every element.
func (a *Array) RotateNautical(ctx context.Context, yaw, pitch, roll float64) (*Array, error) {
	return a.unary("rotate_nautical", func(x *columnar.Array) (*columnar.Array, error) {
		return x.RotateNautical(ctx, yaw, pitch, roll)
	})
}

// RotateQuaternion applies q v q* to every element.
func (a *Array) RotateQuaternion(ctx context.Context, u, i, j, k float64) (*Array, error) {
	return a.unary("rotate_quaternion", func(x *columnar.Array) (*columnar.Array, error) {
		return x.RotateQuaternion(ctx, u, i, j, k)
	})
}

// Transform applies the linear map m to every element.
func (a *Array) Transform(ctx context.Context, m mat.Matrix) (*Array, error) {
	return a.unary("transform", func(x *columnar.Array) (*columnar.Array, error) { return x.Transform(ctx, m) })
}

// BoostX boosts every element along x.
func (a *Array) BoostX(ctx context.Context, opts ...engine.BoostOption) (*Array, error) {
	return a.unary("boostX", func(x *columnar.Array) (*columnar.Array, error) { return x.BoostX(ctx, opts...) })
}

// BoostY boosts every element along y.
func (a *Array) BoostY(ctx context.Context, opts ...engine.BoostOption) (*Array, error) {
	return a.unary("boostY", func(x *columnar.Array) (*columnar.Array, error) { return x.BoostY(ctx, opts...) })
}

// BoostZ boosts every element along z.
func (a *Array) BoostZ(ctx context.Context, opts ...engine.BoostOption) (*Array, error) {
	return a.unary("boostZ", func(x *columnar.Array) (*columnar.Array, error) { return x.BoostZ(ctx, opts...) })
}

// ToBeta3 returns the velocity of every element.
func (a *Array) ToBeta3(ctx context.Context) (*Array, error) {
	return a.unary("to_beta3", func(x *columnar.Array) (*columnar.Array, error) { return x.ToBeta3(ctx) })
}

// To re-expresses every element in the coordinate system sys.
func (a *Array) To(ctx context.Context, sys coords.System) (*Array, error) {
	return a.unary("to", func(x *columnar.Array) (*columnar.Array, error) { return x.To(ctx, sys) })
}

// Demote drops the slices above dimension dim.
func (a *Array) Demote(ctx context.Context, dim int) (*Array, error) {
	return a.unary("demote", func(x *columnar.Array) (*columnar.Array, error) { return x.Demote(ctx, dim) })
}

// ToGeometric strips the momentum flavor.
func (a *Array) ToGeometric() *Array {
	flat := a.inner.ToGeometric()
	return a.derive(flat, a.behaviors.Projection(a.behavior, flat.Type()))
}

// ToMomentum adds the momentum flavor.
func (a *Array) ToMomentum() *Array {
	flat := a.inner.ToMomentum()
	return a.derive(flat, a.behaviors.Projection(a.behavior, flat.Type()))
}

// Column returns coordinate name of every element.
func (a *Array) Column(ctx context.Context, name string) (*Values[float64], error) {
	return values(a, "column", func(x *columnar.Array) ([]float64, error) { return x.Column(ctx, name) })
}

// Abs returns the norm of every element.
func (a *Array) Abs(ctx context.Context) (*Values[float64], error) {
	return values(a, "abs", func(x *columnar.Array) ([]float64, error) { return x.Abs(ctx) })
}

// IsTimelike tests every element for t^2 - mag^2 > |tol|.
func (a *Array) IsTimelike(ctx context.Context, tol float64) (*Values[bool], error) {
	return values(a, "is_timelike", func(x *columnar.Array) ([]bool, error) { return x.IsTimelike(ctx, tol) })
}

// IsSpacelike tests every element for t^2 - mag^2 < -|tol|.
func (a *Array) IsSpacelike(ctx context.Context, tol float64) (*Values[bool], error) {
	return values(a, "is_spacelike", func(x *columnar.Array) ([]bool, error) { return x.IsSpacelike(ctx, tol) })
}

// IsLightlike tests every element for |t^2 - mag^2| < |tol|.
func (a *Array) IsLightlike(ctx context.Context, tol float64) (*Values[bool], error) {
	return values(a, "is_lightlike", func(x *columnar.Array) ([]bool, error) { return x.IsLightlike(ctx, tol) })
}

// Dot returns the scalar products.
func (a *Array) Dot(ctx context.Context, b Operand) (*Values[float64], error) {
	return binaryValues(a, "dot", b, func(x *columnar.Array, y columnar.Operand) ([]float64, error) {
		return x.Dot(ctx, y)
	})
}

// Equal compares stored values element-wise.
func (a *Array) Equal(ctx context.Context, b Operand) (*Values[bool], error) {
	return binaryValues(a, "equal", b, func(x *columnar.Array, y columnar.Operand) ([]bool, error) {
		return x.Equal(ctx, y)
	})
}

// NotEqual is the element-wise negation of Equal.
func (a *Array) NotEqual(ctx context.Context, b Operand) (*Values[bool], error) {
	return binaryValues(a, "not_equal", b, func(x *columnar.Array, y columnar.Operand) ([]bool, error) {
		return x.NotEqual(ctx, y)
	})
}

// IsClose compares Cartesian components within tol.
func (a *Array) IsClose(ctx context.Context, b Operand, tol engine.Tolerance) (*Values[bool], error) {
	return binaryValues(a, "isclose", b, func(x *columnar.Array, y columnar.Operand) ([]bool, error) {
		return x.IsClose(ctx, y, tol)
	})
}

// DeltaPhi returns the azimuthal separations.
func (a *Array) DeltaPhi(ctx context.Context, b Operand) (*Values[float64], error) {
	return binaryValues(a, "deltaphi", b, func(x *columnar.Array, y columnar.Operand) ([]float64, error) {
		return x.DeltaPhi(ctx, y)
	})
}

// DeltaEta returns the pseudorapidity separations.
func (a *Array) DeltaEta(ctx context.Context, b Operand) (*Values[float64], error) {
	return binaryValues(a, "deltaeta", b, func(x *columnar.Array, y columnar.Operand) ([]float64, error) {
		return x.DeltaEta(ctx, y)
	})
}

// DeltaR returns the eta-phi distances.
func (a *Array) DeltaR(ctx context.Context, b Operand) (*Values[float64], error) {
	return binaryValues(a, "deltaR", b, func(x *columnar.Array, y columnar.Operand) ([]float64, error) {
		return x.DeltaR(ctx, y)
	})
}

// DeltaR2 returns the squared eta-phi distances.
func (a *Array) DeltaR2(ctx context.Context, b Operand) (*Values[float64], error) {
	return binaryValues(a, "deltaR2", b, func(x *columnar.Array, y columnar.Operand) ([]float64, error) {
		return x.DeltaR2(ctx, y)
	})
}

// DeltaRapidityPhi returns the rapidity-phi distances.
func (a *Array) DeltaRapidityPhi(ctx context.Context, b Operand) (*Values[float64], error) {
	return binaryValues(a, "deltaRapidityPhi", b, func(x *columnar.Array, y columnar.Operand) ([]float64, error) {
		return x.DeltaRapidityPhi(ctx, y)
	})
}

// DeltaRapidityPhi2 returns the squared rapidity-phi distances.
func (a *Array) DeltaRapidityPhi2(ctx context.Context, b Operand) (*Values[float64], error) {
	return binaryValues(a, "deltaRapidityPhi2", b, func(x *columnar.Array, y columnar.Operand) ([]float64, error) {
		return x.DeltaRapidityPhi2(ctx, y)
	})
}

// DeltaAngle returns the spatial opening angles.
func (a *Array) DeltaAngle(ctx context.Context, b Operand) (*Values[float64], error) {
	return binaryValues(a, "deltaangle", b, func(x *columnar.Array, y columnar.Operand) ([]float64, error) {
		return x.DeltaAngle(ctx, y)
	})
}

// IsParallel tests for the same spatial direction within tol.
func (a *Array) IsParallel(ctx context.Context, b Operand, tol float64) (*Values[bool], error) {
	return binaryValues(a, "is_parallel", b, func(x *columnar.Array, y columnar.Operand) ([]bool, error) {
		return x.IsParallel(ctx, y, tol)
	})
}

// IsAntiparallel tests for opposite spatial directions within tol.
func (a *Array) IsAntiparallel(ctx context.Context, b Operand, tol float64) (*Values[bool], error) {
	return binaryValues(a, "is_antiparallel", b, func(x *columnar.Array, y columnar.Operand) ([]bool, error) {
		return x.IsAntiparallel(ctx, y, tol)
	})
}

// IsPerpendicular tests the spatial parts for orthogonality within tol.
func (a *Array) IsPerpendicular(ctx context.Context, b Operand, tol float64) (*Values[bool], error) {
	return binaryValues(a, "is_perpendicular", b, func(x *columnar.Array, y columnar.Operand) ([]bool, error) {
		return x.IsPerpendicular(ctx, y, tol)
	})
}
