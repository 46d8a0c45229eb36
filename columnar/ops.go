package columnar

import (
	"context"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/engine"
)

func (a *Array) other(op string, b Operand) (*Array, error) {
	if b == nil {
		return nil, argumentError(op, "nil operand")
	}
	return b.operand(op, a)
}

// Add returns a + b element-wise.
func (a *Array) Add(ctx context.Context, b Operand) (*Array, error) {
	rhs, err := a.other("add", b)
	if err != nil {
		return nil, err
	}
	if bothCartesian(a, rhs) {
		return a.addCartesian(ctx, rhs)
	}
	return mapVec(ctx, "add", a, rhs, func(x, y engine.Vec) (engine.Vec, error) {
		return engine.Add(x, y), nil
	})
}

// Subtract returns a - b element-wise.
func (a *Array) Subtract(ctx context.Context, b Operand) (*Array, error) {
	rhs, err := a.other("subtract", b)
	if err != nil {
		return nil, err
	}
	if bothCartesian(a, rhs) {
		return a.subtractCartesian(ctx, rhs)
	}
	return mapVec(ctx, "subtract", a, rhs, func(x, y engine.Vec) (engine.Vec, error) {
		return engine.Subtract(x, y), nil
	})
}

// Scale multiplies every element by f.
func (a *Array) Scale(ctx context.Context, f float64) (*Array, error) {
	if cartesianKinds(a.desc) {
		return a.scaleCartesian(ctx, f)
	}
	return mapVec(ctx, "scale", a, nil, func(x, _ engine.Vec) (engine.Vec, error) {
		return engine.Scale(x, f), nil
	})
}

// Neg returns -a.
func (a *Array) Neg(ctx context.Context) (*Array, error) {
	return a.Scale(ctx, -1)
}

// Dot returns the scalar products of a and b.
func (a *Array) Dot(ctx context.Context, b Operand) ([]float64, error) {
	rhs, err := a.other("dot", b)
	if err != nil {
		return nil, err
	}
	if bothCartesian(a, rhs) {
		out, err := a.dotCartesian(ctx, rhs)
		if err != nil {
			return nil, err
		}
		forInvalid(a, rhs, func(i int) { out[i] = math.NaN() })
		return out, nil
	}
	return mapFloat(ctx, "dot", a, rhs, func(x, y engine.Vec) (float64, error) {
		return engine.Dot(x, y), nil
	})
}

// Cross returns the 3D cross products a x b.
func (a *Array) Cross(ctx context.Context, b Operand) (*Array, error) {
	rhs, err := a.other("cross", b)
	if err != nil {
		return nil, err
	}
	return mapVec(ctx, "cross", a, rhs, engine.Cross)
}

// Abs returns the norm of every element.
func (a *Array) Abs(ctx context.Context) ([]float64, error) {
	return mapFloat(ctx, "abs", a, nil, func(x, _ engine.Vec) (float64, error) {
		return engine.Abs(x), nil
	})
}

// Unit returns every element divided by its norm.
func (a *Array) Unit(ctx context.Context) (*Array, error) {
	return mapVec(ctx, "unit", a, nil, func(x, _ engine.Vec) (engine.Vec, error) {
		return engine.Unit(x), nil
	})
}

// Equal compares stored values element-wise.
func (a *Array) Equal(ctx context.Context, b Operand) ([]bool, error) {
	rhs, err := a.other("equal", b)
	if err != nil {
		return nil, err
	}
	return mapBool(ctx, "equal", a, rhs, func(x, y engine.Vec) (bool, error) {
		return engine.Equal(x, y), nil
	})
}

// NotEqual is the element-wise negation of Equal. Masked elements read as
// false.
func (a *Array) NotEqual(ctx context.Context, b Operand) ([]bool, error) {
	rhs, err := a.other("not_equal", b)
	if err != nil {
		return nil, err
	}
	return mapBool(ctx, "not_equal", a, rhs, func(x, y engine.Vec) (bool, error) {
		return engine.NotEqual(x, y), nil
	})
}

// IsClose compares Cartesian components element-wise within tol.
func (a *Array) IsClose(ctx context.Context, b Operand, tol engine.Tolerance) ([]bool, error) {
	rhs, err := a.other("isclose", b)
	if err != nil {
		return nil, err
	}
	return mapBool(ctx, "isclose", a, rhs, func(x, y engine.Vec) (bool, error) {
		return engine.IsClose(x, y, tol), nil
	})
}

// RotateZ rotates every element about the z axis.
func (a *Array) RotateZ(ctx context.Context, angle float64) (*Array, error) {
	return mapVec(ctx, "rotateZ", a, nil, func(x, _ engine.Vec) (engine.Vec, error) {
		return engine.RotateZ(x, angle), nil
	})
}

// RotateX rotates every element about the x axis.
func (a *Array) RotateX(ctx context.Context, angle float64) (*Array, error) {
	return mapVec(ctx, "rotateX", a, nil, func(x, _ engine.Vec) (engine.Vec, error) {
		return engine.RotateX(x, angle)
	})
}

// RotateY rotates every element about the y axis.
func (a *Array) RotateY(ctx context.Context, angle float64) (*Array, error) {
	return mapVec(ctx, "rotateY", a, nil, func(x, _ engine.Vec) (engine.Vec, error) {
		return engine.RotateY(x, angle)
	})
}

// RotateAxis rotates every element about the matching axis.
func (a *Array) RotateAxis(ctx context.Context, axis Operand, angle float64) (*Array, error) {
	rhs, err := a.other("rotate_axis", axis)
	if err != nil {
		return nil, err
	}
	return mapVec(ctx, "rotate_axis", a, rhs, func(x, y engine.Vec) (engine.Vec, error) {
		return engine.RotateAxis(x, y, angle)
	})
}

// RotateEuler applies one Euler rotation to every element.
func (a *Array) RotateEuler(ctx context.Context, phi, theta, psi float64, order string) (*Array, error) {
	return mapVec(ctx, "rotate_euler", a, nil, func(x, _ engine.Vec) (engine.Vec, error) {
		return engine.RotateEuler(x, phi, theta, psi, order)
	})
}

// RotateNautical applies yaw, pitch and roll to every element.
func (a *Array) RotateNautical(ctx context.Context, yaw, pitch, roll float64) (*Array, error) {
	return mapVec(ctx, "rotate_nautical", a, nil, func(x, _ engine.Vec) (engine.Vec, error) {
		return engine.RotateNautical(x, yaw, pitch, roll)
	})
}

// RotateQuaternion applies q v q* to every element.
func (a *Array) RotateQuaternion(ctx context.Context, u, i, j, k float64) (*Array, error) {
	return mapVec(ctx, "rotate_quaternion", a, nil, func(x, _ engine.Vec) (engine.Vec, error) {
		return engine.RotateQuaternion(x, u, i, j, k)
	})
}

// Transform applies the linear map m to every element.
func (a *Array) Transform(ctx context.Context, m mat.Matrix) (*Array, error) {
	return mapVec(ctx, "transform", a, nil, func(x, _ engine.Vec) (engine.Vec, error) {
		return engine.Transform(x, m)
	})
}

// BoostX boosts every element along x.
func (a *Array) BoostX(ctx context.Context, opts ...engine.BoostOption) (*Array, error) {
	return mapVec(ctx, "boostX", a, nil, func(x, _ engine.Vec) (engine.Vec, error) {
		return engine.BoostX(x, opts...)
	})
}

// BoostY boosts every element along y.
func (a *Array) BoostY(ctx context.Context, opts ...engine.BoostOption) (*Array, error) {
	return mapVec(ctx, "boostY", a, nil, func(x, _ engine.Vec) (engine.Vec, error) {
		return engine.BoostY(x, opts...)
	})
}

// BoostZ boosts every element along z.
func (a *Array) BoostZ(ctx context.Context, opts ...engine.BoostOption) (*Array, error) {
	return mapVec(ctx, "boostZ", a, nil, func(x, _ engine.Vec) (engine.Vec, error) {
		return engine.BoostZ(x, opts...)
	})
}

// BoostBeta3 boosts every element by the matching velocity.
func (a *Array) BoostBeta3(ctx context.Context, beta3 Operand) (*Array, error) {
	rhs, err := a.other("boost_beta3", beta3)
	if err != nil {
		return nil, err
	}
	return mapVec(ctx, "boost_beta3", a, rhs, engine.BoostBeta3)
}

// BoostP4 boosts every element into the frame of the matching four-momentum.
func (a *Array) BoostP4(ctx context.Context, p4 Operand) (*Array, error) {
	rhs, err := a.other("boost_p4", p4)
	if err != nil {
		return nil, err
	}
	return mapVec(ctx, "boost_p4", a, rhs, engine.BoostP4)
}

// Boost dispatches on the booster dimension like engine.Boost.
func (a *Array) Boost(ctx context.Context, booster Operand) (*Array, error) {
	rhs, err := a.other("boost", booster)
	if err != nil {
		return nil, err
	}
	return mapVec(ctx, "boost", a, rhs, engine.Boost)
}

// ToBeta3 returns the velocity of every element.
func (a *Array) ToBeta3(ctx context.Context) (*Array, error) {
	return mapVec(ctx, "to_beta3", a, nil, func(x, _ engine.Vec) (engine.Vec, error) {
		return engine.ToBeta3(x)
	})
}

// DeltaPhi returns the azimuthal separations.
func (a *Array) DeltaPhi(ctx context.Context, b Operand) ([]float64, error) {
	rhs, err := a.other("deltaphi", b)
	if err != nil {
		return nil, err
	}
	return mapFloat(ctx, "deltaphi", a, rhs, func(x, y engine.Vec) (float64, error) {
		return engine.DeltaPhi(x, y), nil
	})
}

func (a *Array) delta(ctx context.Context, op string, b Operand, fn func(x, y engine.Vec) (float64, error)) ([]float64, error) {
	rhs, err := a.other(op, b)
	if err != nil {
		return nil, err
	}
	return mapFloat(ctx, op, a, rhs, fn)
}

// DeltaEta returns the pseudorapidity separations.
func (a *Array) DeltaEta(ctx context.Context, b Operand) ([]float64, error) {
	return a.delta(ctx, "deltaeta", b, engine.DeltaEta)
}

// DeltaR returns the eta-phi distances.
func (a *Array) DeltaR(ctx context.Context, b Operand) ([]float64, error) {
	return a.delta(ctx, "deltaR", b, engine.DeltaR)
}

// DeltaR2 returns the squared eta-phi distances.
func (a *Array) DeltaR2(ctx context.Context, b Operand) ([]float64, error) {
	return a.delta(ctx, "deltaR2", b, engine.DeltaR2)
}

// DeltaRapidityPhi returns the rapidity-phi distances.
func (a *Array) DeltaRapidityPhi(ctx context.Context, b Operand) ([]float64, error) {
	return a.delta(ctx, "deltaRapidityPhi", b, engine.DeltaRapidityPhi)
}

// DeltaRapidityPhi2 returns the squared rapidity-phi distances.
func (a *Array) DeltaRapidityPhi2(ctx context.Context, b Operand) ([]float64, error) {
	return a.delta(ctx, "deltaRapidityPhi2", b, engine.DeltaRapidityPhi2)
}

// DeltaAngle returns the spatial opening angles.
func (a *Array) DeltaAngle(ctx context.Context, b Operand) ([]float64, error) {
	return a.delta(ctx, "deltaangle", b, engine.DeltaAngle)
}

func (a *Array) direction(ctx context.Context, op string, b Operand, fn func(x, y engine.Vec) bool) ([]bool, error) {
	rhs, err := a.other(op, b)
	if err != nil {
		return nil, err
	}
	return mapBool(ctx, op, a, rhs, func(x, y engine.Vec) (bool, error) {
		return fn(x, y), nil
	})
}

// IsParallel tests the spatial parts for the same direction within tol.
func (a *Array) IsParallel(ctx context.Context, b Operand, tol float64) ([]bool, error) {
	return a.direction(ctx, "is_parallel", b, func(x, y engine.Vec) bool {
		return engine.IsParallel(x, y, tol)
	})
}

// IsAntiparallel tests the spatial parts for opposite directions within tol.
func (a *Array) IsAntiparallel(ctx context.Context, b Operand, tol float64) ([]bool, error) {
	return a.direction(ctx, "is_antiparallel", b, func(x, y engine.Vec) bool {
		return engine.IsAntiparallel(x, y, tol)
	})
}

// IsPerpendicular tests the spatial parts for orthogonality within tol.
func (a *Array) IsPerpendicular(ctx context.Context, b Operand, tol float64) ([]bool, error) {
	return a.direction(ctx, "is_perpendicular", b, func(x, y engine.Vec) bool {
		return engine.IsPerpendicular(x, y, tol)
	})
}

// IsTimelike tests every element for t^2 - mag^2 > |tol|.
func (a *Array) IsTimelike(ctx context.Context, tol float64) ([]bool, error) {
	return mapBool(ctx, "is_timelike", a, nil, func(x, _ engine.Vec) (bool, error) {
		return engine.IsTimelike(x, tol)
	})
}

// IsSpacelike tests every element for t^2 - mag^2 < -|tol|.
func (a *Array) IsSpacelike(ctx context.Context, tol float64) ([]bool, error) {
	return mapBool(ctx, "is_spacelike", a, nil, func(x, _ engine.Vec) (bool, error) {
		return engine.IsSpacelike(x, tol)
	})
}

// IsLightlike tests every element for |t^2 - mag^2| < |tol|.
func (a *Array) IsLightlike(ctx context.Context, tol float64) ([]bool, error) {
	return mapBool(ctx, "is_lightlike", a, nil, func(x, _ engine.Vec) (bool, error) {
		return engine.IsLightlike(x, tol)
	})
}

// To re-expresses every element in the coordinate system sys.
func (a *Array) To(ctx context.Context, sys coords.System) (*Array, error) {
	if sys == a.desc.System() {
		return a, nil
	}
	return mapVec(ctx, "to", a, nil, func(x, _ engine.Vec) (engine.Vec, error) {
		return engine.To(x, sys)
	})
}

// Demote drops the slices above dimension dim without conversion.
func (a *Array) Demote(ctx context.Context, dim int) (*Array, error) {
	return mapVec(ctx, "demote", a, nil, func(x, _ engine.Vec) (engine.Vec, error) {
		return engine.Demote(x, dim)
	})
}
