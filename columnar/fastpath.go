package columnar

import (
	"context"

	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/engine"
	"github.com/hupe1980/hepvec/internal/kernel"
	"github.com/hupe1980/hepvec/resolve"
	"github.com/hupe1980/hepvec/vtype"
)

// cartesianKinds reports whether every slice of d is stored as x, y, z or t,
// so element-wise arithmetic reduces to column arithmetic.
func cartesianKinds(d vtype.Descriptor) bool {
	if d.Azimuthal() != coords.XY {
		return false
	}
	if d.Dim() >= 3 && d.Longitudinal() != coords.Z {
		return false
	}
	return d.Dim() < 4 || d.Temporal() == coords.T
}

func bothCartesian(a, b *Array) bool {
	return cartesianKinds(a.desc) && cartesianKinds(b.desc)
}

func (a *Array) addCartesian(ctx context.Context, b *Array) (*Array, error) {
	out := a.derive(resolve.Binary(a.desc, b.desc, resolve.Demote))
	out.mask = andMask(a, b)
	dim := out.desc.Dim()
	err := a.run(ctx, "add", func(lo, hi int) error {
		for k := 0; k < dim; k++ {
			floats.AddTo(out.cols[k][lo:hi], a.cols[k][lo:hi], b.cols[k][lo:hi])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// subtractCartesian imputes a missing z as zero, so a slice present in only
// one operand is copied or negated.
func (a *Array) subtractCartesian(ctx context.Context, b *Array) (*Array, error) {
	out := a.derive(resolve.Binary(a.desc, b.desc, resolve.ImputeZero))
	out.mask = andMask(a, b)
	dim := out.desc.Dim()
	err := a.run(ctx, "subtract", func(lo, hi int) error {
		for k := 0; k < dim; k++ {
			dst := out.cols[k][lo:hi]
			switch {
			case k < a.desc.Dim() && k < b.desc.Dim():
				floats.SubTo(dst, a.cols[k][lo:hi], b.cols[k][lo:hi])
			case k < a.desc.Dim():
				copy(dst, a.cols[k][lo:hi])
			default:
				floats.ScaleTo(dst, -1, b.cols[k][lo:hi])
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (a *Array) scaleCartesian(ctx context.Context, f float64) (*Array, error) {
	out := a.derive(a.desc)
	out.mask = andMask(a, nil)
	dim := a.desc.Dim()
	err := a.run(ctx, "scale", func(lo, hi int) error {
		for k := 0; k < dim; k++ {
			floats.ScaleTo(out.cols[k][lo:hi], f, a.cols[k][lo:hi])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// dotCartesian accumulates the products with the active kernel. Two 4D
// operands use the Minkowski metric t*t - p*p.
func (a *Array) dotCartesian(ctx context.Context, b *Array) ([]float64, error) {
	dim := resolve.Demote.Dim(a.desc.Dim(), b.desc.Dim())
	out := make([]float64, a.n)
	err := a.run(ctx, "dot", func(lo, hi int) error {
		dst := out[lo:hi]
		if dim == 4 {
			floats.MulTo(dst, a.cols[3][lo:hi], b.cols[3][lo:hi])
			for k := 0; k < 3; k++ {
				kernel.SubProducts(dst, a.cols[k][lo:hi], b.cols[k][lo:hi])
			}
			return nil
		}
		for k := 0; k < dim; k++ {
			kernel.AddProducts(dst, a.cols[k][lo:hi], b.cols[k][lo:hi])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (a *Array) sumCartesian() engine.Vec {
	v := engine.Vec{Type: a.desc}
	for k := 0; k < a.desc.Dim(); k++ {
		v.C[k] = floats.Sum(a.cols[k])
	}
	return v
}
