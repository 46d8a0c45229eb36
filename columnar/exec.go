package columnar

import (
	"context"
	"math"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/hepvec/engine"
	"github.com/hupe1980/hepvec/internal/kernel"
)

// Operand is the right-hand side of a binary operation: an *Array of the
// same length, or a Scalar broadcast to every element.
type Operand interface {
	operand(op string, like *Array) (*Array, error)
}

// Scalar broadcasts one vector against every element of an array.
type Scalar engine.Vec

func (s Scalar) operand(_ string, like *Array) (*Array, error) {
	b, err := Broadcast(engine.Vec(s), like.n)
	if err != nil {
		return nil, err
	}
	b.opts = like.opts
	return b, nil
}

func (a *Array) operand(op string, like *Array) (*Array, error) {
	if a == nil {
		return nil, argumentError(op, "nil operand")
	}
	if a.n != like.n {
		return nil, &LengthError{Op: op, Want: like.n, Got: a.n}
	}
	return a, nil
}

func argumentError(op, reason string) error {
	return &engine.ArgumentError{Op: op, Reason: reason}
}

// chunkFunc evaluates elements [lo, hi).
type chunkFunc func(lo, hi int) error

// run evaluates fn over all elements of a in chunks and records the call.
func (a *Array) run(ctx context.Context, op string, fn chunkFunc) error {
	o := a.o()
	start := time.Now()
	err := parallel(ctx, o, a.n, fn)
	o.metrics.RecordKernel(op, a.n, time.Since(start), err)
	o.logger.Debug("kernel",
		"op", op,
		"type", a.desc.String(),
		"len", a.n,
		"kernel", kernel.Active().String(),
		"error", err,
	)
	return err
}

// parallel splits [0, n) into chunks of o.chunkSize and evaluates them on
// worker slots of o.controller. A single chunk runs on the calling goroutine.
func parallel(ctx context.Context, o *options, n int, fn chunkFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	size := o.chunkSize
	if n <= size {
		return fn(0, n)
	}

	g, gctx := errgroup.WithContext(ctx)
	for lo := 0; lo < n; lo += size {
		hi := min(lo+size, n)
		if err := o.controller.AcquireWorker(gctx); err != nil {
			if werr := g.Wait(); werr != nil {
				return werr
			}
			return err
		}
		g.Go(func() error {
			defer o.controller.ReleaseWorker()
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(lo, hi)
		})
	}
	return g.Wait()
}

// mapTo evaluates fn element-wise. b may be nil for unary operations. fn is
// first called once on zero elements to reject invalid arguments before any
// chunk runs; errors returned later abort the call.
func mapTo[T any](ctx context.Context, op string, a, b *Array, fn func(x, y engine.Vec) (T, error)) ([]T, error) {
	var yProbe engine.Vec
	if b != nil {
		if b.n != a.n {
			return nil, &LengthError{Op: op, Want: a.n, Got: b.n}
		}
		yProbe = b.probe()
	}
	if _, err := fn(a.probe(), yProbe); err != nil {
		return nil, err
	}

	out := make([]T, a.n)
	err := a.run(ctx, op, func(lo, hi int) error {
		var y engine.Vec
		for i := lo; i < hi; i++ {
			if b != nil {
				y = b.At(i)
			}
			v, err := fn(a.At(i), y)
			if err != nil {
				return err
			}
			out[i] = v
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// mapVec is mapTo for vector results. The result type is taken from the probe
// call and every element is stored in it.
func mapVec(ctx context.Context, op string, a, b *Array, fn func(x, y engine.Vec) (engine.Vec, error)) (*Array, error) {
	var yProbe engine.Vec
	if b != nil {
		if b.n != a.n {
			return nil, &LengthError{Op: op, Want: a.n, Got: b.n}
		}
		yProbe = b.probe()
	}
	p, err := fn(a.probe(), yProbe)
	if err != nil {
		return nil, err
	}

	out := a.derive(p.Type)
	out.mask = andMask(a, b)
	err = a.run(ctx, op, func(lo, hi int) error {
		var y engine.Vec
		for i := lo; i < hi; i++ {
			if b != nil {
				y = b.At(i)
			}
			v, err := fn(a.At(i), y)
			if err != nil {
				return err
			}
			out.set(i, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// mapFloat is mapTo for scalar results. Masked elements read as NaN.
func mapFloat(ctx context.Context, op string, a, b *Array, fn func(x, y engine.Vec) (float64, error)) ([]float64, error) {
	out, err := mapTo(ctx, op, a, b, fn)
	if err != nil {
		return nil, err
	}
	forInvalid(a, b, func(i int) { out[i] = math.NaN() })
	return out, nil
}

// mapBool is mapTo for predicates. Masked elements read as false.
func mapBool(ctx context.Context, op string, a, b *Array, fn func(x, y engine.Vec) (bool, error)) ([]bool, error) {
	out, err := mapTo(ctx, op, a, b, fn)
	if err != nil {
		return nil, err
	}
	forInvalid(a, b, func(i int) { out[i] = false })
	return out, nil
}

// andMask returns the validity of a binary result: valid where both operands
// are.
func andMask(a, b *Array) *roaring.Bitmap {
	switch {
	case b == nil || b.mask == nil:
		if a.mask == nil {
			return nil
		}
		return a.mask.Clone()
	case a.mask == nil:
		return b.mask.Clone()
	default:
		return roaring.And(a.mask, b.mask)
	}
}

func forInvalid(a, b *Array, fn func(i int)) {
	m := andMask(a, b)
	if m == nil {
		return
	}
	invalid := roaring.Flip(m, 0, uint64(a.n))
	it := invalid.Iterator()
	for it.HasNext() {
		fn(int(it.Next()))
	}
}
