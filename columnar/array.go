package columnar

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/hepvec/engine"
	"github.com/hupe1980/hepvec/internal/conv"
	"github.com/hupe1980/hepvec/vtype"
)

// Array is an immutable column store of vectors sharing one type.
// The zero value is not usable; construct arrays with FromColumns,
// FromVectors, Broadcast or Decode.
type Array struct {
	desc vtype.Descriptor
	cols [4][]float64
	n    int
	mask *roaring.Bitmap // valid indices; nil means all valid
	opts *options
}

func (a *Array) o() *options {
	if a.opts == nil {
		return defaultOpts
	}
	return a.opts
}

func checkLen(n int) error {
	if n == 0 {
		return nil
	}
	if _, err := conv.IntToUint32(n - 1); err != nil {
		return fmt.Errorf("columnar: too many elements: %w", err)
	}
	return nil
}

// alloc returns an array of type d with n zeroed elements backed by one
// allocation.
func alloc(d vtype.Descriptor, n int, opts *options) *Array {
	a := &Array{desc: d, n: n, opts: opts}
	dim := d.Dim()
	backing := make([]float64, dim*n)
	for k := 0; k < dim; k++ {
		a.cols[k] = backing[k*n : (k+1)*n : (k+1)*n]
	}
	return a
}

// FromColumns builds an array from named columns. The column names select the
// type exactly like engine.FromMap; all columns must have the same length.
// The columns are copied.
func FromColumns(columns map[string][]float64, optFns ...Option) (*Array, error) {
	names := make([]string, 0, len(columns))
	for name := range columns {
		names = append(names, name)
	}
	sort.Strings(names)

	d, slots, err := vtype.FromNames(names)
	if err != nil {
		return nil, err
	}

	n := len(columns[names[0]])
	for _, name := range names[1:] {
		if got := len(columns[name]); got != n {
			return nil, &LengthError{Op: "column " + name, Want: n, Got: got}
		}
	}
	if err := checkLen(n); err != nil {
		return nil, err
	}

	a := alloc(d, n, applyOptions(optFns))
	for i, name := range names {
		copy(a.cols[slots[i]], columns[name])
	}
	return a, nil
}

// FromVectors builds an array of the type of the first vector. The other
// vectors are converted to its coordinate system; any momentum vector makes
// the array momentum-flavored. Vectors of a lower dimension are rejected.
func FromVectors(vs []engine.Vec, optFns ...Option) (*Array, error) {
	if len(vs) == 0 {
		return nil, fmt.Errorf("%w: no vectors", engine.ErrArgument)
	}
	if err := checkLen(len(vs)); err != nil {
		return nil, err
	}

	d := vs[0].Type
	for i, v := range vs {
		if v.Dim() < d.Dim() {
			return nil, fmt.Errorf("%w: vector %d is %s, need %dD", engine.ErrArgument, i, v.Type, d.Dim())
		}
		d = d.WithFlavor(d.Flavor().Merge(v.Type.Flavor()))
	}

	a := alloc(d, len(vs), applyOptions(optFns))
	for i, v := range vs {
		if v.Type.System() != d.System() {
			var err error
			if v, err = engine.To(v, d.System()); err != nil {
				return nil, err
			}
		}
		a.set(i, v)
	}
	return a, nil
}

// Broadcast returns an array of n copies of v.
func Broadcast(v engine.Vec, n int, optFns ...Option) (*Array, error) {
	if v.Type.IsZero() {
		return nil, fmt.Errorf("%w: vector has no type", engine.ErrArgument)
	}
	if err := checkLen(n); err != nil {
		return nil, err
	}
	a := alloc(v.Type, n, applyOptions(optFns))
	for k := 0; k < v.Dim(); k++ {
		col := a.cols[k]
		for i := range col {
			col[i] = v.C[k]
		}
	}
	return a, nil
}

// derive returns an empty array of type d sharing a's options and length.
func (a *Array) derive(d vtype.Descriptor) *Array {
	return alloc(d, a.n, a.opts)
}

// Len returns the number of elements, valid or not.
func (a *Array) Len() int { return a.n }

// Type returns the element type.
func (a *Array) Type() vtype.Descriptor { return a.desc }

// At returns element i. It panics if i is out of range.
func (a *Array) At(i int) engine.Vec {
	if i < 0 || i >= a.n {
		panic(fmt.Sprintf("columnar: index %d out of range [0, %d)", i, a.n))
	}
	v := engine.Vec{Type: a.desc}
	for k := 0; k < a.desc.Dim(); k++ {
		v.C[k] = a.cols[k][i]
	}
	return v
}

func (a *Array) set(i int, v engine.Vec) {
	for k := 0; k < a.desc.Dim(); k++ {
		a.cols[k][i] = v.C[k]
	}
}

// Vectors returns all elements, valid or not.
func (a *Array) Vectors() []engine.Vec {
	out := make([]engine.Vec, a.n)
	for i := range out {
		out[i] = a.At(i)
	}
	return out
}

// Valid reports whether element i is present.
func (a *Array) Valid(i int) bool {
	if i < 0 || i >= a.n {
		return false
	}
	return a.mask == nil || a.mask.Contains(uint32(i))
}

// Mask returns a copy of the validity bitmap, or nil if every element is
// valid.
func (a *Array) Mask() *roaring.Bitmap {
	if a.mask == nil {
		return nil
	}
	return a.mask.Clone()
}

// WithMask returns a view of a whose valid elements are those in valid.
// Indices at or beyond Len are ignored. A nil mask makes every element valid.
func (a *Array) WithMask(valid *roaring.Bitmap) *Array {
	out := *a
	out.mask = nil
	if valid != nil {
		m := valid.Clone()
		m.RemoveRange(uint64(a.n), math.MaxUint32+1)
		out.mask = m
	}
	return &out
}

// WithOptions returns a view of a with different options.
func (a *Array) WithOptions(optFns ...Option) *Array {
	out := *a
	out.opts = applyOptions(optFns)
	return &out
}

// ToGeometric returns a view of a with the momentum flavor stripped.
func (a *Array) ToGeometric() *Array {
	out := *a
	out.desc = a.desc.Geometric()
	return &out
}

// ToMomentum returns a view of a with the momentum flavor added.
func (a *Array) ToMomentum() *Array {
	out := *a
	out.desc = a.desc.AsMomentum()
	return &out
}

// Count returns the number of valid elements.
func (a *Array) Count() int {
	if a.mask == nil {
		return a.n
	}
	return int(a.mask.GetCardinality())
}

// CountNonzero returns the number of valid elements with a nonzero rho^2, z
// or t^2.
func (a *Array) CountNonzero(ctx context.Context) (int, error) {
	nz, err := mapTo(ctx, "count_nonzero", a, nil, func(x, _ engine.Vec) (bool, error) {
		return engine.IsNonzero(x), nil
	})
	if err != nil {
		return 0, err
	}
	n := 0
	for i, ok := range nz {
		if ok && a.Valid(i) {
			n++
		}
	}
	return n, nil
}

// Sum adds up the valid elements with the pairwise addition rules. It returns
// an engine.ErrArgument error when there is no valid element.
func (a *Array) Sum(ctx context.Context) (engine.Vec, error) {
	if err := ctx.Err(); err != nil {
		return engine.Vec{}, err
	}
	if a.mask == nil && a.n > 0 && cartesianKinds(a.desc) {
		return a.sumCartesian(), nil
	}

	var (
		acc   engine.Vec
		found bool
	)
	for i := 0; i < a.n; i++ {
		if !a.Valid(i) {
			continue
		}
		if !found {
			acc, found = a.At(i), true
			continue
		}
		acc = engine.Add(acc, a.At(i))
	}
	if !found {
		return engine.Sum(nil)
	}
	return acc, nil
}

// Column returns coordinate name of every element. Native columns are
// copied; derived ones are computed. Masked elements read as NaN.
func (a *Array) Column(ctx context.Context, name string) ([]float64, error) {
	if _, err := a.probe().Get(name); err != nil {
		return nil, err
	}
	if slot, ok := a.desc.Slot(name); ok {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out := make([]float64, a.n)
		copy(out, a.cols[slot])
		forInvalid(a, nil, func(i int) { out[i] = math.NaN() })
		return out, nil
	}
	return mapFloat(ctx, name, a, nil, func(x, _ engine.Vec) (float64, error) {
		return x.Get(name)
	})
}

// probe is a zero element of a's type. Operations evaluate it once to
// resolve the result type and reject invalid arguments before any chunk runs.
func (a *Array) probe() engine.Vec {
	return engine.Vec{Type: a.desc}
}

func (a *Array) String() string {
	return fmt.Sprintf("columnar.Array[%s](len=%d, valid=%d)", a.desc, a.n, a.Count())
}
