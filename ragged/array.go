package ragged

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/hupe1980/hepvec/columnar"
	"github.com/hupe1980/hepvec/engine"
	"github.com/hupe1980/hepvec/resolve"
	"github.com/hupe1980/hepvec/vtype"
)

// Array is a list of variable-length lists of vectors sharing one type, such
// as the jets of each event. The elements live in one flat columnar.Array;
// list i spans the elements offsets[i] to offsets[i+1].
//
// Every array carries a behavior: a class name registered in its Behaviors.
type Array struct {
	offsets   []int64
	inner     *columnar.Array
	behavior  string
	behaviors *Behaviors
	logger    *slog.Logger
	opts      []columnar.Option
}

// FromLists builds an array from lists of named fields. Every element must
// have the same field names, which select the type like engine.FromMap.
// An empty behavior selects the built-in class of the type (Vector2D,
// Momentum4D, ...). A nil b uses DefaultBehaviors().
func FromLists(b *Behaviors, behavior string, lists [][]map[string]float64, optFns ...Option) (*Array, error) {
	o := applyOptions(optFns)

	total := 0
	for _, l := range lists {
		total += len(l)
	}

	offsets := make([]int64, len(lists)+1)
	var (
		names []string
		cols  map[string][]float64
	)
	for i, list := range lists {
		for j, elem := range list {
			if cols == nil {
				names = sortedKeys(elem)
				cols = make(map[string][]float64, len(names))
				for _, n := range names {
					cols[n] = make([]float64, 0, total)
				}
			}
			if len(elem) != len(names) {
				return nil, fieldsError(i, j, names, elem)
			}
			for _, n := range names {
				v, ok := elem[n]
				if !ok {
					return nil, fieldsError(i, j, names, elem)
				}
				cols[n] = append(cols[n], v)
			}
		}
		offsets[i+1] = offsets[i] + int64(len(list))
	}
	if cols == nil {
		return nil, &vtype.ConstructionError{Reason: "no elements to infer the vector type from"}
	}

	inner, err := columnar.FromColumns(cols, o.inner...)
	if err != nil {
		return nil, err
	}
	return newArray(b, behavior, offsets, inner, o)
}

// FromArray wraps a flat array with list offsets. offsets must start at 0,
// never decrease and end at inner.Len(); it is copied. Options given here
// replace the options of inner.
func FromArray(b *Behaviors, behavior string, offsets []int64, inner *columnar.Array, optFns ...Option) (*Array, error) {
	if inner == nil {
		return nil, fmt.Errorf("%w: nil inner array", engine.ErrArgument)
	}
	if len(offsets) == 0 || offsets[0] != 0 {
		return nil, offsetsError("offsets must start at 0")
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return nil, offsetsError("offset %d decreases", i)
		}
	}
	if last := offsets[len(offsets)-1]; last != int64(inner.Len()) {
		return nil, offsetsError("last offset %d, inner array has %d elements", last, inner.Len())
	}

	o := applyOptions(optFns)
	if len(o.inner) > 0 {
		inner = inner.WithOptions(o.inner...)
	}
	return newArray(b, behavior, append([]int64(nil), offsets...), inner, o)
}

func newArray(b *Behaviors, behavior string, offsets []int64, inner *columnar.Array, o *options) (*Array, error) {
	if b == nil {
		b = DefaultBehaviors()
	}
	if behavior == "" {
		behavior = builtinClass(inner.Type())
	}
	if !b.Has(behavior) {
		return nil, fmt.Errorf("%w: %s", resolve.ErrUnknownClass, behavior)
	}
	return &Array{
		offsets:   offsets,
		inner:     inner,
		behavior:  behavior,
		behaviors: b,
		logger:    o.logger,
		opts:      o.inner,
	}, nil
}

// derive wraps a flat result with a's list structure.
func (a *Array) derive(inner *columnar.Array, behavior string) *Array {
	out := *a
	out.inner = inner
	out.behavior = behavior
	return &out
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func fieldsError(list, elem int, want []string, got map[string]float64) error {
	return &vtype.ConstructionError{
		Fields: sortedKeys(got),
		Reason: fmt.Sprintf("element %d of list %d does not have the fields %v", elem, list, want),
	}
}

// Len returns the number of lists.
func (a *Array) Len() int { return len(a.offsets) - 1 }

// Type returns the element type.
func (a *Array) Type() vtype.Descriptor { return a.inner.Type() }

// Behavior returns the class name of the array.
func (a *Array) Behavior() string { return a.behavior }

// Behaviors returns the behaviors the array resolves classes with.
func (a *Array) Behaviors() *Behaviors { return a.behaviors }

// Offsets returns a copy of the list offsets.
func (a *Array) Offsets() []int64 { return append([]int64(nil), a.offsets...) }

// Flat returns the elements of all lists as one array.
func (a *Array) Flat() *columnar.Array { return a.inner }

// ListLen returns the number of elements of list i, valid or not.
func (a *Array) ListLen(i int) int { return int(a.offsets[i+1] - a.offsets[i]) }

// List returns the valid elements of list i.
func (a *Array) List(i int) []engine.Vec {
	lo, hi := int(a.offsets[i]), int(a.offsets[i+1])
	out := make([]engine.Vec, 0, hi-lo)
	for k := lo; k < hi; k++ {
		if a.inner.Valid(k) {
			out = append(out, a.inner.At(k))
		}
	}
	return out
}

// WithBehavior returns a view of a with another class.
func (a *Array) WithBehavior(behavior string) (*Array, error) {
	if !a.behaviors.Has(behavior) {
		return nil, fmt.Errorf("%w: %s", resolve.ErrUnknownClass, behavior)
	}
	out := *a
	out.behavior = behavior
	return &out, nil
}

// Count returns the number of valid elements of every list.
func (a *Array) Count(ctx context.Context) ([]int, error) {
	return perList(ctx, a, "count", func(vs []engine.Vec) (int, error) {
		return engine.Count(vs), nil
	})
}

// CountNonzero returns the number of valid nonzero elements of every list.
func (a *Array) CountNonzero(ctx context.Context) ([]int, error) {
	return perList(ctx, a, "count_nonzero", func(vs []engine.Vec) (int, error) {
		return engine.CountNonzero(vs), nil
	})
}

// Sum adds up the valid elements of every list. The result has one element
// per list; an empty list sums to the zero vector of the element type.
func (a *Array) Sum(ctx context.Context) (*columnar.Array, error) {
	d := a.Type()
	sums, err := perList(ctx, a, "sum", func(vs []engine.Vec) (engine.Vec, error) {
		if len(vs) == 0 {
			return engine.Vec{Type: d}, nil
		}
		return engine.Sum(vs)
	})
	if err != nil {
		return nil, err
	}

	names := d.Names()
	cols := make(map[string][]float64, len(names))
	for k, n := range names {
		col := make([]float64, len(sums))
		for i, v := range sums {
			col[i] = v.C[k]
		}
		cols[n] = col
	}
	return columnar.FromColumns(cols, a.opts...)
}

// perList evaluates fn on the valid elements of every list.
func perList[T any](ctx context.Context, a *Array, op string, fn func([]engine.Vec) (T, error)) ([]T, error) {
	out := make([]T, a.Len())
	for i := range out {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := fn(a.List(i))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	a.logger.Debug("ragged reduction", "op", op, "lists", a.Len(), "behavior", a.behavior)
	return out, nil
}

func (a *Array) String() string {
	return fmt.Sprintf("ragged.Array[%s %s](lists=%d, elements=%d)", a.behavior, a.Type(), a.Len(), a.inner.Len())
}
