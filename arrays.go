package hepvec

import (
	"context"
	"io"

	"github.com/hupe1980/hepvec/columnar"
	"github.com/hupe1980/hepvec/engine"
	"github.com/hupe1980/hepvec/ragged"
	"github.com/hupe1980/hepvec/vtype"
)

// NewArray builds a flat array from named columns, configured by opts.
// See columnar.FromColumns.
func NewArray(ctx context.Context, columns map[string][]float64, opts ...Option) (*columnar.Array, error) {
	o := applyOptions(opts)

	a, err := columnar.FromColumns(columns, o.columnar()...)
	if err != nil {
		err = translateError(err)
		o.logger.LogArray(ctx, "columns", vtype.Descriptor{}, 0, err)
		return nil, err
	}
	o.logger.LogArray(ctx, "columns", a.Type(), a.Len(), nil)
	return a, nil
}

// NewArrayOf builds a flat array from vectors; they are converted to the
// coordinate system of the first one. See columnar.FromVectors.
func NewArrayOf(ctx context.Context, vs []Vector, opts ...Option) (*columnar.Array, error) {
	o := applyOptions(opts)

	raw := make([]engine.Vec, len(vs))
	for i, v := range vs {
		raw[i] = v.v
	}
	a, err := columnar.FromVectors(raw, o.columnar()...)
	if err != nil {
		err = translateError(err)
		o.logger.LogArray(ctx, "vectors", vtype.Descriptor{}, 0, err)
		return nil, err
	}
	o.logger.LogArray(ctx, "vectors", a.Type(), a.Len(), nil)
	return a, nil
}

// NewRagged builds a ragged array of the given behavior class from lists of
// named fields. The class must be registered in the behaviors set with
// WithBehaviors; an empty class selects the built-in one of the type.
func NewRagged(ctx context.Context, behavior string, lists [][]map[string]float64, opts ...Option) (*ragged.Array, error) {
	o := applyOptions(opts)

	a, err := ragged.FromLists(o.behaviors, behavior, lists, o.ragged()...)
	if err != nil {
		err = translateError(err)
		o.logger.LogArray(ctx, "lists", vtype.Descriptor{}, 0, err)
		return nil, err
	}
	o.logger.WithBehavior(a.Behavior()).LogArray(ctx, "lists", a.Type(), a.Len(), nil)
	return a, nil
}

// LoadBehaviors reads a YAML behavior file. See ragged.LoadBehaviors.
func LoadBehaviors(ctx context.Context, path string, opts ...Option) (*ragged.Behaviors, error) {
	o := applyOptions(opts)

	b, err := ragged.LoadBehaviorsFile(path)
	if err != nil {
		o.logger.LogBehaviors(ctx, path, 0, err)
		return nil, err
	}
	o.logger.LogBehaviors(ctx, path, len(b.Names()), nil)
	return b, nil
}

// WriteArray writes a as one block to w with the compression, controller
// and observers of opts.
func WriteArray(ctx context.Context, w io.Writer, a *columnar.Array, opts ...Option) (int64, error) {
	o := applyOptions(opts)

	n, err := a.WithOptions(o.columnar()...).EncodeTo(ctx, w)
	o.logger.LogEncode(ctx, a.Len(), n, err)
	return n, err
}

// ReadArray reads one block written by WriteArray. The array is configured
// by opts.
func ReadArray(ctx context.Context, r io.Reader, opts ...Option) (*columnar.Array, error) {
	o := applyOptions(opts)

	a, err := columnar.Decode(ctx, r, o.columnar()...)
	if err != nil {
		o.logger.LogDecode(ctx, 0, err)
		return nil, err
	}
	o.logger.LogDecode(ctx, a.Len(), nil)
	return a, nil
}
