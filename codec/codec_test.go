package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/engine"
	"github.com/hupe1980/hepvec/testutil"
	"github.com/hupe1980/hepvec/vtype"
)

func allCodecs() []Codec {
	var out []Codec
	for _, name := range Names() {
		c, _ := ByName(name)
		out = append(out, c)
	}
	return out
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		c, ok := ByName(name)
		require.True(t, ok)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("msgpack")
	assert.False(t, ok)
}

func TestVecRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for _, c := range allCodecs() {
		t.Run(c.Name(), func(t *testing.T) {
			for _, sys := range coords.All() {
				for _, flavor := range []coords.Flavor{coords.Geometric, coords.Momentum} {
					c4 := rng.Cartesian(4)
					v := engine.Make(vtype.Must(sys, flavor), c4[:]...)

					data, err := MarshalVec(c, v)
					require.NoError(t, err)

					got, err := UnmarshalVec(c, data)
					require.NoError(t, err, string(data))
					assert.Equal(t, v, got)
				}
			}
		})
	}
}

func TestVecDocument(t *testing.T) {
	v := engine.Make(vtype.Momentum4D(coords.RhoPhi, coords.Eta, coords.Tau), 10, 0.5, 1.5, 2)

	data, err := MarshalVec(JSON{}, v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"pt": 10, "phi": 0.5, "eta": 1.5, "M": 2}`, string(data))
}

func TestVecErrors(t *testing.T) {
	_, err := MarshalVec(nil, engine.Vec{})
	assert.Error(t, err)

	_, err = UnmarshalVec(nil, []byte(`{"x": 1, "rho": 2}`))
	assert.ErrorIs(t, err, vtype.ErrConstruction)

	_, err = UnmarshalVec(nil, []byte(`not json`))
	assert.Error(t, err)
}

func TestVecsMixedSystems(t *testing.T) {
	vs := []engine.Vec{
		engine.Make(vtype.Vector2D(coords.XY), 3, 4),
		engine.Make(vtype.Momentum3D(coords.RhoPhi, coords.Theta), 1, 2, 3),
	}

	for _, c := range allCodecs() {
		data, err := MarshalVecs(c, vs)
		require.NoError(t, err)

		got, err := UnmarshalVecs(c, data)
		require.NoError(t, err)
		assert.Equal(t, vs, got)
	}

	_, err := UnmarshalVecs(nil, []byte(`[{"x": 1, "y": 2}, {"x": 1}]`))
	assert.ErrorContains(t, err, "vector 1")
}

func TestMustMarshal(t *testing.T) {
	assert.Equal(t, []byte(`{"a":1}`), MustMarshal(nil, map[string]int{"a": 1}))
	assert.Panics(t, func() { MustMarshal(JSON{}, func() {}) })
}

func benchmarkMarshalVecs(b *testing.B, c Codec) {
	rng := testutil.NewRNG(1)
	vs := make([]engine.Vec, 256)
	d := vtype.Momentum4D(coords.RhoPhi, coords.Eta, coords.Tau)
	for i := range vs {
		c4 := rng.Cartesian(4)
		vs[i] = engine.Make(d, c4[:]...)
	}

	b.ReportAllocs()
	for b.Loop() {
		if _, err := MarshalVecs(c, vs); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMarshalVecs_JSON(b *testing.B)   { benchmarkMarshalVecs(b, JSON{}) }
func BenchmarkMarshalVecs_GoJSON(b *testing.B) { benchmarkMarshalVecs(b, GoJSON{}) }
