package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/testutil"
	"github.com/hupe1980/hepvec/vtype"
)

func TestBoostAxis(t *testing.T) {
	rest := Make(xyzt, 0, 0, 0, 1)

	tests := []struct {
		name string
		fn   func(Vec, ...BoostOption) (Vec, error)
		opt  BoostOption
		want [4]float64
	}{
		{"z beta", BoostZ, WithBeta(0.6), [4]float64{0, 0, 0.75, 1.25}},
		{"z gamma", BoostZ, WithGamma(1.25), [4]float64{0, 0, 0.75, 1.25}},
		{"z negative gamma", BoostZ, WithGamma(-1.25), [4]float64{0, 0, -0.75, 1.25}},
		{"x beta", BoostX, WithBeta(0.6), [4]float64{0.75, 0, 0, 1.25}},
		{"y beta", BoostY, WithBeta(-0.6), [4]float64{0, -0.75, 0, 1.25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(rest, tt.opt)
			require.NoError(t, err)
			assertCartesian(t, tt.want, got)
		})
	}
}

func TestBoostAxisErrors(t *testing.T) {
	v := Make(xyzt, 1, 2, 3, 10)

	_, err := BoostZ(v)
	assert.ErrorIs(t, err, ErrArgument)

	_, err = BoostZ(v, WithBeta(0.5), WithGamma(2))
	assert.ErrorIs(t, err, ErrArgument)

	_, err = BoostX(Make(xyz, 1, 2, 3), WithBeta(0.5))
	assert.ErrorIs(t, err, ErrCapability)
}

func TestBoostBeta3MatchesAxis(t *testing.T) {
	v := Make(xyzt, 1, 2, 3, 10)

	axis, err := BoostZ(v, WithBeta(0.6))
	require.NoError(t, err)
	got, err := BoostBeta3(v, Make(xyz, 0, 0, 0.6))
	require.NoError(t, err)
	assert.True(t, IsClose(axis, got, Tolerance{ATol: 1e-12}))

	dispatched, err := Boost(v, Make(xyz, 0, 0, 0.6))
	require.NoError(t, err)
	assert.Equal(t, got, dispatched)
}

func TestBoostToRestFrame(t *testing.T) {
	p := Make(pxyzE, 1, 2, 3, 10)

	beta, err := ToBeta3(p)
	require.NoError(t, err)
	assert.True(t, beta.Type.IsMomentum())
	assertCartesian(t, [4]float64{0.1, 0.2, 0.3, 0}, beta)

	rest, err := BoostBeta3(p, Neg(beta))
	require.NoError(t, err)
	assertCartesian(t, [4]float64{0, 0, 0, math.Sqrt(86)}, rest)

	back, err := BoostP4(rest, p)
	require.NoError(t, err)
	assertCartesian(t, [4]float64{1, 2, 3, 10}, back)
}

func TestBoostPreservesTau2(t *testing.T) {
	rng := testutil.NewRNG(4711)
	for range 100 {
		v := randomVec(rng, 4)
		b := Make(xyz, rng.Uniform(-0.5, 0.5), rng.Uniform(-0.5, 0.5), rng.Uniform(-0.5, 0.5))

		got, err := BoostBeta3(v, b)
		require.NoError(t, err)
		require.InDelta(t, v.Tau2(), got.Tau2(), 1e-6*math.Max(1, v.T2()))
		require.Equal(t, v.Type.Temporal(), got.Type.Temporal())
	}
}

func TestBoostKeepsTauStorage(t *testing.T) {
	v := Make(vtype.Vector4D(coords.RhoPhi, coords.Eta, coords.Tau), 1, 0.3, 0.5, 2)

	got, err := BoostZ(v, WithBeta(0.3))
	require.NoError(t, err)
	assert.Equal(t, coords.XY, got.Type.Azimuthal())
	assert.Equal(t, coords.Z, got.Type.Longitudinal())
	assert.Equal(t, coords.Tau, got.Type.Temporal())
	assert.Equal(t, 2.0, got.C[3])
}

func TestBoostFlavor(t *testing.T) {
	geo := Make(xyzt, 0, 0, 0, 1)

	got, err := BoostP4(geo, Make(pxyzE, 0, 0, 3, 5))
	require.NoError(t, err)
	assert.True(t, got.Type.IsMomentum())

	got, err = BoostZ(geo, WithBeta(0.1))
	require.NoError(t, err)
	assert.False(t, got.Type.IsMomentum())
}

func TestBoostDispatchErrors(t *testing.T) {
	v := Make(xyzt, 1, 2, 3, 10)

	_, err := Boost(v, Make(xy, 0.1, 0.2))
	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, "boost", argErr.Op)

	_, err = Boost(Make(xyz, 1, 2, 3), Make(xyz, 0.1, 0, 0))
	assert.ErrorIs(t, err, ErrCapability)

	_, err = BoostP4(v, Make(xyz, 1, 2, 3))
	assert.ErrorIs(t, err, ErrCapability)

	_, err = ToBeta3(Make(xyz, 1, 2, 3))
	assert.ErrorIs(t, err, ErrCapability)
}
