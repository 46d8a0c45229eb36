package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/vtype"
)

var ptPhiEtaM = vtype.Momentum4D(coords.RhoPhi, coords.Eta, coords.Tau)

func TestDeltaPhi(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"small", 0.5, 0.2, 0.3},
		{"wraps positive", 3, -3, 6 - 2*math.Pi},
		{"wraps negative", -3, 3, 2*math.Pi - 6},
		{"half turn", math.Pi / 2, -math.Pi / 2, -math.Pi},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeltaPhi(Make(rhophi, 1, tt.a), Make(rhophi, 1, tt.b))
			assert.InDelta(t, tt.want, got, 1e-12)
			assert.GreaterOrEqual(t, got, -math.Pi)
			assert.Less(t, got, math.Pi)
		})
	}
}

func TestDeltaR(t *testing.T) {
	a := Make(ptPhiEtaM, 10, 0.1, 0.4, 1)
	b := Make(ptPhiEtaM, 20, 0.4, 0.0, 2)

	deta, err := DeltaEta(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 0.4, deta, 1e-12)

	r2, err := DeltaR2(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, r2, 1e-12)

	r, err := DeltaR(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, r, 1e-12)

	_, err = DeltaR(a, Make(xy, 1, 2))
	assert.ErrorIs(t, err, ErrCapability)
}

func TestDeltaRapidityPhi(t *testing.T) {
	a := Make(pxyzE, 1, 0, 0, 5)
	b := Make(pxyzE, 0, 1, 3, 5)

	r2, err := DeltaRapidityPhi2(a, b)
	require.NoError(t, err)
	dy := a.Rapidity() - b.Rapidity()
	assert.InDelta(t, math.Pi*math.Pi/4+dy*dy, r2, 1e-12)

	r, err := DeltaRapidityPhi(a, b)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(r2), r, 1e-15)

	_, err = DeltaRapidityPhi(a, Make(xyz, 1, 2, 3))
	assert.ErrorIs(t, err, ErrCapability)
}

func TestDeltaAngle(t *testing.T) {
	got, err := DeltaAngle(Make(xyz, 1, 0, 0), Make(xyz, 0, 0, 2))
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, got, 1e-12)

	got, err = DeltaAngle(Make(xyz, 1, 1, 1), Make(xyz, 2, 2, 2))
	require.NoError(t, err)
	assert.InDelta(t, 0, got, 1e-7)

	_, err = DeltaAngle(Make(xy, 1, 0), Make(xyz, 0, 0, 2))
	assert.ErrorIs(t, err, ErrCapability)
}

func TestDirectionPredicates(t *testing.T) {
	tol := DefaultAngleTolerance
	a := Make(xyz, 1, 2, 3)

	assert.True(t, IsParallel(a, Make(xyz, 2, 4, 6), tol))
	assert.False(t, IsParallel(a, Make(xyz, -2, -4, -6), tol))
	assert.True(t, IsAntiparallel(a, Make(xyz, -2, -4, -6), tol))
	assert.False(t, IsAntiparallel(a, Make(xyz, 2, 4, 6), tol))
	assert.True(t, IsPerpendicular(a, Make(xyz, 3, 0, -1), tol))
	assert.False(t, IsPerpendicular(a, Make(xyz, 2, 4, 6), tol))
	// Perpendicularity is symmetric in the sign of the dot product.
	assert.False(t, IsPerpendicular(a, Make(xyz, -2, -4, -6), tol))

	assert.True(t, IsParallel(Make(xy, 1, 1), Make(rhophi, 3, math.Pi/4), tol))
}

func TestLorentzPredicates(t *testing.T) {
	tests := []struct {
		name                           string
		v                              Vec
		timelike, spacelike, lightlike bool
	}{
		{"timelike", Make(xyzt, 0, 0, 1, 5), true, false, false},
		{"spacelike", Make(xyzt, 0, 0, 5, 1), false, true, false},
		{"lightlike", Make(xyzt, 3, 4, 0, 5), false, false, true},
		{"tau stored", Make(ptPhiEtaM, 10, 0, 1, 2), true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsTimelike(tt.v, DefaultLightlikeTolerance)
			require.NoError(t, err)
			assert.Equal(t, tt.timelike, got)

			got, err = IsSpacelike(tt.v, DefaultLightlikeTolerance)
			require.NoError(t, err)
			assert.Equal(t, tt.spacelike, got)

			got, err = IsLightlike(tt.v, DefaultLightlikeTolerance)
			require.NoError(t, err)
			assert.Equal(t, tt.lightlike, got)
		})
	}

	_, err := IsTimelike(Make(xyz, 1, 2, 3), 0)
	assert.ErrorIs(t, err, ErrCapability)
}
