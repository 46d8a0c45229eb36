package hepvec

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hepvec/columnar"
	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/resource"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		v        Vector
		sys      coords.System
		momentum bool
	}{
		{"XY", XY(1, 2), coords.System{Azimuthal: coords.XY}, false},
		{"RhoPhi", RhoPhi(1, 2), coords.System{Azimuthal: coords.RhoPhi}, false},
		{"XYZ", XYZ(1, 2, 3), coords.System{Azimuthal: coords.XY, Longitudinal: coords.Z}, false},
		{"XYTheta", XYTheta(1, 2, 3), coords.System{Azimuthal: coords.XY, Longitudinal: coords.Theta}, false},
		{"XYEta", XYEta(1, 2, 3), coords.System{Azimuthal: coords.XY, Longitudinal: coords.Eta}, false},
		{"RhoPhiZ", RhoPhiZ(1, 2, 3), coords.System{Azimuthal: coords.RhoPhi, Longitudinal: coords.Z}, false},
		{"RhoPhiTheta", RhoPhiTheta(1, 2, 3), coords.System{Azimuthal: coords.RhoPhi, Longitudinal: coords.Theta}, false},
		{"RhoPhiEta", RhoPhiEta(1, 2, 3), coords.System{Azimuthal: coords.RhoPhi, Longitudinal: coords.Eta}, false},
		{"XYZT", XYZT(1, 2, 3, 4), coords.System{Azimuthal: coords.XY, Longitudinal: coords.Z, Temporal: coords.T}, false},
		{"XYZTau", XYZTau(1, 2, 3, 4), coords.System{Azimuthal: coords.XY, Longitudinal: coords.Z, Temporal: coords.Tau}, false},
		{"XYThetaT", XYThetaT(1, 2, 3, 4), coords.System{Azimuthal: coords.XY, Longitudinal: coords.Theta, Temporal: coords.T}, false},
		{"XYThetaTau", XYThetaTau(1, 2, 3, 4), coords.System{Azimuthal: coords.XY, Longitudinal: coords.Theta, Temporal: coords.Tau}, false},
		{"XYEtaT", XYEtaT(1, 2, 3, 4), coords.System{Azimuthal: coords.XY, Longitudinal: coords.Eta, Temporal: coords.T}, false},
		{"XYEtaTau", XYEtaTau(1, 2, 3, 4), coords.System{Azimuthal: coords.XY, Longitudinal: coords.Eta, Temporal: coords.Tau}, false},
		{"RhoPhiZT", RhoPhiZT(1, 2, 3, 4), coords.System{Azimuthal: coords.RhoPhi, Longitudinal: coords.Z, Temporal: coords.T}, false},
		{"RhoPhiZTau", RhoPhiZTau(1, 2, 3, 4), coords.System{Azimuthal: coords.RhoPhi, Longitudinal: coords.Z, Temporal: coords.Tau}, false},
		{"RhoPhiThetaT", RhoPhiThetaT(1, 2, 3, 4), coords.System{Azimuthal: coords.RhoPhi, Longitudinal: coords.Theta, Temporal: coords.T}, false},
		{"RhoPhiThetaTau", RhoPhiThetaTau(1, 2, 3, 4), coords.System{Azimuthal: coords.RhoPhi, Longitudinal: coords.Theta, Temporal: coords.Tau}, false},
		{"RhoPhiEtaT", RhoPhiEtaT(1, 2, 3, 4), coords.System{Azimuthal: coords.RhoPhi, Longitudinal: coords.Eta, Temporal: coords.T}, false},
		{"RhoPhiEtaTau", RhoPhiEtaTau(1, 2, 3, 4), coords.System{Azimuthal: coords.RhoPhi, Longitudinal: coords.Eta, Temporal: coords.Tau}, false},
		{"PxPy", PxPy(1, 2), coords.System{Azimuthal: coords.XY}, true},
		{"PtPhi", PtPhi(1, 2), coords.System{Azimuthal: coords.RhoPhi}, true},
		{"PxPyPz", PxPyPz(1, 2, 3), coords.System{Azimuthal: coords.XY, Longitudinal: coords.Z}, true},
		{"PtPhiEta", PtPhiEta(1, 2, 3), coords.System{Azimuthal: coords.RhoPhi, Longitudinal: coords.Eta}, true},
		{"PxPyPzE", PxPyPzE(1, 2, 3, 4), coords.System{Azimuthal: coords.XY, Longitudinal: coords.Z, Temporal: coords.T}, true},
		{"PxPyPzM", PxPyPzM(1, 2, 3, 4), coords.System{Azimuthal: coords.XY, Longitudinal: coords.Z, Temporal: coords.Tau}, true},
		{"PtPhiEtaM", PtPhiEtaM(1, 2, 3, 4), coords.System{Azimuthal: coords.RhoPhi, Longitudinal: coords.Eta, Temporal: coords.Tau}, true},
		{"PtPhiEtaE", PtPhiEtaE(1, 2, 3, 4), coords.System{Azimuthal: coords.RhoPhi, Longitudinal: coords.Eta, Temporal: coords.T}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.sys, tt.v.Type().System())
			assert.Equal(t, tt.momentum, tt.v.IsMomentum())

			want := []float64{1, 2, 3, 4}[:tt.v.Dim()]
			fields := tt.v.Fields()
			for i, n := range tt.v.Type().Names() {
				assert.Equal(t, want[i], fields[n], n)
			}
		})
	}
}

func TestNew(t *testing.T) {
	v, err := New(map[string]float64{"pt": 50, "eta": 1.2, "phi": 0.3, "M": 0.1})
	require.NoError(t, err)
	assert.True(t, v.IsMomentum())
	assert.Equal(t, PtPhiEtaM(50, 0.3, 1.2, 0.1), v)

	_, err = New(map[string]float64{"x": 1, "rho": 2})
	assert.ErrorIs(t, err, ErrConstruction)

	_, err = New(map[string]float64{"x": 1, "y": 2, "E": 3})
	assert.ErrorIs(t, err, ErrConstruction)
}

func TestGetters(t *testing.T) {
	p := PxPyPzE(3, 4, 12, 13.5)

	assert.Equal(t, 3.0, p.Px())
	assert.Equal(t, 5.0, p.Pt())
	assert.Equal(t, 12.0, p.Pz())
	assert.InDelta(t, 13, p.P(), 1e-12)
	assert.Equal(t, 13.5, p.E())
	assert.InDelta(t, math.Sqrt(13.5*13.5-169), p.M(), 1e-12)
	assert.InDelta(t, p.Tau(), p.M(), 0)

	g := XYZT(3, 4, 12, 13.5)
	assert.True(t, math.IsNaN(g.Px()), "momentum names need a momentum")
	assert.Equal(t, 5.0, g.Rho())
	_, err := g.Get("pt")
	assert.ErrorIs(t, err, ErrAttribute)

	v := XY(3, 4)
	assert.True(t, math.IsNaN(v.Z()))
	_, err = v.Get("eta")
	assert.ErrorIs(t, err, ErrCapability)
}

func TestScenarios(t *testing.T) {
	t.Run("isclose across systems", func(t *testing.T) {
		a, b := XY(3, 4), RhoPhi(5, 0.9272952180016122)
		assert.True(t, a.IsClose(b, DefaultTolerance))
		assert.False(t, a.Equal(b))
		assert.True(t, a.NotEqual(b))
	})

	t.Run("spacelike tau", func(t *testing.T) {
		v := XYZT(10, 0, 0, 1)
		assert.InDelta(t, -math.Sqrt(99), v.Tau(), 1e-12)
		assert.InDelta(t, 1, v.ToXYZTau().T(), 1e-12)
	})

	t.Run("cross of 4D inputs", func(t *testing.T) {
		v, err := XYZT(1, 2, 3, 7).Cross(XYZT(1, 0, 2, 9))
		require.NoError(t, err)
		assert.Equal(t, 3, v.Dim())
		assert.Equal(t, [3]float64{4, 1, -2}, [3]float64{v.X(), v.Y(), v.Z()})
	})

	t.Run("cross needs 3D", func(t *testing.T) {
		_, err := XY(1, 2).Cross(XYZ(1, 0, 2))
		assert.ErrorIs(t, err, ErrCapability)
	})
}

func TestProjections(t *testing.T) {
	p := PtPhiEtaM(50, 0.3, 1.2, 0.1)

	tests := []struct {
		name string
		fn   func(Vector) Vector
		dim  int
	}{
		{"ToXY", Vector.ToXY, 2},
		{"ToRhoPhi", Vector.ToRhoPhi, 2},
		{"ToXYZ", Vector.ToXYZ, 3},
		{"ToXYTheta", Vector.ToXYTheta, 3},
		{"ToXYEta", Vector.ToXYEta, 3},
		{"ToRhoPhiZ", Vector.ToRhoPhiZ, 3},
		{"ToRhoPhiTheta", Vector.ToRhoPhiTheta, 3},
		{"ToRhoPhiEta", Vector.ToRhoPhiEta, 3},
		{"ToXYZT", Vector.ToXYZT, 4},
		{"ToXYZTau", Vector.ToXYZTau, 4},
		{"ToXYThetaT", Vector.ToXYThetaT, 4},
		{"ToXYThetaTau", Vector.ToXYThetaTau, 4},
		{"ToXYEtaT", Vector.ToXYEtaT, 4},
		{"ToXYEtaTau", Vector.ToXYEtaTau, 4},
		{"ToRhoPhiZT", Vector.ToRhoPhiZT, 4},
		{"ToRhoPhiZTau", Vector.ToRhoPhiZTau, 4},
		{"ToRhoPhiThetaT", Vector.ToRhoPhiThetaT, 4},
		{"ToRhoPhiThetaTau", Vector.ToRhoPhiThetaTau, 4},
		{"ToRhoPhiEtaT", Vector.ToRhoPhiEtaT, 4},
		{"ToRhoPhiEtaTau", Vector.ToRhoPhiEtaTau, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn(p)
			assert.Equal(t, tt.dim, got.Dim())
			assert.True(t, got.IsMomentum())
			assert.True(t, got.IsClose(p, Tolerance{RTol: 1e-9, ATol: 1e-9}), got.String())
		})
	}

	t.Run("zero padding", func(t *testing.T) {
		v := XY(3, 4).ToXYThetaT()
		assert.Equal(t, 0.0, v.Theta())
		assert.Equal(t, 0.0, v.T())
	})
}

func TestChangeDimension(t *testing.T) {
	v := XY(1, 2)

	v3 := v.To3D(5)
	assert.Equal(t, 3, v3.Dim())
	assert.Equal(t, 5.0, v3.Z())

	v4 := v.To4D(5, 7)
	assert.Equal(t, 4, v4.Dim())
	assert.Equal(t, [2]float64{5, 7}, [2]float64{v4.Z(), v4.T()})
	assert.Equal(t, v, v4.To2D())
	assert.Equal(t, v3, v4.To3D(0))

	_, err := v.Demote(5)
	assert.ErrorIs(t, err, ErrArgument)

	_, err = v3.Promote3D(coords.Eta, 1)
	assert.ErrorIs(t, err, ErrArgument)

	p, err := v.Promote3D(coords.Eta, 1)
	require.NoError(t, err)
	assert.Equal(t, coords.Eta, p.Type().Longitudinal())

	_, err = v.To(coords.System{Azimuthal: coords.XY, Temporal: coords.T})
	assert.ErrorIs(t, err, ErrArgument)
}

func TestBoosts(t *testing.T) {
	rest := PxPyPzE(0, 0, 0, 1)

	moving, err := rest.BoostX(WithBeta(0.6))
	require.NoError(t, err)
	assert.InDelta(t, 1.25, moving.E(), 1e-12)
	assert.InDelta(t, 0.75, moving.Px(), 1e-12)

	beta, err := moving.ToBeta3()
	require.NoError(t, err)
	assert.InDelta(t, 0.6, beta.X(), 1e-12)

	back, err := moving.BoostBeta3(beta.Neg())
	require.NoError(t, err)
	assert.True(t, back.IsClose(rest, DefaultTolerance))

	_, err = rest.BoostX()
	assert.ErrorIs(t, err, ErrArgument)
	_, err = rest.BoostZ(WithBeta(0.1), WithGamma(2))
	assert.ErrorIs(t, err, ErrArgument)
}

func TestSum(t *testing.T) {
	s, err := Sum(PxPy(1, 2), XY(3, 4))
	require.NoError(t, err)
	assert.True(t, s.IsMomentum())
	assert.Equal(t, [2]float64{4, 6}, [2]float64{s.X(), s.Y()})

	_, err = Sum()
	assert.ErrorIs(t, err, ErrArgument)

	assert.Equal(t, 1, CountNonzero(XY(0, 0), XY(0, 1)))
}

func TestJSON(t *testing.T) {
	in := []Vector{PtPhiEtaM(50, 0.3, 1.2, 0.1), XYZ(1, 2, 3)}

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out []Vector
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)

	var bad Vector
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"x":1}`), &bad), ErrConstruction)
}

func TestString(t *testing.T) {
	assert.Equal(t, "Momentum2D(px=1, py=2)", PxPy(1, 2).String())
	assert.Equal(t, "Vector()", Vector{}.String())
}

func TestArrays(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	metrics := &BasicMetricsCollector{}
	opts := []Option{
		WithLogger(logger),
		WithMetricsCollector(metrics),
		WithCompression(columnar.CompressionZstd),
		WithController(resource.NewController(resource.Config{MaxWorkers: 2})),
		WithChunkSize(2),
	}

	arr, err := NewArrayOf(ctx, []Vector{PxPyPzE(1, 0, 0, 2), PxPyPzE(0, 1, 0, 2), PxPyPzE(0, 0, 1, 2)}, opts...)
	require.NoError(t, err)

	sum, err := arr.Add(ctx, columnar.Scalar(PxPyPzE(1, 1, 1, 1).Vec()))
	require.NoError(t, err)

	var block bytes.Buffer
	n, err := WriteArray(ctx, &block, sum, opts...)
	require.NoError(t, err)
	assert.Equal(t, int64(block.Len()), n)

	back, err := ReadArray(ctx, &block, opts...)
	require.NoError(t, err)
	assert.Equal(t, sum.Vectors(), back.Vectors())

	stats := metrics.GetStats()
	assert.Positive(t, stats.KernelCount)
	assert.Equal(t, int64(1), stats.EncodeCount)
	assert.Equal(t, int64(1), stats.DecodeCount)
	assert.Zero(t, stats.DecodeErrors)

	out := buf.String()
	assert.Contains(t, out, "array built")
	assert.Contains(t, out, "array written")
	assert.Contains(t, out, "array read")

	_, err = NewArray(ctx, map[string][]float64{"x": {1}, "y": {1, 2}}, opts...)
	assert.ErrorIs(t, err, ErrLengthMismatch)
	assert.Contains(t, buf.String(), "array construction failed")

	_, err = ReadArray(ctx, bytes.NewReader([]byte("HVEC not a block at all, far too short to be one")), opts...)
	assert.Error(t, err)
	assert.Equal(t, int64(1), metrics.GetStats().DecodeErrors)
}

func TestRagged(t *testing.T) {
	ctx := context.Background()

	b, err := LoadBehaviors(ctx, "ragged/testdata/behaviors.yaml")
	require.NoError(t, err)

	jets, err := NewRagged(ctx, "Jet", [][]map[string]float64{
		{{"px": 1, "py": 0, "pz": 0, "E": 2}, {"px": -1, "py": 0, "pz": 0, "E": 2}},
		{},
	}, WithBehaviors(b))
	require.NoError(t, err)
	assert.Equal(t, "Jet", jets.Behavior())

	sums, err := jets.Sum(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 4, sums.At(0).Tau(), 1e-12)

	_, err = NewRagged(ctx, "Jet", [][]map[string]float64{{{"x": 1, "y": 2}}})
	assert.ErrorIs(t, err, ErrUnknownClass, "Jet is not a default behavior")

	_, err = LoadBehaviors(ctx, "ragged/testdata/missing.yaml")
	assert.Error(t, err)
}

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError(nil))

	_, err := XY(1, 2).Type().Demote(3)
	require.Error(t, err)
	assert.ErrorIs(t, translateError(err), ErrArgument)
	assert.NotErrorIs(t, err, ErrArgument)
}
