package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/hepvec/coords"
	"github.com/hupe1980/hepvec/testutil"
	"github.com/hupe1980/hepvec/vtype"
)

func assertCartesian(t *testing.T, want [4]float64, v Vec) {
	t.Helper()
	x, y, z, tt := v.cartesian()
	got := [4]float64{x, y, z, tt}
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9, "component %d of %v", i, v)
	}
}

func TestRotateZ(t *testing.T) {
	got := RotateZ(Make(xy, 1, 0), math.Pi/2)
	assertCartesian(t, [4]float64{0, 1, 0, 0}, got)

	rp := RotateZ(Make(rhophi, 2, 3), 1)
	assert.Equal(t, rhophi, rp.Type)
	assert.Equal(t, 2.0, rp.C[0])
	assert.InDelta(t, 4-2*math.Pi, rp.C[1], 1e-12)

	v := Make(vtype.Momentum4D(coords.RhoPhi, coords.Eta, coords.Tau), 5, 0.1, 0.7, 3)
	r := RotateZ(v, 0.3)
	assert.Equal(t, v.Type, r.Type)
	assert.Equal(t, v.C[2], r.C[2])
	assert.Equal(t, v.C[3], r.C[3])
}

func TestRotateAxes(t *testing.T) {
	tests := []struct {
		name   string
		rotate func(Vec, float64) (Vec, error)
		in     [3]float64
		want   [4]float64
	}{
		{"x", RotateX, [3]float64{0, 1, 0}, [4]float64{0, 0, 1, 0}},
		{"y", RotateY, [3]float64{0, 0, 1}, [4]float64{1, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.rotate(Make(xyz, tt.in[:]...), math.Pi/2)
			require.NoError(t, err)
			assertCartesian(t, tt.want, got)

			_, err = tt.rotate(Make(xy, 1, 2), 1)
			assert.ErrorIs(t, err, ErrCapability)
		})
	}
}

func TestRotateKeepsTemporal(t *testing.T) {
	v := Make(vtype.Vector4D(coords.RhoPhi, coords.Theta, coords.Tau), 1, 0.2, 1.1, 7)

	got, err := RotateX(v, 0.4)
	require.NoError(t, err)
	assert.Equal(t, coords.XY, got.Type.Azimuthal())
	assert.Equal(t, coords.Z, got.Type.Longitudinal())
	assert.Equal(t, coords.Tau, got.Type.Temporal())
	assert.Equal(t, 7.0, got.C[3])
	assert.InDelta(t, v.Mag(), got.Mag(), 1e-12)
}

func TestRotateAxisMatchesRotateZ(t *testing.T) {
	rng := testutil.NewRNG(4711)
	for range 50 {
		v := randomVec(rng, 3)
		angle := rng.Uniform(-math.Pi, math.Pi)

		got, err := RotateAxis(v, Make(xyz, 0, 0, 5), angle)
		require.NoError(t, err)
		require.True(t, IsClose(RotateZ(v, angle), got, Tolerance{ATol: 1e-9}))
	}
}

func rz(a float64) *mat.Dense {
	s, c := math.Sincos(a)
	return mat.NewDense(3, 3, []float64{c, -s, 0, s, c, 0, 0, 0, 1})
}

func rx(a float64) *mat.Dense {
	s, c := math.Sincos(a)
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, c, -s, 0, s, c})
}

func TestRotateEuler(t *testing.T) {
	phi, theta, psi := 0.3, -1.1, 2.4

	var tmp, m mat.Dense
	tmp.Mul(rz(-psi), rx(-theta))
	m.Mul(&tmp, rz(-phi))

	v := Make(xyz, 1, 2, 3)
	want, err := Transform(v, &m)
	require.NoError(t, err)

	got, err := RotateEuler(v, phi, theta, psi, "zxz")
	require.NoError(t, err)
	assert.True(t, IsClose(want, got, Tolerance{ATol: 1e-12}))

	def, err := RotateEuler(v, phi, theta, psi, "")
	require.NoError(t, err)
	assert.Equal(t, got, def)

	_, err = RotateEuler(v, phi, theta, psi, "zzx")
	assert.ErrorIs(t, err, ErrArgument)
}

func TestValidEulerOrder(t *testing.T) {
	var n int
	for _, a := range "xyz" {
		for _, b := range "xyz" {
			for _, c := range "xyz" {
				if ValidEulerOrder(string([]rune{a, b, c})) {
					n++
				}
			}
		}
	}
	assert.Equal(t, 12, n)
	assert.False(t, ValidEulerOrder("xy"))
	assert.False(t, ValidEulerOrder("xwz"))
}

func TestRotateNautical(t *testing.T) {
	v := Make(xyz, 1, 0, 0)

	got, err := RotateNautical(v, 0.5, 0, 0)
	require.NoError(t, err)
	want, err := RotateEuler(v, 0, 0, 0.5, "zyx")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRotateQuaternion(t *testing.T) {
	h := math.Sqrt2 / 2

	got, err := RotateQuaternion(Make(xyz, 1, 0, 0), h, 0, 0, h)
	require.NoError(t, err)
	assertCartesian(t, [4]float64{0, 1, 0, 0}, got)

	// A non-unit quaternion scales by its squared norm.
	got, err = RotateQuaternion(Make(xyz, 1, 0, 0), 2, 0, 0, 0)
	require.NoError(t, err)
	assertCartesian(t, [4]float64{4, 0, 0, 0}, got)
}

func TestTransform(t *testing.T) {
	v := Make(vtype.Vector4D(coords.RhoPhi, coords.Eta, coords.T), 2, 0.4, 0.3, 9)

	id := mat.NewDiagDense(4, []float64{1, 1, 1, 1})
	got, err := Transform(v, id)
	require.NoError(t, err)
	assert.Equal(t, xyzt, got.Type)
	assert.True(t, IsClose(v, got, DefaultTolerance))

	flip := mat.NewDiagDense(4, []float64{1, 1, 1, -1})
	got, err = Transform(v, flip)
	require.NoError(t, err)
	assert.InDelta(t, -9.0, got.T(), 1e-12)

	_, err = Transform(v, mat.NewDiagDense(3, []float64{1, 1, 1}))
	assert.ErrorIs(t, err, ErrArgument)
}
