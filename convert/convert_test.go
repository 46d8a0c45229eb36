package convert

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/hepvec/coords"
)

func assertClose(t *testing.T, want, got float64, msgAndArgs ...any) {
	t.Helper()
	tol := 1e-12 + 1e-9*math.Abs(want)
	assert.InDelta(t, want, got, tol, msgAndArgs...)
}

var (
	xy       = coords.System{Azimuthal: coords.XY}
	rhophi   = coords.System{Azimuthal: coords.RhoPhi}
	xyz      = coords.System{Azimuthal: coords.XY, Longitudinal: coords.Z}
	xytheta  = coords.System{Azimuthal: coords.XY, Longitudinal: coords.Theta}
	xyeta    = coords.System{Azimuthal: coords.XY, Longitudinal: coords.Eta}
	xyzt     = coords.System{Azimuthal: coords.XY, Longitudinal: coords.Z, Temporal: coords.T}
	xyztau   = coords.System{Azimuthal: coords.XY, Longitudinal: coords.Z, Temporal: coords.Tau}
	rhophiet = coords.System{Azimuthal: coords.RhoPhi, Longitudinal: coords.Eta, Temporal: coords.Tau}
)

func TestAzimuthal(t *testing.T) {
	c := [4]float64{3, 4}
	assert.Equal(t, 5.0, Rho(xy, c))
	assert.Equal(t, 25.0, Rho2(xy, c))
	assert.Equal(t, math.Atan2(4, 3), Phi(xy, c))

	p := [4]float64{5, 0.9272952180016122}
	assert.Equal(t, 5.0, Rho(rhophi, p))
	assert.Equal(t, 25.0, Rho2(rhophi, p))
	assert.Equal(t, 0.9272952180016122, Phi(rhophi, p))
	assertClose(t, 3, X(rhophi, p))
	assertClose(t, 4, Y(rhophi, p))
}

func TestAzimuthalRoundTrip(t *testing.T) {
	samples := [][2]float64{{3, 4}, {-1, 2}, {-2.5, -7}, {1e-3, -4e3}, {0.1, 0}}
	for _, s := range samples {
		c := [4]float64{s[0], s[1]}
		p := [4]float64{Rho(xy, c), Phi(xy, c)}
		assertClose(t, s[0], X(rhophi, p))
		assertClose(t, s[1], Y(rhophi, p))

		back := [4]float64{X(rhophi, p), Y(rhophi, p)}
		assertClose(t, p[0], Rho(xy, back))
		assertClose(t, p[1], Phi(xy, back))
	}
}

func TestLongitudinalRoundTrip(t *testing.T) {
	samples := [][3]float64{{1, 2, 3}, {-1, 0.5, -4}, {2, 2, 0}, {0.3, -0.2, 12}}
	for _, s := range samples {
		c := [4]float64{s[0], s[1], s[2]}
		rho := Rho(xyz, c)

		theta := Theta(xyz, c)
		ct := [4]float64{s[0], s[1], theta}
		assertClose(t, s[2], Z(xytheta, ct), "z via theta")
		assertClose(t, Eta(xyz, c), Eta(xytheta, ct), "eta via theta")

		eta := Eta(xyz, c)
		ce := [4]float64{s[0], s[1], eta}
		assertClose(t, s[2], Z(xyeta, ce), "z via eta")
		assertClose(t, theta, Theta(xyeta, ce), "theta via eta")

		assertClose(t, rho*rho+s[2]*s[2], Mag2(xyeta, ce))
		assertClose(t, Mag(xyz, c), Mag(xytheta, ct))
	}
}

func TestLongitudinalSingularities(t *testing.T) {
	tests := []struct {
		name string
		rho  float64
		z    float64
		eta  float64
	}{
		{"PositiveAxis", 0, 5, math.Inf(1)},
		{"NegativeAxis", 0, -5, math.Inf(-1)},
		{"Origin", 0, 0, math.NaN()},
		{"NaNZ", 1, math.NaN(), math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EtaFromZ(tt.rho, tt.z)
			if math.IsNaN(tt.eta) {
				assert.True(t, math.IsNaN(got))
				return
			}
			assert.Equal(t, tt.eta, got)
		})
	}

	assert.Equal(t, math.Inf(1), ZFromTheta(2, 0))
	assert.Equal(t, math.Inf(-1), ZFromTheta(2, math.Pi))
	assert.Equal(t, 0.0, ZFromTheta(0, 0))
	assert.Equal(t, math.Inf(1), EtaFromTheta(0))
	assert.Equal(t, math.Inf(-1), EtaFromTheta(math.Pi))
	assert.Equal(t, 0.0, ZFromEta(0, math.Inf(1)))

	zero := [4]float64{0, 0, 0}
	assert.Equal(t, 0.0, CosTheta(xyz, zero))
	assert.Equal(t, math.Inf(1), CotTheta(xyz, [4]float64{0, 0, 3}))
	assert.Equal(t, math.Inf(-1), CotTheta(xytheta, [4]float64{1, 0, math.Pi}))
}

func TestNativePassthrough(t *testing.T) {
	c := [4]float64{12.5, -2.1, 1.7, 0.139}
	assert.Equal(t, 12.5, Rho(rhophiet, c))
	assert.Equal(t, -2.1, Phi(rhophiet, c))
	assert.Equal(t, 1.7, Eta(rhophiet, c))
	assert.Equal(t, 0.139, Tau(rhophiet, c))
	assert.Equal(t, math.Tanh(1.7), CosTheta(rhophiet, c))
	assert.Equal(t, math.Sinh(1.7), CotTheta(rhophiet, c))
}

func TestProperTime(t *testing.T) {
	t.Run("Timelike", func(t *testing.T) {
		c := [4]float64{1, 2, 3, 10}
		tau := Tau(xyzt, c)
		assertClose(t, math.Sqrt(100-14), tau)
		assertClose(t, 10, T(xyztau, [4]float64{1, 2, 3, tau}))
	})

	t.Run("SpacelikeNegativeTau", func(t *testing.T) {
		c := [4]float64{10, 0, 0, 1}
		tau := Tau(xyzt, c)
		assert.Less(t, tau, 0.0)
		assert.InDelta(t, -9.95, tau, 1e-3)
		assertClose(t, -99, Tau2(xyzt, c))
		assertClose(t, 1, T(xyztau, [4]float64{10, 0, 0, tau}))
	})

	t.Run("WrongDirectionLosesSign", func(t *testing.T) {
		c := [4]float64{0, 0, 0, -5}
		tau := Tau(xyzt, c)
		assert.Equal(t, 5.0, tau)
		assert.Equal(t, 5.0, T(xyztau, [4]float64{0, 0, 0, tau}))
	})

	t.Run("TruncatedToZero", func(t *testing.T) {
		// copysign(tau^2, tau) + mag^2 = -25 + 9 < 0
		c := [4]float64{3, 0, 0, -5}
		assert.Equal(t, 0.0, T(xyztau, c))
		assert.Equal(t, 0.0, T2(xyztau, c))
	})

	t.Run("Boundary", func(t *testing.T) {
		// copysign(tau^2, tau) + mag^2 = -9 + 9 = 0 exactly
		c := [4]float64{3, 0, 0, -3}
		assert.Equal(t, 0.0, T(xyztau, c))

		// just above the boundary the value is the plain square root
		c = [4]float64{3, 0, 0, -2.999}
		assertClose(t, math.Sqrt(9-2.999*2.999), T(xyztau, c))
	})
}

func TestLorentzDerived(t *testing.T) {
	c := [4]float64{3, 4, 0, 10}
	assertClose(t, 0.5, Beta(xyzt, c))
	assertClose(t, 10/math.Sqrt(75), Gamma(xyzt, c))
	assert.Equal(t, 0.0, Rapidity(xyzt, c))
	assertClose(t, 100, Mt2(xyzt, c))
	assertClose(t, 10, Mt(xyzt, c))
	assertClose(t, 100, Et2(xyzt, c))
	assertClose(t, 10, Et(xyzt, c))
	assert.Equal(t, 0.0, Beta(xyzt, [4]float64{}))

	r := [4]float64{0, 0, 3, 5}
	assertClose(t, 0.5*math.Log(8.0/2.0), Rapidity(xyzt, r))
}

func TestRectify(t *testing.T) {
	assertClose(t, 0, Rectify(2*math.Pi))
	assertClose(t, -math.Pi, Rectify(math.Pi))
	assertClose(t, math.Pi/2, Rectify(-3*math.Pi/2))
	assertClose(t, -0.5, Rectify(-0.5))
}

func TestLookup(t *testing.T) {
	c, ok := Lookup("pt")
	require.True(t, ok)
	assert.Equal(t, "rho", c.Name)
	assert.True(t, c.Momentum)
	assert.Equal(t, 2, c.MinDim)

	c, ok = Lookup("mass")
	require.True(t, ok)
	assert.Equal(t, "tau", c.Name)
	assert.Equal(t, 4, c.MinDim)

	c, ok = Lookup("cottheta")
	require.True(t, ok)
	assert.False(t, c.Momentum)
	assert.Equal(t, 3, c.MinDim)

	_, ok = Lookup("velocity")
	assert.False(t, ok)
	assert.Contains(t, Names(), "rapidity")
}
