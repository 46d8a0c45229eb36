package convert

import "math"

// RhoFromXY returns the transverse radius.
func RhoFromXY(x, y float64) float64 { return math.Hypot(x, y) }

// PhiFromXY returns the azimuthal angle in (-pi, pi].
func PhiFromXY(x, y float64) float64 { return math.Atan2(y, x) }

// XFromRhoPhi returns rho*cos(phi).
func XFromRhoPhi(rho, phi float64) float64 { return rho * math.Cos(phi) }

// YFromRhoPhi returns rho*sin(phi).
func YFromRhoPhi(rho, phi float64) float64 { return rho * math.Sin(phi) }

// ThetaFromZ returns the polar angle in [0, pi].
func ThetaFromZ(rho, z float64) float64 { return math.Atan2(rho, z) }

// ThetaFromEta returns 2*atan(exp(-eta)).
func ThetaFromEta(eta float64) float64 { return 2 * math.Atan(math.Exp(-eta)) }

// EtaFromZ returns the pseudorapidity asinh(z/rho).
// NaN z gives NaN, rho = 0 gives a signed infinity for z != 0 and NaN for z = 0.
func EtaFromZ(rho, z float64) float64 { return math.Asinh(z / rho) }

// EtaFromTheta returns -ln(tan(theta/2)), with the poles mapped to +Inf and -Inf.
func EtaFromTheta(theta float64) float64 {
	switch theta {
	case 0:
		return math.Inf(1)
	case math.Pi:
		return math.Inf(-1)
	}
	return -math.Log(math.Tan(theta / 2))
}

// ZFromTheta returns rho*cot(theta). At the poles it is a signed infinity,
// unless rho is 0, in which case z is 0.
func ZFromTheta(rho, theta float64) float64 {
	if rho == 0 && !math.IsNaN(theta) {
		return 0
	}
	switch theta {
	case 0:
		return math.Copysign(math.Inf(1), rho)
	case math.Pi:
		return math.Copysign(math.Inf(1), -rho)
	}
	return rho / math.Tan(theta)
}

// ZFromEta returns rho*sinh(eta).
func ZFromEta(rho, eta float64) float64 {
	if rho == 0 && !math.IsNaN(eta) {
		return 0
	}
	return rho * math.Sinh(eta)
}

// TauFromT returns the signed proper time for time t and squared spatial
// magnitude mag2. Spacelike vectors yield a negative value.
func TauFromT(t, mag2 float64) float64 {
	tau2 := t*t - mag2
	return math.Copysign(math.Sqrt(math.Abs(tau2)), tau2)
}

// TFromTau reconstructs t from the signed proper time. The result is never
// negative: a radicand at or below zero yields exactly 0.
func TFromTau(tau, mag2 float64) float64 {
	return math.Sqrt(T2FromTau(tau, mag2))
}

// T2FromTau is the square of TFromTau.
func T2FromTau(tau, mag2 float64) float64 {
	return math.Max(math.Copysign(tau*tau, tau)+mag2, 0)
}

// Tau2FromTau returns the signed square of the proper time.
func Tau2FromTau(tau float64) float64 { return math.Copysign(tau*tau, tau) }

// Rectify maps an angle onto [-pi, pi).
func Rectify(phi float64) float64 {
	r := math.Mod(phi+math.Pi, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	return r - math.Pi
}
