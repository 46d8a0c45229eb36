// Package convert computes any coordinate of a vector from whichever native
// coordinates it stores.
//
// Every function is pure and works element by element, so collection backends
// can run them in parallel over columns without coordination.
//
// # Layout
//
// Dispatchers take a coords.System and the fixed four-slot payload:
//
//	c[0], c[1]  azimuthal   (x, y) or (rho, phi)
//	c[2]        longitudinal z, theta or eta
//	c[3]        temporal     t or tau
//
// Slices the system does not carry read as zero: a 2D vector has z = 0 and
// a 3D vector has t = 0. Callers that must reject such requests check the
// dimension first.
//
// # Numeric Policy
//
// A coordinate that is stored natively is returned as stored. Otherwise the
// direct formula for the stored kind is used, e.g. z from eta is
// rho*sinh(eta) rather than a detour through theta.
//
// Singularities produce NaN or signed infinity, never a panic:
//
//   - eta with rho = 0 and z != 0 is +Inf or -Inf
//   - eta with rho = 0 and z = 0 is NaN
//   - z from theta = 0 or pi is +Inf or -Inf (0 when rho = 0)
//
// # Proper Time
//
// tau is signed: spacelike vectors (mag > |t|) carry a negative tau.
// Reconstructing t from tau uses
//
//	t = sqrt(max(copysign(tau*tau, tau) + mag*mag, 0))
//
// so t is never negative. A timelike vector with negative t loses its sign on
// a T -> Tau -> T round trip, and t is exactly 0 whenever the radicand is not
// positive.
package convert
