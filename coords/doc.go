// Package coords defines the closed set of coordinate kinds a vector can be
// stored in, together with the field names and momentum synonyms of each kind.
//
// A vector is split into three independent slices:
//
//   - Azimuthal: the transverse plane, stored as XY (x, y) or RhoPhi (rho, phi)
//   - Longitudinal: the beam axis, stored as Z (z), Theta (theta) or Eta (eta)
//   - Temporal: stored as T (t) or Tau (tau)
//
// # Momentum Synonyms
//
// Momentum-flavored vectors expose additional names for the same fields:
//
//	x   -> px          z   -> pz
//	y   -> py          t   -> E, energy, e
//	rho -> pt          tau -> M, mass, m
//
// Synonyms are presentational only. They never change stored values.
package coords
