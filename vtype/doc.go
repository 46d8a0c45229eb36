// Package vtype describes the type of a vector independently of its storage.
//
// A Descriptor combines the dimension, the azimuthal, longitudinal and
// temporal coordinate kinds and the momentum flavor. Descriptors are small
// comparable values and can be used directly as map keys for dispatch.
//
// # Construction
//
// FromNames infers a descriptor from the names of the supplied fields:
//
//	d, slots, err := vtype.FromNames([]string{"pt", "phi", "eta", "mass"})
//	// d == Momentum4D(pt, phi, eta, M), slots == [0 1 2 3]
//
// The lookup table behind FromNames is keyed by the sorted canonical field
// set and is built once at package initialization. Unknown names, two names
// for the same field (x and px) and incomplete sets fail with a
// *ConstructionError.
//
// # Projection
//
// Demote drops slices. Promotion never invents a kind: WithLongitudinal and
// WithTemporal name the kind explicitly and the caller supplies the values.
package vtype
