// Package testutil provides testing utilities for hepvec.
//
// This package is intended for use in tests and benchmarks only.
// It generates random vectors in every coordinate system, columns for the
// columnar backend and list offsets for the ragged backend.
//
// # Random Vectors
//
//	rng := testutil.NewRNG(seed)
//	c := rng.Cartesian(4)        // x, y, z, t of a timelike four-vector
//	sys := rng.System(4)         // e.g. rhophi_eta_tau
//
// # Backends
//
//	x, y, z, t := rng.Columns(1024)
//	offsets := rng.Offsets(100, 8, 1.5)
//	mask := rng.SparseMask(1024, 0.1)
package testutil
