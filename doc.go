// Package hepvec provides two, three and four dimensional vectors for
// geometry and high energy physics, with Lorentz vectors and their
// kinematics.
//
// A vector carries its coordinate system: an azimuthal kind (x, y or
// rho, phi), an optional longitudinal kind (z, theta or eta) and an optional
// temporal kind (t or tau). Every coordinate can be read from every system;
// operations convert internally and resolve the result type from their
// operands.
//
// # Quick Start
//
// Single vectors:
//
//	p1 := hepvec.PxPyPzE(1, 0, 0, 5)
//	p2 := hepvec.PxPyPzE(-1, 0, 0, 5)
//	fmt.Println(p1.Add(p2).M()) // 10
//
//	v, _ := hepvec.New(map[string]float64{"pt": 50, "eta": 1.2, "phi": 0.3, "M": 0.1})
//	fmt.Println(v.Pz(), v.E())
//
// Flat arrays (one column per coordinate, evaluated in parallel chunks):
//
//	jets, _ := hepvec.NewArray(ctx, map[string][]float64{"pt": pt, "eta": eta, "phi": phi, "mass": m})
//	pairs, _ := jets.Add(ctx, others)
//	masses, _ := pairs.Column(ctx, "mass")
//
// Ragged arrays (a list of vectors per event) with behavior classes:
//
//	b, _ := hepvec.LoadBehaviors(ctx, "behaviors.yaml")
//	jets, _ := hepvec.NewRagged(ctx, "Jet", lists, hepvec.WithBehaviors(b))
//	sums, _ := jets.Sum(ctx)
//
// # Result Types
//
//   - Mixed dimensions demote to the lower one.
//   - A momentum operand makes the result a momentum.
//   - Equal kinds are kept, otherwise the result is Cartesian.
//
// # Errors
//
// Construction and argument errors are returned at the call and match the
// sentinels of this package with errors.Is. Domain problems (the eta of a
// vector along the beam, the tau of a spacelike vector) are IEEE-754 values,
// not errors.
//
// # Persistence
//
// WriteArray and ReadArray store a flat array as one checksummed block with
// optional zstd or lz4 compression.
package hepvec
