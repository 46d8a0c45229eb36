// Package engine implements the vector operations independently of storage.
//
// A Vec is a descriptor plus a fixed four-slot payload. Every operation reads
// the coordinates it needs through package convert, asks package resolve for
// the result type and returns a new Vec; operands are never modified.
//
// # Result Types
//
//   - Add, Dot, Equal and IsClose demote to the smaller dimension.
//   - Subtract and the parallel/perpendicular predicates impute z = 0 for a
//     2D operand; time is never imputed.
//   - Cross always returns a 3D vector.
//   - Momentum flavor is infectious: a momentum operand makes the result
//     momentum-flavored.
//
// Computed results are stored in the resolved kinds. Scale, Unit, RotateZ and
// the boosts of tau-stored vectors keep the operand's kinds where the formula
// allows it.
//
// # Errors
//
// Operations are total over the numeric domain: singular inputs produce NaN
// or infinities. Errors are reserved for type problems:
//
//   - *ArgumentError (ErrArgument): e.g. both beta and gamma for BoostX
//   - *AttributeError (ErrAttribute): unknown coordinate or momentum synonym on
//     a geometric vector
//   - *CapabilityError (ErrCapability): e.g. Cross on a 2D vector
package engine
