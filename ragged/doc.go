// Package ragged stores lists of vectors of varying length, such as the
// particles of each collision event.
//
// An Array is a flat columnar.Array plus list offsets. Element-wise
// operations run on the flat array; binary operations require both operands
// to have the same list lengths. Reductions (Sum, Count, CountNonzero) yield
// one value per list.
//
// # Behaviors
//
// Every array carries a class name from a Behaviors value. Results of
// operations get the class Behaviors.ResultClass picks for the two operand
// classes and the result type, so a user class like "Jet" survives
// operations that keep the type. Classes can be loaded from YAML:
//
//	classes:
//	  - name: Jet
//	    parent: Momentum4D
//	    projection4d: Jet
//	    momentum: Jet
//
// Behaviors are explicit values; there is no package-level registry.
package ragged
