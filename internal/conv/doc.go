// Package conv provides checked integer conversions.
//
// They guard the places where counts cross type boundaries: element indices
// stored in uint32 roaring bitmaps, and element counts and list offsets read
// back from encoded blocks.
package conv
