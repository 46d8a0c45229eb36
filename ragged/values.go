package ragged

// Values holds one scalar per element, grouped into the lists of the array
// it was computed from.
type Values[T any] struct {
	offsets []int64
	data    []T
}

// Len returns the number of lists.
func (v *Values[T]) Len() int { return len(v.offsets) - 1 }

// List returns the values of list i. The slice shares memory with v.
func (v *Values[T]) List(i int) []T {
	return v.data[v.offsets[i]:v.offsets[i+1]:v.offsets[i+1]]
}

// Flat returns the values of all lists. The slice shares memory with v.
func (v *Values[T]) Flat() []T { return v.data }

// Offsets returns a copy of the list offsets.
func (v *Values[T]) Offsets() []int64 { return append([]int64(nil), v.offsets...) }
