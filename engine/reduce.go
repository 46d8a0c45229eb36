package engine

// Sum folds vs with Add, so mixed dimensions and kinds resolve exactly as
// they do for pairwise addition.
func Sum(vs []Vec) (Vec, error) {
	if len(vs) == 0 {
		return Vec{}, argumentError("sum", "no vectors to sum", nil)
	}
	acc := vs[0]
	for _, v := range vs[1:] {
		acc = Add(acc, v)
	}
	return acc, nil
}

// Count returns the number of vectors.
func Count(vs []Vec) int { return len(vs) }

// IsNonzero reports whether any of rho^2, z or t^2 is nonzero.
func IsNonzero(v Vec) bool {
	if v.Rho2() != 0 {
		return true
	}
	if v.Dim() >= 3 && v.Z() != 0 {
		return true
	}
	return v.Dim() == 4 && v.T2() != 0
}

// CountNonzero returns the number of vectors for which IsNonzero holds.
func CountNonzero(vs []Vec) int {
	n := 0
	for _, v := range vs {
		if IsNonzero(v) {
			n++
		}
	}
	return n
}
