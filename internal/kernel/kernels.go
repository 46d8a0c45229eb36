package kernel

import "math"

// Bound at init; Use rebinds them.
var (
	kernelAddProducts = addProductsGeneric
	kernelSubProducts = subProductsGeneric
)

func bind(k Kind) {
	switch k {
	case FMA:
		kernelAddProducts = addProductsFMA
		kernelSubProducts = subProductsFMA
	default:
		kernelAddProducts = addProductsGeneric
		kernelSubProducts = subProductsGeneric
	}
}

// Use switches the active kernel and returns the previous one. It is meant
// for tests and benchmarks and must not race with running kernels.
// An unavailable kind leaves the active kernel unchanged.
func Use(k Kind) Kind {
	prev := active
	if available(k) {
		active = k
		bind(k)
	}
	return prev
}

// AddProducts computes dst[i] += a[i]*b[i].
//
// SAFETY: Assumes len(a) and len(b) are at least len(dst).
func AddProducts(dst, a, b []float64) {
	kernelAddProducts(dst, a, b)
}

// SubProducts computes dst[i] -= a[i]*b[i].
//
// SAFETY: Assumes len(a) and len(b) are at least len(dst).
func SubProducts(dst, a, b []float64) {
	kernelSubProducts(dst, a, b)
}

// The explicit conversions keep the compiler from fusing the generic loops.
func addProductsGeneric(dst, a, b []float64) {
	a, b = a[:len(dst)], b[:len(dst)]
	for i := range dst {
		dst[i] += float64(a[i] * b[i])
	}
}

func subProductsGeneric(dst, a, b []float64) {
	a, b = a[:len(dst)], b[:len(dst)]
	for i := range dst {
		dst[i] -= float64(a[i] * b[i])
	}
}

func addProductsFMA(dst, a, b []float64) {
	a, b = a[:len(dst)], b[:len(dst)]
	for i := range dst {
		dst[i] = math.FMA(a[i], b[i], dst[i])
	}
}

func subProductsFMA(dst, a, b []float64) {
	a, b = a[:len(dst)], b[:len(dst)]
	for i := range dst {
		dst[i] = math.FMA(-a[i], b[i], dst[i])
	}
}
