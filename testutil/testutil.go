package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/hepvec/coords"
)

// Span bounds the spatial components drawn by Cartesian and Columns.
const Span = 10.0

// MaxMass bounds the invariant mass drawn for four-vectors.
const MaxMass = 5.0

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Uniform returns a pseudo-random number in [lo, hi).
func (r *RNG) Uniform(lo, hi float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return lo + r.rand.Float64()*(hi-lo)
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
func (r *RNG) FillUniformRange(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*span
	}
}

// fourLocked draws x, y, z in [-Span, Span) and a forward timelike t with
// mass in [0, MaxMass). Caller must hold the lock.
func (r *RNG) fourLocked() [4]float64 {
	var c [4]float64
	for i := 0; i < 3; i++ {
		c[i] = (r.rand.Float64()*2 - 1) * Span
	}
	m := r.rand.Float64() * MaxMass
	c[3] = math.Sqrt(c[0]*c[0] + c[1]*c[1] + c[2]*c[2] + m*m)
	return c
}

// Cartesian returns random Cartesian components (x, y, z, t) of a vector of
// the given dimension. Components above dim are zero; a 4D vector is
// timelike with positive t.
func (r *RNG) Cartesian(dim int) [4]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.fourLocked()
	for i := dim; i < 4; i++ {
		c[i] = 0
	}
	return c
}

// Columns generates n random timelike four-vectors as x, y, z and t columns.
// Uses a single backing array for efficiency.
func (r *RNG) Columns(n int) (x, y, z, t []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, 4*n)
	x, y, z, t = data[:n], data[n:2*n], data[2*n:3*n], data[3*n:]
	for i := range n {
		c := r.fourLocked()
		x[i], y[i], z[i], t[i] = c[0], c[1], c[2], c[3]
	}
	return x, y, z, t
}

// Systems returns every coordinate system of the given dimension.
func Systems(dim int) []coords.System {
	var out []coords.System
	for _, s := range coords.All() {
		if s.Dim() == dim {
			out = append(out, s)
		}
	}
	return out
}

// System returns a random coordinate system of the given dimension.
func (r *RNG) System(dim int) coords.System {
	all := Systems(dim)
	return all[r.Intn(len(all))]
}

// Zipf returns a Zipfian-distributed value in [0, n).
// P(k) is proportional to 1/k^s; s=1.0 gives standard Zipf.
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s)
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	// Inverse transform on the harmonic partial sums.
	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1
		}
	}

	return n - 1
}

// Offsets generates the offsets of lists ragged lists whose lengths follow a
// Zipf distribution over [0, maxLen). Short lists (and empty ones) dominate,
// like jet or lepton multiplicities per event.
func (r *RNG) Offsets(lists, maxLen int, s float64) []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	offsets := make([]int64, lists+1)
	for i := range lists {
		offsets[i+1] = offsets[i] + int64(r.zipfLocked(maxLen, s))
	}
	return offsets
}

// SparseMask generates a validity mask with missing entries.
// missingRate is the probability that an entry is missing (0.3 = 30% missing).
func (r *RNG) SparseMask(n int, missingRate float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	present := make([]bool, n)
	for i := range n {
		present[i] = r.rand.Float64() >= missingRate
	}

	return present
}
