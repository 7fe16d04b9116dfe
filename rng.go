package statevec

import (
	"math/rand"
	"sort"
)

// RNG is a seed-owning random source. The harness and tests pass one
// explicitly instead of touching process-global state, so every run is
// reproducible from its seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates an RNG with the given seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the seed this RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Float64Range returns a uniform value in [min, max).
func (r *RNG) Float64Range(min, max float64) float64 {
	return min + r.rand.Float64()*(max-min)
}

// Complex returns a value whose real and imaginary parts are drawn
// uniformly between the corresponding parts of min and max.
func (r *RNG) Complex(min, max complex128) complex128 {
	re := r.Float64Range(real(min), real(max))
	im := r.Float64Range(imag(min), imag(max))

	return complex(re, im)
}

// SortedDistinct draws k distinct values from [0, n) and returns them in
// increasing order, the form the multi-control appliers require. It panics
// when k is outside [0, n], mirroring the rand package's own contract
// violations.
func (r *RNG) SortedDistinct(k, n int) []int {
	if k < 0 || k > n {
		panic("statevec: SortedDistinct requires 0 <= k <= n")
	}

	picks := append([]int(nil), r.rand.Perm(n)[:k]...)
	sort.Ints(picks)

	return picks
}
