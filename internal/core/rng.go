package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// IntRange returns a uniformly random integer in [lo, hi]. The bounds may be
// given in either order.
func (r *RNG) IntRange(lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo + r.r.IntN(hi-lo+1)
}

// Uint8Range returns a uniformly random uint8 in [lo, hi].
func (r *RNG) Uint8Range(lo, hi uint8) uint8 {
	return uint8(r.IntRange(int(lo), int(hi)))
}

// Pick returns a random index in [0, n). It returns 0 when n <= 0.
func (r *RNG) Pick(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
