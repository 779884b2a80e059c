// Package sampler draws uniform random subsets from a complete population.
package sampler

import (
	"math/rand/v2"
	"time"
)

// NewRand returns a PCG-backed source. A zero seed draws one from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Draw returns min(n, len(population)) distinct members of population,
// chosen uniformly without replacement. population is not modified. The
// result is never nil.
func Draw[T any](rng *rand.Rand, population []T, n int) []T {
	if n > len(population) {
		n = len(population)
	}
	if n <= 0 {
		return []T{}
	}

	pool := make([]T, len(population))
	copy(pool, population)
	// Partial Fisher-Yates: pool[:i] holds the picks so far.
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n:n]
}
