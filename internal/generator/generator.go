// Package generator produces random, well-formed practice instances.
package generator

import (
	"math/rand"
)

// DefaultSeed is used when a caller passes seed 0
const DefaultSeed int64 = 1

// Generator draws instances from an explicit random source. It is not safe
// for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator seeded with seed; 0 selects DefaultSeed
func New(seed int64) *Generator {
	if seed == 0 {
		seed = DefaultSeed
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// NewWithRand creates a Generator sharing an existing source
func NewWithRand(r *rand.Rand) *Generator {
	if r == nil {
		return New(0)
	}
	return &Generator{rng: r}
}

// intn returns a value in [0,n); n <= 0 yields 0
func (g *Generator) intn(n int) int {
	if n <= 0 {
		return 0
	}
	return g.rng.Intn(n)
}

// between returns a value in [lo,hi)
func (g *Generator) between(lo, hi int) int {
	return lo + g.intn(hi-lo)
}

// chance returns true with probability p
func (g *Generator) chance(p float64) bool {
	return g.rng.Float64() < p
}
