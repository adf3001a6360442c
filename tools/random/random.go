package random

import "math/rand/v2"

// #nosec G404 -- Using math/rand is acceptable for non-cryptographic randomness

// Source is a random number generator for data generation.
// A Source is not safe for concurrent use.
type Source struct {
	rand *rand.Rand
}

// New returns a Source seeded with seed.
// A zero seed picks a random seed so every run differs.
func New(seed uint64) *Source {
	if seed == 0 {
		seed = rand.Uint64() // #nosec G404
	}
	return &Source{rand: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))} // #nosec G404
}

// Int returns a random integer within the specified range [min, max]
func (s *Source) Int(min, max int) int {
	return min + s.rand.IntN(max-min+1)
}

// Float returns a random float64 within the specified range [min, max)
func (s *Source) Float(min, max float64) float64 {
	return min + s.rand.Float64()*(max-min)
}
