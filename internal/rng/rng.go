package rng

import "math/rand"

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Seeded returns a deterministic generator for the given seed.
// Useful for reproducible deals and for tests.
func Seeded(seed int64) Generator {
	return rand.New(rand.NewSource(seed))
}
