package core

import (
	"math/rand"
	"time"
)

// NewRand returns a deterministic random source for the given seed.
// Seed 0 means "seed from the current time".
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
