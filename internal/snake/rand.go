package snake

import (
	"math/rand"
	"time"
)

// Rand is the random source used for food placement.
// *rand.Rand satisfies it; tests inject scripted sources.
type Rand interface {
	Intn(n int) int
}

// ResolveSeed returns seed, or a clock-derived seed when seed is zero.
// Callers record the resolved value so a game can be replayed.
func ResolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// NewRand returns a generator for the given seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
