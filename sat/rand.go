package sat

import (
	"math/rand"
	"time"
)

// Random is the source of randomness injected into the solver. Both the
// initial assignment and the search steps draw exclusively from it, so the
// whole search is deterministic given a seeded source.
type Random interface {
	// Intn returns a uniformly random integer in [0, n). It panics if n <= 0.
	Intn(n int) int

	// Percent returns true with probability p/100. Values of p at or below 0
	// always return false; values at or above 100 always return true.
	Percent(p int) bool
}

// mathRandom is the default Random backed by math/rand.
type mathRandom struct {
	rng *rand.Rand
}

// NewRandom returns a Random backed by math/rand with the given seed.
func NewRandom(seed int64) Random {
	return &mathRandom{rng: rand.New(rand.NewSource(seed))}
}

// newTimeSeededRandom returns a Random seeded with the current time.
func newTimeSeededRandom() Random {
	return NewRandom(time.Now().UnixNano())
}

func (r *mathRandom) Intn(n int) int {
	return r.rng.Intn(n)
}

func (r *mathRandom) Percent(p int) bool {
	if p <= 0 {
		return false
	}
	if p >= 100 {
		return true
	}
	return r.rng.Intn(100) < p
}
