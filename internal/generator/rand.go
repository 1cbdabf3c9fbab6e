package generator

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Rand is the randomness source the generators draw from. Tests inject a
// seeded instance to pin outputs.
type Rand interface {
	IntN(n int) int
}

// LockedRand is a PCG-backed source safe for concurrent draws. One instance
// is shared by every component that samples at request time, so the lock
// lives here rather than in each consumer.
type LockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRand returns a seeded LockedRand. A zero seed falls back to the clock.
func NewRand(seed int64) *LockedRand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &LockedRand{r: rand.New(rand.NewPCG(uint64(seed), uint64(seed)))}
}

// IntN draws a uniform integer from [0, n).
func (l *LockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

// between draws a uniform integer from [lo, hi], both inclusive.
func between(r Rand, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
