// Package randx contains the random sources used by the simulator.
package randx

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/ooni/linkemu/internal/model"
)

// Source is a seeded [model.RandomSource] safe for concurrent use. The
// same seed always produces the same sequence, which makes a simulated
// link reproducible.
type Source struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

var _ model.RandomSource = &Source{}

// NewSource creates a [Source] using the given seed.
func NewSource(seed uint64) *Source {
	return &Source{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewSourceFromTime creates a [Source] seeded with the current time.
func NewSourceFromTime() *Source {
	return NewSource(uint64(time.Now().UnixNano()))
}

// Float64 implements model.RandomSource.
func (s *Source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}

// IntN implements model.RandomSource.
func (s *Source) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.IntN(n)
}

// IntRange returns a number in the closed interval [lo, hi]. The
// caller MUST ensure that lo <= hi. When the interval holds more than
// [math.MaxInt] values, the result is in [lo, lo+math.MaxInt) instead.
func IntRange(rng model.RandomSource, lo, hi int) int {
	if span := hi - lo; span >= 0 && span < math.MaxInt {
		return lo + rng.IntN(span+1)
	}
	return lo + rng.IntN(math.MaxInt)
}
