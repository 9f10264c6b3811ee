package vmath

import (
	"math/rand"
	"time"
)

// Rand is the random source threaded through gameplay updates
// *rand.Rand satisfies it
type Rand interface {
	Intn(n int) int
}

// NewRand returns a seeded source, seed 0 selects a time-based seed
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Chance rolls a percent check, true with probability percent/100
func Chance(r Rand, percent int) bool {
	return r.Intn(100) < percent
}

// SequenceRand replays a fixed list of values for deterministic tests
// Each value is reduced modulo n, once exhausted Intn returns n-1 which fails every Chance roll
type SequenceRand struct {
	values []int
	next   int
	calls  int
}

// NewSequenceRand creates a source replaying values in order
func NewSequenceRand(values ...int) *SequenceRand {
	return &SequenceRand{values: values}
}

// Intn returns the next queued value in [0, n)
func (s *SequenceRand) Intn(n int) int {
	s.calls++
	if s.next >= len(s.values) {
		return n - 1
	}
	v := s.values[s.next] % n
	s.next++
	if v < 0 {
		v += n
	}
	return v
}

// Calls returns the number of Intn invocations
func (s *SequenceRand) Calls() int {
	return s.calls
}

// Remaining returns the number of queued values not yet consumed
func (s *SequenceRand) Remaining() int {
	return len(s.values) - s.next
}
