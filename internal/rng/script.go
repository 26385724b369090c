package rng

import "fmt"

// Script is a Source that replays a fixed list of draws in order.
// Tests use it to force a generator down a specific branch.
//
// Each scripted value must fall inside the range requested by the
// matching Between call; Script panics otherwise, or when it runs out,
// so a test that drifts from the generator's draw order fails loudly.
type Script struct {
	values []int
	next   int
}

// NewScript returns a Script that yields values one per Between call.
func NewScript(values ...int) *Script {
	return &Script{values: values}
}

// Between implements Source. A range holding a single value is answered
// without consuming a draw, matching Rand.
func (s *Script) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	if s.next >= len(s.values) {
		panic(fmt.Sprintf("rng: script exhausted after %d draws (Between(%d, %d))", len(s.values), lo, hi))
	}
	v := s.values[s.next]
	s.next++
	if v < lo || v > hi {
		panic(fmt.Sprintf("rng: scripted draw %d outside [%d, %d]", v, lo, hi))
	}
	return v
}

// Remaining reports how many scripted draws are left.
func (s *Script) Remaining() int { return len(s.values) - s.next }
