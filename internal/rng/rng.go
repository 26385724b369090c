// internal/rng/rng.go
//
// Random source handle shared by the puzzle generators.
//
// Every generator takes a Source explicitly instead of reaching for the
// math/rand package-level functions, so a session can own its own stream
// and tests can substitute a scripted sequence.

package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Source draws uniform integers from a closed range.
type Source interface {
	// Between returns a uniform integer in [lo, hi]. If hi < lo it returns lo.
	Between(lo, hi int) int
}

// Rand is a seeded Source backed by math/rand. It is not safe for
// concurrent use; give each session its own.
type Rand struct {
	seed int64
	r    *rand.Rand
}

// New returns a Source whose draws are fully determined by seed.
func New(seed int64) *Rand {
	return &Rand{seed: seed, r: rand.New(rand.NewSource(seed))}
}

// Seed reports the seed the stream was created with.
func (s *Rand) Seed() int64 { return s.seed }

// Between implements Source.
func (s *Rand) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.Intn(hi-lo+1)
}

// Pick returns a uniformly chosen element of items.
// It panics on an empty slice, like indexing would.
func Pick[T any](src Source, items []T) T {
	return items[src.Between(0, len(items)-1)]
}

// NewSeed generates a seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
