// SPDX-License-Identifier: MIT

// rng.go centralizes deterministic random source creation for the engine.
//
// Goals:
//   - Determinism: same seed ⇒ identical draws across platforms.
//   - Encapsulation: one factory; no time-based seeds hidden anywhere.
//   - Independence: Derive gives each worker its own decorrelated stream.

package sampling

import (
	"sync"

	"golang.org/x/exp/rand"
)

// DefaultSeed is the fixed seed used when callers pass seed == 0.
const DefaultSeed uint64 = 1

// NewRand returns a deterministic PCG backed *rand.Rand.
// Policy: seed == 0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier with a
// SplitMix64 finalizer so that neighbouring stream ids give unrelated seeds.
func deriveSeed(parent, stream uint64) uint64 {
	x := parent ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Derive creates an independent deterministic stream from base and a
// stream identifier. base == nil uses DefaultSeed as the parent; otherwise
// one Uint64 is consumed from base, so deriving twice with the same stream
// id still yields different children.
//
// Call it during setup (one per worker), not inside hot loops.
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	parent := DefaultSeed
	if base != nil {
		parent = base.Uint64()
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// LockedSource is a Source safe for use by several goroutines. Draw order
// between goroutines is decided by the scheduler, so prefer Derive when
// reproducibility across workers matters.
type LockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewLockedSource returns a mutex protected source seeded like NewRand.
func NewLockedSource(seed uint64) *LockedSource {
	return &LockedSource{r: NewRand(seed)}
}

// Float64 returns a value in [0, 1).
func (s *LockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}
