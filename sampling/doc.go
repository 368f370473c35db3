// SPDX-License-Identifier: MIT

// Package sampling draws weighted categorical samples from an explicit,
// caller-owned random source.
//
// What is here?
//
//   - Categorical / CategoricalIndex: pick one option with probability
//     proportional to its non-negative weight.
//   - Source: the minimal random source contract ({ Float64() float64 }),
//     satisfied by *math/rand.Rand, *golang.org/x/exp/rand.Rand and
//     *LockedSource.
//   - NewRand / Derive / NewLockedSource: deterministic generator factories.
//     Same seed ⇒ same draws, on every platform.
//
// Determinism:
//
//	No function in this package constructs a generator behind the caller's
//	back. Every draw consumes exactly one Float64 from the supplied Source.
//
// Concurrency:
//
//	*rand.Rand is NOT goroutine-safe. Give every worker its own stream via
//	Derive, or share a *LockedSource.
//
// Errors:
//
//	ErrMalformedInput         — length mismatch, negative or non-finite weight,
//	                            or a total that overflows float64.
//	ErrDegenerateDistribution — weights sum to zero (including empty input).
//	ErrNilSource              — rng == nil.
package sampling
