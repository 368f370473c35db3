// SPDX-License-Identifier: MIT

// Package interval implements exact algebra over closed real intervals and
// length-weighted sampling from their union.
//
// What is here?
//
//	Interval  — immutable closed range [Min, Max]; New(a, b) accepts the
//	            bounds in any order.
//	Relation  — six-way classification of how two intervals overlap:
//	            Disjoint, PartialOverlap, Contains, Within, Identical and
//	            RelationError (unreachable for well-formed bounds).
//	Set       — ordered, pairwise disjoint runs with a non-zero gap between
//	            neighbours, mutated through Union and Subtraction.
//
// Typical flow:
//
//	feasible, _ := interval.NewSetOf(interval.New(0, 10)) // raw domain
//	_ = feasible.Subtraction(interval.New(3, 5))         // carve out
//	x, err := feasible.SampleWeightedByLength(rng)       // pick a spot
//
// Semantics worth knowing:
//
//   - Shared endpoints count as overlap for merging: [0,5] ∪ [5,10] = [0,10].
//   - Intervals are closed: [0,10] − [3,5] = [0,3] ∪ [5,10].
//   - Bounds are compared with exact float64 equality; no tolerance is applied.
//
// Concurrency:
//
//	A Set is owned by one computation at a time. Union and Subtraction
//	replace its contents, so concurrent callers must serialize access.
//	Interval values are immutable and freely shareable.
//
// Errors:
//
//	ErrInvariantViolation     — the classifier fell through (NaN bounds).
//	ErrDegenerateDistribution — sampling from an empty or zero-length set.
//	ErrMalformedInput         — caller weights do not match the set.
package interval
