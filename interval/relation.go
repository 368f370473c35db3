// SPDX-License-Identifier: MIT

package interval

// Relation classifies other relative to i. Cases are tested in this order
// and the first match wins:
//
//  1. Identical       bounds equal exactly.
//  2. Disjoint        other.Min > Max or other.Max < Min.
//  3. PartialOverlap  (other.Max ≤ Max and other.Min ≤ Min) or
//     (other.Min ≥ Min and other.Max ≥ Max).
//  4. Within          other.Max ≥ Max and other.Min ≤ Min.
//  5. Contains        other.Max ≤ Max and other.Min ≥ Min.
//  6. RelationError   only reachable with NaN bounds.
//
// Swapping the operands swaps Contains and Within and leaves every other
// tag unchanged.
func (i Interval) Relation(other Interval) Relation {
	switch {
	case other.lo == i.lo && other.hi == i.hi:
		return Identical
	case other.lo > i.hi || other.hi < i.lo:
		return Disjoint
	case (other.hi <= i.hi && other.lo <= i.lo) || (other.lo >= i.lo && other.hi >= i.hi):
		return PartialOverlap
	case other.hi >= i.hi && other.lo <= i.lo:
		return Within
	case other.hi <= i.hi && other.lo >= i.lo:
		return Contains
	default:
		return RelationError
	}
}

// Classify is Relation with the fall-through surfaced as an error wrapping
// ErrInvariantViolation.
func Classify(a, b Interval) (Relation, error) {
	r := a.Relation(b)
	if r == RelationError {
		return r, invariantError(methodClassify, a, b)
	}
	return r, nil
}
