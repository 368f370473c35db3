// SPDX-License-Identifier: MIT

package interval

// Relation is the topological relation of one Interval to another, as
// computed by Interval.Relation (receiver first).
type Relation int

const (
	// RelationError means classification fell through every case. It is the
	// zero value so that an unset Relation never reads as a valid answer.
	RelationError Relation = iota

	// Disjoint: no common point at all, not even a shared endpoint.
	Disjoint

	// PartialOverlap: the intervals share at least one point and one of them
	// extends past the other on at most one side. Covers literal touching at
	// a single endpoint as well as nested intervals sharing an endpoint.
	PartialOverlap

	// Contains: the receiver strictly encloses the other interval.
	Contains

	// Within: the other interval strictly encloses the receiver.
	Within

	// Identical: both bounds are exactly equal.
	Identical
)

// String returns the relation name.
func (r Relation) String() string {
	switch r {
	case Disjoint:
		return "Disjoint"
	case PartialOverlap:
		return "PartialOverlap"
	case Contains:
		return "Contains"
	case Within:
		return "Within"
	case Identical:
		return "Identical"
	default:
		return "RelationError"
	}
}

// Interval is an immutable closed range [Min, Max]. Construction orders the
// bounds, so Min() ≤ Max() holds for any non-NaN input and two intervals
// over the same bounds compare equal with ==.
type Interval struct {
	lo, hi float64
}
