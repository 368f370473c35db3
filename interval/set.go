// SPDX-License-Identifier: MIT

package interval

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/Chengxuan-Li/UrbanDesignEngine-sub001/sampling"
)

// Set is an ordered sequence of pairwise Disjoint intervals, sorted by Min,
// with a non-zero gap between neighbours. The zero value is an empty set.
//
// Every Union and Subtraction builds a fresh slice and swaps it in; slices
// previously returned by Intervals are never modified.
type Set struct {
	ivs []Interval
}

// NewSet returns an empty set.
func NewSet() *Set {
	return &Set{}
}

// NewSetOf unions ivs, in order, into a new set. An interval with a NaN
// bound fails with ErrInvariantViolation.
func NewSetOf(ivs ...Interval) (*Set, error) {
	s := NewSet()
	for _, iv := range ivs {
		if err := s.Union(iv); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Len returns the number of stored runs.
func (s *Set) Len() int { return len(s.ivs) }

// IsEmpty reports whether the set holds no interval.
func (s *Set) IsEmpty() bool { return len(s.ivs) == 0 }

// At returns the i-th run in ascending order.
func (s *Set) At(i int) Interval { return s.ivs[i] }

// Intervals returns a copy of the stored runs in ascending order.
func (s *Set) Intervals() []Interval {
	out := make([]Interval, len(s.ivs))
	copy(out, s.ivs)
	return out
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	return &Set{ivs: s.Intervals()}
}

// Equal reports whether s and other hold exactly the same runs.
func (s *Set) Equal(other *Set) bool {
	if len(s.ivs) != len(other.ivs) {
		return false
	}
	for i := range s.ivs {
		if s.ivs[i] != other.ivs[i] {
			return false
		}
	}
	return true
}

// TotalLength returns the summed length of all runs.
func (s *Set) TotalLength() float64 {
	var total float64
	for _, iv := range s.ivs {
		total += iv.Length()
	}
	return total
}

// ContainsPoint reports whether x lies in one of the runs.
// Complexity: O(log n).
func (s *Set) ContainsPoint(x float64) bool {
	k := sort.Search(len(s.ivs), func(j int) bool { return s.ivs[j].hi >= x })
	return k < len(s.ivs) && s.ivs[k].ContainsPoint(x)
}

// Union adds iv to the set, re-merging every stored run iv touches or is
// contained by into one maximal run.
//
// Scan (left to right, accumulator starts at iv):
//   - stored Contains / is Identical to the accumulator: no-op, stop.
//   - Disjoint and the accumulator lies below stored: insert it here, stop.
//   - Disjoint otherwise: keep stored, advance.
//   - PartialOverlap / Within: absorb stored into the accumulator.
//
// An accumulator left over at the end is appended.
// The only possible error wraps ErrInvariantViolation; s is then unchanged.
//
// Complexity: O(n).
func (s *Set) Union(iv Interval) error {
	if len(s.ivs) == 0 {
		if iv.Relation(iv) == RelationError {
			return invariantError(methodUnion, iv, iv)
		}
		s.ivs = []Interval{iv}
		return nil
	}

	out := make([]Interval, 0, len(s.ivs)+1)
	acc := iv
	for k, stored := range s.ivs {
		switch stored.Relation(acc) {
		case Contains, Identical:
			return nil
		case Disjoint:
			if acc.hi < stored.lo {
				out = append(out, acc)
				s.ivs = append(out, s.ivs[k:]...)
				return nil
			}
			out = append(out, stored)
		case PartialOverlap, Within:
			acc = acc.Union(stored)[0]
		default:
			return invariantError(methodUnion, stored, acc)
		}
	}
	s.ivs = append(out, acc)
	return nil
}

// UnionSet adds every run of other. An empty s takes a copy of other's runs,
// which are classifiable since every run entered other through Union.
// s and other may be the same set.
func (s *Set) UnionSet(other *Set) error {
	if len(s.ivs) == 0 {
		s.ivs = other.Intervals()
		return nil
	}
	for _, iv := range other.ivs {
		if err := s.Union(iv); err != nil {
			return err
		}
	}
	return nil
}

// Subtraction removes iv from the set. Intervals are closed, so the
// remainders keep iv's bounds: [0,10] − [3,5] leaves [0,3] and [5,10].
//
// Per stored run, classified against iv:
//   - Disjoint: kept.
//   - Within: dropped; scanning continues.
//   - Identical: dropped; stop.
//   - PartialOverlap: trimmed. A left remainder [stored.Min, iv.Min] keeps
//     scanning; a right remainder [iv.Max, stored.Max] stops. A run with
//     neither remainder (iv covers it, sharing an endpoint) is dropped.
//   - Contains: split into [stored.Min, iv.Min] and [iv.Max, stored.Max];
//     stop. A zero-length iv leaves the run whole, its closure.
//
// The only possible error wraps ErrInvariantViolation; s is then unchanged.
//
// Complexity: O(n).
func (s *Set) Subtraction(iv Interval) error {
	out := make([]Interval, 0, len(s.ivs)+1)
	for k, stored := range s.ivs {
		switch stored.Relation(iv) {
		case Disjoint:
			out = append(out, stored)
		case Within:
		case Identical:
			s.ivs = append(out, s.ivs[k+1:]...)
			return nil
		case PartialOverlap:
			switch {
			case stored.lo < iv.lo:
				out = append(out, Interval{lo: stored.lo, hi: iv.lo})
			case stored.hi > iv.hi:
				out = append(out, Interval{lo: iv.hi, hi: stored.hi})
				s.ivs = append(out, s.ivs[k+1:]...)
				return nil
			}
		case Contains:
			if iv.Length() == 0 {
				return nil
			}
			out = append(out, Interval{lo: stored.lo, hi: iv.lo}, Interval{lo: iv.hi, hi: stored.hi})
			s.ivs = append(out, s.ivs[k+1:]...)
			return nil
		default:
			return invariantError(methodSubtraction, stored, iv)
		}
	}
	s.ivs = out
	return nil
}

// SubtractionSet removes every run of other, in order. s and other may be
// the same set, which empties s.
func (s *Set) SubtractionSet(other *Set) error {
	for _, iv := range other.Intervals() {
		if err := s.Subtraction(iv); err != nil {
			return err
		}
	}
	return nil
}

// SampleWeightedByLength picks a run with probability proportional to its
// length, then a uniform point inside it. The result always lies in the
// union of the runs.
//
// Returns ErrDegenerateDistribution for an empty set or a set made only of
// zero-length runs, and sampling.ErrNilSource for a nil rng.
func (s *Set) SampleWeightedByLength(rng sampling.Source) (float64, error) {
	weights := make([]float64, len(s.ivs))
	for k, iv := range s.ivs {
		weights[k] = iv.Length()
	}
	return s.sample(methodSample, weights, rng)
}

// SampleWeighted is SampleWeightedByLength with caller supplied per-run
// weights, e.g. length multiplied by a decay evaluated at each midpoint.
// weights must line up with Intervals().
func (s *Set) SampleWeighted(rng sampling.Source, weights []float64) (float64, error) {
	if len(weights) != len(s.ivs) {
		return 0, errors.Wrapf(ErrMalformedInput,
			"%s: %d weights for %d intervals", methodSampleW, len(weights), len(s.ivs))
	}
	return s.sample(methodSampleW, weights, rng)
}

func (s *Set) sample(method string, weights []float64, rng sampling.Source) (float64, error) {
	if len(s.ivs) == 0 {
		return 0, errors.Wrapf(ErrDegenerateDistribution, "%s: empty set", method)
	}
	chosen, err := sampling.Categorical(s.ivs, weights, rng)
	if err != nil {
		return 0, errors.Wrapf(err, "%s: %s", method, s)
	}
	return chosen.SampleUniform(rng), nil
}

// String renders the runs as "i[Min, Max]" joined by ", ".
func (s *Set) String() string {
	parts := make([]string, len(s.ivs))
	for k, iv := range s.ivs {
		parts[k] = iv.String()
	}
	return strings.Join(parts, ", ")
}
