// SPDX-License-Identifier: MIT

package interval

import (
	"fmt"
	"math"

	"github.com/Chengxuan-Li/UrbanDesignEngine-sub001/sampling"
)

// New returns the closed interval spanned by p1 and p2, in either order.
// It never fails; a NaN bound yields an interval that classifies as
// RelationError against everything.
func New(p1, p2 float64) Interval {
	return Interval{lo: math.Min(p1, p2), hi: math.Max(p1, p2)}
}

// Min returns the lower bound.
func (i Interval) Min() float64 { return i.lo }

// Max returns the upper bound.
func (i Interval) Max() float64 { return i.hi }

// Length returns Max - Min.
func (i Interval) Length() float64 { return i.hi - i.lo }

// Mid returns the midpoint.
func (i Interval) Mid() float64 { return i.lo + (i.hi-i.lo)/2 }

// Contains reports whether other lies inside i, bounds included.
func (i Interval) Contains(other Interval) bool {
	return other.lo >= i.lo && other.hi <= i.hi
}

// ContainsPoint reports whether Min ≤ x ≤ Max.
func (i Interval) ContainsPoint(x float64) bool {
	return x >= i.lo && x <= i.hi
}

// Union merges i and other. Intervals that overlap or merely share an
// endpoint collapse into one; otherwise both are returned unchanged as
// {i, other}.
func (i Interval) Union(other Interval) []Interval {
	if other.lo > i.hi || other.hi < i.lo {
		return []Interval{i, other}
	}
	return []Interval{{lo: math.Min(i.lo, other.lo), hi: math.Max(i.hi, other.hi)}}
}

// SampleUniform draws a uniform value in [Min, Max) from rng, which must be
// non-nil. One Float64 is consumed.
func (i Interval) SampleUniform(rng sampling.Source) float64 {
	return rng.Float64()*i.Length() + i.lo
}

// String renders the interval as "i[Min, Max]".
func (i Interval) String() string {
	return fmt.Sprintf("i[%g, %g]", i.lo, i.hi)
}
