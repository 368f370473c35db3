package interval_test

import (
	stderrors "errors"
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chengxuan-Li/UrbanDesignEngine-sub001/interval"
	"github.com/Chengxuan-Li/UrbanDesignEngine-sub001/sampling"
)

// fixed is a Source that always returns the same value.
type fixed float64

func (f fixed) Float64() float64 { return float64(f) }

func TestNew_OrderIndependent(t *testing.T) {
	t.Parallel()
	rng := sampling.NewRand(17)
	for n := 0; n < 1000; n++ {
		a, b := rng.NormFloat64()*100, rng.NormFloat64()*100
		x, y := interval.New(a, b), interval.New(b, a)
		assert.LessOrEqual(t, x.Min(), x.Max())
		assert.Equal(t, x, y)
		assert.Equal(t, math.Abs(a-b), x.Length())
	}
}

func TestInterval_Accessors(t *testing.T) {
	t.Parallel()
	iv := interval.New(10, 2)
	assert.Equal(t, 2.0, iv.Min())
	assert.Equal(t, 10.0, iv.Max())
	assert.Equal(t, 8.0, iv.Length())
	assert.Equal(t, 6.0, iv.Mid())
	assert.Equal(t, "i[2, 10]", iv.String())
	assert.Equal(t, "i[-1.5, 0.25]", interval.New(0.25, -1.5).String())

	assert.True(t, iv.ContainsPoint(2))
	assert.True(t, iv.ContainsPoint(10))
	assert.False(t, iv.ContainsPoint(10.0001))
}

func TestInterval_Contains(t *testing.T) {
	t.Parallel()
	outer := interval.New(0, 10)
	assert.True(t, outer.Contains(interval.New(3, 5)))
	assert.True(t, outer.Contains(interval.New(0, 10)), "bounds are inclusive")
	assert.True(t, outer.Contains(interval.New(0, 4)))
	assert.False(t, outer.Contains(interval.New(-1, 4)))
	assert.False(t, interval.New(3, 5).Contains(outer))
}

func TestInterval_Union(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		x, y interval.Interval
		want []interval.Interval
	}{
		{"apart", interval.New(0, 1), interval.New(2, 3), []interval.Interval{interval.New(0, 1), interval.New(2, 3)}},
		{"apart reversed keeps order", interval.New(2, 3), interval.New(0, 1), []interval.Interval{interval.New(2, 3), interval.New(0, 1)}},
		{"touching merges", interval.New(0, 5), interval.New(5, 10), []interval.Interval{interval.New(0, 10)}},
		{"overlap", interval.New(0, 6), interval.New(4, 10), []interval.Interval{interval.New(0, 10)}},
		{"nested", interval.New(0, 10), interval.New(3, 5), []interval.Interval{interval.New(0, 10)}},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.x.Union(tc.y), tc.name)
	}
}

func TestInterval_SampleUniform(t *testing.T) {
	t.Parallel()
	iv := interval.New(4, 8)
	assert.Equal(t, 4.0, iv.SampleUniform(fixed(0)))
	assert.Equal(t, 6.0, iv.SampleUniform(fixed(0.5)))

	rng := sampling.NewRand(3)
	for n := 0; n < 1000; n++ {
		x := iv.SampleUniform(rng)
		assert.GreaterOrEqual(t, x, 4.0)
		assert.Less(t, x, 8.0)
	}
}

func TestRelation_Table(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		x, y interval.Interval
		want interval.Relation
	}{
		{"identical", interval.New(1, 4), interval.New(4, 1), interval.Identical},
		{"identical point", interval.New(2, 2), interval.New(2, 2), interval.Identical},
		{"disjoint above", interval.New(0, 1), interval.New(2, 3), interval.Disjoint},
		{"disjoint below", interval.New(5, 6), interval.New(2, 3), interval.Disjoint},
		{"shared endpoint", interval.New(0, 5), interval.New(5, 10), interval.PartialOverlap},
		{"shared endpoint below", interval.New(5, 10), interval.New(0, 5), interval.PartialOverlap},
		{"overlap right", interval.New(0, 6), interval.New(4, 10), interval.PartialOverlap},
		{"overlap left", interval.New(4, 10), interval.New(0, 6), interval.PartialOverlap},
		{"nested sharing min", interval.New(0, 10), interval.New(0, 5), interval.PartialOverlap},
		{"nested sharing max", interval.New(0, 10), interval.New(5, 10), interval.PartialOverlap},
		{"enclosing sharing min", interval.New(0, 5), interval.New(0, 10), interval.PartialOverlap},
		{"contains", interval.New(0, 10), interval.New(3, 5), interval.Contains},
		{"within", interval.New(3, 5), interval.New(0, 10), interval.Within},
		{"contains point", interval.New(0, 10), interval.New(4, 4), interval.Contains},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.x.Relation(tc.y), "%s: %s vs %s", tc.name, tc.x, tc.y)
	}
}

func swapped(r interval.Relation) interval.Relation {
	switch r {
	case interval.Contains:
		return interval.Within
	case interval.Within:
		return interval.Contains
	default:
		return r
	}
}

// TestRelation_Symmetry checks on a small integer grid, where shared
// endpoints are frequent, that swapping operands only swaps
// Contains and Within and that classification never falls through.
func TestRelation_Symmetry(t *testing.T) {
	t.Parallel()
	for a := 0; a <= 6; a++ {
		for b := a; b <= 6; b++ {
			for c := 0; c <= 6; c++ {
				for d := c; d <= 6; d++ {
					x := interval.New(float64(a), float64(b))
					y := interval.New(float64(c), float64(d))
					r := x.Relation(y)
					require.NotEqual(t, interval.RelationError, r, "%s vs %s", x, y)
					assert.Equal(t, swapped(r), y.Relation(x), "%s vs %s", x, y)
				}
			}
		}
	}
}

func TestClassify_NaN(t *testing.T) {
	t.Parallel()
	bad := interval.New(math.NaN(), 1)
	assert.Equal(t, interval.RelationError, bad.Relation(interval.New(0, 1)))

	r, err := interval.Classify(bad, interval.New(0, 1))
	assert.Equal(t, interval.RelationError, r)
	require.Error(t, err)
	assert.True(t, errors.Is(err, interval.ErrInvariantViolation))
	assert.True(t, stderrors.Is(err, interval.ErrInvariantViolation), "visible to the standard library too")
	assert.True(t, errors.IsAssertionFailure(err))

	r, err = interval.Classify(interval.New(0, 1), interval.New(1, 2))
	require.NoError(t, err)
	assert.Equal(t, interval.PartialOverlap, r)
}

func TestRelation_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Disjoint", interval.Disjoint.String())
	assert.Equal(t, "PartialOverlap", interval.PartialOverlap.String())
	assert.Equal(t, "Contains", interval.Contains.String())
	assert.Equal(t, "Within", interval.Within.String())
	assert.Equal(t, "Identical", interval.Identical.String())
	assert.Equal(t, "RelationError", interval.RelationError.String())
	assert.Equal(t, "RelationError", interval.Relation(99).String())
}
