package placement_test

import (
	stderrors "errors"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chengxuan-Li/UrbanDesignEngine-sub001/decay"
	"github.com/Chengxuan-Li/UrbanDesignEngine-sub001/interval"
	"github.com/Chengxuan-Li/UrbanDesignEngine-sub001/logger"
	"github.com/Chengxuan-Li/UrbanDesignEngine-sub001/placement"
	"github.com/Chengxuan-Li/UrbanDesignEngine-sub001/sampling"
)

// memLog records Debugf calls; other levels are ignored.
type memLog struct {
	mu    sync.Mutex
	lines []string
}

func (m *memLog) SetLevel(logger.Level) {}
func (m *memLog) Debugf(f string, a ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = append(m.lines, fmt.Sprintf(f, a...))
}
func (m *memLog) Infof(string, ...interface{})  {}
func (m *memLog) Warnf(string, ...interface{})  {}
func (m *memLog) Errorf(string, ...interface{}) {}
func (m *memLog) Panicf(f string, a ...interface{}) {
	panic(fmt.Sprintf(f, a...))
}

func newPlacer(t *testing.T, domain interval.Interval, opts ...placement.Option) *placement.Placer {
	t.Helper()
	p, err := placement.New(domain, opts...)
	require.NoError(t, err)
	return p
}

func TestPlacer_AllowExclude(t *testing.T) {
	t.Parallel()
	p := newPlacer(t, interval.New(0, 10))
	assert.Equal(t, interval.New(0, 10), p.Domain())
	assert.Equal(t, "i[0, 10]", p.Feasible().String())

	require.NoError(t, p.Exclude(interval.New(3, 5)))
	require.NoError(t, p.Exclude(interval.New(7, 12)))
	assert.Equal(t, "i[0, 3], i[5, 7]", p.Feasible().String())

	require.NoError(t, p.Allow(interval.New(6, 20)))
	assert.Equal(t, "i[0, 3], i[5, 10]", p.Feasible().String(), "allow is clipped to the domain")

	require.NoError(t, p.Allow(interval.New(30, 40)))
	assert.Equal(t, "i[0, 3], i[5, 10]", p.Feasible().String(), "outside the domain is ignored")

	blocked, err := interval.NewSetOf(interval.New(1, 2), interval.New(8, 9))
	require.NoError(t, err)
	require.NoError(t, p.ExcludeSet(blocked))
	assert.Equal(t, "i[0, 1], i[2, 3], i[5, 8], i[9, 10]", p.Feasible().String())

	// Feasible hands out a copy
	f := p.Feasible()
	require.NoError(t, f.Subtraction(interval.New(0, 10)))
	assert.Equal(t, 4, p.Feasible().Len())
}

func TestPlacer_InvalidBounds(t *testing.T) {
	t.Parallel()
	_, err := placement.New(interval.New(math.NaN(), 10))
	assert.True(t, errors.Is(err, interval.ErrInvariantViolation))

	p := newPlacer(t, interval.New(0, 10))
	err = p.Exclude(interval.New(math.NaN(), 1))
	assert.True(t, errors.Is(err, interval.ErrInvariantViolation))
	err = p.Allow(interval.New(math.NaN(), 1))
	assert.True(t, errors.Is(err, interval.ErrInvariantViolation))
}

func TestPlacer_SampleByLength(t *testing.T) {
	t.Parallel()
	p := newPlacer(t, interval.New(0, 10))
	require.NoError(t, p.Exclude(interval.New(2, 8)))

	xs, err := p.SampleN(sampling.NewRand(4), 2000)
	require.NoError(t, err)
	feasible := p.Feasible()
	var left int
	for _, x := range xs {
		require.True(t, feasible.ContainsPoint(x), "x=%g", x)
		if x <= 2 {
			left++
		}
	}
	assert.InDelta(t, 0.5, float64(left)/float64(len(xs)), 0.05)
}

func TestPlacer_DecayWeighting(t *testing.T) {
	t.Parallel()
	pref := decay.Shift(decay.GaussianBump(5), 90)
	p := newPlacer(t, interval.New(0, 100), placement.WithDecay(pref))
	require.NoError(t, p.Exclude(interval.New(10, 80)))

	cands, err := p.Candidates()
	require.NoError(t, err)
	require.Len(t, cands, 2)
	assert.Equal(t, interval.New(0, 10), cands[0].Interval)
	assert.InDelta(t, 0, cands[0].Weight, 1e-12)
	assert.InDelta(t, 20.0, cands[1].Weight, 1e-12, "length 20 × decay 1 at the preferred midpoint")

	rng := sampling.NewRand(8)
	for n := 0; n < 500; n++ {
		x, err := p.Sample(rng)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, x, 80.0)
	}
}

func TestPlacer_MassWeighting(t *testing.T) {
	t.Parallel()
	d, err := decay.Gaussian(5, 90)
	require.NoError(t, err)
	p := newPlacer(t, interval.New(0, 100), placement.WithDistributionMass(d))
	require.NoError(t, p.Exclude(interval.New(10, 80)))

	cands, err := p.Candidates()
	require.NoError(t, err)
	assert.InDelta(t, d.Mass(80, 100), cands[1].Weight, 1e-12)
	assert.Less(t, cands[0].Weight, 1e-12)

	x, err := p.Sample(sampling.NewRand(8))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, x, 80.0)
}

func TestPlacer_NoFeasibleRegion(t *testing.T) {
	t.Parallel()
	p := newPlacer(t, interval.New(0, 10))
	require.NoError(t, p.Exclude(interval.New(-1, 11)))
	_, err := p.Sample(sampling.NewRand(1))
	assert.True(t, errors.Is(err, placement.ErrNoFeasibleRegion))
	assert.True(t, stderrors.Is(err, placement.ErrNoFeasibleRegion), "callers on the standard library see it too")
	assert.Contains(t, err.Error(), "sampling: degenerate distribution", "the detecting cause is kept")

	zero := newPlacer(t, interval.New(0, 10), placement.WithDecay(func(float64) float64 { return 0 }))
	_, err = zero.Sample(sampling.NewRand(1))
	assert.True(t, errors.Is(err, placement.ErrNoFeasibleRegion))

	_, err = zero.SampleN(sampling.NewRand(1), 3)
	assert.True(t, errors.Is(err, placement.ErrNoFeasibleRegion))
}

func TestPlacer_BadWeight(t *testing.T) {
	t.Parallel()
	for _, f := range []decay.Func{
		func(float64) float64 { return -1 },
		func(float64) float64 { return math.NaN() },
		func(float64) float64 { return math.Inf(1) },
	} {
		p := newPlacer(t, interval.New(0, 10), placement.WithDecay(f))
		_, err := p.Candidates()
		assert.True(t, errors.Is(err, placement.ErrBadWeight))
		_, err = p.Sample(sampling.NewRand(1))
		assert.True(t, errors.Is(err, placement.ErrBadWeight))
	}
}

func TestPlacer_Options(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { placement.WithDecay(nil) })
	assert.Panics(t, func() { placement.WithLogger(nil) })
	assert.Panics(t, func() { placement.WithDistributionMass(decay.Distribution{}) })

	// last weighting option wins
	p := newPlacer(t, interval.New(0, 10),
		placement.WithDecay(func(float64) float64 { return -1 }),
		placement.WithLengthWeighting(),
	)
	cands, err := p.Candidates()
	require.NoError(t, err)
	assert.Equal(t, 10.0, cands[0].Weight)

	l := &memLog{}
	p = newPlacer(t, interval.New(0, 4), placement.WithLogger(l))
	require.NoError(t, p.Exclude(interval.New(1, 2)))
	_, err = p.Sample(sampling.NewRand(2))
	require.NoError(t, err)
	require.Len(t, l.lines, 3)
	assert.Equal(t, "new placer over i[0, 4], weighting by length", l.lines[0])
	assert.Equal(t, "exclude i[1, 2]: feasible i[0, 1], i[2, 4]", l.lines[1])
}
