// SPDX-License-Identifier: MIT

package placement

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/Chengxuan-Li/UrbanDesignEngine-sub001/interval"
	"github.com/Chengxuan-Li/UrbanDesignEngine-sub001/logger"
	"github.com/Chengxuan-Li/UrbanDesignEngine-sub001/sampling"
)

var plog = logger.Named("placement")

// Candidate is one feasible run together with the weight it is sampled with.
type Candidate struct {
	Interval interval.Interval
	Weight   float64
}

// Placer tracks the feasible part of a domain and samples spots from it.
// A Placer is not safe for concurrent mutation.
type Placer struct {
	domain   interval.Interval
	feasible *interval.Set
	cfg      placerConfig
}

// New returns a Placer whose whole domain is feasible. A domain with a NaN
// bound fails with interval.ErrInvariantViolation.
func New(domain interval.Interval, opts ...Option) (*Placer, error) {
	feasible, err := interval.NewSetOf(domain)
	if err != nil {
		return nil, errors.Wrapf(err, "New(%s)", domain)
	}
	p := &Placer{
		domain:   domain,
		feasible: feasible,
		cfg:      newPlacerConfig(opts...),
	}
	p.cfg.log.Debugf("new placer over %s, weighting by %s", domain, p.cfg.mode)
	return p, nil
}

// Domain returns the domain the Placer was created with.
func (p *Placer) Domain() interval.Interval { return p.domain }

// Feasible returns a copy of the current feasible set.
func (p *Placer) Feasible() *interval.Set { return p.feasible.Clone() }

// Allow makes iv feasible again. Parts of iv outside the domain are ignored.
func (p *Placer) Allow(iv interval.Interval) error {
	clipped, ok := clip(iv, p.domain)
	if !ok {
		p.cfg.log.Debugf("allow %s: outside domain %s", iv, p.domain)
		return nil
	}
	if err := p.feasible.Union(clipped); err != nil {
		return errors.Wrapf(err, "Allow(%s)", iv)
	}
	p.cfg.log.Debugf("allow %s: feasible %s", clipped, p.feasible)
	return nil
}

// Exclude removes iv from the feasible set.
func (p *Placer) Exclude(iv interval.Interval) error {
	if err := p.feasible.Subtraction(iv); err != nil {
		return errors.Wrapf(err, "Exclude(%s)", iv)
	}
	p.cfg.log.Debugf("exclude %s: feasible %s", iv, p.feasible)
	return nil
}

// ExcludeSet removes every run of s from the feasible set.
func (p *Placer) ExcludeSet(s *interval.Set) error {
	if err := p.feasible.SubtractionSet(s); err != nil {
		return errors.Wrapf(err, "ExcludeSet(%s)", s)
	}
	p.cfg.log.Debugf("exclude %s: feasible %s", s, p.feasible)
	return nil
}

// Candidates returns every feasible run with its sampling weight, in
// ascending order. Returns ErrBadWeight when a decay function yields a
// negative or non-finite value.
func (p *Placer) Candidates() ([]Candidate, error) {
	runs := p.feasible.Intervals()
	out := make([]Candidate, len(runs))
	for k, run := range runs {
		w := p.weight(run)
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return nil, errors.Wrapf(ErrBadWeight, "%s weighting of %s gave %g", p.cfg.mode, run, w)
		}
		out[k] = Candidate{Interval: run, Weight: w}
	}
	return out, nil
}

func (p *Placer) weight(run interval.Interval) float64 {
	switch p.cfg.mode {
	case byDecay:
		return run.Length() * p.cfg.decay(run.Mid())
	case byMass:
		return p.cfg.dist.Mass(run.Min(), run.Max())
	default:
		return run.Length()
	}
}

// Sample draws one spot from the feasible set. Returns ErrNoFeasibleRegion
// when nothing carries weight; the sampling error that detected it is kept
// as the secondary cause.
func (p *Placer) Sample(rng sampling.Source) (float64, error) {
	var (
		x   float64
		err error
	)
	if p.cfg.mode == byLength {
		x, err = p.feasible.SampleWeightedByLength(rng)
	} else {
		var cands []Candidate
		if cands, err = p.Candidates(); err != nil {
			return 0, err
		}
		weights := make([]float64, len(cands))
		for k, c := range cands {
			weights[k] = c.Weight
		}
		x, err = p.feasible.SampleWeighted(rng, weights)
	}
	if err != nil {
		if errors.Is(err, sampling.ErrDegenerateDistribution) {
			return 0, reportAs(ErrNoFeasibleRegion, err, "Sample")
		}
		return 0, errors.Wrap(err, "Sample")
	}
	p.cfg.log.Debugf("sampled %g from %s", x, p.feasible)
	return x, nil
}

// SampleN draws n independent spots.
func (p *Placer) SampleN(rng sampling.Source, n int) ([]float64, error) {
	out := make([]float64, 0, n)
	for k := 0; k < n; k++ {
		x, err := p.Sample(rng)
		if err != nil {
			return nil, err
		}
		out = append(out, x)
	}
	return out, nil
}

// clip intersects iv with domain; ok is false when they share no point.
func clip(iv, domain interval.Interval) (interval.Interval, bool) {
	if iv.Relation(domain) == interval.Disjoint {
		return interval.Interval{}, false
	}
	return interval.New(math.Max(iv.Min(), domain.Min()), math.Min(iv.Max(), domain.Max())), true
}
