// SPDX-License-Identifier: MIT

// config.go — YAML description of a Placer.
//
// Example:
//
//	domain: [0, 60]
//	exclude:
//	  - [12, 18]
//	  - [30, 31.5]
//	allow:
//	  - [14, 15]
//	weighting:
//	  mode: gaussian
//	  center: 40
//	  decay_target: 15
//	seed: 7
//	samples: 5
//
// Allow ranges are applied before exclude ranges, so exclusions win.

package placement

import (
	"io"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"

	"github.com/Chengxuan-Li/UrbanDesignEngine-sub001/decay"
	"github.com/Chengxuan-Li/UrbanDesignEngine-sub001/interval"
)

// Weighting modes accepted in Config.Weighting.Mode.
const (
	ModeLength   = "length"   // uniform over the feasible set
	ModeBump     = "bump"     // length × GaussianBump(decay_target) around center
	ModeNatural  = "natural"  // length × NaturalDecay(rate) around center
	ModeGaussian = "gaussian" // length × Gaussian decay (sigma, or decay_target/3) around center
	ModeMass     = "mass"     // Gaussian probability mass of each run
)

// Range is a [lo, hi] pair in either order.
type Range []float64

// Weighting selects and parametrizes the run weighting.
type Weighting struct {
	Mode        string  `yaml:"mode" default:"length"`
	Center      float64 `yaml:"center"`
	DecayTarget float64 `yaml:"decay_target"`
	Rate        float64 `yaml:"rate"`
	Sigma       float64 `yaml:"sigma"`
}

// Config is the file form of a Placer plus the sampling run parameters.
type Config struct {
	Domain    Range     `yaml:"domain"`
	Allow     []Range   `yaml:"allow"`
	Exclude   []Range   `yaml:"exclude"`
	Weighting Weighting `yaml:"weighting"`
	Seed      uint64    `yaml:"seed" default:"1"`
	Samples   int       `yaml:"samples" default:"1"`
}

// LoadConfig decodes a YAML document from r over the defaults and validates
// it. Unknown keys are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	if err := defaults.Set(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "LoadConfig: defaults")
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return Config{}, errors.Wrap(ErrBadConfig, "LoadConfig: empty document")
		}
		return Config{}, reportAs(ErrBadConfig, err, "LoadConfig")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (r Range) interval(field string) (interval.Interval, error) {
	if len(r) != 2 {
		return interval.Interval{}, errors.Wrapf(ErrBadConfig, "%s: want [lo, hi], got %v", field, []float64(r))
	}
	for _, v := range r {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return interval.Interval{}, errors.Wrapf(ErrBadConfig, "%s: bound %g is not finite", field, v)
		}
	}
	return interval.New(r[0], r[1]), nil
}

// Validate checks ranges, counts and weighting parameters.
func (c Config) Validate() error {
	if _, err := c.Domain.interval("domain"); err != nil {
		return err
	}
	for _, r := range c.Allow {
		if _, err := r.interval("allow"); err != nil {
			return err
		}
	}
	for _, r := range c.Exclude {
		if _, err := r.interval("exclude"); err != nil {
			return err
		}
	}
	if c.Samples < 1 {
		return errors.Wrapf(ErrBadConfig, "samples=%d must be ≥ 1", c.Samples)
	}
	_, err := c.Weighting.option()
	return err
}

// option translates the weighting section into a Placer option.
func (w Weighting) option() (Option, error) {
	switch w.Mode {
	case ModeLength:
		return WithLengthWeighting(), nil
	case ModeBump:
		if !(w.DecayTarget > 0) || math.IsInf(w.DecayTarget, 1) {
			return nil, errors.Wrapf(ErrBadConfig, "bump: decay_target=%g must be > 0", w.DecayTarget)
		}
		return WithDecay(decay.Shift(decay.GaussianBump(w.DecayTarget), w.Center)), nil
	case ModeNatural:
		if !(w.Rate >= 0) || math.IsInf(w.Rate, 1) {
			return nil, errors.Wrapf(ErrBadConfig, "natural: rate=%g must be ≥ 0", w.Rate)
		}
		return WithDecay(decay.Shift(decay.NaturalDecay(w.Rate), w.Center)), nil
	case ModeGaussian, ModeMass:
		d, err := w.distribution()
		if err != nil {
			return nil, reportAs(ErrBadConfig, err, w.Mode)
		}
		if w.Mode == ModeMass {
			return WithDistributionMass(d), nil
		}
		return WithDecay(d.DecayFunc()), nil
	default:
		return nil, errors.Wrapf(ErrBadConfig, "unknown weighting mode %q", w.Mode)
	}
}

// distribution prefers an explicit sigma over decay_target.
func (w Weighting) distribution() (decay.Distribution, error) {
	if w.Sigma != 0 {
		return decay.Gaussian(w.Sigma, w.Center)
	}
	return decay.GaussianDecay(w.DecayTarget, w.Center)
}

// Build creates the Placer described by c. Extra options are applied after
// the configured weighting.
func (c Config) Build(opts ...Option) (*Placer, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	domain, _ := c.Domain.interval("domain")
	weighting, _ := c.Weighting.option()

	p, err := New(domain, append([]Option{weighting}, opts...)...)
	if err != nil {
		return nil, err
	}
	for _, r := range c.Allow {
		iv, _ := r.interval("allow")
		if err := p.Allow(iv); err != nil {
			return nil, err
		}
	}
	for _, r := range c.Exclude {
		iv, _ := r.interval("exclude")
		if err := p.Exclude(iv); err != nil {
			return nil, err
		}
	}
	return p, nil
}
