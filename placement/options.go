// SPDX-License-Identifier: MIT

// options.go — functional options for Placer.
//
// Contract:
//   - Option constructors validate and panic on meaningless inputs; Placer
//     methods never panic.
//   - Weighting options are mutually exclusive; the last one wins.

package placement

import (
	"github.com/Chengxuan-Li/UrbanDesignEngine-sub001/decay"
	"github.com/Chengxuan-Li/UrbanDesignEngine-sub001/logger"
)

// weightMode selects how feasible runs are weighted before sampling.
type weightMode int

const (
	byLength weightMode = iota
	byDecay
	byMass
)

func (m weightMode) String() string {
	switch m {
	case byDecay:
		return "decay"
	case byMass:
		return "mass"
	default:
		return "length"
	}
}

// placerConfig holds every knob of a Placer, resolved by newPlacerConfig.
type placerConfig struct {
	mode  weightMode
	decay decay.Func
	dist  decay.Distribution
	log   logger.Logger
}

// Option customizes a Placer.
type Option func(*placerConfig)

// WithLengthWeighting weights every run by its length, i.e. a uniform draw
// over the feasible set. This is the default.
func WithLengthWeighting() Option {
	return func(c *placerConfig) {
		c.mode = byLength
		c.decay = nil
	}
}

// WithDecay weights every run by length × f(midpoint). Build f already
// centered on the preferred spot, e.g. decay.Shift(decay.GaussianBump(9), 40)
// or a Distribution's DecayFunc. Panics on nil.
func WithDecay(f decay.Func) Option {
	if f == nil {
		panic("placement: WithDecay(nil)")
	}
	return func(c *placerConfig) {
		c.mode = byDecay
		c.decay = f
	}
}

// WithDistributionMass weights every run by d's probability mass over it.
func WithDistributionMass(d decay.Distribution) Option {
	if !(d.Sigma() > 0) {
		panic("placement: WithDistributionMass(zero Distribution)")
	}
	return func(c *placerConfig) {
		c.mode = byMass
		c.dist = d
	}
}

// WithLogger replaces the package logger. Panics on nil.
func WithLogger(l logger.Logger) Option {
	if l == nil {
		panic("placement: WithLogger(nil)")
	}
	return func(c *placerConfig) {
		c.log = l
	}
}

// newPlacerConfig applies opts in order over the defaults.
func newPlacerConfig(opts ...Option) placerConfig {
	cfg := placerConfig{
		mode: byLength,
		log:  plog,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
