// SPDX-License-Identifier: MIT

package decay

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/stat/distuv"
)

// Distribution is an immutable Gaussian weighting around Mu with spread
// Sigma. The zero value is not valid; use Gaussian or GaussianDecay.
type Distribution struct {
	normal distuv.Normal
}

// Gaussian builds the distribution N(mu, sigma²).
// Returns ErrInvalidParameter if sigma ≤ 0 or either parameter is not finite.
func Gaussian(sigma, mu float64) (Distribution, error) {
	if !(sigma > 0) || math.IsInf(sigma, 1) {
		return Distribution{}, errors.Wrapf(ErrInvalidParameter, "Gaussian: sigma=%g must be > 0", sigma)
	}
	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		return Distribution{}, errors.Wrapf(ErrInvalidParameter, "Gaussian: mu=%g must be finite", mu)
	}
	return Distribution{normal: distuv.Normal{Mu: mu, Sigma: sigma}}, nil
}

// GaussianDecay builds a distribution whose 3σ point lies decayTarget away
// from mu, i.e. Gaussian(decayTarget/3, mu).
func GaussianDecay(decayTarget, mu float64) (Distribution, error) {
	d, err := Gaussian(decayTarget/sigmaPoints, mu)
	if err != nil {
		return Distribution{}, errors.Wrapf(err, "GaussianDecay(decayTarget=%g)", decayTarget)
	}
	return d, nil
}

// Sigma returns the standard deviation.
func (d Distribution) Sigma() float64 { return d.normal.Sigma }

// Mu returns the center.
func (d Distribution) Mu() float64 { return d.normal.Mu }

// Decay returns the unnormalized weight exp(-½·((x-μ)/σ)²); 1 at the center.
func (d Distribution) Decay(x float64) float64 {
	z := (x - d.normal.Mu) / d.normal.Sigma
	return math.Exp(-0.5 * z * z)
}

// Density returns the normalized probability density at x.
func (d Distribution) Density(x float64) float64 {
	return d.normal.Prob(x)
}

// CDF returns P(X ≤ x).
func (d Distribution) CDF(x float64) float64 {
	return d.normal.CDF(x)
}

// Mass returns the probability mass over [lo, hi] (order independent).
func (d Distribution) Mass(lo, hi float64) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	return d.normal.CDF(hi) - d.normal.CDF(lo)
}

// DecayFunc returns Decay as a Func.
func (d Distribution) DecayFunc() Func { return d.Decay }

// DensityFunc returns Density as a Func.
func (d Distribution) DensityFunc() Func { return d.Density }

// String renders the parameters, e.g. "N(μ=0, σ=3)".
func (d Distribution) String() string {
	return fmt.Sprintf("N(μ=%g, σ=%g)", d.normal.Mu, d.normal.Sigma)
}
