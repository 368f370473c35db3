// SPDX-License-Identifier: MIT

package sampling

import (
	"math"

	"github.com/cockroachdb/errors"
)

// Source is the random source consumed by every draw. Float64 must return
// a value in [0, 1).
type Source interface {
	Float64() float64
}

// Categorical returns one element of values, chosen with probability
// weights[i] / Σweights.
//
// Algorithm:
//  1. Validate lengths, signs and finiteness; sum the weights. A total that
//     overflows to +Inf is malformed input, not a degenerate distribution.
//  2. Normalize weights to sum to 1 and accumulate a running sum.
//  3. Draw r ∈ [0,1) from rng.
//  4. Return the first value with a positive weight whose cumulative
//     weight is ≥ r. Zero-weight values are never returned, even when r == 0.
//
// Complexity: O(n) time, O(1) extra space.
func Categorical[T any](values []T, weights []float64, rng Source) (T, error) {
	var zero T
	if len(values) != len(weights) {
		return zero, errors.Wrapf(ErrMalformedInput,
			"%s: len(values)=%d != len(weights)=%d", methodCategorical, len(values), len(weights))
	}
	idx, err := pick(methodCategorical, weights, rng)
	if err != nil {
		return zero, err
	}
	return values[idx], nil
}

// CategoricalIndex is Categorical over the indices 0..len(weights)-1.
func CategoricalIndex(weights []float64, rng Source) (int, error) {
	return pick(methodCategoricalIndex, weights, rng)
}

// Sum validates weights and returns their total. Finite weights whose total
// overflows float64 are malformed as well: they cannot be normalized.
func Sum(weights []float64) (float64, error) {
	var total float64
	for i, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, errors.Wrapf(ErrMalformedInput, "weight[%d]=%g is not finite", i, w)
		}
		if w < 0 {
			return 0, errors.Wrapf(ErrMalformedInput, "weight[%d]=%g is negative", i, w)
		}
		total += w
	}
	if math.IsInf(total, 1) {
		return 0, errors.Wrapf(ErrMalformedInput, "total of %d weights overflows", len(weights))
	}
	return total, nil
}

func pick(method string, weights []float64, rng Source) (int, error) {
	total, err := Sum(weights)
	if err != nil {
		return 0, errors.Wrap(err, method)
	}
	if total == 0 {
		return 0, errors.Wrapf(ErrDegenerateDistribution,
			"%s: total weight %g over %d options", method, total, len(weights))
	}
	if rng == nil {
		return 0, errors.Wrap(ErrNilSource, method)
	}

	r := rng.Float64()
	var (
		cum  float64
		last = -1
	)
	for i, w := range weights {
		if w == 0 {
			continue
		}
		last = i
		cum += w / total
		if cum >= r {
			return i, nil
		}
	}
	// rounding left the final cumulative weight just below r
	return last, nil
}
