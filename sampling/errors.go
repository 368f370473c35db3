// SPDX-License-Identifier: MIT

package sampling

import "github.com/cockroachdb/errors"

// ErrMalformedInput indicates that values and weights differ in length, or
// that a weight is negative, NaN or infinite, or that the total overflows.
var ErrMalformedInput = errors.New("sampling: malformed input")

// ErrDegenerateDistribution indicates that the weights sum to zero, so no
// option can be drawn.
var ErrDegenerateDistribution = errors.New("sampling: degenerate distribution")

// ErrNilSource indicates that a draw was requested without a random source.
var ErrNilSource = errors.New("sampling: random source is required")

const (
	methodCategorical      = "Categorical"
	methodCategoricalIndex = "CategoricalIndex"
)
