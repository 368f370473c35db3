// SPDX-License-Identifier: MIT

package interval

import (
	"github.com/cockroachdb/errors"

	"github.com/Chengxuan-Li/UrbanDesignEngine-sub001/logger"
	"github.com/Chengxuan-Li/UrbanDesignEngine-sub001/sampling"
)

var plog = logger.Named("interval")

// ErrInvariantViolation indicates that two intervals could not be
// classified. It never happens for finite bounds and points at a defect
// upstream (typically a NaN bound). The errors returned with it are
// assertion failures: errors.IsAssertionFailure holds on them directly.
var ErrInvariantViolation = errors.New("interval: invariant violation")

// ErrDegenerateDistribution is returned when sampling an empty set or a set
// whose total weight is zero. It is the sampling package sentinel, so either
// name matches with errors.Is.
var ErrDegenerateDistribution = sampling.ErrDegenerateDistribution

// ErrMalformedInput is returned when caller supplied weights do not line up
// with the stored intervals.
var ErrMalformedInput = sampling.ErrMalformedInput

const (
	methodClassify    = "Classify"
	methodUnion       = "Union"
	methodSubtraction = "Subtraction"
	methodSample      = "SampleWeightedByLength"
	methodSampleW     = "SampleWeighted"
)

// invariantError builds the assertion failure reported when a and b fall
// through every relation case.
func invariantError(method string, a, b Interval) error {
	err := errors.WithAssertionFailure(
		errors.Wrapf(ErrInvariantViolation, "%s: cannot classify %s against %s", method, a, b),
	)
	plog.Errorf("%v", err)
	return err
}
