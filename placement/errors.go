// SPDX-License-Identifier: MIT

package placement

import "github.com/cockroachdb/errors"

// ErrNoFeasibleRegion indicates that nothing is left to sample from: the
// feasible set is empty or every run carries zero weight.
var ErrNoFeasibleRegion = errors.New("placement: no feasible region")

// ErrBadWeight indicates that a decay function produced a negative or
// non-finite weight.
var ErrBadWeight = errors.New("placement: invalid weight")

// ErrBadConfig indicates a configuration file that cannot describe a Placer.
var ErrBadConfig = errors.New("placement: invalid configuration")

// reportAs returns an error whose Unwrap chain ends at kind, so both
// errors.Is and the standard library match it, while cause stays attached
// as a secondary error for %+v and error reporting.
func reportAs(kind, cause error, context string) error {
	return errors.WithSecondaryError(errors.Wrapf(kind, "%s: %v", context, cause), cause)
}
