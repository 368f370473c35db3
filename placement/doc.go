// SPDX-License-Identifier: MIT

// Package placement answers "where along this 1-D domain may a new element
// go, and which spot should be picked?" on top of the interval, decay and
// sampling packages.
//
// A Placer starts with its whole domain feasible. Allow re-admits ranges
// (clipped to the domain), Exclude carves ranges out. Sample then draws a
// spot from what is left, weighting every feasible run by one of:
//
//	length (default)      — WithLengthWeighting()
//	length × f(midpoint)  — WithDecay(f)
//	probability mass      — WithDistributionMass(d)
//
// Config mirrors the same knobs for YAML files (see LoadConfig).
//
// An empty or zero-weight feasible region is reported as
// ErrNoFeasibleRegion, which callers usually treat as "no valid placement"
// rather than as a failure.
package placement
