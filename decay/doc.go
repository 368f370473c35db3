// SPDX-License-Identifier: MIT

// Package decay provides the weighting curves used to bias placement
// towards preferred spots of a 1-D domain.
//
// Curves:
//   - GaussianBump(T):  x ↦ exp(-½·(3x/T)²), reaching the 3σ point at x = T.
//   - NaturalDecay(k):  x ↦ exp(-k·x²).
//   - Shift / Scale:    recenter or rescale any Func.
//
// Distribution bundles a Gaussian decay exp(-½·((x-μ)/σ)²) with its
// normalized density (decay / (σ·√(2π))). Build it with Gaussian(σ, μ) or
// GaussianDecay(T, μ) == Gaussian(T/3, μ); there is no other way to obtain
// a valid value, so σ and μ always agree with the derived functions.
//
// Every value here is immutable and safe to share between goroutines.
package decay
