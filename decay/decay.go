// SPDX-License-Identifier: MIT

package decay

import (
	"fmt"
	"math"
)

// sigmaPoints is the empirical-rule width: 3σ covers ~99.7% of the mass.
const sigmaPoints = 3.0

// Func maps a position (or distance) to a non-negative weight.
type Func func(x float64) float64

// GaussianBump returns x ↦ exp(-½·(3x/decayTarget)²). At x = decayTarget the
// curve sits on its 3σ point (≈ 0.0111).
// Panics if decayTarget is not a positive finite number.
// Complexity: O(1) time, O(1) space.
func GaussianBump(decayTarget float64) Func {
	if !(decayTarget > 0) || math.IsInf(decayTarget, 1) {
		panic(fmt.Sprintf("GaussianBump: decayTarget must be > 0, got %g", decayTarget))
	}
	return func(x float64) float64 {
		z := sigmaPoints * x / decayTarget
		return math.Exp(-0.5 * z * z)
	}
}

// NaturalDecay returns x ↦ exp(-rate·x²).
// Panics if rate is negative or not finite; rate == 0 is the flat curve.
// Complexity: O(1) time, O(1) space.
func NaturalDecay(rate float64) Func {
	if !(rate >= 0) || math.IsInf(rate, 1) {
		panic(fmt.Sprintf("NaturalDecay: rate must be ≥ 0, got %g", rate))
	}
	return func(x float64) float64 {
		return math.Exp(-rate * x * x)
	}
}

// Shift recenters f so that f's origin lands on center: x ↦ f(x - center).
func Shift(f Func, center float64) Func {
	return func(x float64) float64 {
		return f(x - center)
	}
}

// Scale multiplies f by a constant factor k ≥ 0.
// Panics if k is negative or not finite.
func Scale(f Func, k float64) Func {
	if !(k >= 0) || math.IsInf(k, 1) {
		panic(fmt.Sprintf("Scale: factor must be ≥ 0, got %g", k))
	}
	return func(x float64) float64 {
		return k * f(x)
	}
}
