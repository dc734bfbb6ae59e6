// SPDX-License-Identifier: MIT

// Package calculus estimates derivatives and integrals of sampled functions.
//
// The graphing panel reports two coarse global summaries of the plotted curve:
//
//   - MeanSlope: the arithmetic mean of the finite-difference gradient
//     (second-order central differences inside, one-sided at the ends; the
//     same scheme as numpy.gradient on a non-uniform grid).
//   - Integral: the trapezoidal rule Σ (y_i + y_{i+1})/2 · (x_{i+1} − x_i).
//
// Both are numeric approximations; no symbolic calculus is attempted.
//
// Usage:
//
//	sum, err := calculus.Estimate(fn)                          // default edge order 1
//	sum, err = calculus.Estimate(fn, calculus.WithEdgeOrder(2)) // second-order ends
//
// Complexity: O(n) time, O(n) memory for the gradient buffer.
package calculus
