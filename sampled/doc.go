// SPDX-License-Identifier: MIT

// Package sampled holds the (x, y) sample container shared by the plotting
// and calculus panels.
//
// A Function is a pair of equally long slices: a strictly increasing,
// finite Domain and the finite Values observed at each domain point.
// Functions are built either by the expression evaluator (expr.Sample) or
// directly from caller data via New, and are consumed immediately by the
// calculus estimators and the plot renderer.
//
// Usage:
//
//	xs, _ := sampled.Linspace(-10, 10, 500)
//	fn, err := sampled.New(xs, ys)
//	if err != nil {
//	  // ErrTooFewSamples, ErrLengthMismatch, ErrNotIncreasing, ErrNonFinite
//	}
//
// Complexity: New and Linspace are O(n) time and memory.
package sampled
