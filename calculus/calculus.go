// SPDX-License-Identifier: MIT

package calculus

import (
	"fmt"

	"github.com/katalvlaran/calchub/sampled"
)

// Operation tags used in error wrapping.
const (
	opGradient  = "Gradient"
	opTrapezoid = "Trapezoid"
	opEstimate  = "Estimate"
)

// Summary is the calculus panel result.
type Summary struct {
	MeanSlope float64 // mean of the pointwise gradient
	Integral  float64 // trapezoidal integral over the whole domain
}

// Gradient returns dy/dx at every sample of fn.
//
// Interior points use the second-order accurate central difference for
// uneven spacing (hs = x_i - x_{i-1}, hd = x_{i+1} - x_i):
//
//	g_i = (hs²·y_{i+1} + (hd² − hs²)·y_i − hd²·y_{i-1}) / (hs·hd·(hd + hs))
//
// Endpoints use one-sided differences of the configured edge order.
//
// Errors: the sampled.Function validation errors; sampled.ErrTooFewSamples
// when edge order 2 is requested on fewer than three samples.
// Complexity: O(n) time and memory.
func Gradient(fn sampled.Function, opts ...Option) ([]float64, error) {
	if err := fn.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opGradient, err)
	}
	o := gatherOptions(opts...)

	x, y := fn.Domain, fn.Values
	n := len(x)
	if o.edgeOrder == 2 && n < 3 {
		return nil, fmt.Errorf("%s: edge order 2 needs 3 samples, have %d: %w", opGradient, n, sampled.ErrTooFewSamples)
	}

	g := make([]float64, n)
	var (
		i      int
		hs, hd float64
	)
	for i = 1; i < n-1; i++ {
		hs = x[i] - x[i-1]
		hd = x[i+1] - x[i]
		g[i] = (hs*hs*y[i+1] + (hd*hd-hs*hs)*y[i] - hd*hd*y[i-1]) / (hs * hd * (hd + hs))
	}

	if o.edgeOrder == 1 {
		g[0] = (y[1] - y[0]) / (x[1] - x[0])
		g[n-1] = (y[n-1] - y[n-2]) / (x[n-1] - x[n-2])

		return g, nil
	}

	// second-order one-sided stencils
	var a, b, c, dx1, dx2 float64
	dx1, dx2 = x[1]-x[0], x[2]-x[1]
	a = -(2*dx1 + dx2) / (dx1 * (dx1 + dx2))
	b = (dx1 + dx2) / (dx1 * dx2)
	c = -dx1 / (dx2 * (dx1 + dx2))
	g[0] = a*y[0] + b*y[1] + c*y[2]

	dx1, dx2 = x[n-2]-x[n-3], x[n-1]-x[n-2]
	a = dx2 / (dx1 * (dx1 + dx2))
	b = -(dx2 + dx1) / (dx1 * dx2)
	c = (2*dx2 + dx1) / (dx2 * (dx1 + dx2))
	g[n-1] = a*y[n-3] + b*y[n-2] + c*y[n-1]

	return g, nil
}

// Trapezoid integrates fn over its domain with the trapezoidal rule.
// The rule is exact for piecewise-linear data.
// Complexity: O(n) time, O(1) memory.
func Trapezoid(fn sampled.Function) (float64, error) {
	if err := fn.Validate(); err != nil {
		return 0, fmt.Errorf("%s: %w", opTrapezoid, err)
	}

	x, y := fn.Domain, fn.Values
	sum := 0.0
	for i := 0; i+1 < len(x); i++ {
		sum += (y[i] + y[i+1]) / 2 * (x[i+1] - x[i])
	}

	return sum, nil
}

// Estimate computes the mean slope and the trapezoidal integral of fn.
func Estimate(fn sampled.Function, opts ...Option) (Summary, error) {
	g, err := Gradient(fn, opts...)
	if err != nil {
		return Summary{}, fmt.Errorf("%s: %w", opEstimate, err)
	}
	area, err := Trapezoid(fn)
	if err != nil {
		return Summary{}, fmt.Errorf("%s: %w", opEstimate, err)
	}

	return Summary{MeanSlope: mean(g), Integral: area}, nil
}

func mean(v []float64) float64 {
	sum := 0.0
	for _, x := range v {
		sum += x
	}

	return sum / float64(len(v))
}
