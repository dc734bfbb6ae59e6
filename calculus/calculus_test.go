package calculus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/calchub/calculus"
	"github.com/katalvlaran/calchub/sampled"
)

const tol = 1e-9

// build samples f over n evenly spaced points of [a, b].
func build(t *testing.T, a, b float64, n int, f func(float64) float64) sampled.Function {
	t.Helper()
	xs, err := sampled.Linspace(a, b, n)
	require.NoError(t, err)
	ys := make([]float64, n)
	for i, x := range xs {
		ys[i] = f(x)
	}
	fn, err := sampled.New(xs, ys)
	require.NoError(t, err)

	return fn
}

// TestEstimate_Constant: y = c has zero slope and area c * span.
func TestEstimate_Constant(t *testing.T) {
	for _, c := range []float64{-2.5, 0, 3, 1e3} {
		fn := build(t, -5, 5, 101, func(float64) float64 { return c })
		sum, err := calculus.Estimate(fn)
		require.NoError(t, err)
		assert.InDelta(t, 0, sum.MeanSlope, tol)
		assert.InDelta(t, c*fn.Span(), sum.Integral, tol*1e3)
	}
}

// TestEstimate_Linear: y = x over [0, 2] integrates to 2 with slope 1.
func TestEstimate_Linear(t *testing.T) {
	fn := build(t, 0, 2, 500, func(x float64) float64 { return x })
	sum, err := calculus.Estimate(fn)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, sum.Integral, tol)
	assert.InDelta(t, 1.0, sum.MeanSlope, tol)

	sum, err = calculus.Estimate(fn, calculus.WithEdgeOrder(2))
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sum.MeanSlope, tol)
}

func TestGradient_NonUniform(t *testing.T) {
	// y = x² sampled on an uneven grid.
	fn, err := sampled.New([]float64{0, 1, 3}, []float64{0, 1, 9})
	require.NoError(t, err)

	g, err := calculus.Gradient(fn)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2, 4}, g, tol)

	// Second-order edges are exact for quadratics.
	g, err = calculus.Gradient(fn, calculus.WithEdgeOrder(2))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 2, 6}, g, tol)
}

func TestGradient_QuadraticDense(t *testing.T) {
	fn := build(t, -3, 3, 61, func(x float64) float64 { return x * x })
	g, err := calculus.Gradient(fn, calculus.WithEdgeOrder(2))
	require.NoError(t, err)
	for i, x := range fn.Domain {
		assert.InDelta(t, 2*x, g[i], 1e-9, "at x=%g", x)
	}
}

func TestGradient_TwoSamples(t *testing.T) {
	fn, err := sampled.New([]float64{1, 3}, []float64{2, 6})
	require.NoError(t, err)

	g, err := calculus.Gradient(fn)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2}, g)

	_, err = calculus.Gradient(fn, calculus.WithEdgeOrder(2))
	assert.ErrorIs(t, err, sampled.ErrTooFewSamples)
}

func TestTrapezoid(t *testing.T) {
	fn, err := sampled.New([]float64{0, 0.5, 1}, []float64{0, 0.25, 1})
	require.NoError(t, err)
	area, err := calculus.Trapezoid(fn)
	require.NoError(t, err)
	assert.Equal(t, 0.375, area)

	// Reversed sign for a negative curve.
	fn = build(t, 0, 1, 11, func(x float64) float64 { return -x })
	area, err = calculus.Trapezoid(fn)
	require.NoError(t, err)
	assert.InDelta(t, -0.5, area, tol)
}

func TestEstimate_InsufficientSamples(t *testing.T) {
	bad := sampled.Function{Domain: []float64{1}, Values: []float64{1}}
	_, err := calculus.Estimate(bad)
	assert.ErrorIs(t, err, sampled.ErrTooFewSamples)

	_, err = calculus.Trapezoid(sampled.Function{})
	assert.ErrorIs(t, err, sampled.ErrTooFewSamples)
}

func TestWithEdgeOrder_Panics(t *testing.T) {
	assert.Panics(t, func() { calculus.WithEdgeOrder(0) })
	assert.Panics(t, func() { calculus.WithEdgeOrder(3) })
	assert.NotPanics(t, func() { calculus.WithEdgeOrder(2) })
}
