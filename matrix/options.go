// SPDX-License-Identifier: MIT

// Functional configuration for Analyze and the eigen solvers:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values).

package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the symmetry tolerance deciding whether the Jacobi
	// kernel applies: |A[i,j] - A[j,i]| ≤ eps for all i<j.
	DefaultEpsilon = 1e-9

	// DefaultJacobiTolerance stops Jacobi once every |A[p,q]| (p≠q) is below it.
	DefaultJacobiTolerance = 1e-12

	// DefaultMaxIterations caps the number of Jacobi rotations.
	DefaultMaxIterations = 1000
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid       = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicJacobiTolInvalid     = "matrix: WithJacobiTolerance: tol must be finite, positive"
	panicMaxIterationsInvalid = "matrix: WithMaxIterations: n must be positive"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps       float64 // >= 0; DefaultEpsilon
	jacobiTol float64 // > 0; DefaultJacobiTolerance
	maxIter   int     // > 0; DefaultMaxIterations
}

// WithEpsilon sets the symmetry tolerance used to route input to Jacobi.
// Larger eps lets slightly asymmetric input take the symmetric path (real
// eigenvalues only); use judiciously. Panics when eps is NaN, ±Inf or < 0.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithJacobiTolerance sets the off-diagonal convergence threshold.
// Panics when tol is NaN, ±Inf or <= 0.
func WithJacobiTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicJacobiTolInvalid)
	}

	return func(o *Options) { o.jacobiTol = tol }
}

// WithMaxIterations caps Jacobi rotations. Panics when n <= 0.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterationsInvalid)
	}

	return func(o *Options) { o.maxIter = n }
}

// gatherOptions applies user-provided setters on top of defaults
// (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:       DefaultEpsilon,
		jacobiTol: DefaultJacobiTolerance,
		maxIter:   DefaultMaxIterations,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
