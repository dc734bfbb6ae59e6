// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/calchub/sampled"
)

// Expression is a compiled, immutable expression of the variable x.
// It is safe for concurrent use: evaluation keeps no state.
type Expression struct {
	source string
	root   node
}

// Compile parses src against the closed grammar and allow-list.
//
// Errors (all *EvalError):
//   - ErrEmpty for blank input.
//   - ErrTooComplex when src exceeds MaxLength bytes or MaxDepth nesting.
//   - ErrSyntax, ErrUnknownIdentifier, ErrArity for grammar violations.
//
// Complexity: O(len(src)).
func Compile(src string) (*Expression, error) {
	if strings.TrimSpace(src) == "" {
		return nil, compileError(src, -1, ErrEmpty)
	}
	if len(src) > MaxLength {
		return nil, compileError(src, -1, fmt.Errorf("%w: longer than %d bytes", ErrTooComplex, MaxLength))
	}

	root, err := newParser(src).parse()
	if err != nil {
		return nil, err
	}

	return &Expression{source: src, root: root}, nil
}

// Source returns the text the expression was compiled from.
func (e *Expression) Source() string { return e.source }

// String returns the fully parenthesised canonical form, e.g. "(sin(x) * (x ^ 2))".
func (e *Expression) String() string { return e.root.String() }

// Eval evaluates the expression at a single point.
// A non-finite intermediate or final value yields *EvalError wrapping ErrNonFinite.
func (e *Expression) Eval(x float64) (float64, error) {
	v, err := e.root.eval(x)
	if err != nil {
		return 0, sampleError(e.source, x, err)
	}

	return v, nil
}

// EvalAll evaluates the expression at every point of domain, in order.
// The whole call fails on the first non-finite sample.
// Complexity: O(len(domain) · nodes).
func (e *Expression) EvalAll(domain []float64) ([]float64, error) {
	out := make([]float64, len(domain))
	var err error
	for i, x := range domain {
		if out[i], err = e.Eval(x); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Evaluate compiles src and samples it over domain.
//
// Order of checks:
//  1. domain must be non-empty, finite and strictly increasing (ErrBadDomain);
//  2. src must compile;
//  3. every sample must be finite (ErrNonFinite);
//  4. the result must satisfy the sampled.Function invariant, so a
//     single-point domain that evaluates cleanly still reports
//     sampled.ErrTooFewSamples.
//
// Every failure is an *EvalError.
func Evaluate(src string, domain []float64) (sampled.Function, error) {
	if err := validateDomain(domain); err != nil {
		return sampled.Function{}, compileError(src, -1, err)
	}

	e, err := Compile(src)
	if err != nil {
		return sampled.Function{}, err
	}

	values, err := e.EvalAll(domain)
	if err != nil {
		return sampled.Function{}, err
	}

	fn, err := sampled.New(domain, values)
	if err != nil {
		return sampled.Function{}, compileError(src, -1, err)
	}

	return fn, nil
}

// Sample evaluates src over sampleCount evenly spaced points of [xMin, xMax].
// This is the graphing panel's entry point.
func Sample(src string, xMin, xMax float64, sampleCount int) (sampled.Function, error) {
	domain, err := sampled.Linspace(xMin, xMax, sampleCount)
	if err != nil {
		return sampled.Function{}, compileError(src, -1, fmt.Errorf("%w: %w", ErrBadDomain, err))
	}

	return Evaluate(src, domain)
}

func validateDomain(domain []float64) error {
	if len(domain) == 0 {
		return fmt.Errorf("%w: no points", ErrBadDomain)
	}
	for i, x := range domain {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: point %d is %v", ErrBadDomain, i, x)
		}
		if i > 0 && x <= domain[i-1] {
			return fmt.Errorf("%w: point %d (%g) does not increase", ErrBadDomain, i, x)
		}
	}

	return nil
}
