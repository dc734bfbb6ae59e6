// SPDX-License-Identifier: MIT

package expr

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty indicates an empty or whitespace-only expression.
	ErrEmpty = errors.New("expr: empty expression")

	// ErrSyntax indicates text outside the grammar (unexpected token,
	// unbalanced parentheses, malformed number, trailing input).
	ErrSyntax = errors.New("expr: syntax error")

	// ErrUnknownIdentifier indicates a name outside the allow-list.
	ErrUnknownIdentifier = errors.New("expr: identifier not allowed")

	// ErrArity indicates a function called with the wrong number of arguments.
	ErrArity = errors.New("expr: wrong number of arguments")

	// ErrTooComplex indicates the expression exceeds MaxLength or MaxDepth.
	ErrTooComplex = errors.New("expr: expression too complex")

	// ErrNonFinite indicates a NaN or ±Inf was produced during evaluation.
	ErrNonFinite = errors.New("expr: result is not finite")

	// ErrBadDomain indicates an empty, non-finite or non-increasing domain.
	ErrBadDomain = errors.New("expr: invalid sampling domain")
)

// EvalError is the single error type returned by this package.
// It wraps one of the sentinels above; match with errors.Is and
// inspect position details with errors.As.
type EvalError struct {
	Source   string  // expression text as given by the caller
	Offset   int     // byte offset of the offending token; -1 when not applicable
	X        float64 // sample being evaluated; valid when AtSample
	AtSample bool    // true for runtime failures
	Err      error   // wrapped sentinel with detail
}

// Error renders the failure verbatim for end users; no internal state leaks.
func (e *EvalError) Error() string {
	switch {
	case e.AtSample:
		return fmt.Sprintf("%v (at x=%g in %q)", e.Err, e.X, e.Source)
	case e.Offset >= 0:
		return fmt.Sprintf("%v (at offset %d in %q)", e.Err, e.Offset, e.Source)
	default:
		return fmt.Sprintf("%v (in %q)", e.Err, e.Source)
	}
}

// Unwrap exposes the wrapped sentinel to errors.Is.
func (e *EvalError) Unwrap() error { return e.Err }

func compileError(src string, offset int, err error) *EvalError {
	return &EvalError{Source: src, Offset: offset, Err: err}
}

func sampleError(src string, x float64, err error) *EvalError {
	return &EvalError{Source: src, Offset: -1, X: x, AtSample: true, Err: err}
}
