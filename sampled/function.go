// SPDX-License-Identifier: MIT

package sampled

import (
	"fmt"
	"math"
)

// MinSamples is the smallest number of points a Function may hold.
const MinSamples = 2

// Function is a sampled real function of one variable.
// Invariant: len(Domain) == len(Values) >= MinSamples, Domain strictly
// increasing, all entries finite. Use New to obtain a validated value.
type Function struct {
	Domain []float64 // x samples, strictly increasing
	Values []float64 // y samples, Values[i] = f(Domain[i])
}

// New validates domain and values and returns a Function holding copies of both.
//
// Errors: ErrTooFewSamples, ErrLengthMismatch, ErrNotIncreasing, ErrNonFinite.
// Complexity: O(n).
func New(domain, values []float64) (Function, error) {
	if err := validate(domain, values); err != nil {
		return Function{}, err
	}

	d := make([]float64, len(domain))
	v := make([]float64, len(values))
	copy(d, domain)
	copy(v, values)

	return Function{Domain: d, Values: v}, nil
}

// Validate reports whether fn satisfies the Function invariant.
// Useful for values assembled by hand instead of New.
func (fn Function) Validate() error { return validate(fn.Domain, fn.Values) }

// Len returns the number of samples.
func (fn Function) Len() int { return len(fn.Domain) }

// Span returns Domain[last] - Domain[0], or 0 for an empty Function.
func (fn Function) Span() float64 {
	if len(fn.Domain) == 0 {
		return 0
	}

	return fn.Domain[len(fn.Domain)-1] - fn.Domain[0]
}

func validate(domain, values []float64) error {
	if len(domain) != len(values) {
		return fmt.Errorf("%w: %d domain points, %d values", ErrLengthMismatch, len(domain), len(values))
	}
	if len(domain) < MinSamples {
		return ErrTooFewSamples
	}

	var i int
	for i = 0; i < len(domain); i++ {
		if !isFinite(domain[i]) {
			return fmt.Errorf("%w: domain[%d]=%v", ErrNonFinite, i, domain[i])
		}
		if !isFinite(values[i]) {
			return fmt.Errorf("%w: values[%d]=%v", ErrNonFinite, i, values[i])
		}
		if i > 0 && domain[i] <= domain[i-1] {
			return fmt.Errorf("%w: domain[%d]=%v after %v", ErrNotIncreasing, i, domain[i], domain[i-1])
		}
	}

	return nil
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
