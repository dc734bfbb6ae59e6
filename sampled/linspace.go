// SPDX-License-Identifier: MIT

package sampled

// Linspace returns n evenly spaced points over [min, max], endpoints included.
// The first point is exactly min and the last exactly max; interior points
// are computed as min + i*step so that rounding does not accumulate.
//
// Errors:
//   - ErrTooFewSamples when n < MinSamples.
//   - ErrBadRange when min >= max or either bound is NaN/Inf.
//
// Complexity: O(n) time and memory.
func Linspace(min, max float64, n int) ([]float64, error) {
	if n < MinSamples {
		return nil, ErrTooFewSamples
	}
	if !isFinite(min) || !isFinite(max) || min >= max {
		return nil, ErrBadRange
	}

	out := make([]float64, n)
	step := (max - min) / float64(n-1)
	for i := 0; i < n-1; i++ {
		out[i] = min + float64(i)*step
	}
	out[n-1] = max // pin the endpoint exactly

	return out, nil
}
