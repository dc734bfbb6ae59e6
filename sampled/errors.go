// SPDX-License-Identifier: MIT

package sampled

import "errors"

var (
	// ErrTooFewSamples indicates fewer than MinSamples points were supplied.
	ErrTooFewSamples = errors.New("sampled: at least two samples are required")

	// ErrLengthMismatch indicates len(domain) != len(values).
	ErrLengthMismatch = errors.New("sampled: domain and values differ in length")

	// ErrNotIncreasing indicates the domain is not strictly increasing.
	ErrNotIncreasing = errors.New("sampled: domain must be strictly increasing")

	// ErrNonFinite indicates a NaN or ±Inf in the domain or values.
	ErrNonFinite = errors.New("sampled: NaN or Inf encountered")

	// ErrBadRange indicates an empty, inverted or non-finite [min, max] range.
	ErrBadRange = errors.New("sampled: range must satisfy min < max with finite bounds")
)
