// SPDX-License-Identifier: MIT

package convert

import "errors"

var (
	// ErrEmptyCode indicates a rate with a blank from/to code.
	ErrEmptyCode = errors.New("convert: empty unit code")

	// ErrBadFactor indicates a zero, negative, NaN or infinite factor.
	ErrBadFactor = errors.New("convert: factor must be finite and > 0")

	// ErrDuplicatePair indicates the same ordered pair declared twice.
	ErrDuplicatePair = errors.New("convert: duplicate rate pair")

	// ErrBadHint indicates a hint pair that the table cannot convert.
	ErrBadHint = errors.New("convert: hint pair has no rate")

	// ErrUnknownCategory indicates a category name outside the known set.
	ErrUnknownCategory = errors.New("convert: unknown category")

	// ErrBadCatalog indicates a catalog document that does not parse.
	ErrBadCatalog = errors.New("convert: malformed catalog")
)
