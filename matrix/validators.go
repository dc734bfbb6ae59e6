// SPDX-License-Identifier: MIT

// Validators: a single source of truth for common shape/nil/symmetry checks.
// Each returns a tagged sentinel ("<Validator>: <sentinel>"); kernels wrap it
// again with their operation tag. All checks are pure and allocate nothing.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil, including a typed nil *Dense.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrNonSquare if not square.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSymmetric checks A is symmetric within tolerance tol:
// |A[i,j] - A[j,i]| ≤ tol for all i<j.
//
// Errors: ErrNilMatrix/ErrNonSquare on structural issues, ErrNaNInf on a
// non-finite tol, ErrAsymmetry on violation.
// Complexity: O(n²) on the strict upper triangle. Space: O(1).
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	tol = math.Abs(tol)

	n := m.Rows()
	var (
		i, j     int
		aij, aji float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, _ = m.At(i, j) // in range after ValidateSquare
			aji, _ = m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}
