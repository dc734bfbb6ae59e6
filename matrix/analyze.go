// SPDX-License-Identifier: MIT

package matrix

// Report is the matrix panel result for one square input.
type Report struct {
	Size        int          // n for an n×n input
	Determinant float64      // sign-respecting, exactly 0 for a zero pivot column
	Eigenvalues []complex128 // full spectrum, len == Size, sorted (see Eigenvalues)
	Invertible  bool         // Determinant != 0
	Inverse     *Dense       // nil unless Invertible
}

// Analyze computes determinant, eigenvalues and (when det != 0) the inverse
// of a square matrix in one call.
//
// A zero determinant is a defined outcome: Invertible is false and Inverse is
// nil. Near-singular input with a tiny nonzero determinant is inverted as is.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (validation).
//   - ErrMatrixEigenFailed when no eigen solver converges.
//
// Complexity:
//   - Time O(n³ + maxIter·n), Space O(n²).
func Analyze(m Matrix, opts ...Option) (Report, error) {
	f, err := Factorize(m)
	if err != nil {
		return Report{}, matrixErrorf(opAnalyze, err)
	}
	vals, err := Eigenvalues(m, opts...)
	if err != nil {
		return Report{}, matrixErrorf(opAnalyze, err)
	}

	rep := Report{
		Size:        m.Rows(),
		Determinant: f.Det(),
		Eigenvalues: vals,
	}
	if rep.Determinant != 0 {
		if rep.Inverse, err = f.Inverse(); err != nil {
			return Report{}, matrixErrorf(opAnalyze, err)
		}
		rep.Invertible = true
	}

	return rep, nil
}
