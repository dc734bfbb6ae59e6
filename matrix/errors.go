// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Every message is prefixed with "matrix: ...". Public kernels wrap these
// with an operation tag (see matrixErrorf); callers match via errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Mul where a.Cols != b.Rows, or a right-hand side of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the configured epsilon.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrMatrixEigenFailed indicates that no eigen solver converged.
	ErrMatrixEigenFailed = errors.New("matrix: eigen decomposition failed")

	// ErrSingular is returned by Solve/Inverse when a zero pivot was met.
	ErrSingular = errors.New("matrix: singular matrix")
)
