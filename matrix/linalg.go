// SPDX-License-Identifier: MIT

// Universal operations on any Matrix implementation, with *Dense fast paths.
// Inputs are never mutated; every result is freshly allocated.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for forward/backward substitution and similar.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU/Inverse routines.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opLU        = "LU"
	opSolve     = "Solve"
	opDet       = "Determinant"
	opInverse   = "Inverse"
	opEigen     = "Eigen"
	opEigvals   = "Eigenvalues"
	opAnalyze   = "Analyze"
	opNewSquare = "NewSquare"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (ValidateMulCompatible).
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := toDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := toDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k                            int
		av                                 float64
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	// i-k-j order keeps both B and C row-contiguous
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			if av == 0 {
				continue
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := src.r, src.c
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = src.data[i*cols+j]
		}
	}

	return res, nil
}

// LUP holds the factorization P·A = L·U with partial (row) pivoting.
// L (unit lower) and U (upper) share one packed n×n buffer.
type LUP struct {
	n        int
	lu       []float64 // packed factors, row-major
	perm     []int     // perm[i] = source row of pivoted row i
	sign     float64   // +1 or -1: parity of the row swaps
	singular bool      // a zero pivot column was met
}

// Factorize computes the LU decomposition of a square matrix with partial
// pivoting: at step k the row with the largest |A[i,k]| (i ≥ k) becomes the
// pivot row. An all-zero pivot column marks the factorization singular; it is
// not an error because the determinant is then exactly 0.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (ValidateSquare).
//
// Determinism:
//   - Ties in |pivot| resolve to the lowest row index.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Factorize(m Matrix) (*LUP, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}

	n := src.r
	f := &LUP{n: n, lu: make([]float64, n*n), perm: make([]int, n), sign: 1}
	copy(f.lu, src.data)
	a := f.lu

	var (
		i, j, k, p  int
		best, v, lk float64
	)
	for i = 0; i < n; i++ {
		f.perm[i] = i
	}
	for k = 0; k < n; k++ {
		// pivot search in column k
		p, best = k, math.Abs(a[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(a[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best == ZeroPivot {
			f.singular = true
			continue
		}
		if p != k {
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			f.perm[k], f.perm[p] = f.perm[p], f.perm[k]
			f.sign = -f.sign
		}
		// eliminate below the pivot; multipliers are stored in place (L part)
		for i = k + 1; i < n; i++ {
			lk = a[i*n+k] / a[k*n+k]
			a[i*n+k] = lk
			if lk == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a[i*n+j] -= lk * a[k*n+j]
			}
		}
	}

	return f, nil
}

// Singular reports whether a zero pivot column was met.
func (f *LUP) Singular() bool { return f.singular }

// Det returns det(A) = sign · Π U[k,k]; exactly 0 for singular factors.
func (f *LUP) Det() float64 {
	if f.singular {
		return 0
	}
	det := f.sign
	for k := 0; k < f.n; k++ {
		det *= f.lu[k*f.n+k]
	}

	return det
}

// Solve returns x with A·x = b.
//
// Errors:
//   - ErrDimensionMismatch when len(b) != n.
//   - ErrSingular for singular factors.
func (f *LUP) Solve(b []float64) ([]float64, error) {
	if len(b) != f.n {
		return nil, matrixErrorf(opSolve, ErrDimensionMismatch)
	}
	if f.singular {
		return nil, matrixErrorf(opSolve, ErrSingular)
	}
	x := make([]float64, f.n)
	f.solveInto(x, b)

	return x, nil
}

// solveInto runs forward (L·y = P·b) then backward (U·x = y) substitution.
// x and b must have length n and may not alias.
func (f *LUP) solveInto(x, b []float64) {
	n, a := f.n, f.lu
	var (
		i, k int
		sum  float64
	)
	for i = 0; i < n; i++ {
		sum = b[f.perm[i]]
		for k = 0; k < i; k++ {
			sum -= a[i*n+k] * x[k]
		}
		x[i] = sum
	}
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for k = i + 1; k < n; k++ {
			sum -= a[i*n+k] * x[k]
		}
		x[i] = sum / a[i*n+i]
	}
}

// Inverse forms A⁻¹ column by column from the factors.
//
// Errors:
//   - ErrSingular for singular factors.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func (f *LUP) Inverse() (*Dense, error) {
	if f.singular {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	n := f.n
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	var (
		col, i int
		e      = make([]float64, n) // canonical basis column
		x      = make([]float64, n)
	)
	for col = 0; col < n; col++ {
		e[col] = 1
		f.solveInto(x, e)
		e[col] = 0
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// Determinant returns det(m) via Factorize.
func Determinant(m Matrix) (float64, error) {
	f, err := Factorize(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return f.Det(), nil
}

// Inverse computes m⁻¹ via Factorize.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (validation).
//   - ErrSingular when det(m) == 0.
func Inverse(m Matrix) (Matrix, error) {
	f, err := Factorize(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv, err := f.Inverse()
	if err != nil {
		return nil, err
	}

	return inv, nil
}
