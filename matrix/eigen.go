// SPDX-License-Identifier: MIT

package matrix

import (
	"cmp"
	"math"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// Eigen performs the Jacobi eigenvalue decomposition on a symmetric matrix.
// It returns the eigenvalues (diagonal order after convergence) and the
// orthogonal matrix Q whose columns are the corresponding eigenvectors.
//
// Implementation:
//   - Stage 1: ValidateSymmetric(m, tol); copy m into a working Dense A; Q = I.
//   - Stage 2: repeat up to maxIter times: pick the pivot (p,q) maximizing
//     |A[p,q]|, stop if it is below tol, else apply the rotation that zeroes
//     it to A and accumulate it into Q.
//   - Stage 3: if the off-diagonal maximum is still ≥ tol, fail.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrAsymmetry, ErrNaNInf (validation).
//   - ErrMatrixEigenFailed when not converged after maxIter rotations.
//
// Determinism:
//   - Fixed pivot scan order (i↑, j↑); ties keep the first maximum.
//
// Complexity:
//   - Time O(maxIter·n²), Space O(n²).
func Eigen(m Matrix, tol float64, maxIter int) ([]float64, Matrix, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	src, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	n := src.r
	a := make([]float64, n*n)
	copy(a, src.data)
	qm, err := NewIdentity(n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	q := qm.data

	var (
		iter, i, r, c      int
		maxOff             float64
		app, aqq, apq      float64
		aip, aiq, qip, qiq float64
		theta, t, cs, sn   float64
	)
	for iter = 0; iter < maxIter; iter++ {
		maxOff, r, c = offDiagonalMax(a, n)
		if maxOff < tol {
			break
		}

		app, aqq, apq = a[r*n+r], a[c*n+c], a[r*n+c]
		// θ = (aqq−app)/(2*apq); t = sign(θ) / (|θ|+√(θ²+1))
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		cs = 1.0 / math.Sqrt(t*t+1)
		sn = t * cs

		for i = 0; i < n; i++ {
			if i == r || i == c {
				continue
			}
			aip, aiq = a[i*n+r], a[i*n+c]
			a[i*n+r], a[r*n+i] = cs*aip-sn*aiq, cs*aip-sn*aiq
			a[i*n+c], a[c*n+i] = sn*aip+cs*aiq, sn*aip+cs*aiq
		}
		a[r*n+r] = cs*cs*app - 2*cs*sn*apq + sn*sn*aqq
		a[c*n+c] = sn*sn*app + 2*cs*sn*apq + cs*cs*aqq
		a[r*n+c], a[c*n+r] = 0, 0

		for i = 0; i < n; i++ {
			qip, qiq = q[i*n+r], q[i*n+c]
			q[i*n+r] = cs*qip - sn*qiq
			q[i*n+c] = sn*qip + cs*qiq
		}
	}

	if maxOff, _, _ = offDiagonalMax(a, n); maxOff >= tol {
		return nil, nil, matrixErrorf(opEigen, ErrMatrixEigenFailed)
	}

	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = a[i*n+i]
	}

	return eigs, qm, nil
}

// offDiagonalMax scans the strict upper triangle of the packed n×n buffer.
func offDiagonalMax(a []float64, n int) (maxOff float64, p, q int) {
	var (
		i, j int
		off  float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if off = math.Abs(a[i*n+j]); off > maxOff {
				maxOff, p, q = off, i, j
			}
		}
	}

	return maxOff, p, q
}

// Eigenvalues returns the full spectrum of a square matrix, sorted by real
// part and then imaginary part.
//
// Symmetric input (within eps, WithEpsilon) is averaged with its transpose
// and goes through the Jacobi kernel, yielding purely real values.
// Nonsymmetric input, or symmetric input on which Jacobi does not converge,
// goes through gonum's general (Hessenberg QR) solver, whose complex
// conjugate pairs are reported as such.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (validation).
//   - ErrMatrixEigenFailed when neither solver converges.
func Eigenvalues(m Matrix, opts ...Option) ([]complex128, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opEigvals, err)
	}
	o := gatherOptions(opts...)

	var vals []complex128
	if ValidateSymmetric(m, o.eps) == nil {
		sm, err := symmetrize(m)
		if err != nil {
			return nil, matrixErrorf(opEigvals, err)
		}
		if sym, _, err := Eigen(sm, o.jacobiTol, o.maxIter); err == nil {
			vals = make([]complex128, len(sym))
			for i, v := range sym {
				vals[i] = complex(v, 0)
			}
		}
	}
	if vals == nil {
		g, err := toGonum(m)
		if err != nil {
			return nil, matrixErrorf(opEigvals, err)
		}
		var eig mat.Eigen
		if ok := eig.Factorize(g, mat.EigenNone); !ok {
			return nil, matrixErrorf(opEigvals, ErrMatrixEigenFailed)
		}
		vals = eig.Values(nil)
	}

	slices.SortFunc(vals, func(x, y complex128) int {
		if c := cmp.Compare(real(x), real(y)); c != 0 {
			return c
		}

		return cmp.Compare(imag(x), imag(y))
	})

	return vals, nil
}

// symmetrize returns (m + mᵀ)/2 as a fresh Dense.
func symmetrize(m Matrix) (*Dense, error) {
	src, err := toDense(m)
	if err != nil {
		return nil, err
	}
	n := src.r
	out := &Dense{r: n, c: n, data: make([]float64, n*n)}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			out.data[i*n+j] = (src.data[i*n+j] + src.data[j*n+i]) / 2
		}
	}

	return out, nil
}

// toGonum copies m into a gonum dense matrix.
func toGonum(m Matrix) (*mat.Dense, error) {
	src, err := toDense(m)
	if err != nil {
		return nil, err
	}
	data := make([]float64, len(src.data))
	copy(data, src.data)

	return mat.NewDense(src.r, src.c, data), nil
}
