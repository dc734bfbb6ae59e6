// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra layer behind the matrix
// panel: square-matrix analysis (determinant, full eigenvalue spectrum and
// inverse) plus the small set of kernels it is built from.
//
// The package provides:
//
//   - Matrix, a minimal mutable 2-D interface, and Dense, its row-major
//     implementation with safe accessors (At/Set never panic).
//   - LU factorization with partial pivoting (Factorize) and the operations
//     derived from it: Determinant, Solve, Inverse.
//   - Eigen, a cyclic-pivot Jacobi kernel for symmetric input, and
//     Eigenvalues, which falls back to gonum's general solver for everything
//     else and so may return complex values.
//   - Analyze, the one-call report used by the hub.
//
// Determinism: fixed loop orders, no map iteration, sorted spectra.
// Errors are package sentinels matched with errors.Is; singular input is a
// defined outcome (Report.Invertible == false), not an error.
//
// Intended sizes are small (the hub caps n at 5). Every kernel is O(n³).
package matrix
