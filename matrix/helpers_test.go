package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/calchub/matrix"
)

// hide wraps a Matrix so the concrete *Dense type is not visible,
// forcing the interface-based read path.
type hide struct{ matrix.Matrix }

// MustSquare builds a square Dense or fails the test.
func MustSquare(t *testing.T, cells [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewSquare(cells)
	require.NoError(t, err)

	return m
}

// randomCells returns an n×n grid with entries in [-5, 5).
func randomCells(rng *rand.Rand, n int) [][]float64 {
	cells := make([][]float64, n)
	for i := range cells {
		cells[i] = make([]float64, n)
		for j := range cells[i] {
			cells[i][j] = rng.Float64()*10 - 5
		}
	}

	return cells
}

// symmetricCells returns B + Bᵀ for a random B.
func symmetricCells(rng *rand.Rand, n int) [][]float64 {
	b := randomCells(rng, n)
	cells := make([][]float64, n)
	for i := range cells {
		cells[i] = make([]float64, n)
		for j := range cells[i] {
			cells[i][j] = b[i][j] + b[j][i]
		}
	}

	return cells
}

// gonumDense flattens cells into a gonum reference matrix.
func gonumDense(cells [][]float64) *mat.Dense {
	n := len(cells)
	data := make([]float64, 0, n*n)
	for _, row := range cells {
		data = append(data, row...)
	}

	return mat.NewDense(n, n, data)
}
