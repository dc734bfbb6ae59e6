package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/calchub/matrix"
)

// ExampleAnalyze reports determinant, spectrum and inverse of a 2×2 matrix.
func ExampleAnalyze() {
	m, err := matrix.NewSquare([][]float64{{2, 1}, {1, 2}})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	rep, err := matrix.Analyze(m)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	eig := make([]float64, len(rep.Eigenvalues))
	for i, ev := range rep.Eigenvalues {
		eig[i] = real(ev)
	}
	fmt.Printf("det = %.4f\n", rep.Determinant)
	fmt.Printf("eigenvalues: %.4f\n", eig)
	fmt.Println("invertible:", rep.Invertible)
	for i, row := range rep.Inverse.RawRows() {
		fmt.Printf("inverse row %d: %.4f\n", i, row)
	}
	// Output:
	// det = 3.0000
	// eigenvalues: [1.0000 3.0000]
	// invertible: true
	// inverse row 0: [0.6667 -0.3333]
	// inverse row 1: [-0.3333 0.6667]
}

// ExampleAnalyze_singular shows the defined non-invertible outcome.
func ExampleAnalyze_singular() {
	m, _ := matrix.NewSquare([][]float64{{1, 2}, {2, 4}})
	rep, _ := matrix.Analyze(m)
	fmt.Println(rep.Determinant, rep.Invertible, rep.Inverse == nil)
	// Output: 0 false true
}
