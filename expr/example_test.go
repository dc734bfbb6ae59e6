package expr_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/calchub/expr"
)

// ExampleSample samples x^2 on three points of [0, 2].
func ExampleSample() {
	fn, err := expr.Sample("x^2", 0, 2, 3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(fn.Domain, fn.Values)
	// Output: [0 1 2] [0 1 4]
}

// ExampleCompile_rejected shows that names outside the allow-list never run.
func ExampleCompile_rejected() {
	_, err := expr.Compile("__import__('os')")
	fmt.Println(errors.Is(err, expr.ErrUnknownIdentifier))
	fmt.Println(err)
	// Output:
	// true
	// expr: identifier not allowed: "__import__" (at offset 0 in "__import__('os')")
}
