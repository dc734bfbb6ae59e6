// SPDX-License-Identifier: MIT

package expr

import (
	"math"
	"sort"
)

// Variable is the single free variable an expression may reference.
const Variable = "x"

// compatPrefix is accepted in front of allow-listed names ("np.sin").
const compatPrefix = "np"

// function is one entry of the closed function table.
type function struct {
	name  string
	arity int
	call  func(args []float64) float64
}

func unary(name string, f func(float64) float64) function {
	return function{name: name, arity: 1, call: func(a []float64) float64 { return f(a[0]) }}
}

func binary(name string, f func(float64, float64) float64) function {
	return function{name: name, arity: 2, call: func(a []float64) float64 { return f(a[0], a[1]) }}
}

// functions is the allow-list. It is never mutated after package init.
var functions = map[string]function{
	"sin":   unary("sin", math.Sin),
	"cos":   unary("cos", math.Cos),
	"tan":   unary("tan", math.Tan),
	"asin":  unary("asin", math.Asin),
	"acos":  unary("acos", math.Acos),
	"atan":  unary("atan", math.Atan),
	"sinh":  unary("sinh", math.Sinh),
	"cosh":  unary("cosh", math.Cosh),
	"tanh":  unary("tanh", math.Tanh),
	"exp":   unary("exp", math.Exp),
	"log":   unary("log", math.Log), // natural logarithm, as numpy.log
	"ln":    unary("ln", math.Log),
	"log10": unary("log10", math.Log10),
	"log2":  unary("log2", math.Log2),
	"sqrt":  unary("sqrt", math.Sqrt),
	"abs":   unary("abs", math.Abs),
	"pow":   binary("pow", math.Pow),
	"atan2": binary("atan2", math.Atan2),
}

// constants are the named numeric literals.
var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// Functions returns the sorted names of all allow-listed functions.
func Functions() []string {
	out := make([]string, 0, len(functions))
	for name := range functions {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Constants returns the sorted names of all allow-listed constants.
func Constants() []string {
	out := make([]string, 0, len(constants))
	for name := range constants {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
