// SPDX-License-Identifier: MIT

package expr

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// node is one vertex of the expression tree.
// eval returns ErrNonFinite (wrapped with the offending sub-expression)
// as soon as any vertex yields NaN or ±Inf.
type node interface {
	eval(x float64) (float64, error)
	String() string
}

// numberNode is a numeric literal.
type numberNode float64

func (n numberNode) eval(float64) (float64, error) { return float64(n), nil }
func (n numberNode) String() string                 { return strconv.FormatFloat(float64(n), 'g', -1, 64) }

// constantNode is a named constant (pi, e).
type constantNode struct {
	name  string
	value float64
}

func (c constantNode) eval(float64) (float64, error) { return c.value, nil }
func (c constantNode) String() string                 { return c.name }

// variableNode is the free variable x.
type variableNode struct{}

func (variableNode) eval(x float64) (float64, error) { return x, nil }
func (variableNode) String() string                  { return Variable }

// unaryNode is a prefix sign.
type unaryNode struct {
	op  rune // '+' or '-'
	arg node
}

func (u unaryNode) eval(x float64) (float64, error) {
	v, err := u.arg.eval(x)
	if err != nil {
		return 0, err
	}
	if u.op == '-' {
		v = -v
	}

	return v, nil
}

func (u unaryNode) String() string { return "(" + string(u.op) + u.arg.String() + ")" }

// binaryNode is an infix operator: + - * / ^.
type binaryNode struct {
	op          rune
	left, right node
}

func (b binaryNode) eval(x float64) (float64, error) {
	l, err := b.left.eval(x)
	if err != nil {
		return 0, err
	}
	r, err := b.right.eval(x)
	if err != nil {
		return 0, err
	}

	var v float64
	switch b.op {
	case '+':
		v = l + r
	case '-':
		v = l - r
	case '*':
		v = l * r
	case '/':
		v = l / r
	case '^':
		v = math.Pow(l, r)
	default:
		// unreachable: the parser only builds the operators above
		return 0, fmt.Errorf("%w: operator %q", ErrSyntax, b.op)
	}

	return finite(b, v)
}

func (b binaryNode) String() string {
	return "(" + b.left.String() + " " + string(b.op) + " " + b.right.String() + ")"
}

// callNode applies an allow-listed function.
type callNode struct {
	fn   function
	args []node
}

func (c callNode) eval(x float64) (float64, error) {
	vals := make([]float64, len(c.args))
	var err error
	for i, a := range c.args {
		if vals[i], err = a.eval(x); err != nil {
			return 0, err
		}
	}

	return finite(c, c.fn.call(vals))
}

func (c callNode) String() string {
	parts := make([]string, len(c.args))
	for i, a := range c.args {
		parts[i] = a.String()
	}

	return c.fn.name + "(" + strings.Join(parts, ", ") + ")"
}

// finite passes v through or reports the sub-expression that went non-finite.
func finite(n node, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s = %v", ErrNonFinite, n.String(), v)
	}

	return v, nil
}
