// SPDX-License-Identifier: MIT

// Package arith implements the classic two-operand calculator.
package arith

import (
	"errors"
	"fmt"
)

var (
	// ErrDivideByZero indicates Div with a zero divisor.
	ErrDivideByZero = errors.New("arith: cannot divide by zero")

	// ErrUnknownOp indicates an Op value or name outside the known set.
	ErrUnknownOp = errors.New("arith: unknown operation")
)

// Op is a classic calculator operation.
type Op int

// Operations in button order.
const (
	Add Op = iota + 1
	Sub
	Mul
	Div
	SquareA     // a²; b is ignored
	CubeA       // a³; b is ignored
	WholeSquare // (a+b)²
)

var opNames = [...]string{
	Add:         "add",
	Sub:         "sub",
	Mul:         "mul",
	Div:         "div",
	SquareA:     "square",
	CubeA:       "cube",
	WholeSquare: "whole-square",
}

var opSymbols = [...]string{
	Add:         "+",
	Sub:         "−",
	Mul:         "×",
	Div:         "÷",
	SquareA:     "²",
	CubeA:       "³",
	WholeSquare: "(a+b)²",
}

func (op Op) valid() bool { return op >= Add && op <= WholeSquare }

// Ops returns every operation in button order.
func Ops() []Op { return []Op{Add, Sub, Mul, Div, SquareA, CubeA, WholeSquare} }

// String returns the user-facing name accepted by ParseOp.
func (op Op) String() string {
	if !op.valid() {
		return fmt.Sprintf("Op(%d)", int(op))
	}

	return opNames[op]
}

// Symbol returns the display glyph.
func (op Op) Symbol() string {
	if !op.valid() {
		return "?"
	}

	return opSymbols[op]
}

// Unary reports whether the operation ignores b.
func (op Op) Unary() bool { return op == SquareA || op == CubeA }

// ParseOp maps a name such as "add" or "whole-square" to its Op.
func ParseOp(name string) (Op, error) {
	for _, op := range Ops() {
		if opNames[op] == name {
			return op, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownOp, name)
}

// Apply evaluates op on a and b.
//
// Errors: ErrDivideByZero for Div with b == 0; ErrUnknownOp.
func Apply(op Op, a, b float64) (float64, error) {
	switch op {
	case Add:
		return a + b, nil
	case Sub:
		return a - b, nil
	case Mul:
		return a * b, nil
	case Div:
		if b == 0 {
			return 0, ErrDivideByZero
		}

		return a / b, nil
	case SquareA:
		return a * a, nil
	case CubeA:
		return a * a * a, nil
	case WholeSquare:
		s := a + b

		return s * s, nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownOp, op)
	}
}
