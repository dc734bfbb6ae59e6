// SPDX-License-Identifier: MIT

// Package expr is the allow-listed expression evaluator behind the graphing
// panel: it turns user text such as "sin(x) * x**2" into sampled values.
//
// 🔒 Trust boundary
//
//	Expressions are untrusted input. The package never hands text to a
//	general-purpose evaluator; instead a recursive-descent parser builds an
//	AST over a closed grammar:
//
//	  expr    := term   (('+'|'-') term)*
//	  term    := unary  (('*'|'/') unary)*
//	  unary   := ('+'|'-') unary | power
//	  power   := primary (('^'|'**') unary)?
//	  primary := number | 'x' | constant | call | '(' expr ')'
//	  call    := function '(' expr (',' expr)* ')'
//
//	The only identifiers are the variable x, the constants pi and e, and
//	the functions listed in Functions(). An "np." prefix is accepted on
//	allow-listed names so inputs written for a numpy-based
//	plotter ("np.sin(x)") keep working. Anything else is rejected at
//	compile time.
//
//	Numbers are decimal: 3, 2.5, .5, 1e-3. Integers with leading zeros
//	(010) and base-prefixed or underscored forms (0x10, 0b1, 1_000) are
//	syntax errors.
//
// ✨ Behavior
//   - Compile parses once; (*Expression).Eval evaluates one point.
//   - Evaluate / Sample bind x to every domain point in order and return a
//     sampled.Function with exactly one value per point.
//   - Any NaN or ±Inf produced anywhere in the tree (1/0, log(-1),
//     sqrt(-1), overflow) fails the whole evaluation with ErrNonFinite.
//   - All failures are *EvalError values wrapping one sentinel; nothing
//     panics on user input.
//
// Usage:
//
//	fn, err := expr.Sample("np.sin(x) * x**2", -10, 10, 500)
//	var ee *expr.EvalError
//	if errors.As(err, &ee) {
//	  fmt.Println("Invalid Equation:", ee)
//	}
//
// Complexity: compile O(len(src)); evaluation O(len(domain) · nodes).
package expr
