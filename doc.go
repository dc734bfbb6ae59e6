// SPDX-License-Identifier: MIT

// Package calchub is the numeric core of a scientific calculator hub:
// a safe expression evaluator, numeric calculus over sampled functions,
// square-matrix analysis, and fixed-rate currency and unit conversion.
//
// Under the hood, everything is organized into small packages:
//
//	sampled/   the (domain, values) container shared by the engines
//	expr/      allow-listed expression compiler and evaluator over x
//	calculus/  finite-difference gradient, mean slope, trapezoidal integral
//	matrix/    Dense matrices, pivoted LU, determinant, inverse, eigenvalues
//	convert/   immutable rate tables and the embedded YAML catalog
//	arith/     the classic two-operand calculator
//	constants/ fundamental physical constants and their display form
//	hub/       request variants, limits, dispatch and structured logging
//	cmd/calchub  one request per invocation from the command line
//
// Quick start:
//
//	h := hub.New()
//	resp := h.Dispatch(hub.PlotRequest{Expression: "np.sin(x) * x**2", XMin: -10, XMax: 10})
//	fmt.Println(resp.Message)
//
// Every engine is deterministic and pure Go. Errors are package sentinels
// matched with errors.Is; nothing in the library panics on user input.
package calchub
