// SPDX-License-Identifier: MIT

package hub

import (
	"github.com/katalvlaran/calchub/arith"
	"github.com/katalvlaran/calchub/calculus"
	"github.com/katalvlaran/calchub/sampled"
)

// Level classifies a Response for display.
type Level int

const (
	Success Level = iota // a computed result
	Info                 // a defined non-result: unavailable rate, singular matrix, formula note
	Error                // evaluation failure or rejected input
)

func (l Level) String() string {
	switch l {
	case Success:
		return "success"
	case Info:
		return "info"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Response is the outcome of one Dispatch.
//
// Payload holds the typed result:
//   - ModeClassic:   ClassicResult
//   - ModeCurrency:  convert.Result
//   - ModeUnits:     []convert.Result
//   - ModePlot:      PlotResult
//   - ModeMatrix:    matrix.Report
//   - ModeConstants: []constants.Constant
//
// Payload is nil and Err non-nil when Level == Error.
type Response struct {
	ID      string // fresh UUID, also logged as "id"
	Mode    Mode
	Level   Level
	Message string
	Payload any
	Err     error
}

// ClassicResult is the ModeClassic payload.
type ClassicResult struct {
	Op    arith.Op
	A, B  float64
	Value float64
}

// PlotResult is the ModePlot payload.
type PlotResult struct {
	Expression string
	Function   sampled.Function
	Summary    calculus.Summary
}
