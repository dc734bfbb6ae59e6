// SPDX-License-Identifier: MIT

package hub

import (
	"fmt"

	"github.com/katalvlaran/calchub/arith"
	"github.com/katalvlaran/calchub/convert"
)

// Mode names the engine a request is routed to.
type Mode int

// Modes in menu order.
const (
	ModeClassic Mode = iota + 1
	ModeCurrency
	ModeUnits
	ModePlot
	ModeMatrix
	ModeConstants
)

var modeNames = map[Mode]string{
	ModeClassic:   "classic",
	ModeCurrency:  "currency",
	ModeUnits:     "units",
	ModePlot:      "plot",
	ModeMatrix:    "matrix",
	ModeConstants: "constants",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}

	return "unknown"
}

// ParseMode maps a name such as "plot" to its Mode.
func ParseMode(name string) (Mode, error) {
	for m := ModeClassic; m <= ModeConstants; m++ {
		if modeNames[m] == name {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// Request is one calculator request. The set of implementations is closed.
type Request interface {
	Mode() Mode
	isRequest()
}

// ClassicRequest applies a two-operand operation.
type ClassicRequest struct {
	Op   arith.Op
	A, B float64
}

// CurrencyRequest converts Amount between currency codes.
type CurrencyRequest struct {
	Amount   float64
	From, To string
}

// UnitRequest converts Amount within one unit category. With From and To
// both empty the amount is converted along every declared pair.
type UnitRequest struct {
	Category convert.Category
	Amount   float64
	From, To string
}

// PlotRequest samples Expression over [XMin, XMax] and summarises it.
// Samples == 0 selects Limits.Samples.
type PlotRequest struct {
	Expression string
	XMin, XMax float64
	Samples    int
}

// MatrixRequest analyses a square matrix given as rows.
type MatrixRequest struct {
	Cells [][]float64
}

// ConstantsRequest lists the physical constants, or one when Symbol is set.
type ConstantsRequest struct {
	Symbol string
}

func (ClassicRequest) Mode() Mode   { return ModeClassic }
func (CurrencyRequest) Mode() Mode  { return ModeCurrency }
func (UnitRequest) Mode() Mode      { return ModeUnits }
func (PlotRequest) Mode() Mode      { return ModePlot }
func (MatrixRequest) Mode() Mode    { return ModeMatrix }
func (ConstantsRequest) Mode() Mode { return ModeConstants }

func (ClassicRequest) isRequest()   {}
func (CurrencyRequest) isRequest()  {}
func (UnitRequest) isRequest()      {}
func (PlotRequest) isRequest()      {}
func (MatrixRequest) isRequest()    {}
func (ConstantsRequest) isRequest() {}

// DefaultCells returns the n×n starter grid A[i][j] = i + j, or nil when
// n <= 0.
func DefaultCells(n int) [][]float64 {
	if n <= 0 {
		return nil
	}
	cells := make([][]float64, n)
	for i := range cells {
		cells[i] = make([]float64, n)
		for j := range cells[i] {
			cells[i][j] = float64(i + j)
		}
	}

	return cells
}
