// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/calchub/arith"
	"github.com/katalvlaran/calchub/convert"
	"github.com/katalvlaran/calchub/hub"
)

var errBadCells = errors.New("malformed -cells")

// flags holds the raw command-line values.
type flags struct {
	mode, op             string
	a, b, amount         float64
	from, to, category   string
	expr                 string
	xmin, xmax           float64
	samples, size        int
	cells, symbol, rates string
	verbose              bool
}

// request builds the hub request selected by -mode.
func (f flags) request() (hub.Request, error) {
	mode, err := hub.ParseMode(f.mode)
	if err != nil {
		return nil, err
	}

	switch mode {
	case hub.ModeClassic:
		op, err := arith.ParseOp(f.op)
		if err != nil {
			return nil, err
		}

		return hub.ClassicRequest{Op: op, A: f.a, B: f.b}, nil
	case hub.ModeCurrency:
		from, to := f.from, f.to
		if from == "" {
			from = "USD"
		}
		if to == "" {
			to = "INR"
		}

		return hub.CurrencyRequest{Amount: f.amount, From: from, To: to}, nil
	case hub.ModeUnits:
		cat, err := convert.ParseCategory(f.category)
		if err != nil {
			return nil, err
		}

		return hub.UnitRequest{Category: cat, Amount: f.amount, From: f.from, To: f.to}, nil
	case hub.ModePlot:
		return hub.PlotRequest{Expression: f.expr, XMin: f.xmin, XMax: f.xmax, Samples: f.samples}, nil
	case hub.ModeMatrix:
		if f.cells == "" {
			return hub.MatrixRequest{Cells: hub.DefaultCells(f.size)}, nil
		}
		cells, err := parseCells(f.cells)
		if err != nil {
			return nil, err
		}

		return hub.MatrixRequest{Cells: cells}, nil
	default:
		return hub.ConstantsRequest{Symbol: f.symbol}, nil
	}
}

// parseCells reads rows separated by ';' and values separated by ','.
// Shape checks are left to the matrix package.
func parseCells(s string) ([][]float64, error) {
	rows := strings.Split(s, ";")
	cells := make([][]float64, 0, len(rows))
	for i, row := range rows {
		fields := strings.Split(row, ",")
		vals := make([]float64, len(fields))
		for j, field := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d column %d: %q", errBadCells, i, j, field)
			}
			vals[j] = v
		}
		cells = append(cells, vals)
	}

	return cells, nil
}
