// SPDX-License-Identifier: MIT

// Command calchub runs one calculator request from the command line.
//
// Usage:
//
//	calchub -mode classic -op whole-square -a 2 -b 3
//	calchub -mode currency -amount 10 -from USD -to INR
//	calchub -mode units -category length -amount 5
//	calchub -mode plot -expr "np.sin(x) * x**2" -xmin -10 -xmax 10
//	calchub -mode matrix -cells "2,1;1,2"
//	calchub -mode constants
//
// The exit status is 1 when the request fails or the flags are invalid.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/calchub/convert"
	"github.com/katalvlaran/calchub/hub"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args, dispatches one request and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("calchub", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var f flags
	fs.StringVar(&f.mode, "mode", "classic", "engine: classic, currency, units, plot, matrix, constants")
	fs.StringVar(&f.op, "op", "add", "classic operation: add, sub, mul, div, square, cube, whole-square")
	fs.Float64Var(&f.a, "a", 10, "classic operand A")
	fs.Float64Var(&f.b, "b", 5, "classic operand B")
	fs.Float64Var(&f.amount, "amount", 1, "amount to convert")
	fs.StringVar(&f.from, "from", "", "source code (currency default USD)")
	fs.StringVar(&f.to, "to", "", "target code (currency default INR)")
	fs.StringVar(&f.category, "category", string(convert.Length), "unit category: length, mass, energy, currency")
	fs.StringVar(&f.expr, "expr", hub.DefaultExpression, "function of x")
	fs.Float64Var(&f.xmin, "xmin", hub.DefaultXMin, "plot range start")
	fs.Float64Var(&f.xmax, "xmax", hub.DefaultXMax, "plot range end")
	fs.IntVar(&f.samples, "samples", 0, "plot sample count (0 = default)")
	fs.StringVar(&f.cells, "cells", "", `matrix rows, e.g. "1,2;3,4"`)
	fs.IntVar(&f.size, "size", 2, "matrix size when -cells is empty (A[i,j] = i+j)")
	fs.StringVar(&f.symbol, "symbol", "", "constant symbol (empty lists all)")
	fs.StringVar(&f.rates, "rates", "", "YAML conversion catalog replacing the built-in rates")
	fs.BoolVar(&f.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	opts := []hub.Option{hub.WithLogger(logger)}
	if f.rates != "" {
		cat, err := loadCatalog(f.rates)
		if err != nil {
			logger.Error("load rates", slog.String("path", f.rates), slog.Any("error", err))

			return 1
		}
		opts = append(opts, hub.WithCatalog(cat))
	}

	req, err := f.request()
	if err != nil {
		fmt.Fprintln(stderr, "calchub:", err)

		return 1
	}

	resp := hub.New(opts...).Dispatch(req)
	fmt.Fprintln(stdout, resp.Message)
	if resp.Level == hub.Error {
		return 1
	}

	return 0
}

func loadCatalog(path string) (*convert.Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return convert.LoadCatalog(file)
}
