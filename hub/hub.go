// SPDX-License-Identifier: MIT

package hub

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/calchub/arith"
	"github.com/katalvlaran/calchub/calculus"
	"github.com/katalvlaran/calchub/constants"
	"github.com/katalvlaran/calchub/convert"
	"github.com/katalvlaran/calchub/expr"
	"github.com/katalvlaran/calchub/matrix"
)

// Hub dispatches requests to the calculator engines.
type Hub struct {
	logger  *slog.Logger
	catalog *convert.Catalog
	limits  Limits
}

// New builds a Hub with the embedded catalog, DefaultLimits and
// slog.Default() unless overridden.
func New(opts ...Option) *Hub {
	h := &Hub{
		logger:  slog.Default(),
		catalog: convert.Default(),
		limits:  DefaultLimits,
	}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Limits returns the bounds in effect.
func (h *Hub) Limits() Limits { return h.limits }

// Catalog returns the conversion catalog in use.
func (h *Hub) Catalog() *convert.Catalog { return h.catalog }

// Dispatch runs one request to completion.
func (h *Hub) Dispatch(req Request) Response {
	start := time.Now()
	resp := Response{ID: uuid.NewString()}

	// Only the value types are dispatched; pointers to them fall through.
	switch r := req.(type) {
	case ClassicRequest:
		resp = h.runClassic(resp, r)
		resp.Mode = ModeClassic
	case CurrencyRequest:
		resp = h.runCurrency(resp, r)
		resp.Mode = ModeCurrency
	case UnitRequest:
		resp = h.runUnits(resp, r)
		resp.Mode = ModeUnits
	case PlotRequest:
		resp = h.runPlot(resp, r)
		resp.Mode = ModePlot
	case MatrixRequest:
		resp = h.runMatrix(resp, r)
		resp.Mode = ModeMatrix
	case ConstantsRequest:
		resp = h.runConstants(resp, r)
		resp.Mode = ModeConstants
	default:
		resp = fail(resp, fmt.Errorf("%w: %T", ErrUnknownRequest, req))
	}

	h.logger.Debug("dispatch",
		slog.String("id", resp.ID),
		slog.String("mode", resp.Mode.String()),
		slog.String("outcome", resp.Level.String()),
		slog.Duration("elapsed", time.Since(start)),
	)
	if resp.Level == Error {
		h.logger.Warn("request failed",
			slog.String("id", resp.ID),
			slog.String("mode", resp.Mode.String()),
			slog.Any("error", resp.Err),
		)
	}

	return resp
}

func fail(resp Response, err error) Response {
	resp.Level, resp.Message, resp.Err, resp.Payload = Error, err.Error(), err, nil

	return resp
}

func (h *Hub) runClassic(resp Response, r ClassicRequest) Response {
	v, err := arith.Apply(r.Op, r.A, r.B)
	if err != nil {
		return fail(resp, err)
	}
	resp.Payload = ClassicResult{Op: r.Op, A: r.A, B: r.B, Value: v}
	if r.Op == arith.WholeSquare {
		resp.Level = Info
		resp.Message = fmt.Sprintf("Formula: (%v + %v)² = %v", r.A, r.B, v)

		return resp
	}
	resp.Message = fmt.Sprintf("Result: %v", v)

	return resp
}

func (h *Hub) runCurrency(resp Response, r CurrencyRequest) Response {
	tab, err := h.catalog.Table(convert.Currency)
	if err != nil {
		return fail(resp, err)
	}
	res := tab.Convert(r.Amount, r.From, r.To)
	resp.Payload = res
	switch {
	case !res.Available:
		resp.Level, resp.Message = Info, res.Message
	case r.From == r.To:
		resp.Message = fmt.Sprintf("Result: %v %s", res.Converted, res.To)
	default:
		resp.Message = fmt.Sprintf("💰 %v %s = %.2f %s", res.Amount, res.From, res.Converted, res.To)
	}

	return resp
}

func (h *Hub) runUnits(resp Response, r UnitRequest) Response {
	tab, err := h.catalog.Table(r.Category)
	if err != nil {
		return fail(resp, err)
	}

	var results []convert.Result
	if r.From == "" && r.To == "" {
		for _, p := range tab.Pairs() {
			results = append(results, tab.Convert(r.Amount, p.From, p.To))
		}
	} else {
		results = []convert.Result{tab.Convert(r.Amount, r.From, r.To)}
	}
	resp.Payload = results

	lines := make([]string, 0, len(results))
	for _, res := range results {
		if !res.Available {
			resp.Level = Info
			lines = append(lines, res.Message)

			continue
		}
		lines = append(lines, fmt.Sprintf("%v %s = %.4f %s", res.Amount, res.From, res.Converted, res.To))
	}
	resp.Message = strings.Join(lines, "\n")

	return resp
}

func (h *Hub) runPlot(resp Response, r PlotRequest) Response {
	l := h.limits
	if !(r.XMin >= l.XMin && r.XMax <= l.XMax && r.XMin < r.XMax) {
		return fail(resp, fmt.Errorf("%w: x range [%v, %v] must lie within [%v, %v] with min < max",
			ErrOutOfBounds, r.XMin, r.XMax, l.XMin, l.XMax))
	}
	n := r.Samples
	if n == 0 {
		n = l.Samples
	}
	if n < l.MinSamples || n > l.MaxSamples {
		return fail(resp, fmt.Errorf("%w: %d samples outside [%d, %d]", ErrOutOfBounds, n, l.MinSamples, l.MaxSamples))
	}

	fn, err := expr.Sample(r.Expression, r.XMin, r.XMax, n)
	if err != nil {
		return fail(resp, fmt.Errorf("invalid equation: %w", err))
	}
	sum, err := calculus.Estimate(fn)
	if err != nil {
		return fail(resp, err)
	}

	resp.Payload = PlotResult{Expression: r.Expression, Function: fn, Summary: sum}
	resp.Message = fmt.Sprintf("Plot of f(x) = %s\nMean Slope (Derivative): %.4f\nArea Under Curve (Integral): %.4f",
		r.Expression, sum.MeanSlope, sum.Integral)

	return resp
}

func (h *Hub) runMatrix(resp Response, r MatrixRequest) Response {
	n := len(r.Cells)
	if n < h.limits.MinDim || n > h.limits.MaxDim {
		return fail(resp, fmt.Errorf("%w: matrix size %d outside [%d, %d]", ErrOutOfBounds, n, h.limits.MinDim, h.limits.MaxDim))
	}
	m, err := matrix.NewSquare(r.Cells)
	if err != nil {
		return fail(resp, err)
	}
	rep, err := matrix.Analyze(m)
	if err != nil {
		return fail(resp, err)
	}
	resp.Payload = rep

	var b strings.Builder
	fmt.Fprintf(&b, "Determinant: %g\n", rep.Determinant)
	fmt.Fprintf(&b, "Eigenvalues: %s\n", formatEigenvalues(rep.Eigenvalues))
	b.WriteString("Inverse:\n")
	if rep.Invertible {
		b.WriteString(strings.TrimSuffix(rep.Inverse.String(), "\n"))
	} else {
		resp.Level = Info
		b.WriteString("Non-invertible")
	}
	resp.Message = b.String()

	return resp
}

func formatEigenvalues(vals []complex128) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		if imag(v) == 0 {
			parts[i] = fmt.Sprintf("%.6g", real(v))
		} else {
			parts[i] = fmt.Sprintf("%.6g", v)
		}
	}

	return "[" + strings.Join(parts, " ") + "]"
}

func (h *Hub) runConstants(resp Response, r ConstantsRequest) Response {
	list := constants.All()
	if r.Symbol != "" {
		c, ok := constants.Lookup(r.Symbol)
		if !ok {
			return fail(resp, fmt.Errorf("%w: %q", ErrUnknownConstant, r.Symbol))
		}
		list = []constants.Constant{c}
	}
	resp.Payload = list

	lines := make([]string, len(list))
	for i, c := range list {
		lines[i] = fmt.Sprintf("%s (%s): %s", c.Name, c.Symbol, c.Display())
	}
	resp.Message = strings.Join(lines, "\n")

	return resp
}

// IsBoundsError reports whether resp was rejected by Limits.
func IsBoundsError(resp Response) bool { return errors.Is(resp.Err, ErrOutOfBounds) }
