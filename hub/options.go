// SPDX-License-Identifier: MIT

package hub

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/calchub/convert"
)

// Defaults for the graphing panel and caller bounds.
const (
	DefaultExpression = "np.sin(x)"
	DefaultXMin       = -10.0
	DefaultXMax       = 10.0
	DefaultSamples    = 500
)

const panicLimitsInvalid = "hub: WithLimits: inconsistent limits"

// Limits bounds what a request may ask for.
type Limits struct {
	XMin, XMax             float64 // plot range must lie within [XMin, XMax]
	Samples                int     // sample count when a PlotRequest leaves it 0
	MinSamples, MaxSamples int
	MinDim, MaxDim         int // matrix n
}

// DefaultLimits mirror the interactive panel: x in [-100, 100], 500
// samples, 2×2 up to 5×5 matrices.
var DefaultLimits = Limits{
	XMin: -100, XMax: 100,
	Samples:    DefaultSamples,
	MinSamples: 2, MaxSamples: 10000,
	MinDim: 2, MaxDim: 5,
}

func (l Limits) valid() bool {
	return !math.IsNaN(l.XMin) && !math.IsNaN(l.XMax) && l.XMin < l.XMax &&
		!math.IsInf(l.XMin, 0) && !math.IsInf(l.XMax, 0) &&
		l.MinSamples >= 2 && l.MinSamples <= l.MaxSamples &&
		l.Samples >= l.MinSamples && l.Samples <= l.MaxSamples &&
		l.MinDim >= 1 && l.MinDim <= l.MaxDim
}

// Option configures a Hub.
type Option func(*Hub)

// WithLogger sets the structured logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(h *Hub) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithCatalog replaces the embedded conversion catalog; nil keeps it.
func WithCatalog(c *convert.Catalog) Option {
	return func(h *Hub) {
		if c != nil {
			h.catalog = c
		}
	}
}

// WithLimits replaces DefaultLimits. Panics on inconsistent limits.
func WithLimits(l Limits) Option {
	if !l.valid() {
		panic(panicLimitsInvalid)
	}

	return func(h *Hub) { h.limits = l }
}
