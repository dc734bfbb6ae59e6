package sampled_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/calchub/sampled"
)

func TestNew_Valid(t *testing.T) {
	d := []float64{0, 1, 2}
	v := []float64{5, 6, 7}

	fn, err := sampled.New(d, v)
	require.NoError(t, err)
	assert.Equal(t, 3, fn.Len())
	assert.Equal(t, 2.0, fn.Span())

	// New must copy: mutating the inputs does not leak into fn.
	d[0], v[0] = -1, -1
	assert.Equal(t, 0.0, fn.Domain[0])
	assert.Equal(t, 5.0, fn.Values[0])
}

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name   string
		domain []float64
		values []float64
		want   error
	}{
		{"empty", nil, nil, sampled.ErrTooFewSamples},
		{"single", []float64{1}, []float64{1}, sampled.ErrTooFewSamples},
		{"mismatch", []float64{1, 2}, []float64{1}, sampled.ErrLengthMismatch},
		{"equal points", []float64{1, 1}, []float64{1, 2}, sampled.ErrNotIncreasing},
		{"decreasing", []float64{2, 1}, []float64{1, 2}, sampled.ErrNotIncreasing},
		{"nan value", []float64{1, 2}, []float64{math.NaN(), 2}, sampled.ErrNonFinite},
		{"inf domain", []float64{1, math.Inf(1)}, []float64{1, 2}, sampled.ErrNonFinite},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sampled.New(tc.domain, tc.values)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFunction_ValidateHandBuilt(t *testing.T) {
	fn := sampled.Function{Domain: []float64{0}, Values: []float64{0}}
	assert.ErrorIs(t, fn.Validate(), sampled.ErrTooFewSamples)
	assert.Equal(t, 0.0, sampled.Function{}.Span())
}

func TestLinspace(t *testing.T) {
	xs, err := sampled.Linspace(-10, 10, 5)
	require.NoError(t, err)
	assert.Equal(t, []float64{-10, -5, 0, 5, 10}, xs)

	xs, err = sampled.Linspace(-100, 100, 500)
	require.NoError(t, err)
	require.Len(t, xs, 500)
	assert.Equal(t, -100.0, xs[0])
	assert.Equal(t, 100.0, xs[499])
	for i := 1; i < len(xs); i++ {
		require.Greater(t, xs[i], xs[i-1], "strictly increasing at %d", i)
	}
}

func TestLinspace_Errors(t *testing.T) {
	_, err := sampled.Linspace(0, 1, 1)
	assert.ErrorIs(t, err, sampled.ErrTooFewSamples)

	_, err = sampled.Linspace(1, 1, 10)
	assert.ErrorIs(t, err, sampled.ErrBadRange)

	_, err = sampled.Linspace(2, 1, 10)
	assert.ErrorIs(t, err, sampled.ErrBadRange)

	_, err = sampled.Linspace(math.NaN(), 1, 10)
	assert.ErrorIs(t, err, sampled.ErrBadRange)
}
