package convert_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/calchub/convert"
)

func currency(t *testing.T) *convert.Table {
	t.Helper()
	tab, err := convert.Default().Table(convert.Currency)
	require.NoError(t, err)

	return tab
}

func TestConvert_DirectRates(t *testing.T) {
	tab := currency(t)
	cases := []struct {
		from, to string
		want     float64
	}{
		{"USD", "INR", 83.50},
		{"EUR", "INR", 90.20},
		{"GBP", "INR", 105.10},
		{"USD", "EUR", 0.92},
	}
	for _, tc := range cases {
		t.Run(tc.from+"->"+tc.to, func(t *testing.T) {
			res := tab.Convert(1, tc.from, tc.to)
			require.True(t, res.Available)
			assert.Equal(t, tc.want, res.Converted)
			assert.Empty(t, res.Message)
		})
	}

	res := tab.Convert(10, "USD", "INR")
	assert.InDelta(t, 835.0, res.Converted, 1e-9)
}

func TestConvert_Identity(t *testing.T) {
	var empty convert.Table
	for _, amount := range []float64{0, 1, -3.5, 1e300} {
		for _, tab := range []*convert.Table{currency(t), &empty} {
			res := tab.Convert(amount, "JPY", "JPY")
			assert.True(t, res.Available)
			assert.Equal(t, amount, res.Converted)
		}
	}
}

func TestConvert_Unavailable(t *testing.T) {
	tab := currency(t)
	res := tab.Convert(1, "JPY", "CAD")
	assert.False(t, res.Available)
	assert.Contains(t, res.Message, "Try USD to INR!")

	// No symmetry is assumed.
	res = tab.Convert(1, "INR", "USD")
	assert.False(t, res.Available)
}

func TestConvert_UnitTables(t *testing.T) {
	cat := convert.Default()
	cases := []struct {
		category convert.Category
		from, to string
		amount   float64
		want     float64
	}{
		{convert.Length, "m", "ft", 1, 3.28084},
		{convert.Length, "km", "mi", 10, 6.21371},
		{convert.Mass, "kg", "lb", 2, 4.40924},
		{convert.Energy, "kWh", "J", 1, 3.6e6},
		{convert.Energy, "cal", "J", 1, 4.184},
	}
	for _, tc := range cases {
		tab, err := cat.Table(tc.category)
		require.NoError(t, err)
		res := tab.Convert(tc.amount, tc.from, tc.to)
		require.True(t, res.Available, "%s %s->%s", tc.category, tc.from, tc.to)
		assert.InDelta(t, tc.want, res.Converted, 1e-9)
	}
}

func TestUnitsAndPairs(t *testing.T) {
	tab := currency(t)
	assert.Equal(t, []string{"USD", "EUR", "GBP", "JPY", "INR", "CAD"}, tab.Units())
	assert.Len(t, tab.Pairs(), 4)
	assert.Equal(t, convert.Pair{From: "USD", To: "INR"}, tab.Hint())

	// Returned slices are copies.
	u := tab.Units()
	u[0] = "XXX"
	assert.Equal(t, "USD", tab.Units()[0])
}

func TestNewTable_Validation(t *testing.T) {
	_, err := convert.NewTable("t", []convert.Rate{{From: "", To: "B", Factor: 1}}, convert.Pair{})
	assert.ErrorIs(t, err, convert.ErrEmptyCode)

	for _, f := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = convert.NewTable("t", []convert.Rate{{From: "A", To: "B", Factor: f}}, convert.Pair{})
		assert.ErrorIs(t, err, convert.ErrBadFactor, "factor %v", f)
	}

	_, err = convert.NewTable("t", []convert.Rate{
		{From: "A", To: "B", Factor: 1},
		{From: "A", To: "B", Factor: 2},
	}, convert.Pair{})
	assert.ErrorIs(t, err, convert.ErrDuplicatePair)

	_, err = convert.NewTable("t", []convert.Rate{{From: "A", To: "B", Factor: 1}}, convert.Pair{From: "B", To: "A"})
	assert.ErrorIs(t, err, convert.ErrBadHint)

	tab, err := convert.NewTable("t", []convert.Rate{{From: "A", To: "B", Factor: 2}}, convert.Pair{})
	require.NoError(t, err)
	assert.Equal(t, convert.Pair{From: "A", To: "B"}, tab.Hint())
}

func TestLoadCatalog(t *testing.T) {
	doc := `
tables:
  - category: length
    rates:
      - {from: in, to: cm, factor: 2.54}
`
	cat, err := convert.LoadCatalog(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []convert.Category{convert.Length}, cat.Categories())

	tab, err := cat.Table(convert.Length)
	require.NoError(t, err)
	assert.InDelta(t, 25.4, tab.Convert(10, "in", "cm").Converted, 1e-12)

	_, err = cat.Table(convert.Currency)
	assert.ErrorIs(t, err, convert.ErrUnknownCategory)
}

func TestLoadCatalog_Errors(t *testing.T) {
	cases := map[string]struct {
		doc  string
		want error
	}{
		"empty":         {"", convert.ErrBadCatalog},
		"no tables":     {"tables: []\n", convert.ErrBadCatalog},
		"unknown key":   {"tables:\n  - category: mass\n    ratez: []\n", convert.ErrBadCatalog},
		"not yaml":      {"tables: [", convert.ErrBadCatalog},
		"bad category":  {"tables:\n  - category: time\n", convert.ErrUnknownCategory},
		"repeated":      {"tables:\n  - category: mass\n  - category: mass\n", convert.ErrBadCatalog},
		"bad factor":    {"tables:\n  - category: mass\n    rates: [{from: a, to: b, factor: -2}]\n", convert.ErrBadFactor},
		"hint mismatch": {"tables:\n  - category: mass\n    hint: {from: a, to: b}\n", convert.ErrBadHint},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := convert.LoadCatalog(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDefault_AllCategories(t *testing.T) {
	cat := convert.Default()
	assert.Same(t, cat, convert.Default())
	assert.Equal(t, []convert.Category{convert.Currency, convert.Length, convert.Mass, convert.Energy}, cat.Categories())

	_, err := convert.ParseCategory("volume")
	assert.ErrorIs(t, err, convert.ErrUnknownCategory)
	c, err := convert.ParseCategory("energy")
	require.NoError(t, err)
	assert.Equal(t, convert.Energy, c)
}
