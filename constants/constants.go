// SPDX-License-Identifier: MIT

// Package constants holds the fundamental physical constants shown on the
// physics panel (CODATA 2018 exact or recommended values).
package constants

import (
	"math"
	"strconv"
	"strings"
)

// Constant is one named physical constant.
type Constant struct {
	Symbol string
	Name   string
	Value  float64
	Unit   string
}

var table = []Constant{
	{Symbol: "c", Name: "Speed of Light", Value: 299792458, Unit: "m/s"},
	{Symbol: "h", Name: "Planck Constant", Value: 6.62607015e-34, Unit: "J·s"},
	{Symbol: "G", Name: "Gravitational Constant", Value: 6.67430e-11, Unit: "m³·kg⁻¹·s⁻²"},
	{Symbol: "Na", Name: "Avogadro Number", Value: 6.02214076e23, Unit: "mol⁻¹"},
}

// All returns the constants in display order. The slice is a copy.
func All() []Constant { return append([]Constant(nil), table...) }

// Lookup finds a constant by its symbol (case-sensitive: "G" is not "g").
func Lookup(symbol string) (Constant, bool) {
	for _, c := range table {
		if c.Symbol == symbol {
			return c, true
		}
	}

	return Constant{}, false
}

// Display renders the value with its unit:
//   - integers of magnitude ≥ 1e6 with thousands separators: "299,792,458 m/s"
//   - everything else as a 4-digit mantissa: "6.626 x 10^-34 J·s"
func (c Constant) Display() string {
	s := FormatValue(c.Value)
	if c.Unit != "" {
		s += " " + c.Unit
	}

	return s
}

// FormatValue renders v the way Display does, without a unit.
func FormatValue(v float64) string {
	abs := math.Abs(v)
	if abs >= 1e6 && abs < 1e15 && v == math.Trunc(v) {
		return groupThousands(strconv.FormatInt(int64(v), 10))
	}
	if v == 0 || (abs >= 1e-3 && abs < 1e6) {
		return strconv.FormatFloat(v, 'g', 4, 64)
	}

	mant, exp, _ := strings.Cut(strconv.FormatFloat(v, 'e', 3, 64), "e")
	n, _ := strconv.Atoi(exp) // strips the leading '+' and zero padding

	return mant + " x 10^" + strconv.Itoa(n)
}

func groupThousands(digits string) string {
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}

	return sign + b.String()
}
