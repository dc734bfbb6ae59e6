// SPDX-License-Identifier: MIT

package convert

import (
	"fmt"
	"math"
	"strings"
)

// Rate is one ordered conversion: 1 From = Factor To.
type Rate struct {
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Factor float64 `yaml:"factor"`
}

// Pair is an ordered (From, To) key.
type Pair struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// String renders the pair as "FROM to TO".
func (p Pair) String() string { return p.From + " to " + p.To }

// Result is the outcome of one conversion.
type Result struct {
	Amount    float64
	From, To  string
	Converted float64 // meaningful only when Available
	Available bool
	Message   string // advisory text when !Available
}

// Table is an immutable rate table. The zero value is empty but usable:
// every Convert on it is either an identity or unavailable.
type Table struct {
	name  string
	rates map[Pair]float64
	order []Pair   // declaration order
	units []string // selectable codes, declaration order, unique
	hint  Pair
}

// NewTable validates rates and builds a Table.
// The hint pair defaults to the first declared rate when hint is zero.
// units lists extra selectable codes that may lack rates (e.g. JPY); codes
// found in rates are always included.
//
// Errors: ErrEmptyCode, ErrBadFactor, ErrDuplicatePair, ErrBadHint.
func NewTable(name string, rates []Rate, hint Pair, units ...string) (*Table, error) {
	t := &Table{
		name:  name,
		rates: make(map[Pair]float64, len(rates)),
		order: make([]Pair, 0, len(rates)),
	}
	seen := make(map[string]struct{})
	addUnit := func(code string) {
		if _, ok := seen[code]; !ok {
			seen[code] = struct{}{}
			t.units = append(t.units, code)
		}
	}
	for _, u := range units {
		if u = strings.TrimSpace(u); u == "" {
			return nil, fmt.Errorf("%s: %w", name, ErrEmptyCode)
		}
		addUnit(u)
	}

	for i, r := range rates {
		from, to := strings.TrimSpace(r.From), strings.TrimSpace(r.To)
		if from == "" || to == "" {
			return nil, fmt.Errorf("%s: rate %d: %w", name, i, ErrEmptyCode)
		}
		if math.IsNaN(r.Factor) || math.IsInf(r.Factor, 0) || r.Factor <= 0 {
			return nil, fmt.Errorf("%s: rate %d (%s to %s = %v): %w", name, i, from, to, r.Factor, ErrBadFactor)
		}
		p := Pair{From: from, To: to}
		if _, dup := t.rates[p]; dup {
			return nil, fmt.Errorf("%s: %s: %w", name, p, ErrDuplicatePair)
		}
		t.rates[p] = r.Factor
		t.order = append(t.order, p)
		addUnit(from)
		addUnit(to)
	}

	switch {
	case hint != (Pair{}):
		if _, ok := t.rates[hint]; !ok {
			return nil, fmt.Errorf("%s: %s: %w", name, hint, ErrBadHint)
		}
		t.hint = hint
	case len(t.order) > 0:
		t.hint = t.order[0]
	}

	return t, nil
}

// Name returns the table label.
func (t *Table) Name() string { return t.name }

// Hint returns the pair suggested when a conversion is unavailable.
func (t *Table) Hint() Pair { return t.hint }

// Lookup returns the factor for the ordered pair.
func (t *Table) Lookup(from, to string) (float64, bool) {
	f, ok := t.rates[Pair{From: from, To: to}]

	return f, ok
}

// Pairs returns the declared pairs in declaration order.
func (t *Table) Pairs() []Pair { return append([]Pair(nil), t.order...) }

// Units returns the selectable codes in declaration order.
func (t *Table) Units() []string { return append([]string(nil), t.units...) }

// Convert converts amount from one code to another. Identity is checked
// first, then a direct rate; neither means an unavailable Result with an
// advisory Message. Convert never fails.
func (t *Table) Convert(amount float64, from, to string) Result {
	res := Result{Amount: amount, From: from, To: to}
	if from == to {
		res.Converted, res.Available = amount, true

		return res
	}
	if f, ok := t.Lookup(from, to); ok {
		res.Converted, res.Available = amount*f, true

		return res
	}

	res.Message = "Rate for this specific pair is updating."
	if t.hint != (Pair{}) {
		res.Message += fmt.Sprintf(" Try %s!", t.hint)
	}

	return res
}
