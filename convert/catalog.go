// SPDX-License-Identifier: MIT

package convert

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"
)

// Category names a family of units.
type Category string

// Known categories, in display order.
const (
	Currency Category = "currency"
	Length   Category = "length"
	Mass     Category = "mass"
	Energy   Category = "energy"
)

var knownCategories = []Category{Currency, Length, Mass, Energy}

// ParseCategory maps a user-facing name to a Category.
func ParseCategory(name string) (Category, error) {
	for _, c := range knownCategories {
		if string(c) == name {
			return c, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// Catalog groups one Table per Category. It is immutable once built.
type Catalog struct {
	tables map[Category]*Table
	order  []Category
}

// Table returns the table for cat.
func (c *Catalog) Table(cat Category) (*Table, error) {
	t, ok := c.tables[cat]
	if !ok {
		return nil, fmt.Errorf("%w: %q not in catalog", ErrUnknownCategory, cat)
	}

	return t, nil
}

// Categories returns the categories present, in document order.
func (c *Catalog) Categories() []Category { return append([]Category(nil), c.order...) }

// catalogDoc is the YAML schema of rates.yaml.
type catalogDoc struct {
	Tables []struct {
		Category string   `yaml:"category"`
		Hint     Pair     `yaml:"hint"`
		Units    []string `yaml:"units"`
		Rates    []Rate   `yaml:"rates"`
	} `yaml:"tables"`
}

// LoadCatalog parses a YAML catalog. Unknown keys are rejected.
//
// Errors: ErrBadCatalog for unreadable YAML, empty documents and repeated
// categories; ErrUnknownCategory; any NewTable error.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var doc catalogDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrBadCatalog)
		}

		return nil, fmt.Errorf("%w: %w", ErrBadCatalog, err)
	}
	if len(doc.Tables) == 0 {
		return nil, fmt.Errorf("%w: no tables", ErrBadCatalog)
	}

	cat := &Catalog{tables: make(map[Category]*Table, len(doc.Tables))}
	for _, td := range doc.Tables {
		c, err := ParseCategory(td.Category)
		if err != nil {
			return nil, err
		}
		if _, dup := cat.tables[c]; dup {
			return nil, fmt.Errorf("%w: category %q repeated", ErrBadCatalog, c)
		}
		t, err := NewTable(string(c), td.Rates, td.Hint, td.Units...)
		if err != nil {
			return nil, err
		}
		cat.tables[c] = t
		cat.order = append(cat.order, c)
	}

	return cat, nil
}

//go:embed rates.yaml
var embeddedRates []byte

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := LoadCatalog(bytes.NewReader(embeddedRates))
	if err != nil {
		panic("convert: embedded rates.yaml: " + err.Error())
	}

	return c
})

// Default returns the shared catalog built from the embedded rates.yaml.
func Default() *Catalog { return defaultCatalog() }
