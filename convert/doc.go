// SPDX-License-Identifier: MIT

// Package convert implements fixed-rate conversion tables for currencies and
// physical units.
//
// A Table is an immutable set of ordered (from, to, factor) rates. Convert
// follows three rules in order:
//
//  1. from == to returns the amount unchanged, whatever the table holds.
//  2. A direct (from, to) rate multiplies the amount by its factor.
//  3. Otherwise the result is unavailable and carries an advisory message
//     naming the table's hint pair. No symmetry is assumed: USD→EUR does not
//     imply EUR→USD.
//
// Tables are grouped into a Catalog by Category. The default catalog is
// parsed once from the embedded rates.yaml; operators can load their own file
// with the same schema through LoadCatalog. Nothing here touches the network.
package convert
