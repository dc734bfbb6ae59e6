// SPDX-License-Identifier: MIT

// Package hub routes one calculator request to the engine that serves it and
// packages the outcome for display.
//
// Requests form a closed set of variants (ClassicRequest, CurrencyRequest,
// UnitRequest, PlotRequest, MatrixRequest, ConstantsRequest), each carrying
// exactly the inputs its engine needs. Dispatch never panics: engine errors
// and bound violations come back as a Response with Level == Error and the
// error text as Message; defined non-results (no rate for a pair, a singular
// matrix) come back with Level == Info.
//
// A Hub is immutable after New and safe for concurrent use.
package hub
