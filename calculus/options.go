// SPDX-License-Identifier: MIT

package calculus

// DefaultEdgeOrder is the accuracy order of the one-sided endpoint differences.
const DefaultEdgeOrder = 1

const panicEdgeOrderInvalid = "calculus: WithEdgeOrder: order must be 1 or 2"

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	edgeOrder int // 1 or 2; DefaultEdgeOrder
}

// WithEdgeOrder selects first- (1) or second-order (2) one-sided differences
// at the two endpoints. Order 2 needs at least three samples.
// Panics on any other value (programmer error).
func WithEdgeOrder(order int) Option {
	if order != 1 && order != 2 {
		panic(panicEdgeOrderInvalid)
	}

	return func(o *Options) { o.edgeOrder = order }
}

func gatherOptions(user ...Option) Options {
	o := Options{edgeOrder: DefaultEdgeOrder}
	for _, set := range user {
		set(&o) // last-writer-wins
	}

	return o
}
