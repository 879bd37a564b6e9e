// Copyright (c) 2026 chenxinye
// Licensed under the MIT License. See LICENSE file in the project root for details.
package ukkonen

// DispatcherKind selects which child-dispatch microstructure every node
// allocated during construction uses. The choice is fixed for the
// lifetime of a Tree — there is no migration between variants after New
// returns.
type DispatcherKind uint8

const (
	// FlatDispatcher keeps a node's children in parallel keys/children
	// slices in insertion order, searched with the width-tiered scan in
	// simd.go. It is the default: faster lookups at typical suffix-tree
	// fan-outs, at the cost of not supporting ordered iteration.
	FlatDispatcher DispatcherKind = iota
	// OrderedDispatcher keeps a node's children in a byte-sorted slice,
	// searched with binary search. Slower at high fan-out but gives
	// deterministic, byte-ordered iteration — the variant the visualizer
	// needs for a canonical child order.
	OrderedDispatcher
)

// Option configures a Tree at construction time, simplified to the
// no-error case: none of the options below can fail validation, so
// there is nothing for Option to report.
type Option func(*config)

type config struct {
	dispatcher DispatcherKind
}

// WithDispatcher selects the child dispatcher variant used by every
// node created during construction. The default, if WithDispatcher is
// not passed, is FlatDispatcher.
func WithDispatcher(kind DispatcherKind) Option {
	return func(c *config) { c.dispatcher = kind }
}
