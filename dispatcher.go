// Copyright (c) 2026 chenxinye
// Licensed under the MIT License. See LICENSE file in the project root for details.
package ukkonen

import "sort"

// dispatcher is the per-node mapping from the first byte of an outgoing
// edge to its child node. The builder and the query walk are written
// entirely against this interface; neither knows or cares which
// concrete variant a given node uses.
type dispatcher interface {
	// lookup returns the child whose edge starts with c, or noChild if
	// no such edge exists. Never fails.
	lookup(c byte) int32
	// insert adds a new (c, child) pair. c must not already be present.
	insert(c byte, child int32)
	// replace swaps the child currently stored under c for child. c must
	// already be present; used only by edge splitting.
	replace(c byte, child int32)
	// iterateOrdered returns children in ascending byte-key order along
	// with true, if the variant supports that without an extra sort, or
	// (nil, false) if it does not.
	iterateOrdered() ([]int32, bool)
	// iterateInsertion returns children in the order they were inserted.
	iterateInsertion() []int32
}

func newDispatcher(kind DispatcherKind) dispatcher {
	if kind == OrderedDispatcher {
		return &orderedDispatcher{}
	}
	return &flatDispatcher{}
}

// orderedDispatcher keeps (key, child) pairs in a byte-sorted slice
// pair: a plain sorted slice, not a map, since a suffix tree node's
// fan-out is bounded by the alphabet size and is almost always small.
// Lookup and replace are O(log degree) binary searches; insert finds its
// slot the same way but then shifts the tails of both slices, so it is
// O(degree). Iteration is free since the slice is already in byte order.
type orderedDispatcher struct {
	keys     []byte
	children []int32
}

func (d *orderedDispatcher) find(c byte) (int, bool) {
	i := sort.Search(len(d.keys), func(i int) bool { return d.keys[i] >= c })
	return i, i < len(d.keys) && d.keys[i] == c
}

func (d *orderedDispatcher) lookup(c byte) int32 {
	i, ok := d.find(c)
	if !ok {
		return noChild
	}
	return d.children[i]
}

func (d *orderedDispatcher) insert(c byte, child int32) {
	i, _ := d.find(c)
	d.keys = append(d.keys, 0)
	copy(d.keys[i+1:], d.keys[i:])
	d.keys[i] = c

	d.children = append(d.children, 0)
	copy(d.children[i+1:], d.children[i:])
	d.children[i] = child
}

func (d *orderedDispatcher) replace(c byte, child int32) {
	i, ok := d.find(c)
	if !ok {
		return
	}
	d.children[i] = child
}

func (d *orderedDispatcher) iterateOrdered() ([]int32, bool) {
	return d.children, true
}

// iterateInsertion has no separate insertion-order data to return here
// — the ordered variant only ever keeps the sorted slice — so it
// returns the same byte-ordered result as iterateOrdered.
func (d *orderedDispatcher) iterateInsertion() []int32 {
	return d.children
}

// flatDispatcher keeps parallel keys/children slices in insertion
// order. lookup widens to the word-parallel scan in simd.go; insert and
// replace stay scalar, since edge splits (the only caller of replace)
// are bounded by O(N) total across the whole construction and never
// need to be fast.
type flatDispatcher struct {
	keys     []byte
	children []int32
}

func (d *flatDispatcher) lookup(c byte) int32 {
	i := scanKeys(d.keys, c)
	if i < 0 {
		return noChild
	}
	return d.children[i]
}

func (d *flatDispatcher) insert(c byte, child int32) {
	d.keys = append(d.keys, c)
	d.children = append(d.children, child)
}

func (d *flatDispatcher) replace(c byte, child int32) {
	for i, k := range d.keys {
		if k == c {
			d.children[i] = child
			return
		}
	}
}

// iterateOrdered is unsupported: the flat variant trades iteration
// order for scan speed. Callers that need a canonical order must sort
// iterateInsertion's result themselves.
func (d *flatDispatcher) iterateOrdered() ([]int32, bool) {
	return nil, false
}

func (d *flatDispatcher) iterateInsertion() []int32 {
	return d.children
}
