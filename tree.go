// Copyright (c) 2026 chenxinye
// Licensed under the MIT License. See LICENSE file in the project root for details.
package ukkonen

import (
	"bytes"
	"fmt"
	"io"
)

// sentinel is the terminal byte every suffix must end at a leaf under.
// New appends it automatically when the caller's text does not already
// end in it.
const sentinel byte = '$'

// Tree is an online-constructed suffix tree over an immutable byte
// string. Construction is single-threaded and not cancellable; once New
// returns, a Tree is read-only and Search may be called from any number
// of goroutines concurrently (see doc.go).
type Tree struct {
	text []byte

	nodes          []node
	dispatcherKind DispatcherKind

	leafEnd int32 // the global leaf end cell shared by every leaf edge

	builderState
}

// New constructs a suffix tree over text using Ukkonen's algorithm. If
// text does not already end in the sentinel byte '$', New appends one
// before construction; constructing on T and on T+"$" when T does not
// end in "$" is therefore equivalent.
//
// New can only fail on allocation exhaustion, which in Go surfaces as a
// runtime out-of-memory fatal error rather than a recoverable one; the
// error return exists for interface symmetry with the rest of this
// module and is always nil in practice.
func New(text []byte, opts ...Option) (*Tree, error) {
	cfg := config{dispatcher: FlatDispatcher}
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &Tree{
		dispatcherKind: cfg.dispatcher,
		leafEnd:        -1,
	}
	t.text = appendSentinel(text)
	t.nodes = make([]node, 0, 2*len(t.text)-1)

	t.newNode(-1, endRef{kind: endRoot}) // root is always index 0

	t.activeNode = rootIdx
	t.activeEdge = -1
	t.activeLength = 0
	t.remainder = 0

	for pos := int32(0); pos < int32(len(t.text)); pos++ {
		t.extend(pos)
	}

	return t, nil
}

// appendSentinel returns text with the sentinel byte appended, unless
// text already ends in it. The result is always a fresh copy: the
// returned Tree owns its text independently of the caller's slice.
func appendSentinel(text []byte) []byte {
	if len(text) > 0 && text[len(text)-1] == sentinel {
		out := make([]byte, len(text))
		copy(out, text)
		return out
	}
	out := make([]byte, len(text)+1)
	copy(out, text)
	out[len(text)] = sentinel
	return out
}

// newNode allocates a fresh node with the given edge-label range,
// defaults its suffix link to root, and returns its arena index.
func (t *Tree) newNode(start int32, end endRef) int32 {
	idx := int32(len(t.nodes))
	t.nodes = append(t.nodes, node{
		start:      start,
		end:        end,
		suffixLink: rootIdx,
		children:   newDispatcher(t.dispatcherKind),
		id:         idx,
	})
	return idx
}

// resolveEnd returns the concrete right endpoint an end reference
// stands for, dereferencing through the tree's shared leafEnd cell for
// endLeaf and returning the fixed -1 for endRoot.
func (t *Tree) resolveEnd(e endRef) int32 {
	switch e.kind {
	case endRoot:
		return -1
	case endLeaf:
		return t.leafEnd
	default:
		return e.value
	}
}

// edgeLength returns the length of the edge label leading into node
// idx: 0 for the root, deref(end) - start + 1 otherwise.
func (t *Tree) edgeLength(idx int32) int32 {
	if idx == rootIdx {
		return 0
	}
	n := &t.nodes[idx]
	return t.resolveEnd(n.end) - n.start + 1
}

// Text returns the effective text the tree was built over, including
// the sentinel byte New appends if the caller's input lacked one.
func (t *Tree) Text() []byte { return t.text }

// NodeCount returns the number of nodes in the tree, including the
// root.
func (t *Tree) NodeCount() int { return len(t.nodes) }

// WriteTree writes the tree to w in pre-order, two-space indentation per
// depth level, one node per line: "Edge [start,end]: <label> (Node
// <id>)" for every non-root node and "Root (Node <id>)" for the root.
// Children are visited in ascending byte order when the tree's
// dispatcher supports ordered iteration (OrderedDispatcher); otherwise
// in insertion order (FlatDispatcher).
func (t *Tree) WriteTree(w io.Writer) error {
	return t.writeNode(w, rootIdx, 0)
}

func (t *Tree) writeNode(w io.Writer, idx int32, depth int) error {
	n := &t.nodes[idx]
	indent := bytes.Repeat([]byte("  "), depth)

	if idx == rootIdx {
		if _, err := fmt.Fprintf(w, "%sRoot (Node %d)\n", indent, n.id); err != nil {
			return err
		}
	} else {
		end := t.resolveEnd(n.end)
		label := t.text[n.start : end+1]
		if _, err := fmt.Fprintf(w, "%sEdge [%d,%d]: %s (Node %d)\n", indent, n.start, end, label, n.id); err != nil {
			return err
		}
	}

	children, ok := n.children.iterateOrdered()
	if !ok {
		children = n.children.iterateInsertion()
	}
	for _, child := range children {
		if err := t.writeNode(w, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}
