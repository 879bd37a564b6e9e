// Copyright (c) 2026 chenxinye
// Licensed under the MIT License. See LICENSE file in the project root for details.
package ukkonen

import "fmt"

// builderState holds the active-point state machine and remainder
// counter. It is embedded directly in Tree since this state is
// meaningless once New returns and has no reason to live in a separate
// allocation.
type builderState struct {
	activeNode   int32
	activeEdge   int32
	activeLength int32
	remainder    int32
}

// boundsAssertionsEnabled gates a debug check of the invariant
// activeEdge = pos - remainder + 1 staying within [0, pos]. It is off by
// default so the hot extension loop never pays for a branch production
// builds don't need; tests that want the check call
// enableBoundsAssertions.
var boundsAssertionsEnabled = false

// enableBoundsAssertions turns the activeEdge bounds assertion on or
// off for the remainder of the process. It exists for tests, not for
// production use.
func enableBoundsAssertions(enabled bool) {
	boundsAssertionsEnabled = enabled
}

func debugAssertActiveEdgeBounds(activeEdge, pos int32) {
	if !boundsAssertionsEnabled {
		return
	}
	if activeEdge < 0 || activeEdge > pos {
		panic(fmt.Sprintf("ukkonen: activeEdge %d out of bounds [0,%d] at phase %d", activeEdge, pos, pos))
	}
}

// extend performs the per-phase insertion of every suffix ending at
// T[pos], carrying forward the active point and remainder across calls.
func (t *Tree) extend(pos int32) {
	// Rule 1: bump the global leaf end. Every leaf's edge, which
	// resolves through this cell, is implicitly extended by one byte.
	t.leafEnd = pos
	t.remainder++

	// Tracks an internal node created earlier in this phase that still
	// owes a suffix link once the next internal node (or a return to an
	// existing one) is known.
	lastNewNode := noChild

	for t.remainder > 0 {
		if t.activeLength == 0 {
			t.activeEdge = pos
		}

		c := t.text[t.activeEdge]
		next := t.nodes[t.activeNode].children.lookup(c)

		if next == noChild {
			// Rule 2 (no edge): start a brand new leaf under activeNode.
			leaf := t.newNode(pos, endRef{kind: endLeaf})
			t.nodes[t.activeNode].children.insert(c, leaf)

			if lastNewNode != noChild {
				t.nodes[lastNewNode].suffixLink = t.activeNode
				lastNewNode = noChild
			}
		} else {
			// Skip/count trick: walk straight past a fully-covered edge
			// without touching any bytes, and retry from the new active
			// node without decrementing remainder.
			if edgeLen := t.edgeLength(next); t.activeLength >= edgeLen {
				t.activeEdge += edgeLen
				t.activeLength -= edgeLen
				t.activeNode = next
				continue
			}

			if t.text[t.nodes[next].start+t.activeLength] == t.text[pos] {
				// Rule 3 (showstopper): the suffix is already present
				// implicitly. Extend activeLength and end the phase.
				if lastNewNode != noChild && t.activeNode != rootIdx {
					t.nodes[lastNewNode].suffixLink = t.activeNode
					lastNewNode = noChild
				}
				t.activeLength++
				break
			}

			// Rule 2 (split): the edge disagrees with T[pos]. Split it
			// at the active point and hang a new leaf off the split.
			splitEnd := t.nodes[next].start + t.activeLength - 1
			split := t.newNode(t.nodes[next].start, endRef{kind: endInternal, value: splitEnd})
			t.nodes[t.activeNode].children.replace(c, split)

			t.nodes[next].start += t.activeLength
			t.nodes[split].children.insert(t.text[t.nodes[next].start], next)

			leaf := t.newNode(pos, endRef{kind: endLeaf})
			t.nodes[split].children.insert(t.text[pos], leaf)

			if lastNewNode != noChild {
				t.nodes[lastNewNode].suffixLink = split
			}
			lastNewNode = split
		}

		t.remainder--

		if t.activeNode == rootIdx && t.activeLength > 0 {
			t.activeLength--
			t.activeEdge = pos - t.remainder + 1
			debugAssertActiveEdgeBounds(t.activeEdge, pos)
		} else if t.activeNode != rootIdx {
			t.activeNode = t.nodes[t.activeNode].suffixLink
		}
	}
}
