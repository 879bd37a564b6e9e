package ukkonen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestEnableBoundsAssertions_DoesNotPanicOnReachableStates exercises the
// invariant that activeEdge = pos - remainder + 1 stays within [0, pos]
// for every state extend actually reaches. With the assertion enabled,
// construction over a range of texts that are known to hit the
// root/nonzero-length branch repeatedly (highly repetitive texts
// trigger it most) must not panic.
func TestEnableBoundsAssertions_DoesNotPanicOnReachableStates(t *testing.T) {
	enableBoundsAssertions(true)
	defer enableBoundsAssertions(false)

	texts := []string{
		"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		"mississippi",
		"banana",
		"abababababababab",
		"",
		"x",
	}

	for _, text := range texts {
		assert.NotPanics(t, func() {
			_, err := New([]byte(text))
			assert.NoError(t, err)
		}, "text %q", text)
	}
}

// TestExtend_RemainderNeverNegative covers the invariant that remainder
// is >= 1 on entry to extend and returns to a value in
// [0, phase_index+1] by the next phase boundary — here checked as
// "never negative and bounded by phase count" across construction.
func TestExtend_RemainderNeverNegative(t *testing.T) {
	tree := &Tree{leafEnd: -1}
	tree.dispatcherKind = FlatDispatcher
	tree.text = appendSentinel([]byte("banana"))
	tree.nodes = make([]node, 0, 2*len(tree.text))
	tree.newNode(-1, endRef{kind: endRoot})
	tree.activeNode = rootIdx
	tree.activeEdge = -1

	for pos := int32(0); pos < int32(len(tree.text)); pos++ {
		tree.extend(pos)
		assert.GreaterOrEqual(t, tree.remainder, int32(0))
		assert.LessOrEqual(t, tree.remainder, pos+1)
	}
}
