package ukkonen

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestScanKeys_AllWidths exercises the scalar, 16-wide, and 32-wide
// paths by forcing simd16Enabled/simd32Enabled, regardless of what this
// machine's actual hardware reports: every width tier must agree with
// the scalar result for the same input.
func TestScanKeys_AllWidths(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	sizes := []int{0, 1, 7, 8, 15, 16, 17, 31, 32, 33, 63, 64, 100}

	for _, size := range sizes {
		keys := make([]byte, size)
		for i := range keys {
			keys[i] = byte('a' + rng.Intn(26))
		}

		targets := []byte{'z' + 1}
		if size > 0 {
			targets = append(targets, keys[safeIdx(size)])
		}

		for _, target := range targets {
			wantScalar := scalarScanReference(keys, target)

			savedSIMD16, savedSIMD32 := simd16Enabled, simd32Enabled
			for _, s16 := range []bool{false, true} {
				for _, s32 := range []bool{false, true} {
					simd16Enabled, simd32Enabled = s16, s32
					got := scanKeys(keys, target)
					assert.Equal(t, wantScalar, got, "size=%d target=%q simd16=%v simd32=%v", size, target, s16, s32)
				}
			}
			simd16Enabled, simd32Enabled = savedSIMD16, savedSIMD32
		}
	}
}

func safeIdx(size int) int {
	return size / 2
}

// scalarScanReference is the unconditional scalar scan, used as ground
// truth for every width tier.
func scalarScanReference(keys []byte, target byte) int {
	for i, k := range keys {
		if k == target {
			return i
		}
	}
	return -1
}

// TestScanKeys_EmptyInput covers the degenerate case every width tier
// must handle without indexing out of bounds.
func TestScanKeys_EmptyInput(t *testing.T) {
	assert.Equal(t, -1, scanKeys(nil, 'x'))
	assert.Equal(t, -1, scanKeys([]byte{}, 'x'))
}

func TestZeroByteMask_DetectsEveryByteValue(t *testing.T) {
	for b := 0; b < 256; b++ {
		target := broadcast(byte(b))
		for pos := 0; pos < 8; pos++ {
			word := broadcast(0xAB)
			word = setByte(word, pos, byte(b))
			mask := zeroByteMask(word ^ target)
			assert.NotZero(t, mask, "byte %d at position %d not detected", b, pos)
		}
	}
}

func setByte(word uint64, pos int, value byte) uint64 {
	shift := uint(pos) * 8
	word &^= 0xFF << shift
	word |= uint64(value) << shift
	return word
}
