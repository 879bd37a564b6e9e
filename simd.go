// Copyright (c) 2026 chenxinye
// Licensed under the MIT License. See LICENSE file in the project root for details.
package ukkonen

import (
	"encoding/binary"
	"math/bits"
	"runtime"

	"golang.org/x/sys/cpu"
)

// simd16Enabled and simd32Enabled gate the wide scan tiers in scanKeys
// at 16 and 32 keys respectively. Go has no portable intrinsics surface
// equivalent to <immintrin.h> or <arm_neon.h>, so the wide tiers below
// are expressed as SWAR (SIMD-within-a-register) byte search over
// uint64 words instead of real vector registers — the computation is
// correct and produces the same result regardless of what these flags
// report; they only decide whether the wide path is worth attempting.
// amd64 and arm64 always have at least a 128-bit-equivalent word-pair
// available, and amd64 additionally gets the 256-bit-equivalent tier
// when the CPU reports AVX2.
var (
	simd16Enabled = runtime.GOARCH == "amd64" || (runtime.GOARCH == "arm64" && cpu.ARM64.HasASIMD)
	simd32Enabled = runtime.GOARCH == "amd64" && cpu.X86.HasAVX2
)

// broadcast replicates c into every byte of a 64-bit word, the SWAR
// equivalent of _mm256_set1_epi8 / vdupq_n_u8.
func broadcast(c byte) uint64 {
	return 0x0101010101010101 * uint64(c)
}

// zeroByteMask returns a word that is zero exactly when v has no zero
// byte, and whose lowest set bit is bit 7 of the lowest zero byte of v.
// This is the classical "haszero" trick (Alan Mycroft). Only that lowest
// flag is exact: the subtraction's borrow can also flag a byte above a
// zero byte (a 0x01 byte just above one is flagged). Applied to
// v := word ^ broadcast(c), it locates the first byte of word equal to
// c, which stands in for the equality-compare lane mask a real SIMD
// compare instruction produces.
func zeroByteMask(v uint64) uint64 {
	return (v - 0x0101010101010101) &^ v & 0x8080808080808080
}

// scan32 checks a 32-byte block for target: compare, extract a lane
// mask, and take the position as the count of trailing zero bits
// (tzcnt) to the first matching lane.
func scan32(block []byte, target uint64) int {
	for w := 0; w < 4; w++ {
		word := binary.LittleEndian.Uint64(block[w*8:]) ^ target
		mask := zeroByteMask(word)
		if mask != 0 {
			return w*8 + bits.TrailingZeros64(mask)/8
		}
	}
	return -1
}

// scan16 checks a 16-byte block for target: reduce across the block
// first (here, OR the two words' masks together) and only fall back to
// a local byte-by-byte scan to recover the exact position once a hit is
// known to exist in the block.
func scan16(block []byte, target uint64) int {
	w0 := binary.LittleEndian.Uint64(block[0:8]) ^ target
	w1 := binary.LittleEndian.Uint64(block[8:16]) ^ target
	if zeroByteMask(w0)|zeroByteMask(w1) == 0 {
		return -1
	}
	c := byte(target)
	for i := 0; i < 16; i++ {
		if block[i] == c {
			return i
		}
	}
	return -1
}

// scanKeys finds the index of target in keys, widening to 32-byte and
// then 16-byte blocks when the node's fan-out crosses those thresholds
// and the hardware gate allows it, and always falling back to a scalar
// scan for the tail and for small nodes.
func scanKeys(keys []byte, target byte) int {
	n := len(keys)
	i := 0

	if simd32Enabled && n >= 32 {
		broadcasted := broadcast(target)
		for i+32 <= n {
			if off := scan32(keys[i:i+32], broadcasted); off >= 0 {
				return i + off
			}
			i += 32
		}
	}

	if simd16Enabled && n-i >= 16 {
		broadcasted := broadcast(target)
		for i+16 <= n {
			if off := scan16(keys[i:i+16], broadcasted); off >= 0 {
				return i + off
			}
			i += 16
		}
	}

	for ; i < n; i++ {
		if keys[i] == target {
			return i
		}
	}
	return -1
}
