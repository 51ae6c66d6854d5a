// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lz8s

import (
	"math/bits"
	"unsafe"
)

// windowLimit returns how far back findMatch is allowed to look from a
// given position. When BitsMOff is 0 the wire format only ever refers to
// the immediately preceding output byte (RLE convention), so the search
// window collapses to 1 regardless of MaxOff's "disabled" bookkeeping.
func windowLimit(cfg *Cfg) int {
	if cfg.BitsMOff == 0 {
		return 1
	}
	return cfg.MaxOff()
}

// findMatch returns the longest match length and its 1-based offset
// reachable from position p within the configured window, scanning the
// window naively (O(window) per call — this codec targets inputs small
// enough that a direct scan is fine; see Non-goals). Ties are broken in
// favor of the later (closer) candidate, i.e. the smallest offset. If no
// match of length >= 1 exists, it returns (0, 0).
func findMatch(cfg *Cfg, data []byte, p int) (length, offset int) {
	n := len(data)
	w := windowLimit(cfg)

	lo := p - w
	if lo < 0 {
		lo = 0
	}

	limit := cfg.MaxMLen
	if rem := n - p; rem < limit {
		limit = rem
	}
	if limit <= 0 {
		return 0, 0
	}

	bestLen, bestOff := 0, 0
	for i := lo; i < p; i++ {
		l := lcp(data, i, p, limit)
		// l >= bestLen (not >) so that, scanning i in ascending order, the
		// last (closest, smallest-offset) position with the longest match wins.
		if l >= 1 && l >= bestLen {
			bestLen = l
			bestOff = p - i
		}
	}

	return bestLen, bestOff
}

// lcp returns the length of the common prefix of data[i:] and data[p:],
// capped at limit. Comparisons proceed 8 bytes at a time while in bounds;
// both read cursors stay within data because the caller guarantees
// limit <= len(data)-p and i < p, so i+limit < p+limit <= len(data).
func lcp(data []byte, i, p, limit int) int {
	matched := 0

	for matched+8 <= limit {
		left := *(*uint64)(unsafe.Pointer(&data[i+matched]))
		right := *(*uint64)(unsafe.Pointer(&data[p+matched]))
		if left == right {
			matched += 8
			continue
		}

		diff := left ^ right
		matched += bits.TrailingZeros64(diff) >> 3
		return matched
	}

	for matched < limit && data[i+matched] == data[p+matched] {
		matched++
	}

	return matched
}
