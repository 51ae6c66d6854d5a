// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lz8s

// infeasible stands in for the "infinite" cost of an encoding that cannot
// be represented under the current Cfg. All sums saturate at this value
// before any comparison, so an infeasible candidate can never accidentally
// look cheaper than a feasible one through integer overflow.
const infeasible = 1 << 30

// addSaturating adds two bit-costs, clamping the result (and any operand
// already at or above infeasible) to infeasible.
func addSaturating(a, b int) int {
	if a >= infeasible || b >= infeasible {
		return infeasible
	}
	sum := a + b
	if sum >= infeasible {
		return infeasible
	}
	return sum
}

// moffCost returns the bit-cost of encoding match offset o, or infeasible
// if o falls outside the configured window.
func moffCost(cfg *Cfg, o int) int {
	if cfg.BitsMOff == 0 {
		// Window-check disabled: matches always bind to position-1, no offset byte emitted.
		return 0
	}

	if o < 1 || o > cfg.MaxOff() {
		return infeasible
	}

	if cfg.BitsMOff <= 8 {
		return 8
	}
	return 16
}

// mlenCost returns the bit-cost of encoding match length l, or infeasible
// if l exceeds Cfg.MaxMLen.
func mlenCost(cfg *Cfg, l int) int {
	if l > cfg.MaxMLen {
		return infeasible
	}

	return lenFieldCost(cfg.MaxMLen, l)
}

// lenFieldCost returns the bit-cost of a single length field under the
// given max, per spec.md's length-field encoding: one byte normally, two
// bytes when the configured max exceeds 255 and the value itself is >127.
func lenFieldCost(max, l int) int {
	if max > 255 && l > 127 {
		return 16
	}
	return 8
}

// llenCost returns the bit-cost of encoding a literal run of length l,
// including the cost of any zero-length match blocks needed to split a
// run longer than Cfg.MaxLLen into wire-legal chunks.
func llenCost(cfg *Cfg, l int) int {
	if l == 0 {
		return 0
	}

	cost := 0
	for l > cfg.MaxLLen {
		chunkCost := lenFieldCost(cfg.MaxLLen, cfg.MaxLLen)
		cost = addSaturating(cost, addSaturating(chunkCost, zeroMatchCost(cfg)))
		l -= cfg.MaxLLen
	}

	return addSaturating(cost, lenFieldCost(cfg.MaxLLen, l))
}

// zeroMatchCost is the bit-cost of the zero-length match block used as a
// boundary marker between two adjacent blocks of the same kind.
func zeroMatchCost(cfg *Cfg) int {
	cost := mlenCost(cfg, 0)
	if cfg.ZeroOffset {
		cost = addSaturating(cost, moffCost(cfg, 1))
	}
	return cost
}
