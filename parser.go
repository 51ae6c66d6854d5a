// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lz8s

// cell is one per-position entry of the backward dynamic-programming table
// built by buildTable. Both alternatives (continue as a literal run, or
// emit a match) are always computed for every position, since an earlier
// position may reference either one when extending a run; the actual
// choice between them is made later, during forward emission.
type cell struct {
	llen  int // best literal-run length starting here, continuing as literal
	lbits int // total bit-cost from here onward, entering as a literal
	mlen  int // best match length starting here, emitting a match
	mpos  int // 1-based match offset for mlen
	mbits int // total bit-cost from here onward, entering as a match
}

// literalJoinWindow bounds how many bytes a single backward step may fold
// into a continuing literal run. This MUST be exactly 5 to reproduce the
// reference parser's output byte-for-byte: a smaller bound misses reachable
// joins between adjacent optimal literal lengths; a larger one widens the
// search without changing the result.
const literalJoinWindow = 5

// buildTable fills cells[0..len(data)] by backward dynamic programming.
// cells must have length len(data)+1; cells[len(data)] is reset here to
// the sentinel cell (feasible-but-empty literal path, infeasible match
// path) before the pass runs.
func buildTable(cfg *Cfg, data []byte, cells []cell) {
	n := len(data)
	cells[n] = cell{mbits: infeasible}

	for p := n - 1; p >= 0; p-- {
		llen, lbits := literalCandidates(cfg, cells, n, p)
		mlen, mpos, mbits := matchCandidates(cfg, data, cells, n, p)
		cells[p] = cell{llen: llen, lbits: lbits, mlen: mlen, mpos: mpos, mbits: mbits}
	}
}

// literalCandidates computes the best (llen, lbits) pair for entering
// position p as a literal, per the format specification's two-pass rule:
// first join up to literalJoinWindow bytes onto the literal run that each
// of the next few positions already starts, then
// consider every shorter literal run that pivots directly into a match.
func literalCandidates(cfg *Cfg, cells []cell, n, p int) (llen, lbits int) {
	lbits = infeasible
	ml := 0

	for i := 1; i <= literalJoinWindow && p+i <= n; i++ {
		next := cells[p+i]
		if reach := next.llen + i; reach > ml {
			ml = reach
		}

		// Replace the header priced for next.llen with one priced for the
		// joined length; the i literal bytes themselves cost 8 bits each.
		cand := next.lbits + 8*i - llenCost(cfg, next.llen) + llenCost(cfg, next.llen+i)
		if cand < lbits {
			lbits = cand
			llen = next.llen + i
		}
	}

	for i := 1; i <= ml-1; i++ {
		cand := addSaturating(cells[p+i].mbits, addSaturating(8*i, llenCost(cfg, i)))
		if cand < lbits {
			lbits = cand
			llen = i
		}
	}

	return llen, lbits
}

// matchCandidates computes the best (mlen, mpos, mbits) triple for
// entering position p as a match, trying every match length the finder
// makes available and, for each, whichever continuation (literal or
// another match) is cheaper. On an exact tie between the two
// continuations, the match-continuation candidate wins (this only affects
// reported statistics, never the chosen lengths).
func matchCandidates(cfg *Cfg, data []byte, cells []cell, n, p int) (mlen, mpos, mbits int) {
	ml, mp := findMatch(cfg, data, p)
	mbits = infeasible

	for l := 1; l <= ml; l++ {
		base := addSaturating(moffCost(cfg, mp), mlenCost(cfg, l))
		litNext := addSaturating(cells[p+l].lbits, base)
		// The zero-length literal header mandatorily inserted between two
		// adjacent matches is priced as llenCost(1), not llenCost(0):
		// llenCost(0) is 0, while the header is one byte on the wire.
		matchNext := addSaturating(cells[p+l].mbits, addSaturating(llenCost(cfg, 1), base))

		winner := litNext
		if matchNext <= litNext {
			winner = matchNext
		}

		if winner < mbits {
			mbits = winner
			mlen = l
			mpos = mp
		}
	}

	return mlen, mpos, mbits
}
