// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lz8s

// MaxInputSize is the reference cap on a single Encode call's input. It
// exists so a misused encoder fails fast with ErrInputTooLarge instead of
// building an O(n) DP table over an unbounded buffer; callers with larger
// payloads are expected to chunk them before calling Encode.
const MaxInputSize = 128 * 1024

// Encode compresses data under cfg, returning the encoded stream.
func Encode(cfg *Cfg, data []byte) ([]byte, error) {
	return EncodeWithReporter(cfg, data, nil)
}

// EncodeWithReporter behaves like Encode, additionally driving rep with a
// block-by-block account of what was written. rep may be nil.
func EncodeWithReporter(cfg *Cfg, data []byte, rep Reporter) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(data) > MaxInputSize {
		return nil, ErrInputTooLarge
	}
	if len(data) == 0 {
		if rep != nil {
			rep.Summary(0, 0, 0)
		}
		return []byte{}, nil
	}

	tb := acquireTable(len(data) + 1)
	defer releaseTable(tb)
	buildTable(cfg, data, tb.cells)

	if tb.cells[0].lbits >= infeasible {
		return nil, ErrInfeasibleCost
	}

	return emit(cfg, data, tb.cells, rep), nil
}

// emitState carries the mutable cursor state threaded through a single
// Encode call's forward walk over the DP table built by buildTable.
type emitState struct {
	cfg  *Cfg
	data []byte
	out  []byte
	rep  Reporter

	// inLiteral is true immediately after writing a literal block (or
	// chunk of one), mirroring the decoder's own notion of "what kind of
	// block is expected next" — it is the single piece of state the
	// alternation rules in emitLiteralEpisode/emitMatchEpisode key off.
	inLiteral bool

	literalBytes int
	matchBytes   int
	blocks       int
}

// emit walks the DP table forward from position 0, choosing at each
// position whichever continuation (literal or match) the table marks as
// cheaper, and returns the assembled wire stream.
func emit(cfg *Cfg, data []byte, cells []cell, rep Reporter) []byte {
	n := len(data)
	s := &emitState{cfg: cfg, data: data, out: make([]byte, 0, n+n/8+16), rep: rep}

	p := 0
	for p < n {
		c := cells[p]
		extra := 0
		if s.inLiteral {
			extra = zeroMatchCost(cfg)
		}
		if addSaturating(c.lbits, extra) <= c.mbits {
			p = s.emitLiteralEpisode(p, c.llen)
		} else {
			p = s.emitMatchEpisode(p, c.mlen, c.mpos)
		}
	}

	// The wire format is a sequence of complete (literal, match) pairs: if
	// the walk above ended on a literal, the pair still needs its match
	// half, even though there is nothing left to copy.
	if s.inLiteral {
		s.emitZeroMatch(p)
	}

	if rep != nil {
		rep.Summary(s.literalBytes, s.matchBytes, s.blocks)
	}
	return s.out
}

// emitLiteralEpisode writes total literal bytes starting at data[p:],
// split into chunks of at most cfg.MaxLLen with a zero-length match
// separator between any two consecutive chunks. It returns p+total.
func (s *emitState) emitLiteralEpisode(p, total int) int {
	off := p
	remaining := total
	for remaining > 0 {
		if s.inLiteral {
			s.emitZeroMatch(off)
		}

		chunk := remaining
		if chunk > s.cfg.MaxLLen {
			chunk = s.cfg.MaxLLen
		}

		s.out = appendLenField(s.out, s.cfg.MaxLLen, chunk)
		s.out = append(s.out, s.data[off:off+chunk]...)
		s.inLiteral = true

		s.literalBytes += chunk
		s.blocks++
		if s.rep != nil {
			s.rep.LiteralBlock(chunk)
		}

		off += chunk
		remaining -= chunk
	}
	return off
}

// emitMatchEpisode writes a match of total bytes copied from offset mpos,
// starting at position p, split into chunks of at most cfg.MaxMLen with a
// zero-length literal separator before any chunk that would otherwise
// follow another match block. It returns p+total.
func (s *emitState) emitMatchEpisode(p, total, mpos int) int {
	off := p
	remaining := total
	for remaining > 0 {
		if !s.inLiteral {
			s.emitZeroLiteral()
		}

		chunk := remaining
		if chunk > s.cfg.MaxMLen {
			chunk = s.cfg.MaxMLen
		}

		s.out = appendLenField(s.out, s.cfg.MaxMLen, chunk)
		if chunk > 0 || s.cfg.ZeroOffset {
			s.out = appendOffsetField(s.cfg, s.out, off, mpos)
		}
		s.inLiteral = false

		s.matchBytes += chunk
		s.blocks++
		if s.rep != nil {
			s.rep.MatchBlock(chunk, mpos)
		}

		off += chunk
		remaining -= chunk
	}
	return off
}

// emitZeroLiteral writes a bare zero-length literal block, used to break
// up two match blocks that would otherwise sit adjacent on the wire.
func (s *emitState) emitZeroLiteral() {
	s.out = appendLenField(s.out, s.cfg.MaxLLen, 0)
	s.inLiteral = true
	s.blocks++
	if s.rep != nil {
		s.rep.LiteralBlock(0)
	}
}

// emitZeroMatch writes a zero-length match block at pos, used both to
// break up two literal blocks and to close out a stream that ends on a
// literal. The offset field, when ZeroOffset forces one to be written, is
// an arbitrary valid value (1) since the decoder never dereferences it
// for a zero-length copy.
func (s *emitState) emitZeroMatch(pos int) {
	s.out = appendLenField(s.out, s.cfg.MaxMLen, 0)
	if s.cfg.ZeroOffset {
		s.out = appendOffsetField(s.cfg, s.out, pos, 1)
	}
	s.inLiteral = false
	s.blocks++
	if s.rep != nil {
		s.rep.MatchBlock(0, 1)
	}
}

// appendLenField appends the wire length field for x: one byte if
// maxLimit <= 255 or x < 128, otherwise the two-byte form
// (0x80|(x&0x7F)), ((x>>7)-1).
func appendLenField(out []byte, maxLimit, x int) []byte {
	if maxLimit <= 255 || x < 128 {
		return append(out, byte(x))
	}
	return append(out, byte(0x80|(x&0x7F)), byte((x>>7)-1))
}

// appendOffsetField appends the wire offset field for a match starting at
// pos with 1-based distance mpos, honoring Cfg.OffsetRel and
// Cfg.ExorOffset, and writing zero, one or two bytes per Cfg.BitsMOff.
func appendOffsetField(cfg *Cfg, out []byte, pos, mpos int) []byte {
	if cfg.BitsMOff == 0 {
		return out
	}

	var off int
	if cfg.OffsetRel == nil {
		off = mpos - 1
	} else {
		off = (pos + *cfg.OffsetRel - mpos) & 0xFFFF
	}
	if cfg.ExorOffset {
		off ^= cfg.mask()
	}

	out = append(out, byte(off&0xFF))
	if cfg.BitsMOff > 8 {
		out = append(out, byte((off>>8)&0xFF))
	}
	return out
}
