// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lz8s

import "fmt"

// Decode reconstructs the original bytes from stream under cfg, returning
// the decoded output and the number of stream bytes consumed. The stream
// may end cleanly after any complete block, literal or match — there is
// no sentinel marking the end — but EOF in the middle of a block (a
// literal byte, the second byte of a two-byte length, or an offset byte)
// is reported as ErrTruncatedStream.
func Decode(cfg *Cfg, stream []byte) ([]byte, int, error) {
	if err := cfg.Validate(); err != nil {
		return nil, 0, err
	}

	mask := cfg.mask()
	ring := make([]byte, mask+1)
	out := make([]byte, 0, len(stream)+len(stream)/2)
	pos := 0
	ip := 0

	for {
		n, res := getLen(stream, &ip, cfg.MaxLLen)
		switch res {
		case lenCleanEOF:
			return out, ip, nil
		case lenTruncated:
			return out, ip, fmt.Errorf("%w: at byte %d reading literal length", ErrTruncatedStream, ip)
		}
		for i := 0; i < n; i++ {
			if ip >= len(stream) {
				return out, ip, fmt.Errorf("%w: at byte %d reading literal bytes", ErrTruncatedStream, ip)
			}
			x := stream[ip]
			ip++
			ring[pos&mask] = x
			out = append(out, x)
			pos++
		}

		n, res = getLen(stream, &ip, cfg.MaxMLen)
		switch res {
		case lenCleanEOF:
			return out, ip, nil
		case lenTruncated:
			return out, ip, fmt.Errorf("%w: at byte %d reading match length", ErrTruncatedStream, ip)
		}
		if n == 0 && !cfg.ZeroOffset {
			continue
		}

		off, ok := readOffsetField(cfg, stream, &ip)
		if !ok {
			return out, ip, fmt.Errorf("%w: at byte %d reading match offset", ErrTruncatedStream, ip)
		}

		var src int
		if cfg.OffsetRel == nil {
			src = (pos - off + mask) & mask
		} else {
			src = (off + mask + 1 - *cfg.OffsetRel) & mask
		}

		out, pos, _ = copyRing(ring, mask, pos, src, n, out)
	}
}

// lenResult distinguishes a clean end of stream from a length field that
// started but could not be completed.
type lenResult int

const (
	lenOK lenResult = iota
	lenCleanEOF
	lenTruncated
)

// getLen reads a length field bounded by limit from stream at *ip,
// advancing *ip past whatever it consumed. A clean EOF (no bytes left
// before the field even starts) is reported separately from a truncated
// one (the field's continuation byte is missing), per the format's rule
// that only the latter is an error.
func getLen(stream []byte, ip *int, limit int) (int, lenResult) {
	if *ip >= len(stream) {
		return 0, lenCleanEOF
	}
	c := stream[*ip]
	*ip++

	if limit < 256 || c < 128 {
		return int(c), lenOK
	}

	if *ip >= len(stream) {
		return 0, lenTruncated
	}
	c2 := stream[*ip]
	*ip++
	return int(c&0x7F) + ((int(c2) + 1) << 7), lenOK
}

// readOffsetField reads the offset bytes for a match, honoring
// Cfg.BitsMOff and Cfg.ExorOffset. ok is false on EOF.
func readOffsetField(cfg *Cfg, stream []byte, ip *int) (off int, ok bool) {
	if cfg.BitsMOff == 0 {
		return 0, true
	}
	if *ip >= len(stream) {
		return 0, false
	}
	lo := int(stream[*ip])
	*ip++

	off = lo
	if cfg.BitsMOff > 8 {
		if *ip >= len(stream) {
			return 0, false
		}
		hi := int(stream[*ip])
		*ip++
		off |= hi << 8
	}

	if cfg.ExorOffset {
		off ^= cfg.mask()
	}
	return off, true
}
