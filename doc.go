// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

/*
Package lz8s implements a byte-aligned LZ77-style codec aimed at payloads
that must be decompressed by small, fixed-function runtimes. There is no
bitstream: every field is a whole number of bytes, so a decoder can be a
few dozen instructions.

The format has no in-band header, so encoder and decoder must be built
from byte-identical Cfg values:

	cfg := lz8s.DefaultCfg()
	packed, err := lz8s.Encode(cfg, data)
	original, n, err := lz8s.Decode(cfg, packed)

Encode runs a backward dynamic-programming parser that chooses, for
every position, the cheapest way to continue — as a literal run or as a
back-reference — under the cost model implied by cfg. Decode reproduces
the inverse with a ring buffer sized by cfg's offset width (256 bytes for
one offset byte, 64 KiB for two), including
the overlapping-copy semantics a plain repeat (offset 1) relies on.

See Cfg for the parameters that trade wire density for decoder
simplicity: offset width, run-length caps, the zero-offset convention,
address-relative addressing, and offset complementing.
*/
package lz8s
