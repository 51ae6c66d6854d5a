// SPDX-License-Identifier: GPL-2.0-only

package lz8s

import "errors"

// Sentinel errors for configuration, encoding and decoding.
var (
	// ErrBadBitsMOff is returned when Cfg.BitsMOff is outside [0,16].
	ErrBadBitsMOff = errors.New("bits_moff out of range [0,16]")
	// ErrBadMaxLen is returned when Cfg.MaxMLen or Cfg.MaxLLen is outside [1,32895].
	ErrBadMaxLen = errors.New("max length out of range [1,32895]")
	// ErrAddrRelRequiresByteOffset is returned when Cfg.OffsetRel is set but BitsMOff is not 8 or 16.
	ErrAddrRelRequiresByteOffset = errors.New("offset_rel requires bits_moff in {8,16}")
	// ErrAddrOutOfRange is returned when Cfg.OffsetRel does not fit the configured offset window.
	ErrAddrOutOfRange = errors.New("offset_rel out of range for configured window")

	// ErrInputTooLarge is returned when the encoder input exceeds the configured size cap.
	ErrInputTooLarge = errors.New("input exceeds encoder size cap")
	// ErrInfeasibleCost is returned when an internal "infeasible" DP cost leaks into the emitter.
	// It indicates a programming error in the parser, not a malformed input.
	ErrInfeasibleCost = errors.New("internal: infeasible cost reached emitter")

	// ErrTruncatedStream is returned when the decoder hits EOF in the middle of a block.
	ErrTruncatedStream = errors.New("truncated stream")
)
