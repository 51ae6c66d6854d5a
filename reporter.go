// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lz8s

// Reporter receives a running account of the blocks an Encode call writes
// to the wire. Every method receives plain counts, never slices of the
// input or output. EncodeWithReporter drives a Reporter from a single
// goroutine and never calls it concurrently.
//
// A nil Reporter is valid everywhere one is accepted; callers that don't
// care about statistics pass nil and pay nothing for it.
type Reporter interface {
	// LiteralBlock is called once per physical literal block written,
	// after any required zero-length boundary block.
	LiteralBlock(length int)

	// MatchBlock is called once per physical match block written,
	// including zero-length boundary and trailing blocks.
	MatchBlock(length, offset int)

	// Summary is called exactly once, after the last block, with the
	// cumulative totals across the whole call.
	Summary(literalBytes, matchBytes, blocks int)
}

// CountingReporter is a Reporter that only accumulates totals, useful for
// callers that want Encode's statistics without writing their own
// Reporter implementation.
type CountingReporter struct {
	LiteralBlocks int
	MatchBlocks   int
	LiteralBytes  int
	MatchBytes    int
}

func (c *CountingReporter) LiteralBlock(length int) {
	c.LiteralBlocks++
	c.LiteralBytes += length
}

func (c *CountingReporter) MatchBlock(length, offset int) {
	c.MatchBlocks++
	c.MatchBytes += length
}

func (c *CountingReporter) Summary(literalBytes, matchBytes, blocks int) {}
