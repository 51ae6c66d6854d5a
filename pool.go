// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lz8s

import "sync"

// tableBuffer is a reusable backing store for the DP table built by
// buildTable. Pooling it avoids a fresh allocation per Encode call for
// callers that encode many small inputs back to back; each call still gets
// its own slice window (via acquireTable/releaseTable), so concurrent
// Encode calls never share state.
type tableBuffer struct {
	cells []cell
}

var tablePool = sync.Pool{
	New: func() any { return new(tableBuffer) },
}

// acquireTable returns a *tableBuffer whose cells field has length n,
// reusing previously pooled backing storage when it is large enough.
func acquireTable(n int) *tableBuffer {
	tb, _ := tablePool.Get().(*tableBuffer)
	if tb == nil {
		tb = &tableBuffer{}
	}
	if cap(tb.cells) < n {
		tb.cells = make([]cell, n)
	} else {
		tb.cells = tb.cells[:n]
	}
	return tb
}

// releaseTable returns tb to the pool for reuse by a later Encode call.
func releaseTable(tb *tableBuffer) {
	if tb == nil {
		return
	}
	tablePool.Put(tb)
}
