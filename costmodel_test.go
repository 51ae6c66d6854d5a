package lz8s

import "testing"

func TestMoffCost(t *testing.T) {
	rle := &Cfg{BitsMOff: 0, MaxMLen: 8, MaxLLen: 8}
	if got := moffCost(rle, 1); got != 0 {
		t.Fatalf("moffCost(rle, 1) = %d, want 0", got)
	}

	byteWide := &Cfg{BitsMOff: 8, MaxMLen: 8, MaxLLen: 8}
	if got := moffCost(byteWide, 256); got != 8 {
		t.Fatalf("moffCost(byteWide, 256) = %d, want 8", got)
	}
	if got := moffCost(byteWide, 257); got != infeasible {
		t.Fatalf("moffCost(byteWide, 257) = %d, want infeasible", got)
	}
	if got := moffCost(byteWide, 0); got != infeasible {
		t.Fatalf("moffCost(byteWide, 0) = %d, want infeasible", got)
	}

	wordWide := &Cfg{BitsMOff: 16, MaxMLen: 8, MaxLLen: 8}
	if got := moffCost(wordWide, 65536); got != 16 {
		t.Fatalf("moffCost(wordWide, 65536) = %d, want 16", got)
	}
}

func TestMlenCost(t *testing.T) {
	small := &Cfg{MaxMLen: 255}
	if got := mlenCost(small, 255); got != 8 {
		t.Fatalf("mlenCost(small, 255) = %d, want 8", got)
	}
	if got := mlenCost(small, 256); got != infeasible {
		t.Fatalf("mlenCost(small, 256) = %d, want infeasible", got)
	}

	big := &Cfg{MaxMLen: 32895}
	if got := mlenCost(big, 127); got != 8 {
		t.Fatalf("mlenCost(big, 127) = %d, want 8", got)
	}
	if got := mlenCost(big, 128); got != 16 {
		t.Fatalf("mlenCost(big, 128) = %d, want 16", got)
	}
}

func TestLlenCost(t *testing.T) {
	cfg := &Cfg{MaxMLen: 255, MaxLLen: 255}
	if got := llenCost(cfg, 0); got != 0 {
		t.Fatalf("llenCost(0) = %d, want 0", got)
	}
	if got := llenCost(cfg, 255); got != 8 {
		t.Fatalf("llenCost(255) = %d, want 8", got)
	}

	// 256 bytes needs one full 255-byte chunk (8 bits header + a
	// zero-length match separator) plus a trailing 1-byte chunk.
	want := 8 + zeroMatchCost(cfg) + 8
	if got := llenCost(cfg, 256); got != want {
		t.Fatalf("llenCost(256) = %d, want %d", got, want)
	}
}

func TestZeroMatchCost(t *testing.T) {
	cfg := &Cfg{MaxMLen: 255, MaxLLen: 255}
	if got := zeroMatchCost(cfg); got != 8 {
		t.Fatalf("zeroMatchCost() = %d, want 8 (no zero_offset)", got)
	}

	cfg.BitsMOff = 8
	cfg.ZeroOffset = true
	if got := zeroMatchCost(cfg); got != 16 {
		t.Fatalf("zeroMatchCost() with zero_offset = %d, want 16", got)
	}
}

func TestAddSaturating(t *testing.T) {
	if got := addSaturating(infeasible, 8); got != infeasible {
		t.Fatalf("addSaturating(infeasible, 8) = %d, want infeasible", got)
	}
	if got := addSaturating(infeasible/2, infeasible/2+8); got != infeasible {
		t.Fatalf("addSaturating near the boundary did not saturate: %d", got)
	}
	if got := addSaturating(10, 20); got != 30 {
		t.Fatalf("addSaturating(10, 20) = %d, want 30", got)
	}
}
