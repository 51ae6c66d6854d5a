package lz8s

import "testing"

func TestBuildTableSentinel(t *testing.T) {
	data := []byte("A")
	cells := make([]cell, len(data)+1)
	buildTable(DefaultCfg(), data, cells)

	sentinel := cells[len(data)]
	if sentinel.lbits != 0 {
		t.Fatalf("sentinel lbits = %d, want 0", sentinel.lbits)
	}
	if sentinel.mbits != infeasible {
		t.Fatalf("sentinel mbits = %d, want infeasible", sentinel.mbits)
	}
}

func TestBuildTableSingleLiteralByte(t *testing.T) {
	data := []byte("A")
	cells := make([]cell, len(data)+1)
	buildTable(DefaultCfg(), data, cells)

	c := cells[0]
	if c.llen != 1 {
		t.Fatalf("llen = %d, want 1", c.llen)
	}
	if c.mbits != infeasible {
		t.Fatalf("mbits at position 0 = %d, want infeasible (no history to match against)", c.mbits)
	}
	if c.lbits >= infeasible {
		t.Fatalf("lbits at position 0 is infeasible, want a finite cost")
	}
}

func TestBuildTableFindsRepeat(t *testing.T) {
	data := []byte("ABABABAB")
	cells := make([]cell, len(data)+1)
	buildTable(DefaultCfg(), data, cells)

	c := cells[2]
	if c.mlen == 0 {
		t.Fatalf("position 2 found no match, want a repeat of length up to 6")
	}
	if c.mpos != 2 {
		t.Fatalf("mpos = %d, want 2", c.mpos)
	}
}
