package lz8s

import "testing"

func TestFindMatchNoHistoryAtStart(t *testing.T) {
	cfg := DefaultCfg()
	length, offset := findMatch(cfg, []byte("ABABABAB"), 0)
	if length != 0 || offset != 0 {
		t.Fatalf("findMatch at position 0 = (%d, %d), want (0, 0)", length, offset)
	}
}

func TestFindMatchPrefersLongerThenCloser(t *testing.T) {
	cfg := DefaultCfg()
	data := []byte("ABABABAB")
	length, offset := findMatch(cfg, data, 2)
	if length != 6 || offset != 2 {
		t.Fatalf("findMatch(data, 2) = (%d, %d), want (6, 2)", length, offset)
	}
}

func TestFindMatchCappedByMaxMLen(t *testing.T) {
	cfg := &Cfg{BitsMOff: 8, MaxMLen: 4, MaxLLen: 255}
	data := make([]byte, 20)
	length, offset := findMatch(cfg, data, 1)
	if length != 4 {
		t.Fatalf("findMatch length = %d, want capped at MaxMLen=4", length)
	}
	if offset != 1 {
		t.Fatalf("findMatch offset = %d, want 1", offset)
	}
}

func TestFindMatchRLEWindow(t *testing.T) {
	cfg := &Cfg{BitsMOff: 0, MaxMLen: 255, MaxLLen: 255}
	data := []byte{1, 2, 2, 2, 2}
	// Position 2 can only ever reference distance 1 under the RLE window,
	// but that's enough here since the run continues to the end of data.
	length, offset := findMatch(cfg, data, 2)
	if length != 3 || offset != 1 {
		t.Fatalf("findMatch under RLE window = (%d, %d), want (3, 1)", length, offset)
	}
}

func TestLcp(t *testing.T) {
	data := []byte("abcabcxyz")
	if got := lcp(data, 0, 3, 6); got != 3 {
		t.Fatalf("lcp = %d, want 3", got)
	}
	if got := lcp(data, 0, 3, 2); got != 2 {
		t.Fatalf("lcp capped by limit = %d, want 2", got)
	}
}
