package lz8s

import (
	"bytes"
	"testing"
)

func TestEncodeWithReporterCountingReporter(t *testing.T) {
	data := bytes.Repeat([]byte("ABABABAB"), 10)
	cfg := DefaultCfg()

	var rep CountingReporter
	packed, err := EncodeWithReporter(cfg, data, &rep)
	if err != nil {
		t.Fatalf("EncodeWithReporter failed: %v", err)
	}
	if rep.LiteralBlocks == 0 {
		t.Fatalf("expected at least one literal block to be reported")
	}
	if rep.LiteralBytes+rep.MatchBytes != len(data) {
		t.Fatalf("reported bytes %d+%d, want %d", rep.LiteralBytes, rep.MatchBytes, len(data))
	}

	out, _, err := Decode(cfg, packed)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("round-trip mismatch after reported encode")
	}
}

type recordingReporter struct {
	blocks    int
	summaries int
}

func (r *recordingReporter) LiteralBlock(length int)        { r.blocks++ }
func (r *recordingReporter) MatchBlock(length, offset int)  { r.blocks++ }
func (r *recordingReporter) Summary(lit, match, blocks int) { r.summaries++ }

func TestEncodeWithReporterSummaryCalledOnce(t *testing.T) {
	rep := &recordingReporter{}
	_, err := EncodeWithReporter(DefaultCfg(), []byte("A"), rep)
	if err != nil {
		t.Fatalf("EncodeWithReporter failed: %v", err)
	}
	if rep.summaries != 1 {
		t.Fatalf("Summary called %d times, want 1", rep.summaries)
	}
	if rep.blocks == 0 {
		t.Fatalf("expected block callbacks to fire")
	}
}

func TestEncodeWithReporterNilIsSafe(t *testing.T) {
	if _, err := EncodeWithReporter(DefaultCfg(), []byte("hello"), nil); err != nil {
		t.Fatalf("EncodeWithReporter with nil reporter failed: %v", err)
	}
}
