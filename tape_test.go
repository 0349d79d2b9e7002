package main

import "testing"

func TestNewTapeEntryIsZeroed(t *testing.T) {
	p := NewTape()
	if *p != 0 {
		t.Fatalf("entry cell = %d, want 0", *p)
	}
}

func TestNewTapeHasHeadroomBothWays(t *testing.T) {
	p := NewTape()
	if tapeEntryIndex < 1_000_000 {
		t.Fatalf("entry index %d gives less than one megabyte of left headroom", tapeEntryIndex)
	}
	if tapeSize-tapeEntryIndex < 2_000_000 {
		t.Fatalf("entry index %d gives less than two megabytes of right headroom", tapeEntryIndex)
	}
	_ = p
}
