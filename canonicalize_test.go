package main

import "testing"

func TestCanonicalizeDropsInvalidBytes(t *testing.T) {
	// Filtering leaves "+-", which the inverse-cancellation rule then erases.
	got := Canonicalize([]byte("a+\nb-c"))
	want := []byte("")
	if string(got) != string(want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCanonicalizeCancelsInverses(t *testing.T) {
	got := Canonicalize([]byte("+-+-+-"))
	if len(got) != 0 {
		t.Fatalf("expected empty canonical form, got %q", got)
	}
}

func TestCanonicalizeZeroLoopAbsorbsLeadingPlus(t *testing.T) {
	got := Canonicalize([]byte("+++[-]"))
	want := []byte{tokenZero}
	if string(got) != string(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCanonicalizeZeroLoopVariants(t *testing.T) {
	for _, src := range []string{"[-]", "[+]"} {
		got := Canonicalize([]byte(src))
		want := []byte{tokenZero}
		if string(got) != string(want) {
			t.Errorf("Canonicalize(%q) = %v, want %v", src, got, want)
		}
	}
}

func TestCanonicalizePostLoopZeroClearCollapses(t *testing.T) {
	for _, src := range []string{"][-]", "][+]"} {
		got := Canonicalize([]byte(src))
		want := []byte("]")
		if string(got) != string(want) {
			t.Errorf("Canonicalize(%q) = %q, want %q", src, got, want)
		}
	}
}

func TestCanonicalizeScanIdioms(t *testing.T) {
	cases := map[string]byte{
		"[<]":  tokenRewd,
		"[>]":  tokenWind,
		"[<<]": tokenRewd2,
		"[>>]": tokenWind2,
	}
	for src, want := range cases {
		got := Canonicalize([]byte(src))
		if len(got) != 1 || got[0] != want {
			t.Errorf("Canonicalize(%q) = %v, want [%d]", src, got, want)
		}
	}
}

func TestCanonicalizeIdempotent(t *testing.T) {
	samples := []string{
		"++++++++[>++++++++<-]>+.",
		",[.,]",
		"+-+-+-",
		"+++[-]",
		"[-]+++",
		"][-]><<>",
	}
	for _, s := range samples {
		once := Canonicalize([]byte(s))
		twice := Canonicalize(once)
		if string(once) != string(twice) {
			t.Errorf("Canonicalize not idempotent on %q: once=%v twice=%v", s, once, twice)
		}
	}
}
