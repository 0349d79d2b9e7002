package main

import "bytes"

// Pseudo-tokens: single bytes outside the eight source operators and outside
// the printable range they occupy, so a canonicalized stream can mix literal
// operators and recognized idioms in one byte sequence (spec.md §3.1).
const (
	tokenZero  = 0x01
	tokenWind  = 0x02
	tokenRewd  = 0x03
	tokenWind2 = 0x04
	tokenRewd2 = 0x05
)

type rewriteRule struct {
	old []byte
	new []byte
}

// toFixpoint repeatedly applies every rule in order, making another full
// pass over the rule set after any pass in which a rule fired, until a full
// pass changes nothing. This matches spec.md §9's requirement that the
// rewrite rules run in a fixed order to a fixpoint, since erasing one match
// can expose another (e.g. "++--" needs two passes of the same
// inverse-cancellation rule).
func toFixpoint(s []byte, rules []rewriteRule) []byte {
	for {
		changed := false
		for _, r := range rules {
			if bytes.Contains(s, r.old) {
				s = bytes.ReplaceAll(s, r.old, r.new)
				changed = true
			}
		}
		if !changed {
			return s
		}
	}
}

// Canonicalize implements spec.md §4.1: filters to the eight valid
// operators (pseudo-token bytes are kept too, so canonicalizing an
// already-canonical stream returns it unchanged), cancels adjacent inverse pairs, collapses redundant post-loop
// zero-clears, recognizes ZERO/WIND/REWD/WIND2/REWD2 idioms, and absorbs
// arithmetic/input that immediately follows a ZERO. Each rule group runs to
// a fixpoint before the next group starts, in the order spec.md lists them.
func Canonicalize(src []byte) []byte {
	out := make([]byte, 0, len(src))
	for _, b := range src {
		switch b {
		case '+', '-', '<', '>', '.', ',', '[', ']',
			tokenZero, tokenWind, tokenRewd, tokenWind2, tokenRewd2:
			out = append(out, b)
		}
	}

	out = toFixpoint(out, []rewriteRule{
		{[]byte("+-"), nil},
		{[]byte("-+"), nil},
		{[]byte("<>"), nil},
		{[]byte("><"), nil},
	})

	out = toFixpoint(out, []rewriteRule{
		{[]byte("][-]"), []byte("]")},
		{[]byte("][+]"), []byte("]")},
	})

	out = toFixpoint(out, []rewriteRule{
		{[]byte("[-]"), []byte{tokenZero}},
		{[]byte("[+]"), []byte{tokenZero}},
	})

	out = toFixpoint(out, []rewriteRule{
		{[]byte{'-', tokenZero}, []byte{tokenZero}},
		{[]byte{'+', tokenZero}, []byte{tokenZero}},
	})

	out = toFixpoint(out, []rewriteRule{
		{[]byte{tokenZero, ','}, []byte{','}},
	})

	out = toFixpoint(out, []rewriteRule{
		{[]byte("+,"), []byte(",")},
		{[]byte("-,"), []byte(",")},
	})

	out = toFixpoint(out, []rewriteRule{
		{[]byte("[<<]"), []byte{tokenRewd2}},
		{[]byte("[>>]"), []byte{tokenWind2}},
		{[]byte("[<]"), []byte{tokenRewd}},
		{[]byte("[>]"), []byte{tokenWind}},
	})

	return out
}
