package numeric

import "github.com/tracewave/corewave"

// checkSingleWordlength gates a fixed-width translator's applicability: it
// only ever prefers a signal whose declared width matches exactly.
func checkSingleWordlength(meta corewave.VariableMeta, want int) corewave.Preference {
	if meta.Encoding != corewave.EncodingBitVector {
		return corewave.PreferNo
	}
	if meta.NumBits == want {
		return corewave.PreferPrefer
	}
	return corewave.PreferNo
}

// checkWordlength is the predicate form used by translators whose
// applicability is a property of the width (e.g. "divisible by 8") rather
// than an exact match.
func checkWordlength(meta corewave.VariableMeta, ok func(int) bool) corewave.Preference {
	if meta.Encoding != corewave.EncodingBitVector {
		return corewave.PreferNo
	}
	if ok(meta.NumBits) {
		return corewave.PreferYes
	}
	return corewave.PreferNo
}

// bitsToUint64 parses a clean (or x/z-containing, via the caller's own
// check) binary string into a uint64, most significant bit first.
func bitsToUint64(s string) uint64 {
	var v uint64
	for _, c := range s {
		v <<= 1
		if c == '1' {
			v |= 1
		}
	}
	return v
}
