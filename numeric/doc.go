// Package numeric implements fixed-wordlength value translators: IEEE-754
// floats, posits and their quire accumulators, small FP8 minifloats,
// LEB128, and an RV32 instruction decoder. Each fixed-width translator
// gates on an exact bit width via checkSingleWordlength; LEB128 instead
// accepts any nonzero multiple of 8 bits via checkWordlength.
package numeric
