package numeric

import (
	"math"

	"github.com/tracewave/corewave"
)

// minifloatKind selects between the two OCP FP8 layouts: E4M3 (4 exponent
// bits, 3 mantissa bits, finite-only — no infinities, a single NaN
// encoding) and E5M2 (5 exponent bits, 2 mantissa bits, with infinities,
// matching the IEEE-754 special-value convention at reduced width).
type minifloatKind uint8

const (
	kindE4M3 minifloatKind = iota
	kindE5M2
)

// decodeMinifloat returns the value and, for special patterns, the exact
// display string the float display rule calls for (∞, NaN, -0, 0).
func decodeMinifloat(bits uint8, kind minifloatKind) (value float64, special string) {
	sign := bits >> 7
	switch kind {
	case kindE4M3:
		exp := (bits >> 3) & 0xf
		frac := bits & 0x7
		if exp == 0xf && frac == 0x7 {
			return 0, "NaN"
		}
		if exp == 0 && frac == 0 {
			if sign == 1 {
				return 0, "-0"
			}
			return 0, "0"
		}
		const bias = 7
		var v float64
		if exp == 0 {
			v = math.Ldexp(float64(frac)/8, 1-bias)
		} else {
			v = math.Ldexp(1+float64(frac)/8, int(exp)-bias)
		}
		if sign == 1 {
			v = -v
		}
		return v, ""
	default: // kindE5M2
		exp := (bits >> 2) & 0x1f
		frac := bits & 0x3
		if exp == 0x1f {
			if frac != 0 {
				return 0, "NaN"
			}
			if sign == 1 {
				return 0, "-∞"
			}
			return 0, "∞"
		}
		if exp == 0 && frac == 0 {
			if sign == 1 {
				return 0, "-0"
			}
			return 0, "0"
		}
		const bias = 15
		var v float64
		if exp == 0 {
			v = math.Ldexp(float64(frac)/4, 1-bias)
		} else {
			v = math.Ldexp(1+float64(frac)/4, int(exp)-bias)
		}
		if sign == 1 {
			v = -v
		}
		return v, ""
	}
}

type minifloatTranslator struct {
	name string
	kind minifloatKind
}

func (t minifloatTranslator) Name() string { return t.name }
func (t minifloatTranslator) BasicTranslates(meta corewave.VariableMeta) corewave.Preference {
	return checkSingleWordlength(meta, 8)
}
func (t minifloatTranslator) BasicTranslate(meta corewave.VariableMeta, value corewave.RawValue) (string, corewave.ValueKind, error) {
	if value.Bits == "" {
		return "", 0, errBitVectorRequired(t.name)
	}
	if text, kind := corewave.ClassifyBits(value.Bits); kind != corewave.KindNormal {
		return text, kind, nil
	}
	v, special := decodeMinifloat(uint8(bitsToUint64(value.Bits)), t.kind)
	if special != "" {
		return special, corewave.KindNormal, nil
	}
	return formatFloat(v), corewave.KindNormal, nil
}

// E4M3Translator and E5M2Translator render an 8-bit bit-vector as an OCP
// FP8 minifloat.
var (
	E4M3Translator = minifloatTranslator{name: "E4M3", kind: kindE4M3}
	E5M2Translator = minifloatTranslator{name: "E5M2", kind: kindE5M2}
)
