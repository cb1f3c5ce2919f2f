package numeric

import (
	"strconv"

	"github.com/tracewave/corewave"
)

// decodeLEB128 decodes a big-endian byte sequence (the bit vector split
// into 8-bit groups, most significant byte first) as an unsigned LEB128
// varint. The first byte's continuation bit (0x80) must be clear; every
// later byte's continuation bit must be clear iff the accumulator built so
// far is zero — a quirk of the source encoding this mirrors rather than
// standard little-endian LEB128 byte order.
func decodeLEB128(bytes []byte) (uint64, error) {
	if len(bytes) == 0 {
		return 0, errLEB("empty value")
	}
	if bytes[0]&0x80 != 0 {
		return 0, errLEB("invalid MSB")
	}
	result := uint64(bytes[0])
	for _, b := range bytes[1:] {
		cont := b&0x80 == 0
		if cont != (result == 0) {
			return 0, errLEB("invalid flag")
		}
		result = (result << 7) + uint64(b&0x7f)
	}
	return result, nil
}

func bitsToBytes(bits string) []byte {
	groups := groupsOf(bits, 8)
	out := make([]byte, len(groups))
	for i, g := range groups {
		out[i] = byte(bitsToUint64(g))
	}
	return out
}

// groupsOf splits s into len(s)/n fixed-size groups of n characters (s is
// assumed to already be a multiple of n long, as BasicTranslates enforces).
func groupsOf(s string, n int) []string {
	var out []string
	for i := 0; i < len(s); i += n {
		out = append(out, s[i:i+n])
	}
	return out
}

type lebTranslator struct{}

func (lebTranslator) Name() string { return "LEBxxx" }
func (lebTranslator) BasicTranslates(meta corewave.VariableMeta) corewave.Preference {
	return checkWordlength(meta, func(n int) bool { return n%8 == 0 && n > 0 })
}
func (lebTranslator) BasicTranslate(meta corewave.VariableMeta, value corewave.RawValue) (string, corewave.ValueKind, error) {
	if value.Bits == "" {
		return "", 0, errBitVectorRequired("LEBxxx")
	}
	if text, kind := corewave.ClassifyBits(value.Bits); kind != corewave.KindNormal {
		return text, kind, nil
	}
	decoded, err := decodeLEB128(bitsToBytes(value.Bits))
	if err != nil {
		padded := corewave.SignExtend(value.Bits, meta.NumBits)
		return err.Error() + ": " + groupedBinary(padded), corewave.KindWarn, nil
	}
	return strconv.FormatUint(decoded, 10), corewave.KindNormal, nil
}

// groupedBinary renders a bit string as nibbles separated by spaces, for
// the diagnostic text attached to a malformed LEB128 value.
func groupedBinary(s string) string {
	groups := groupsOf(padToMultiple(s, 4), 4)
	out := ""
	for i, g := range groups {
		if i > 0 {
			out += " "
		}
		out += g
	}
	return out
}

func padToMultiple(s string, n int) string {
	if len(s)%n == 0 {
		return s
	}
	pad := n - len(s)%n
	b := make([]byte, pad)
	for i := range b {
		b[i] = '0'
	}
	return string(b) + s
}

// LebTranslator decodes a bit vector, byte-grouped most-significant-byte
// first, as an unsigned LEB128 varint.
var LebTranslator corewave.BasicTranslator = lebTranslator{}

type lebError string

func (e lebError) Error() string { return string(e) }

func errLEB(msg string) error { return lebError(msg) }
