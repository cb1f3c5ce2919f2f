package numeric

import (
	"strconv"
	"testing"

	"github.com/tracewave/corewave"
)

func bitsOf(t *testing.T, v uint64, width int) string {
	t.Helper()
	s := strconv.FormatUint(v, 2)
	for len(s) < width {
		s = "0" + s
	}
	return s
}

func TestLEB128ValidAndInvalidMSB(t *testing.T) {
	meta := corewave.VariableMeta{NumBits: 16, Encoding: corewave.EncodingBitVector}

	text, kind, err := lebTranslator{}.BasicTranslate(meta, corewave.RawValue{Bits: "0101101011101111"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "11631" || kind != corewave.KindNormal {
		t.Errorf("got (%q, %v), want (\"11631\", Normal)", text, kind)
	}

	text, kind, err = lebTranslator{}.BasicTranslate(meta, corewave.RawValue{Bits: "1000000010000000"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kind != corewave.KindWarn {
		t.Errorf("got kind %v, want Warn", kind)
	}
	if len(text) < len("invalid MSB") || text[:len("invalid MSB")] != "invalid MSB" {
		t.Errorf("got text %q, want it to start with \"invalid MSB\"", text)
	}
}

func TestRV32Disassembly(t *testing.T) {
	meta := corewave.VariableMeta{NumBits: 32, Encoding: corewave.EncodingBitVector}

	text, kind, err := instructionTranslator{name: "RV32", bits: 32}.BasicTranslate(meta, corewave.RawValue{Bits: bitsOf(t, 0x81350593, 32)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "addi a1, a0, -2029" {
		t.Errorf("got %q, want %q", text, "addi a1, a0, -2029")
	}
	if kind != corewave.KindNormal {
		t.Errorf("got kind %v, want Normal", kind)
	}

	text, kind, err = instructionTranslator{name: "RV32", bits: 32}.BasicTranslate(meta, corewave.RawValue{Bits: bitsOf(t, 0, 32)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "UNKNOWN INSN (0x0)" {
		t.Errorf("got %q, want %q", text, "UNKNOWN INSN (0x0)")
	}
	if kind != corewave.KindWarn {
		t.Errorf("got kind %v, want Warn", kind)
	}
}

func TestFloat32SpecialValues(t *testing.T) {
	meta := corewave.VariableMeta{NumBits: 32, Encoding: corewave.EncodingBitVector}
	text, kind, err := F32Translator.BasicTranslate(meta, corewave.RawValue{Bits: bitsOf(t, 0x80000000, 32)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "-0" || kind != corewave.KindNormal {
		t.Errorf("got (%q, %v), want (\"-0\", Normal)", text, kind)
	}

	text, _, err = F32Translator.BasicTranslate(meta, corewave.RawValue{Bits: bitsOf(t, 0xFFFFFFFF, 32)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "NaN" {
		t.Errorf("got %q, want %q", text, "NaN")
	}
}

func TestPositZeroAndNaR(t *testing.T) {
	meta := corewave.VariableMeta{NumBits: 8, Encoding: corewave.EncodingBitVector}
	text, _, err := P8Translator.BasicTranslate(meta, corewave.RawValue{Bits: bitsOf(t, 0, 8)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "0" {
		t.Errorf("got %q, want \"0\"", text)
	}

	text, _, err = P8Translator.BasicTranslate(meta, corewave.RawValue{Bits: bitsOf(t, 0x80, 8)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "NaR" {
		t.Errorf("got %q, want \"NaR\"", text)
	}
}
