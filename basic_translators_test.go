package corewave

import "testing"

func rawBits(bits string) RawValue { return RawValue{Bits: bits} }

func TestHexTranslationScenario1(t *testing.T) {
	meta := VariableMeta{NumBits: 5, Encoding: EncodingBitVector}
	val := rawBits("10000")

	cases := []struct {
		name BasicTranslator
		want string
	}{
		{hexTranslator{}, "10"},
		{binaryTranslator{}, "10000"},
		{octalTranslator{}, "20"},
		{signedTranslator{}, "-16"},
		{unsignedTranslator{}, "16"},
	}
	for _, c := range cases {
		text, kind, err := c.name.BasicTranslate(meta, val)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.name.Name(), err)
		}
		if text != c.want {
			t.Errorf("%s: got %q, want %q", c.name.Name(), text, c.want)
		}
		if kind != KindNormal {
			t.Errorf("%s: got kind %v, want Normal", c.name.Name(), kind)
		}
	}
}

func TestHexTranslationScenario2KindPropagation(t *testing.T) {
	meta := VariableMeta{NumBits: 10, Encoding: EncodingBitVector}
	val := rawBits("1z00x0")

	text, kind, err := hexTranslator{}.BasicTranslate(meta, val)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "0zx" {
		t.Errorf("got text %q, want %q", text, "0zx")
	}
	if kind != KindUndef {
		t.Errorf("got kind %v, want Undef", kind)
	}
}

func TestAutoSelectDropsBitOnTie(t *testing.T) {
	r := NewRegistry(DefaultTranslatorName)
	RegisterBasicTranslators(r)
	meta := VariableMeta{NumBits: 1, Encoding: EncodingBitVector}
	got := r.AutoSelect(meta)
	if got.Name() == bitTranslatorName {
		t.Errorf("AutoSelect returned the generic Bit translator despite a tie, got %q", got.Name())
	}
}

func TestRegistryDefaultFallback(t *testing.T) {
	r := NewRegistry(DefaultTranslatorName)
	RegisterBasicTranslators(r)
	meta := VariableMeta{NumBits: 37, Encoding: EncodingReal}
	got := r.AutoSelect(meta)
	if got.Name() != DefaultTranslatorName {
		t.Errorf("got %q, want default %q", got.Name(), DefaultTranslatorName)
	}
}

func TestGroupNCharsRemainderFirst(t *testing.T) {
	got := groupNChars("00001z00x0", 4)
	want := []string{"00", "001z", "00x0"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("group %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
