package numeric

import (
	"fmt"

	"github.com/tracewave/corewave"
)

var rv32RegNames = [32]string{
	"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
	"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
	"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
}

func regName(n uint32) string {
	if n < uint32(len(rv32RegNames)) {
		return rv32RegNames[n]
	}
	return fmt.Sprintf("x%d", n)
}

// decodeRV32 decodes a single 32-bit RISC-V instruction word into its
// disassembled mnemonic form. Only a handful of common opcodes are
// recognized (OP-IMM, OP, lw, sw, jal); anything else falls through to the
// unknown form.
func decodeRV32(word uint32) (string, bool) {
	opcode := word & 0x7f
	rd := (word >> 7) & 0x1f
	funct3 := (word >> 12) & 0x7
	rs1 := (word >> 15) & 0x1f
	rs2 := (word >> 20) & 0x1f
	funct7 := (word >> 25) & 0x7f

	signExtend12 := func(v uint32) int32 {
		if v&0x800 != 0 {
			return int32(v) - 0x1000
		}
		return int32(v)
	}

	switch opcode {
	case 0x13: // OP-IMM
		imm := signExtend12(word >> 20)
		switch funct3 {
		case 0x0:
			return fmt.Sprintf("addi %s, %s, %d", regName(rd), regName(rs1), imm), true
		case 0x4:
			return fmt.Sprintf("xori %s, %s, %d", regName(rd), regName(rs1), imm), true
		case 0x6:
			return fmt.Sprintf("ori %s, %s, %d", regName(rd), regName(rs1), imm), true
		case 0x7:
			return fmt.Sprintf("andi %s, %s, %d", regName(rd), regName(rs1), imm), true
		case 0x2:
			return fmt.Sprintf("slti %s, %s, %d", regName(rd), regName(rs1), imm), true
		}
	case 0x33: // OP (register-register)
		switch {
		case funct3 == 0x0 && funct7 == 0x00:
			return fmt.Sprintf("add %s, %s, %s", regName(rd), regName(rs1), regName(rs2)), true
		case funct3 == 0x0 && funct7 == 0x20:
			return fmt.Sprintf("sub %s, %s, %s", regName(rd), regName(rs1), regName(rs2)), true
		case funct3 == 0x7:
			return fmt.Sprintf("and %s, %s, %s", regName(rd), regName(rs1), regName(rs2)), true
		case funct3 == 0x6:
			return fmt.Sprintf("or %s, %s, %s", regName(rd), regName(rs1), regName(rs2)), true
		case funct3 == 0x4:
			return fmt.Sprintf("xor %s, %s, %s", regName(rd), regName(rs1), regName(rs2)), true
		}
	case 0x03: // LOAD
		imm := signExtend12(word >> 20)
		if funct3 == 0x2 {
			return fmt.Sprintf("lw %s, %d(%s)", regName(rd), imm, regName(rs1)), true
		}
	case 0x23: // STORE
		immLo := (word >> 7) & 0x1f
		immHi := (word >> 25) & 0x7f
		imm := signExtend12((immHi << 5) | immLo)
		if funct3 == 0x2 {
			return fmt.Sprintf("sw %s, %d(%s)", regName(rs2), imm, regName(rs1)), true
		}
	case 0x6f: // JAL
		return fmt.Sprintf("jal %s, ...", regName(rd)), true
	}
	return "", false
}

type instructionTranslator struct {
	name string
	bits int
}

func (t instructionTranslator) Name() string { return t.name }
func (t instructionTranslator) BasicTranslates(meta corewave.VariableMeta) corewave.Preference {
	return checkSingleWordlength(meta, t.bits)
}
func (t instructionTranslator) BasicTranslate(meta corewave.VariableMeta, value corewave.RawValue) (string, corewave.ValueKind, error) {
	if value.Bits == "" {
		return "", 0, errBitVectorRequired(t.name)
	}
	if text, kind := corewave.ClassifyBits(value.Bits); kind != corewave.KindNormal {
		return text, kind, nil
	}
	word := uint32(bitsToUint64(value.Bits))
	if form, ok := decodeRV32(word); ok {
		return form, corewave.KindNormal, nil
	}
	return fmt.Sprintf("UNKNOWN INSN (%#x)", word), corewave.KindWarn, nil
}

// RV32Translator disassembles a 32-bit bit vector as a single RISC-V
// RV32I instruction.
var RV32Translator corewave.BasicTranslator = instructionTranslator{name: "RV32", bits: 32}

// RegisterAll registers every numeric translator into r.
func RegisterAll(r *corewave.Registry) {
	for _, t := range []corewave.BasicTranslator{
		F16Translator,
		BF16Translator,
		F32Translator,
		F64Translator,
		E4M3Translator,
		E5M2Translator,
		P8Translator,
		P16Translator,
		P32Translator,
		Q8Translator,
		Q16Translator,
		LebTranslator,
		RV32Translator,
	} {
		r.Register(corewave.NewBasicTranslatorAdapter(t))
	}
}
