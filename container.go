package corewave

import (
	"math/big"
	"strings"
)

// VariableDirection is the port direction of a variable, when known.
type VariableDirection uint8

const (
	DirectionUnknown VariableDirection = iota
	DirectionInput
	DirectionOutput
	DirectionInOut
	DirectionInternal
)

// VariableType loosely categorizes a signal's declared kind, as surfaced by
// the underlying waveform format (VCD "wire"/"reg", FST enums, GHW types).
type VariableType uint8

const (
	VarTypeWire VariableType = iota
	VarTypeReg
	VarTypeInteger
	VarTypeReal
	VarTypeString
	VarTypeParameter
	VarTypeEnum
)

// Encoding describes how a signal's raw bits should be interpreted before
// translation, distinct from the display Translator the user picks.
type Encoding uint8

const (
	EncodingBitVector Encoding = iota
	EncodingReal
	EncodingString
)

// VariableMeta is the static metadata a container reports for a signal.
type VariableMeta struct {
	NumBits      int
	VariableType VariableType
	Direction    VariableDirection
	Index        string // optional bit-range index text, e.g. "[7:0]"
	Encoding     Encoding
	// EnumMap maps a raw bit pattern to a human label, when the container's
	// source format carries an enum literal table (VHDL enumerated types,
	// SystemVerilog enums reflected into FST).
	EnumMap map[string]string
}

// RawValue is the raw value reported for a signal at a point in time: either
// a bit-vector string (possibly containing non-01 characters per the
// canonical kind rules) or a free-form string (VHDL string-typed signals).
type RawValue struct {
	Bits     string
	Str      string
	IsString bool
}

// BigUint attempts to parse Bits as a clean binary integer. It only
// succeeds when every character is '0' or '1'; x/z/u/w/h/l/- values must go
// through the canonical kind rules instead (see ClassifyBits).
func (v RawValue) BigUint() (*big.Int, bool) {
	if v.IsString || v.Bits == "" {
		return nil, false
	}
	if strings.IndexFunc(v.Bits, func(r rune) bool { return r != '0' && r != '1' }) >= 0 {
		return nil, false
	}
	n := new(big.Int)
	n.SetString(v.Bits, 2)
	return n, true
}

// ValueChange is a single value-change event: the time it took effect and
// the value that became active.
type ValueChange struct {
	Time  *Timestamp
	Value RawValue
}

// QueryResult is the answer to a point-in-time query: the value active at
// the queried time (if any) and the timestamp of the next strictly later
// change (absent at the end of the trace).
type QueryResult struct {
	Current *ValueChange
	Next    *Timestamp
}

// LoadCmd is an opaque deferred job returned by LoadVariables. The GUI loop
// drives it to completion off the frame loop; the core never inspects its
// internals.
type LoadCmd interface {
	// Run executes the load to completion. It may block; callers run it on
	// the background worker pool, never on the GUI loop.
	Run() error
}

// ContainerMetadata carries trace-wide metadata unrelated to any one
// signal.
type ContainerMetadata struct {
	// TimescaleUnit is the display unit for tick labels (e.g. "ns", "ps").
	TimescaleUnit string
	// TimescaleMagnitude is the power-of-ten multiplier paired with the
	// unit (e.g. 1 for "1 ns").
	TimescaleMagnitude int
}

// WaveContainer is the read-only query interface the core consumes. File
// parsing, remote protocols, and live-simulator clients are all out of
// scope for this module; they only need to satisfy this interface.
//
// All operations are fallible: a backend may be mid-load, a remote
// connection may drop, or a ref from a stale snapshot may no longer exist.
type WaveContainer interface {
	ScopeExists(scope ScopePath) (bool, error)
	ChildScopes(scope ScopePath) ([]ScopePath, error)
	VariablesInScope(scope ScopePath) ([]SignalRef, error)
	VariableMeta(ref SignalRef) (VariableMeta, error)

	// QueryVariable returns the value active at t and the next strictly
	// later change, or (nil, nil) if the signal has no recorded activity at
	// or before t.
	QueryVariable(ref SignalRef, t *Timestamp) (*QueryResult, error)

	// LoadVariables requests the given signals be made query-ready. Signals
	// may be lazily loaded; a non-nil LoadCmd must be driven to completion
	// before QueryVariable is guaranteed accurate for them. Returns nil if
	// all requested signals are already loaded.
	LoadVariables(refs []SignalRef) (LoadCmd, error)

	MaxTimestamp() (*Timestamp, bool)
	Metadata() ContainerMetadata
	WantsAntiAliasing() bool

	PauseSimulation()
	UnpauseSimulation()
}
