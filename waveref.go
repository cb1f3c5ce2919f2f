package corewave

import "strings"

// ScopePath is a hierarchical sequence of scope names, root first, as found
// in a waveform's module/instance hierarchy (e.g. ["tb", "dut", "core"]).
type ScopePath []string

// String renders the path dot-joined, for logging and display.
func (p ScopePath) String() string { return strings.Join(p, ".") }

// Equal reports whether two scope paths name the same scope.
func (p ScopePath) Equal(other ScopePath) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// SignalRef uniquely identifies a signal within a container: a hierarchical
// scope plus a leaf name, plus an opaque backend id the container attaches
// for fast re-lookup. Two refs compare equal iff both path and name agree —
// BackendID is a cache hint, not part of identity.
type SignalRef struct {
	Scope     ScopePath
	Name      string
	BackendID uint64
}

// Equal reports whether two refs identify the same signal. BackendID is
// intentionally excluded: two refs resolved through different loads of the
// same container must still compare equal by path+name.
func (r SignalRef) Equal(other SignalRef) bool {
	return r.Name == other.Name && r.Scope.Equal(other.Scope)
}

// FullName returns the dot-joined scope path and leaf name, e.g.
// "tb.dut.core.valid".
func (r SignalRef) FullName() string {
	if len(r.Scope) == 0 {
		return r.Name
	}
	return r.Scope.String() + "." + r.Name
}
