package wavedata

import (
	"math/big"
	"testing"

	"github.com/tracewave/corewave"
)

type fakeContainer struct {
	changes []corewave.ValueChange
	maxTs   *big.Int
	missing map[string]bool
}

func (f *fakeContainer) ScopeExists(corewave.ScopePath) (bool, error) { return true, nil }
func (f *fakeContainer) ChildScopes(corewave.ScopePath) ([]corewave.ScopePath, error) {
	return nil, nil
}
func (f *fakeContainer) VariablesInScope(corewave.ScopePath) ([]corewave.SignalRef, error) {
	return nil, nil
}
func (f *fakeContainer) VariableMeta(ref corewave.SignalRef) (corewave.VariableMeta, error) {
	if f.missing != nil && f.missing[ref.Name] {
		return corewave.VariableMeta{}, errNotFound
	}
	return corewave.VariableMeta{NumBits: 1, Encoding: corewave.EncodingBitVector}, nil
}
func (f *fakeContainer) QueryVariable(ref corewave.SignalRef, t *corewave.Timestamp) (*corewave.QueryResult, error) {
	var cur *corewave.ValueChange
	var next *corewave.Timestamp
	for i, c := range f.changes {
		if c.Time.Cmp(t) <= 0 {
			cc := c
			cur = &cc
			if i+1 < len(f.changes) {
				next = f.changes[i+1].Time
			} else {
				next = nil
			}
		}
	}
	return &corewave.QueryResult{Current: cur, Next: next}, nil
}
func (f *fakeContainer) LoadVariables([]corewave.SignalRef) (corewave.LoadCmd, error) { return nil, nil }
func (f *fakeContainer) MaxTimestamp() (*corewave.Timestamp, bool)                    { return f.maxTs, true }
func (f *fakeContainer) Metadata() corewave.ContainerMetadata                         { return corewave.ContainerMetadata{} }
func (f *fakeContainer) WantsAntiAliasing() bool                                      { return false }
func (f *fakeContainer) PauseSimulation()                                            {}
func (f *fakeContainer) UnpauseSimulation()                                          {}

type notFoundError string

func (e notFoundError) Error() string { return string(e) }

const errNotFound = notFoundError("not found")

func newRegistry() *corewave.Registry {
	reg := corewave.NewRegistry(corewave.DefaultTranslatorName)
	corewave.RegisterBasicTranslators(reg)
	return reg
}

func TestCursorAtTransitionScenario(t *testing.T) {
	container := &fakeContainer{
		maxTs: big.NewInt(300),
		changes: []corewave.ValueChange{
			{Time: big.NewInt(0), Value: corewave.RawValue{Bits: "0"}},
			{Time: big.NewInt(100), Value: corewave.RawValue{Bits: "1"}},
			{Time: big.NewInt(200), Value: corewave.RawValue{Bits: "0"}},
			{Time: big.NewInt(300), Value: corewave.RawValue{Bits: "1"}},
		},
	}
	ref := corewave.SignalRef{Name: "sig"}
	w := New(NameLocal)
	w.markers[corewave.CursorMarkerIndex] = big.NewInt(150)

	if err := w.SetCursorAtTransition(true, &ref, false, container, container.maxTs); err != nil {
		t.Fatalf("next: %v", err)
	}
	if c, _ := w.Cursor(); c.Cmp(big.NewInt(200)) != 0 {
		t.Fatalf("expected cursor 200, got %v", c)
	}

	if err := w.SetCursorAtTransition(false, &ref, false, container, container.maxTs); err != nil {
		t.Fatalf("previous: %v", err)
	}
	if c, _ := w.Cursor(); c.Cmp(big.NewInt(100)) != 0 {
		t.Fatalf("expected cursor 100, got %v", c)
	}
}

func TestMarkerLimitGracefulFailure(t *testing.T) {
	w := New(NameLocal)
	for i := 0; i <= int(corewave.MaxUserMarkerIndex); i++ {
		if err := w.SetMarkerPosition(uint8(i), big.NewInt(int64(i))); err != nil {
			t.Fatalf("marker %d: unexpected error: %v", i, err)
		}
	}
	// Updating an already-allocated marker's position is always fine...
	if err := w.SetMarkerPosition(corewave.MaxUserMarkerIndex, big.NewInt(999)); err != nil {
		t.Fatalf("updating an existing marker's position should not fail: %v", err)
	}
	// ...but the 255th user marker (index 254, one past MaxUserMarkerIndex)
	// has no slot: every index in range is already a user marker.
	if err := w.SetMarkerPosition(corewave.MaxUserMarkerIndex+1, big.NewInt(999)); err == nil {
		t.Fatal("expected the 255th user marker to fail gracefully")
	}

	// The cursor slot (255) remains available regardless.
	if err := w.SetMarkerPosition(corewave.CursorMarkerIndex, big.NewInt(42)); err != nil {
		t.Fatalf("cursor marker should always be settable: %v", err)
	}
	if got, ok := w.Marker(corewave.CursorMarkerIndex); !ok || got.Cmp(big.NewInt(42)) != 0 {
		t.Fatalf("cursor marker not stored correctly: %v %v", got, ok)
	}
}

func TestPlaceholderRoundTrip(t *testing.T) {
	reg := newRegistry()
	container := &fakeContainer{maxTs: big.NewInt(100)}
	w := New(NameLocal)

	refs := []corewave.SignalRef{{Name: "a"}}
	added, _, err := w.AddVariables(refs, container, reg)
	if err != nil || len(added) != 1 {
		t.Fatalf("AddVariables: %v %v", added, err)
	}
	itemRef := added[0]

	// Reload against a container where "a" is temporarily unresolvable,
	// demoting it to a Placeholder but keeping the same item ref.
	missingContainer := &fakeContainer{maxTs: big.NewInt(100), missing: map[string]bool{"a": true}}
	w.UpdateWithWaves(missingContainer, ReloadSource{Kind: "file", ID: "x"}, true, true)
	item, ok := w.Get(itemRef)
	if !ok || item.Kind != ItemPlaceholder {
		t.Fatalf("expected placeholder, got %+v ok=%v", item, ok)
	}

	// Reload again against a container where "a" resolves again: confirm
	// the same item ref is still addressable after the resolve cycle.
	w.UpdateWithWaves(container, ReloadSource{Kind: "file", ID: "x"}, true, true)
	if _, ok := w.Get(itemRef); !ok {
		t.Fatalf("expected item ref %d to still be addressable", itemRef)
	}
}

func TestComputeVariableDisplayNamesCollision(t *testing.T) {
	reg := newRegistry()
	container := &fakeContainer{maxTs: big.NewInt(100)}
	w := New(NameLocal)

	refs := []corewave.SignalRef{
		{Scope: corewave.ScopePath{"a"}, Name: "clk"},
		{Scope: corewave.ScopePath{"b"}, Name: "clk"},
	}
	added, _, err := w.AddVariables(refs, container, reg)
	if err != nil {
		t.Fatalf("AddVariables: %v", err)
	}

	w.ComputeVariableDisplayNames(true)
	names := map[string]bool{}
	for _, ref := range added {
		item, _ := w.Get(ref)
		names[item.DisplayName()] = true
	}
	if len(names) != 2 {
		t.Fatalf("expected two distinct display names, got %v", names)
	}
}

func TestRemoveFocusedItemMovesFocusToPrior(t *testing.T) {
	reg := newRegistry()
	container := &fakeContainer{maxTs: big.NewInt(100)}
	w := New(NameLocal)

	refs := []corewave.SignalRef{{Name: "a"}, {Name: "b"}, {Name: "c"}}
	added, _, _ := w.AddVariables(refs, container, reg)

	w.focused, w.hasFocus = added[1], true
	w.RemoveItems([]corewave.ItemRef{added[1]})

	got, ok := w.Focused()
	if !ok || got != added[0] {
		t.Fatalf("expected focus to move to prior item %d, got %d (ok=%v)", added[0], got, ok)
	}
}
