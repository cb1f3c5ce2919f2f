package drawcmd

import (
	"context"
	"math/big"
	"testing"

	"github.com/tracewave/corewave"
)

type fakeContainer struct {
	changes []corewave.ValueChange
	maxTs   *big.Int
}

func (f *fakeContainer) ScopeExists(corewave.ScopePath) (bool, error)      { return true, nil }
func (f *fakeContainer) ChildScopes(corewave.ScopePath) ([]corewave.ScopePath, error) {
	return nil, nil
}
func (f *fakeContainer) VariablesInScope(corewave.ScopePath) ([]corewave.SignalRef, error) {
	return nil, nil
}
func (f *fakeContainer) VariableMeta(corewave.SignalRef) (corewave.VariableMeta, error) {
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

func TestGenerateProducesIncreasingPixels(t *testing.T) {
	reg := corewave.NewRegistry(corewave.DefaultTranslatorName)
	corewave.RegisterBasicTranslators(reg)

	maxTs := big.NewInt(400)
	container := &fakeContainer{
		maxTs: maxTs,
		changes: []corewave.ValueChange{
			{Time: big.NewInt(0), Value: corewave.RawValue{Bits: "0"}},
			{Time: big.NewInt(100), Value: corewave.RawValue{Bits: "1"}},
			{Time: big.NewInt(300), Value: corewave.RawValue{Bits: "0"}},
		},
	}
	vp := corewave.NewViewport()
	meta := corewave.VariableMeta{NumBits: 1, Encoding: corewave.EncodingBitVector}
	dv := DisplayedVariable{
		Item:       1,
		Container:  container,
		Meta:       meta,
		Translator: reg.AutoSelect(meta),
	}

	data, err := Generate(context.Background(), vp, 400, maxTs, DrawConfig{MaxTransitionWidth: 10}, []DisplayedVariable{dv}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data.Commands) == 0 {
		t.Fatal("expected at least one draw-command stream")
	}
	for ref, cmds := range data.Commands {
		if ref.Item != 1 {
			t.Errorf("unexpected item ref %v", ref.Item)
		}
		for i := 1; i < len(cmds.Values); i++ {
			if cmds.Values[i].PixelX <= cmds.Values[i-1].PixelX {
				t.Errorf("pixel values not strictly increasing at %d: %v <= %v", i, cmds.Values[i].PixelX, cmds.Values[i-1].PixelX)
			}
		}
	}
}

func TestGenerateZeroWidthIsEmptyNotError(t *testing.T) {
	container := &fakeContainer{maxTs: big.NewInt(0)}
	vp := corewave.NewViewport()
	data, err := Generate(context.Background(), vp, 0, big.NewInt(0), DrawConfig{}, []DisplayedVariable{{Container: container}}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data.Commands) != 0 {
		t.Errorf("expected empty cache entry, got %d streams", len(data.Commands))
	}
}

func TestCacheInvalidatesOnViewportChange(t *testing.T) {
	var c Cache
	snap1 := Snapshot{CanvasWidth: 400, ViewportLeft: 0, ViewportRight: 400}
	snap2 := Snapshot{CanvasWidth: 400, ViewportLeft: 50, ViewportRight: 400}

	maxTs := big.NewInt(400)
	container := &fakeContainer{maxTs: maxTs}
	vp := corewave.NewViewport()

	data1, err := c.Ensure(context.Background(), vp, 400, maxTs, DrawConfig{}, nil, snap1, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := c.Get(snap1); !ok {
		t.Fatal("expected cache hit for snap1")
	}
	if _, ok := c.Get(snap2); ok {
		t.Fatal("expected cache miss for a different viewport snapshot")
	}
	data2, err := c.Ensure(context.Background(), vp, 400, maxTs, DrawConfig{}, nil, snap2, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data1 == data2 {
		t.Error("expected a freshly generated entry after invalidation")
	}
}
