package drawcmd

import (
	"context"

	"go.uber.org/zap"

	"github.com/tracewave/corewave"
)

// Snapshot is the set of inputs whose equality determines cache freshness:
// the displayed item identities and ordering, each one's chosen translator
// name (including per-field overrides), the viewport's resolved range, and
// the canvas size. Two Snapshots with equal fields produce the identical
// cache entry.
type Snapshot struct {
	ItemOrder        []corewave.ItemRef
	TranslatorNames  []string
	ViewportLeft     float64
	ViewportRight    float64
	CanvasWidth      float64
	CanvasHeight     float64
	ContinuousRedraw bool
}

func (s Snapshot) equal(other Snapshot) bool {
	if s.ViewportLeft != other.ViewportLeft || s.ViewportRight != other.ViewportRight {
		return false
	}
	if s.CanvasWidth != other.CanvasWidth || s.CanvasHeight != other.CanvasHeight {
		return false
	}
	if s.ContinuousRedraw || other.ContinuousRedraw {
		return false
	}
	if len(s.ItemOrder) != len(other.ItemOrder) || len(s.TranslatorNames) != len(other.TranslatorNames) {
		return false
	}
	for i := range s.ItemOrder {
		if s.ItemOrder[i] != other.ItemOrder[i] {
			return false
		}
	}
	for i := range s.TranslatorNames {
		if s.TranslatorNames[i] != other.TranslatorNames[i] {
			return false
		}
	}
	return true
}

// Cache holds exactly one CachedDrawData slot per viewport, keyed by the
// Snapshot that produced it — modeled as a sibling the WaveData owner
// holds alongside the viewport, not embedded inside it, since invalidation
// triggers cross-cut several mutation sites (item add/remove, format
// change, viewport move, canvas resize). A cache slot answers queries from
// its last-built snapshot until explicitly invalidated or until the
// snapshot it was built from no longer matches.
type Cache struct {
	snapshot Snapshot
	data     *CachedDrawData
	valid    bool
}

// Get returns the cached entry if snap matches the last snapshot this
// cache was built from, and invalid otherwise.
func (c *Cache) Get(snap Snapshot) (*CachedDrawData, bool) {
	if !c.valid || !c.snapshot.equal(snap) {
		return nil, false
	}
	return c.data, true
}

// Invalidate drops the cached entry unconditionally. Call on any
// invalidation trigger the Snapshot equality check does not itself catch
// (e.g. an explicit "force redraw" request).
func (c *Cache) Invalidate() {
	c.valid = false
	c.data = nil
}

// Rebuild regenerates the cache for snap, replacing any prior entry.
func (c *Cache) Rebuild(ctx context.Context, vp *corewave.Viewport, width float64, maxTs *corewave.Timestamp, cfg DrawConfig, vars []DisplayedVariable, snap Snapshot, logger *zap.Logger) (*CachedDrawData, error) {
	data, err := Generate(ctx, vp, width, maxTs, cfg, vars, logger)
	if err != nil {
		return nil, err
	}
	c.snapshot = snap
	c.data = data
	c.valid = true
	return data, nil
}

// Ensure returns the cached entry for snap, regenerating it first if
// stale — the single entry point a renderer calls once per frame, so a
// caller never sees stale pixel data.
func (c *Cache) Ensure(ctx context.Context, vp *corewave.Viewport, width float64, maxTs *corewave.Timestamp, cfg DrawConfig, vars []DisplayedVariable, snap Snapshot, logger *zap.Logger) (*CachedDrawData, error) {
	if data, ok := c.Get(snap); ok {
		return data, nil
	}
	return c.Rebuild(ctx, vp, width, maxTs, cfg, vars, snap, logger)
}
