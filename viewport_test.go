package corewave

import (
	"math"
	"math/big"
	"testing"

	"github.com/tanema/gween/ease"
)

func approxEqualV(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestViewportDefaults(t *testing.T) {
	v := NewViewport()
	maxTs := TimestampFromUint64(1000)
	left, right := v.resolvedRange(maxTs)
	if left != 0 || right != 1000 {
		t.Errorf("resolvedRange = (%v, %v), want (0, 1000)", left, right)
	}
}

func TestPixelFromTimeLinear(t *testing.T) {
	v := &Viewport{Left: Absolute(0), Right: Absolute(100)}
	maxTs := TimestampFromUint64(100)
	px := v.PixelFromTime(TimestampFromUint64(50), 200, maxTs)
	if !approxEqualV(float64(px), 100, 0.001) {
		t.Errorf("PixelFromTime(50) = %v, want 100", px)
	}
}

func TestInverseCoordinateLaw(t *testing.T) {
	v := &Viewport{Left: Absolute(0), Right: Absolute(1_000_000)}
	maxTs := TimestampFromUint64(1_000_000)
	width := 800.0
	for x := 0; x <= 800; x += 37 {
		tt := v.AsTimeBigInt(float64(x), width, maxTs)
		px := v.PixelFromTime(tt, width, maxTs)
		if math.Abs(float64(px)-float64(x)) > 1.0001 {
			t.Errorf("x=%d: PixelFromTime(AsTimeBigInt(x)) = %v, want within 1px", x, px)
		}
	}
}

func TestHandleCanvasScroll(t *testing.T) {
	v := &Viewport{Left: Absolute(0), Right: Absolute(1000)}
	maxTs := TimestampFromUint64(10000)
	v.HandleCanvasScroll(PerScrollEvent, maxTs)
	left, right := v.resolvedRange(maxTs)
	if !approxEqualV(left, 1000, 0.001) || !approxEqualV(right, 2000, 0.001) {
		t.Errorf("after scroll: (%v, %v), want (1000, 2000)", left, right)
	}
}

func TestHandleCanvasZoomAroundAnchor(t *testing.T) {
	v := &Viewport{Left: Absolute(0), Right: Absolute(1000)}
	maxTs := TimestampFromUint64(1000)
	anchor := 0.0
	v.HandleCanvasZoom(&anchor, 0.5, maxTs)
	left, right := v.resolvedRange(maxTs)
	if !approxEqualV(left, 0, 0.001) || !approxEqualV(right, 500, 0.001) {
		t.Errorf("zoomed range = (%v, %v), want (0, 500)", left, right)
	}
}

func TestZoomNeverCollapsesBelowMinSpan(t *testing.T) {
	v := &Viewport{Left: Absolute(0), Right: Absolute(1000)}
	maxTs := TimestampFromUint64(1000)
	anchor := 500.0
	for i := 0; i < 64; i++ {
		v.HandleCanvasZoom(&anchor, 0.1, maxTs)
	}
	left, right := v.resolvedRange(maxTs)
	if right-left < minSpan-1e-9 {
		t.Errorf("span collapsed to %v, want >= %v", right-left, minSpan)
	}
	if left >= right {
		t.Errorf("well-formedness violated: left=%v right=%v", left, right)
	}
}

func TestZoomToFitTracksLast(t *testing.T) {
	v := &Viewport{Left: Absolute(10), Right: Absolute(20)}
	v.ZoomToFit()
	if !v.Right.last {
		t.Error("ZoomToFit should set Right to Last so a growing trace keeps filling the view")
	}
	maxTs := TimestampFromUint64(500)
	_, right := v.resolvedRange(maxTs)
	if right != 500 {
		t.Errorf("right = %v, want 500", right)
	}
	maxTs2 := TimestampFromUint64(5000)
	_, right2 := v.resolvedRange(maxTs2)
	if right2 != 5000 {
		t.Errorf("right tracking growth = %v, want 5000", right2)
	}
}

func TestClipToPreservesRelativePosition(t *testing.T) {
	v := &Viewport{Left: Absolute(500), Right: Absolute(1000)}
	oldMax := TimestampFromUint64(2000)
	newMax := TimestampFromUint64(4000)
	v.ClipTo(oldMax, newMax)
	left, right := v.resolvedRange(newMax)
	if !approxEqualV(left, 1000, 0.001) || !approxEqualV(right, 2000, 0.001) {
		t.Errorf("ClipTo result = (%v, %v), want (1000, 2000)", left, right)
	}
}

func TestZeroWidthDoesNotPanic(t *testing.T) {
	v := NewViewport()
	maxTs := TimestampFromUint64(0)
	tt := v.AsTimeBigInt(10, 0, maxTs)
	if tt.Cmp(big.NewInt(0)) != 0 {
		t.Errorf("AsTimeBigInt with zero width = %v, want 0", tt)
	}
}

func TestAnimatedMovementCompletes(t *testing.T) {
	v := &Viewport{Left: Absolute(0), Right: Absolute(100)}
	maxTs := TimestampFromUint64(1000)
	v.SetAnimatedTarget(100, 200, 1.0, ease.Linear, maxTs)
	if !v.IsMoving() {
		t.Fatal("expected IsMoving after SetAnimatedTarget")
	}
	for i := 0; i < 120; i++ {
		v.MoveViewport(1.0 / 60)
	}
	if v.IsMoving() {
		t.Error("expected movement to complete within 2 seconds of 1s tweens")
	}
	left, right := v.resolvedRange(maxTs)
	if !approxEqualV(left, 100, 0.01) || !approxEqualV(right, 200, 0.01) {
		t.Errorf("final range = (%v, %v), want (100, 200)", left, right)
	}
}
