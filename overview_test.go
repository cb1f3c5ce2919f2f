package corewave

import "testing"

func TestOverviewHighlightRectMatchesViewportFraction(t *testing.T) {
	maxTs := TimestampFromUint64(1000)
	o := &Overview{Viewport: &Viewport{Left: Absolute(250), Right: Absolute(500)}}
	x, width := o.HighlightRect(200, maxTs)
	if !approxEqualV(x, 50, 0.001) {
		t.Errorf("x = %v, want 50", x)
	}
	if !approxEqualV(width, 50, 0.001) {
		t.Errorf("width = %v, want 50", width)
	}
}

func TestOverviewNavigateToRecentersViewport(t *testing.T) {
	maxTs := TimestampFromUint64(1000)
	v := &Viewport{Left: Absolute(0), Right: Absolute(100)}
	o := &Overview{Viewport: v}
	o.NavigateTo(TimestampFromUint64(500), maxTs)
	left, right := v.resolvedRange(maxTs)
	if !approxEqualV(right-left, 100, 0.001) {
		t.Errorf("span changed: (%v, %v)", left, right)
	}
	if !approxEqualV((left+right)/2, 500, 0.001) {
		t.Errorf("not centered on 500: (%v, %v)", left, right)
	}
}

func TestOverviewTimeFromStripPixelRoundTrip(t *testing.T) {
	maxTs := TimestampFromUint64(1000)
	o := &Overview{Viewport: NewViewport()}
	got := o.TimeFromStripPixel(100, 200, maxTs)
	want := TimestampFromUint64(500)
	if got.Cmp(want) != 0 {
		t.Errorf("TimeFromStripPixel = %v, want %v", got, want)
	}
}
