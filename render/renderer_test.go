package render

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tracewave/corewave"
	"github.com/tracewave/corewave/drawcmd"
)

func TestDrawDoesNotPanicOnEmptyData(t *testing.T) {
	dst := ebiten.NewImage(200, 100)
	data := &drawcmd.CachedDrawData{Commands: map[corewave.DisplayedFieldRef]drawcmd.DrawingCommands{}}
	Draw(dst, data, nil, nil, corewave.Rect{Width: 200, Height: 100}, DefaultTheme(), nil)
}

func TestDrawBoolRowTransition(t *testing.T) {
	dst := ebiten.NewImage(200, 100)
	field := corewave.DisplayedFieldRef{Item: 1}
	v0 := corewave.TranslatedValue{Text: "0", Kind: corewave.KindNormal}
	v1 := corewave.TranslatedValue{Text: "1", Kind: corewave.KindNormal}
	data := &drawcmd.CachedDrawData{
		Commands: map[corewave.DisplayedFieldRef]drawcmd.DrawingCommands{
			field: {
				Kind: drawcmd.StreamBool,
				Values: []drawcmd.PixelValue{
					{PixelX: 0, Region: drawcmd.Region{Value: &v0}},
					{PixelX: 50, Region: drawcmd.Region{Value: &v1}},
					{PixelX: 100, Region: drawcmd.Region{Value: &v0}},
				},
			},
		},
	}
	rows := []RowLayout{{Field: field, Top: 10}}
	Draw(dst, data, rows, nil, corewave.Rect{Width: 200, Height: 100}, DefaultTheme(), nil)
}

func TestDrawOverlaysMarkerLabelDoesNotPanic(t *testing.T) {
	dst := ebiten.NewImage(200, 100)
	overlays := []Overlay{
		{PixelX: 30, IsCursor: true},
		{PixelX: 60, MarkerIndex: 3, Label: "reset"},
		{PixelX: 90, MarkerIndex: 12},
	}
	drawOverlays(dst, overlays, corewave.Rect{Width: 200, Height: 100}, DefaultTheme(), nil)
}

func TestFitLabelTruncatesWithEllipsis(t *testing.T) {
	got := fitLabel("deadbeefcafe", 40, 13)
	if got == "deadbeefcafe" {
		t.Fatal("expected truncation for a narrow area")
	}
	if len(got) == 0 {
		t.Fatal("expected a non-empty fitted label")
	}
}
