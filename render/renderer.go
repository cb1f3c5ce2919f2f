package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tracewave/corewave"
	"github.com/tracewave/corewave/drawcmd"
)

// RowLayout tells the renderer where each displayed field's row sits on
// the canvas. The renderer does not compute vertical layout itself — that
// is a WaveData/GUI-host concern — it only needs each field's vertical
// band.
type RowLayout struct {
	Field corewave.DisplayedFieldRef
	Top   float64
	Color corewave.Color
}

// Overlay is one cursor/marker vertical stroke, plus a marker's optional
// rectangular index label.
type Overlay struct {
	PixelX      float32
	IsCursor    bool
	MarkerIndex uint8
	Label       string
}

// Draw renders one frame: ticks, the clock-edge band overlay, every row in
// rows (in the order given), and the cursor/marker overlay on top.
func Draw(dst *ebiten.Image, data *drawcmd.CachedDrawData, rows []RowLayout, overlays []Overlay, canvas corewave.Rect, theme Theme, font *MonoFont) {
	if data == nil {
		return
	}
	bg := theme.Background.RGBA()
	vector.DrawFilledRect(dst, float32(canvas.X), float32(canvas.Y), float32(canvas.Width), float32(canvas.Height), bg, false)

	if data.DrawClock {
		drawClockBands(dst, data.ClockEdges, canvas, theme)
	}
	drawTicks(dst, data.Ticks, canvas, theme, font)

	for _, row := range rows {
		cmds, ok := data.Commands[row.Field]
		if !ok {
			continue
		}
		switch cmds.Kind {
		case drawcmd.StreamBool, drawcmd.StreamClock:
			drawBoolRow(dst, cmds, row, canvas, theme)
		default:
			drawWideRow(dst, cmds, row, canvas, theme, font)
		}
	}

	drawOverlays(dst, overlays, canvas, theme, font)
}

// drawTicks draws the thin themed vertical tick lines and their labels.
func drawTicks(dst *ebiten.Image, ticks []drawcmd.TickLabel, canvas corewave.Rect, theme Theme, font *MonoFont) {
	stroke := theme.TickStroke.RGBA()
	for _, tick := range ticks {
		x := float32(canvas.X) + tick.PixelX
		vector.StrokeLine(dst, x, float32(canvas.Y), x, float32(canvas.Y+canvas.Height), 1, stroke, false)
		drawText(dst, tick.Label, font, float64(x)+2, canvas.Y, fcolor(theme.Foreground))
	}
}

// drawClockBands draws alternating shaded bands between successive clock
// edges.
func drawClockBands(dst *ebiten.Image, edges []float32, canvas corewave.Rect, theme Theme) {
	if len(edges) < 2 {
		return
	}
	colors := [2]color.RGBA{theme.ClockBandA.RGBA(), theme.ClockBandB.RGBA()}
	for i := 0; i+1 < len(edges); i++ {
		x0, x1 := float32(canvas.X)+edges[i], float32(canvas.X)+edges[i+1]
		vector.DrawFilledRect(dst, x0, float32(canvas.Y), x1-x0, float32(canvas.Height), colors[i%2], false)
	}
}

// drawBoolRow renders a bool/clock stream: horizontal segments at each
// value's height, a vertical segment at every transition, optional
// anti-alias verticals where the value didn't change but a transition
// must still render.
func drawBoolRow(dst *ebiten.Image, cmds drawcmd.DrawingCommands, row RowLayout, canvas corewave.Rect, theme Theme) {
	if len(cmds.Values) == 0 {
		return
	}
	low := row.Top + theme.LineHeight*0.8
	high := row.Top + theme.LineHeight*0.2

	heightOf := func(v *corewave.TranslatedValue) float64 {
		if v != nil && v.Text == "1" {
			return high
		}
		return low
	}

	isHigh := func(v *corewave.TranslatedValue) bool { return v != nil && v.Text == "1" }

	prev := cmds.Values[0]
	prevY := heightOf(prev.Region.Value)
	for i := 1; i < len(cmds.Values); i++ {
		cur := cmds.Values[i]
		curY := heightOf(cur.Region.Value)
		stroke := rowColor(theme, row, prev.Region.Value)

		x0 := float32(canvas.X) + prev.PixelX
		x1 := float32(canvas.X) + cur.PixelX
		if theme.HalfOpacityFill && isHigh(prev.Region.Value) {
			c := stroke
			c.R, c.G, c.B, c.A = c.R/2, c.G/2, c.B/2, c.A/2
			vector.DrawFilledRect(dst, x0, float32(high), x1-x0, float32(low-high), c, false)
		}
		vector.StrokeLine(dst, x0, float32(prevY), x1, float32(prevY), 1.5, stroke, false)
		if prevY != curY || cur.Region.ForceAntiAlias {
			vector.StrokeLine(dst, x1, float32(prevY), x1, float32(curY), 1.5, stroke, false)
		}
		if theme.ShowRiseArrow && !isHigh(prev.Region.Value) && isHigh(cur.Region.Value) {
			drawRiseArrow(dst, float64(x1), high, fcolor(theme.colorFor(valueKind(cur.Region.Value), customColor(cur.Region.Value), theme.Foreground)))
		}
		prev, prevY = cur, curY
	}
}

func valueKind(v *corewave.TranslatedValue) corewave.ValueKind {
	if v == nil {
		return corewave.KindNormal
	}
	return v.Kind
}

func customColor(v *corewave.TranslatedValue) corewave.Color {
	if v == nil {
		return corewave.Color{}
	}
	return v.CustomColor
}

// drawWideRow renders a wide (multi-bit) stream: a transition hexagon
// between each consecutive pair, with the translated text fit into the
// remaining label area.
func drawWideRow(dst *ebiten.Image, cmds drawcmd.DrawingCommands, row RowLayout, canvas corewave.Rect, theme Theme, font *MonoFont) {
	if len(cmds.Values) < 2 {
		return
	}
	yTop := row.Top + theme.LineHeight*0.15
	yBottom := row.Top + theme.LineHeight*0.85

	for i := 1; i < len(cmds.Values); i++ {
		old, new := cmds.Values[i-1], cmds.Values[i]
		x0 := float64(canvas.X) + float64(old.PixelX)
		x1 := float64(canvas.X) + float64(new.PixelX)
		if x1 <= x0 {
			continue
		}
		transitionWidth := x1 - x0
		if transitionWidth > 6 {
			transitionWidth = 6
		}
		col := rowColor(theme, row, old.Region.Value)
		drawHexagon(dst, x0, x1, yTop, yBottom, transitionWidth, col)

		if old.Region.Value == nil {
			continue
		}
		area := (x1 - x0) - transitionWidth
		label := fitLabel(old.Region.Value.Text, area, theme.TextSize)
		drawText(dst, label, font, x0+transitionWidth, yTop, fcolor(theme.Foreground))
	}
}

// drawOverlays draws the cursor and any marker vertical strokes, plus a
// rectangular marker-index label for non-cursor entries. A marker's label
// is "#<idx>" when it has no name, or "#<idx> <name>" when it does.
func drawOverlays(dst *ebiten.Image, overlays []Overlay, canvas corewave.Rect, theme Theme, font *MonoFont) {
	for _, ov := range overlays {
		x := float32(canvas.X) + ov.PixelX
		stroke := theme.MarkerStroke.RGBA()
		if ov.IsCursor {
			stroke = theme.CursorStroke.RGBA()
		}
		vector.StrokeLine(dst, x, float32(canvas.Y), x, float32(canvas.Y+canvas.Height), 1, stroke, false)
		if ov.IsCursor {
			continue
		}
		label := fmt.Sprintf("#%d", ov.MarkerIndex)
		if ov.Label != "" {
			label += " " + ov.Label
		}
		width := float32(monospaceCharWidth(theme.TextSize) * float64(len(label)))
		if width < 16 {
			width = 16
		}
		vector.DrawFilledRect(dst, x, float32(canvas.Y), width, 12, stroke, false)
		drawText(dst, label, font, float64(x)+2, canvas.Y, fcolor(theme.Background))
	}
}

func rowColor(theme Theme, row RowLayout, v *corewave.TranslatedValue) color.RGBA {
	if v == nil {
		return theme.Foreground.RGBA()
	}
	deflt := row.Color
	if deflt == (corewave.Color{}) {
		deflt = theme.Foreground
	}
	return theme.colorFor(v.Kind, v.CustomColor, deflt).RGBA()
}

func fcolor(c corewave.Color) [4]float32 {
	return [4]float32{float32(c.R), float32(c.G), float32(c.B), float32(c.A)}
}
