// Package drawcmd turns a displayed variable and a viewport into the
// per-pixel draw commands a renderer walks. Generation is the hot path:
// a parallel sweep per variable, merged sequentially, behind a per-
// viewport cache.
package drawcmd

import "github.com/tracewave/corewave"

// Region is one sample in a drawing-command stream: the translated value
// active starting at this pixel (absent if the signal had no recorded
// activity there) and whether this pixel forces a visible transition even
// though the translated value did not change.
type Region struct {
	Value          *corewave.TranslatedValue
	ForceAntiAlias bool
}

// PixelValue pairs a pixel x-coordinate with the region active from that
// pixel onward. A stream's PixelValues are strictly increasing in PixelX.
type PixelValue struct {
	PixelX float32
	Region Region
}

// StreamKind tags which row shape a field's command stream renders as.
type StreamKind uint8

const (
	StreamWide StreamKind = iota
	StreamBool
	StreamClock
)

// DrawingCommands is the per-field output of one variable's sweep.
type DrawingCommands struct {
	Kind   StreamKind
	Values []PixelValue
}

// TickLabel is one axis label at a computed pixel position.
type TickLabel struct {
	Label  string
	PixelX float32
}

// CachedDrawData is everything a renderer needs for one viewport: the
// draw-command stream per displayed field, the merged clock-edge list,
// and the tick labels.
type CachedDrawData struct {
	Commands    map[corewave.DisplayedFieldRef]DrawingCommands
	ClockEdges  []float32
	Ticks       []TickLabel
	DrawClock   bool
	ResetFormat []corewave.DisplayedFieldRef
}

// DrawConfig bundles the generator's tunables.
type DrawConfig struct {
	LineHeight         float64
	TextSize           float64
	MaxTransitionWidth float64
	ContinuousRedraw   bool
}

// clockEdgeSuppressionPixels is the minimum spacing between the first two
// clock edges below which marker drawing is suppressed.
const clockEdgeSuppressionPixels = 20
