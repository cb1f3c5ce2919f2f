package corewave

// Overview computes the highlight rectangle for an overview strip: a
// miniature of the whole [0, maxTs] trace with a box showing where the
// current Viewport sits. Overview does no drawing of its own; render
// draws the highlight using the same rect it would use for any other
// overlay.
type Overview struct {
	Viewport *Viewport
}

// HighlightRect returns the box's [x, x+width] in pixels, given the
// overview strip's own width and the container's max timestamp. A click on
// the strip maps back to a time via TimeFromStripPixel on [0, maxTs]
// rather than the Viewport's own (possibly narrower) range.
func (o *Overview) HighlightRect(stripWidth float64, maxTs *Timestamp) (x, width float64) {
	maxF := bigToFloat64(maxTs)
	if maxF == 0 {
		return 0, stripWidth
	}
	left, right := o.Viewport.resolvedRange(maxTs)
	x = left * stripWidth / maxF
	width = (right - left) * stripWidth / maxF
	if width < 1 {
		width = 1
	}
	return x, width
}

// TimeFromStripPixel maps a click at pixel x on the overview strip (width
// stripWidth) to an absolute timestamp over the whole [0, maxTs] range,
// independent of the main Viewport's current zoom.
func (o *Overview) TimeFromStripPixel(x, stripWidth float64, maxTs *Timestamp) *Timestamp {
	if stripWidth == 0 {
		return float64ToBigRound(0)
	}
	maxF := bigToFloat64(maxTs)
	return float64ToBigRound(x * maxF / stripWidth)
}

// NavigateTo re-centers the overview's Viewport on t, preserving its
// current span — the overview strip's "click to navigate" behavior.
func (o *Overview) NavigateTo(t *Timestamp, maxTs *Timestamp) {
	o.Viewport.GoToTime(t, maxTs)
}
