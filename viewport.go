package corewave

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// LogicalPosition is one endpoint of a Viewport: either the live end of the
// trace (so the viewport keeps tracking a growing simulation) or a fixed
// absolute position on the timeline.
type LogicalPosition struct {
	last bool
	abs  float64
}

// Last returns the logical position that always resolves to the
// container's current maximum timestamp.
func Last() LogicalPosition { return LogicalPosition{last: true} }

// Absolute returns a fixed logical position at v.
func Absolute(v float64) LogicalPosition { return LogicalPosition{abs: v} }

// resolve returns the absolute float64 position given the container's
// current max timestamp (already converted to float64).
func (p LogicalPosition) resolve(maxF float64) float64 {
	if p.last {
		return maxF
	}
	return p.abs
}

// moveAnim holds the active animated-movement tweens for the viewport's
// left and right edges: two independent gween.Tween values, each tracked
// to completion independently.
type moveAnim struct {
	tweenLeft  *gween.Tween
	tweenRight *gween.Tween
	doneLeft   bool
	doneRight  bool
	curLeft    float64
	curRight   float64
}

// Viewport is a bidirectional map between arbitrary-precision timestamps and
// pixel coordinates, plus pan/zoom state and an optional animated movement
// strategy. The zero value is not usable; construct with NewViewport.
type Viewport struct {
	Left, Right LogicalPosition

	anim *moveAnim
}

// NewViewport returns a Viewport spanning the whole trace, [0, Last].
func NewViewport() *Viewport {
	return &Viewport{Left: Absolute(0), Right: Last()}
}

// resolvedRange returns the current (left, right) as float64, given the
// container's max timestamp.
func (v *Viewport) resolvedRange(maxTs *Timestamp) (left, right float64) {
	maxF := bigToFloat64(maxTs)
	return v.Left.resolve(maxF), v.Right.resolve(maxF)
}

// PixelFromTime maps a timestamp to a pixel x-coordinate for a canvas of the
// given width, linear in the viewport's current range.
func (v *Viewport) PixelFromTime(t *Timestamp, width float64, maxTs *Timestamp) float32 {
	left, right := v.resolvedRange(maxTs)
	span := right - left
	if span == 0 {
		return 0
	}
	tf := bigToFloat64(t)
	return float32((tf - left) * width / span)
}

// AsTimeBigInt maps a pixel x-coordinate back to a timestamp, rounded to the
// nearest integer. The result is never clamped: values before 0 or past the
// trace end are legal and it is up to the caller (draw-command generation)
// to discard them.
func (v *Viewport) AsTimeBigInt(x float64, width float64, maxTs *Timestamp) *Timestamp {
	left, right := v.resolvedRange(maxTs)
	if width == 0 {
		return float64ToBigRound(left)
	}
	t := left + x*(right-left)/width
	return float64ToBigRound(t)
}

// minSpan is the minimum allowed (right - left), one timestamp unit, per the
// "no zoom makes the range smaller than one timestamp" invariant.
const minSpan = 1.0

// clampSpan enforces left < right and a minimum one-timestamp span, mutating
// newLeft/newRight in place as necessary.
func clampSpan(newLeft, newRight float64) (float64, float64) {
	if newRight-newLeft < minSpan {
		mid := (newLeft + newRight) / 2
		newLeft = mid - minSpan/2
		newRight = mid + minSpan/2
	}
	return newLeft, newRight
}

// setAbsolute replaces the viewport's range with fixed absolute bounds,
// clamped to the well-formedness invariant. Any animated movement in
// progress is cancelled — direct mutation always wins over a tween.
func (v *Viewport) setAbsolute(left, right float64) {
	left, right = clampSpan(left, right)
	v.Left, v.Right = Absolute(left), Absolute(right)
	v.anim = nil
}

// HandleCanvasScroll translates the viewport by delta scroll units, each
// unit worth (right-left)/PerScrollEvent of time.
func (v *Viewport) HandleCanvasScroll(delta float64, maxTs *Timestamp) {
	left, right := v.resolvedRange(maxTs)
	shift := delta * (right - left) / PerScrollEvent
	v.setAbsolute(left+shift, right+shift)
}

// HandleCanvasZoom rescales the viewport by factor around anchor. If anchor
// is nil, the current viewport midpoint is used.
func (v *Viewport) HandleCanvasZoom(anchor *float64, factor float64, maxTs *Timestamp) {
	left, right := v.resolvedRange(maxTs)
	a := (left + right) / 2
	if anchor != nil {
		a = *anchor
	}
	newLeft := a + (left-a)*factor
	newRight := a + (right-a)*factor
	v.setAbsolute(newLeft, newRight)
}

// ZoomToFit resets the viewport to the whole trace. Right tracks Last so a
// still-growing simulation keeps filling the view.
func (v *Viewport) ZoomToFit() {
	v.Left, v.Right = Absolute(0), Last()
	v.anim = nil
}

// GoToStart scrolls so the left edge sits at the trace start, preserving the
// current span.
func (v *Viewport) GoToStart(maxTs *Timestamp) {
	left, right := v.resolvedRange(maxTs)
	span := right - left
	v.setAbsolute(0, span)
}

// GoToEnd scrolls so the right edge sits at the current trace end,
// preserving the current span. Both edges become fixed absolute positions,
// so the right edge does not follow later growth of the trace.
func (v *Viewport) GoToEnd(maxTs *Timestamp) {
	left, right := v.resolvedRange(maxTs)
	span := right - left
	maxF := bigToFloat64(maxTs)
	v.setAbsolute(maxF-span, maxF)
}

// GoToTime centers the viewport on t, preserving the current span.
func (v *Viewport) GoToTime(t *Timestamp, maxTs *Timestamp) {
	left, right := v.resolvedRange(maxTs)
	span := right - left
	tf := bigToFloat64(t)
	v.setAbsolute(tf-span/2, tf+span/2)
}

// ZoomToRange sets the viewport to the explicit absolute range [a, b].
func (v *Viewport) ZoomToRange(a, b float64) {
	if a > b {
		a, b = b, a
	}
	v.setAbsolute(a, b)
}

// ClipTo rescales the current range so its relative position within
// [0, oldMax] is preserved within [0, newMax]. Used after a reload changes
// the trace's maximum timestamp.
func (v *Viewport) ClipTo(oldMax, newMax *Timestamp) {
	oldF := bigToFloat64(oldMax)
	newF := bigToFloat64(newMax)
	if oldF == 0 {
		v.setAbsolute(0, newF)
		return
	}
	left, right := v.resolvedRange(oldMax)
	scale := newF / oldF
	v.setAbsolute(left*scale, right*scale)
}

// SetAnimatedTarget starts an animated movement toward (targetLeft,
// targetRight) over duration seconds using the given easing function, by
// starting a gween tween toward each target edge independently.
func (v *Viewport) SetAnimatedTarget(targetLeft, targetRight float64, duration float32, fn ease.TweenFunc, maxTs *Timestamp) {
	left, right := v.resolvedRange(maxTs)
	v.anim = &moveAnim{
		tweenLeft:  gween.New(float32(left), float32(targetLeft), duration, fn),
		tweenRight: gween.New(float32(right), float32(targetRight), duration, fn),
		curLeft:    left,
		curRight:   right,
	}
}

// IsMoving reports whether an animated movement is currently in progress.
func (v *Viewport) IsMoving() bool { return v.anim != nil }

// MoveViewport advances an in-progress animated movement by dt seconds. When
// both edges finish, the movement snaps to its target and completes.
func (v *Viewport) MoveViewport(dt float32) {
	if v.anim == nil {
		return
	}
	left, right := v.anim.curLeft, v.anim.curRight
	if !v.anim.doneLeft {
		val, done := v.anim.tweenLeft.Update(dt)
		left = float64(val)
		v.anim.doneLeft = done
	}
	if !v.anim.doneRight {
		val, done := v.anim.tweenRight.Update(dt)
		right = float64(val)
		v.anim.doneRight = done
	}
	v.anim.curLeft, v.anim.curRight = left, right
	v.Left, v.Right = Absolute(left), Absolute(right)
	if v.anim.doneLeft && v.anim.doneRight {
		v.anim = nil
	}
}
