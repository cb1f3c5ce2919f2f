package corewave

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not
// premultiplied; premultiplication happens at render submission time in
// package render.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default, unmodified tint.
var ColorWhite = Color{1, 1, 1, 1}

// RGBA converts to the standard library's premultiplied-alpha color type
// for handoff to an ebiten/image draw call.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R * c.A * 255),
		G: uint8(c.G * c.A * 255),
		B: uint8(c.B * c.A * 255),
		A: uint8(c.A * 255),
	}
}

// Vec2 is a 2D vector used for positions, offsets, and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin
// at the top-left, with Y increasing downward — the canvas rect a host
// reports for resize-invalidation and the overview highlight box are both
// Rect values.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap. Adjacent rectangles
// (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// MouseButton identifies a mouse button, used by the gesture-threshold
// constants for a middle-button drag gesture recognizer.
type MouseButton uint8

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// KeyModifiers is a bitmask of keyboard modifier keys, used by the host to
// decide which WaveData operation a keypress maps to (Ctrl+Up/Down moves
// the focused item, Shift+ extends selection).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)
