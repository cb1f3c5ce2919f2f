package wavedata

import "github.com/tracewave/corewave"

// MoveDirection is the direction argument to MoveFocus/MoveFocusedItem.
type MoveDirection int8

const (
	MoveUp   MoveDirection = -1
	MoveDown MoveDirection = 1
)

// WaveData is the displayed-item list plus cursor, markers, focus, and
// selection — everything the GUI loop mutates in response to user input.
// The map is the source of truth for item content; order governs vertical
// layout, with separate Add/Remove operations keeping the order slice and
// the map in sync with each other.
type WaveData struct {
	items  map[corewave.ItemRef]*Item
	order  []corewave.ItemRef
	nextRef corewave.ItemRef

	focused  corewave.ItemRef
	hasFocus bool

	selection map[corewave.ItemRef]bool

	markers map[uint8]*corewave.Timestamp

	namePolicy    DisplayNamePolicy
	showNameIndex bool
}

// New returns an empty WaveData with the given default name policy.
func New(policy DisplayNamePolicy) *WaveData {
	return &WaveData{
		items:     make(map[corewave.ItemRef]*Item),
		selection: make(map[corewave.ItemRef]bool),
		markers:   make(map[uint8]*corewave.Timestamp),
		namePolicy: policy,
	}
}

// Items returns the displayed items in display order.
func (w *WaveData) Items() []*Item {
	out := make([]*Item, 0, len(w.order))
	for _, ref := range w.order {
		out = append(out, w.items[ref])
	}
	return out
}

// Get returns the item for ref, if present.
func (w *WaveData) Get(ref corewave.ItemRef) (*Item, bool) {
	it, ok := w.items[ref]
	return it, ok
}

// Focused returns the currently focused item's ref, if any.
func (w *WaveData) Focused() (corewave.ItemRef, bool) {
	return w.focused, w.hasFocus
}

// IsSelected reports whether ref is part of the current selection.
func (w *WaveData) IsSelected(ref corewave.ItemRef) bool {
	return w.selection[ref]
}

// Marker returns the stored position for marker index idx (0-253 for user
// markers, corewave.CursorMarkerIndex for the cursor).
func (w *WaveData) Marker(idx uint8) (*corewave.Timestamp, bool) {
	t, ok := w.markers[idx]
	return t, ok
}

// Cursor returns the cursor's current position, if set.
func (w *WaveData) Cursor() (*corewave.Timestamp, bool) {
	return w.Marker(corewave.CursorMarkerIndex)
}

// indexOf returns the position of ref within w.order, or -1.
func (w *WaveData) indexOf(ref corewave.ItemRef) int {
	for i, r := range w.order {
		if r == ref {
			return i
		}
	}
	return -1
}

func (w *WaveData) allocRef() corewave.ItemRef {
	w.nextRef++
	return w.nextRef
}
