package wavedata

import (
	"math/big"

	"github.com/tracewave/corewave"
)

// AddVariables loads each ref, computes its default translator, allocates a
// new item ref, and inserts it right after the focused item (or appends if
// nothing is focused). Returns the new refs in the order added plus the
// LoadCmd jobs the caller must drive to completion off the GUI loop.
func (w *WaveData) AddVariables(refs []corewave.SignalRef, container corewave.WaveContainer, reg *corewave.Registry) ([]corewave.ItemRef, corewave.LoadCmd, error) {
	load, err := container.LoadVariables(refs)
	if err != nil {
		return nil, nil, err
	}

	insertAt := len(w.order)
	if w.hasFocus {
		if idx := w.indexOf(w.focused); idx >= 0 {
			insertAt = idx + 1
		}
	}

	added := make([]corewave.ItemRef, 0, len(refs))
	for _, ref := range refs {
		meta, err := container.VariableMeta(ref)
		translatorName := ""
		if err == nil {
			translatorName = reg.AutoSelect(meta).Name()
		} else {
			translatorName = reg.Default().Name()
		}

		itemRef := w.allocRef()
		item := &Item{
			Ref:  itemRef,
			Kind: ItemVariable,
			Variable: &VariableItem{
				Ref:        ref,
				Translator: translatorName,
				NamePolicy: w.namePolicy,
			},
		}
		w.items[itemRef] = item
		w.order = append(w.order[:insertAt], append([]corewave.ItemRef{itemRef}, w.order[insertAt:]...)...)
		insertAt++
		added = append(added, itemRef)
	}
	if len(added) > 0 {
		w.focused, w.hasFocus = added[len(added)-1], true
	}
	return added, load, nil
}

// RemoveItems drops each ref from the map and
// order. If the focused item is removed, focus moves to the item that was
// immediately before it, or clears if the list becomes empty. Marker items
// among refs also drop their entry from the markers map.
func (w *WaveData) RemoveItems(refs []corewave.ItemRef) {
	removing := make(map[corewave.ItemRef]bool, len(refs))
	for _, r := range refs {
		removing[r] = true
	}

	focusRemoved := removing[w.focused]
	focusIdx := w.indexOf(w.focused)
	oldOrder := w.order

	newOrder := w.order[:0:0]
	for _, ref := range w.order {
		if removing[ref] {
			if item := w.items[ref]; item != nil && item.Kind == ItemMarker {
				delete(w.markers, item.Marker.Index)
			}
			delete(w.items, ref)
			delete(w.selection, ref)
			continue
		}
		newOrder = append(newOrder, ref)
	}
	w.order = newOrder

	if !focusRemoved {
		return
	}
	if len(w.order) == 0 {
		w.hasFocus = false
		return
	}
	w.focused, w.hasFocus = w.order[0], true
	for i := focusIdx - 1; i >= 0; i-- {
		if !removing[oldOrder[i]] {
			w.focused = oldOrder[i]
			break
		}
	}
}

// MoveFocusedItem swaps the focused item n positions in dir, clamped to
// the list bounds. Focus follows the item.
func (w *WaveData) MoveFocusedItem(dir MoveDirection, n int) {
	if !w.hasFocus || n <= 0 {
		return
	}
	idx := w.indexOf(w.focused)
	if idx < 0 {
		return
	}
	target := idx + int(dir)*n
	if target < 0 {
		target = 0
	}
	if target >= len(w.order) {
		target = len(w.order) - 1
	}
	if target == idx {
		return
	}
	ref := w.order[idx]
	w.order = append(w.order[:idx], w.order[idx+1:]...)
	w.order = append(w.order[:target], append([]corewave.ItemRef{ref}, w.order[target:]...)...)
}

// MoveFocus clamps the focus cursor to the list bounds; when sel is true,
// extends the selection to cover every item traversed (inclusive of both
// the old and new focus).
func (w *WaveData) MoveFocus(dir MoveDirection, n int, sel bool) {
	if len(w.order) == 0 {
		return
	}
	idx := 0
	if w.hasFocus {
		if i := w.indexOf(w.focused); i >= 0 {
			idx = i
		}
	}
	target := idx + int(dir)*n
	if target < 0 {
		target = 0
	}
	if target >= len(w.order) {
		target = len(w.order) - 1
	}
	if sel {
		lo, hi := idx, target
		if lo > hi {
			lo, hi = hi, lo
		}
		for i := lo; i <= hi; i++ {
			w.selection[w.order[i]] = true
		}
	}
	w.focused, w.hasFocus = w.order[target], true
}

// SetMarkerPosition upserts a Marker item for idx (allocating one if idx
// has no item yet) and stores t in the markers map. idx == CursorMarkerIndex
// addresses the cursor, which has no displayed row.
func (w *WaveData) SetMarkerPosition(idx uint8, t *corewave.Timestamp) error {
	if idx == corewave.CursorMarkerIndex {
		w.markers[idx] = t
		return nil
	}
	if idx > corewave.MaxUserMarkerIndex {
		// Every index in [0, MaxUserMarkerIndex] already has a home; the
		// marker ceiling is the index domain itself, so a request past it
		// is rejected here rather than via a separate counted limit.
		return errMarkerLimitReached
	}
	if w.markerItemRef(idx) == 0 {
		ref := w.allocRef()
		w.items[ref] = &Item{Ref: ref, Kind: ItemMarker, Marker: &MarkerItem{Index: idx}}
		w.order = append(w.order, ref)
	}
	w.markers[idx] = t
	return nil
}

func (w *WaveData) markerItemRef(idx uint8) corewave.ItemRef {
	for _, ref := range w.order {
		if item := w.items[ref]; item.Kind == ItemMarker && item.Marker.Index == idx {
			return ref
		}
	}
	return 0
}

// SetCursorAtTransition moves the cursor to the next or previous value
// transition of a signal. ref selects which variable to query; if nil, the
// focused item's variable is used. On "previous" when the cursor already
// sits exactly on a transition, the cursor first steps back one timestamp
// unit to escape it before searching.
func (w *WaveData) SetCursorAtTransition(next bool, ref *corewave.SignalRef, skipZero bool, container corewave.WaveContainer, maxTs *corewave.Timestamp) error {
	var target corewave.SignalRef
	switch {
	case ref != nil:
		target = *ref
	default:
		item, ok := w.focusedVariable()
		if !ok {
			return errNoFocusedVariable
		}
		target = item.Ref
	}

	cursor, ok := w.Cursor()
	if !ok {
		cursor = big.NewInt(0)
	}
	cur := new(big.Int).Set(cursor)

	for {
		var moved *big.Int
		if next {
			q, err := container.QueryVariable(target, cur)
			if err != nil {
				return err
			}
			if q == nil || q.Next == nil {
				moved = new(big.Int).Set(maxTs)
			} else {
				moved = new(big.Int).Set(q.Next)
			}
		} else {
			q, err := container.QueryVariable(target, cur)
			if err != nil {
				return err
			}
			if q != nil && q.Current != nil && q.Current.Time.Cmp(cur) == 0 && cur.Sign() > 0 {
				cur = new(big.Int).Sub(cur, big.NewInt(1))
			}
			prevChange, err := findPreviousChange(container, target, cur)
			if err != nil {
				return err
			}
			if prevChange == nil {
				moved = big.NewInt(0)
			} else {
				moved = prevChange
			}
		}
		if moved.Cmp(maxTs) > 0 {
			moved = new(big.Int).Set(maxTs)
		}
		cur = moved

		if !skipZero {
			break
		}
		q2, err := container.QueryVariable(target, cur)
		if err != nil {
			return err
		}
		isZero := false
		if q2 != nil && q2.Current != nil {
			if n, ok := q2.Current.Value.BigUint(); ok {
				isZero = n.Sign() == 0
			}
			// Non-BigUint values (e.g. an all-x string) are treated as
			// non-zero, so skip-zero stops advancing at them rather than
			// looping forever.
		}
		atEnd := (next && cur.Cmp(maxTs) >= 0) || (!next && cur.Sign() <= 0)
		if !isZero || atEnd {
			break
		}
	}

	w.markers[corewave.CursorMarkerIndex] = cur
	return nil
}

// findPreviousChange returns the timestamp of the latest change strictly
// before t, or nil when there is none. It issues a single QueryVariable at
// t-1 and returns the change time of the value active there.
func findPreviousChange(container corewave.WaveContainer, ref corewave.SignalRef, t *corewave.Timestamp) (*corewave.Timestamp, error) {
	if t.Sign() <= 0 {
		return nil, nil
	}
	probe := new(big.Int).Sub(t, big.NewInt(1))
	q, err := container.QueryVariable(ref, probe)
	if err != nil {
		return nil, err
	}
	if q == nil || q.Current == nil {
		return nil, nil
	}
	return new(big.Int).Set(q.Current.Time), nil
}

func (w *WaveData) focusedVariable() (*VariableItem, bool) {
	if !w.hasFocus {
		return nil, false
	}
	item, ok := w.items[w.focused]
	if !ok || item.Kind != ItemVariable {
		return nil, false
	}
	return item.Variable, true
}

type opError string

func (e opError) Error() string { return string(e) }

const (
	errMarkerLimitReached = opError("wavedata: maximum number of user markers reached")
	errNoFocusedVariable  = opError("wavedata: no focused variable to query")
)
