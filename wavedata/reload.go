package wavedata

import "github.com/tracewave/corewave"

// ReloadSource identifies where a new container's bytes came from, so that
// results delivered for a now-superseded source can be detected and
// discarded. Equality is by value.
type ReloadSource struct {
	Kind string // "file" | "url" | "cxxrtl" | "memory"
	ID   string
}

// UpdateWithWaves reloads the displayed items against a new container.
// When keepVariables is false, every displayed item is dropped. When true, each
// Variable is re-resolved against newContainer: success keeps the item
// unchanged, failure demotes it to a Placeholder (dropped entirely unless
// keepUnavailable), and all other items are kept as they are. The cursor
// and marker positions persist in both cases. The caller is responsible for clipping its
// Viewport via Viewport.ClipTo(oldMax, newMax) after this returns.
func (w *WaveData) UpdateWithWaves(newContainer corewave.WaveContainer, source ReloadSource, keepVariables, keepUnavailable bool) {
	if !keepVariables {
		w.items = make(map[corewave.ItemRef]*Item)
		w.order = nil
		w.selection = make(map[corewave.ItemRef]bool)
		w.hasFocus = false
		return
	}

	newOrder := w.order[:0:0]
	for _, ref := range w.order {
		item := w.items[ref]
		if item.Kind != ItemVariable {
			newOrder = append(newOrder, ref)
			continue
		}
		if _, err := newContainer.VariableMeta(item.Variable.Ref); err == nil {
			newOrder = append(newOrder, ref)
			continue
		}
		if keepUnavailable {
			w.items[ref] = &Item{
				Ref:         ref,
				Kind:        ItemPlaceholder,
				Placeholder: &PlaceholderItem{Variable: *item.Variable},
			}
			newOrder = append(newOrder, ref)
			continue
		}
		delete(w.items, ref)
		delete(w.selection, ref)
		if w.hasFocus && w.focused == ref {
			w.hasFocus = false
		}
	}
	w.order = newOrder
}
