package wavedata

import (
	"strconv"

	"github.com/tracewave/corewave"
)

// DisplayName returns the reconciled name for item, previously computed by
// ComputeVariableDisplayNames. Returns "" for non-Variable items.
func (it *Item) DisplayName() string {
	if it.Kind != ItemVariable {
		return ""
	}
	if it.Variable.ManualName != "" {
		return it.Variable.ManualName
	}
	return it.Variable.resolvedName
}

// nameFor computes the unreconciled candidate name under policy, before
// collision handling.
func nameFor(policy DisplayNamePolicy, ref corewave.SignalRef) string {
	switch policy {
	case NameGlobal:
		return ref.FullName()
	case NameUnique:
		if len(ref.Scope) == 0 {
			return ref.Name
		}
		return ref.Scope[len(ref.Scope)-1] + "." + ref.Name
	default: // NameLocal
		return ref.Name
	}
}

// ComputeVariableDisplayNames implements compute_variable_display_names():
// reconciles names per each Variable's own name-type policy, then appends
// a numeric suffix to any name shared by more than one displayed item when
// showIndex is set (the "display indices" flag). Divider/Marker/Timeline/
// Placeholder items are untouched.
func (w *WaveData) ComputeVariableDisplayNames(showIndex bool) {
	w.showNameIndex = showIndex

	counts := make(map[string]int)
	candidates := make(map[corewave.ItemRef]string)
	for _, ref := range w.order {
		item := w.items[ref]
		if item.Kind != ItemVariable || item.Variable.ManualName != "" {
			continue
		}
		name := nameFor(item.Variable.NamePolicy, item.Variable.Ref)
		candidates[ref] = name
		counts[name]++
	}
	if !showIndex {
		for ref, name := range candidates {
			w.items[ref].Variable.resolvedName = name
		}
		return
	}

	seen := make(map[string]int)
	for _, ref := range w.order {
		name, ok := candidates[ref]
		if !ok {
			continue
		}
		if counts[name] <= 1 {
			w.items[ref].Variable.resolvedName = name
			continue
		}
		idx := seen[name]
		seen[name] = idx + 1
		w.items[ref].Variable.resolvedName = name + "#" + strconv.Itoa(idx)
	}
}
